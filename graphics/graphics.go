// Package graphics selects the graphics backend for a build.
package graphics

import "keystone"

// Capability is a set of rendering features a backend supports.
type Capability uint32

const (
	CapMeshes Capability = 1 << iota
	CapTextures
	CapShaders
	CapPostProcess
	CapStereo
	CapHeadTracking
)

// Has reports whether every capability in want is present.
func (c Capability) Has(want Capability) bool { return c&want == want }

// Graphics is the rendering backend handle.
type Graphics interface {
	Name() string
	Capabilities() Capability
}

// Base is the standard single-view backend.
type Base struct{}

// NewBase returns the standard backend.
func NewBase() *Base { return &Base{} }

func (*Base) Name() string { return "base" }

func (*Base) Capabilities() Capability {
	return CapMeshes | CapTextures | CapShaders | CapPostProcess
}

// VR extends Base with stereo rendering. Everything Base supports, VR
// supports too.
type VR struct {
	Base
}

// NewVR returns the stereo backend.
func NewVR() *VR { return &VR{} }

func (*VR) Name() string { return "vr" }

func (v *VR) Capabilities() Capability {
	return v.Base.Capabilities() | CapStereo | CapHeadTracking
}

// Eyes is the number of views rendered per frame.
func (*VR) Eyes() int { return 2 }

// New returns the VR backend for VR-capable builds and the base backend
// otherwise.
func New(cfg keystone.BuildConfig) Graphics {
	if cfg.VRCapable {
		return NewVR()
	}
	return NewBase()
}
