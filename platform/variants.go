package platform

import (
	"keystone"
	"keystone/identity"
)

// generic serves operating systems without a dedicated platform.
type generic struct{ core }

func (*generic) Name() string { return "generic" }

// linux reads identity from the standard Linux files.
type linux struct{ core }

func (*linux) Name() string { return "linux" }

func (*linux) initVariant(c *core, _ *options) error {
	if c.prober == nil {
		c.prober = identity.Linux()
	}
	return nil
}

// apple covers macOS and iOS/tvOS.
type apple struct{ core }

func (*apple) Name() string { return "apple" }

func (a *apple) HasTouchScreen() bool { return a.cfg.OS == keystone.OSIOSTVOS }

// windows is the plain desktop Windows platform.
type windows struct{ core }

func (*windows) Name() string { return "windows" }

// windowsOculus is the Rift build. It can start in VR or in a window; the
// VR detector decides once during init.
type windowsOculus struct{ windows }

func (*windowsOculus) Subplatform() string { return "oculus" }

func (*windowsOculus) initVariant(c *core, o *options) error {
	c.vrMode = o.detectVR()
	return nil
}

// android is the storefront-agnostic Android platform.
type android struct{ core }

func (*android) Name() string         { return "android" }
func (*android) HasTouchScreen() bool { return true }

// androidGoogle ships through Google Play.
type androidGoogle struct{ android }

func (*androidGoogle) Subplatform() string { return "google" }

// androidAmazon ships through the Amazon Appstore.
type androidAmazon struct{ android }

func (*androidAmazon) Subplatform() string { return "amazon" }

// androidCardboard always runs in VR.
type androidCardboard struct{ android }

func (*androidCardboard) Subplatform() string { return "cardboard" }

func (*androidCardboard) initVariant(c *core, _ *options) error {
	c.vrMode = true
	return nil
}
