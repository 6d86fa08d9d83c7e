package graphics

import (
	"testing"

	"keystone"
	"keystone/buildcfg"
)

func TestNewFollowsVRCapability(t *testing.T) {
	t.Parallel()

	for _, prof := range buildcfg.Profiles() {
		cfg, err := prof.Config()
		if err != nil {
			t.Fatalf("profile %s: %v", prof.Name, err)
		}
		g := New(cfg)
		if g == nil {
			t.Fatalf("New(%s) returned nil", prof.Name)
		}
		_, isVR := g.(*VR)
		if isVR != cfg.VRCapable {
			t.Fatalf("New(%s) = %s, VR capable = %v", prof.Name, g.Name(), cfg.VRCapable)
		}
	}
}

func TestVRIsStrictSuperset(t *testing.T) {
	t.Parallel()

	base := NewBase().Capabilities()
	vr := NewVR().Capabilities()
	if !vr.Has(base) {
		t.Fatalf("VR capabilities %b do not include base %b", vr, base)
	}
	if vr == base {
		t.Fatal("VR capabilities equal base capabilities")
	}
	if !vr.Has(CapStereo) || base.Has(CapStereo) {
		t.Fatal("stereo should be VR only")
	}
}

func TestVREyes(t *testing.T) {
	t.Parallel()

	g := New(keystone.BuildConfig{OS: keystone.OSAndroid, Android: keystone.AndroidCardboard, Cardboard: true, VRCapable: true})
	vr, ok := g.(*VR)
	if !ok {
		t.Fatalf("New() = %T, want *VR", g)
	}
	if vr.Eyes() != 2 {
		t.Fatalf("Eyes() = %d, want 2", vr.Eyes())
	}
}
