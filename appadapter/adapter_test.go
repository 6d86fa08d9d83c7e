package appadapter

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"keystone"
	"keystone/buildcfg"
)

func TestEveryProfileGetsAnAdapter(t *testing.T) {
	t.Parallel()

	for _, prof := range buildcfg.Profiles() {
		cfg, err := prof.Config()
		if err != nil {
			t.Fatalf("profile %s: %v", prof.Name, err)
		}
		for _, vr := range []bool{false, true} {
			a, err := New(cfg, vr)
			if err != nil {
				t.Fatalf("New(%s, vr=%v) error = %v", prof.Name, vr, err)
			}
			if a == nil {
				t.Fatalf("New(%s, vr=%v) returned nil", prof.Name, vr)
			}
		}
	}
}

func TestSelectPrecedence(t *testing.T) {
	t.Parallel()

	rift := keystone.BuildConfig{OS: keystone.OSWindows, Windows: keystone.WindowsOculus, Rift: true, VRCapable: true, SDL: true}

	tests := []struct {
		name string
		cfg  keystone.BuildConfig
		vr   bool
		want Kind
	}{
		{name: "headless beats everything", cfg: keystone.BuildConfig{OS: keystone.OSLinux, Headless: true, SDL: true, Test: true}, want: KindHeadless},
		{name: "headless android", cfg: keystone.BuildConfig{OS: keystone.OSAndroid, Headless: true}, want: KindHeadless},
		{name: "android", cfg: keystone.BuildConfig{OS: keystone.OSAndroid, SDL: true}, want: KindAndroid},
		{name: "cardboard android stays android", cfg: keystone.BuildConfig{OS: keystone.OSAndroid, Android: keystone.AndroidCardboard, Cardboard: true, VRCapable: true}, vr: true, want: KindAndroid},
		{name: "xcode", cfg: keystone.BuildConfig{OS: keystone.OSMacOS, Xcode: true, SDL: true}, want: KindApple},
		{name: "rift in vr", cfg: rift, vr: true, want: KindVR},
		{name: "rift windowed", cfg: rift, vr: false, want: KindSDL},
		{name: "cardboard off android", cfg: keystone.BuildConfig{OS: keystone.OSLinux, Cardboard: true, VRCapable: true, SDL: true}, want: KindVR},
		{name: "sdl", cfg: keystone.BuildConfig{OS: keystone.OSLinux, SDL: true}, vr: true, want: KindSDL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Select(tt.cfg, tt.vr)
			if err != nil {
				t.Fatalf("Select() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("Select() = %s, want %s", got, tt.want)
			}
			a, err := New(tt.cfg, tt.vr)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if a.Kind() != tt.want {
				t.Fatalf("New().Kind() = %s, want %s", a.Kind(), tt.want)
			}
		})
	}
}

func TestRiftFlipsWithVRState(t *testing.T) {
	t.Parallel()

	prof, ok := buildcfg.LookupProfile("windows-oculus")
	if !ok {
		t.Fatal("missing windows-oculus profile")
	}
	cfg, err := prof.Config()
	if err != nil {
		t.Fatal(err)
	}

	vr, err := New(cfg, true)
	if err != nil {
		t.Fatal(err)
	}
	windowed, err := New(cfg, false)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := vr.(*VR); !ok {
		t.Fatalf("New(vr=true) = %T, want *VR", vr)
	}
	if _, ok := windowed.(*SDL); !ok {
		t.Fatalf("New(vr=false) = %T, want *SDL", windowed)
	}
}

func TestVRStateIgnoredForStaticBuilds(t *testing.T) {
	t.Parallel()

	for _, prof := range buildcfg.Profiles() {
		cfg, err := prof.Config()
		if err != nil {
			t.Fatal(err)
		}
		if cfg.DualMode() {
			continue
		}
		off, _ := Select(cfg, false)
		on, _ := Select(cfg, true)
		if off != on {
			t.Fatalf("profile %s: adapter %s with vr off, %s with vr on", prof.Name, off, on)
		}
	}
}

func TestNoMatchIsExhaustion(t *testing.T) {
	t.Parallel()

	cfg := keystone.BuildConfig{OS: keystone.OSLinux}
	a, err := New(cfg, false)
	var exhausted *keystone.ConfigurationExhaustionError
	if !errors.As(err, &exhausted) {
		t.Fatalf("New() error = %v, want ConfigurationExhaustionError", err)
	}
	if exhausted.Component != "app adapter" {
		t.Fatalf("Component = %q", exhausted.Component)
	}
	if a != nil {
		t.Fatal("New() returned an adapter alongside an error")
	}
}

func TestWindowed(t *testing.T) {
	t.Parallel()

	if NewHeadless().Windowed() {
		t.Fatal("headless adapter is windowed")
	}
	for _, a := range []Adapter{NewAndroid(), NewApple(), NewVR(), NewSDL()} {
		if !a.Windowed() {
			t.Fatalf("%s adapter is not windowed", a.Kind())
		}
	}
}

func TestNewLogsToGivenLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := keystone.BuildConfig{OS: keystone.OSLinux, SDL: true}
	if _, err := New(cfg, false, WithLogger(logger)); err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if !strings.Contains(buf.String(), "App adapter selected.") || !strings.Contains(buf.String(), "adapter=sdl") {
		t.Fatalf("log output = %q, want the selection record", buf.String())
	}
}
