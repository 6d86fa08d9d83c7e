package buildcfg

import (
	"errors"
	"testing"

	"keystone"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Metadata
		want keystone.BuildConfig
	}{
		{
			name: "linux sdl",
			in:   Metadata{OS: "linux", SDL: true},
			want: keystone.BuildConfig{OS: keystone.OSLinux, SDL: true},
		},
		{
			name: "android google",
			in:   Metadata{OS: "android", Variant: "google"},
			want: keystone.BuildConfig{OS: keystone.OSAndroid, Android: keystone.AndroidGoogle},
		},
		{
			name: "android cardboard is vr capable",
			in:   Metadata{OS: "android", Variant: "Cardboard"},
			want: keystone.BuildConfig{
				OS:        keystone.OSAndroid,
				Android:   keystone.AndroidCardboard,
				Cardboard: true,
				VRCapable: true,
			},
		},
		{
			name: "rift alias",
			in:   Metadata{OS: "windows", Variant: "rift", SDL: true},
			want: keystone.BuildConfig{
				OS:        keystone.OSWindows,
				Windows:   keystone.WindowsOculus,
				Rift:      true,
				VRCapable: true,
				SDL:       true,
			},
		},
		{
			name: "ios xcode",
			in:   Metadata{OS: "ios", Xcode: true},
			want: keystone.BuildConfig{OS: keystone.OSIOSTVOS, Xcode: true},
		},
		{
			name: "unknown os is other",
			in:   Metadata{OS: "plan9", Headless: true, Variant: "generic"},
			want: keystone.BuildConfig{OS: keystone.OSOther, Headless: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Resolve(tt.in)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("Resolve() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestResolveRejectsImpossibleBuilds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    Metadata
		field string
	}{
		{name: "unknown variant", in: Metadata{OS: "linux", Variant: "steam"}, field: "variant"},
		{name: "google on linux", in: Metadata{OS: "linux", Variant: "google"}, field: "variant"},
		{name: "oculus on android", in: Metadata{OS: "android", Variant: "oculus"}, field: "variant"},
		{name: "xcode on windows", in: Metadata{OS: "windows", Xcode: true}, field: "xcode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Resolve(tt.in)
			var cfgErr *keystone.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Resolve() error = %v, want *keystone.ConfigError", err)
			}
			if cfgErr.Field != tt.field {
				t.Fatalf("ConfigError.Field = %q, want %q", cfgErr.Field, tt.field)
			}
		})
	}
}

func TestEveryProfileResolves(t *testing.T) {
	t.Parallel()

	seen := make(map[keystone.BuildConfig]string)
	for _, p := range Profiles() {
		cfg, err := p.Config()
		if err != nil {
			t.Fatalf("profile %s: %v", p.Name, err)
		}
		if prev, ok := seen[cfg]; ok {
			t.Fatalf("profiles %s and %s resolve to the same build %s", prev, p.Name, cfg)
		}
		seen[cfg] = p.Name
	}
}

func TestProfilesSorted(t *testing.T) {
	t.Parallel()

	ps := Profiles()
	for i := 1; i < len(ps); i++ {
		if ps[i-1].Name >= ps[i].Name {
			t.Fatalf("profiles out of order: %s before %s", ps[i-1].Name, ps[i].Name)
		}
	}
	if _, ok := LookupProfile("windows-oculus"); !ok {
		t.Fatal("LookupProfile(windows-oculus) not found")
	}
	if _, ok := LookupProfile("nope"); ok {
		t.Fatal("LookupProfile(nope) found")
	}
}

func TestLinkedDefaultsToHostOS(t *testing.T) {
	t.Parallel()

	m := Linked()
	if m.OS == "" {
		t.Fatal("Linked().OS is empty")
	}
	if !m.SDL {
		t.Fatal("Linked().SDL = false, want true by default")
	}
}
