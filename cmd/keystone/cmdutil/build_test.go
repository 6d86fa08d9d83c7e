package cmdutil

import (
	"os"
	"path/filepath"
	"testing"

	"keystone"
)

func TestResolveProfile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	f := BuildFlags{Profile: "android-amazon"}
	rb, err := f.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if rb.Config.OS != keystone.OSAndroid || rb.Config.Android != keystone.AndroidAmazon {
		t.Fatalf("Resolve() = %s", rb.Config)
	}
	if rb.Source != "profile android-amazon" {
		t.Fatalf("Source = %q", rb.Source)
	}
}

func TestResolveEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("KEYSTONE_HEADLESS", "true")

	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("profile: linux\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	f := BuildFlags{Config: path}
	rb, err := f.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	want := keystone.BuildConfig{OS: keystone.OSLinux, SDL: true, Headless: true}
	if rb.Config != want {
		t.Fatalf("Resolve() = %s, want %s", rb.Config, want)
	}
}

func TestResolveDefaultFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "keystone"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "keystone", "build.yaml"), []byte("profile: mac-xcode\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var f BuildFlags
	rb, err := f.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !rb.Config.Xcode || rb.Config.OS != keystone.OSMacOS {
		t.Fatalf("Resolve() = %s", rb.Config)
	}
}

func TestResolveUnknownProfile(t *testing.T) {
	f := BuildFlags{Profile: "dreamcast"}
	if _, err := f.Resolve(); err == nil {
		t.Fatal("Resolve() error = nil, want unknown profile")
	}
}
