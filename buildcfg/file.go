package buildcfg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// file is the on-disk form. Pointer fields distinguish "unset" from false so
// that a file can switch a profile flag off.
type file struct {
	Profile  string  `yaml:"profile"`
	OS       *string `yaml:"os"`
	Variant  *string `yaml:"variant"`
	Headless *bool   `yaml:"headless"`
	SDL      *bool   `yaml:"sdl"`
	Xcode    *bool   `yaml:"xcode"`
	Test     *bool   `yaml:"test"`
}

// DefaultPath returns the build metadata file location. It respects
// XDG_CONFIG_HOME, falling back to ~/.config/keystone/build.yaml.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".config", "keystone", "build.yaml")
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "keystone", "build.yaml")
}

// Load reads build metadata from path. A profile key selects the base
// metadata; every other key present overrides it.
func Load(path string) (Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("read build metadata: %w", err)
	}
	return Parse(data)
}

// LoadDefault reads DefaultPath. The bool is false when the file does not
// exist.
func LoadDefault() (Metadata, bool, error) {
	m, err := Load(DefaultPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Metadata{}, false, nil
		}
		return Metadata{}, false, err
	}
	return m, true, nil
}

// Parse decodes yaml build metadata.
func Parse(data []byte) (Metadata, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Metadata{}, fmt.Errorf("parse build metadata: %w", err)
	}

	var m Metadata
	if f.Profile != "" {
		p, ok := LookupProfile(f.Profile)
		if !ok {
			return Metadata{}, fmt.Errorf("parse build metadata: unknown profile %q", f.Profile)
		}
		m = p.Metadata
	}

	if f.OS != nil {
		m.OS = *f.OS
	}
	if f.Variant != nil {
		m.Variant = *f.Variant
	}
	if f.Headless != nil {
		m.Headless = *f.Headless
	}
	if f.SDL != nil {
		m.SDL = *f.SDL
	}
	if f.Xcode != nil {
		m.Xcode = *f.Xcode
	}
	if f.Test != nil {
		m.Test = *f.Test
	}
	return m, nil
}

// Marshal renders metadata in the form Load accepts.
func Marshal(m Metadata) ([]byte, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal build metadata: %w", err)
	}
	return data, nil
}
