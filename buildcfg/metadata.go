package buildcfg

import (
	"strings"

	"keystone"
)

// Metadata is the raw description of a build before resolution.
type Metadata struct {
	OS       string `yaml:"os,omitempty" env:"KEYSTONE_OS"`
	Variant  string `yaml:"variant,omitempty" env:"KEYSTONE_VARIANT"`
	Headless bool   `yaml:"headless,omitempty" env:"KEYSTONE_HEADLESS"`
	SDL      bool   `yaml:"sdl,omitempty" env:"KEYSTONE_SDL"`
	Xcode    bool   `yaml:"xcode,omitempty" env:"KEYSTONE_XCODE"`
	Test     bool   `yaml:"test,omitempty" env:"KEYSTONE_TEST"`
}

const (
	VariantGeneric   = "generic"
	VariantGoogle    = "google"
	VariantAmazon    = "amazon"
	VariantCardboard = "cardboard"
	VariantOculus    = "oculus"
)

// Resolve maps metadata to a validated build config. It has no side effects.
func Resolve(m Metadata) (keystone.BuildConfig, error) {
	cfg := keystone.BuildConfig{
		OS:       ParseOS(m.OS),
		Headless: m.Headless,
		SDL:      m.SDL,
		Xcode:    m.Xcode,
		Test:     m.Test,
	}

	variant := strings.ToLower(strings.TrimSpace(m.Variant))
	switch variant {
	case "", VariantGeneric:
	case VariantGoogle, VariantAmazon, VariantCardboard:
		if cfg.OS != keystone.OSAndroid {
			return keystone.BuildConfig{}, &keystone.ConfigError{
				Field:   "variant",
				Message: "variant " + variant + " requires os android, got " + cfg.OS.String(),
			}
		}
		switch variant {
		case VariantGoogle:
			cfg.Android = keystone.AndroidGoogle
		case VariantAmazon:
			cfg.Android = keystone.AndroidAmazon
		default:
			cfg.Android = keystone.AndroidCardboard
			cfg.Cardboard = true
			cfg.VRCapable = true
		}
	case VariantOculus, "rift":
		if cfg.OS != keystone.OSWindows {
			return keystone.BuildConfig{}, &keystone.ConfigError{
				Field:   "variant",
				Message: "variant " + variant + " requires os windows, got " + cfg.OS.String(),
			}
		}
		cfg.Windows = keystone.WindowsOculus
		cfg.Rift = true
		cfg.VRCapable = true
	default:
		return keystone.BuildConfig{}, &keystone.ConfigError{Field: "variant", Message: "unknown variant " + variant}
	}

	if err := cfg.Validate(); err != nil {
		return keystone.BuildConfig{}, err
	}
	return cfg, nil
}

// ParseOS maps a GOOS-style name to an OSKind. Unknown names map to
// keystone.OSOther, which has a generic platform.
func ParseOS(name string) keystone.OSKind {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "android":
		return keystone.OSAndroid
	case "darwin", "macos", "mac":
		return keystone.OSMacOS
	case "ios", "tvos", "ios_tvos":
		return keystone.OSIOSTVOS
	case "windows":
		return keystone.OSWindows
	case "linux":
		return keystone.OSLinux
	default:
		return keystone.OSOther
	}
}
