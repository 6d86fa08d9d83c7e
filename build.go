package keystone

import (
	"fmt"
	"strings"
)

// OSKind is the operating system a build targets.
type OSKind uint8

const (
	OSOther OSKind = iota
	OSAndroid
	OSMacOS
	OSIOSTVOS
	OSWindows
	OSLinux
)

func (k OSKind) String() string {
	switch k {
	case OSOther:
		return "other"
	case OSAndroid:
		return "android"
	case OSMacOS:
		return "macos"
	case OSIOSTVOS:
		return "ios_tvos"
	case OSWindows:
		return "windows"
	case OSLinux:
		return "linux"
	default:
		return fmt.Sprintf("os(%d)", uint8(k))
	}
}

func (k OSKind) valid() bool { return k <= OSLinux }

// IsApple reports whether k is one of the Apple operating systems.
func (k OSKind) IsApple() bool { return k == OSMacOS || k == OSIOSTVOS }

// AndroidVariant is the storefront an Android build ships to.
type AndroidVariant uint8

const (
	AndroidGeneric AndroidVariant = iota
	AndroidGoogle
	AndroidAmazon
	AndroidCardboard
)

func (v AndroidVariant) String() string {
	switch v {
	case AndroidGeneric:
		return "generic"
	case AndroidGoogle:
		return "google"
	case AndroidAmazon:
		return "amazon"
	case AndroidCardboard:
		return "cardboard"
	default:
		return fmt.Sprintf("android(%d)", uint8(v))
	}
}

func (v AndroidVariant) valid() bool { return v <= AndroidCardboard }

// WindowsVariant distinguishes Oculus Rift builds from plain Windows builds.
type WindowsVariant uint8

const (
	WindowsGeneric WindowsVariant = iota
	WindowsOculus
)

func (v WindowsVariant) String() string {
	switch v {
	case WindowsGeneric:
		return "generic"
	case WindowsOculus:
		return "oculus"
	default:
		return fmt.Sprintf("windows(%d)", uint8(v))
	}
}

func (v WindowsVariant) valid() bool { return v <= WindowsOculus }

// BuildConfig describes the build the process was produced by. It is
// resolved once at startup and never changes afterwards.
type BuildConfig struct {
	OS      OSKind
	Android AndroidVariant // only meaningful when OS is OSAndroid
	Windows WindowsVariant // only meaningful when OS is OSWindows

	Headless  bool
	VRCapable bool
	Xcode     bool
	Rift      bool
	Cardboard bool
	SDL       bool
	Test      bool
}

// Validate checks the cross-field invariants of a build. A config that fails
// here describes a build that cannot exist and must be rejected before any
// factory sees it.
func (c BuildConfig) Validate() error {
	switch {
	case !c.OS.valid():
		return &ConfigError{Field: "os", Message: fmt.Sprintf("unknown value %d", uint8(c.OS))}
	case !c.Android.valid():
		return &ConfigError{Field: "android", Message: fmt.Sprintf("unknown variant %d", uint8(c.Android))}
	case !c.Windows.valid():
		return &ConfigError{Field: "windows", Message: fmt.Sprintf("unknown variant %d", uint8(c.Windows))}
	case c.Android != AndroidGeneric && c.OS != OSAndroid:
		return &ConfigError{Field: "android", Message: "variant " + c.Android.String() + " requires os android, got " + c.OS.String()}
	case c.Windows != WindowsGeneric && c.OS != OSWindows:
		return &ConfigError{Field: "windows", Message: "variant " + c.Windows.String() + " requires os windows, got " + c.OS.String()}
	case c.Rift && c.OS != OSWindows:
		return &ConfigError{Field: "rift", Message: "rift builds target windows only"}
	case c.Rift != (c.Windows == WindowsOculus):
		return &ConfigError{Field: "rift", Message: "rift builds and the oculus windows variant go together"}
	case c.Android == AndroidCardboard && !c.Cardboard:
		return &ConfigError{Field: "cardboard", Message: "cardboard android variant requires a cardboard build"}
	case c.VRCapable != (c.Rift || c.Cardboard):
		return &ConfigError{Field: "vr", Message: "only rift and cardboard builds are vr capable"}
	case c.Xcode && !c.OS.IsApple():
		return &ConfigError{Field: "xcode", Message: "xcode builds target macos or ios_tvos, got " + c.OS.String()}
	}
	return nil
}

// DualMode reports whether the build can start in either VR or windowed
// mode, leaving the choice to the platform at startup.
func (c BuildConfig) DualMode() bool {
	return !c.Headless && c.OS != OSAndroid && !c.Xcode && c.Rift
}

func (c BuildConfig) String() string {
	var sb strings.Builder
	sb.WriteString(c.OS.String())
	switch c.OS {
	case OSAndroid:
		sb.WriteString("/" + c.Android.String())
	case OSWindows:
		sb.WriteString("/" + c.Windows.String())
	}

	var flags []string
	for _, f := range []struct {
		set  bool
		name string
	}{
		{c.Headless, "headless"},
		{c.VRCapable, "vr"},
		{c.Xcode, "xcode"},
		{c.Rift, "rift"},
		{c.Cardboard, "cardboard"},
		{c.SDL, "sdl"},
		{c.Test, "test"},
	} {
		if f.set {
			flags = append(flags, f.name)
		}
	}
	if len(flags) > 0 {
		sb.WriteString(" [" + strings.Join(flags, ",") + "]")
	}
	return sb.String()
}
