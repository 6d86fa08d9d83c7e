// Package appadapter selects how the application talks to the host's window
// system, or the lack of one.
package appadapter

import (
	"log/slog"

	"keystone"
)

// Kind identifies an adapter variant.
type Kind uint8

// Adapter kinds, one per concrete adapter type.
const (
	KindHeadless Kind = iota + 1
	KindAndroid
	KindApple
	KindVR
	KindSDL
)

// String returns the lower-case adapter name.
func (k Kind) String() string {
	switch k {
	case KindHeadless:
		return "headless"
	case KindAndroid:
		return "android"
	case KindApple:
		return "apple"
	case KindVR:
		return "vr"
	case KindSDL:
		return "sdl"
	default:
		return "unknown"
	}
}

// Adapter is the application/windowing adapter handle.
type Adapter interface {
	Kind() Kind
	// Windowed reports whether the adapter drives a display.
	Windowed() bool
}

// Headless runs without any window system, for servers and test runners.
type Headless struct{}

// NewHeadless returns the headless adapter.
func NewHeadless() *Headless {
	return &Headless{}
}

func (*Headless) Kind() Kind     { return KindHeadless }
func (*Headless) Windowed() bool { return false }

// Android hosts the app in an Android activity.
type Android struct{}

// NewAndroid returns the android adapter.
func NewAndroid() *Android {
	return &Android{}
}

func (*Android) Kind() Kind     { return KindAndroid }
func (*Android) Windowed() bool { return true }

// Apple drives the window through the Xcode-built app shell.
type Apple struct{}

// NewApple returns the apple adapter.
func NewApple() *Apple {
	return &Apple{}
}

func (*Apple) Kind() Kind     { return KindApple }
func (*Apple) Windowed() bool { return true }

// VR renders to a headset. Rift and Cardboard builds share it.
type VR struct{}

// NewVR returns the vr adapter.
func NewVR() *VR {
	return &VR{}
}

func (*VR) Kind() Kind     { return KindVR }
func (*VR) Windowed() bool { return true }

// SDL is the generic desktop window adapter.
type SDL struct{}

// NewSDL returns the sdl adapter.
func NewSDL() *SDL {
	return &SDL{}
}

func (*SDL) Kind() Kind     { return KindSDL }
func (*SDL) Windowed() bool { return true }

// Select reports which adapter New would build, in precedence order: a build
// can satisfy several rows (a headless test build of an SDL target, say) and
// the first one wins. vrMode only matters for Rift builds.
func Select(cfg keystone.BuildConfig, vrMode bool) (Kind, error) {
	switch {
	case cfg.Headless:
		return KindHeadless, nil
	case cfg.OS == keystone.OSAndroid:
		return KindAndroid, nil
	case cfg.Xcode:
		return KindApple, nil
	case cfg.Rift:
		if vrMode {
			return KindVR, nil
		}
		return KindSDL, nil
	case cfg.Cardboard:
		return KindVR, nil
	case cfg.SDL:
		return KindSDL, nil
	default:
		return 0, &keystone.ConfigurationExhaustionError{Component: "app adapter", Config: cfg}
	}
}

type options struct {
	logger *slog.Logger
}

// Option configures New.
type Option func(*options)

// WithLogger sets the logger that records the selection.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// New builds the adapter for cfg. vrMode is the platform's runtime VR state,
// so New must run after the platform is up.
func New(cfg keystone.BuildConfig, vrMode bool, opts ...Option) (Adapter, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	kind, err := Select(cfg, vrMode)
	if err != nil {
		return nil, err
	}

	var a Adapter
	switch kind {
	case KindHeadless:
		a = NewHeadless()
	case KindAndroid:
		a = NewAndroid()
	case KindApple:
		a = NewApple()
	case KindVR:
		a = NewVR()
	case KindSDL:
		a = NewSDL()
	}
	o.logger.Debug("App adapter selected.", "adapter", kind.String(), "build", cfg.String(), "vr", vrMode)
	return a, nil
}
