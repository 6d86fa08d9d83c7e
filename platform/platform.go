package platform

import (
	"log/slog"

	"keystone"
	"keystone/identity"
)

// Platform is the OS integration layer for the running build. It is created
// once at startup and not mutated afterwards.
type Platform interface {
	// Name is the platform family: android, apple, windows, linux or generic.
	Name() string
	// Subplatform narrows Name, for example to a storefront. Empty when the
	// build has no distinguishing flavor.
	Subplatform() string
	// VRMode reports whether the process runs in VR. Dual-mode builds decide
	// this during init; it does not change afterwards.
	VRMode() bool
	HasTouchScreen() bool
	// Device returns the identity prober for this platform's data sources.
	Device() *identity.Prober
	Config() keystone.BuildConfig
	// Initialized reports whether the shared post-construction init ran.
	Initialized() bool

	state() *core
}

// core is the state every variant shares. Variants embed it and only New
// writes to it.
type core struct {
	cfg         keystone.BuildConfig
	prober      *identity.Prober
	vrMode      bool
	initialized bool
}

func (c *core) Config() keystone.BuildConfig { return c.cfg }
func (c *core) VRMode() bool                 { return c.vrMode }
func (c *core) Device() *identity.Prober     { return c.prober }
func (c *core) Initialized() bool            { return c.initialized }
func (c *core) HasTouchScreen() bool         { return false }

func (c *core) Subplatform() string {
	if c.cfg.Test {
		return "test"
	}
	return ""
}

func (c *core) state() *core { return c }

// postInit is the shared half of the two-phase init. Variant hooks run after
// it and may rely on its results.
func (c *core) postInit(cfg keystone.BuildConfig, o *options) {
	c.cfg = cfg
	c.prober = o.prober
	c.initialized = true
}

// variantInit is implemented by variants that need more than the shared init.
type variantInit interface {
	initVariant(c *core, o *options) error
}

type options struct {
	prober   *identity.Prober
	detectVR func() bool
	logger   *slog.Logger
}

// Option configures New.
type Option func(*options)

// WithProber replaces the platform's default identity prober.
func WithProber(p *identity.Prober) Option {
	return func(o *options) {
		o.prober = p
	}
}

// WithVRDetector sets how dual-mode builds decide whether to start in VR,
// for example by checking for a headset or a user preference.
func WithVRDetector(fn func() bool) Option {
	return func(o *options) {
		o.detectVR = fn
	}
}

// WithLogger sets the logger used during selection.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
