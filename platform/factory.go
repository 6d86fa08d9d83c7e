package platform

import (
	"fmt"
	"log/slog"

	"keystone"
	"keystone/identity"
	"keystone/internal/check"
)

// rule is one row of the selection table. Predicates are written to be
// mutually exclusive so that table order only matters for readability.
type rule struct {
	name  string
	match func(keystone.BuildConfig) bool
	build func() Platform
}

var rules = []rule{
	{
		name:  "android/google",
		match: func(c keystone.BuildConfig) bool { return c.OS == keystone.OSAndroid && c.Android == keystone.AndroidGoogle },
		build: func() Platform { return &androidGoogle{} },
	},
	{
		name:  "android/amazon",
		match: func(c keystone.BuildConfig) bool { return c.OS == keystone.OSAndroid && c.Android == keystone.AndroidAmazon },
		build: func() Platform { return &androidAmazon{} },
	},
	{
		name:  "android/cardboard",
		match: func(c keystone.BuildConfig) bool { return c.OS == keystone.OSAndroid && c.Android == keystone.AndroidCardboard },
		build: func() Platform { return &androidCardboard{} },
	},
	{
		name:  "android",
		match: func(c keystone.BuildConfig) bool { return c.OS == keystone.OSAndroid && c.Android == keystone.AndroidGeneric },
		build: func() Platform { return &android{} },
	},
	{
		name:  "apple",
		match: func(c keystone.BuildConfig) bool { return c.OS.IsApple() },
		build: func() Platform { return &apple{} },
	},
	{
		name:  "windows/oculus",
		match: func(c keystone.BuildConfig) bool { return c.OS == keystone.OSWindows && c.Windows == keystone.WindowsOculus },
		build: func() Platform { return &windowsOculus{} },
	},
	{
		name:  "windows",
		match: func(c keystone.BuildConfig) bool { return c.OS == keystone.OSWindows && c.Windows == keystone.WindowsGeneric },
		build: func() Platform { return &windows{} },
	},
	{
		name:  "linux",
		match: func(c keystone.BuildConfig) bool { return c.OS == keystone.OSLinux },
		build: func() Platform { return &linux{} },
	},
	{
		name:  "generic",
		match: func(c keystone.BuildConfig) bool { return c.OS == keystone.OSOther },
		build: func() Platform { return &generic{} },
	},
}

// Select returns the name of the rule New would use for cfg.
func Select(cfg keystone.BuildConfig) (string, error) {
	r, err := selectRule(cfg)
	if err != nil {
		return "", err
	}
	return r.name, nil
}

func selectRule(cfg keystone.BuildConfig) (rule, error) {
	if check.Enabled && cfg.Validate() == nil {
		matches := make([]bool, len(rules))
		for i, r := range rules {
			matches[i] = r.match(cfg)
		}
		check.Exclusive("platform", matches...)
	}
	for _, r := range rules {
		if r.match(cfg) {
			return r, nil
		}
	}
	return rule{}, &keystone.ConfigurationExhaustionError{Component: "platform", Config: cfg}
}

// New constructs and initializes the platform for cfg. It never returns a
// Platform whose shared init has not taken effect.
func New(cfg keystone.BuildConfig, opts ...Option) (Platform, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.detectVR == nil {
		o.detectVR = func() bool { return false }
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	r, err := selectRule(cfg)
	if err != nil {
		return nil, err
	}
	p, err := initialize(r.build(), r.name, cfg, o)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("Platform selected.", "platform", r.name, "build", cfg.String(), "vr", p.VRMode())
	return p, nil
}

func initialize(p Platform, name string, cfg keystone.BuildConfig, o *options) (Platform, error) {
	c := p.state()
	c.postInit(cfg, o)
	if v, ok := p.(variantInit); ok {
		if err := v.initVariant(c, o); err != nil {
			return nil, fmt.Errorf("init platform %s: %w", name, err)
		}
	}
	if c.prober == nil {
		c.prober = identity.Generic()
	}

	if !p.Initialized() {
		return nil, &keystone.InitializationContractError{Platform: name}
	}
	return p, nil
}
