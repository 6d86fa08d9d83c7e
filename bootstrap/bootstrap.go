// Package bootstrap builds the process's platform, graphics backend and app
// adapter, in that order, from a single build config.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"keystone"
	"keystone/appadapter"
	"keystone/graphics"
	"keystone/identity"
	"keystone/internal/telemetry"
	"keystone/platform"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ErrAlreadyBootstrapped is returned by a second Run on the same Bootstrapper.
var ErrAlreadyBootstrapped = errors.New("already bootstrapped")

const (
	OperationName = "boot"

	StepPlatform = "platform"
	StepGraphics = "graphics"
	StepAdapter  = "app_adapter"
)

// Startup is everything the factories are allowed to see.
type Startup struct {
	Config keystone.BuildConfig
	Logger *slog.Logger
	Tracer trace.Tracer

	// PlatformOptions are applied after the bootstrap's own WithLogger.
	PlatformOptions []platform.Option
	// NewPlatform replaces platform.New.
	NewPlatform func(keystone.BuildConfig, ...platform.Option) (platform.Platform, error)
}

// App owns the resolved implementations for the life of the process.
type App struct {
	Platform platform.Platform
	Graphics graphics.Graphics
	Adapter  appadapter.Adapter

	identity *identity.Cache
}

// Identity returns the device identity for the platform. Values are probed
// on first request and then kept.
func (a *App) Identity() *identity.Cache {
	return a.identity
}

// Bootstrapper runs startup resolution once.
type Bootstrapper struct {
	startup Startup

	mu  sync.Mutex
	ran bool
}

func New(s Startup) *Bootstrapper {
	if s.Logger == nil {
		s.Logger = slog.Default()
	}
	if s.Tracer == nil {
		s.Tracer = otel.Tracer("keystone/bootstrap")
	}
	if s.NewPlatform == nil {
		s.NewPlatform = platform.New
	}
	return &Bootstrapper{startup: s}
}

// Run resolves and constructs the three implementations. It either returns a
// complete App or an error with nothing exposed; there is no retry, a failed
// Run still counts as the one run.
func (b *Bootstrapper) Run(ctx context.Context) (*App, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ran {
		return nil, ErrAlreadyBootstrapped
	}
	b.ran = true

	s := b.startup
	log := s.Logger.With("build", s.Config.String())

	if err := s.Config.Validate(); err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	op, err := telemetry.Start(ctx, s.Tracer, OperationName,
		telemetry.Step{ID: StepPlatform, Title: "Select platform"},
		telemetry.Step{ID: StepGraphics, Title: "Select graphics backend"},
		telemetry.Step{ID: StepAdapter, Title: "Select app adapter"},
	)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	app, err := construct(op, s)
	op.End(err)
	if err != nil {
		log.Error("Bootstrap failed.", "err", err)
		return nil, err
	}

	app.identity = identity.NewCache(app.Platform.Device())
	log.Info("Bootstrap complete.",
		"platform", app.Platform.Name(),
		"graphics", app.Graphics.Name(),
		"adapter", app.Adapter.Kind().String(),
		"vr", app.Platform.VRMode(),
	)
	return app, nil
}

func construct(op *telemetry.Operation, s Startup) (*App, error) {
	app := &App{}

	err := op.Run(StepPlatform, func(ctx context.Context) error {
		opts := append([]platform.Option{platform.WithLogger(s.Logger)}, s.PlatformOptions...)
		p, err := s.NewPlatform(s.Config, opts...)
		if err != nil {
			return fmt.Errorf("create platform: %w", err)
		}
		if err := verifyPlatform(p, s.Config); err != nil {
			return err
		}
		trace.SpanFromContext(ctx).SetAttributes(
			attribute.String("platform.name", p.Name()),
			attribute.String("platform.subplatform", p.Subplatform()),
			attribute.Bool("platform.vr_mode", p.VRMode()),
		)
		app.Platform = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = op.Run(StepGraphics, func(ctx context.Context) error {
		g := graphics.New(s.Config)
		trace.SpanFromContext(ctx).SetAttributes(attribute.String("graphics.name", g.Name()))
		app.Graphics = g
		return nil
	})
	if err != nil {
		return nil, err
	}

	// VR state is read exactly once, after the platform settled it.
	vrMode := app.Platform.VRMode()
	err = op.Run(StepAdapter, func(ctx context.Context) error {
		a, err := appadapter.New(s.Config, vrMode, appadapter.WithLogger(s.Logger))
		if err != nil {
			return fmt.Errorf("create app adapter: %w", err)
		}
		trace.SpanFromContext(ctx).SetAttributes(attribute.String("adapter.kind", a.Kind().String()))
		app.Adapter = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

// verifyPlatform rejects handles whose shared init never took effect. It
// runs in every build, whatever NewPlatform returned.
func verifyPlatform(p platform.Platform, cfg keystone.BuildConfig) error {
	if p != nil && p.Initialized() && p.Device() != nil {
		return nil
	}
	name := cfg.OS.String()
	if p != nil {
		name = p.Name()
	} else if rule, err := platform.Select(cfg); err == nil {
		name = rule
	}
	return &keystone.InitializationContractError{Platform: name}
}
