// Package telemetry records a multi-step operation as an otel span tree: one
// root span carrying the plan, one child span per executed step.
package telemetry

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	PlanEventName = "keystone.plan"
	PlanStepsKey  = "keystone.plan.steps"
	PlanTitlesKey = "keystone.plan.titles"
	StepKey       = "keystone.step"
)

// Step is one planned unit of work.
type Step struct {
	ID    string
	Title string
}

// Operation is a started plan. Steps must be run by ID in any order; each runs
// at most once.
type Operation struct {
	ctx    context.Context
	tracer trace.Tracer
	span   trace.Span

	planned map[string]bool // id -> already run
}

// Start opens the root span for name. The plan is recorded both as root
// span attributes, visible to span processors at start, and as an event.
func Start(ctx context.Context, tracer trace.Tracer, name string, steps ...Step) (*Operation, error) {
	if tracer == nil {
		return nil, fmt.Errorf("start operation: tracer is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("start operation: name is required")
	}

	planned := make(map[string]bool, len(steps))
	ids := make([]string, 0, len(steps))
	titles := make([]string, 0, len(steps))
	for i, s := range steps {
		id := strings.TrimSpace(s.ID)
		if id == "" {
			return nil, fmt.Errorf("start operation: step %d has empty id", i)
		}
		if _, dup := planned[id]; dup {
			return nil, fmt.Errorf("start operation: duplicate step id %q", id)
		}
		planned[id] = false
		ids = append(ids, id)
		title := strings.TrimSpace(s.Title)
		if title == "" {
			title = id
		}
		titles = append(titles, title)
	}

	planAttrs := []attribute.KeyValue{
		attribute.StringSlice(PlanStepsKey, ids),
		attribute.StringSlice(PlanTitlesKey, titles),
	}
	spanCtx, span := tracer.Start(ctx, name, trace.WithAttributes(planAttrs...))
	span.AddEvent(PlanEventName, trace.WithAttributes(planAttrs...))
	return &Operation{ctx: spanCtx, tracer: tracer, span: span, planned: planned}, nil
}

// Context returns the root span's context.
func (o *Operation) Context() context.Context {
	if o == nil {
		return context.Background()
	}
	return o.ctx
}

// Run executes fn inside a child span for step id. fn may annotate the span
// through trace.SpanFromContext.
func (o *Operation) Run(id string, fn func(context.Context) error) error {
	ran, ok := o.planned[id]
	if !ok {
		return fmt.Errorf("run step %q: not in plan", id)
	}
	if ran {
		return fmt.Errorf("run step %q: already ran", id)
	}
	o.planned[id] = true

	ctx, span := o.tracer.Start(o.ctx, id, trace.WithAttributes(attribute.String(StepKey, id)))
	defer span.End()

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, strings.TrimSpace(err.Error()))
		return err
	}
	return nil
}

// End closes the root span, marking it failed when err is non-nil.
func (o *Operation) End(err error) {
	if o == nil || o.span == nil {
		return
	}
	if err != nil {
		o.span.RecordError(err)
		o.span.SetStatus(codes.Error, strings.TrimSpace(err.Error()))
	}
	o.span.End()
}
