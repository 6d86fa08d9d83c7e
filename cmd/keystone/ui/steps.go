package ui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"keystone/internal/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// StepOutput prints one line per finished step of a telemetry operation.
type StepOutput struct {
	provider *sdktrace.TracerProvider
}

func NewStepOutput(w io.Writer) *StepOutput {
	printer := &stepPrinter{w: w, titles: make(map[string]string)}
	return &StepOutput{provider: sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(printer))}
}

func (o *StepOutput) Tracer(name string) trace.Tracer {
	return o.provider.Tracer(name)
}

func (o *StepOutput) Close() {
	_ = o.provider.Shutdown(context.Background())
}

type stepPrinter struct {
	mu     sync.Mutex
	w      io.Writer
	titles map[string]string
}

func (p *stepPrinter) OnStart(_ context.Context, span sdktrace.ReadWriteSpan) {
	if span.Parent().IsValid() {
		return
	}

	var ids, titles []string
	for _, kv := range span.Attributes() {
		switch kv.Key {
		case telemetry.PlanStepsKey:
			ids = kv.Value.AsStringSlice()
		case telemetry.PlanTitlesKey:
			titles = kv.Value.AsStringSlice()
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for i, id := range ids {
		if i < len(titles) {
			p.titles[id] = titles[i]
		}
	}
}

func (p *stepPrinter) OnEnd(span sdktrace.ReadOnlySpan) {
	if !span.Parent().IsValid() {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	title, ok := p.titles[span.Name()]
	if !ok {
		title = span.Name()
	}
	if span.Status().Code == codes.Error {
		fmt.Fprintln(p.w, StepFailed(title, span.Status().Description))
		return
	}
	fmt.Fprintln(p.w, StepDone(title, stepDetail(span.Attributes())))
}

func (p *stepPrinter) Shutdown(context.Context) error   { return nil }
func (p *stepPrinter) ForceFlush(context.Context) error { return nil }

// stepDetail joins the step's own attributes into "key=value" pairs.
func stepDetail(attrs []attribute.KeyValue) string {
	var parts []string
	for _, kv := range attrs {
		if kv.Key == telemetry.StepKey {
			continue
		}
		v := kv.Value.Emit()
		if v == "" {
			continue
		}
		parts = append(parts, string(kv.Key)+"="+v)
	}
	return strings.Join(parts, " ")
}
