package ui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"keystone/internal/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func TestStepOutputPrintsFinishedSteps(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	out := NewStepOutput(&buf)
	defer out.Close()

	op, err := telemetry.Start(context.Background(), out.Tracer("test"), "boot",
		telemetry.Step{ID: "platform", Title: "Select platform"},
		telemetry.Step{ID: "graphics", Title: "Select graphics backend"},
	)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	_ = op.Run("platform", func(ctx context.Context) error {
		trace.SpanFromContext(ctx).SetAttributes(attribute.String("platform.name", "linux"))
		return nil
	})
	runErr := op.Run("graphics", func(context.Context) error { return errors.New("no gpu") })
	op.End(runErr)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("output lines = %q, want 2", lines)
	}
	if !strings.Contains(lines[0], "Select platform") || !strings.Contains(lines[0], "platform.name=linux") {
		t.Fatalf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "Select graphics backend (no gpu)") {
		t.Fatalf("line 1 = %q", lines[1])
	}
}

func TestEnvTruthyValues(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "one", value: "1", want: true},
		{name: "true", value: "true", want: true},
		{name: "yes", value: "yes", want: true},
		{name: "on", value: "on", want: true},
		{name: "zero", value: "0", want: false},
		{name: "false", value: "false", want: false},
		{name: "empty", value: "", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("KEYSTONE_TEST_TRUTHY", tc.value)
			if got := envTruthy("KEYSTONE_TEST_TRUTHY"); got != tc.want {
				t.Fatalf("envTruthy() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSummaryAligns(t *testing.T) {
	t.Parallel()

	var s Summary
	out := s.Add("OS", "linux").Add("Platform", "linux").String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Summary.String() lines = %q", lines)
	}
	if strings.Index(lines[0], "linux") != strings.Index(lines[1], "linux") {
		t.Fatalf("Summary.String() values not aligned: %q", lines)
	}
}

func TestAdapters(t *testing.T) {
	t.Parallel()

	if got := Adapters("sdl", ""); got != "sdl" {
		t.Fatalf("Adapters(sdl) = %q, want sdl", got)
	}
	if got := Adapters("sdl", "vr"); got != "vr or sdl" {
		t.Fatalf("Adapters(sdl, vr) = %q, want %q", got, "vr or sdl")
	}
}

func TestConfigureOutputPlainForNonTerminals(t *testing.T) {
	t.Setenv(envNoInteraction, "")
	t.Setenv(envCI, "")

	var buf bytes.Buffer
	if ConfigureOutput(&buf, false) {
		t.Fatal("ConfigureOutput(buffer) = true, want false")
	}
	if got := Value(""); got != "-" {
		t.Fatalf("Value(\"\") = %q, want a plain dash", got)
	}
}
