package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// Tracer wraps an OpenTelemetry tracer provider. The zero value is a
// valid no-op tracer: Span degrades to doing nothing when the
// embedded tracer is nil, so callers never need a separate
// enabled/disabled branch.
type Tracer struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
}

// NewStdoutTracer builds a Tracer that writes one JSON span per
// operation to stdout. There is no remote collector integration.
func NewStdoutTracer() (*Tracer, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, err
	}
	provider := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	return &Tracer{
		provider: provider,
		tracer:   provider.Tracer("dynagraphctl"),
	}, nil
}

// Span starts a span named op, if tracing is enabled, and returns a
// finish function that ends it.
func (t *Tracer) Span(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, func()) {
	if t == nil || t.tracer == nil {
		return ctx, func() {}
	}
	ctx, span := t.tracer.Start(ctx, op, trace.WithAttributes(attrs...))
	return ctx, func() { span.End() }
}

// Shutdown flushes pending spans. Safe to call on a nil or disabled Tracer.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t == nil || t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
