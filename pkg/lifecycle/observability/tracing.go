package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the lifecycle tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("lifecycle")

// SpanManager handles trace span lifecycle for registry operations.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartConstructSpan starts a span for an object construction.
	StartConstructSpan(ctx context.Context, registry string) (context.Context, trace.Span)

	// StartDestroySpan starts a span for an object destruction.
	StartDestroySpan(ctx context.Context, registry string) (context.Context, trace.Span)

	// StartIterateSpan starts a span for a full iteration pass.
	StartIterateSpan(ctx context.Context, registry string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartConstructSpan starts a span for an object construction.
func (m *otelSpanManager) StartConstructSpan(ctx context.Context, registry string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "lifecycle.construct",
		trace.WithAttributes(
			attribute.String("registry", registry),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartDestroySpan starts a span for an object destruction.
func (m *otelSpanManager) StartDestroySpan(ctx context.Context, registry string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "lifecycle.destroy",
		trace.WithAttributes(
			attribute.String("registry", registry),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartIterateSpan starts a span for a full iteration pass.
func (m *otelSpanManager) StartIterateSpan(ctx context.Context, registry string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "lifecycle.iterate",
		trace.WithAttributes(
			attribute.String("registry", registry),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
