package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// NoopMetrics is a MetricsRecorder that does nothing.
// Use when metrics are disabled to avoid overhead.
type NoopMetrics struct{}

// Compile-time interface check.
var _ MetricsRecorder = NoopMetrics{}

// RecordRegister does nothing.
func (NoopMetrics) RecordRegister(_ context.Context, _ string) {}

// RecordDeregister does nothing.
func (NoopMetrics) RecordDeregister(_ context.Context, _ string) {}

// RecordIterate does nothing.
func (NoopMetrics) RecordIterate(_ context.Context, _ string, _, _ int, _ float64) {}

// NoopSpanManager is a SpanManager that does nothing.
// Use when tracing is disabled to avoid overhead.
type NoopSpanManager struct{}

// Compile-time interface check.
var _ SpanManager = NoopSpanManager{}

// noopSpan is a span that does nothing.
// We use the OTel noop package for a proper no-op span implementation.
var noopSpan = noop.Span{}

// StartConstructSpan returns the context unchanged and a no-op span.
func (NoopSpanManager) StartConstructSpan(ctx context.Context, _ string) (context.Context, trace.Span) {
	return ctx, noopSpan
}

// StartDestroySpan returns the context unchanged and a no-op span.
func (NoopSpanManager) StartDestroySpan(ctx context.Context, _ string) (context.Context, trace.Span) {
	return ctx, noopSpan
}

// StartIterateSpan returns the context unchanged and a no-op span.
func (NoopSpanManager) StartIterateSpan(ctx context.Context, _ string) (context.Context, trace.Span) {
	return ctx, noopSpan
}

// EndSpanWithError does nothing.
func (NoopSpanManager) EndSpanWithError(_ trace.Span, _ error) {}

// AddSpanEvent does nothing.
func (NoopSpanManager) AddSpanEvent(_ context.Context, _ string, _ ...attribute.KeyValue) {}
