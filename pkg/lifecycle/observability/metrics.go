package observability

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records registry metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordRegister records a successful registration.
	RecordRegister(ctx context.Context, registry string)

	// RecordDeregister records a successful deregistration.
	RecordDeregister(ctx context.Context, registry string)

	// RecordIterate records a completed iteration pass with its size,
	// failure count, and duration.
	RecordIterate(ctx context.Context, registry string, visited, failures int, durationMs float64)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	registrations   metric.Int64Counter
	deregistrations metric.Int64Counter
	liveObjects     metric.Int64UpDownCounter
	iterateLatency  metric.Float64Histogram
	iterateFailures metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("lifecycle")

	registrations, err := meter.Int64Counter("lifecycle.objects.registered",
		metric.WithDescription("Number of object registrations"),
	)
	if err != nil {
		return nil, err
	}

	deregistrations, err := meter.Int64Counter("lifecycle.objects.deregistered",
		metric.WithDescription("Number of object deregistrations"),
	)
	if err != nil {
		return nil, err
	}

	liveObjects, err := meter.Int64UpDownCounter("lifecycle.objects.live",
		metric.WithDescription("Number of currently live objects"),
	)
	if err != nil {
		return nil, err
	}

	iterateLatency, err := meter.Float64Histogram("lifecycle.iterate.latency_ms",
		metric.WithDescription("Iteration pass latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	iterateFailures, err := meter.Int64Counter("lifecycle.iterate.failures",
		metric.WithDescription("Number of failed visitor invocations"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		registrations:   registrations,
		deregistrations: deregistrations,
		liveObjects:     liveObjects,
		iterateLatency:  iterateLatency,
		iterateFailures: iterateFailures,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		return NoopMetrics{}
	}
	return m
}

// RecordRegister records a successful registration.
func (m *otelMetrics) RecordRegister(ctx context.Context, registry string) {
	attrs := metric.WithAttributes(attribute.String("registry", registry))
	m.registrations.Add(ctx, 1, attrs)
	m.liveObjects.Add(ctx, 1, attrs)
}

// RecordDeregister records a successful deregistration.
func (m *otelMetrics) RecordDeregister(ctx context.Context, registry string) {
	attrs := metric.WithAttributes(attribute.String("registry", registry))
	m.deregistrations.Add(ctx, 1, attrs)
	m.liveObjects.Add(ctx, -1, attrs)
}

// RecordIterate records a completed iteration pass.
func (m *otelMetrics) RecordIterate(ctx context.Context, registry string, visited, failures int, durationMs float64) {
	attrs := metric.WithAttributes(
		attribute.String("registry", registry),
		attribute.Int("visited", visited),
	)
	m.iterateLatency.Record(ctx, durationMs, attrs)
	if failures > 0 {
		m.iterateFailures.Add(ctx, int64(failures),
			metric.WithAttributes(attribute.String("registry", registry)),
		)
	}
}
