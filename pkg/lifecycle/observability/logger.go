// Package observability provides structured logging, metrics, and
// tracing for registry operations.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// LogRegister logs a successful registration.
func LogRegister(logger *slog.Logger, registry string, id uint64, live, capacity int) {
	if logger == nil {
		return
	}
	logger.Debug("object registered",
		slog.String("registry", registry),
		slog.Uint64("id", id),
		slog.Int("live", live),
		slog.Int("capacity", capacity),
	)
}

// LogDeregister logs a successful deregistration.
func LogDeregister(logger *slog.Logger, registry string, id uint64, live, capacity int) {
	if logger == nil {
		return
	}
	logger.Debug("object deregistered",
		slog.String("registry", registry),
		slog.Uint64("id", id),
		slog.Int("live", live),
		slog.Int("capacity", capacity),
	)
}

// LogIterate logs a completed iteration pass.
func LogIterate(logger *slog.Logger, registry string, visited, failures int, durationMs float64) {
	if logger == nil {
		return
	}
	if failures > 0 {
		logger.Warn("iteration pass completed with failures",
			slog.String("registry", registry),
			slog.Int("visited", visited),
			slog.Int("failures", failures),
			slog.Float64("duration_ms", durationMs),
		)
		return
	}
	logger.Debug("iteration pass completed",
		slog.String("registry", registry),
		slog.Int("visited", visited),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogFatal logs a fatal registry violation just before the registry
// aborts.
func LogFatal(logger *slog.Logger, registry string, err error) {
	if logger == nil {
		return
	}
	logger.Error("fatal registry violation",
		slog.String("registry", registry),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000.0
	}
}
