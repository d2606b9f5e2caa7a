package lifecycle

import (
	"log/slog"
	"os"

	"github.com/randalmurphal/lifecycle/pkg/lifecycle/observability"
)

// Option configures a registry at creation time.
type Option[H comparable] func(*Registry[H])

// WithName sets the registry name used in diagnostics and telemetry.
// Default: "objects"
func WithName[H comparable](name string) Option[H] {
	return func(r *Registry[H]) {
		if name != "" {
			r.name = name
		}
	}
}

// WithDestructor binds a destructor invoked by Destroy. The destructor
// must call Deregister on the handle before releasing it.
func WithDestructor[H comparable](d Destructor[H]) Option[H] {
	return func(r *Registry[H]) {
		r.destroy = d
	}
}

// WithFailHandler installs a handler that observes fatal errors before
// the registry aborts. The registry panics with the error after the
// handler returns; handlers that should halt the process must not
// return.
//
// Mainly useful in tests, to assert on the violated condition:
//
//	var got error
//	r, _ := lifecycle.New[*T](3, nil, nil,
//	    lifecycle.WithFailHandler[*T](func(err error) { got = err }))
func WithFailHandler[H comparable](fn FailHandler) Option[H] {
	return func(r *Registry[H]) {
		r.fail = fn
	}
}

// WithExitOnFailure makes fatal errors terminate the process with
// os.Exit(1) after logging, instead of panicking. This is the
// hard-abort discipline for programs that treat registry violations
// as unconditionally unrecoverable.
func WithExitOnFailure[H comparable]() Option[H] {
	return func(r *Registry[H]) {
		r.fail = func(error) { os.Exit(1) }
	}
}

// WithLogger enables structured logging of registry operations.
// A nil logger disables logging (the default).
func WithLogger[H comparable](logger *slog.Logger) Option[H] {
	return func(r *Registry[H]) {
		r.logger = logger
	}
}

// WithMetrics sets the metrics recorder for registry operations.
// Default: observability.NoopMetrics{}
func WithMetrics[H comparable](m observability.MetricsRecorder) Option[H] {
	return func(r *Registry[H]) {
		if m != nil {
			r.metrics = m
		}
	}
}

// WithTracing sets the span manager used to trace Construct, Destroy,
// and iteration passes.
// Default: observability.NoopSpanManager{}
func WithTracing[H comparable](s observability.SpanManager) Option[H] {
	return func(r *Registry[H]) {
		if s != nil {
			r.spans = s
		}
	}
}
