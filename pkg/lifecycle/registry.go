package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/randalmurphal/lifecycle/pkg/lifecycle/observability"
)

// ID is the identity assigned to an object at registration time.
// Identities increase monotonically per registry and are never reused,
// so gaps appear after deregistration. Callers may derive externally
// visible names from them (log files, debug labels); the registry
// itself treats them as opaque.
type ID uint64

// Constructor builds a new object. It must call Register on the
// registry before returning, so that construction succeeds only if
// registration succeeded.
type Constructor[H comparable] func(ctx context.Context, r *Registry[H]) (H, error)

// Destructor releases an object. It must call Deregister before the
// object's storage is reclaimed.
type Destructor[H comparable] func(ctx context.Context, r *Registry[H], h H)

// Visitor is invoked once per live object during an iteration pass.
// A non-nil return marks the visit as failed; failures are aggregated
// across the whole pass rather than stopping it.
type Visitor[H comparable] func(ctx context.Context, h H) error

// FailHandler observes a fatal registry error before the registry
// aborts. Fatal errors are programming errors (capacity overflow,
// deregistering an unknown handle); the registry panics with the error
// after the handler returns, so a handler that wants the
// terminate-the-process behavior should not return.
type FailHandler func(err error)

// Registry is a bounded, ordered, thread-safe collection of live
// object handles. Handles occupy slots [0, Len()) in registration
// order; deregistration compacts the sequence, shifting later handles
// one position earlier. Handles are compared by equality only; the
// registry never inspects their contents.
//
// All methods are safe for concurrent use. A single mutex serializes
// Register, Deregister, and the full iteration pass, so an iteration
// always sees a consistent snapshot. Visitors run under that mutex and
// must not call back into the same registry.
type Registry[H comparable] struct {
	name     string
	capacity int

	mu     sync.Mutex
	count  int
	slots  []H
	ids    []ID
	nextID ID

	construct Constructor[H]
	destroy   Destructor[H]
	visit     Visitor[H]

	fail    FailHandler
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// New creates a registry with a fixed slot capacity and bound
// callables. The constructor and visitor may be nil; invoking
// Construct or Iterate without them is fatal at call time. A
// destructor is bound with WithDestructor.
func New[H comparable](capacity int, construct Constructor[H], visit Visitor[H], opts ...Option[H]) (*Registry[H], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	r := &Registry[H]{
		name:      "objects",
		capacity:  capacity,
		slots:     make([]H, capacity),
		ids:       make([]ID, capacity),
		construct: construct,
		visit:     visit,
		metrics:   observability.NoopMetrics{},
		spans:     observability.NoopSpanManager{},
	}

	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Name returns the registry's name, used in diagnostics and telemetry.
func (r *Registry[H]) Name() string {
	return r.name
}

// Cap returns the fixed slot capacity.
func (r *Registry[H]) Cap() int {
	return r.capacity
}

// Len returns the number of currently live objects.
func (r *Registry[H]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Register appends a newly constructed handle and returns its
// identity. The caller must keep the identity for later diagnostics;
// deregistration is by handle, not identity.
//
// Registering when the registry is full, or registering a handle that
// is already live, is fatal.
func (r *Registry[H]) Register(h H) ID {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.count >= r.capacity {
		r.fatal(&CapacityError{Registry: r.name, Capacity: r.capacity})
	}
	if i := slices.Index(r.slots[:r.count], h); i >= 0 {
		r.fatal(&DuplicateError{Registry: r.name, ID: r.ids[i]})
	}

	id := r.nextID
	r.nextID++
	r.slots[r.count] = h
	r.ids[r.count] = id
	r.count++

	observability.LogRegister(r.logger, r.name, uint64(id), r.count, r.capacity)
	r.metrics.RecordRegister(context.Background(), r.name)
	return id
}

// Deregister removes a live handle, shifting all later handles one
// position earlier and clearing the vacated slot.
//
// Deregistering on an empty registry, or deregistering a handle that
// is not live, is fatal. The registry validates presence only; a
// handle that was freed without deregistering is a caller error it
// cannot detect.
func (r *Registry[H]) Deregister(h H) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.count == 0 {
		r.fatal(&NotFoundError{Registry: r.name, Live: 0})
	}
	i := slices.Index(r.slots[:r.count], h)
	if i < 0 {
		r.fatal(&NotFoundError{Registry: r.name, Live: r.count})
	}

	id := r.ids[i]
	copy(r.slots[i:r.count-1], r.slots[i+1:r.count])
	copy(r.ids[i:r.count-1], r.ids[i+1:r.count])
	r.count--

	var zero H
	r.slots[r.count] = zero
	r.ids[r.count] = 0

	observability.LogDeregister(r.logger, r.name, uint64(id), r.count, r.capacity)
	r.metrics.RecordDeregister(context.Background(), r.name)
}

// Has reports whether the handle is currently live.
func (r *Registry[H]) Has(h H) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Index(r.slots[:r.count], h) >= 0
}

// IDOf returns the identity of a live handle.
func (r *Registry[H]) IDOf(h H) (ID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := slices.Index(r.slots[:r.count], h); i >= 0 {
		return r.ids[i], true
	}
	return 0, false
}

// Snapshot returns a copy of the live handles in registration order.
func (r *Registry[H]) Snapshot() []H {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.slots[:r.count])
}

// Iterate visits every live object with the visitor bound at creation,
// in registration order, aggregating failures across the whole pass.
// Any failure makes the call fatal after the pass completes; a single
// misbehaving object does not stop visits to the others.
//
// Iterate with no bound visitor is fatal.
func (r *Registry[H]) Iterate(ctx context.Context) {
	if r.visit == nil {
		r.fatal(&MissingCallableError{Registry: r.name, Op: "iterate"})
	}
	if err := r.Each(ctx, r.visit); err != nil {
		r.fatal(err)
	}
}

// Each visits every live object with fn, in registration order, and
// returns the aggregated failures as an *IterationError (nil if every
// visit succeeded). It is the non-fatal form of Iterate.
//
// The registry mutex is held for the full pass, so the visited
// sequence is a consistent snapshot; fn must not call back into the
// same registry.
func (r *Registry[H]) Each(ctx context.Context, fn Visitor[H]) error {
	if fn == nil {
		return &MissingCallableError{Registry: r.name, Op: "each"}
	}

	done := observability.TimedOperation()
	ctx, span := r.spans.StartIterateSpan(ctx, r.name)

	r.mu.Lock()
	visited := r.count
	var errs []error
	for i := 0; i < r.count; i++ {
		if err := fn(ctx, r.slots[i]); err != nil {
			errs = append(errs, fmt.Errorf("object %d: %w", r.ids[i], err))
		}
	}
	r.mu.Unlock()

	durationMs := done()
	observability.LogIterate(r.logger, r.name, visited, len(errs), durationMs)
	r.metrics.RecordIterate(ctx, r.name, visited, len(errs), durationMs)

	if len(errs) == 0 {
		r.spans.EndSpanWithError(span, nil)
		return nil
	}
	err := &IterationError{
		Registry: r.name,
		Failures: len(errs),
		Visited:  visited,
		Err:      errors.Join(errs...),
	}
	r.spans.EndSpanWithError(span, err)
	return err
}

// fatal raises err through the fail handler and aborts. It never
// returns: the registry panics with err after the handler runs, so
// state behind a violated precondition is never observable.
func (r *Registry[H]) fatal(err error) {
	observability.LogFatal(r.logger, r.name, err)
	if r.fail != nil {
		r.fail(err)
	}
	panic(err)
}
