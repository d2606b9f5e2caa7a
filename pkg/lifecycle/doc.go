/*
Package lifecycle provides bounded object-lifetime and identity
tracking for long-lived, class-like values.

# Overview

A Registry is a fixed-capacity, ordered, thread-safe collection of
live object handles. Objects register themselves at construction time
and receive a stable identity; they deregister themselves at
destruction time, which compacts the live sequence. An iteration pass
visits every live object in registration order with a bound visitor,
aggregating failures across the whole pass.

The registry stores and compares handles only; it never inspects
their contents. Behavior is bound per registry (constructor,
destructor, visitor) and, because objects are free to carry their own
callables, per instance.

# Basic Usage

Create a registry, register objects, iterate:

	type Counter struct {
	    id    lifecycle.ID
	    ticks int
	}

	newCounter := func(ctx context.Context, r *lifecycle.Registry[*Counter]) (*Counter, error) {
	    c := &Counter{}
	    c.id = r.Register(c)
	    return c, nil
	}

	tick := func(ctx context.Context, c *Counter) error {
	    c.ticks++
	    return nil
	}

	reg, err := lifecycle.New(16, newCounter, tick)
	if err != nil {
	    log.Fatal(err)
	}

	c, _ := reg.Construct(context.Background())
	reg.Iterate(context.Background()) // visits c
	reg.Destroy(context.Background(), c)

# Identity

Register assigns each object a monotonically increasing ID that is
never reused, so identities remain meaningful in logs and external
names (for example a per-object log file) even after earlier objects
are deregistered. Gaps appear in the ID sequence after
deregistration; slot positions, by contrast, shift left when an
earlier object leaves.

# Fatal Violations

Capacity overflow, deregistering an unknown handle, and iterating
without a bound visitor are programming errors, not recoverable
conditions. The registry logs a diagnostic and panics with a typed
error (CapacityError, NotFoundError, IterationError,
MissingCallableError). Use WithExitOnFailure for a hard process abort
instead, or WithFailHandler to observe the error first.

# Thread Safety

All methods are safe for concurrent use. One mutex per registry
serializes Register, Deregister, and the full iteration pass, so an
iteration always sees a consistent snapshot and never skips or
double-visits an object because of a concurrent compaction. Visitors
run under that mutex and must not call back into the same registry.
*/
package lifecycle
