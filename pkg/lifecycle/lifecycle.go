package lifecycle

import (
	"context"
	"fmt"
)

// Construct invokes the constructor bound at creation. The
// constructor registers the new handle before returning, so a handle
// returned here is always live: construction succeeds only if
// registration succeeded.
//
// Construct with no bound constructor is fatal.
func (r *Registry[H]) Construct(ctx context.Context) (H, error) {
	if r.construct == nil {
		r.fatal(&MissingCallableError{Registry: r.name, Op: "construct"})
	}

	ctx, span := r.spans.StartConstructSpan(ctx, r.name)
	h, err := r.construct(ctx, r)
	r.spans.EndSpanWithError(span, err)

	if err != nil {
		var zero H
		return zero, fmt.Errorf("construct: %w", err)
	}
	return h, nil
}

// Destroy releases a live object. When a destructor is bound it runs
// and must deregister the handle; without one the registry
// deregisters the handle itself. Either way deregistration happens
// exactly once per Destroy, on every path.
//
// Destroying a handle that is not live is fatal (via Deregister).
func (r *Registry[H]) Destroy(ctx context.Context, h H) {
	ctx, span := r.spans.StartDestroySpan(ctx, r.name)
	defer r.spans.EndSpanWithError(span, nil)

	if r.destroy != nil {
		r.destroy(ctx, r, h)
		return
	}
	r.Deregister(h)
}
