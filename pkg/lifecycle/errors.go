package lifecycle

import (
	"errors"
	"fmt"
)

// Sentinel errors for registry creation.
var (
	// ErrInvalidCapacity indicates New() was called with capacity <= 0.
	ErrInvalidCapacity = errors.New("capacity must be positive")
)

// Sentinel errors for fatal registry violations. A registry never
// recovers from these; they reach the caller only through the
// registry's fail handler (panic by default).
var (
	// ErrCapacityExceeded indicates Register() was called on a full registry.
	ErrCapacityExceeded = errors.New("registry at capacity")

	// ErrNotRegistered indicates Deregister() was called with an unknown
	// handle, or on an empty registry.
	ErrNotRegistered = errors.New("handle not registered")

	// ErrAlreadyRegistered indicates Register() was called twice with the
	// same handle.
	ErrAlreadyRegistered = errors.New("handle already registered")

	// ErrIterationFailed indicates one or more visitor invocations failed
	// during Iterate().
	ErrIterationFailed = errors.New("iteration failed")

	// ErrMissingCallable indicates an operation was invoked with no bound
	// callable (Iterate without a visitor, Construct without a constructor).
	ErrMissingCallable = errors.New("no callable bound")
)

// CapacityError reports a Register() call on a full registry.
type CapacityError struct {
	// Registry is the name of the registry that overflowed.
	Registry string
	// Capacity is the fixed slot capacity.
	Capacity int
}

// Error implements the error interface.
func (e *CapacityError) Error() string {
	return fmt.Sprintf("registry %s: register would exceed capacity %d", e.Registry, e.Capacity)
}

// Unwrap returns ErrCapacityExceeded for errors.Is support.
func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}

// NotFoundError reports a Deregister() call for a handle the registry
// does not hold.
type NotFoundError struct {
	// Registry is the name of the registry.
	Registry string
	// Live is the number of live handles at the time of the call.
	Live int
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Live == 0 {
		return fmt.Sprintf("registry %s: deregister on empty registry", e.Registry)
	}
	return fmt.Sprintf("registry %s: handle not found among %d live objects", e.Registry, e.Live)
}

// Unwrap returns ErrNotRegistered for errors.Is support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotRegistered
}

// DuplicateError reports a Register() call for a handle that is
// already live in the registry.
type DuplicateError struct {
	// Registry is the name of the registry.
	Registry string
	// ID is the identity the handle already holds.
	ID ID
}

// Error implements the error interface.
func (e *DuplicateError) Error() string {
	return fmt.Sprintf("registry %s: handle already registered with id %d", e.Registry, e.ID)
}

// Unwrap returns ErrAlreadyRegistered for errors.Is support.
func (e *DuplicateError) Unwrap() error {
	return ErrAlreadyRegistered
}

// IterationError aggregates visitor failures from a full Iterate() pass.
// Every live object is visited before the error is raised; a single
// misbehaving object does not stop visits to the others.
type IterationError struct {
	// Registry is the name of the registry.
	Registry string
	// Failures is the number of visitor invocations that returned an error.
	Failures int
	// Visited is the total number of objects visited.
	Visited int
	// Err joins the individual visitor errors.
	Err error
}

// Error implements the error interface.
func (e *IterationError) Error() string {
	return fmt.Sprintf("registry %s: %d of %d visits failed: %v", e.Registry, e.Failures, e.Visited, e.Err)
}

// Unwrap returns the joined visitor errors for errors.Is/As support.
// IterationError also matches ErrIterationFailed via Is.
func (e *IterationError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrIterationFailed.
func (e *IterationError) Is(target error) bool {
	return target == ErrIterationFailed
}

// MissingCallableError reports an operation invoked without the
// callable it needs.
type MissingCallableError struct {
	// Registry is the name of the registry.
	Registry string
	// Op is the operation that was attempted ("iterate", "construct").
	Op string
}

// Error implements the error interface.
func (e *MissingCallableError) Error() string {
	return fmt.Sprintf("registry %s: %s invoked with no bound callable", e.Registry, e.Op)
}

// Unwrap returns ErrMissingCallable for errors.Is support.
func (e *MissingCallableError) Unwrap() error {
	return ErrMissingCallable
}
