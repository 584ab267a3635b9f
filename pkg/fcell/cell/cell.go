package cell

import (
	"context"

	"github.com/ib-77/fcell/pkg/fcell"
)

// Store places a completed result into a container of type C, possibly
// with a side effect (allocation, synchronization).
type Store[C, T any] func(ctx context.Context, r fcell.Result[T]) (C, error)

// Alloc produces an empty container of type C.
type Alloc[C any] func(ctx context.Context) (C, error)

// FromResult erases err and stores the outcome via the pure store
// primitive. The erasure is total: every error value is accepted.
func FromResult[C, T any](store func(fcell.Result[T]) C, value T, err error) C {
	if !fcell.IsNil(err) {
		return store(fcell.Fail[T](err))
	}
	return store(fcell.Success(value))
}

// FromResultCtx is the effectful counterpart of FromResult.
func FromResultCtx[C, T any](ctx context.Context, store Store[C, T],
	value T, err error) (C, error) {

	if !fcell.IsNil(err) {
		return store(ctx, fcell.Fail[T](err))
	}
	return store(ctx, fcell.Success(value))
}

// NewValue stores a successful value.
func NewValue[C, T any](ctx context.Context, store Store[C, T], value T) (C, error) {
	return store(ctx, fcell.Success(value))
}

// NewFailure erases err and stores the failure.
func NewFailure[C, T any](ctx context.Context, store Store[C, T], err error) (C, error) {
	return store(ctx, fcell.Fail[T](err))
}

// NewEmpty allocates an empty container. It is an identity wrapper over
// the caller's primitive, kept as a named constructor so the intent
// reads at the call site; it performs no transformation.
func NewEmpty[C any](ctx context.Context, alloc Alloc[C]) (C, error) {
	return alloc(ctx)
}

// Pure lifts a plain value into a container that supports applicative
// lifting, wrapping it as a success.
func Pure[C, T any](lift func(fcell.Result[T]) C, value T) C {
	return lift(fcell.Success(value))
}

// FailureCell is symmetric to Pure, for a failure value.
func FailureCell[C, T any](lift func(fcell.Result[T]) C, err error) C {
	return lift(fcell.Fail[T](err))
}
