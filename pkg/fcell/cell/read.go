package cell

import (
	"context"

	"github.com/ib-77/fcell/pkg/fcell"
)

// Reader extracts the current result from a container, possibly blocking
// or suspending until one is present.
type Reader[C, T any] func(ctx context.Context, c C) (fcell.Result[T], error)

// Read is the single unifying access pattern: it invokes the read
// primitive exactly once, returns the value on success and dispatches
// the erased failure to onFailure otherwise. An error from the read
// primitive itself is returned as-is; onFailure is never consulted for
// it.
func Read[C, T any](ctx context.Context, read Reader[C, T],
	onFailure func(ctx context.Context, err error) (T, error), c C) (T, error) {

	r, err := read(ctx, c)
	if err != nil {
		var zero T
		return zero, err
	}

	if r.IsSuccess() {
		return r.Result(), nil
	}
	return onFailure(ctx, r.Err())
}

// View reads a cell as if it held plain values: on success the value, on
// failure the erased error surfaces through the ordinary error return,
// exactly as if it had originated here.
func View[C, T any](ctx context.Context, read Reader[C, T], c C) (T, error) {
	return Read(ctx, read, func(_ context.Context, err error) (T, error) {
		var zero T
		return zero, err
	}, c)
}

// ReadOr substitutes a fallback value for any held failure.
func ReadOr[C, T any](ctx context.Context, read Reader[C, T], fallback T, c C) (T, error) {
	return Read(ctx, read, func(_ context.Context, _ error) (T, error) {
		return fallback, nil
	}, c)
}

// ReadOrElse recovers from a held failure through a total function.
func ReadOrElse[C, T any](ctx context.Context, read Reader[C, T],
	orElse func(ctx context.Context, err error) T, c C) (T, error) {

	return Read(ctx, read, func(ctx context.Context, err error) (T, error) {
		return orElse(ctx, err), nil
	}, c)
}
