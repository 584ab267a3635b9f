package cell

import (
	"context"

	"github.com/ib-77/fcell/pkg/fcell"
)

// Test containers. The library never ships one, so the tests bring the
// three families named in the contract: a bare reference cell, a
// single-slot blocking holder, and (in the integration tests) a queue.

type refCell[T any] struct {
	res fcell.Result[T]
}

func storeRef[T any](r fcell.Result[T]) *refCell[T] {
	return &refCell[T]{res: r}
}

func storeRefCtx[T any](_ context.Context, r fcell.Result[T]) (*refCell[T], error) {
	return &refCell[T]{res: r}, nil
}

func readRef[T any](_ context.Context, c *refCell[T]) (fcell.Result[T], error) {
	return c.res, nil
}

// slot is a single-slot holder; reads block until a result is stored.
type slot[T any] chan fcell.Result[T]

func allocSlot[T any](_ context.Context) (slot[T], error) {
	return make(slot[T], 1), nil
}

func storeSlot[T any](ctx context.Context, r fcell.Result[T]) (slot[T], error) {
	s := make(slot[T], 1)
	select {
	case s <- r:
		return s, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func readSlot[T any](ctx context.Context, s slot[T]) (fcell.Result[T], error) {
	select {
	case r := <-s:
		return r, nil
	case <-ctx.Done():
		return fcell.Result[T]{}, ctx.Err()
	}
}
