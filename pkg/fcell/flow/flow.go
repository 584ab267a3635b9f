package flow

import (
	"context"

	"github.com/ib-77/fcell/pkg/fcell"
	"github.com/ib-77/fcell/pkg/fcell/cell"
)

type Flow[T any] struct {
	res fcell.Result[T]
}

func Start[T any](r fcell.Result[T]) Flow[T] {
	return Flow[T]{res: r}
}

func Of[T any](v T) Flow[T] {
	return Start(fcell.Success(v))
}

func OfErr[T any](err error) Flow[T] {
	return Start(fcell.Fail[T](err))
}

// Try starts a flow from a (T, error) call, the usual repo-call shape.
func Try[T any](f func() (T, error)) Flow[T] {
	v, err := f()
	if err != nil {
		return OfErr[T](err)
	}
	return Of(v)
}

func (f Flow[T]) Result() fcell.Result[T] {
	return f.res
}

// Then composes functions that already return fcell.Result[T]
func (f Flow[T]) Then(onSuccess func(t T) fcell.Result[T]) Flow[T] {
	if !f.res.IsSuccess() {
		return f
	}
	return Flow[T]{res: onSuccess(f.res.Result())}
}

// Map transforms the staged value to a new value
func (f Flow[T]) Map(onSuccess func(t T) T) Flow[T] {
	if !f.res.IsSuccess() {
		return f
	}
	return Flow[T]{res: fcell.Success(onSuccess(f.res.Result()))}
}

// Tee triggers side effects for success/failure without changing the result
func (f Flow[T]) Tee(onSuccess func(T), onFailure func(error)) Flow[T] {
	if f.res.IsFailure() {
		if onFailure != nil {
			onFailure(f.res.Err())
		}
		return f
	}

	if onSuccess != nil {
		onSuccess(f.res.Result())
	}
	return f
}

// Store collapses the flow into a container via the pure store primitive.
func Store[C, T any](f Flow[T], store func(fcell.Result[T]) C) C {
	return store(f.res)
}

// StoreCtx collapses the flow into a container via the effectful store
// primitive, invoking it exactly once.
func StoreCtx[C, T any](ctx context.Context, f Flow[T], store cell.Store[C, T]) (C, error) {
	return store(ctx, f.res)
}
