package fcell

import (
	"time"

	"github.com/google/uuid"
)

// Result is a two-state fallible value: a success carrying T, or a
// failure carrying an erased *Failure. The state is fixed at
// construction and never changes in place.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	fail      *Failure
	isSuccess bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		fail:      nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail erases err before storing it; every error type is accepted.
func Fail[T any](err error) Result[T] {
	return Result[T]{
		fail:      Erase(err),
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom carries an existing failure into a Result of another value
// type, preserving identity and creation time.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		fail:      from.fail,
		isSuccess: from.isSuccess,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	if r.fail == nil {
		return nil
	}
	return r.fail
}

// Failure returns the erased failure, nil on success.
func (r Result[T]) Failure() *Failure {
	return r.fail
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && r.fail != nil
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) IsEmpty() bool {
	return r.fail == nil && !r.isSuccess
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
