package fcell

import (
	"errors"
	"fmt"
	"reflect"
)

// Failure is the type-erased form of a concrete error value. The
// original type information is gone, but the description stays
// reachable through Error and the original value through Unwrap, so
// errors.Is/errors.As still see it.
type Failure struct {
	cause error
}

// Erase converts any error into its erased representation. Total over
// every error type; idempotent; nil maps to nil.
func Erase(err error) *Failure {
	if IsNil(err) {
		return nil
	}
	if f, ok := err.(*Failure); ok {
		return f
	}
	return &Failure{cause: err}
}

// EraseValue erases an arbitrary value. Errors keep their identity,
// anything else is captured by its string form.
func EraseValue(v any) *Failure {
	if IsNil(v) {
		return nil
	}
	if err, ok := v.(error); ok {
		return Erase(err)
	}
	return &Failure{cause: errors.New(fmt.Sprint(v))}
}

func (f *Failure) Error() string {
	return f.cause.Error()
}

func (f *Failure) Unwrap() error {
	return f.cause
}

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}
