package fcell

import "time"

type ValueProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// FallibleValue defines an interface for types that hold either a value
// or an erased failure
type FallibleValue[T any] interface {
	ValueProvider[T]
	// Err returns the erased failure if the value could not be obtained
	Err() error
	// IsSuccess returns true if a value is held
	IsSuccess() bool
}
