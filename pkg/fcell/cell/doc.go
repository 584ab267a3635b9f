// Package cell contains the smart constructors and readers for fallible
// cells: containers of some caller-chosen type C holding a single
// fcell.Result[T]. The package never defines a container itself; every
// container behavior arrives as a caller-supplied primitive, invoked
// exactly once per call.
//
// Highlights:
// - FromResult/FromResultCtx: store a (value, error) pair, erasing the error
// - NewValue/NewFailure: store a plain value or a plain failure
// - NewEmpty: allocate an empty container via the caller's primitive
// - Pure/FailureCell: applicative lifts for containers that support them
// - Apply/ApplyResult: apply a function held in one cell to a value in another
// - Read: extract once, return the value or dispatch to a failure handler
// - View/ReadOr/ReadOrElse: Read with a fixed handler
//
// Blocking, ordering and thread safety are entirely the container's
// business: a single-slot holder may block in its read primitive, a bare
// reference cell gives no synchronization at all.
package cell
