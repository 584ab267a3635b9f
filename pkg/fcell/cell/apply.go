package cell

import "github.com/ib-77/fcell/pkg/fcell"

// Combine is the container-level applicative combination supplied by the
// caller: it runs merge over the two held results in whatever way the
// container pairs them up.
type Combine[CF, CA, CB, A, B any] func(cf CF, ca CA,
	merge func(rf fcell.Result[func(A) B], ra fcell.Result[A]) fcell.Result[B]) CB

// Apply applies a function held in one cell to a value held in another.
// The result-level merge is ApplyResult; pairing the containers is the
// caller's combine.
func Apply[CF, CA, CB, A, B any](combine Combine[CF, CA, CB, A, B], cf CF, ca CA) CB {
	return combine(cf, ca, ApplyResult[A, B])
}

// ApplyResult merges two results, function side first: a failure on the
// function side wins, then a failure on the value side, and only when
// both are successes is the function applied.
func ApplyResult[A, B any](rf fcell.Result[func(A) B], ra fcell.Result[A]) fcell.Result[B] {
	if !rf.IsSuccess() {
		return fcell.FailFrom[func(A) B, B](rf)
	}
	if !ra.IsSuccess() {
		return fcell.FailFrom[A, B](ra)
	}
	return fcell.Success(rf.Result()(ra.Result()))
}
