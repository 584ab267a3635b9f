package cell

import (
	"errors"
	"testing"

	"github.com/ib-77/fcell/pkg/fcell"
)

// combineRef pairs two reference cells; the merge order is the library's.
func combineRef[A, B any](cf *refCell[func(A) B], ca *refCell[A],
	merge func(fcell.Result[func(A) B], fcell.Result[A]) fcell.Result[B]) *refCell[B] {
	return &refCell[B]{res: merge(cf.res, ca.res)}
}

func double(x int) int { return x * 2 }

func TestApply_BothSuccess(t *testing.T) {
	t.Parallel()
	cf := storeRef(fcell.Success[func(int) int](double))
	ca := storeRef(fcell.Success(21))

	out := Apply(combineRef[int, int], cf, ca)
	if !out.res.IsSuccess() || out.res.Result() != 42 {
		t.Fatalf("expected success with 42, got: success=%v, val=%v, err=%v", out.res.IsSuccess(), out.res.Result(), out.res.Err())
	}
}

func TestApply_FunctionSideFailureWins(t *testing.T) {
	t.Parallel()
	cf := storeRef(fcell.Fail[func(int) int](errors.New("no func")))
	ca := storeRef(fcell.Fail[int](errors.New("no value")))

	out := Apply(combineRef[int, int], cf, ca)
	if out.res.IsSuccess() || out.res.Err() == nil || out.res.Err().Error() != "no func" {
		t.Fatalf("function side failure must win, got: success=%v, err=%v", out.res.IsSuccess(), out.res.Err())
	}
}

func TestApply_ValueSideFailure(t *testing.T) {
	t.Parallel()
	cf := storeRef(fcell.Success[func(int) int](double))
	ca := storeRef(fcell.Fail[int](errors.New("no value")))

	out := Apply(combineRef[int, int], cf, ca)
	if out.res.IsSuccess() || out.res.Err() == nil || out.res.Err().Error() != "no value" {
		t.Fatalf("expected value side failure, got: success=%v, err=%v", out.res.IsSuccess(), out.res.Err())
	}
}

func TestApplyResult_FunctionNotInvokedOnFailure(t *testing.T) {
	t.Parallel()
	called := false
	rf := fcell.Success[func(int) int](func(x int) int {
		called = true
		return x
	})
	ra := fcell.Fail[int](errors.New("bad"))

	out := ApplyResult(rf, ra)
	if out.IsSuccess() {
		t.Fatalf("expected failure, got success with %v", out.Result())
	}
	if called {
		t.Fatalf("held function must not run when the value side failed")
	}
}

func TestApplyResult_CrossType(t *testing.T) {
	t.Parallel()
	rf := fcell.Success[func(int) string](func(x int) string {
		if x > 0 {
			return "pos"
		}
		return "neg"
	})
	out := ApplyResult(rf, fcell.Success(3))
	if !out.IsSuccess() || out.Result() != "pos" {
		t.Fatalf("expected success 'pos', got: success=%v, val=%v", out.IsSuccess(), out.Result())
	}
}
