// Package flow provides a minimal fluent Flow[T] for staging a result
// before it is stored into a fallible cell.
//
// It keeps the API surface very small:
// - Of/OfErr/Try: create a Flow from a value, an error, or a (T, error) call
// - Map/Then: transform the staged value
// - Tee: trigger side effects on success only
// - Result: expose the staged fcell.Result
// - Store/StoreCtx: terminate by invoking a store primitive exactly once
//
// Flow is synchronous and allocation-free beyond the Result itself; it
// never touches the container until the terminal Store call.
package flow
