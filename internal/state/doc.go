// Package state holds the application state that outlives a single view.
//
// # Overview
//
// Today that is the counter exercise: a Counter value changed only through
// Actions applied by the pure Reduce function. Store wraps the current value
// behind a mutex and is passed explicitly to whoever needs it.
//
//	view ──Dispatch(action)──> Store ──Reduce(state, action)──> new state
//	view <──────────── Snapshot() (copy) ─────────────────────────┘
//
// # Reducers
//
// Reduce takes a Counter by value and returns a fresh Counter. It never
// mutates its input, which keeps each transition testable in isolation:
//
//	next := state.Reduce(state.Counter{Value: 1}, state.Increment())
//
// Decrement at zero is a no-op; the counter view also disables the key.
//
// # Concurrency
//
// Dispatch takes the write lock for the duration of one reduction. Snapshot
// takes the read lock and returns a copy, so callers may keep or modify the
// result freely.
//
// Fetched catalog data does not live here. Each view owns its fetch state
// through a lifecycle.Controller and rebuilds it on every mount.
package state
