// Package lifecycle drives the idle/loading/success/failure progression of a
// single asynchronous fetch bound to a view.
//
// A Controller owns exactly one State and the dependency (key) it was last
// started for. Start resets the state to Loading and returns a Bubble Tea
// command that runs the loader once; the resulting message carries the
// Attempt it was issued for. Apply only commits a Result whose Attempt matches
// the controller's current one, so a response for a superseded key (or for a
// view that has since been unmounted) is dropped instead of overwriting newer
// state.
//
// Controllers are plain values mutated only from a tea.Model's Update method,
// which keeps every state transition on the program's event loop.
package lifecycle
