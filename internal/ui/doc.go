// Package ui renders the kiosk terminal interface with Bubble Tea.
//
// The root Model mounts one view at a time, chosen by the navigator's current
// route:
//
//   - Product list: GET /products on every mount, rendered in response order
//   - Product detail: GET /products/{id}, restarted whenever the id changes
//   - Counter: dispatches actions to the shared state.Store
//
// Each fetching view owns a lifecycle.Controller. Starting a fetch returns a
// tea.Cmd; its result comes back through Update and is applied only if it
// belongs to the controller's current attempt, so a slow response for a
// product the user has already left never replaces the newer one. Leaving a
// view resets its controller, which makes anything still in flight stale.
//
// # Key Bindings
//
//   - j/k, g/G: move the list cursor
//   - enter: open the selected product
//   - [ and ]: previous/next product from the detail view
//   - esc: back
//   - r: reload the current view
//   - p, c: products, counter
//   - T: cycle theme
//   - h or ?: help
//   - q or Ctrl+C: quit
package ui
