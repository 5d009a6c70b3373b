// Package nav maps paths to views and keeps the navigation history.
package nav

import (
	"fmt"
	"strconv"
	"strings"
)

// View identifies which screen a route renders.
type View int

const (
	ListView View = iota
	DetailView
	CounterView
)

func (v View) String() string {
	switch v {
	case ListView:
		return "products"
	case DetailView:
		return "product"
	case CounterView:
		return "counter"
	default:
		return "unknown"
	}
}

// Route is a parsed path. ID is only meaningful for DetailView.
type Route struct {
	View View
	ID   int
}

// Parse maps a path onto a route:
//
//	/              list view
//	/products      list view
//	/product/{id}  detail view
//	/counter       counter
func Parse(path string) (Route, error) {
	trimmed := strings.Trim(strings.TrimSpace(path), "/")
	segments := strings.Split(trimmed, "/")
	switch {
	case trimmed == "", trimmed == "products":
		return Route{View: ListView}, nil
	case trimmed == "counter":
		return Route{View: CounterView}, nil
	case len(segments) == 2 && (segments[0] == "product" || segments[0] == "products"):
		id, err := parseIdentifier(segments[1])
		if err != nil {
			return Route{}, fmt.Errorf("parse route %q: %w", path, err)
		}
		return Route{View: DetailView, ID: id}, nil
	}
	return Route{}, fmt.Errorf("no route for %q", path)
}

// Path renders the canonical path for r.
func (r Route) Path() string {
	switch r.View {
	case DetailView:
		return "/product/" + strconv.Itoa(r.ID)
	case CounterView:
		return "/counter"
	default:
		return "/"
	}
}

// Identifier returns the route parameter, or "" for views without one.
func (r Route) Identifier() string {
	if r.View != DetailView {
		return ""
	}
	return strconv.Itoa(r.ID)
}

func parseIdentifier(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid product id %q", raw)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid product id %q", raw)
	}
	return id, nil
}

// Bridge is what views need from navigation: the current route parameter and
// commands to move between views.
type Bridge interface {
	CurrentIdentifier() string
	NavigateTo(identifier string) error
	NavigateBack() bool
}

// Ensure Router implements Bridge at compile time.
var _ Bridge = (*Router)(nil)

// Router is a history stack of routes. The bottom entry is never popped.
type Router struct {
	history []Route
}

// NewRouter starts history at path. Paths other than the list view get the
// list view underneath so that going back always has somewhere to land.
func NewRouter(path string) (*Router, error) {
	route, err := Parse(path)
	if err != nil {
		return nil, err
	}
	r := &Router{history: []Route{{View: ListView}}}
	if route != (Route{View: ListView}) {
		r.history = append(r.history, route)
	}
	return r, nil
}

// Current returns the active route.
func (r *Router) Current() Route {
	if r == nil || len(r.history) == 0 {
		return Route{View: ListView}
	}
	return r.history[len(r.history)-1]
}

// CurrentIdentifier returns the detail identifier of the active route, or "".
func (r *Router) CurrentIdentifier() string {
	return r.Current().Identifier()
}

// NavigateTo pushes the detail route for identifier.
func (r *Router) NavigateTo(identifier string) error {
	id, err := parseIdentifier(identifier)
	if err != nil {
		return err
	}
	r.push(Route{View: DetailView, ID: id})
	return nil
}

// Go pushes the route for path.
func (r *Router) Go(path string) error {
	route, err := Parse(path)
	if err != nil {
		return err
	}
	r.push(route)
	return nil
}

// Replace swaps the active route for path without growing history.
func (r *Router) Replace(path string) error {
	route, err := Parse(path)
	if err != nil {
		return err
	}
	if len(r.history) == 0 {
		r.history = []Route{route}
		return nil
	}
	r.history[len(r.history)-1] = route
	return nil
}

// NavigateBack pops the active route. It reports false at the root.
func (r *Router) NavigateBack() bool {
	if len(r.history) <= 1 {
		return false
	}
	r.history = r.history[:len(r.history)-1]
	return true
}

// Depth returns the number of routes in history.
func (r *Router) Depth() int {
	return len(r.history)
}

func (r *Router) push(route Route) {
	if route == r.Current() && len(r.history) > 0 {
		return
	}
	r.history = append(r.history, route)
}
