package lifecycle

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// Loader fetches the value for key. It is invoked at most once per Start.
type Loader[K comparable, T any] func(ctx context.Context, key K) (T, error)

// Attempt tags a fetch with the dependency it was issued for.
type Attempt[K comparable] struct {
	Key K
	Seq uint64
}

// Result is the message produced by the command returned from Start.
type Result[K comparable, T any] struct {
	Attempt Attempt[K]
	Data    T
	Err     error
}

var errNoLoader = errors.New("no loader configured")

// Controller owns the fetch state for one view instance.
type Controller[K comparable, T any] struct {
	load    Loader[K, T]
	state   State[T]
	current Attempt[K]
	started bool
}

// New returns an Idle controller backed by load.
func New[K comparable, T any](load Loader[K, T]) Controller[K, T] {
	return Controller[K, T]{load: load}
}

// State returns the current state.
func (c Controller[K, T]) State() State[T] { return c.state }

// Key returns the dependency of the current attempt; ok is false before the first Start.
func (c Controller[K, T]) Key() (key K, ok bool) {
	return c.current.Key, c.started
}

// Attempt returns the current attempt tag.
func (c Controller[K, T]) Attempt() Attempt[K] { return c.current }

// Start begins a new attempt for key: the state becomes Loading and any
// previous payload or in-flight attempt is discarded. The returned command
// calls the loader exactly once.
func (c *Controller[K, T]) Start(ctx context.Context, key K) tea.Cmd {
	c.current = Attempt[K]{Key: key, Seq: c.current.Seq + 1}
	c.started = true
	c.state = loadingState[T]()

	attempt := c.current
	load := c.load
	if ctx == nil {
		ctx = context.Background()
	}
	return func() tea.Msg {
		if load == nil {
			return Result[K, T]{Attempt: attempt, Err: errNoLoader}
		}
		data, err := load(ctx, attempt.Key)
		return Result[K, T]{Attempt: attempt, Data: data, Err: err}
	}
}

// StartIfChanged starts a new attempt only when key differs from the current
// dependency or nothing has been started yet.
func (c *Controller[K, T]) StartIfChanged(ctx context.Context, key K) tea.Cmd {
	if c.started && c.current.Key == key {
		return nil
	}
	return c.Start(ctx, key)
}

// Apply commits res if it belongs to the current attempt and reports whether
// it did. Results from superseded attempts are ignored.
func (c *Controller[K, T]) Apply(res Result[K, T]) bool {
	if !c.started || res.Attempt != c.current || c.state.phase != Loading {
		return false
	}
	c.state = resolvedState(res.Data, res.Err)
	return true
}

// Reset returns the controller to Idle, as when its view unmounts. Any
// outstanding result becomes stale.
func (c *Controller[K, T]) Reset() {
	var zero K
	c.current = Attempt[K]{Key: zero, Seq: c.current.Seq + 1}
	c.started = false
	c.state = State[T]{}
}
