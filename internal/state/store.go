package state

import (
	"sync"
	"time"
)

// ActionKind names a counter action.
type ActionKind int

const (
	ActionIncrement ActionKind = iota + 1
	ActionDecrement
	ActionIncrementByAmount
	ActionReset
)

func (k ActionKind) String() string {
	switch k {
	case ActionIncrement:
		return "increment"
	case ActionDecrement:
		return "decrement"
	case ActionIncrementByAmount:
		return "incrementByAmount"
	case ActionReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Action is a counter action. Amount is only read by ActionIncrementByAmount.
type Action struct {
	Kind   ActionKind
	Amount int
}

// Increment adds one.
func Increment() Action { return Action{Kind: ActionIncrement} }

// Decrement subtracts one, never going below zero.
func Decrement() Action { return Action{Kind: ActionDecrement} }

// IncrementByAmount adds n, which may be negative.
func IncrementByAmount(n int) Action { return Action{Kind: ActionIncrementByAmount, Amount: n} }

// Reset returns the counter to zero.
func Reset() Action { return Action{Kind: ActionReset} }

// Counter is the counter slice of application state.
type Counter struct {
	Value int
}

// CanDecrement reports whether Decrement would change the value.
func (c Counter) CanDecrement() bool {
	return c.Value > 0
}

// Reduce applies a to s and returns the new state. It never mutates s.
// Decrement at zero is a no-op; unknown actions return s unchanged.
func Reduce(s Counter, a Action) Counter {
	switch a.Kind {
	case ActionIncrement:
		return Counter{Value: s.Value + 1}
	case ActionDecrement:
		if !s.CanDecrement() {
			return s
		}
		return Counter{Value: s.Value - 1}
	case ActionIncrementByAmount:
		return Counter{Value: s.Value + a.Amount}
	case ActionReset:
		return Counter{}
	default:
		return s
	}
}

// Snapshot is a copy of the store contents.
type Snapshot struct {
	Counter     Counter
	LastAction  ActionKind
	Dispatched  int
	LastUpdated time.Time
}

// Store owns application state and applies actions through Reduce. It is
// handed to the views that need it; there is no package-level instance.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Dispatch reduces a into the stored state and returns the resulting snapshot.
func (s *Store) Dispatch(a Action) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Counter = Reduce(s.snapshot.Counter, a)
	s.snapshot.LastAction = a.Kind
	s.snapshot.Dispatched++
	s.snapshot.LastUpdated = time.Now()
	return s.snapshot
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}
