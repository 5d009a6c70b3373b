package lifecycle

// Phase names the active variant of a State.
type Phase int

const (
	Idle Phase = iota
	Loading
	Success
	Failure
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

// State is a tagged variant over Idle, Loading, Success(data) and Failure(err).
// The zero value is Idle.
type State[T any] struct {
	phase Phase
	data  T
	err   error
}

// Phase reports the active variant.
func (s State[T]) Phase() Phase { return s.phase }

// Loading reports whether a fetch is outstanding.
func (s State[T]) Loading() bool { return s.phase == Loading }

// Data returns the payload; ok is false unless the state is Success.
func (s State[T]) Data() (data T, ok bool) {
	if s.phase != Success {
		var zero T
		return zero, false
	}
	return s.data, true
}

// Err returns the failure cause, or nil unless the state is Failure.
func (s State[T]) Err() error {
	if s.phase != Failure {
		return nil
	}
	return s.err
}

// Message is the user-facing failure text ("Error: ..."), empty unless Failure.
func (s State[T]) Message() string {
	if s.phase != Failure || s.err == nil {
		return ""
	}
	return "Error: " + s.err.Error()
}

func loadingState[T any]() State[T] {
	return State[T]{phase: Loading}
}

func resolvedState[T any](data T, err error) State[T] {
	if err != nil {
		return State[T]{phase: Failure, err: err}
	}
	return State[T]{phase: Success, data: data}
}
