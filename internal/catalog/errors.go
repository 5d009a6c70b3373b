package catalog

import (
	"errors"
	"fmt"
)

// Kind classifies why a fetch did not produce data.
type Kind int

const (
	// KindNetwork means the request could not complete.
	KindNetwork Kind = iota + 1
	// KindProtocol means a response arrived but signalled failure or could not be decoded.
	KindProtocol
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindProtocol:
		return "protocol"
	default:
		return "unknown"
	}
}

// Error is returned for every failed catalog request.
type Error struct {
	Kind    Kind
	Path    string
	Status  int // zero for network failures
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s error fetching %s", e.Kind, e.Path)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// KindOf reports the classification of err, or zero if err did not come from this package.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return 0
}

// StatusOf returns the HTTP status carried by a protocol error, or zero.
func StatusOf(err error) int {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Status
	}
	return 0
}

func networkError(path string, err error) *Error {
	return &Error{
		Kind:    KindNetwork,
		Path:    path,
		Message: fmt.Sprintf("execute request: %v", err),
		Err:     err,
	}
}

func statusError(path string, status int) *Error {
	return &Error{
		Kind:    KindProtocol,
		Path:    path,
		Status:  status,
		Message: fmt.Sprintf("api %s returned status %d", path, status),
	}
}

func decodeError(path string, err error) *Error {
	return &Error{
		Kind:    KindProtocol,
		Path:    path,
		Message: fmt.Sprintf("decode response: %v", err),
		Err:     err,
	}
}
