package kll

import (
	"errors"
	"fmt"
)

var (
	// ErrCreation indicates the native library failed to allocate or
	// duplicate a sketch.
	ErrCreation = errors.New("kll: sketch creation failed")

	// ErrSerialization indicates the native serialize call failed.
	ErrSerialization = errors.New("kll: serialization failed")

	// ErrDeserialization indicates the native reconstruct call failed,
	// typically on malformed, truncated, or incompatible bytes.
	ErrDeserialization = errors.New("kll: deserialization failed")

	// ErrInvalidParameter indicates an argument was rejected before reaching
	// the native side.
	ErrInvalidParameter = errors.New("kll: invalid parameter")

	// ErrNullPointer indicates an operation touched a sketch whose native
	// handle has already been released.
	ErrNullPointer = errors.New("kll: nil sketch handle")

	// ErrSketchClosed indicates Close was called more than once.
	ErrSketchClosed = errors.New("kll: sketch already closed")

	// ErrUnknown is reserved for native failure signals that do not map to
	// any other kind.
	ErrUnknown = errors.New("kll: unknown native failure")
)

// Error wraps an underlying error with the operation that failed.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("kll.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// errorf creates a new Error. Format verbs may include %w.
func errorf(op string, format string, args ...interface{}) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf(format, args...),
	}
}

// wrapNative classifies a bindings-layer failure under kind while keeping the
// original error reachable through errors.Is/As.
func wrapNative(op string, kind, err error) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf("%w: %w", kind, err),
	}
}
