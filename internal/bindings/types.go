package bindings

import "errors"

var (
	// ErrNotBuilt reports that the native KLL shim was not linked into the
	// current binary. Constructors surface it unchanged so callers can detect
	// a build without the native library.
	ErrNotBuilt = errors.New("kll/internal/bindings: native bindings not built")

	// ErrCGONotEnabled signals that the package was compiled without cgo and
	// therefore cannot talk to the native library.
	ErrCGONotEnabled = errors.New("kll/internal/bindings: cgo not enabled")
)
