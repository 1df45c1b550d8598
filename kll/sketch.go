package kll

const (
	// MinK is the smallest resolution the KLL algorithm accepts.
	MinK = 8

	// DefaultK is the resolution the native library uses when a sketch is
	// constructed without an explicit k.
	DefaultK = 200
)

// Cloner is the duplication capability shared by both sketch types. Clone
// always returns a deep, fully independent duplicate; the strategy behind it
// is fixed per element width. DoubleSketch delegates to the native copy
// constructor, FloatSketch reconstructs from serialized bytes because the
// float shim exports no copy entry point.
type Cloner[S any] interface {
	Clone() S
}

var (
	_ Cloner[*DoubleSketch] = (*DoubleSketch)(nil)
	_ Cloner[*FloatSketch]  = (*FloatSketch)(nil)
)
