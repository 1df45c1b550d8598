package kll

import (
	"math"
	"unsafe"

	"github.com/homeffjy/kll-go/internal/bindings"
)

// DoubleSketch is a KLL quantile sketch over float64 values. It owns exactly
// one native sketch; the zero value is not usable, construct through
// NewDoubleSketch, NewDoubleSketchWithK, or DeserializeDoubleSketch and
// release with Close.
type DoubleSketch struct {
	h unsafe.Pointer
}

// NewDoubleSketch creates an empty sketch with the library default
// resolution (DefaultK).
func NewDoubleSketch() (*DoubleSketch, error) {
	h, err := bindings.DoubleNew()
	if err != nil {
		return nil, wrapNative("NewDoubleSketch", ErrCreation, err)
	}
	return &DoubleSketch{h: h}, nil
}

// MustNewDoubleSketch is like NewDoubleSketch but panics on failure. Default
// construction fails only when the native allocator is exhausted, which has
// no recovery at the call site.
func MustNewDoubleSketch() *DoubleSketch {
	s, err := NewDoubleSketch()
	if err != nil {
		panic("kll: failed to create default DoubleSketch: " + err.Error())
	}
	return s
}

// NewDoubleSketchWithK creates an empty sketch with an explicit resolution.
// k controls the accuracy/space trade-off; values below MinK are rejected
// before any native allocation.
func NewDoubleSketchWithK(k uint16) (*DoubleSketch, error) {
	if !validK(k) {
		return nil, errorf("NewDoubleSketchWithK", "%w: k must be at least %d, got %d", ErrInvalidParameter, MinK, k)
	}
	h, err := bindings.DoubleNewWithK(k)
	if err != nil {
		return nil, wrapNative("NewDoubleSketchWithK", ErrCreation, err)
	}
	return &DoubleSketch{h: h}, nil
}

// DeserializeDoubleSketch reconstructs a sketch from bytes produced by
// Serialize. The bytes are opaque; the native side rejects malformed,
// truncated, or incompatible input.
func DeserializeDoubleSketch(data []byte) (*DoubleSketch, error) {
	h, err := bindings.DoubleDeserialize(data)
	if err != nil {
		return nil, wrapNative("DeserializeDoubleSketch", ErrDeserialization, err)
	}
	return &DoubleSketch{h: h}, nil
}

// Close releases the native sketch. The first call frees the handle exactly
// once; subsequent calls return ErrSketchClosed.
func (s *DoubleSketch) Close() error {
	if s == nil {
		return nil
	}
	if s.h == nil {
		return ErrSketchClosed
	}
	bindings.DoubleFree(s.h)
	s.h = nil
	return nil
}

// mustHandle guards accessors that have no error channel. Reaching a
// released handle here is a caller bug, not a recoverable condition.
func (s *DoubleSketch) mustHandle(op string) {
	if s.h == nil {
		panic("kll." + op + ": use of closed DoubleSketch")
	}
}

// Update ingests a single value. It cannot fail and may be called any number
// of times.
func (s *DoubleSketch) Update(value float64) {
	s.mustHandle("Update")
	bindings.DoubleUpdate(s.h, value)
}

// Merge absorbs other's data into s, leaving other unmodified. Sketches with
// differing k are merged on the native side's own compatibility terms.
// Merging a closed sketch, in either position, returns ErrNullPointer.
func (s *DoubleSketch) Merge(other *DoubleSketch) error {
	if s == nil || s.h == nil {
		return &Error{Op: "Merge", Err: ErrNullPointer}
	}
	if other == nil || other.h == nil {
		return &Error{Op: "Merge", Err: ErrNullPointer}
	}
	bindings.DoubleMerge(s.h, other.h)
	return nil
}

// IsEmpty reports whether the sketch has ingested no values.
func (s *DoubleSketch) IsEmpty() bool {
	s.mustHandle("IsEmpty")
	return bindings.DoubleIsEmpty(s.h)
}

// K returns the resolution fixed at construction.
func (s *DoubleSketch) K() uint16 {
	s.mustHandle("K")
	return bindings.DoubleK(s.h)
}

// N returns the count of values ever ingested.
func (s *DoubleSketch) N() uint64 {
	s.mustHandle("N")
	return bindings.DoubleN(s.h)
}

// NumRetained returns the count of items currently held internally. It is
// always <= N.
func (s *DoubleSketch) NumRetained() uint32 {
	s.mustHandle("NumRetained")
	return bindings.DoubleNumRetained(s.h)
}

// IsEstimationMode reports whether internal compaction has begun
// approximating rather than retaining exact values.
func (s *DoubleSketch) IsEstimationMode() bool {
	s.mustHandle("IsEstimationMode")
	return bindings.DoubleIsEstimationMode(s.h)
}

// MinValue returns the smallest value ingested, or NaN if the sketch is
// empty. The native min/max getters are undefined on an empty sketch, so the
// empty case never crosses the boundary.
func (s *DoubleSketch) MinValue() float64 {
	s.mustHandle("MinValue")
	if bindings.DoubleIsEmpty(s.h) {
		return math.NaN()
	}
	return bindings.DoubleMinValue(s.h)
}

// MaxValue returns the largest value ingested, or NaN if the sketch is empty.
func (s *DoubleSketch) MaxValue() float64 {
	s.mustHandle("MaxValue")
	if bindings.DoubleIsEmpty(s.h) {
		return math.NaN()
	}
	return bindings.DoubleMaxValue(s.h)
}

// Quantile returns the approximate value at the given rank fraction in
// [0, 1]. It returns NaN if the sketch is empty or the fraction is not a
// finite value in range.
func (s *DoubleSketch) Quantile(fraction float64) float64 {
	s.mustHandle("Quantile")
	if bindings.DoubleIsEmpty(s.h) {
		return math.NaN()
	}
	if !validFraction(fraction) {
		return math.NaN()
	}
	return bindings.DoubleQuantile(s.h, fraction)
}

// Rank returns the fraction of ingested values <= value, or NaN if the
// sketch is empty.
func (s *DoubleSketch) Rank(value float64) float64 {
	s.mustHandle("Rank")
	if bindings.DoubleIsEmpty(s.h) {
		return math.NaN()
	}
	return bindings.DoubleRank(s.h, value)
}

// Quantiles is the batch form of Quantile. An empty sketch or empty input
// yields an empty result. If any fraction is invalid the whole batch fails:
// the result is NaN-filled with the same length as the input, so callers
// never have to pick valid entries out of a mixed result.
func (s *DoubleSketch) Quantiles(fractions []float64) []float64 {
	s.mustHandle("Quantiles")
	if len(fractions) == 0 || bindings.DoubleIsEmpty(s.h) {
		return nil
	}
	for _, f := range fractions {
		if !validFraction(f) {
			out := make([]float64, len(fractions))
			for i := range out {
				out[i] = math.NaN()
			}
			return out
		}
	}
	return bindings.DoubleQuantiles(s.h, fractions)
}

// QuantilesEvenlySpaced returns num quantile estimates at uniform rank
// spacing, or an empty result if the sketch is empty or num is zero.
func (s *DoubleSketch) QuantilesEvenlySpaced(num uint32) []float64 {
	s.mustHandle("QuantilesEvenlySpaced")
	if num == 0 || bindings.DoubleIsEmpty(s.h) {
		return nil
	}
	return bindings.DoubleQuantilesEvenlySpaced(s.h, num)
}

// Serialize returns the sketch's opaque byte form. The bytes round-trip
// through DeserializeDoubleSketch with identical n, k, and num_retained.
func (s *DoubleSketch) Serialize() ([]byte, error) {
	if s == nil || s.h == nil {
		return nil, &Error{Op: "Serialize", Err: ErrNullPointer}
	}
	data, err := bindings.DoubleSerialize(s.h)
	if err != nil {
		return nil, wrapNative("Serialize", ErrSerialization, err)
	}
	return data, nil
}

// Copy produces an independent duplicate with a freshly owned handle using
// the native copy constructor, avoiding the two buffer copies and the
// alloc/free round trip of the serialize path.
func (s *DoubleSketch) Copy() (*DoubleSketch, error) {
	if s == nil || s.h == nil {
		return nil, &Error{Op: "Copy", Err: ErrNullPointer}
	}
	h, err := bindings.DoubleCopy(s.h)
	if err != nil {
		return nil, wrapNative("Copy", ErrCreation, err)
	}
	return &DoubleSketch{h: h}, nil
}

// Clone returns a deep, independent duplicate. Duplicating a healthy sketch
// fails only on resource exhaustion, which has no meaningful recovery at the
// call site, so Clone panics instead of returning an error.
func (s *DoubleSketch) Clone() *DoubleSketch {
	dup, err := s.Copy()
	if err != nil {
		panic("kll: failed to clone DoubleSketch: " + err.Error())
	}
	return dup
}
