package kll

import (
	"math"
	"unsafe"

	"github.com/homeffjy/kll-go/internal/bindings"
)

// FloatSketch is a KLL quantile sketch over float32 values. It behaves
// exactly like DoubleSketch apart from the element width and the clone
// strategy; see the DoubleSketch method docs for the shared contract.
type FloatSketch struct {
	h unsafe.Pointer
}

// NewFloatSketch creates an empty sketch with the library default resolution.
func NewFloatSketch() (*FloatSketch, error) {
	h, err := bindings.FloatNew()
	if err != nil {
		return nil, wrapNative("NewFloatSketch", ErrCreation, err)
	}
	return &FloatSketch{h: h}, nil
}

// MustNewFloatSketch is like NewFloatSketch but panics on failure, for the
// same reason as MustNewDoubleSketch.
func MustNewFloatSketch() *FloatSketch {
	s, err := NewFloatSketch()
	if err != nil {
		panic("kll: failed to create default FloatSketch: " + err.Error())
	}
	return s
}

// NewFloatSketchWithK creates an empty sketch with an explicit resolution.
// Values below MinK are rejected before any native allocation.
func NewFloatSketchWithK(k uint16) (*FloatSketch, error) {
	if !validK(k) {
		return nil, errorf("NewFloatSketchWithK", "%w: k must be at least %d, got %d", ErrInvalidParameter, MinK, k)
	}
	h, err := bindings.FloatNewWithK(k)
	if err != nil {
		return nil, wrapNative("NewFloatSketchWithK", ErrCreation, err)
	}
	return &FloatSketch{h: h}, nil
}

// DeserializeFloatSketch reconstructs a sketch from bytes produced by
// Serialize.
func DeserializeFloatSketch(data []byte) (*FloatSketch, error) {
	h, err := bindings.FloatDeserialize(data)
	if err != nil {
		return nil, wrapNative("DeserializeFloatSketch", ErrDeserialization, err)
	}
	return &FloatSketch{h: h}, nil
}

// Close releases the native sketch. Subsequent calls return ErrSketchClosed.
func (s *FloatSketch) Close() error {
	if s == nil {
		return nil
	}
	if s.h == nil {
		return ErrSketchClosed
	}
	bindings.FloatFree(s.h)
	s.h = nil
	return nil
}

func (s *FloatSketch) mustHandle(op string) {
	if s.h == nil {
		panic("kll." + op + ": use of closed FloatSketch")
	}
}

// Update ingests a single value.
func (s *FloatSketch) Update(value float32) {
	s.mustHandle("Update")
	bindings.FloatUpdate(s.h, value)
}

// Merge absorbs other's data into s, leaving other unmodified.
func (s *FloatSketch) Merge(other *FloatSketch) error {
	if s == nil || s.h == nil {
		return &Error{Op: "Merge", Err: ErrNullPointer}
	}
	if other == nil || other.h == nil {
		return &Error{Op: "Merge", Err: ErrNullPointer}
	}
	bindings.FloatMerge(s.h, other.h)
	return nil
}

// IsEmpty reports whether the sketch has ingested no values.
func (s *FloatSketch) IsEmpty() bool {
	s.mustHandle("IsEmpty")
	return bindings.FloatIsEmpty(s.h)
}

// K returns the resolution fixed at construction.
func (s *FloatSketch) K() uint16 {
	s.mustHandle("K")
	return bindings.FloatK(s.h)
}

// N returns the count of values ever ingested.
func (s *FloatSketch) N() uint64 {
	s.mustHandle("N")
	return bindings.FloatN(s.h)
}

// NumRetained returns the count of items currently held internally.
func (s *FloatSketch) NumRetained() uint32 {
	s.mustHandle("NumRetained")
	return bindings.FloatNumRetained(s.h)
}

// IsEstimationMode reports whether internal compaction has begun.
func (s *FloatSketch) IsEstimationMode() bool {
	s.mustHandle("IsEstimationMode")
	return bindings.FloatIsEstimationMode(s.h)
}

// MinValue returns the smallest value ingested, or NaN if the sketch is
// empty.
func (s *FloatSketch) MinValue() float32 {
	s.mustHandle("MinValue")
	if bindings.FloatIsEmpty(s.h) {
		return float32(math.NaN())
	}
	return bindings.FloatMinValue(s.h)
}

// MaxValue returns the largest value ingested, or NaN if the sketch is empty.
func (s *FloatSketch) MaxValue() float32 {
	s.mustHandle("MaxValue")
	if bindings.FloatIsEmpty(s.h) {
		return float32(math.NaN())
	}
	return bindings.FloatMaxValue(s.h)
}

// Quantile returns the approximate value at the given rank fraction, or NaN
// if the sketch is empty or the fraction is not a finite value in [0, 1].
func (s *FloatSketch) Quantile(fraction float64) float32 {
	s.mustHandle("Quantile")
	if bindings.FloatIsEmpty(s.h) {
		return float32(math.NaN())
	}
	if !validFraction(fraction) {
		return float32(math.NaN())
	}
	return bindings.FloatQuantile(s.h, fraction)
}

// Rank returns the fraction of ingested values <= value, or NaN if the
// sketch is empty.
func (s *FloatSketch) Rank(value float32) float64 {
	s.mustHandle("Rank")
	if bindings.FloatIsEmpty(s.h) {
		return math.NaN()
	}
	return bindings.FloatRank(s.h, value)
}

// Quantiles is the batch form of Quantile with the same all-or-nothing
// policy as DoubleSketch.Quantiles.
func (s *FloatSketch) Quantiles(fractions []float64) []float32 {
	s.mustHandle("Quantiles")
	if len(fractions) == 0 || bindings.FloatIsEmpty(s.h) {
		return nil
	}
	for _, f := range fractions {
		if !validFraction(f) {
			out := make([]float32, len(fractions))
			nan := float32(math.NaN())
			for i := range out {
				out[i] = nan
			}
			return out
		}
	}
	return bindings.FloatQuantiles(s.h, fractions)
}

// QuantilesEvenlySpaced returns num quantile estimates at uniform rank
// spacing, or an empty result if the sketch is empty or num is zero.
func (s *FloatSketch) QuantilesEvenlySpaced(num uint32) []float32 {
	s.mustHandle("QuantilesEvenlySpaced")
	if num == 0 || bindings.FloatIsEmpty(s.h) {
		return nil
	}
	return bindings.FloatQuantilesEvenlySpaced(s.h, num)
}

// Serialize returns the sketch's opaque byte form.
func (s *FloatSketch) Serialize() ([]byte, error) {
	if s == nil || s.h == nil {
		return nil, &Error{Op: "Serialize", Err: ErrNullPointer}
	}
	data, err := bindings.FloatSerialize(s.h)
	if err != nil {
		return nil, wrapNative("Serialize", ErrSerialization, err)
	}
	return data, nil
}

// Copy produces an independent duplicate by serializing and reconstructing
// the sketch. The float shim exports no copy constructor, so the byte round
// trip is the only duplication path for this width.
func (s *FloatSketch) Copy() (*FloatSketch, error) {
	if s == nil || s.h == nil {
		return nil, &Error{Op: "Copy", Err: ErrNullPointer}
	}
	data, err := bindings.FloatSerialize(s.h)
	if err != nil {
		return nil, wrapNative("Copy", ErrCreation, err)
	}
	h, err := bindings.FloatDeserialize(data)
	if err != nil {
		return nil, wrapNative("Copy", ErrCreation, err)
	}
	return &FloatSketch{h: h}, nil
}

// Clone returns a deep, independent duplicate, panicking on internal failure
// for the same reason as DoubleSketch.Clone.
func (s *FloatSketch) Clone() *FloatSketch {
	dup, err := s.Copy()
	if err != nil {
		panic("kll: failed to clone FloatSketch: " + err.Error())
	}
	return dup
}
