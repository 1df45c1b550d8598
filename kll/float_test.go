//go:build cgo && !windows

package kll_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeffjy/kll-go/kll"
)

func newFloatWithRange(t *testing.T, lo, hi int) *kll.FloatSketch {
	t.Helper()
	s, err := kll.NewFloatSketch()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	for i := lo; i <= hi; i++ {
		s.Update(float32(i))
	}
	return s
}

func TestNewFloatSketch(t *testing.T) {
	s, err := kll.NewFloatSketch()
	require.NoError(t, err)
	defer s.Close()

	assert.True(t, s.IsEmpty())
	assert.EqualValues(t, 0, s.N())
	assert.EqualValues(t, kll.DefaultK, s.K())
}

func TestMustNewFloatSketch(t *testing.T) {
	s := kll.MustNewFloatSketch()
	defer s.Close()
	assert.True(t, s.IsEmpty())
}

func TestNewFloatSketchWithK(t *testing.T) {
	for _, k := range []uint16{8, 128, 1024} {
		s, err := kll.NewFloatSketchWithK(k)
		require.NoError(t, err)
		assert.Equal(t, k, s.K())
		require.NoError(t, s.Close())
	}
}

func TestFloatUpdateAndQuery(t *testing.T) {
	s := newFloatWithRange(t, 1, 1000)

	assert.False(t, s.IsEmpty())
	assert.EqualValues(t, 1000, s.N())
	assert.LessOrEqual(t, uint64(s.NumRetained()), s.N())

	assert.Equal(t, float32(1), s.MinValue())
	assert.Equal(t, float32(1000), s.MaxValue())
	assert.InDelta(t, 500, s.Quantile(0.5), 50)
	assert.InDelta(t, 0.5, s.Rank(500), 0.05)
}

func TestFloatEmptyContract(t *testing.T) {
	s, err := kll.NewFloatSketch()
	require.NoError(t, err)
	defer s.Close()

	assert.True(t, math.IsNaN(float64(s.Quantile(0.5))))
	assert.True(t, math.IsNaN(float64(s.MinValue())))
	assert.True(t, math.IsNaN(float64(s.MaxValue())))
	assert.True(t, math.IsNaN(s.Rank(1)))
	assert.Empty(t, s.Quantiles([]float64{0.5}))
	assert.Empty(t, s.QuantilesEvenlySpaced(3))
}

func TestFloatInvalidFractions(t *testing.T) {
	s := newFloatWithRange(t, 1, 100)

	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -0.1, 1.1} {
		assert.True(t, math.IsNaN(float64(s.Quantile(f))), "fraction %v", f)
	}

	batch := []float64{0.5, 2.0}
	out := s.Quantiles(batch)
	require.Len(t, out, len(batch))
	for i, v := range out {
		assert.True(t, math.IsNaN(float64(v)), "index %d", i)
	}
}

func TestFloatSerializeRoundTrip(t *testing.T) {
	s := newFloatWithRange(t, 1, 1000)

	data, err := s.Serialize()
	require.NoError(t, err)

	restored, err := kll.DeserializeFloatSketch(data)
	require.NoError(t, err)
	defer restored.Close()

	assert.Equal(t, s.N(), restored.N())
	assert.Equal(t, s.K(), restored.K())
	assert.Equal(t, s.NumRetained(), restored.NumRetained())

	for _, f := range []float64{0.25, 0.5, 0.75, 0.9} {
		assert.InDelta(t, s.Quantile(f), restored.Quantile(f), 1e-6, "fraction %v", f)
	}
}

// FloatSketch clones through the serialize path; the result must still be a
// fully independent duplicate.
func TestFloatCloneIndependence(t *testing.T) {
	s := newFloatWithRange(t, 1, 1000)

	clone := s.Clone()
	defer clone.Close()

	assert.Equal(t, s.N(), clone.N())
	assert.Equal(t, s.K(), clone.K())
	for _, f := range []float64{0.25, 0.5, 0.75, 0.9} {
		assert.InDelta(t, s.Quantile(f), clone.Quantile(f), 1e-6, "fraction %v", f)
	}

	nBefore := clone.N()
	s.Update(12345)
	assert.Equal(t, nBefore, clone.N())

	clone.Update(1)
	assert.EqualValues(t, 1001, s.N())
	assert.Equal(t, nBefore+1, clone.N())
}

func TestFloatMerge(t *testing.T) {
	a := newFloatWithRange(t, 1, 50)
	b := newFloatWithRange(t, 51, 100)

	require.NoError(t, a.Merge(b))
	assert.EqualValues(t, 100, a.N())
	assert.Equal(t, float32(1), a.MinValue())
	assert.Equal(t, float32(100), a.MaxValue())
	assert.EqualValues(t, 50, b.N())
}

func TestFloatCloseContract(t *testing.T) {
	s, err := kll.NewFloatSketch()
	require.NoError(t, err)

	require.NoError(t, s.Close())
	assert.ErrorIs(t, s.Close(), kll.ErrSketchClosed)

	_, err = s.Serialize()
	assert.ErrorIs(t, err, kll.ErrNullPointer)
	_, err = s.Copy()
	assert.ErrorIs(t, err, kll.ErrNullPointer)
	assert.Panics(t, func() { s.N() })
}

func TestFloatJSONRoundTrip(t *testing.T) {
	s := newFloatWithRange(t, 1, 200)

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var restored kll.FloatSketch
	require.NoError(t, json.Unmarshal(data, &restored))
	defer restored.Close()

	assert.Equal(t, s.N(), restored.N())
	assert.InDelta(t, s.Quantile(0.9), restored.Quantile(0.9), 1e-6)
}
