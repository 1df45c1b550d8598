//go:build cgo && !windows

package bindings

/*
#include <stdlib.h>
#include "kll.h"
*/
import "C"

import (
	"errors"
	"unsafe"
)

var (
	errDoubleNew         = errors.New("kll_double_sketch_new returned null")
	errDoubleNewWithK    = errors.New("kll_double_sketch_new_with_k returned null")
	errDoubleCopy        = errors.New("kll_double_sketch_copy returned null")
	errDoubleSerialize   = errors.New("kll_double_sketch_serialize returned null")
	errDoubleDeserialize = errors.New("kll_double_sketch_deserialize returned null")
)

// DoubleNew allocates a native double sketch with the library default k.
func DoubleNew() (unsafe.Pointer, error) {
	p := C.kll_double_sketch_new()
	if p == nil {
		return nil, errDoubleNew
	}
	return unsafe.Pointer(p), nil
}

// DoubleNewWithK allocates a native double sketch with an explicit k. The
// caller must have validated k already; the shim returns null for values the
// algorithm rejects.
func DoubleNewWithK(k uint16) (unsafe.Pointer, error) {
	p := C.kll_double_sketch_new_with_k(C.uint16_t(k))
	if p == nil {
		return nil, errDoubleNewWithK
	}
	return unsafe.Pointer(p), nil
}

// DoubleFree releases a handle obtained from one of the double constructors.
// Must be called exactly once per handle.
func DoubleFree(p unsafe.Pointer) {
	C.kll_double_sketch_delete(C.kll_double_sketch_t(p))
}

// DoubleCopy duplicates the sketch through the shim's copy constructor.
func DoubleCopy(p unsafe.Pointer) (unsafe.Pointer, error) {
	dup := C.kll_double_sketch_copy(C.kll_double_sketch_t(p))
	if dup == nil {
		return nil, errDoubleCopy
	}
	return unsafe.Pointer(dup), nil
}

func DoubleUpdate(p unsafe.Pointer, value float64) {
	C.kll_double_sketch_update(C.kll_double_sketch_t(p), C.double(value))
}

func DoubleMerge(dst, src unsafe.Pointer) {
	C.kll_double_sketch_merge(C.kll_double_sketch_t(dst), C.kll_double_sketch_t(src))
}

func DoubleIsEmpty(p unsafe.Pointer) bool {
	return bool(C.kll_double_sketch_is_empty(C.kll_double_sketch_t(p)))
}

func DoubleK(p unsafe.Pointer) uint16 {
	return uint16(C.kll_double_sketch_get_k(C.kll_double_sketch_t(p)))
}

func DoubleN(p unsafe.Pointer) uint64 {
	return uint64(C.kll_double_sketch_get_n(C.kll_double_sketch_t(p)))
}

func DoubleNumRetained(p unsafe.Pointer) uint32 {
	return uint32(C.kll_double_sketch_get_num_retained(C.kll_double_sketch_t(p)))
}

func DoubleIsEstimationMode(p unsafe.Pointer) bool {
	return bool(C.kll_double_sketch_is_estimation_mode(C.kll_double_sketch_t(p)))
}

func DoubleMinValue(p unsafe.Pointer) float64 {
	return float64(C.kll_double_sketch_get_min_value(C.kll_double_sketch_t(p)))
}

func DoubleMaxValue(p unsafe.Pointer) float64 {
	return float64(C.kll_double_sketch_get_max_value(C.kll_double_sketch_t(p)))
}

func DoubleQuantile(p unsafe.Pointer, fraction float64) float64 {
	return float64(C.kll_double_sketch_get_quantile(C.kll_double_sketch_t(p), C.double(fraction)))
}

func DoubleRank(p unsafe.Pointer, value float64) float64 {
	return float64(C.kll_double_sketch_get_rank(C.kll_double_sketch_t(p), C.double(value)))
}

// DoubleQuantiles fills a caller-owned result slice sized to the input. The
// shim writes exactly len(fractions) values.
func DoubleQuantiles(p unsafe.Pointer, fractions []float64) []float64 {
	out := make([]float64, len(fractions))
	if len(fractions) == 0 {
		return out
	}
	C.kll_double_sketch_get_quantiles(
		C.kll_double_sketch_t(p),
		(*C.double)(unsafe.Pointer(&fractions[0])),
		C.size_t(len(fractions)),
		(*C.double)(unsafe.Pointer(&out[0])),
	)
	return out
}

func DoubleQuantilesEvenlySpaced(p unsafe.Pointer, num uint32) []float64 {
	out := make([]float64, num)
	if num == 0 {
		return out
	}
	C.kll_double_sketch_get_quantiles_evenly_spaced(
		C.kll_double_sketch_t(p),
		C.uint32_t(num),
		(*C.double)(unsafe.Pointer(&out[0])),
	)
	return out
}

// DoubleSerialize copies the shim-produced buffer into Go memory and releases
// the native buffer through its paired deallocator.
func DoubleSerialize(p unsafe.Pointer) ([]byte, error) {
	var size C.size_t
	data := C.kll_double_sketch_serialize(C.kll_double_sketch_t(p), &size)
	if data == nil {
		return nil, errDoubleSerialize
	}
	out := C.GoBytes(unsafe.Pointer(data), C.int(size))
	C.kll_bytes_free(data)
	return out, nil
}

// DoubleDeserialize reconstructs a sketch from opaque bytes. The shim returns
// null for malformed, truncated, or incompatible input.
func DoubleDeserialize(data []byte) (unsafe.Pointer, error) {
	if len(data) == 0 {
		return nil, errDoubleDeserialize
	}
	p := C.kll_double_sketch_deserialize(
		(*C.uint8_t)(unsafe.Pointer(&data[0])),
		C.size_t(len(data)),
	)
	if p == nil {
		return nil, errDoubleDeserialize
	}
	return unsafe.Pointer(p), nil
}
