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
	errFloatNew         = errors.New("kll_float_sketch_new returned null")
	errFloatNewWithK    = errors.New("kll_float_sketch_new_with_k returned null")
	errFloatSerialize   = errors.New("kll_float_sketch_serialize returned null")
	errFloatDeserialize = errors.New("kll_float_sketch_deserialize returned null")
)

// FloatNew allocates a native float sketch with the library default k.
func FloatNew() (unsafe.Pointer, error) {
	p := C.kll_float_sketch_new()
	if p == nil {
		return nil, errFloatNew
	}
	return unsafe.Pointer(p), nil
}

// FloatNewWithK allocates a native float sketch with an explicit k.
func FloatNewWithK(k uint16) (unsafe.Pointer, error) {
	p := C.kll_float_sketch_new_with_k(C.uint16_t(k))
	if p == nil {
		return nil, errFloatNewWithK
	}
	return unsafe.Pointer(p), nil
}

// FloatFree releases a handle obtained from one of the float constructors.
// Must be called exactly once per handle.
func FloatFree(p unsafe.Pointer) {
	C.kll_float_sketch_delete(C.kll_float_sketch_t(p))
}

func FloatUpdate(p unsafe.Pointer, value float32) {
	C.kll_float_sketch_update(C.kll_float_sketch_t(p), C.float(value))
}

func FloatMerge(dst, src unsafe.Pointer) {
	C.kll_float_sketch_merge(C.kll_float_sketch_t(dst), C.kll_float_sketch_t(src))
}

func FloatIsEmpty(p unsafe.Pointer) bool {
	return bool(C.kll_float_sketch_is_empty(C.kll_float_sketch_t(p)))
}

func FloatK(p unsafe.Pointer) uint16 {
	return uint16(C.kll_float_sketch_get_k(C.kll_float_sketch_t(p)))
}

func FloatN(p unsafe.Pointer) uint64 {
	return uint64(C.kll_float_sketch_get_n(C.kll_float_sketch_t(p)))
}

func FloatNumRetained(p unsafe.Pointer) uint32 {
	return uint32(C.kll_float_sketch_get_num_retained(C.kll_float_sketch_t(p)))
}

func FloatIsEstimationMode(p unsafe.Pointer) bool {
	return bool(C.kll_float_sketch_is_estimation_mode(C.kll_float_sketch_t(p)))
}

func FloatMinValue(p unsafe.Pointer) float32 {
	return float32(C.kll_float_sketch_get_min_value(C.kll_float_sketch_t(p)))
}

func FloatMaxValue(p unsafe.Pointer) float32 {
	return float32(C.kll_float_sketch_get_max_value(C.kll_float_sketch_t(p)))
}

func FloatQuantile(p unsafe.Pointer, fraction float64) float32 {
	return float32(C.kll_float_sketch_get_quantile(C.kll_float_sketch_t(p), C.double(fraction)))
}

func FloatRank(p unsafe.Pointer, value float32) float64 {
	return float64(C.kll_float_sketch_get_rank(C.kll_float_sketch_t(p), C.float(value)))
}

// FloatQuantiles fills a caller-owned result slice sized to the input. The
// shim writes exactly len(fractions) values.
func FloatQuantiles(p unsafe.Pointer, fractions []float64) []float32 {
	out := make([]float32, len(fractions))
	if len(fractions) == 0 {
		return out
	}
	C.kll_float_sketch_get_quantiles(
		C.kll_float_sketch_t(p),
		(*C.double)(unsafe.Pointer(&fractions[0])),
		C.size_t(len(fractions)),
		(*C.float)(unsafe.Pointer(&out[0])),
	)
	return out
}

func FloatQuantilesEvenlySpaced(p unsafe.Pointer, num uint32) []float32 {
	out := make([]float32, num)
	if num == 0 {
		return out
	}
	C.kll_float_sketch_get_quantiles_evenly_spaced(
		C.kll_float_sketch_t(p),
		C.uint32_t(num),
		(*C.float)(unsafe.Pointer(&out[0])),
	)
	return out
}

// FloatSerialize copies the shim-produced buffer into Go memory and releases
// the native buffer through its paired deallocator.
func FloatSerialize(p unsafe.Pointer) ([]byte, error) {
	var size C.size_t
	data := C.kll_float_sketch_serialize(C.kll_float_sketch_t(p), &size)
	if data == nil {
		return nil, errFloatSerialize
	}
	out := C.GoBytes(unsafe.Pointer(data), C.int(size))
	C.kll_bytes_free(data)
	return out, nil
}

// FloatDeserialize reconstructs a sketch from opaque bytes. The shim returns
// null for malformed, truncated, or incompatible input.
func FloatDeserialize(data []byte) (unsafe.Pointer, error) {
	if len(data) == 0 {
		return nil, errFloatDeserialize
	}
	p := C.kll_float_sketch_deserialize(
		(*C.uint8_t)(unsafe.Pointer(&data[0])),
		C.size_t(len(data)),
	)
	if p == nil {
		return nil, errFloatDeserialize
	}
	return unsafe.Pointer(p), nil
}
