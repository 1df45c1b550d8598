package kll

import "math"

// The native quantile getters throw a C++ exception on a non-finite or
// out-of-range fraction, and an exception cannot be caught across the cgo
// boundary; it aborts the process. Every fraction must pass this predicate
// before a native call is made.
func validFraction(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return f >= 0 && f <= 1
}

// validK reports whether k is an acceptable resolution. The algorithm
// rejects k below MinK, and its rejection path is not interceptable from
// this side.
func validK(k uint16) bool {
	return k >= MinK
}
