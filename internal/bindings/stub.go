//go:build !cgo || windows

package bindings

import "unsafe"

// Stub implementations for non-cgo builds or Windows. These allow the package
// to compile but return ErrNotBuilt when called. The accessors are
// unreachable in practice because every constructor fails first.

func DoubleNew() (unsafe.Pointer, error) {
	return nil, ErrNotBuilt
}

func DoubleNewWithK(uint16) (unsafe.Pointer, error) {
	return nil, ErrNotBuilt
}

func DoubleFree(unsafe.Pointer) {}

func DoubleCopy(unsafe.Pointer) (unsafe.Pointer, error) {
	return nil, ErrNotBuilt
}

func DoubleUpdate(unsafe.Pointer, float64) {}

func DoubleMerge(unsafe.Pointer, unsafe.Pointer) {}

func DoubleIsEmpty(unsafe.Pointer) bool { return true }

func DoubleK(unsafe.Pointer) uint16 { return 0 }

func DoubleN(unsafe.Pointer) uint64 { return 0 }

func DoubleNumRetained(unsafe.Pointer) uint32 { return 0 }

func DoubleIsEstimationMode(unsafe.Pointer) bool { return false }

func DoubleMinValue(unsafe.Pointer) float64 { return 0 }

func DoubleMaxValue(unsafe.Pointer) float64 { return 0 }

func DoubleQuantile(unsafe.Pointer, float64) float64 { return 0 }

func DoubleRank(unsafe.Pointer, float64) float64 { return 0 }

func DoubleQuantiles(_ unsafe.Pointer, fractions []float64) []float64 {
	return make([]float64, len(fractions))
}

func DoubleQuantilesEvenlySpaced(_ unsafe.Pointer, num uint32) []float64 {
	return make([]float64, num)
}

func DoubleSerialize(unsafe.Pointer) ([]byte, error) {
	return nil, ErrNotBuilt
}

func DoubleDeserialize([]byte) (unsafe.Pointer, error) {
	return nil, ErrNotBuilt
}

func FloatNew() (unsafe.Pointer, error) {
	return nil, ErrNotBuilt
}

func FloatNewWithK(uint16) (unsafe.Pointer, error) {
	return nil, ErrNotBuilt
}

func FloatFree(unsafe.Pointer) {}

func FloatUpdate(unsafe.Pointer, float32) {}

func FloatMerge(unsafe.Pointer, unsafe.Pointer) {}

func FloatIsEmpty(unsafe.Pointer) bool { return true }

func FloatK(unsafe.Pointer) uint16 { return 0 }

func FloatN(unsafe.Pointer) uint64 { return 0 }

func FloatNumRetained(unsafe.Pointer) uint32 { return 0 }

func FloatIsEstimationMode(unsafe.Pointer) bool { return false }

func FloatMinValue(unsafe.Pointer) float32 { return 0 }

func FloatMaxValue(unsafe.Pointer) float32 { return 0 }

func FloatQuantile(unsafe.Pointer, float64) float32 { return 0 }

func FloatRank(unsafe.Pointer, float32) float64 { return 0 }

func FloatQuantiles(_ unsafe.Pointer, fractions []float64) []float32 {
	return make([]float32, len(fractions))
}

func FloatQuantilesEvenlySpaced(_ unsafe.Pointer, num uint32) []float32 {
	return make([]float32, num)
}

func FloatSerialize(unsafe.Pointer) ([]byte, error) {
	return nil, ErrNotBuilt
}

func FloatDeserialize([]byte) (unsafe.Pointer, error) {
	return nil, ErrNotBuilt
}
