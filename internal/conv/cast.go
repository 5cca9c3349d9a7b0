package conv

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// ErrOverflow is wrapped by every conversion failure in this package.
var ErrOverflow = errors.New("integer overflow")

// Int64ToInt converts int64 to int safely.
func Int64ToInt(v int64) (int, error) {
	if v > math.MaxInt || v < math.MinInt {
		return 0, fmt.Errorf("%w: %d cannot be converted to int", ErrOverflow, v)
	}
	return int(v), nil
}

// Int64ToUintptr converts a non-negative int64 to uintptr safely.
func Int64ToUintptr(v int64) (uintptr, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d cannot be converted to uintptr (negative)", ErrOverflow, v)
	}
	// On 32-bit platforms uintptr is narrower than int64.
	if uint64(v) > uint64(^uintptr(0)) {
		return 0, fmt.Errorf("%w: %d cannot be converted to uintptr (too large)", ErrOverflow, v)
	}
	return uintptr(v), nil
}

// Uint64ToInt64 converts uint64 to int64 safely.
func Uint64ToInt64(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d cannot be converted to int64 (too large)", ErrOverflow, v)
	}
	return int64(v), nil
}

// ByteSize returns count*elemSize as a uintptr, failing when the product
// does not fit the address space.
func ByteSize(count int64, elemSize uintptr) (uintptr, error) {
	if count < 0 {
		return 0, fmt.Errorf("%w: negative count %d", ErrOverflow, count)
	}
	hi, lo := bits.Mul64(uint64(count), uint64(elemSize))
	if hi != 0 || lo > uint64(^uintptr(0)) {
		return 0, fmt.Errorf("%w: %d elements of %d bytes", ErrOverflow, count, elemSize)
	}
	return uintptr(lo), nil
}

// DoubleOrMax returns 2*v, saturating at math.MaxInt64.
func DoubleOrMax(v int64) int64 {
	if v > math.MaxInt64/2 {
		return math.MaxInt64
	}
	return v * 2
}
