package mem

import (
	"errors"
	"fmt"
	"math"
	"unsafe"
)

// MaxAlignment is the largest alignment AllocAligned accepts.
const MaxAlignment = 4096

var (
	// ErrBadAlignment is returned for alignments that are not a power of two
	// or exceed MaxAlignment.
	ErrBadAlignment = errors.New("mem: alignment must be a power of two <= 4096")
	// ErrTooLarge is returned when size plus alignment slack does not fit an int.
	ErrTooLarge = errors.New("mem: allocation too large")
)

// AllocAligned allocates a byte slice of the given size whose first byte is
// aligned to align. A zero size returns nil.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size, align uintptr) (buf []byte, err error) {
	if align == 0 || align&(align-1) != 0 || align > MaxAlignment {
		return nil, ErrBadAlignment
	}
	if size == 0 {
		return nil, nil
	}
	if size > math.MaxInt-align {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, size)
	}

	// makeslice panics on lengths the runtime cannot satisfy.
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("%w: %d bytes: %v", ErrTooLarge, size, r)
		}
	}()

	raw := make([]byte, size+align)

	addr := uintptr(unsafe.Pointer(&raw[0])) //nolint:gosec // unsafe is required for memory alignment
	offset := (align - (addr & (align - 1))) & (align - 1)

	return raw[offset : offset+size : offset+size], nil
}
