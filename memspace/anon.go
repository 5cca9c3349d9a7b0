package memspace

import (
	"fmt"
	"unsafe"

	"github.com/hupe1980/stdvec/internal/mmap"
)

// Anon allocates off-heap anonymous mappings, one per buffer.
//
// Sizes are rounded up to the page size and the memory is zeroed by the
// operating system. Alignments larger than the page size are rejected.
type Anon struct{}

var anonStats counters

// Allocate implements Space.
func (Anon) Allocate(size, alignment uintptr) (unsafe.Pointer, error) {
	if size == 0 {
		return nil, ErrZeroSize
	}
	if alignment == 0 || alignment&(alignment-1) != 0 || alignment > uintptr(mmap.PageSize()) {
		anonStats.failures.Add(1)
		return nil, fmt.Errorf("memspace: alignment %d not supported by anonymous mappings", alignment)
	}

	m, err := mmap.MapAnon(size)
	if err != nil {
		anonStats.failures.Add(1)
		log().Warn("anonymous mapping failed", "bytes", size, "error", err)
		return nil, fmt.Errorf("memspace: failed to map anonymous memory: %w", err)
	}

	// Vectors are mostly scanned front to back.
	if err := m.Advise(mmap.AccessSequential); err != nil {
		log().Debug("madvise failed", "bytes", size, "error", err)
	}

	anonStats.alloc(mmap.RoundToPage(size))
	return m.Pointer(), nil
}

// Free implements Space.
func (Anon) Free(p unsafe.Pointer, size uintptr) {
	if p == nil || size == 0 {
		return
	}
	if err := mmap.Adopt(p, size).Close(); err != nil {
		log().Error("anonymous unmap failed", "bytes", size, "error", err)
		return
	}
	anonStats.free(mmap.RoundToPage(size))
}

// AnonStats returns the Anon space counters.
func AnonStats() Stats {
	return anonStats.snapshot()
}
