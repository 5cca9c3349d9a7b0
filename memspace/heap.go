package memspace

import (
	"sync"
	"unsafe"

	"github.com/hupe1980/stdvec/internal/mem"
)

// Heap allocates from the Go heap.
//
// Buffers are over-allocated to reach the requested alignment and pinned in
// a registry until Free, so a buffer stays alive even when the only header
// referencing it lives in memory the garbage collector does not scan.
type Heap struct{}

var (
	heapMu    sync.Mutex
	heapPins  = make(map[uintptr][]byte)
	heapStats counters
)

// Allocate implements Space.
func (Heap) Allocate(size, alignment uintptr) (unsafe.Pointer, error) {
	if size == 0 {
		return nil, ErrZeroSize
	}
	buf, err := mem.AllocAligned(size, alignment)
	if err != nil {
		heapStats.failures.Add(1)
		log().Warn("heap allocation failed", "bytes", size, "alignment", alignment, "error", err)
		return nil, err
	}

	p := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for raw buffers

	heapMu.Lock()
	heapPins[uintptr(p)] = buf
	heapMu.Unlock()

	heapStats.alloc(size)
	return p, nil
}

// Free implements Space. Freeing an unknown pointer is a no-op.
func (Heap) Free(p unsafe.Pointer, size uintptr) {
	if p == nil {
		return
	}

	heapMu.Lock()
	_, ok := heapPins[uintptr(p)]
	delete(heapPins, uintptr(p))
	heapMu.Unlock()

	if ok {
		heapStats.free(size)
	}
}

// HeapStats returns the Heap space counters.
func HeapStats() Stats {
	return heapStats.snapshot()
}

// heapPinned reports the number of live Heap buffers.
func heapPinned() int {
	heapMu.Lock()
	defer heapMu.Unlock()
	return len(heapPins)
}
