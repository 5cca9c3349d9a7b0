package mmap

import (
	"sync/atomic"
	"unsafe"
)

// Mapping represents an anonymous memory mapping.
// It owns the underlying byte slice and is responsible for unmapping it.
type Mapping struct {
	data   []byte
	closed atomic.Bool
	// unmap is the platform-specific function to unmap the memory.
	unmap func([]byte) error
}

// PageSize returns the system page size.
func PageSize() int {
	return pageSize()
}

// RoundToPage rounds size up to a multiple of the page size.
func RoundToPage(size uintptr) uintptr {
	ps := uintptr(pageSize())
	return (size + ps - 1) &^ (ps - 1)
}

// MapAnon creates a read-write anonymous mapping of at least size bytes.
// The size is rounded up to the page size.
func MapAnon(size uintptr) (*Mapping, error) {
	if size == 0 {
		return nil, ErrInvalidSize
	}

	data, unmapFunc, err := osMapAnon(RoundToPage(size))
	if err != nil {
		return nil, err
	}

	return &Mapping{data: data, unmap: unmapFunc}, nil
}

// Adopt rebuilds a Mapping for memory previously returned by MapAnon
// whose *Mapping was not retained. size must be the value passed to MapAnon.
func Adopt(p unsafe.Pointer, size uintptr) *Mapping {
	data := unsafe.Slice((*byte)(p), RoundToPage(size))
	return &Mapping{data: data, unmap: osUnmapAnon}
}

// Close unmaps the memory. It is idempotent.
func (m *Mapping) Close() error {
	if m.closed.Swap(true) {
		return nil // Already closed
	}
	if m.unmap != nil && m.data != nil {
		return m.unmap(m.data)
	}
	return nil
}

// Bytes returns the underlying byte slice.
// Warning: The slice is valid only until Close() is called.
func (m *Mapping) Bytes() []byte {
	if m.closed.Load() {
		return nil
	}
	return m.data
}

// Pointer returns the address of the first mapped byte, or nil when closed.
func (m *Mapping) Pointer() unsafe.Pointer {
	b := m.Bytes()
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}

// Size returns the size of the mapping in bytes.
func (m *Mapping) Size() int {
	return len(m.data)
}

// Advise provides hints to the kernel about how the memory will be accessed.
func (m *Mapping) Advise(pattern AccessPattern) error {
	if m.closed.Load() {
		return ErrClosed
	}
	return osAdvise(m.data, pattern)
}
