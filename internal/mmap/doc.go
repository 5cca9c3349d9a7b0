// Package mmap provides anonymous memory mappings for off-heap buffers.
//
// # Overview
//
// Anonymous mappings hand out zeroed, page-aligned memory that lives outside
// the Go garbage collector's control. The memory space built on top of this
// package uses one mapping per vector buffer, so a buffer can be handed to
// foreign code without the GC ever moving or reclaiming it.
//
// # Usage
//
//	m, err := mmap.MapAnon(1 << 20)
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes()
//	m.Advise(mmap.AccessSequential)
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE, madvise(2) for hints
//   - Windows: VirtualAlloc/VirtualFree (advice is a no-op)
//
// # Thread Safety
//
// Close is idempotent and protected by atomic operations. Callers must
// ensure no goroutines access Bytes() after Close() returns.
package mmap
