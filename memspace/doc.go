// Package memspace provides the pluggable allocation strategies that back
// vector buffers.
//
// A Space is used as a type parameter and always through its zero value, so
// a strategy carries no per-vector state and never occupies bytes in a
// vector header. Process-wide state (the heap pin registry, the budget
// controller, statistics) lives in this package and is safe for concurrent
// use.
//
// # Built-in spaces
//
//   - Heap: Go-heap buffers, aligned by over-allocation and pinned until Free
//   - Anon: off-heap anonymous mappings, page granular, zeroed by the OS
//   - Budget: Heap guarded by a memory limit and an allocation rate
//
// # Custom spaces
//
// Any type whose zero value implements Space can be used, for example a
// type that forwards to a foreign allocator resolved at runtime:
//
//	type GameSpace struct{}
//
//	func (GameSpace) Allocate(size, align uintptr) (unsafe.Pointer, error) { ... }
//	func (GameSpace) Free(p unsafe.Pointer, size uintptr)                  { ... }
package memspace
