// Package dispose provides the per-element teardown policies a vector runs
// when elements are logically removed.
//
// A policy is a type parameter used through its zero value. Disposable is
// consulted once per operation: when it reports false the vector skips the
// disposal loop entirely and Dispose is never called.
package dispose

// Policy decides whether, and how, removed elements are torn down.
type Policy[T any] interface {
	Disposable() bool
	Dispose(elem *T)
}

// None is the policy for plain values that need no teardown.
type None[T any] struct{}

// Disposable implements Policy.
func (None[T]) Disposable() bool { return false }

// Dispose implements Policy. It is never called by a vector.
func (None[T]) Dispose(*T) {}

// Disposer is satisfied by *T when T has a pointer-receiver Dispose method.
type Disposer[T any] interface {
	*T
	Dispose()
}

// Method is the policy that calls the element's own Dispose method.
//
//	type Handle struct{ id uint32 }
//	func (h *Handle) Dispose() { release(h.id) }
//
//	var v stdvec.Vector[Handle, memspace.Heap, dispose.Method[Handle, *Handle]]
type Method[T any, P Disposer[T]] struct{}

// Disposable implements Policy.
func (Method[T, P]) Disposable() bool { return true }

// Dispose implements Policy.
func (Method[T, P]) Dispose(elem *T) { P(elem).Dispose() }
