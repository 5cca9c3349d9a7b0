package stdvec

import (
	"fmt"
	"iter"

	"github.com/hupe1980/stdvec/dispose"
	"github.com/hupe1980/stdvec/memspace"
)

// All yields each index and a pointer to its element. The vector is read
// live: the length is re-read on every step and the pointers are invalid
// after a capacity change.
func (v *Vector[T, M, D]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := int64(0); i < v.count(); i++ {
			if !yield(toInt(i), v.elem(i)) {
				return
			}
		}
	}
}

// Values yields a copy of each element in order.
func (v *Vector[T, M, D]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := int64(0); i < v.count(); i++ {
			if !yield(*v.elem(i)) {
				return
			}
		}
	}
}

// Enumerator walks a vector forward once.
//
// Mutating the vector while an Enumerator is in use is undefined.
type Enumerator[T any, M memspace.Space, D dispose.Policy[T]] struct {
	v   *Vector[T, M, D]
	pos int64
}

// Enumerate returns an Enumerator positioned before the first element.
func (v *Vector[T, M, D]) Enumerate() *Enumerator[T, M, D] {
	return &Enumerator[T, M, D]{v: v, pos: -1}
}

// Next advances to the next element and reports whether there is one.
func (e *Enumerator[T, M, D]) Next() bool {
	if e.pos < e.v.count() {
		e.pos++
	}
	return e.pos < e.v.count()
}

// Index returns the current position, or -1 before the first Next.
func (e *Enumerator[T, M, D]) Index() int {
	return toInt(e.pos)
}

// Current returns a copy of the current element. It panics when the
// enumerator is not positioned on an element.
func (e *Enumerator[T, M, D]) Current() T {
	return *e.Ref()
}

// Ref returns a pointer to the current element. It panics when the
// enumerator is not positioned on an element.
func (e *Enumerator[T, M, D]) Ref() *T {
	p, err := e.v.at(e.pos)
	if err != nil {
		panic(fmt.Errorf("%w: enumerator is not positioned on an element: %w", ErrInvalidOperation, err))
	}
	return p
}

// Reset always fails: an Enumerator cannot be restarted. Call Enumerate
// again instead.
func (e *Enumerator[T, M, D]) Reset() error {
	return fmt.Errorf("%w: enumerator cannot be reset", ErrInvalidOperation)
}
