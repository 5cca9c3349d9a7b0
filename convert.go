package stdvec

import (
	"fmt"
	"iter"
	"unsafe"

	"github.com/hupe1980/stdvec/dispose"
	"github.com/hupe1980/stdvec/memspace"
)

// FromSlice returns a vector holding a copy of items, allocated in M with
// capacity len(items).
func FromSlice[T any, M memspace.Space, D dispose.Policy[T]](items []T) (*Vector[T, M, D], error) {
	v := &Vector[T, M, D]{}
	if err := v.setCapacity(int64(len(items))); err != nil {
		return nil, err
	}
	if err := v.AddSlice(items); err != nil {
		v.Free()
		return nil, err
	}
	return v, nil
}

// FromSeq returns a vector holding every element produced by seq.
func FromSeq[T any, M memspace.Space, D dispose.Policy[T]](seq iter.Seq[T]) (*Vector[T, M, D], error) {
	v := &Vector[T, M, D]{}
	if err := v.AddSeq(seq); err != nil {
		v.Free()
		return nil, err
	}
	return v, nil
}

// Of returns a Plain vector holding items.
func Of[T any](items ...T) (*Plain[T], error) {
	return FromSlice[T, memspace.Heap, dispose.None[T]](items)
}

// Overlay reinterprets the native vector header at p as a *Vector. No memory
// is copied: the returned vector reads and writes the header in place, and
// any buffer it holds must have been obtained from M.
//
// The header is checked for pointer alignment, cursor ordering, and cursor
// distances that are multiples of the element size.
func Overlay[T any, M memspace.Space, D dispose.Policy[T]](p unsafe.Pointer) (*Vector[T, M, D], error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil header", ErrInvalidArgument)
	}
	if uintptr(p)%unsafe.Alignof(p) != 0 {
		return nil, fmt.Errorf("%w: header at %#x is not pointer aligned", ErrInvalidArgument, uintptr(p))
	}
	if err := checkElem[T](); err != nil {
		return nil, err
	}

	v := (*Vector[T, M, D])(p)
	first, last, end := v.Cursors()
	if first == 0 {
		if last != 0 || end != 0 {
			return nil, fmt.Errorf("%w: header without storage has non-nil cursors", ErrInvalidArgument)
		}
		return v, nil
	}

	size := v.elemSize()
	switch {
	case first > last || last > end:
		return nil, fmt.Errorf("%w: cursors out of order (first=%#x last=%#x end=%#x)", ErrInvalidArgument, first, last, end)
	case (last-first)%size != 0 || (end-first)%size != 0:
		return nil, fmt.Errorf("%w: cursor distance is not a multiple of the element size %d", ErrInvalidArgument, size)
	}
	return v, nil
}

// ToSlice returns a newly allocated copy of the elements.
func (v *Vector[T, M, D]) ToSlice() []T {
	out, _ := v.toSliceRange(0, v.count())
	return out
}

// ToSliceRange returns a newly allocated copy of the count elements starting
// at index.
func (v *Vector[T, M, D]) ToSliceRange(index, count int) ([]T, error) {
	return v.toSliceRange(int64(index), int64(count))
}

func (v *Vector[T, M, D]) toSliceRange(index, n int64) ([]T, error) {
	if err := v.validateRange(index, n); err != nil {
		return nil, err
	}
	out := make([]T, toInt(n))
	if n > 0 {
		copy(out, unsafe.Slice(v.elem(index), toInt(n)))
	}
	return out, nil
}

// Clone returns an independent copy of the vector in the same memory space
// with capacity Len(). Elements are copied bytewise, so with an active
// disposal policy both vectors own the same resources.
func (v *Vector[T, M, D]) Clone() (*Vector[T, M, D], error) {
	c := &Vector[T, M, D]{}
	n := v.count()
	if n == 0 {
		return c, nil
	}
	if err := c.setCapacity(n); err != nil {
		return nil, err
	}
	copyBytes(c.first, v.first, uintptr(n)*v.elemSize())
	c.setCount(n)
	return c, nil
}
