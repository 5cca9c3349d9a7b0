package stdvec

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/stdvec/dispose"
	"github.com/hupe1980/stdvec/memspace"
)

// Long is the 64-bit view of a Vector: the same operations with int64
// indices and counts, for vectors whose length may exceed the range of int.
type Long[T any, M memspace.Space, D dispose.Policy[T]] struct {
	v *Vector[T, M, D]
}

// Long returns the 64-bit view of v.
func (v *Vector[T, M, D]) Long() Long[T, M, D] {
	return Long[T, M, D]{v: v}
}

// Vector returns the underlying vector.
func (l Long[T, M, D]) Vector() *Vector[T, M, D] { return l.v }

// Len returns the number of elements.
func (l Long[T, M, D]) Len() int64 { return l.v.count() }

// Cap returns the number of elements the buffer can hold without growing.
func (l Long[T, M, D]) Cap() int64 { return l.v.capacity() }

func (l Long[T, M, D]) At(index int64) (*T, error) { return l.v.at(index) }

func (l Long[T, M, D]) Get(index int64) (T, error) {
	p, err := l.v.at(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

func (l Long[T, M, D]) Set(index int64, item T) error {
	p, err := l.v.at(index)
	if err != nil {
		return err
	}
	*p = item
	return nil
}

func (l Long[T, M, D]) Insert(index int64, item T) error { return l.v.insert(index, item) }

func (l Long[T, M, D]) InsertSlice(index int64, items []T) error {
	return l.v.insertSlice(index, items)
}

func (l Long[T, M, D]) InsertRange(index int64, src *Vector[T, M, D]) error {
	return l.v.insertRange(index, src)
}

func (l Long[T, M, D]) RemoveAt(index int64) error { return l.v.removeAt(index) }

func (l Long[T, M, D]) RemoveRange(index, count int64) error {
	return l.v.removeRange(index, count)
}

func (l Long[T, M, D]) Resize(n int64) error {
	var zero T
	return l.v.resize(n, fillZero, zero)
}

func (l Long[T, M, D]) ResizeFill(n int64, fill T) error {
	return l.v.resize(n, fillValue, fill)
}

func (l Long[T, M, D]) ResizeUndefined(n int64) error {
	var zero T
	return l.v.resize(n, fillNone, zero)
}

func (l Long[T, M, D]) EnsureCapacity(n int64) error { return l.v.ensureCapacity(n) }

func (l Long[T, M, D]) SetCapacity(n int64) error { return l.v.setCapacity(n) }

func (l Long[T, M, D]) FindIndex(pred func(T) bool) int64 {
	return l.v.findIndex(0, l.v.count(), pred)
}

func (l Long[T, M, D]) FindIndexIn(start, count int64, pred func(T) bool) (int64, error) {
	return l.v.findIndexIn(start, count, pred)
}

func (l Long[T, M, D]) FindLastIndex(pred func(T) bool) int64 {
	return l.v.findLastIndex(0, l.v.count(), pred)
}

func (l Long[T, M, D]) FindLastIndexIn(start, count int64, pred func(T) bool) (int64, error) {
	return l.v.findLastIndexIn(start, count, pred)
}

func (l Long[T, M, D]) SortRangeFunc(index, count int64, cmp func(a, b T) int) error {
	return l.v.sortRangeChecked(index, count, cmp)
}

func (l Long[T, M, D]) BinarySearchFunc(target T, cmp func(a, b T) int) int64 {
	return l.v.binarySearch(0, l.v.count(), target, cmp)
}

func (l Long[T, M, D]) BinarySearchRangeFunc(index, count int64, target T, cmp func(a, b T) int) (int64, error) {
	return l.v.binarySearchChecked(index, count, target, cmp)
}

func (l Long[T, M, D]) ReverseRange(index, count int64) error {
	return l.v.reverseRangeChecked(index, count)
}

func (l Long[T, M, D]) ToSliceRange(index, count int64) ([]T, error) {
	return l.v.toSliceRange(index, count)
}

func (l Long[T, M, D]) RemoveIndices(marks *roaring64.Bitmap) (int64, error) {
	return l.v.removeIndices(marks)
}

func (l Long[T, M, D]) RemoveAll(pred func(T) bool) int64 {
	return l.v.removeMarked(l.v.findAllIndices(0, l.v.count(), pred))
}
