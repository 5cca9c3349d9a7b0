package stdvec

import (
	"github.com/hupe1980/stdvec/internal/rawsort"
)

// Comparer orders two values: negative when a < b, zero when equal, positive
// when a > b.
type Comparer[T any] interface {
	Compare(a, b T) int
}

// CompareFunc adapts a three-way comparison function to Comparer.
type CompareFunc[T any] func(a, b T) int

// Compare calls f(a, b).
func (f CompareFunc[T]) Compare(a, b T) int { return f(a, b) }

// SortFunc sorts the vector in place using cmp. The sort is not stable.
func (v *Vector[T, M, D]) SortFunc(cmp func(a, b T) int) {
	v.sortRange(0, v.count(), cmp)
}

// SortRangeFunc sorts the count elements starting at index using cmp.
func (v *Vector[T, M, D]) SortRangeFunc(index, count int, cmp func(a, b T) int) error {
	return v.sortRangeChecked(int64(index), int64(count), cmp)
}

// SortComparer sorts the vector in place using c.
func (v *Vector[T, M, D]) SortComparer(c Comparer[T]) {
	v.sortRange(0, v.count(), c.Compare)
}

// BinarySearchFunc searches the vector, which must be sorted by cmp, for
// target. It returns the index of a match, or the bitwise complement of the
// index at which target would be inserted.
func (v *Vector[T, M, D]) BinarySearchFunc(target T, cmp func(a, b T) int) int {
	return toInt(v.binarySearch(0, v.count(), target, cmp))
}

// BinarySearchRangeFunc is BinarySearchFunc restricted to
// [index, index+count). The result is an absolute index (or its complement).
func (v *Vector[T, M, D]) BinarySearchRangeFunc(index, count int, target T, cmp func(a, b T) int) (int, error) {
	r, err := v.binarySearchChecked(int64(index), int64(count), target, cmp)
	return toInt(r), err
}

// BinarySearchComparer is BinarySearchFunc with a Comparer.
func (v *Vector[T, M, D]) BinarySearchComparer(target T, c Comparer[T]) int {
	return toInt(v.binarySearch(0, v.count(), target, c.Compare))
}

// Reverse reverses the order of the elements in place.
func (v *Vector[T, M, D]) Reverse() {
	v.reverseRange(0, v.count())
}

// ReverseRange reverses the count elements starting at index.
func (v *Vector[T, M, D]) ReverseRange(index, count int) error {
	return v.reverseRangeChecked(int64(index), int64(count))
}

func (v *Vector[T, M, D]) sortRange(index, n int64, cmp func(a, b T) int) {
	if n < 2 {
		return
	}
	rawsort.Sort(v.ptr(index), n, cmp)
}

func (v *Vector[T, M, D]) sortRangeChecked(index, n int64, cmp func(a, b T) int) error {
	if err := v.validateRange(index, n); err != nil {
		return err
	}
	v.sortRange(index, n, cmp)
	return nil
}

// binarySearch maps the engine's range-relative result to an absolute index.
func (v *Vector[T, M, D]) binarySearch(index, n int64, target T, cmp func(a, b T) int) int64 {
	if n == 0 {
		return ^index
	}
	r := rawsort.BinarySearch(v.ptr(index), n, target, cmp)
	if r >= 0 {
		return r + index
	}
	return ^(^r + index)
}

func (v *Vector[T, M, D]) binarySearchChecked(index, n int64, target T, cmp func(a, b T) int) (int64, error) {
	if err := v.validateRange(index, n); err != nil {
		return -1, err
	}
	return v.binarySearch(index, n, target, cmp), nil
}

func (v *Vector[T, M, D]) reverseRange(index, n int64) {
	if n < 2 {
		return
	}
	rawsort.Reverse[T](v.ptr(index), n)
}

func (v *Vector[T, M, D]) reverseRangeChecked(index, n int64) error {
	if err := v.validateRange(index, n); err != nil {
		return err
	}
	v.reverseRange(index, n)
	return nil
}

func (v *Vector[T, M, D]) isSorted(cmp func(a, b T) int) bool {
	n := v.count()
	if n < 2 {
		return true
	}
	return rawsort.IsSorted(v.first, n, cmp)
}
