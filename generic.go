package stdvec

import (
	"golang.org/x/exp/constraints"

	"github.com/hupe1980/stdvec/dispose"
	"github.com/hupe1980/stdvec/memspace"
)

// Methods cannot narrow a type parameter, so natural equality and ordering
// are offered as functions.

// IndexOf returns the index of the first element equal to item, or -1.
func IndexOf[T comparable, M memspace.Space, D dispose.Policy[T]](v *Vector[T, M, D], item T) int {
	return toInt(v.findIndex(0, v.count(), func(e T) bool { return e == item }))
}

// IndexOfIn returns the index of the first element equal to item within
// [index, index+count), or -1.
func IndexOfIn[T comparable, M memspace.Space, D dispose.Policy[T]](v *Vector[T, M, D], item T, index, count int) (int, error) {
	i, err := v.findIndexIn(int64(index), int64(count), func(e T) bool { return e == item })
	return toInt(i), err
}

// LastIndexOf returns the index of the last element equal to item, or -1.
func LastIndexOf[T comparable, M memspace.Space, D dispose.Policy[T]](v *Vector[T, M, D], item T) int {
	return toInt(v.findLastIndex(0, v.count(), func(e T) bool { return e == item }))
}

// Contains reports whether an element equal to item exists.
func Contains[T comparable, M memspace.Space, D dispose.Policy[T]](v *Vector[T, M, D], item T) bool {
	return v.findIndex(0, v.count(), func(e T) bool { return e == item }) >= 0
}

// Remove removes the first element equal to item and reports whether one was
// found. The removed element is disposed.
func Remove[T comparable, M memspace.Space, D dispose.Policy[T]](v *Vector[T, M, D], item T) (bool, error) {
	i := v.findIndex(0, v.count(), func(e T) bool { return e == item })
	if i < 0 {
		return false, nil
	}
	return true, v.removeAt(i)
}

// Sort sorts v in ascending natural order. NaNs sort first.
func Sort[T constraints.Ordered, M memspace.Space, D dispose.Policy[T]](v *Vector[T, M, D]) {
	v.sortRange(0, v.count(), compareOrdered[T])
}

// SortRange sorts the count elements starting at index in natural order.
func SortRange[T constraints.Ordered, M memspace.Space, D dispose.Policy[T]](v *Vector[T, M, D], index, count int) error {
	return v.sortRangeChecked(int64(index), int64(count), compareOrdered[T])
}

// BinarySearch searches v, which must be sorted in natural order, for
// target. It returns the index of a match or the bitwise complement of the
// insertion point.
func BinarySearch[T constraints.Ordered, M memspace.Space, D dispose.Policy[T]](v *Vector[T, M, D], target T) int {
	return toInt(v.binarySearch(0, v.count(), target, compareOrdered[T]))
}

// BinarySearchRange is BinarySearch restricted to [index, index+count).
func BinarySearchRange[T constraints.Ordered, M memspace.Space, D dispose.Policy[T]](v *Vector[T, M, D], index, count int, target T) (int, error) {
	r, err := v.binarySearchChecked(int64(index), int64(count), target, compareOrdered[T])
	return toInt(r), err
}

// IsSorted reports whether v is in ascending natural order.
func IsSorted[T constraints.Ordered, M memspace.Space, D dispose.Policy[T]](v *Vector[T, M, D]) bool {
	return v.isSorted(compareOrdered[T])
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	aNaN, bNaN := a != a, b != b //nolint:gocritic // NaN check
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
