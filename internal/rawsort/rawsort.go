package rawsort

import (
	"math/bits"
	"unsafe"
)

// insertionThreshold is the run length at or below which Sort switches to
// insertion sort.
const insertionThreshold = 12

func at[T any](base unsafe.Pointer, i int64) *T {
	var zero T
	return (*T)(unsafe.Add(base, uintptr(i)*unsafe.Sizeof(zero))) //nolint:gosec // callers validate ranges
}

func swap[T any](base unsafe.Pointer, i, j int64) {
	a, b := at[T](base, i), at[T](base, j)
	*a, *b = *b, *a
}

// Sort sorts the n elements at base in place. cmp returns a negative number
// when a < b, zero when a == b and a positive number when a > b.
func Sort[T any](base unsafe.Pointer, n int64, cmp func(a, b T) int) {
	if n < 2 {
		return
	}
	introsort(base, 0, n, 2*bits.Len64(uint64(n)), cmp)
}

func introsort[T any](base unsafe.Pointer, lo, hi int64, depth int, cmp func(a, b T) int) {
	for hi-lo > insertionThreshold {
		if depth == 0 {
			heapSort(base, lo, hi, cmp)
			return
		}
		depth--

		p := partition(base, lo, hi, cmp)

		// Recurse into the smaller side to bound stack depth.
		if p-lo < hi-p {
			introsort(base, lo, p, depth, cmp)
			lo = p + 1
		} else {
			introsort(base, p+1, hi, depth, cmp)
			hi = p
		}
	}
	insertionSort(base, lo, hi, cmp)
}

// partition places a median-of-three pivot at its final position p such that
// [lo, p) <= pivot <= (p, hi), and returns p.
func partition[T any](base unsafe.Pointer, lo, hi int64, cmp func(a, b T) int) int64 {
	mid := lo + (hi-lo)/2
	last := hi - 1

	if cmp(*at[T](base, lo), *at[T](base, mid)) > 0 {
		swap[T](base, lo, mid)
	}
	if cmp(*at[T](base, mid), *at[T](base, last)) > 0 {
		swap[T](base, mid, last)
		if cmp(*at[T](base, lo), *at[T](base, mid)) > 0 {
			swap[T](base, lo, mid)
		}
	}
	swap[T](base, lo, mid)

	pivot := *at[T](base, lo)
	i, j := lo+1, hi-1
	for {
		for i <= j && cmp(*at[T](base, i), pivot) < 0 {
			i++
		}
		for i <= j && cmp(*at[T](base, j), pivot) > 0 {
			j--
		}
		if i >= j {
			break
		}
		swap[T](base, i, j)
		i++
		j--
	}
	swap[T](base, lo, j)
	return j
}

func insertionSort[T any](base unsafe.Pointer, lo, hi int64, cmp func(a, b T) int) {
	for i := lo + 1; i < hi; i++ {
		for j := i; j > lo && cmp(*at[T](base, j), *at[T](base, j-1)) < 0; j-- {
			swap[T](base, j, j-1)
		}
	}
}

func heapSort[T any](base unsafe.Pointer, lo, hi int64, cmp func(a, b T) int) {
	n := hi - lo
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(base, lo, i, n, cmp)
	}
	for i := n - 1; i > 0; i-- {
		swap[T](base, lo, lo+i)
		siftDown(base, lo, 0, i, cmp)
	}
}

func siftDown[T any](base unsafe.Pointer, first, root, n int64, cmp func(a, b T) int) {
	for {
		child := 2*root + 1
		if child >= n {
			return
		}
		if child+1 < n && cmp(*at[T](base, first+child), *at[T](base, first+child+1)) < 0 {
			child++
		}
		if cmp(*at[T](base, first+root), *at[T](base, first+child)) >= 0 {
			return
		}
		swap[T](base, first+root, first+child)
		root = child
	}
}

// BinarySearch searches the n sorted elements at base for target.
// It returns the index of a matching element, or the bitwise complement of
// the index at which target would be inserted.
func BinarySearch[T any](base unsafe.Pointer, n int64, target T, cmp func(a, b T) int) int64 {
	lo, hi := int64(0), n-1
	for lo <= hi {
		mid := lo + (hi-lo)>>1
		c := cmp(*at[T](base, mid), target)
		if c == 0 {
			return mid
		}
		if c < 0 {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return ^lo
}

// Reverse reverses the n elements at base in place.
func Reverse[T any](base unsafe.Pointer, n int64) {
	for i, j := int64(0), n-1; i < j; i, j = i+1, j-1 {
		swap[T](base, i, j)
	}
}

// IsSorted reports whether the n elements at base are in ascending order.
func IsSorted[T any](base unsafe.Pointer, n int64, cmp func(a, b T) int) bool {
	for i := int64(1); i < n; i++ {
		if cmp(*at[T](base, i), *at[T](base, i-1)) < 0 {
			return false
		}
	}
	return true
}
