package stdvec

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Find returns the first element matching pred.
func (v *Vector[T, M, D]) Find(pred func(T) bool) (T, bool) {
	if i := v.findIndex(0, v.count(), pred); i >= 0 {
		return *v.elem(i), true
	}
	var zero T
	return zero, false
}

// FindLast returns the last element matching pred.
func (v *Vector[T, M, D]) FindLast(pred func(T) bool) (T, bool) {
	if i := v.findLastIndex(0, v.count(), pred); i >= 0 {
		return *v.elem(i), true
	}
	var zero T
	return zero, false
}

// FindIndex returns the index of the first element matching pred, or -1.
func (v *Vector[T, M, D]) FindIndex(pred func(T) bool) int {
	return toInt(v.findIndex(0, v.count(), pred))
}

// FindIndexFrom is FindIndex starting at start.
func (v *Vector[T, M, D]) FindIndexFrom(start int, pred func(T) bool) (int, error) {
	s := int64(start)
	if err := v.validateIndex(s, true); err != nil {
		return -1, err
	}
	return toInt(v.findIndex(s, v.count(), pred)), nil
}

// FindIndexIn is FindIndex restricted to [start, start+count).
func (v *Vector[T, M, D]) FindIndexIn(start, count int, pred func(T) bool) (int, error) {
	i, err := v.findIndexIn(int64(start), int64(count), pred)
	return toInt(i), err
}

// FindLastIndex returns the index of the last element matching pred, or -1.
func (v *Vector[T, M, D]) FindLastIndex(pred func(T) bool) int {
	return toInt(v.findLastIndex(0, v.count(), pred))
}

// FindLastIndexIn returns the index of the last element in
// [start, start+count) matching pred, or -1.
func (v *Vector[T, M, D]) FindLastIndexIn(start, count int, pred func(T) bool) (int, error) {
	i, err := v.findLastIndexIn(int64(start), int64(count), pred)
	return toInt(i), err
}

// FindAll returns a copy of every element matching pred, in order.
func (v *Vector[T, M, D]) FindAll(pred func(T) bool) []T {
	var out []T
	for i, n := int64(0), v.count(); i < n; i++ {
		if e := *v.elem(i); pred(e) {
			out = append(out, e)
		}
	}
	return out
}

// FindAllIndices returns the indices of every element matching pred.
func (v *Vector[T, M, D]) FindAllIndices(pred func(T) bool) *roaring64.Bitmap {
	return v.findAllIndices(0, v.count(), pred)
}

// Exists reports whether any element matches pred.
func (v *Vector[T, M, D]) Exists(pred func(T) bool) bool {
	return v.findIndex(0, v.count(), pred) >= 0
}

// TrueForAll reports whether every element matches pred. It is true for an
// empty vector.
func (v *Vector[T, M, D]) TrueForAll(pred func(T) bool) bool {
	for i, n := int64(0), v.count(); i < n; i++ {
		if !pred(*v.elem(i)) {
			return false
		}
	}
	return true
}

// ForEach calls fn with a pointer to each element in order.
func (v *Vector[T, M, D]) ForEach(fn func(*T)) {
	for i, n := int64(0), v.count(); i < n; i++ {
		fn(v.elem(i))
	}
}

// IndexOfFunc returns the index of the first element eq reports equal to
// item, or -1.
func (v *Vector[T, M, D]) IndexOfFunc(item T, eq func(a, b T) bool) int {
	return toInt(v.findIndex(0, v.count(), func(e T) bool { return eq(e, item) }))
}

// LastIndexOfFunc returns the index of the last element eq reports equal to
// item, or -1.
func (v *Vector[T, M, D]) LastIndexOfFunc(item T, eq func(a, b T) bool) int {
	return toInt(v.findLastIndex(0, v.count(), func(e T) bool { return eq(e, item) }))
}

// RemoveFunc removes the first element eq reports equal to item and reports
// whether one was found.
func (v *Vector[T, M, D]) RemoveFunc(item T, eq func(a, b T) bool) (bool, error) {
	i := v.findIndex(0, v.count(), func(e T) bool { return eq(e, item) })
	if i < 0 {
		return false, nil
	}
	return true, v.removeAt(i)
}

func (v *Vector[T, M, D]) findIndex(lo, hi int64, pred func(T) bool) int64 {
	for i := lo; i < hi; i++ {
		if pred(*v.elem(i)) {
			return i
		}
	}
	return -1
}

func (v *Vector[T, M, D]) findLastIndex(lo, hi int64, pred func(T) bool) int64 {
	for i := hi - 1; i >= lo; i-- {
		if pred(*v.elem(i)) {
			return i
		}
	}
	return -1
}

func (v *Vector[T, M, D]) findIndexIn(start, n int64, pred func(T) bool) (int64, error) {
	if err := v.validateRange(start, n); err != nil {
		return -1, err
	}
	return v.findIndex(start, start+n, pred), nil
}

func (v *Vector[T, M, D]) findLastIndexIn(start, n int64, pred func(T) bool) (int64, error) {
	if err := v.validateRange(start, n); err != nil {
		return -1, err
	}
	return v.findLastIndex(start, start+n, pred), nil
}

func (v *Vector[T, M, D]) findAllIndices(lo, hi int64, pred func(T) bool) *roaring64.Bitmap {
	marks := roaring64.New()
	for i := lo; i < hi; i++ {
		if pred(*v.elem(i)) {
			marks.Add(uint64(i))
		}
	}
	return marks
}
