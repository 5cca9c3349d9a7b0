package stdvec

import (
	"iter"
	"slices"
	"unsafe"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/stdvec/internal/conv"
)

// move copies n elements from index src to index dst inside the buffer.
// Overlapping ranges are handled.
func (v *Vector[T, M, D]) move(dst, src, n int64) {
	if n <= 0 || dst == src {
		return
	}
	copyBytes(v.ptr(dst), v.ptr(src), uintptr(n)*v.elemSize())
}

func (v *Vector[T, M, D]) setCount(n int64) {
	v.last = v.ptr(n)
}

// overlaps reports whether items shares memory with the buffer.
func (v *Vector[T, M, D]) overlaps(items []T) bool {
	if v.first == nil || len(items) == 0 {
		return false
	}
	lo := uintptr(unsafe.Pointer(unsafe.SliceData(items)))
	hi := lo + uintptr(len(items))*v.elemSize()
	return lo < uintptr(v.end) && uintptr(v.first) < hi
}

// Add appends item, growing the buffer when it is full.
func (v *Vector[T, M, D]) Add(item T) error {
	count := v.count()
	if err := v.ensureCapacity(count + 1); err != nil {
		return err
	}
	*v.elem(count) = item
	v.setCount(count + 1)
	return nil
}

// AddSlice appends a copy of items.
func (v *Vector[T, M, D]) AddSlice(items []T) error {
	return v.insertSlice(v.count(), items)
}

// AddRange appends the elements of src. src may be v itself.
func (v *Vector[T, M, D]) AddRange(src *Vector[T, M, D]) error {
	return v.insertRange(v.count(), src)
}

// AddSeq appends every element produced by seq. seq must be finite.
func (v *Vector[T, M, D]) AddSeq(seq iter.Seq[T]) error {
	return v.insertSeq(v.count(), seq)
}

// Insert places item at index, shifting the elements from index onwards one
// slot to the right. index may equal Len().
func (v *Vector[T, M, D]) Insert(index int, item T) error {
	return v.insert(int64(index), item)
}

// InsertSlice inserts a copy of items at index. items may alias the vector's
// own storage.
func (v *Vector[T, M, D]) InsertSlice(index int, items []T) error {
	return v.insertSlice(int64(index), items)
}

// InsertRange inserts the elements of src at index. When src is v itself the
// result is the original content with a complete copy of it inserted at
// index.
func (v *Vector[T, M, D]) InsertRange(index int, src *Vector[T, M, D]) error {
	return v.insertRange(int64(index), src)
}

// InsertSeq inserts every element produced by seq at index. The sequence is
// drained before the vector is modified, so it may read from v.
func (v *Vector[T, M, D]) InsertSeq(index int, seq iter.Seq[T]) error {
	return v.insertSeq(int64(index), seq)
}

func (v *Vector[T, M, D]) insert(index int64, item T) error {
	if err := v.validateIndex(index, true); err != nil {
		return err
	}
	count := v.count()
	if err := v.ensureCapacity(count + 1); err != nil {
		return err
	}
	v.move(index+1, index, count-index)
	*v.elem(index) = item
	v.setCount(count + 1)
	return nil
}

func (v *Vector[T, M, D]) insertSlice(index int64, items []T) error {
	if err := v.validateIndex(index, true); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	// Growing may release the buffer items points into.
	if v.overlaps(items) {
		items = slices.Clone(items)
	}

	count, n := v.count(), int64(len(items))
	if err := v.ensureCapacity(count + n); err != nil {
		return err
	}
	v.move(index+n, index, count-index)
	copyBytes(v.ptr(index), unsafe.Pointer(unsafe.SliceData(items)), uintptr(n)*v.elemSize())
	v.setCount(count + n)
	return nil
}

func (v *Vector[T, M, D]) insertRange(index int64, src *Vector[T, M, D]) error {
	if src == nil {
		return v.validateIndex(index, true)
	}
	if src == v || (src.first == v.first && src.last == v.last && src.first != nil) {
		return v.insertSelf(index)
	}
	if src.first == nil {
		return v.validateIndex(index, true)
	}
	return v.insertSlice(index, unsafe.Slice((*T)(src.first), src.count()))
}

// insertSelf inserts a copy of the whole vector at index using intra-buffer
// moves only.
func (v *Vector[T, M, D]) insertSelf(index int64) error {
	if err := v.validateIndex(index, true); err != nil {
		return err
	}
	count := v.count()
	if count == 0 {
		return nil
	}
	if err := v.ensureCapacity(conv.DoubleOrMax(count)); err != nil {
		return err
	}
	tail := count - index

	// [prefix | tail | ...] -> [prefix | ... | tail]
	v.move(index+count, index, tail)
	// copy of prefix right behind the original prefix
	v.move(index, 0, index)
	// copy of tail right behind the copied prefix
	v.move(2*index, index+count, tail)

	v.setCount(2 * count)
	return nil
}

func (v *Vector[T, M, D]) insertSeq(index int64, seq iter.Seq[T]) error {
	if err := v.validateIndex(index, true); err != nil {
		return err
	}
	if seq == nil {
		return nil
	}
	return v.insertSlice(index, slices.Collect(seq))
}

// RemoveAt disposes the element at index and closes the gap.
func (v *Vector[T, M, D]) RemoveAt(index int) error {
	return v.removeAt(int64(index))
}

// RemoveRange disposes count elements starting at index and closes the gap.
func (v *Vector[T, M, D]) RemoveRange(index, count int) error {
	return v.removeRange(int64(index), int64(count))
}

// RemoveAll removes every element matching pred and returns how many were
// removed. pred sees each element once, in order; the survivors keep their
// relative order.
func (v *Vector[T, M, D]) RemoveAll(pred func(T) bool) int {
	return toInt(v.removeMarked(v.findAllIndices(0, v.count(), pred)))
}

// RemoveIndices removes the elements whose indices are set in marks and
// returns how many were removed. Every index must be below Len().
func (v *Vector[T, M, D]) RemoveIndices(marks *roaring64.Bitmap) (int, error) {
	n, err := v.removeIndices(marks)
	if err != nil {
		return 0, err
	}
	return toInt(n), nil
}

func (v *Vector[T, M, D]) removeAt(index int64) error {
	if err := v.validateIndex(index, false); err != nil {
		return err
	}
	count := v.count()
	v.disposeRange(index, index+1)
	v.move(index, index+1, count-index-1)
	v.setCount(count - 1)
	return nil
}

func (v *Vector[T, M, D]) removeRange(index, n int64) error {
	if err := v.validateRange(index, n); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	count := v.count()
	v.disposeRange(index, index+n)
	v.move(index, index+n, count-index-n)
	v.setCount(count - n)
	return nil
}

func (v *Vector[T, M, D]) removeIndices(marks *roaring64.Bitmap) (int64, error) {
	if marks == nil || marks.IsEmpty() {
		return 0, nil
	}
	maxIdx, err := conv.Uint64ToInt64(marks.Maximum())
	if err != nil {
		return 0, argError("index", -1, err.Error())
	}
	if err := v.validateIndex(maxIdx, false); err != nil {
		return 0, err
	}
	return v.removeMarked(marks), nil
}

// removeMarked compacts the survivors over the marked slots in one pass.
// Each marked element is disposed before its slot can be overwritten.
func (v *Vector[T, M, D]) removeMarked(marks *roaring64.Bitmap) int64 {
	if marks.IsEmpty() {
		return 0
	}
	var d D
	disposable := d.Disposable()
	count := v.count()

	w, prev := int64(-1), int64(-1)
	it := marks.Iterator()
	for it.HasNext() {
		idx := int64(it.Next())
		if disposable {
			d.Dispose(v.elem(idx))
		}
		if prev < 0 {
			w = idx
		} else {
			gap := idx - prev - 1
			v.move(w, prev+1, gap)
			w += gap
		}
		prev = idx
	}
	tail := count - prev - 1
	v.move(w, prev+1, tail)
	w += tail

	v.setCount(w)
	return count - w
}

// Clear disposes every element and sets the length to zero. The capacity is
// kept.
func (v *Vector[T, M, D]) Clear() {
	if v.first == nil {
		return
	}
	v.disposeRange(0, v.count())
	v.last = v.first
}

type fillMode int

const (
	fillZero fillMode = iota
	fillValue
	fillNone
)

// Resize sets the length to n. Shrinking disposes the trailing elements;
// growing appends zero values.
func (v *Vector[T, M, D]) Resize(n int) error {
	var zero T
	return v.resize(int64(n), fillZero, zero)
}

// ResizeFill is Resize with new elements set to fill.
func (v *Vector[T, M, D]) ResizeFill(n int, fill T) error {
	return v.resize(int64(n), fillValue, fill)
}

// ResizeUndefined is Resize without initializing new elements. Their
// contents are whatever the memory space returned or left behind; the
// caller must write them before reading.
func (v *Vector[T, M, D]) ResizeUndefined(n int) error {
	var zero T
	return v.resize(int64(n), fillNone, zero)
}

func (v *Vector[T, M, D]) resize(n int64, mode fillMode, fill T) error {
	if n < 0 {
		return argError("newCount", n, "must be non-negative")
	}
	count := v.count()
	if n == count {
		return nil
	}
	if n < count {
		v.disposeRange(n, count)
		v.setCount(n)
		return nil
	}

	if err := v.ensureCapacity(n); err != nil {
		return err
	}
	switch mode {
	case fillZero:
		zeroBytes(v.ptr(count), uintptr(n-count)*v.elemSize())
	case fillValue:
		for i := count; i < n; i++ {
			*v.elem(i) = fill
		}
	case fillNone:
	}
	v.setCount(n)
	return nil
}
