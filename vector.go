package stdvec

import (
	"fmt"
	"math"
	"reflect"
	"unsafe"

	"github.com/hupe1980/stdvec/dispose"
	"github.com/hupe1980/stdvec/internal/conv"
	"github.com/hupe1980/stdvec/memspace"
)

// Vector is a growable, contiguous sequence whose header is laid out exactly
// like a native std::vector<T>: three pointers marking the first element,
// one past the last element, and one past the allocated storage.
//
// M selects the memory space and D the disposal policy; both are used
// through their zero values and take no space in the header. The zero
// Vector is empty and ready to use.
//
// A Vector is not safe for concurrent use.
type Vector[T any, M memspace.Space, D dispose.Policy[T]] struct {
	first unsafe.Pointer
	last  unsafe.Pointer
	end   unsafe.Pointer
}

// Plain is a Vector of plain values on the Go heap with no disposal.
type Plain[T any] = Vector[T, memspace.Heap, dispose.None[T]]

// New returns an empty Plain vector.
func New[T any]() *Plain[T] {
	return &Plain[T]{}
}

func (v *Vector[T, M, D]) elemSize() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

func (v *Vector[T, M, D]) count() int64 {
	if v.first == nil {
		return 0
	}
	return int64((uintptr(v.last) - uintptr(v.first)) / v.elemSize())
}

func (v *Vector[T, M, D]) capacity() int64 {
	if v.first == nil {
		return 0
	}
	return int64((uintptr(v.end) - uintptr(v.first)) / v.elemSize())
}

func (v *Vector[T, M, D]) ptr(i int64) unsafe.Pointer {
	return unsafe.Add(v.first, uintptr(i)*v.elemSize()) //nolint:gosec // callers validate i
}

func (v *Vector[T, M, D]) elem(i int64) *T {
	return (*T)(v.ptr(i))
}

// toInt narrows a count or index for the platform-width surface.
func toInt(n int64) int {
	i, err := conv.Int64ToInt(n)
	if err != nil {
		panic(fmt.Errorf("%w: %d does not fit int, use Long(): %w", ErrInvalidOperation, n, err))
	}
	return i
}

// Len returns the number of elements.
func (v *Vector[T, M, D]) Len() int { return toInt(v.count()) }

// Cap returns the number of elements the buffer can hold without growing.
func (v *Vector[T, M, D]) Cap() int { return toInt(v.capacity()) }

// IsEmpty reports whether the vector has no elements.
func (v *Vector[T, M, D]) IsEmpty() bool { return v.first == v.last }

// EnsureCapacity grows the buffer so it can hold at least n elements.
// It is a no-op when the capacity already suffices; otherwise the new
// capacity is max(n, 2*Len()).
func (v *Vector[T, M, D]) EnsureCapacity(n int) error {
	return v.ensureCapacity(int64(n))
}

// SetCapacity reallocates the buffer to exactly n elements.
// It fails with ErrInvalidArgument when n is below Len().
func (v *Vector[T, M, D]) SetCapacity(n int) error {
	return v.setCapacity(int64(n))
}

// TrimExcess shrinks the buffer to Len() elements.
func (v *Vector[T, M, D]) TrimExcess() error {
	return v.setCapacity(v.count())
}

func (v *Vector[T, M, D]) ensureCapacity(minCap int64) error {
	if minCap < 0 {
		return argError("min", minCap, "must be non-negative")
	}
	if minCap <= v.capacity() {
		return nil
	}
	return v.setCapacity(max(minCap, conv.DoubleOrMax(v.count())))
}

// setCapacity is the only place a buffer is allocated or released, apart
// from Free.
func (v *Vector[T, M, D]) setCapacity(newCap int64) error {
	count := v.count()
	if newCap < count {
		return argError("capacity", newCap, fmt.Sprintf("below count %d", count))
	}
	oldCap := v.capacity()
	if newCap == oldCap {
		return nil
	}

	var space M
	size := v.elemSize()
	oldBytes := uintptr(oldCap) * size

	if newCap == 0 {
		space.Free(v.first, oldBytes)
		metrics().RecordFree(uint64(oldBytes))
		metrics().RecordGrow(oldCap, 0)
		v.first, v.last, v.end = nil, nil, nil
		return nil
	}

	if err := checkElem[T](); err != nil {
		return err
	}

	newBytes, err := conv.ByteSize(newCap, size)
	if err != nil {
		aerr := &AllocError{Bytes: math.MaxUint64, cause: err}
		metrics().RecordAlloc(aerr.Bytes, aerr)
		logger().WithElemType(reflect.TypeFor[T]().String(), size).LogGrow(oldCap, newCap, 0, aerr)
		return aerr
	}

	p, err := space.Allocate(newBytes, memspace.DefaultAlignment)
	if err != nil || p == nil {
		aerr := &AllocError{Bytes: uint64(newBytes), cause: err}
		metrics().RecordAlloc(aerr.Bytes, aerr)
		logger().WithElemType(reflect.TypeFor[T]().String(), size).LogGrow(oldCap, newCap, newBytes, aerr)
		return aerr
	}
	metrics().RecordAlloc(uint64(newBytes), nil)

	liveBytes := uintptr(count) * size
	if liveBytes > 0 {
		copyBytes(p, v.first, liveBytes)
	}
	if v.first != nil {
		space.Free(v.first, oldBytes)
		metrics().RecordFree(uint64(oldBytes))
	}

	v.first = p
	v.last = unsafe.Add(p, liveBytes)
	v.end = unsafe.Add(p, newBytes)

	metrics().RecordGrow(oldCap, newCap)
	logger().LogGrow(oldCap, newCap, newBytes, nil)
	return nil
}

// Free disposes every element (when the policy is active), returns the
// buffer to the memory space and leaves the vector empty with zero
// capacity. Calling Free again is a no-op.
func (v *Vector[T, M, D]) Free() {
	if v.first == nil {
		return
	}
	count, capacity := v.count(), v.capacity()
	disposed := v.disposeRange(0, count)

	var space M
	bytes := uintptr(capacity) * v.elemSize()
	space.Free(v.first, bytes)
	metrics().RecordFree(uint64(bytes))

	v.first, v.last, v.end = nil, nil, nil
	logger().LogFree(count, capacity, disposed)
}

// disposeRange runs the disposal policy over [lo, hi) and reports whether it
// is active. An inactive policy costs one call, not one per element.
func (v *Vector[T, M, D]) disposeRange(lo, hi int64) bool {
	var d D
	if !d.Disposable() {
		return false
	}
	for i := lo; i < hi; i++ {
		d.Dispose(v.elem(i))
	}
	return true
}

// At returns a pointer to the element at index. The pointer is valid until
// the next operation that changes the capacity.
func (v *Vector[T, M, D]) At(index int) (*T, error) {
	return v.at(int64(index))
}

// Get returns a copy of the element at index.
func (v *Vector[T, M, D]) Get(index int) (T, error) {
	p, err := v.at(int64(index))
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Set overwrites the element at index. The previous value is not disposed.
func (v *Vector[T, M, D]) Set(index int, item T) error {
	p, err := v.at(int64(index))
	if err != nil {
		return err
	}
	*p = item
	return nil
}

func (v *Vector[T, M, D]) at(index int64) (*T, error) {
	if err := v.validateIndex(index, false); err != nil {
		return nil, err
	}
	return v.elem(index), nil
}

// Data returns the address of the first element, or nil when the vector has
// no buffer.
func (v *Vector[T, M, D]) Data() unsafe.Pointer { return v.first }

// AsSlice returns a slice aliasing the live elements. Writes through the
// slice change the vector; the slice is invalidated by any operation that
// changes the capacity.
func (v *Vector[T, M, D]) AsSlice() []T {
	if v.first == nil {
		return nil
	}
	return unsafe.Slice((*T)(v.first), toInt(v.count()))
}

// Cursors returns the raw header addresses: first element, one past the
// last element, and one past the allocated storage.
func (v *Vector[T, M, D]) Cursors() (first, last, end uintptr) {
	return uintptr(v.first), uintptr(v.last), uintptr(v.end)
}

func copyBytes(dst, src unsafe.Pointer, n uintptr) {
	copy(unsafe.Slice((*byte)(dst), n), unsafe.Slice((*byte)(src), n))
}

func zeroBytes(p unsafe.Pointer, n uintptr) {
	clear(unsafe.Slice((*byte)(p), n))
}
