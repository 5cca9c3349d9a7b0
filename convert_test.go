package stdvec

import (
	"slices"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/stdvec/dispose"
	"github.com/hupe1980/stdvec/memspace"
)

func TestFromSlice(t *testing.T) {
	items := []int32{1, 2, 3}

	v, err := FromSlice[int32, memspace.Heap, dispose.None[int32]](items)
	require.NoError(t, err)
	defer v.Free()

	items[0] = 9
	assert.Equal(t, []int32{1, 2, 3}, v.ToSlice())
	assert.Equal(t, 3, v.Cap())

	empty, err := FromSlice[int32, memspace.Heap, dispose.None[int32]](nil)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, 0, empty.Cap())

	_, err = Of("a", "b")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFromSeq(t *testing.T) {
	v, err := FromSeq[int64, memspace.Anon, dispose.None[int64]](slices.Values([]int64{5, 6, 7}))
	require.NoError(t, err)
	defer v.Free()

	assert.Equal(t, []int64{5, 6, 7}, v.ToSlice())
}

func TestToSliceRange(t *testing.T) {
	v := ints(t, 1, 2, 3, 4)

	s, err := v.ToSliceRange(1, 2)
	require.NoError(t, err)
	assert.Equal(t, []int32{2, 3}, s)

	s[0] = 99
	assert.Equal(t, []int32{1, 2, 3, 4}, v.ToSlice())

	s, err = v.ToSliceRange(4, 0)
	require.NoError(t, err)
	assert.Empty(t, s)

	_, err = v.ToSliceRange(3, 2)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestClone(t *testing.T) {
	v := ints(t, 1, 2, 3)
	require.NoError(t, v.EnsureCapacity(10))

	c, err := v.Clone()
	require.NoError(t, err)
	defer c.Free()

	assert.Equal(t, v.ToSlice(), c.ToSlice())
	assert.Equal(t, 3, c.Cap())
	assert.NotEqual(t, v.Data(), c.Data())

	require.NoError(t, c.Set(0, 7))
	assert.Equal(t, []int32{1, 2, 3}, v.ToSlice())

	e, err := New[int32]().Clone()
	require.NoError(t, err)
	assert.True(t, e.IsEmpty())
}

// nativeHolder mimics a foreign struct embedding a native vector header.
type nativeHolder struct {
	ID     uint32
	_      uint32
	Header [3]uintptr
	Tail   uint64
}

func TestOverlay(t *testing.T) {
	t.Run("empty header", func(t *testing.T) {
		var h nativeHolder
		h.Tail = 0xfeed

		v, err := Overlay[int32, memspace.Heap, dispose.None[int32]](unsafe.Pointer(&h.Header))
		require.NoError(t, err)

		require.NoError(t, v.AddSlice([]int32{1, 2, 3}))
		defer v.Free()

		assert.NotZero(t, h.Header[0])
		assert.Equal(t, h.Header[0]+12, h.Header[1])
		assert.GreaterOrEqual(t, h.Header[2], h.Header[1])
		assert.Equal(t, uint64(0xfeed), h.Tail)
	})

	t.Run("shares the header", func(t *testing.T) {
		v := ints(t, 4, 5, 6)

		o, err := Overlay[int32, memspace.Heap, dispose.None[int32]](unsafe.Pointer(v))
		require.NoError(t, err)
		assert.Equal(t, []int32{4, 5, 6}, o.ToSlice())

		require.NoError(t, o.Add(7))
		assert.Equal(t, []int32{4, 5, 6, 7}, v.ToSlice())
	})

	t.Run("invalid headers", func(t *testing.T) {
		_, err := Overlay[int32, memspace.Heap, dispose.None[int32]](nil)
		assert.ErrorIs(t, err, ErrInvalidArgument)

		buf := make([]int32, 4)
		base := uintptr(unsafe.Pointer(&buf[0]))

		bad := [][3]uintptr{
			{0, base, base},
			{base + 8, base, base + 16},
			{base, base + 16, base + 8},
			{base, base + 6, base + 16},
		}
		for _, hdr := range bad {
			_, err := Overlay[int32, memspace.Heap, dispose.None[int32]](unsafe.Pointer(&hdr))
			assert.ErrorIs(t, err, ErrInvalidArgument, "header %v", hdr)
		}

		var strHdr [3]uintptr
		_, err = Overlay[string, memspace.Heap, dispose.None[string]](unsafe.Pointer(&strHdr))
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}
