package stdvec

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/stdvec/testutil"
)

func TestBinarySearch(t *testing.T) {
	v := ints(t, 1, 3, 5, 7)

	tests := []struct {
		target int32
		want   int
	}{
		{5, 2},
		{4, ^2},
		{1, 0},
		{7, 3},
		{0, ^0},
		{8, ^4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BinarySearch(v, tt.target), "search %d", tt.target)
		assert.Equal(t, tt.want, v.BinarySearchFunc(tt.target, ascending), "search func %d", tt.target)
		assert.Equal(t, tt.want, v.BinarySearchComparer(tt.target, CompareFunc[int32](ascending)), "search comparer %d", tt.target)
	}

	assert.Equal(t, ^0, BinarySearch(New[int32](), 1))
}

func TestBinarySearchRange(t *testing.T) {
	v := ints(t, 9, 9, 1, 3, 5, 7, 0)

	i, err := v.BinarySearchRangeFunc(2, 4, 5, ascending)
	require.NoError(t, err)
	assert.Equal(t, 4, i)

	i, err = v.BinarySearchRangeFunc(2, 4, 4, ascending)
	require.NoError(t, err)
	assert.Equal(t, ^4, i)

	i, err = BinarySearchRange(v, 2, 4, 8)
	require.NoError(t, err)
	assert.Equal(t, ^6, i)

	i, err = BinarySearchRange(v, 3, 0, 8)
	require.NoError(t, err)
	assert.Equal(t, ^3, i)

	_, err = v.BinarySearchRangeFunc(5, 3, 1, ascending)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSortDescending(t *testing.T) {
	v := New[int32]()
	defer v.Free()
	require.NoError(t, v.Add(1))
	require.NoError(t, v.Add(2))
	require.NoError(t, v.Add(3))

	v.SortFunc(descending)
	assert.Equal(t, []int32{3, 2, 1}, v.ToSlice())
}

func TestSortShapes(t *testing.T) {
	rng := testutil.NewRNG(42)

	for name, data := range rng.Shapes(1000) {
		t.Run(name, func(t *testing.T) {
			v := ints(t, data...)

			Sort(v)
			assert.True(t, IsSorted(v))
			assert.Equal(t, slices.Sorted(slices.Values(data)), v.ToSlice())

			v.SortComparer(CompareFunc[int32](descending))
			assert.True(t, slices.IsSortedFunc(v.AsSlice(), descending))
		})
	}
}

func TestSortRange(t *testing.T) {
	v := ints(t, 9, 4, 3, 2, 1, 0)

	require.NoError(t, SortRange(v, 1, 4))
	assert.Equal(t, []int32{9, 1, 2, 3, 4, 0}, v.ToSlice())

	require.NoError(t, v.SortRangeFunc(0, 3, descending))
	assert.Equal(t, []int32{9, 2, 1, 3, 4, 0}, v.ToSlice())

	assert.ErrorIs(t, SortRange(v, 4, 3), ErrInvalidArgument)
	assert.ErrorIs(t, v.SortRangeFunc(-1, 1, descending), ErrInvalidArgument)
	assert.Equal(t, []int32{9, 2, 1, 3, 4, 0}, v.ToSlice())
}

func TestSortFloatsWithNaN(t *testing.T) {
	v, err := Of(3.5, math.NaN(), -1, 2)
	require.NoError(t, err)
	defer v.Free()

	Sort(v)
	got := v.ToSlice()
	assert.True(t, math.IsNaN(got[0]))
	assert.Equal(t, []float64{-1, 2, 3.5}, got[1:])
}

type point struct{ X, Y int32 }

func TestSortStructs(t *testing.T) {
	v := &Plain[point]{}
	defer v.Free()
	require.NoError(t, v.AddSlice([]point{{3, 1}, {1, 2}, {2, 0}}))

	v.SortFunc(func(a, b point) int { return int(a.X - b.X) })
	assert.Equal(t, []point{{1, 2}, {2, 0}, {3, 1}}, v.ToSlice())

	i := v.BinarySearchFunc(point{X: 2}, func(a, b point) int { return int(a.X - b.X) })
	assert.Equal(t, 1, i)
}

func TestReverse(t *testing.T) {
	v := ints(t, 1, 2, 3, 4, 5)

	v.Reverse()
	assert.Equal(t, []int32{5, 4, 3, 2, 1}, v.ToSlice())

	require.NoError(t, v.ReverseRange(1, 3))
	assert.Equal(t, []int32{5, 2, 3, 4, 1}, v.ToSlice())

	require.NoError(t, v.ReverseRange(5, 0))
	assert.ErrorIs(t, v.ReverseRange(3, 3), ErrInvalidArgument)

	New[int32]().Reverse()
}
