package stdvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isEven(x int32) bool { return x%2 == 0 }

func TestFind(t *testing.T) {
	v := ints(t, 1, 2, 3, 4, 5, 6)

	x, ok := v.Find(isEven)
	assert.True(t, ok)
	assert.Equal(t, int32(2), x)

	x, ok = v.FindLast(isEven)
	assert.True(t, ok)
	assert.Equal(t, int32(6), x)

	_, ok = v.Find(func(x int32) bool { return x > 10 })
	assert.False(t, ok)
	_, ok = v.FindLast(func(x int32) bool { return x > 10 })
	assert.False(t, ok)
}

func TestFindIndex(t *testing.T) {
	v := ints(t, 1, 2, 3, 4, 5, 6)

	assert.Equal(t, 1, v.FindIndex(isEven))
	assert.Equal(t, 5, v.FindLastIndex(isEven))
	assert.Equal(t, -1, v.FindIndex(func(x int32) bool { return x == 0 }))

	i, err := v.FindIndexFrom(2, isEven)
	require.NoError(t, err)
	assert.Equal(t, 3, i)

	i, err = v.FindIndexFrom(6, isEven)
	require.NoError(t, err)
	assert.Equal(t, -1, i)

	_, err = v.FindIndexFrom(7, isEven)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFindIndexIn(t *testing.T) {
	v := ints(t, 1, 2, 3, 4, 5, 6)

	tests := []struct {
		name         string
		start, count int
		first, last  int
	}{
		{"whole", 0, 6, 1, 5},
		{"inner", 2, 3, 3, 3},
		{"no match", 2, 1, -1, -1},
		{"empty", 6, 0, -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, err := v.FindIndexIn(tt.start, tt.count, isEven)
			require.NoError(t, err)
			assert.Equal(t, tt.first, i)

			i, err = v.FindLastIndexIn(tt.start, tt.count, isEven)
			require.NoError(t, err)
			assert.Equal(t, tt.last, i)
		})
	}

	_, err := v.FindIndexIn(4, 3, isEven)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = v.FindLastIndexIn(-1, 2, isEven)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFindAll(t *testing.T) {
	v := ints(t, 1, 2, 3, 4, 5, 6)

	assert.Equal(t, []int32{2, 4, 6}, v.FindAll(isEven))
	assert.Empty(t, v.FindAll(func(int32) bool { return false }))

	marks := v.FindAllIndices(isEven)
	assert.Equal(t, []uint64{1, 3, 5}, marks.ToArray())
}

func TestPredicates(t *testing.T) {
	v := ints(t, 2, 4, 6)

	assert.True(t, v.Exists(func(x int32) bool { return x == 4 }))
	assert.False(t, v.Exists(func(x int32) bool { return x == 5 }))
	assert.True(t, v.TrueForAll(isEven))
	assert.False(t, v.TrueForAll(func(x int32) bool { return x < 5 }))
	assert.True(t, New[int32]().TrueForAll(func(int32) bool { return false }))

	v.ForEach(func(x *int32) { *x *= 10 })
	assert.Equal(t, []int32{20, 40, 60}, v.ToSlice())
}

func TestIndexOf(t *testing.T) {
	v := ints(t, 5, 7, 5, 9)

	assert.Equal(t, 0, IndexOf(v, 5))
	assert.Equal(t, 2, LastIndexOf(v, 5))
	assert.Equal(t, -1, IndexOf(v, 8))
	assert.True(t, Contains(v, 9))
	assert.False(t, Contains(v, 8))

	i, err := IndexOfIn(v, 5, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	_, err = IndexOfIn(v, 5, 2, 3)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	eqMod := func(a, b int32) bool { return a%4 == b%4 }
	assert.Equal(t, 0, v.IndexOfFunc(1, eqMod))
	assert.Equal(t, 3, v.LastIndexOfFunc(1, eqMod))
	assert.Equal(t, -1, v.IndexOfFunc(2, eqMod))
}
