package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt64ToInt(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := Int64ToInt(0)
		assert.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("valid negative", func(t *testing.T) {
		got, err := Int64ToInt(-7)
		assert.NoError(t, err)
		assert.Equal(t, -7, got)
	})

	t.Run("valid max int", func(t *testing.T) {
		got, err := Int64ToInt(int64(math.MaxInt))
		assert.NoError(t, err)
		assert.Equal(t, math.MaxInt, got)
	})
}

func TestInt64ToUintptr(t *testing.T) {
	t.Run("valid positive", func(t *testing.T) {
		got, err := Int64ToUintptr(4096)
		assert.NoError(t, err)
		assert.Equal(t, uintptr(4096), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := Int64ToUintptr(-1)
		assert.ErrorIs(t, err, ErrOverflow)
	})
}

func TestUint64ToInt64(t *testing.T) {
	got, err := Uint64ToInt64(math.MaxInt64)
	assert.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), got)

	_, err = Uint64ToInt64(math.MaxInt64 + 1)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestByteSize(t *testing.T) {
	tests := []struct {
		name     string
		count    int64
		elemSize uintptr
		want     uintptr
		wantErr  bool
	}{
		{"zero count", 0, 8, 0, false},
		{"simple", 10, 4, 40, false},
		{"negative count", -1, 4, 0, true},
		{"overflow", math.MaxInt64, 16, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ByteSize(tt.count, tt.elemSize)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrOverflow)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDoubleOrMax(t *testing.T) {
	assert.Equal(t, int64(0), DoubleOrMax(0))
	assert.Equal(t, int64(8), DoubleOrMax(4))
	assert.Equal(t, int64(math.MaxInt64), DoubleOrMax(math.MaxInt64/2+1))
}
