//go:build unix || windows

package memspace

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnon_AllocateFree(t *testing.T) {
	before := AnonStats()

	p, err := Anon{}.Allocate(1000, DefaultAlignment)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, uintptr(0), uintptr(p)%DefaultAlignment)

	b := unsafe.Slice((*byte)(p), 1000)
	for i := range b {
		require.Zero(t, b[i])
	}
	b[999] = 7

	mid := AnonStats()
	assert.Equal(t, before.Allocs+1, mid.Allocs)
	assert.Greater(t, mid.BytesLive, before.BytesLive)

	Anon{}.Free(p, 1000)

	after := AnonStats()
	assert.Equal(t, before.Frees+1, after.Frees)
	assert.Equal(t, before.BytesLive, after.BytesLive)
}

func TestAnon_Errors(t *testing.T) {
	_, err := Anon{}.Allocate(0, DefaultAlignment)
	assert.ErrorIs(t, err, ErrZeroSize)

	_, err = Anon{}.Allocate(64, 1<<20)
	assert.Error(t, err)

	_, err = Anon{}.Allocate(64, 12)
	assert.Error(t, err)
}
