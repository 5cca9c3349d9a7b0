package dispose

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type handle struct {
	id       uint32
	released bool
}

func (h *handle) Dispose() { h.released = true }

func TestNone(t *testing.T) {
	var p Policy[int32] = None[int32]{}
	assert.False(t, p.Disposable())

	x := int32(5)
	p.Dispose(&x)
	assert.Equal(t, int32(5), x)
}

func TestMethod(t *testing.T) {
	var p Policy[handle] = Method[handle, *handle]{}
	assert.True(t, p.Disposable())

	h := handle{id: 7}
	p.Dispose(&h)
	assert.True(t, h.released)
	assert.Equal(t, uint32(7), h.id)
}
