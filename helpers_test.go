package stdvec

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/stdvec/dispose"
	"github.com/hupe1980/stdvec/memspace"
)

// handle records its id in disposedIDs when disposed.
type handle struct {
	id int32
}

var disposedIDs []int32

func (h *handle) Dispose() { disposedIDs = append(disposedIDs, h.id) }

type handleVec = Vector[handle, memspace.Heap, dispose.Method[handle, *handle]]

func trackDisposal(t *testing.T) {
	t.Helper()
	disposedIDs = nil
	t.Cleanup(func() { disposedIDs = nil })
}

func handles(t *testing.T, ids ...int32) *handleVec {
	t.Helper()
	v := &handleVec{}
	for _, id := range ids {
		require.NoError(t, v.Add(handle{id: id}))
	}
	t.Cleanup(func() {
		saved := disposedIDs
		v.Free()
		disposedIDs = saved
	})
	return v
}

func ids(v *handleVec) []int32 {
	out := make([]int32, 0, v.Len())
	for h := range v.Values() {
		out = append(out, h.id)
	}
	return out
}

func ints(t *testing.T, items ...int32) *Plain[int32] {
	t.Helper()
	v, err := Of(items...)
	require.NoError(t, err)
	t.Cleanup(v.Free)
	return v
}

func descending(a, b int32) int { return cmp.Compare(b, a) }

func ascending(a, b int32) int { return cmp.Compare(a, b) }
