package memspace

import (
	"errors"
	"log/slog"
	"sync/atomic"
	"unsafe"
)

// DefaultAlignment is the alignment vectors request for their buffers.
const DefaultAlignment = 16

// Space is an aligned allocate/free strategy.
//
// Allocate returns memory of at least size bytes aligned to alignment, or an
// error. Free releases memory previously returned by Allocate with the same
// size. Implementations are used through their zero value.
type Space interface {
	Allocate(size, alignment uintptr) (unsafe.Pointer, error)
	Free(p unsafe.Pointer, size uintptr)
}

// ErrZeroSize is returned when Allocate is called with a zero size.
var ErrZeroSize = errors.New("memspace: zero-size allocation")

// Stats is a snapshot of a space's allocation counters.
type Stats struct {
	Allocs    uint64 // Historical: successful allocations
	Frees     uint64 // Historical: frees
	Failures  uint64 // Historical: denied or failed allocations
	BytesLive int64  // Current: bytes held by outstanding allocations
}

type counters struct {
	allocs    atomic.Uint64
	frees     atomic.Uint64
	failures  atomic.Uint64
	bytesLive atomic.Int64
}

func (c *counters) alloc(size uintptr) {
	c.allocs.Add(1)
	c.bytesLive.Add(int64(size))
}

func (c *counters) free(size uintptr) {
	c.frees.Add(1)
	c.bytesLive.Add(-int64(size))
}

func (c *counters) snapshot() Stats {
	return Stats{
		Allocs:    c.allocs.Load(),
		Frees:     c.frees.Load(),
		Failures:  c.failures.Load(),
		BytesLive: c.bytesLive.Load(),
	}
}

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(slog.DiscardHandler))
}

// SetLogger installs the logger used for allocation failures and budget
// denials. A nil logger discards output.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger.Store(l)
}

func log() *slog.Logger {
	return logger.Load()
}
