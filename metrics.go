package stdvec

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting buffer metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    allocBytes prometheus.Counter
//	    grows      prometheus.Counter
//	}
//
//	func (p *PrometheusCollector) RecordAlloc(bytes uint64, err error) {
//	    if err == nil {
//	        p.allocBytes.Add(float64(bytes))
//	    }
//	}
type MetricsCollector interface {
	// RecordAlloc is called after each buffer allocation attempt.
	// err is nil if successful.
	RecordAlloc(bytes uint64, err error)

	// RecordFree is called after a buffer is returned to its memory space.
	RecordFree(bytes uint64)

	// RecordGrow is called after a successful capacity change.
	RecordGrow(oldCap, newCap int64)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAlloc(uint64, error) {}
func (NoopMetricsCollector) RecordFree(uint64)         {}
func (NoopMetricsCollector) RecordGrow(int64, int64)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AllocCount  atomic.Int64
	AllocErrors atomic.Int64
	AllocBytes  atomic.Uint64
	FreeCount   atomic.Int64
	FreeBytes   atomic.Uint64
	GrowCount   atomic.Int64
	ShrinkCount atomic.Int64
}

// RecordAlloc implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAlloc(bytes uint64, err error) {
	if err != nil {
		b.AllocErrors.Add(1)
		return
	}
	b.AllocCount.Add(1)
	b.AllocBytes.Add(bytes)
}

// RecordFree implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFree(bytes uint64) {
	b.FreeCount.Add(1)
	b.FreeBytes.Add(bytes)
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(oldCap, newCap int64) {
	if newCap > oldCap {
		b.GrowCount.Add(1)
	} else {
		b.ShrinkCount.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	allocBytes := b.AllocBytes.Load()
	freeBytes := b.FreeBytes.Load()
	return BasicMetricsStats{
		AllocCount:  b.AllocCount.Load(),
		AllocErrors: b.AllocErrors.Load(),
		AllocBytes:  allocBytes,
		FreeCount:   b.FreeCount.Load(),
		FreeBytes:   freeBytes,
		LiveBytes:   int64(allocBytes) - int64(freeBytes),
		GrowCount:   b.GrowCount.Load(),
		ShrinkCount: b.ShrinkCount.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AllocCount  int64
	AllocErrors int64
	AllocBytes  uint64
	FreeCount   int64
	FreeBytes   uint64
	LiveBytes   int64
	GrowCount   int64
	ShrinkCount int64
}

type collectorBox struct{ c MetricsCollector }

var defaultMetrics atomic.Pointer[collectorBox]

func init() {
	defaultMetrics.Store(&collectorBox{c: NoopMetricsCollector{}})
}

func metrics() MetricsCollector {
	return defaultMetrics.Load().c
}
