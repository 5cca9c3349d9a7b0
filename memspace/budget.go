package memspace

import (
	"errors"
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/hupe1980/stdvec/internal/resource"
)

var (
	// ErrBudgetExceeded is returned by Budget when the memory limit would be exceeded.
	ErrBudgetExceeded = errors.New("memspace: memory budget exceeded")
	// ErrRateExceeded is returned by Budget when the allocation rate would be exceeded.
	ErrRateExceeded = errors.New("memspace: allocation rate exceeded")
)

// BudgetConfig holds the process-wide limits enforced by Budget.
type BudgetConfig struct {
	// MemoryLimitBytes caps the bytes held by Budget buffers. 0 means unlimited.
	MemoryLimitBytes int64
	// AllocBytesPerSec caps the sustained allocation throughput. 0 means unlimited.
	AllocBytesPerSec int64
}

// Budget is a Heap space whose allocations are charged against a
// process-wide memory limit and allocation rate. Requests that would exceed
// either fail immediately; Budget never blocks.
type Budget struct{}

var (
	budgetCtrl  atomic.Pointer[resource.Controller]
	budgetStats counters
)

func init() {
	budgetCtrl.Store(resource.NewController(resource.Config{}))
}

// ConfigureBudget replaces the limits enforced by Budget.
//
// Bytes already charged to the previous configuration are carried over so
// that later frees balance out.
func ConfigureBudget(cfg BudgetConfig) error {
	if cfg.MemoryLimitBytes < 0 || cfg.AllocBytesPerSec < 0 {
		return fmt.Errorf("memspace: negative budget limits %+v", cfg)
	}
	next := resource.NewController(resource.Config{
		MemoryLimitBytes: cfg.MemoryLimitBytes,
		AllocBytesPerSec: cfg.AllocBytesPerSec,
	})
	prev := budgetCtrl.Load()
	if used := prev.MemoryUsage(); used > 0 {
		if err := next.AcquireMemory(used); err != nil {
			return fmt.Errorf("%w: %d bytes already in use", ErrBudgetExceeded, used)
		}
	}
	budgetCtrl.Store(next)
	return nil
}

// BudgetUsage returns the bytes currently held by Budget buffers.
func BudgetUsage() int64 {
	return budgetCtrl.Load().MemoryUsage()
}

// BudgetLimit returns the configured memory limit (0 if unlimited).
func BudgetLimit() int64 {
	return budgetCtrl.Load().MemoryLimit()
}

// Allocate implements Space.
func (Budget) Allocate(size, alignment uintptr) (unsafe.Pointer, error) {
	if size == 0 {
		return nil, ErrZeroSize
	}
	ctrl := budgetCtrl.Load()
	bytes := int64(size)

	if err := ctrl.TryAcquireRate(bytes); err != nil {
		budgetStats.failures.Add(1)
		log().Warn("allocation rate exceeded", "bytes", size)
		return nil, fmt.Errorf("%w: %w", ErrRateExceeded, err)
	}
	if err := ctrl.AcquireMemory(bytes); err != nil {
		budgetStats.failures.Add(1)
		log().Warn("memory budget exceeded",
			"bytes", size,
			"used", ctrl.MemoryUsage(),
			"limit", ctrl.MemoryLimit(),
		)
		return nil, fmt.Errorf("%w: %w", ErrBudgetExceeded, err)
	}

	p, err := Heap{}.Allocate(size, alignment)
	if err != nil {
		ctrl.ReleaseMemory(bytes)
		budgetStats.failures.Add(1)
		return nil, err
	}
	budgetStats.alloc(size)
	return p, nil
}

// Free implements Space.
func (Budget) Free(p unsafe.Pointer, size uintptr) {
	if p == nil {
		return
	}
	Heap{}.Free(p, size)
	budgetCtrl.Load().ReleaseMemory(int64(size))
	budgetStats.free(size)
}

// BudgetStats returns the Budget space counters.
func BudgetStats() Stats {
	return budgetStats.snapshot()
}
