package stdvec

import (
	"github.com/hupe1980/stdvec/memspace"
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	budget           *memspace.BudgetConfig
}

// Option configures process-wide stdvec behavior.
//
// A vector header is exactly three pointers, so nothing can be configured
// per vector; options apply to every vector in the process.
type Option func(*options)

// WithLogger sets the logger used for reallocation and teardown records.
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the collector notified of allocations, frees and
// capacity changes. If nil is passed, a no-op collector is used.
func WithMetricsCollector(c MetricsCollector) Option {
	return func(o *options) {
		if c == nil {
			c = NoopMetricsCollector{}
		}
		o.metricsCollector = c
	}
}

// WithMemoryBudget caps the bytes held by buffers allocated from
// memspace.Budget. 0 removes the limit.
func WithMemoryBudget(bytes int64) Option {
	return func(o *options) {
		if o.budget == nil {
			o.budget = &memspace.BudgetConfig{}
		}
		o.budget.MemoryLimitBytes = bytes
	}
}

// WithAllocationRate caps the sustained bytes per second allocated from
// memspace.Budget. 0 removes the limit.
func WithAllocationRate(bytesPerSec int64) Option {
	return func(o *options) {
		if o.budget == nil {
			o.budget = &memspace.BudgetConfig{}
		}
		o.budget.AllocBytesPerSec = bytesPerSec
	}
}

// Configure applies opts process-wide. Options that are not passed keep
// their current values, except that budget options replace the whole
// budget configuration.
func Configure(opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.budget != nil {
		if err := memspace.ConfigureBudget(*o.budget); err != nil {
			return err
		}
	}
	if o.logger != nil {
		defaultLogger.Store(o.logger)
		memspace.SetLogger(o.logger.Logger)
	}
	if o.metricsCollector != nil {
		defaultMetrics.Store(&collectorBox{c: o.metricsCollector})
	}
	return nil
}
