package stdvec

import (
	"log/slog"
	"os"
	"sync/atomic"
)

// Logger wraps slog.Logger with stdvec-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithElemType adds the element type name and size to the logger.
func (l *Logger) WithElemType(name string, size uintptr) *Logger {
	return &Logger{
		Logger: l.Logger.With("elem_type", name, "elem_size", size),
	}
}

// LogGrow logs a buffer reallocation.
func (l *Logger) LogGrow(oldCap, newCap int64, bytes uintptr, err error) {
	if err != nil {
		l.Warn("buffer reallocation failed",
			"old_capacity", oldCap,
			"new_capacity", newCap,
			"bytes", bytes,
			"error", err,
		)
	} else {
		l.Debug("buffer reallocated",
			"old_capacity", oldCap,
			"new_capacity", newCap,
			"bytes", bytes,
		)
	}
}

// LogFree logs a vector teardown.
func (l *Logger) LogFree(count, capacity int64, disposed bool) {
	l.Debug("vector freed",
		"count", count,
		"capacity", capacity,
		"disposed", disposed,
	)
}

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(NoopLogger())
}

func logger() *Logger {
	return defaultLogger.Load()
}
