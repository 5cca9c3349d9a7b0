// Package resource implements the Controller that governs process-wide
// allocation limits for vector buffers.
//
// The Controller manages two resource types:
//
//   - Memory: Track and limit bytes held by budgeted buffers (non-blocking, fail-fast)
//   - Allocation rate: Cap the bytes allocated per second (token bucket, fail-fast)
//
// # Architecture
//
//	┌───────────────────────────────────────────────┐
//	│                  Controller                   │
//	├──────────────────────┬────────────────────────┤
//	│  Memory Limit        │  Allocation Rate       │
//	│  (weighted sem)      │  (token bucket)        │
//	├──────────────────────┼────────────────────────┤
//	│  AcquireMemory       │  TryAcquireRate        │
//	│  ReleaseMemory       │                        │
//	│  MemoryUsage         │                        │
//	└──────────────────────┴────────────────────────┘
//
// # Memory Management
//
// Memory tracking uses a weighted semaphore for hard limits and atomic counters
// for usage tracking. AcquireMemory is non-blocking and returns immediately
// with ErrMemoryLimitExceeded if the limit would be exceeded:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 30, // 1GB limit
//	})
//
//	if err := rc.AcquireMemory(1024*1024); err != nil {
//	    // ErrMemoryLimitExceeded - caller decides retry/backoff
//	}
//	defer rc.ReleaseMemory(1024*1024)
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use.
//
// # Nil Safety
//
// All methods handle nil Controller gracefully - they become no-ops.
// This allows optional resource limiting without nil checks everywhere.
package resource
