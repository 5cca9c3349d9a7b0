package resource

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_Memory(t *testing.T) {
	// Test with limit
	c := NewController(Config{MemoryLimitBytes: 100})

	// Acquire 50
	err := c.AcquireMemory(50)
	require.NoError(t, err)
	assert.Equal(t, int64(50), c.MemoryUsage())

	// Acquire 40
	err = c.AcquireMemory(40)
	require.NoError(t, err)
	assert.Equal(t, int64(90), c.MemoryUsage())

	// Acquire 20 (should fail - limit exceeded)
	err = c.AcquireMemory(20)
	assert.ErrorIs(t, err, ErrMemoryLimitExceeded)
	assert.Equal(t, int64(90), c.MemoryUsage())

	// Release 50
	c.ReleaseMemory(50)
	assert.Equal(t, int64(40), c.MemoryUsage())

	// Now Acquire 20 should succeed
	err = c.AcquireMemory(20)
	require.NoError(t, err)
	assert.Equal(t, int64(60), c.MemoryUsage())
	assert.Equal(t, int64(100), c.MemoryLimit())
}

func TestController_UnlimitedMemory(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 0})

	err := c.AcquireMemory(1000)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), c.MemoryUsage())

	c.ReleaseMemory(500)
	assert.Equal(t, int64(500), c.MemoryUsage())
}

func TestController_Rate(t *testing.T) {
	c := NewController(Config{AllocBytesPerSec: 1000})

	start := time.Unix(1_700_000_000, 0)
	c.now = func() time.Time { return start }

	// Bucket starts full.
	require.NoError(t, c.TryAcquireRate(600))
	require.NoError(t, c.TryAcquireRate(400))
	assert.ErrorIs(t, c.TryAcquireRate(1), ErrRateLimitExceeded)

	// Larger than the burst can never succeed.
	assert.ErrorIs(t, c.TryAcquireRate(1001), ErrRateLimitExceeded)

	// Half a second refills half the bucket.
	c.now = func() time.Time { return start.Add(500 * time.Millisecond) }
	require.NoError(t, c.TryAcquireRate(500))
	assert.ErrorIs(t, c.TryAcquireRate(1), ErrRateLimitExceeded)
}

func TestController_NilSafe(t *testing.T) {
	var c *Controller

	assert.NoError(t, c.AcquireMemory(100))
	c.ReleaseMemory(100)
	assert.NoError(t, c.TryAcquireRate(100))
	assert.Equal(t, int64(0), c.MemoryUsage())
	assert.Equal(t, int64(0), c.MemoryLimit())
	assert.Equal(t, Config{}, c.Config())
}
