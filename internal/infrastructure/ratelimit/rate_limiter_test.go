package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter()
	rl.now = func() time.Time { return now }

	t.Run("checkout allows a burst of five", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			ok, _ := rl.Allow("u1", ActionCheckout)
			assert.True(t, ok, "attempt %d", i+1)
		}

		ok, wait := rl.Allow("u1", ActionCheckout)
		assert.False(t, ok)
		assert.Equal(t, 20*time.Second, wait)
	})

	t.Run("keys and actions are independent", func(t *testing.T) {
		ok, _ := rl.Allow("u2", ActionCheckout)
		assert.True(t, ok)
		ok, _ = rl.Allow("u1", ActionLogin)
		assert.True(t, ok)
	})

	t.Run("tokens refill over time", func(t *testing.T) {
		now = now.Add(21 * time.Second)
		ok, _ := rl.Allow("u1", ActionCheckout)
		assert.True(t, ok)
		ok, _ = rl.Allow("u1", ActionCheckout)
		assert.False(t, ok)
	})

	t.Run("cleanup drops idle buckets", func(t *testing.T) {
		now = now.Add(2 * time.Hour)
		rl.Cleanup()
		assert.Empty(t, rl.buckets)
	})
}
