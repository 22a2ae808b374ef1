package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheck_ConsumesQuota(t *testing.T) {
	limiter := NewDailyLimiter(3)

	for i := 0; i < 3; i++ {
		decision := limiter.Check("1.2.3.4")
		assert.True(t, decision.Allowed)
		assert.Equal(t, 2-i, decision.Remaining)
	}

	decision := limiter.Check("1.2.3.4")
	assert.False(t, decision.Allowed)
	assert.Equal(t, 0, decision.Remaining)
}

func TestCheck_PerIP(t *testing.T) {
	limiter := NewDailyLimiter(1)

	assert.True(t, limiter.Check("1.2.3.4").Allowed)
	assert.False(t, limiter.Check("1.2.3.4").Allowed)
	assert.True(t, limiter.Check("5.6.7.8").Allowed)
}

func TestCheck_ResetsNextDay(t *testing.T) {
	current := time.Date(2025, time.March, 10, 15, 0, 0, 0, time.UTC)
	limiter := NewDailyLimiter(1)
	limiter.now = func() time.Time { return current }

	first := limiter.Check("1.2.3.4")
	assert.True(t, first.Allowed)
	assert.Equal(t, time.Date(2025, time.March, 10, 23, 59, 59, 0, time.UTC), first.ResetAt)
	assert.False(t, limiter.Check("1.2.3.4").Allowed)

	current = time.Date(2025, time.March, 11, 0, 0, 1, 0, time.UTC)
	second := limiter.Check("1.2.3.4")
	assert.True(t, second.Allowed)
	assert.Equal(t, time.Date(2025, time.March, 11, 23, 59, 59, 0, time.UTC), second.ResetAt)
}

func TestPrune(t *testing.T) {
	current := time.Date(2025, time.March, 10, 15, 0, 0, 0, time.UTC)
	limiter := NewDailyLimiter(5)
	limiter.now = func() time.Time { return current }

	limiter.Check("1.2.3.4")
	limiter.Check("5.6.7.8")
	assert.Equal(t, 0, limiter.Prune())

	current = current.Add(24 * time.Hour)
	limiter.Check("9.9.9.9")
	assert.Equal(t, 2, limiter.Prune())
	assert.Len(t, limiter.entries, 1)
}
