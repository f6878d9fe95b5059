package middleware

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestKeyedRateLimiter_EvictsIdleBuckets(t *testing.T) {
	clock := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	limiter := NewKeyedRateLimiter(rate.Limit(1), 1)
	limiter.now = func() time.Time { return clock }
	limiter.lastSweep = clock

	for i := 0; i < 50; i++ {
		limiter.GetLimiter("10.0.0." + strconv.Itoa(i))
	}
	assert.Equal(t, 50, limiter.Len())

	clock = clock.Add(5 * time.Minute)
	active := limiter.GetLimiter("employee:active")
	assert.Equal(t, 51, limiter.Len())

	clock = clock.Add(6 * time.Minute)
	assert.Same(t, active, limiter.GetLimiter("employee:active"))
	assert.Equal(t, 1, limiter.Len(), "only the recently seen bucket survives")
}

func TestKeyedRateLimiter_SameKeySharesBucket(t *testing.T) {
	limiter := NewKeyedRateLimiter(rate.Limit(0.001), 1)

	assert.True(t, limiter.GetLimiter("employee:a").Allow())
	assert.False(t, limiter.GetLimiter("employee:a").Allow())
	assert.True(t, limiter.GetLimiter("employee:b").Allow())
}
