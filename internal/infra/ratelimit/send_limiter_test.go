package ratelimit

import (
	"sync"
	"testing"
	"time"

	"agrinet/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestSendLimiter_BurstThenRefill(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	limiter := newSendLimiter(1, 3, clock.Now)
	user := uuid.New()

	for i := range 3 {
		assert.True(t, limiter.Allow(user), "send %d within burst", i)
	}
	assert.False(t, limiter.Allow(user))

	clock.Advance(time.Second)
	assert.True(t, limiter.Allow(user))
	assert.False(t, limiter.Allow(user))
}

func TestSendLimiter_UsersAreIndependent(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	limiter := newSendLimiter(1, 1, clock.Now)
	alice, bob := uuid.New(), uuid.New()

	assert.True(t, limiter.Allow(alice))
	assert.False(t, limiter.Allow(alice))
	assert.True(t, limiter.Allow(bob))
}

func TestSendLimiter_DropsIdleUsers(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	limiter := newSendLimiter(1, 1, clock.Now)

	limiter.Allow(uuid.New())
	limiter.Allow(uuid.New())
	assert.Len(t, limiter.users, 2)

	clock.Advance(idleLimiterTTL + sweepInterval)
	active := uuid.New()
	limiter.Allow(active)
	assert.Len(t, limiter.users, 1)
	assert.Contains(t, limiter.users, active)
}

func TestNewSendLimiter_FromConfig(t *testing.T) {
	cfg := &config.Config{Messaging: &config.MessagingConfig{SendRatePerSecond: 2, SendBurst: 4}}
	limiter, ok := NewSendLimiter(cfg).(*sendLimiter)
	assert.True(t, ok)
	assert.Equal(t, 4, limiter.burst)
}
