// Package ratelimit throttles per-user actions in memory.
package ratelimit

import (
	"sync"
	"time"

	"agrinet/config"
	"agrinet/internal/domain/service"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	idleLimiterTTL = 10 * time.Minute
	sweepInterval  = time.Minute
)

type userLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// sendLimiter keeps one token bucket per sender. Buckets idle for idleLimiterTTL are dropped.
type sendLimiter struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	users     map[uuid.UUID]*userLimiter
	lastSweep time.Time
	now       func() time.Time
}

// NewSendLimiter builds the limiter from messaging.sendRatePerSecond and messaging.sendBurst.
func NewSendLimiter(cfg *config.Config) service.SendLimiter {
	return newSendLimiter(cfg.Messaging.SendRatePerSecond, cfg.Messaging.SendBurst, time.Now)
}

func newSendLimiter(perSecond float64, burst int, now func() time.Time) *sendLimiter {
	return &sendLimiter{
		limit:     rate.Limit(perSecond),
		burst:     burst,
		users:     make(map[uuid.UUID]*userLimiter),
		lastSweep: now(),
		now:       now,
	}
}

func (l *sendLimiter) Allow(userID uuid.UUID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	entry, ok := l.users[userID]
	if !ok {
		entry = &userLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.users[userID] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}

func (l *sendLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < sweepInterval {
		return
	}
	l.lastSweep = now

	for id, entry := range l.users {
		if now.Sub(entry.lastSeen) > idleLimiterTTL {
			delete(l.users, id)
		}
	}
}
