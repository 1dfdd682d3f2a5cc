package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"agrinet/config"
	"agrinet/internal/domain/service"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxPerRecipient int) *config.Config {
	return &config.Config{
		Messaging: &config.MessagingConfig{
			MaxTextLength:     2000,
			SendRatePerSecond: 1000,
			SendBurst:         1000,
		},
		Notification: &config.NotificationConfig{
			MaxPerRecipient: maxPerRecipient,
		},
	}
}

// stepClock returns strictly increasing instants, one millisecond apart.
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func newStepClock() *stepClock {
	return &stepClock{now: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Millisecond)

	return c.now
}

type allowAllLimiter struct{}

func (allowAllLimiter) Allow(uuid.UUID) bool { return true }

type nopUnreadCounter struct{}

func (nopUnreadCounter) Get(context.Context, uuid.UUID, string) (int64, bool, error) {
	return 0, false, nil
}

func (nopUnreadCounter) Generation(context.Context, uuid.UUID, string) (string, error) {
	return "", nil
}

func (nopUnreadCounter) Set(context.Context, uuid.UUID, string, int64, string) (bool, error) {
	return false, nil
}

func (nopUnreadCounter) Invalidate(context.Context, uuid.UUID, string) error { return nil }

// memUnreadCounter mirrors the redis counter: Invalidate rotates the generation
// and Set only fills when the caller's generation is still current.
type memUnreadCounter struct {
	mu          sync.Mutex
	counts      map[string]int64
	generations map[string]string
}

func newMemUnreadCounter() *memUnreadCounter {
	return &memUnreadCounter{
		counts:      make(map[string]int64),
		generations: make(map[string]string),
	}
}

func unreadKey(recipientID uuid.UUID, role string) string {
	return role + ":" + recipientID.String()
}

func (c *memUnreadCounter) Get(_ context.Context, recipientID uuid.UUID, role string) (int64, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	count, ok := c.counts[unreadKey(recipientID, role)]

	return count, ok, nil
}

func (c *memUnreadCounter) Generation(_ context.Context, recipientID uuid.UUID, role string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.generations[unreadKey(recipientID, role)], nil
}

func (c *memUnreadCounter) Set(_ context.Context, recipientID uuid.UUID, role string, count int64, generation string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := unreadKey(recipientID, role)
	if c.generations[key] != generation {
		return false, nil
	}
	c.counts[key] = count

	return true, nil
}

func (c *memUnreadCounter) Invalidate(_ context.Context, recipientID uuid.UUID, role string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := unreadKey(recipientID, role)
	c.generations[key] = uuid.NewString()
	delete(c.counts, key)

	return nil
}

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.NotificationEvent
}

func (p *recordingPublisher) PublishNotificationEvent(_ context.Context, event *service.NotificationEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.events)
}
