package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"agrinet/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUnreadKey(t *testing.T) {
	id := uuid.MustParse("0192f5e0-0000-7000-8000-000000000001")
	assert.Equal(t, "agrinet:unread:expert:0192f5e0-0000-7000-8000-000000000001", unreadKey(id, "expert"))
	assert.NotEqual(t, unreadKey(id, "expert"), unreadKey(id, "farmer"))
	assert.Equal(t, "agrinet:unread-gen:expert:0192f5e0-0000-7000-8000-000000000001", generationKey(id, "expert"))
}

func TestNewUnreadCounter_WithoutRedisIsNoop(t *testing.T) {
	counter, err := NewUnreadCounter(UnreadCounterParams{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{},
		Logger: newDiscardLogger(),
	})
	require.NoError(t, err)

	ctx := context.Background()
	id := uuid.New()
	generation, err := counter.Generation(ctx, id, "farmer")
	require.NoError(t, err)
	stored, err := counter.Set(ctx, id, "farmer", 3, generation)
	require.NoError(t, err)
	assert.False(t, stored)

	count, ok, err := counter.Get(ctx, id, "farmer")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, count)
	assert.NoError(t, counter.Invalidate(ctx, id, "farmer"))
}

func TestNewUnreadCounter_RejectsBadURL(t *testing.T) {
	_, err := NewUnreadCounter(UnreadCounterParams{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{Redis: &config.RedisConfig{URL: "not-a-redis-url", UnreadTTL: time.Minute}},
		Logger: newDiscardLogger(),
	})
	assert.Error(t, err)
}
