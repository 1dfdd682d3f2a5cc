// Package cache keeps derived counts in Redis so hot reads skip the database.
package cache

import (
	"context"
	"log/slog"
	"time"

	"agrinet/config"
	"agrinet/internal/domain/lifecycle"
	"agrinet/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	unreadKeyPrefix           = "agrinet:unread:"
	unreadGenerationKeyPrefix = "agrinet:unread-gen:"

	// generationTTL outlives any count computation by far; an expired generation only refuses one fill.
	generationTTL = 24 * time.Hour
)

// UnreadCounterParams holds dependencies for the unread counter, injected by Fx
type UnreadCounterParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

type redisUnreadCounter struct {
	client *redis.Client
	ttl    time.Duration
}

// NewUnreadCounter connects to redis.url. Without a URL counts are never cached.
func NewUnreadCounter(params UnreadCounterParams) (service.UnreadCounter, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.URL == "" {
		params.Logger.Info("Redis not configured, unread counts are not cached")

		return noopUnreadCounter{}, nil
	}

	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "parse redis url")
	}
	client := redis.NewClient(opt)

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// The cache is an optimisation; an unreachable Redis only degrades reads.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed, unread counts fall back to the database", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return NewRedisUnreadCounter(client, cfg.UnreadTTL), nil
}

// NewRedisUnreadCounter wraps an existing client.
func NewRedisUnreadCounter(client *redis.Client, ttl time.Duration) service.UnreadCounter {
	return &redisUnreadCounter{client: client, ttl: ttl}
}

func unreadKey(recipientID uuid.UUID, role string) string {
	return unreadKeyPrefix + role + ":" + recipientID.String()
}

func generationKey(recipientID uuid.UUID, role string) string {
	return unreadGenerationKeyPrefix + role + ":" + recipientID.String()
}

// setIfGeneration writes KEYS[2] only while KEYS[1] still holds ARGV[1]. A missing generation reads as "".
// ARGV[3] is the TTL in milliseconds, 0 for none.
var setIfGeneration = redis.NewScript(`
local current = redis.call('GET', KEYS[1]) or ''
if current ~= ARGV[1] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[2], ARGV[2])
end
return 1
`)

func (c *redisUnreadCounter) Get(ctx context.Context, recipientID uuid.UUID, role string) (int64, bool, error) {
	count, err := c.client.Get(ctx, unreadKey(recipientID, role)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Wrap(err, "get unread count")
	}

	return count, true, nil
}

func (c *redisUnreadCounter) Generation(ctx context.Context, recipientID uuid.UUID, role string) (string, error) {
	generation, err := c.client.Get(ctx, generationKey(recipientID, role)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "get unread generation")
	}

	return generation, nil
}

func (c *redisUnreadCounter) Set(ctx context.Context, recipientID uuid.UUID, role string, count int64, generation string) (bool, error) {
	keys := []string{generationKey(recipientID, role), unreadKey(recipientID, role)}
	stored, err := setIfGeneration.Run(ctx, c.client, keys, generation, count, c.ttl.Milliseconds()).Int()
	if err != nil {
		return false, errors.Wrap(err, "set unread count")
	}

	return stored == 1, nil
}

// Invalidate rotates the generation before dropping the count, in one transaction.
// Generations are random rather than counters so an expired generation key can never come back equal.
func (c *redisUnreadCounter) Invalidate(ctx context.Context, recipientID uuid.UUID, role string) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, generationKey(recipientID, role), uuid.NewString(), generationTTL)
		pipe.Del(ctx, unreadKey(recipientID, role))

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "invalidate unread count")
	}

	return nil
}

type noopUnreadCounter struct{}

func (noopUnreadCounter) Get(context.Context, uuid.UUID, string) (int64, bool, error) {
	return 0, false, nil
}

func (noopUnreadCounter) Generation(context.Context, uuid.UUID, string) (string, error) {
	return "", nil
}

func (noopUnreadCounter) Set(context.Context, uuid.UUID, string, int64, string) (bool, error) {
	return false, nil
}

func (noopUnreadCounter) Invalidate(context.Context, uuid.UUID, string) error {
	return nil
}
