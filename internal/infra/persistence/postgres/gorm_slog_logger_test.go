package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"agrinet/config"
	deliverycontext "agrinet/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestGormSlogLogger_UsesRequestScopedLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&base), &config.Config{})

	ctx := deliverycontext.WithLogger(context.Background(), newBufferLogger(&scoped).With(slog.String("request_id", "req-1")))
	l.Trace(ctx, time.Now(), func() (string, int64) { return "SELECT 1", 1 }, assert.AnError)

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "GORM query failed")
	assert.Contains(t, scoped.String(), "req-1")
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

	l.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) { return "SELECT pg_sleep(1)", 1 }, nil)

	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_SilentMode(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{}).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, assert.AnError)
	l.Error(context.Background(), "boom %d", 1)

	assert.Empty(t, buf.String())
}
