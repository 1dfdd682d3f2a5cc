// Package context carries per-request values (request id, scoped logger) between
// echo handlers, usecases and the push worker.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey keeps these values apart from other packages' context keys.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"

	// HeaderXRequestID is both read from clients and echoed on every response.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the id assigned by the request-id middleware, or a fresh one
// when the middleware did not run (handlers under test).
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns "" when ctx carries no request id.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger returns nil when ctx carries no request-scoped logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault is what services log through: the request logger when there is one, fallback otherwise.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// WithLogAttrs adds attributes to the request logger of c, so every later log line of the
// request carries them. It is a no-op before the request-id middleware has run.
func WithLogAttrs(c echo.Context, args ...any) {
	ctx := c.Request().Context()
	logger := GetLogger(ctx)
	if logger == nil {
		return
	}

	c.SetRequest(c.Request().WithContext(WithLogger(ctx, logger.With(args...))))
}
