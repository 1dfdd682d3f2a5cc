package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestWithLogAttrs(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	// Without a request logger nothing changes.
	WithLogAttrs(c, slog.String("user_id", "u-1"))
	assert.Nil(t, GetLogger(c.Request().Context()))

	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))
	c.SetRequest(c.Request().WithContext(WithLogger(c.Request().Context(), base)))

	WithLogAttrs(c, slog.String("user_id", "u-1"))
	GetLoggerOrDefault(c.Request().Context(), nil).Info("hello")

	assert.Contains(t, buf.String(), "user_id=u-1")
}

func TestRequestIDAccessors(t *testing.T) {
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
	assert.Equal(t, "r-1", GetRequestIDFromContext(WithRequestID(context.Background(), "r-1")))

	fallback := slog.Default()
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.NotEmpty(t, GetRequestID(c))
	SetRequestID(c, "r-2")
	assert.Equal(t, "r-2", GetRequestID(c))
}
