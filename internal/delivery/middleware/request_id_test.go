package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "agrinet/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"reuses caller id", "trace-abc", true},
		{"generates when missing", "", false},
		{"replaces oversized id", strings.Repeat("x", 129), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			handler := NewRequestIDMiddleware(logger).Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())

				return nil
			})

			assert.NoError(t, handler(c))

			headerID := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, headerID, ctxID)
			assert.Equal(t, headerID, deliverycontext.GetRequestID(c))
			if tt.keep {
				assert.Equal(t, tt.incoming, headerID)
			} else {
				_, err := uuid.Parse(headerID)
				assert.NoError(t, err)
			}
		})
	}
}
