package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agrinet/config"
	deliverycontext "agrinet/internal/delivery/context"
	domainerrors "agrinet/internal/domain/errors"
	"agrinet/internal/domain/service"
	mockUsecase "agrinet/internal/mocks/usecase"
	"agrinet/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockPushDeliveryUsecase) {
	t.Helper()

	pushUC := mockUsecase.NewMockPushDeliveryUsecase(t)
	cfg := &config.Config{}
	cfg.PubSub = &config.PubSubConfig{Provider: "local"}

	h := NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		PushUC: pushUC,
	})

	return h, pushUC
}

func pushBody(t *testing.T, event service.NotificationEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "m-1"
	msg.Subscription = "projects/p/subscriptions/push"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, headers map[string]string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

var sampleEvent = service.NotificationEvent{
	RequestID:      "req-42",
	NotificationID: "7b0f8a3c-3f5e-4c7a-9d71-0b1f3f7b5f10",
	RecipientID:    "a3e1c8d2-5b6f-4e0a-8c9d-1f2e3d4c5b6a",
	RecipientRole:  "farmer",
	Type:           "message",
	Title:          "New message",
	Body:           "hello",
}

func TestHandlePush_DeliversEvent(t *testing.T) {
	h, pushUC := newTestPushHandler(t)
	pushUC.EXPECT().
		DeliverNotification(mock.Anything, mock.MatchedBy(func(event *service.NotificationEvent) bool {
			return event.NotificationID == sampleEvent.NotificationID && event.Title == "New message"
		})).
		Return(&usecase.PushReport{Sent: 2}, nil)

	rec := servePush(h, pushBody(t, sampleEvent, nil), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_RetryPolicy(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"push transport down is retried", domainerrors.ErrPushUnavailable, http.StatusServiceUnavailable},
		{"unknown failure is retried", errors.New("connection refused"), http.StatusServiceUnavailable},
		{"malformed event is acknowledged", domainerrors.ErrValidationFailed.WithDetails("bad id"), http.StatusOK},
		{"missing notification is acknowledged", errors.Wrap(domainerrors.ErrNotFound, "gone"), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, pushUC := newTestPushHandler(t)
			pushUC.EXPECT().DeliverNotification(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := servePush(h, pushBody(t, sampleEvent, nil), nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandlePush_DropsUndecodablePayloads(t *testing.T) {
	h, _ := newTestPushHandler(t)

	rec := servePush(h, `{"message":{"data":"!!not-base64!!"}}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = servePush(h, `{"message":{"data":"`+base64.StdEncoding.EncodeToString([]byte("{oops"))+`"}}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_PropagatesRequestID(t *testing.T) {
	h, pushUC := newTestPushHandler(t)

	var seenRequestID string
	pushUC.EXPECT().DeliverNotification(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, event *service.NotificationEvent) {
			seenRequestID = deliverycontext.GetRequestIDFromContext(ctx)
		}).
		Return(&usecase.PushReport{}, nil)

	rec := servePush(h, pushBody(t, sampleEvent, map[string]string{"request_id": "attr-id"}), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "attr-id", seenRequestID)
}

func TestExtractRequestID(t *testing.T) {
	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"request_id": "attr-id"}
	event := sampleEvent

	assert.Equal(t, "attr-id", extractRequestID(context.Background(), &msg, &event))

	msg.Message.Attributes = nil
	assert.Equal(t, "req-42", extractRequestID(context.Background(), &msg, &event))

	event.RequestID = ""
	assert.NotEmpty(t, extractRequestID(context.Background(), &msg, &event))
}

func TestHandlePush_VerifiesPubSubToken(t *testing.T) {
	h, pushUC := newTestPushHandler(t)
	h.verifyPushAuth = true

	var audience string
	h.verifyToken = func(_ context.Context, token, aud string) error {
		audience = aud
		if token != "good" {
			return errors.New("bad signature")
		}

		return nil
	}

	rec := servePush(h, pushBody(t, sampleEvent, nil), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = servePush(h, pushBody(t, sampleEvent, nil), map[string]string{echo.HeaderAuthorization: "Bearer forged"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "http://example.com/push", audience)

	pushUC.EXPECT().DeliverNotification(mock.Anything, mock.Anything).Return(&usecase.PushReport{Sent: 1}, nil)
	rec = servePush(h, pushBody(t, sampleEvent, nil), map[string]string{echo.HeaderAuthorization: "Bearer good"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewPushHandler_AuthOnlyForGoogleOutsideDevelop(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	build := func(env, provider string) *PushHandler {
		cfg := &config.Config{}
		cfg.Env.Env = env
		cfg.PubSub = &config.PubSubConfig{Provider: provider}

		return NewPushHandler(PushHandlerParams{Config: cfg, Logger: logger})
	}

	assert.True(t, build("production", "google").verifyPushAuth)
	assert.False(t, build("develop", "google").verifyPushAuth)
	assert.False(t, build("production", "local").verifyPushAuth)
}
