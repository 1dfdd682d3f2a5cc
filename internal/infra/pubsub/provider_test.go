package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agrinet/config"
	"agrinet/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.NotificationEvent {
	return &service.NotificationEvent{
		RequestID:      "req-1",
		NotificationID: "0192f5e0-0000-7000-8000-000000000001",
		RecipientID:    "0192f5e0-0000-7000-8000-000000000002",
		RecipientRole:  "farmer",
		Type:           "status_update",
		Title:          "Diagnosis Approved",
		Body:           "Looks right",
	}
}

func TestNewPushMessage(t *testing.T) {
	event := testEvent()
	published := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)

	msg, err := NewPushMessage(event, published)
	require.NoError(t, err)
	assert.Equal(t, event.NotificationID, msg.Message.MessageID)
	assert.Equal(t, "2025-05-01T08:00:00Z", msg.Message.PublishTime)
	assert.Equal(t, "req-1", msg.Message.Attributes["request_id"])
	assert.Equal(t, "farmer", msg.Message.Attributes["recipient_role"])

	raw, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	require.NoError(t, err)
	var decoded service.NotificationEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var got PushMessage
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, newDiscardLogger())
	require.NoError(t, publisher.PublishNotificationEvent(context.Background(), testEvent()))
	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, testEvent().NotificationID, got.Message.Attributes["notification_id"])
	assert.NoError(t, publisher.Close())
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, newDiscardLogger())
	err := publisher.PublishNotificationEvent(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNoopPublisher(t *testing.T) {
	publisher, err := NewEventPublisher(PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: newDiscardLogger(),
	})
	require.NoError(t, err)
	assert.NoError(t, publisher.PublishNotificationEvent(context.Background(), testEvent()))
	assert.NoError(t, publisher.Close())
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "not configured", cfg: nil},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: "google", ProjectID: "p"}, wantErr: true},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: newDiscardLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, publisher)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
		})
	}
}
