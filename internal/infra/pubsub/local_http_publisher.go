package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "agrinet/internal/delivery/context"
	"agrinet/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localSubscription   = "projects/local/subscriptions/notification-push"
	localPublishTimeout = 30 * time.Second
)

// localHTTPPublisher posts push envelopes straight to the worker, mimicking a Pub/Sub push subscription.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PushMessage is the envelope Pub/Sub uses when pushing to an HTTP endpoint.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localPublishTimeout},
		logger:     logger,
	}
}

// NewPushMessage wraps an event the same way Pub/Sub does.
func NewPushMessage(event *service.NotificationEvent, publishedAt time.Time) (*PushMessage, error) {
	eventData, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: localSubscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	msg.Message.Attributes = eventAttributes(event)
	msg.Message.MessageID = event.NotificationID
	msg.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)

	return msg, nil
}

// PublishNotificationEvent posts the envelope and treats any non-2xx answer as a failure.
func (p *localHTTPPublisher) PublishNotificationEvent(ctx context.Context, event *service.NotificationEvent) error {
	pushMsg, err := NewPushMessage(event, time.Now())
	if err != nil {
		return err
	}

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "post push message")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).DebugContext(ctx, "[LocalPubSub] Event delivered",
		slog.String("endpoint", p.endpoint),
		slog.String("notification_id", event.NotificationID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}
