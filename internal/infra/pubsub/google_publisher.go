package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "agrinet/internal/delivery/context"
	"agrinet/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher publishes notification events to a Google Cloud Pub/Sub topic.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topicPath string
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and fails fast when topicID does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topicPath := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	return &googlePubSubPublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		topicPath: topicPath,
		logger:    logger,
	}, nil
}

// PublishNotificationEvent publishes the event and waits for the server acknowledgement.
func (p *googlePubSubPublisher) PublishNotificationEvent(ctx context.Context, event *service.NotificationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, p.logger)

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	})
	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.Wrap(err, "publish notification event")
	}

	logger.DebugContext(ctx, "[GooglePubSub] Event published",
		slog.String("topic", p.topicPath),
		slog.String("notification_id", event.NotificationID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages and releases the client.
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
