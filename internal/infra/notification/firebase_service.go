// Package notification delivers push notifications to registered devices.
package notification

import (
	"context"
	"log/slog"

	"agrinet/config"
	"agrinet/internal/domain/constants"
	"agrinet/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// multicastSender is the part of *messaging.Client the service needs.
type multicastSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client multicastSender
}

// PushServiceParams holds dependencies for the push service, injected by Fx
type PushServiceParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushService returns the Firebase sender, or a logging stand-in when Firebase is not configured.
func NewPushService(params PushServiceParams) (service.PushService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, push notifications are logged only")

		return &logPushService{logger: params.Logger}, nil
	}

	return NewFirebaseService(params.Ctx, cfg)
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.PushService, error) {
	var fbConfig *firebase.Config
	if cfg.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// SendSingleNotification sends a push notification to a single device token
func (s *firebaseService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

// SendBatchNotification sends one multicast of at most constants.FCMBatchSize tokens.
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil, nil
	}
	if len(tokens) > constants.FCMBatchSize {
		return 0, 0, nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), constants.FCMBatchSize)
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return 0, 0, nil, errors.Wrap(err, "failed to send multicast notification")
	}

	// Tokens the provider will never accept again.
	invalidTokens = make([]string, 0)
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			invalidTokens = append(invalidTokens, tokens[idx])
		}
	}

	return response.SuccessCount, response.FailureCount, invalidTokens, nil
}

// logPushService stands in for Firebase in local development.
type logPushService struct {
	logger *slog.Logger
}

func (s *logPushService) SendSingleNotification(ctx context.Context, token, title, body string, _ map[string]string) error {
	s.logger.DebugContext(ctx, "[LogPush] Would send notification",
		slog.String("token_prefix", token[:min(10, len(token))]),
		slog.String("title", title),
		slog.String("body", body),
	)

	return nil
}

func (s *logPushService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, _ map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	s.logger.DebugContext(ctx, "[LogPush] Would send batch notification",
		slog.Int("token_count", len(tokens)),
		slog.String("title", title),
		slog.String("body", body),
	)

	return len(tokens), 0, nil, nil
}
