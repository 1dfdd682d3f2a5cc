package impl

import (
	"context"
	"log/slog"

	deliverycontext "agrinet/internal/delivery/context"
	"agrinet/internal/domain/constants"
	domainerrors "agrinet/internal/domain/errors"
	"agrinet/internal/domain/repository"
	"agrinet/internal/domain/service"
	"agrinet/internal/errors"
	"agrinet/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type pushDeliveryService struct {
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceRepository
	pushService      service.PushService
	metrics          service.MetricsRecorder
	logger           *slog.Logger
}

// PushDeliveryServiceParams holds dependencies for PushDeliveryService, injected by Fx.
type PushDeliveryServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	DeviceRepo       repository.DeviceRepository
	PushService      service.PushService
	Metrics          service.MetricsRecorder
	Logger           *slog.Logger
}

// NewPushDeliveryService creates the worker-side push fan-out.
func NewPushDeliveryService(params PushDeliveryServiceParams) usecase.PushDeliveryUsecase {
	return &pushDeliveryService{
		notificationRepo: params.NotificationRepo,
		deviceRepo:       params.DeviceRepo,
		pushService:      params.PushService,
		metrics:          params.Metrics,
		logger:           params.Logger,
	}
}

func (srv *pushDeliveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// DeliverNotification pushes a stored notification to every active device of its recipient.
// Malformed events are rejected with ErrValidationFailed so the queue does not redeliver them.
func (srv *pushDeliveryService) DeliverNotification(ctx context.Context, event *service.NotificationEvent) (*usecase.PushReport, error) {
	notificationID, err := uuid.Parse(event.NotificationID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid notification_id")
	}
	recipientID, err := uuid.Parse(event.RecipientID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid recipient_id")
	}

	report := &usecase.PushReport{}

	// Deleted before we got to it: nothing to show on the device.
	if _, err := srv.notificationRepo.FindByID(ctx, notificationID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			srv.log(ctx).Debug("Notification gone before push", slog.Any("notification_id", notificationID))

			return report, nil
		}

		return nil, errors.Wrap(err, "failed to load notification")
	}

	devices, err := srv.deviceRepo.FindActiveDevicesByUser(ctx, recipientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find recipient devices")
	}
	if len(devices) == 0 {
		return report, nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	data := map[string]string{
		"notification_id": event.NotificationID,
		"type":            event.Type,
		"recipient_role":  event.RecipientRole,
	}
	if event.RelatedKind != "" {
		data["related_kind"] = event.RelatedKind
		data["related_id"] = event.RelatedID
	}

	var invalidTokens []string
	for start := 0; start < len(tokens); start += constants.FCMBatchSize {
		batch := tokens[start:min(start+constants.FCMBatchSize, len(tokens))]

		sent, failed, invalid, err := srv.pushService.SendBatchNotification(ctx, batch, event.Title, event.Body, data)
		if err != nil {
			srv.log(ctx).Error("Push batch failed", slog.Int("batch_size", len(batch)), slog.Any("error", err))
			report.Failed += len(batch)

			continue
		}

		report.Sent += sent
		report.Failed += failed
		invalidTokens = append(invalidTokens, invalid...)
	}

	if len(invalidTokens) > 0 {
		deactivated, err := srv.deviceRepo.DeactivateByTokens(ctx, invalidTokens)
		if err != nil {
			srv.log(ctx).Warn("Failed to deactivate invalid tokens", slog.Any("error", err))
		}
		report.Deactivated = int(deactivated)
	}

	srv.metrics.PushDelivered(report.Sent, report.Failed)
	srv.log(ctx).Info("Push delivered",
		slog.Any("notification_id", notificationID),
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed),
		slog.Int("deactivated", report.Deactivated))

	if report.Sent == 0 && report.Failed > 0 && len(invalidTokens) < report.Failed {
		return report, errors.Wrap(domainerrors.ErrPushUnavailable, "no push delivered")
	}

	return report, nil
}
