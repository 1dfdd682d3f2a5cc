package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"agrinet/config"
	deliverycontext "agrinet/internal/delivery/context"
	"agrinet/internal/domain/entity"
	domainerrors "agrinet/internal/domain/errors"
	"agrinet/internal/domain/repository"
	"agrinet/internal/domain/service"
	"agrinet/internal/errors"
	"agrinet/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultNotificationPageSize = 50
	maxNotificationPageSize     = 100
)

type notificationService struct {
	txManager        repository.TransactionManager
	notificationRepo repository.NotificationRepository
	unreadCounter    service.UnreadCounter
	publisher        service.EventPublisher
	metrics          service.MetricsRecorder
	maxPerRecipient  int
	logger           *slog.Logger
	now              func() time.Time
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	NotificationRepo repository.NotificationRepository
	UnreadCounter    service.UnreadCounter
	Publisher        service.EventPublisher
	Metrics          service.MetricsRecorder
	Config           *config.Config
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	maxPerRecipient := 0
	if params.Config != nil && params.Config.Notification != nil {
		maxPerRecipient = params.Config.Notification.MaxPerRecipient
	}

	return &notificationService{
		txManager:        params.TxManager,
		notificationRepo: params.NotificationRepo,
		unreadCounter:    params.UnreadCounter,
		publisher:        params.Publisher,
		metrics:          params.Metrics,
		maxPerRecipient:  maxPerRecipient,
		logger:           params.Logger,
		now:              time.Now,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Emit stores an unread notification and trims the inbox to the retention cap in the same transaction.
// Cache invalidation and the push event happen after commit and never fail the call.
func (srv *notificationService) Emit(ctx context.Context, input *usecase.EmitInput) (*entity.Notification, error) {
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrInvalidNotificationType.WithDetails(string(input.Type))
	}
	if !input.RecipientRole.IsValid() {
		return nil, domainerrors.ErrInvalidRecipientRole.WithDetails(string(input.RecipientRole))
	}
	if input.RecipientID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("recipient is required")
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title is required")
	}

	notification := &entity.Notification{
		ID:            uuid.New(),
		RecipientID:   input.RecipientID,
		RecipientRole: input.RecipientRole,
		Type:          input.Type,
		Title:         title,
		Body:          input.Body,
		Related:       input.Related,
		Read:          false,
		CreatedAt:     srv.now(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		notificationRepo := repoFactory.NotificationRepo()

		if err := notificationRepo.Create(ctx, notification); err != nil {
			return errors.Wrap(err, "failed to create notification")
		}

		if srv.maxPerRecipient > 0 {
			pruned, err := notificationRepo.PruneOldest(ctx, notification.RecipientID, notification.RecipientRole, srv.maxPerRecipient)
			if err != nil {
				return errors.Wrap(err, "failed to prune notifications")
			}
			if pruned > 0 {
				srv.log(ctx).Debug("Pruned notifications beyond retention cap",
					slog.Any("recipient_id", notification.RecipientID), slog.Int64("pruned", pruned))
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to emit notification",
			slog.Any("recipient_id", input.RecipientID), slog.String("type", string(input.Type)), slog.Any("error", err))

		return nil, err
	}

	srv.invalidate(ctx, notification.RecipientID, notification.RecipientRole)
	srv.publish(ctx, notification)
	srv.metrics.NotificationEmitted(string(notification.Type))

	srv.log(ctx).Debug("Notification emitted",
		slog.Any("notification_id", notification.ID),
		slog.Any("recipient_id", notification.RecipientID),
		slog.String("type", string(notification.Type)))

	return notification, nil
}

func (srv *notificationService) List(ctx context.Context, input *usecase.ListNotificationsInput) ([]*entity.Notification, error) {
	if !input.RecipientRole.IsValid() {
		return nil, domainerrors.ErrInvalidRecipientRole.WithDetails(string(input.RecipientRole))
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultNotificationPageSize
	}
	limit = min(limit, maxNotificationPageSize)

	notifications, err := srv.notificationRepo.FindByRecipient(ctx, repository.NotificationFilter{
		RecipientID:   input.RecipientID,
		RecipientRole: input.RecipientRole,
		UnreadOnly:    input.UnreadOnly,
		Limit:         limit,
		Offset:        max(input.Offset, 0),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// UnreadCount reads through the cache. Cache errors fall back to the database.
func (srv *notificationService) UnreadCount(ctx context.Context, recipientID uuid.UUID, role entity.RecipientRole) (int64, error) {
	if !role.IsValid() {
		return 0, domainerrors.ErrInvalidRecipientRole.WithDetails(string(role))
	}

	count, ok, err := srv.unreadCounter.Get(ctx, recipientID, string(role))
	if err != nil {
		srv.log(ctx).Warn("Unread counter cache read failed", slog.Any("error", err))
	}
	if ok {
		return count, nil
	}

	// The generation is taken before counting so a write that commits meanwhile refuses the fill.
	generation, genErr := srv.unreadCounter.Generation(ctx, recipientID, string(role))
	if genErr != nil {
		srv.log(ctx).Warn("Unread counter generation read failed", slog.Any("error", genErr))
	}

	count, err = srv.notificationRepo.CountUnread(ctx, recipientID, role)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}
	if genErr != nil {
		return count, nil
	}

	stored, err := srv.unreadCounter.Set(ctx, recipientID, string(role), count, generation)
	switch {
	case err != nil:
		srv.log(ctx).Warn("Unread counter cache write failed", slog.Any("error", err))
	case !stored:
		srv.log(ctx).Debug("Unread count changed while counting, cache not filled", slog.Any("recipient_id", recipientID))
	}

	return count, nil
}

func (srv *notificationService) MarkRead(ctx context.Context, actorID, notificationID uuid.UUID) error {
	notification, err := srv.owned(ctx, actorID, notificationID)
	if err != nil || notification == nil || notification.Read {
		return err
	}

	if err := srv.notificationRepo.MarkRead(ctx, notificationID); err != nil {
		return errors.Wrap(err, "failed to mark notification read")
	}
	srv.invalidate(ctx, notification.RecipientID, notification.RecipientRole)

	return nil
}

func (srv *notificationService) MarkAllRead(ctx context.Context, recipientID uuid.UUID, role entity.RecipientRole) (int64, error) {
	if !role.IsValid() {
		return 0, domainerrors.ErrInvalidRecipientRole.WithDetails(string(role))
	}

	updated, err := srv.notificationRepo.MarkAllRead(ctx, recipientID, role)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark all notifications read")
	}
	srv.invalidate(ctx, recipientID, role)

	srv.log(ctx).Debug("Marked notifications read", slog.Any("recipient_id", recipientID), slog.Int64("updated", updated))

	return updated, nil
}

func (srv *notificationService) Delete(ctx context.Context, actorID, notificationID uuid.UUID) error {
	notification, err := srv.owned(ctx, actorID, notificationID)
	if err != nil || notification == nil {
		return err
	}

	if err := srv.notificationRepo.Delete(ctx, notificationID); err != nil {
		return errors.Wrap(err, "failed to delete notification")
	}
	if !notification.Read {
		srv.invalidate(ctx, notification.RecipientID, notification.RecipientRole)
	}

	return nil
}

// owned loads a notification for mutation by actorID. A missing notification yields (nil, nil).
func (srv *notificationService) owned(ctx context.Context, actorID, notificationID uuid.UUID) (*entity.Notification, error) {
	notification, err := srv.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find notification")
	}

	if notification.RecipientID != actorID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "notification belongs to another user")
	}

	return notification, nil
}

func (srv *notificationService) invalidate(ctx context.Context, recipientID uuid.UUID, role entity.RecipientRole) {
	if err := srv.unreadCounter.Invalidate(ctx, recipientID, string(role)); err != nil {
		srv.log(ctx).Warn("Unread counter cache invalidation failed", slog.Any("recipient_id", recipientID), slog.Any("error", err))
	}
}

func (srv *notificationService) publish(ctx context.Context, notification *entity.Notification) {
	event := &service.NotificationEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		NotificationID: notification.ID.String(),
		RecipientID:    notification.RecipientID.String(),
		RecipientRole:  string(notification.RecipientRole),
		Type:           string(notification.Type),
		Title:          notification.Title,
		Body:           notification.Body,
	}
	if notification.Related != nil {
		event.RelatedKind = string(notification.Related.Kind)
		event.RelatedID = notification.Related.ID.String()
	}

	if err := srv.publisher.PublishNotificationEvent(ctx, event); err != nil {
		srv.metrics.DeliveryWarning(domainerrors.StageEventPublish)
		srv.log(ctx).Warn("Failed to publish notification event",
			slog.Any("notification_id", notification.ID), slog.Any("error", err))
	}
}
