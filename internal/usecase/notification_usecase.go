package usecase

import (
	"context"

	"agrinet/internal/domain/entity"

	"github.com/google/uuid"
)

// EmitInput describes a notification to store for one recipient inbox.
type EmitInput struct {
	RecipientID   uuid.UUID
	RecipientRole entity.RecipientRole
	Type          entity.NotificationType
	Title         string
	Body          string
	Related       *entity.RelatedRef
}

// ListNotificationsInput selects a page of an inbox.
type ListNotificationsInput struct {
	RecipientID   uuid.UUID
	RecipientRole entity.RecipientRole
	UnreadOnly    bool
	Limit         int
	Offset        int
}

// NotificationUsecase is the notification center: per-recipient, per-role inboxes.
type NotificationUsecase interface {
	Emit(ctx context.Context, input *EmitInput) (*entity.Notification, error)
	List(ctx context.Context, input *ListNotificationsInput) ([]*entity.Notification, error)
	UnreadCount(ctx context.Context, recipientID uuid.UUID, role entity.RecipientRole) (int64, error)

	// MarkRead and Delete succeed silently for unknown ids but refuse to touch another user's records.
	MarkRead(ctx context.Context, actorID, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, recipientID uuid.UUID, role entity.RecipientRole) (int64, error)
	Delete(ctx context.Context, actorID, notificationID uuid.UUID) error
}
