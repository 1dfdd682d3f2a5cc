package repository

import (
	"context"

	"agrinet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationFilter selects notifications of one recipient inbox.
type NotificationFilter struct {
	RecipientID   uuid.UUID
	RecipientRole entity.RecipientRole
	UnreadOnly    bool
	Limit         int
	Offset        int
}

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// Create persists a new notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByID retrieves a notification by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// FindByRecipient lists an inbox newest first.
	FindByRecipient(ctx context.Context, filter NotificationFilter) ([]*entity.Notification, error)

	// CountUnread counts unread records of an inbox.
	CountUnread(ctx context.Context, recipientID uuid.UUID, role entity.RecipientRole) (int64, error)

	// MarkRead flags one notification as read. A missing id is not an error.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// MarkAllRead flags every notification of an inbox as read and returns how many changed.
	MarkAllRead(ctx context.Context, recipientID uuid.UUID, role entity.RecipientRole) (int64, error)

	// Delete removes a notification. A missing id is not an error.
	Delete(ctx context.Context, id uuid.UUID) error

	// PruneOldest keeps the newest keep records of an inbox, deleting read records before unread ones.
	PruneOldest(ctx context.Context, recipientID uuid.UUID, role entity.RecipientRole, keep int) (int64, error)
}
