package postgres

import (
	"context"

	"agrinet/internal/domain/entity"
	domainerrors "agrinet/internal/domain/errors"
	"agrinet/internal/domain/repository"
	"agrinet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

// Create persists a new notification.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProfileNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("notification violates a check constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindByID retrieves a notification by its unique ID.
func (repo *notificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// FindByRecipient lists an inbox newest first.
func (repo *notificationRepository) FindByRecipient(ctx context.Context, filter repository.NotificationFilter) ([]*entity.Notification, error) {
	query := repo.inbox(ctx, filter.RecipientID, filter.RecipientRole)
	if filter.UnreadOnly {
		query = query.Where("read = ?", false)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var notificationModels []*model.NotificationModel
	if err := query.
		Order("created_at DESC").
		Order("id DESC").
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by recipient")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// CountUnread counts unread records of an inbox.
func (repo *notificationRepository) CountUnread(ctx context.Context, recipientID uuid.UUID, role entity.RecipientRole) (int64, error) {
	var count int64
	if err := repo.inbox(ctx, recipientID, role).
		Where("read = ?", false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkRead flags one notification as read.
func (repo *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Update("read", true).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to mark notification as read")
	}

	return nil
}

// MarkAllRead flags every unread notification of an inbox as read.
func (repo *notificationRepository) MarkAllRead(ctx context.Context, recipientID uuid.UUID, role entity.RecipientRole) (int64, error) {
	result := repo.inbox(ctx, recipientID, role).
		Where("read = ?", false).
		Update("read", true)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark all notifications as read")
	}

	return result.RowsAffected, nil
}

// Delete removes a notification.
func (repo *notificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.NotificationModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete notification")
	}

	return nil
}

// PruneOldest ranks unread records ahead of read ones, newest first, and deletes everything past keep.
func (repo *notificationRepository) PruneOldest(ctx context.Context, recipientID uuid.UUID, role entity.RecipientRole, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}

	overflow := repo.db.Model(&model.NotificationModel{}).
		Select("id").
		Where("recipient_id = ? AND recipient_role = ?", recipientID, string(role)).
		Order("read ASC").
		Order("created_at DESC").
		Order("id DESC").
		Offset(keep)

	result := repo.db.WithContext(ctx).
		Where("id IN (?)", overflow).
		Delete(&model.NotificationModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to prune notifications")
	}

	return result.RowsAffected, nil
}

func (repo *notificationRepository) inbox(ctx context.Context, recipientID uuid.UUID, role entity.RecipientRole) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("recipient_id = ? AND recipient_role = ?", recipientID, string(role))
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	notification := &entity.Notification{
		ID:            data.ID,
		RecipientID:   data.RecipientID,
		RecipientRole: entity.RecipientRole(data.RecipientRole),
		Type:          entity.NotificationType(data.Type),
		Title:         data.Title,
		Body:          data.Body,
		Read:          data.Read,
		CreatedAt:     data.CreatedAt,
	}
	if data.RelatedKind != nil && data.RelatedID != nil {
		notification.Related = &entity.RelatedRef{
			Kind: entity.RelatedKind(*data.RelatedKind),
			ID:   *data.RelatedID,
		}
	}

	return notification
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	notificationM := &model.NotificationModel{
		ID:            data.ID,
		RecipientID:   data.RecipientID,
		RecipientRole: string(data.RecipientRole),
		Type:          string(data.Type),
		Title:         data.Title,
		Body:          data.Body,
		Read:          data.Read,
		CreatedAt:     data.CreatedAt,
	}
	if data.Related != nil {
		kind := string(data.Related.Kind)
		relatedID := data.Related.ID
		notificationM.RelatedKind = &kind
		notificationM.RelatedID = &relatedID
	}

	return notificationM
}
