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

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (repo *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("message sequence already taken")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrConversationNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	message.ID = messageM.ID

	return nil
}

func (repo *messageRepository) FindByConversation(ctx context.Context, conversationID uuid.UUID) ([]*entity.Message, error) {
	var messageModels []*model.MessageModel
	if err := repo.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("seq ASC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find messages by conversation")
	}

	return toMessageDomains(messageModels), nil
}

func (repo *messageRepository) FindBySubmission(ctx context.Context, submissionID uuid.UUID) ([]*entity.Message, error) {
	var messageModels []*model.MessageModel
	if err := repo.db.WithContext(ctx).
		Where("submission_id = ?", submissionID).
		Order("created_at ASC").
		Order("seq ASC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find messages by submission")
	}

	return toMessageDomains(messageModels), nil
}

// --- Mapper Functions ---

func toMessageDomain(data *model.MessageModel) *entity.Message {
	if data == nil {
		return nil
	}

	return &entity.Message{
		ID:             data.ID,
		ConversationID: data.ConversationID,
		Seq:            data.Seq,
		SenderID:       data.SenderID,
		Text:           data.Text,
		SubmissionID:   data.SubmissionID,
		CreatedAt:      data.CreatedAt,
	}
}

func toMessageDomains(models []*model.MessageModel) []*entity.Message {
	messages := make([]*entity.Message, 0, len(models))
	for _, messageM := range models {
		messages = append(messages, toMessageDomain(messageM))
	}

	return messages
}

func fromMessageDomain(data *entity.Message) *model.MessageModel {
	if data == nil {
		return nil
	}

	return &model.MessageModel{
		ID:             data.ID,
		ConversationID: data.ConversationID,
		Seq:            data.Seq,
		SenderID:       data.SenderID,
		Text:           data.Text,
		SubmissionID:   data.SubmissionID,
		CreatedAt:      data.CreatedAt,
	}
}
