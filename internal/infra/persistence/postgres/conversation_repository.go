package postgres

import (
	"context"
	"time"

	"agrinet/internal/domain/entity"
	domainerrors "agrinet/internal/domain/errors"
	"agrinet/internal/domain/repository"
	"agrinet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository is the constructor for conversationRepository.
func NewConversationRepository(db *gorm.DB) repository.ConversationRepository {
	return &conversationRepository{db: db}
}

// CreateIfNotExists relies on the pair-derived primary key: a concurrent creator hits the
// conflict and inserts nothing, so exactly one header and one pair of cursors ever exist.
func (repo *conversationRepository) CreateIfNotExists(ctx context.Context, conversation *entity.Conversation) (bool, error) {
	convM := fromConversationDomain(conversation)
	participants := convM.Participants
	convM.Participants = nil

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(convM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return false, repository.ErrProfileNotFound
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create conversation")
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&participants).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to create conversation participants")
	}

	return true, nil
}

func (repo *conversationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error) {
	return repo.find(ctx, repo.db.WithContext(ctx), id)
}

func (repo *conversationRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Conversation, error) {
	return repo.find(ctx, repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (repo *conversationRepository) find(ctx context.Context, query *gorm.DB, id uuid.UUID) (*entity.Conversation, error) {
	var convM model.ConversationModel
	if err := query.Where("id = ?", id).First(&convM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation")
	}

	if err := repo.db.WithContext(ctx).
		Where("conversation_id = ?", id).
		Find(&convM.Participants).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load read cursors")
	}

	return toConversationDomain(&convM), nil
}

func (repo *conversationRepository) FindByParticipant(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error) {
	var convModels []*model.ConversationModel
	if err := repo.db.WithContext(ctx).
		Where("id IN (?)", repo.db.Model(&model.ConversationParticipantModel{}).
			Select("conversation_id").
			Where("user_id = ?", userID)).
		Preload("Participants").
		Order("last_message_at DESC").
		Order("id").
		Find(&convModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find conversations by participant")
	}

	conversations := make([]*entity.Conversation, 0, len(convModels))
	for _, convM := range convModels {
		conversations = append(conversations, toConversationDomain(convM))
	}

	return conversations, nil
}

func (repo *conversationRepository) UpdateLastMessage(ctx context.Context, id uuid.UUID, last entity.LastMessage, seq int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ConversationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"last_message_text":      last.Text,
			"last_message_sender_id": last.SenderID,
			"last_message_at":        last.CreatedAt,
			"last_seq":               seq,
			"updated_at":             last.CreatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update last message")
	}
	if result.RowsAffected == 0 {
		return repository.ErrConversationNotFound
	}

	return nil
}

func (repo *conversationRepository) UpdateLastRead(ctx context.Context, id, userID uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ConversationParticipantModel{}).
		Where("conversation_id = ? AND user_id = ?", id, userID).
		Update("last_read_at", gorm.Expr("GREATEST(last_read_at, ?)", at))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update read cursor")
	}
	if result.RowsAffected == 0 {
		return repository.ErrConversationNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toConversationDomain(data *model.ConversationModel) *entity.Conversation {
	if data == nil {
		return nil
	}

	details := make(map[uuid.UUID]entity.ParticipantDetail, 2)
	for key, detail := range data.ParticipantDetails.Data() {
		id, err := uuid.Parse(key)
		if err != nil {
			continue
		}
		details[id] = entity.ParticipantDetail{
			DisplayName: detail.DisplayName,
			Username:    detail.Username,
			PhotoURL:    detail.PhotoURL,
		}
	}

	lastRead := make(map[uuid.UUID]time.Time, len(data.Participants))
	for _, participant := range data.Participants {
		lastRead[participant.UserID] = participant.LastReadAt
	}

	return &entity.Conversation{
		ID:                 data.ID,
		Participants:       [2]uuid.UUID{data.ParticipantLow, data.ParticipantHigh},
		ParticipantDetails: details,
		LastMessage: entity.LastMessage{
			Text:      data.LastMessageText,
			SenderID:  data.LastMessageSenderID,
			CreatedAt: data.LastMessageAt,
		},
		LastRead:  lastRead,
		LastSeq:   data.LastSeq,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromConversationDomain(data *entity.Conversation) *model.ConversationModel {
	if data == nil {
		return nil
	}

	low, high := entity.SortPair(data.Participants[0], data.Participants[1])

	details := make(map[string]model.ParticipantDetailJSON, len(data.ParticipantDetails))
	for id, detail := range data.ParticipantDetails {
		details[id.String()] = model.ParticipantDetailJSON{
			DisplayName: detail.DisplayName,
			Username:    detail.Username,
			PhotoURL:    detail.PhotoURL,
		}
	}

	participants := make([]model.ConversationParticipantModel, 0, 2)
	for _, id := range []uuid.UUID{low, high} {
		participants = append(participants, model.ConversationParticipantModel{
			ConversationID: data.ID,
			UserID:         id,
			LastReadAt:     data.LastRead[id],
		})
	}

	return &model.ConversationModel{
		ID:                  data.ID,
		ParticipantLow:      low,
		ParticipantHigh:     high,
		ParticipantDetails:  datatypes.NewJSONType(details),
		LastMessageText:     data.LastMessage.Text,
		LastMessageSenderID: data.LastMessage.SenderID,
		LastMessageAt:       data.LastMessage.CreatedAt,
		LastSeq:             data.LastSeq,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
		Participants:        participants,
	}
}
