package repository

import (
	"context"
	"time"

	"agrinet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrConversationNotFound is returned when a conversation is not found.
var ErrConversationNotFound = errors.New("conversation not found")

// ConversationRepository stores conversation headers and per-participant read cursors.
type ConversationRepository interface {
	// CreateIfNotExists inserts the conversation and its participant cursors unless a row with the same id exists.
	// It reports whether this call created it.
	CreateIfNotExists(ctx context.Context, conversation *entity.Conversation) (bool, error)

	// FindByID loads a conversation with its read cursors.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error)

	// FindByIDForUpdate loads and row-locks a conversation for the rest of the transaction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Conversation, error)

	// FindByParticipant lists the conversations of userID, most recent activity first.
	FindByParticipant(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error)

	// UpdateLastMessage stores the latest message summary and sequence number.
	UpdateLastMessage(ctx context.Context, id uuid.UUID, last entity.LastMessage, seq int64) error

	// UpdateLastRead moves the read cursor of userID forward to at. Cursors never move backwards.
	UpdateLastRead(ctx context.Context, id, userID uuid.UUID, at time.Time) error
}
