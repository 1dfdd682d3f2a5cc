package repository

import (
	"context"

	"agrinet/internal/domain/entity"

	"github.com/google/uuid"
)

// MessageRepository stores the append-only message log.
type MessageRepository interface {
	// Create appends a message. Seq must already be assigned.
	Create(ctx context.Context, message *entity.Message) error

	// FindByConversation lists the messages of a conversation in send order.
	FindByConversation(ctx context.Context, conversationID uuid.UUID) ([]*entity.Message, error)

	// FindBySubmission lists messages carrying the submission context, in send order.
	FindBySubmission(ctx context.Context, submissionID uuid.UUID) ([]*entity.Message, error)
}
