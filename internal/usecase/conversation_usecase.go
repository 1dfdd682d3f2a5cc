package usecase

import (
	"context"

	"agrinet/internal/domain/entity"
	domainerrors "agrinet/internal/domain/errors"

	"github.com/google/uuid"
)

// SendMessageInput is a message about to be appended to a conversation.
type SendMessageInput struct {
	ConversationID uuid.UUID
	SenderID       uuid.UUID
	Text           string
	SubmissionID   *uuid.UUID
}

// SendMessageResult holds the stored message and any notification that could not be delivered.
type SendMessageResult struct {
	Message  *entity.Message                `json:"message"`
	Warnings []domainerrors.DeliveryWarning `json:"warnings,omitempty"`
}

// ConversationUsecase manages two-party conversations and their message logs.
type ConversationUsecase interface {
	// GetOrCreateConversation returns the single conversation between a and b, creating it if needed.
	GetOrCreateConversation(ctx context.Context, a, b uuid.UUID) (*entity.Conversation, error)

	SendMessage(ctx context.Context, input *SendMessageInput) (*SendMessageResult, error)

	// MarkRead moves the caller's read cursor to now.
	MarkRead(ctx context.Context, conversationID, userID uuid.UUID) error

	ListConversationsFor(ctx context.Context, userID uuid.UUID) ([]entity.ConversationSummary, error)
	ListMessages(ctx context.Context, conversationID, viewerID uuid.UUID) ([]*entity.Message, error)
	UnreadConversationCount(ctx context.Context, userID uuid.UUID) (int, error)
}
