package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message is one entry of a conversation's append-only log.
// Seq is strictly increasing within a conversation and breaks ties between equal timestamps.
type Message struct {
	ID             uuid.UUID  `json:"id"`
	ConversationID uuid.UUID  `json:"conversation_id"`
	Seq            int64      `json:"seq"`
	SenderID       uuid.UUID  `json:"sender_id"`
	Text           string     `json:"text"`
	SubmissionID   *uuid.UUID `json:"submission_id,omitempty"` // Set when the message discusses a diagnosis submission.
	CreatedAt      time.Time  `json:"created_at"`
}
