package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ParticipantDetailJSON is the jsonb shape of one participant snapshot.
type ParticipantDetailJSON struct {
	DisplayName string `json:"displayName"`
	Username    string `json:"username"`
	PhotoURL    string `json:"photoURL,omitempty"`
}

// ConversationModel mirrors the 'conversations' table.
// ID is derived from the participant pair, so inserting an existing pair conflicts on the primary key.
type ConversationModel struct {
	ID                  uuid.UUID                                            `gorm:"type:uuid;primary_key"`
	ParticipantLow      uuid.UUID                                            `gorm:"type:uuid;not null;uniqueIndex:idx_conversations_pair"`
	ParticipantHigh     uuid.UUID                                            `gorm:"type:uuid;not null;uniqueIndex:idx_conversations_pair"`
	ParticipantDetails  datatypes.JSONType[map[string]ParticipantDetailJSON] `gorm:"type:jsonb;not null"`
	LastMessageText     string                                               `gorm:"type:text;not null"`
	LastMessageSenderID uuid.UUID                                            `gorm:"type:uuid;not null"`
	LastMessageAt       time.Time                                            `gorm:"not null;index"`
	LastSeq             int64                                                `gorm:"not null;default:0"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Participants []ConversationParticipantModel `gorm:"foreignKey:ConversationID"`
}

// TableName explicitly sets the table name for GORM.
func (ConversationModel) TableName() string {
	return "conversations"
}

// ConversationParticipantModel mirrors the 'conversation_participants' table and holds the read cursor.
type ConversationParticipantModel struct {
	ConversationID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	LastReadAt     time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ConversationParticipantModel) TableName() string {
	return "conversation_participants"
}

// MessageModel mirrors the 'messages' table.
type MessageModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ConversationID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_messages_conversation_seq"`
	Seq            int64      `gorm:"not null;uniqueIndex:idx_messages_conversation_seq"`
	SenderID       uuid.UUID  `gorm:"type:uuid;not null"`
	Text           string     `gorm:"type:text;not null"`
	SubmissionID   *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt      time.Time  `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
