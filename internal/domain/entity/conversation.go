package entity

import (
	"bytes"
	"time"

	"github.com/google/uuid"
)

// conversationNamespace scopes the name-based conversation identifiers.
var conversationNamespace = uuid.MustParse("6f1c2d7e-2b8a-4f0e-9a51-3c7d4e8b9f10")

// ConversationID derives the identifier of the conversation between two users.
// The pair is unordered: ConversationID(a, b) == ConversationID(b, a).
func ConversationID(a, b uuid.UUID) uuid.UUID {
	low, high := SortPair(a, b)
	name := make([]byte, 0, 2*len(low))
	name = append(name, low[:]...)
	name = append(name, high[:]...)

	return uuid.NewSHA1(conversationNamespace, name)
}

// SortPair returns the two ids in ascending byte order.
func SortPair(a, b uuid.UUID) (low, high uuid.UUID) {
	if bytes.Compare(a[:], b[:]) <= 0 {
		return a, b
	}

	return b, a
}

// ParticipantDetail is the display snapshot of a participant taken when the conversation is created.
type ParticipantDetail struct {
	DisplayName string `json:"display_name"`
	Username    string `json:"username"`
	PhotoURL    string `json:"photo_url,omitempty"`
}

// LastMessage summarises the most recent message of a conversation.
type LastMessage struct {
	Text      string    `json:"text"`
	SenderID  uuid.UUID `json:"sender_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Conversation is a two-party direct message thread.
type Conversation struct {
	ID                 uuid.UUID                       `json:"id"`
	Participants       [2]uuid.UUID                    `json:"participants"`
	ParticipantDetails map[uuid.UUID]ParticipantDetail `json:"participant_details"`
	LastMessage        LastMessage                     `json:"last_message"`
	LastRead           map[uuid.UUID]time.Time         `json:"last_read"`
	LastSeq            int64                           `json:"last_seq"`
	CreatedAt          time.Time                       `json:"created_at"`
	UpdatedAt          time.Time                       `json:"updated_at"`
}

// HasParticipant reports whether userID is one of the two participants.
func (c *Conversation) HasParticipant(userID uuid.UUID) bool {
	return c.Participants[0] == userID || c.Participants[1] == userID
}

// OtherParticipant returns the participant that is not userID.
func (c *Conversation) OtherParticipant(userID uuid.UUID) uuid.UUID {
	if c.Participants[0] == userID {
		return c.Participants[1]
	}

	return c.Participants[0]
}

// IsUnreadFor reports whether the latest message is unseen by userID.
// Messages a user sent never count as unread for that user.
func (c *Conversation) IsUnreadFor(userID uuid.UUID) bool {
	if c.LastMessage.SenderID == userID {
		return false
	}
	lastRead, ok := c.LastRead[userID]
	if !ok {
		return true
	}

	return c.LastMessage.CreatedAt.After(lastRead)
}

// ConversationSummary is a conversation as listed for one participant.
type ConversationSummary struct {
	ID          uuid.UUID         `json:"id"`
	OtherUserID uuid.UUID         `json:"other_user_id"`
	OtherUser   ParticipantDetail `json:"other_user"`
	LastMessage LastMessage       `json:"last_message"`
	Unread      bool              `json:"unread"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// SummaryFor builds the listing view of the conversation for viewerID.
func (c *Conversation) SummaryFor(viewerID uuid.UUID) ConversationSummary {
	other := c.OtherParticipant(viewerID)

	return ConversationSummary{
		ID:          c.ID,
		OtherUserID: other,
		OtherUser:   c.ParticipantDetails[other],
		LastMessage: c.LastMessage,
		Unread:      c.IsUnreadFor(viewerID),
		UpdatedAt:   c.UpdatedAt,
	}
}
