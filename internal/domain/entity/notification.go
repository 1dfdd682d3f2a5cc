package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType is the closed set of notification kinds.
type NotificationType string

const (
	NotificationNewSubmission  NotificationType = "new_submission"
	NotificationStatusUpdate   NotificationType = "status_update"
	NotificationNewMessage     NotificationType = "new_message"
	NotificationExpertResponse NotificationType = "expert_response"
)

// IsValid checks if the type is one of the known kinds.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationNewSubmission, NotificationStatusUpdate, NotificationNewMessage, NotificationExpertResponse:
		return true
	default:
		return false
	}
}

// RecipientRole is the audience a notification is addressed to.
// A user holding several roles has a separate inbox per role.
type RecipientRole string

const (
	RecipientFarmer RecipientRole = "farmer"
	RecipientExpert RecipientRole = "expert"
)

// IsValid checks if the recipient role is supported.
func (r RecipientRole) IsValid() bool {
	return r == RecipientFarmer || r == RecipientExpert
}

// RelatedKind names the entity a notification points at.
type RelatedKind string

const (
	RelatedSubmission   RelatedKind = "submission"
	RelatedConversation RelatedKind = "conversation"
)

// RelatedRef is an optional pointer to the entity that triggered a notification.
type RelatedRef struct {
	Kind RelatedKind `json:"kind"`
	ID   uuid.UUID   `json:"id"`
}

// Notification is an inbox record for one recipient.
type Notification struct {
	ID            uuid.UUID        `json:"id"`
	RecipientID   uuid.UUID        `json:"recipient_id"`
	RecipientRole RecipientRole    `json:"recipient_role"`
	Type          NotificationType `json:"type"`
	Title         string           `json:"title"`
	Body          string           `json:"body"`
	Related       *RelatedRef      `json:"related,omitempty"`
	Read          bool             `json:"read"`
	CreatedAt     time.Time        `json:"created_at"`
}
