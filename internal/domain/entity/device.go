package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device is a push target registered by a user.
type Device struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FCMToken  string    `json:"fcm_token"`
	DeviceID  string    `json:"device_id"` // Client supplied identifier, unique per user.
	Platform  string    `json:"platform"`  // ios, android or web.
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
