package service

import "github.com/google/uuid"

// SendLimiter throttles how fast a user can send messages.
type SendLimiter interface {
	// Allow reports whether userID may send a message now and consumes a token if so.
	Allow(userID uuid.UUID) bool
}
