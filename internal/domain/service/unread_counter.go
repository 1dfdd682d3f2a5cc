package service

import (
	"context"

	"github.com/google/uuid"
)

// UnreadCounter caches unread notification counts per inbox.
//
// A count read from the database is only a valid cache entry when no write landed while it was
// being computed. Readers take the inbox Generation first, count, then Set with that generation;
// Invalidate changes the generation, so a fill that raced a write is refused.
type UnreadCounter interface {
	// Get returns the cached count and whether it was present.
	Get(ctx context.Context, recipientID uuid.UUID, role string) (int64, bool, error)

	// Generation returns the current invalidation token of the inbox.
	Generation(ctx context.Context, recipientID uuid.UUID, role string) (string, error)

	// Set stores count if the inbox is still at generation. It reports whether the count was stored.
	Set(ctx context.Context, recipientID uuid.UUID, role string, count int64, generation string) (bool, error)

	// Invalidate drops the cached count and moves the inbox to a new generation.
	Invalidate(ctx context.Context, recipientID uuid.UUID, role string) error
}
