package repository

import (
	"context"

	"github.com/google/uuid"
)

// FollowRepository stores directed follow edges.
type FollowRepository interface {
	// Create inserts the edge. It reports false when the edge already existed.
	Create(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)

	// Delete removes the edge. It reports false when there was no edge.
	Delete(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)

	// Exists checks whether followerID follows followeeID.
	Exists(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)

	// FindFollowerIDs lists who follows userID.
	FindFollowerIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// FindFollowingIDs lists who userID follows.
	FindFollowingIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
