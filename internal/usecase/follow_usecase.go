package usecase

import (
	"context"

	"github.com/google/uuid"
)

// FollowResult reports the relation after a follow or unfollow call.
// Changed is false when the call found the relation already in the requested state.
type FollowResult struct {
	TargetID  uuid.UUID `json:"target_id"`
	Following bool      `json:"following"`
	Changed   bool      `json:"changed"`
}

// FollowUsecase maintains the directed follow graph.
type FollowUsecase interface {
	Follow(ctx context.Context, actorID, targetID uuid.UUID) (*FollowResult, error)
	Unfollow(ctx context.Context, actorID, targetID uuid.UUID) (*FollowResult, error)

	// FollowByQR follows the user encoded in a scanned follow QR code.
	FollowByQR(ctx context.Context, actorID uuid.UUID, qrData string) (*FollowResult, error)
}
