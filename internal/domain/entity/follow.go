package entity

import (
	"time"

	"github.com/google/uuid"
)

// FollowEdge records that FollowerID follows FolloweeID.
// A single edge backs both the follower's following set and the followee's followers set.
type FollowEdge struct {
	FollowerID uuid.UUID `json:"follower_id"`
	FolloweeID uuid.UUID `json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`
}
