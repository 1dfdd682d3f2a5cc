// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"agrinet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when a profile is not found.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrDuplicateProfile is returned when the uid or username is already taken.
	ErrDuplicateProfile = errors.New("profile already exists")
)

// ProfileRepository defines the interface for profile-related database operations.
type ProfileRepository interface {
	// Create persists a new profile.
	Create(ctx context.Context, profile *entity.UserProfile) error

	// FindByID retrieves a profile without its adjacency sets.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error)

	// FindByUID retrieves a profile by the auth provider subject.
	FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error)

	// FindByIDs retrieves the profiles that exist among ids, in no particular order.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.UserProfile, error)

	// FindByRole retrieves all profiles holding role, ordered by display name.
	FindByRole(ctx context.Context, role entity.Role) ([]*entity.UserProfile, error)

	// LockByIDs row-locks the given profiles for the rest of the transaction, in ascending id order.
	// It returns ErrProfileNotFound if any of them does not exist.
	LockByIDs(ctx context.Context, ids []uuid.UUID) error

	// AdjustFollowCounts adds delta to the follower's following_count and the followee's follower_count.
	AdjustFollowCounts(ctx context.Context, followerID, followeeID uuid.UUID, delta int) error
}
