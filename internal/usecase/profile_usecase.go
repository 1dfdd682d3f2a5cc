// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"agrinet/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// GetProfile returns the profile with its followers and following sets populated.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)

	// EnsureProfile creates the profile on first sign-in. An existing profile is returned unchanged.
	EnsureProfile(ctx context.Context, input *EnsureProfileInput) (*entity.UserProfile, bool, error)

	ListFollowers(ctx context.Context, userID uuid.UUID) ([]entity.ProfileSummary, error)
	ListFollowing(ctx context.Context, userID uuid.UUID) ([]entity.ProfileSummary, error)
	ListExperts(ctx context.Context) ([]entity.ProfileSummary, error)

	// FollowQR renders a PNG QR code that lets a scanner follow userID.
	FollowQR(ctx context.Context, userID uuid.UUID) ([]byte, error)
}

// --- Input DTOs ---

// EnsureProfileInput carries the identity known at sign-in time.
type EnsureProfileInput struct {
	// ID is the profile id chosen by the sign-in service (the token subject). A zero value generates one.
	ID             uuid.UUID
	UID            string
	DisplayName    string
	Username       string
	Email          string
	PhotoURL       string
	Role           entity.Role
	Region         string
	Specialization string
}
