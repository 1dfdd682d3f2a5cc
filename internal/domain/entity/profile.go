package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile is the public profile of a platform member.
// Followers and Following are derived from the follow edges and are only populated on detailed reads.
type UserProfile struct {
	ID             uuid.UUID   `json:"id"`
	UID            string      `json:"-"` // Subject from the external auth provider.
	DisplayName    string      `json:"display_name"`
	Username       string      `json:"username"`
	Email          string      `json:"email,omitempty"`
	PhotoURL       string      `json:"photo_url,omitempty"`
	Role           Role        `json:"role"`
	Region         string      `json:"region,omitempty"`
	IsVerified     bool        `json:"is_verified"`
	Specialization string      `json:"specialization,omitempty"` // Experts only.
	Followers      []uuid.UUID `json:"followers,omitempty"`
	Following      []uuid.UUID `json:"following,omitempty"`
	FollowerCount  int         `json:"follower_count"`
	FollowingCount int         `json:"following_count"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// Name returns the best human readable name for the profile.
func (p *UserProfile) Name() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}

	return p.Username
}

// Detail snapshots the fields a conversation shows for a participant.
func (p *UserProfile) Detail() ParticipantDetail {
	return ParticipantDetail{
		DisplayName: p.DisplayName,
		Username:    p.Username,
		PhotoURL:    p.PhotoURL,
	}
}

// ProfileSummary is the compact view used in follower lists and the experts directory.
type ProfileSummary struct {
	ID             uuid.UUID `json:"id"`
	DisplayName    string    `json:"display_name"`
	Username       string    `json:"username"`
	PhotoURL       string    `json:"photo_url,omitempty"`
	Role           Role      `json:"role"`
	Region         string    `json:"region,omitempty"`
	Specialization string    `json:"specialization,omitempty"`
	IsVerified     bool      `json:"is_verified"`
}

// Summary converts the profile to its compact view.
func (p *UserProfile) Summary() ProfileSummary {
	return ProfileSummary{
		ID:             p.ID,
		DisplayName:    p.DisplayName,
		Username:       p.Username,
		PhotoURL:       p.PhotoURL,
		Role:           p.Role,
		Region:         p.Region,
		Specialization: p.Specialization,
		IsVerified:     p.IsVerified,
	}
}
