package model

import (
	"time"

	"github.com/google/uuid"
)

// UserProfileModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserProfileModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UID            string    `gorm:"type:varchar(128);unique;not null"`
	DisplayName    string    `gorm:"type:varchar(100);not null"`
	Username       string    `gorm:"type:varchar(50);unique;not null"`
	Email          string    `gorm:"type:varchar(255)"`
	PhotoURL       string    `gorm:"type:text"`
	Role           string    `gorm:"type:varchar(20);not null;index"`
	Region         string    `gorm:"type:varchar(100)"`
	IsVerified     bool      `gorm:"not null;default:false"`
	Specialization string    `gorm:"type:varchar(100)"`
	FollowerCount  int       `gorm:"not null;default:0"`
	FollowingCount int       `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserProfileModel) TableName() string {
	return "users"
}

// FollowModel mirrors the 'follows' table. One row is one directed edge.
type FollowModel struct {
	FollowerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	FolloweeID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (FollowModel) TableName() string {
	return "follows"
}
