package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
type NotificationModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RecipientID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_notifications_inbox,priority:1"`
	RecipientRole string     `gorm:"type:varchar(20);not null;index:idx_notifications_inbox,priority:2"`
	Type          string     `gorm:"type:varchar(30);not null"`
	Title         string     `gorm:"type:text;not null"`
	Body          string     `gorm:"type:text;not null"`
	RelatedKind   *string    `gorm:"type:varchar(20)"`
	RelatedID     *uuid.UUID `gorm:"type:uuid"`
	Read          bool       `gorm:"not null;default:false"`
	CreatedAt     time.Time  `gorm:"not null;index:idx_notifications_inbox,priority:3,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
