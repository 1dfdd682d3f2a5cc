package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DiagnosisSubmissionModel mirrors the 'diagnosis_submissions' table.
type DiagnosisSubmissionModel struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FarmerID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	FarmerName     string         `gorm:"type:varchar(100);not null"`
	Diagnosis      datatypes.JSON `gorm:"type:jsonb;not null"`
	ImageData      string         `gorm:"type:text"`
	Status         string         `gorm:"type:varchar(20);not null;index"`
	ExpertFeedback string         `gorm:"type:text"`
	ReviewedBy     *uuid.UUID     `gorm:"type:uuid"`
	SubmittedAt    time.Time      `gorm:"not null"`
	ReviewedAt     *time.Time
}

// TableName explicitly sets the table name for GORM.
func (DiagnosisSubmissionModel) TableName() string {
	return "diagnosis_submissions"
}
