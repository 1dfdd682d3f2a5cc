package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SubmissionStatus is the review state of a diagnosis submission.
type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

// IsValid checks if the status is known.
func (s SubmissionStatus) IsValid() bool {
	switch s {
	case SubmissionPending, SubmissionApproved, SubmissionRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed.
func (s SubmissionStatus) IsTerminal() bool {
	return s == SubmissionApproved || s == SubmissionRejected
}

// CanTransitionTo allows only pending -> approved and pending -> rejected.
func (s SubmissionStatus) CanTransitionTo(next SubmissionStatus) bool {
	return s == SubmissionPending && next.IsTerminal()
}

// DiagnosisSubmission is a farmer's AI diagnosis awaiting or past expert review.
// Diagnosis is the opaque payload produced by the diagnosis model.
type DiagnosisSubmission struct {
	ID             uuid.UUID        `json:"id"`
	FarmerID       uuid.UUID        `json:"farmer_id"`
	FarmerName     string           `json:"farmer_name"`
	Diagnosis      json.RawMessage  `json:"diagnosis"`
	ImageData      string           `json:"image_data,omitempty"`
	Status         SubmissionStatus `json:"status"`
	ExpertFeedback string           `json:"expert_feedback,omitempty"`
	ReviewedBy     *uuid.UUID       `json:"reviewed_by,omitempty"`
	SubmittedAt    time.Time        `json:"submitted_at"`
	ReviewedAt     *time.Time       `json:"reviewed_at,omitempty"`
}
