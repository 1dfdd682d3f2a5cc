package usecase

import (
	"context"
	"encoding/json"

	"agrinet/internal/domain/entity"
	domainerrors "agrinet/internal/domain/errors"

	"github.com/google/uuid"
)

// SubmitForReviewInput is a farmer's diagnosis handed over for expert review.
type SubmitForReviewInput struct {
	FarmerID  uuid.UUID
	Diagnosis json.RawMessage
	ImageData string
}

// ReviewInput is an expert's verdict on a submission.
type ReviewInput struct {
	ExpertID     uuid.UUID
	SubmissionID uuid.UUID
	Status       entity.SubmissionStatus
	Feedback     string
}

// SubmissionMessageInput is a free-text message about a submission.
// RecipientID is required when a farmer writes, since the submission does not name an expert.
type SubmissionMessageInput struct {
	SenderID     uuid.UUID
	SubmissionID uuid.UUID
	RecipientID  *uuid.UUID
	Text         string
}

// SubmissionResult carries a submission after a workflow step and the notifications that failed.
type SubmissionResult struct {
	Submission *entity.DiagnosisSubmission    `json:"submission"`
	Warnings   []domainerrors.DeliveryWarning `json:"warnings,omitempty"`
}

// ReviewUsecase glues the diagnosis review workflow to notifications and messaging.
type ReviewUsecase interface {
	SubmitForReview(ctx context.Context, input *SubmitForReviewInput) (*SubmissionResult, error)
	ReviewSubmission(ctx context.Context, input *ReviewInput) (*SubmissionResult, error)

	// OnSubmissionCreated notifies every expert about a new submission.
	OnSubmissionCreated(ctx context.Context, submission *entity.DiagnosisSubmission) []domainerrors.DeliveryWarning

	// OnStatusChanged notifies the farmer about a review outcome. Non-terminal statuses produce nothing.
	OnStatusChanged(ctx context.Context, submission *entity.DiagnosisSubmission, status entity.SubmissionStatus, feedback string) []domainerrors.DeliveryWarning

	SendSubmissionMessage(ctx context.Context, input *SubmissionMessageInput) (*SendMessageResult, error)
	ListSubmissionMessages(ctx context.Context, submissionID, viewerID uuid.UUID) ([]*entity.Message, error)

	ListSubmissions(ctx context.Context, viewerID uuid.UUID, status *entity.SubmissionStatus, limit, offset int) ([]*entity.DiagnosisSubmission, error)
	GetSubmission(ctx context.Context, viewerID, submissionID uuid.UUID) (*entity.DiagnosisSubmission, error)
}
