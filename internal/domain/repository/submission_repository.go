package repository

import (
	"context"
	"time"

	"agrinet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for submission persistence.
var (
	// ErrSubmissionNotFound is returned when a submission is not found.
	ErrSubmissionNotFound = errors.New("submission not found")
	// ErrSubmissionStatusConflict is returned when the submission is no longer in the expected status.
	ErrSubmissionStatusConflict = errors.New("submission status changed concurrently")
)

// SubmissionReview is the outcome of an expert review.
type SubmissionReview struct {
	Status     entity.SubmissionStatus
	Feedback   string
	ReviewedBy uuid.UUID
	ReviewedAt time.Time
}

// SubmissionRepository stores diagnosis submissions.
type SubmissionRepository interface {
	// Create persists a new submission.
	Create(ctx context.Context, submission *entity.DiagnosisSubmission) error

	// FindByID retrieves a submission.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DiagnosisSubmission, error)

	// FindAll lists submissions newest first, optionally filtered by status.
	FindAll(ctx context.Context, status *entity.SubmissionStatus, limit, offset int) ([]*entity.DiagnosisSubmission, error)

	// FindByFarmer lists a farmer's submissions newest first.
	FindByFarmer(ctx context.Context, farmerID uuid.UUID) ([]*entity.DiagnosisSubmission, error)

	// ApplyReview moves a submission out of status from. It returns ErrSubmissionStatusConflict
	// when the stored status is not from, so two reviewers cannot both win.
	ApplyReview(ctx context.Context, id uuid.UUID, from entity.SubmissionStatus, review SubmissionReview) error
}
