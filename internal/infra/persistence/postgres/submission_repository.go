package postgres

import (
	"context"
	"encoding/json"

	"agrinet/internal/domain/entity"
	domainerrors "agrinet/internal/domain/errors"
	"agrinet/internal/domain/repository"
	"agrinet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type submissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository is the constructor for submissionRepository.
func NewSubmissionRepository(db *gorm.DB) repository.SubmissionRepository {
	return &submissionRepository{db: db}
}

func (repo *submissionRepository) Create(ctx context.Context, submission *entity.DiagnosisSubmission) error {
	submissionM := fromSubmissionDomain(submission)

	if err := repo.db.WithContext(ctx).Create(submissionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProfileNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("submission violates a check constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create submission")
	}

	submission.ID = submissionM.ID
	submission.SubmittedAt = submissionM.SubmittedAt

	return nil
}

func (repo *submissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DiagnosisSubmission, error) {
	var submissionM model.DiagnosisSubmissionModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&submissionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubmissionNotFound
		}

		return nil, errors.Wrap(err, "failed to find submission by ID")
	}

	return toSubmissionDomain(&submissionM), nil
}

func (repo *submissionRepository) FindAll(ctx context.Context, status *entity.SubmissionStatus, limit, offset int) ([]*entity.DiagnosisSubmission, error) {
	query := repo.db.WithContext(ctx).Model(&model.DiagnosisSubmissionModel{})
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var submissionModels []*model.DiagnosisSubmissionModel
	if err := query.
		Order("submitted_at DESC").
		Order("id DESC").
		Find(&submissionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list submissions")
	}

	return toSubmissionDomains(submissionModels), nil
}

func (repo *submissionRepository) FindByFarmer(ctx context.Context, farmerID uuid.UUID) ([]*entity.DiagnosisSubmission, error) {
	var submissionModels []*model.DiagnosisSubmissionModel
	if err := repo.db.WithContext(ctx).
		Where("farmer_id = ?", farmerID).
		Order("submitted_at DESC").
		Order("id DESC").
		Find(&submissionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find submissions by farmer")
	}

	return toSubmissionDomains(submissionModels), nil
}

// ApplyReview is a compare-and-set on status. Zero affected rows means either the
// submission is gone or another reviewer already moved it.
func (repo *submissionRepository) ApplyReview(ctx context.Context, id uuid.UUID, from entity.SubmissionStatus, review repository.SubmissionReview) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DiagnosisSubmissionModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]any{
			"status":          string(review.Status),
			"expert_feedback": review.Feedback,
			"reviewed_by":     review.ReviewedBy,
			"reviewed_at":     review.ReviewedAt,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid submission status")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to apply review")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.DiagnosisSubmissionModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check submission")
	}
	if count == 0 {
		return repository.ErrSubmissionNotFound
	}

	return repository.ErrSubmissionStatusConflict
}

// --- Mapper Functions ---

func toSubmissionDomain(data *model.DiagnosisSubmissionModel) *entity.DiagnosisSubmission {
	if data == nil {
		return nil
	}

	return &entity.DiagnosisSubmission{
		ID:             data.ID,
		FarmerID:       data.FarmerID,
		FarmerName:     data.FarmerName,
		Diagnosis:      json.RawMessage(data.Diagnosis),
		ImageData:      data.ImageData,
		Status:         entity.SubmissionStatus(data.Status),
		ExpertFeedback: data.ExpertFeedback,
		ReviewedBy:     data.ReviewedBy,
		SubmittedAt:    data.SubmittedAt,
		ReviewedAt:     data.ReviewedAt,
	}
}

func toSubmissionDomains(models []*model.DiagnosisSubmissionModel) []*entity.DiagnosisSubmission {
	submissions := make([]*entity.DiagnosisSubmission, 0, len(models))
	for _, submissionM := range models {
		submissions = append(submissions, toSubmissionDomain(submissionM))
	}

	return submissions
}

func fromSubmissionDomain(data *entity.DiagnosisSubmission) *model.DiagnosisSubmissionModel {
	if data == nil {
		return nil
	}

	diagnosis := datatypes.JSON(data.Diagnosis)
	if len(diagnosis) == 0 {
		diagnosis = datatypes.JSON("{}")
	}

	return &model.DiagnosisSubmissionModel{
		ID:             data.ID,
		FarmerID:       data.FarmerID,
		FarmerName:     data.FarmerName,
		Diagnosis:      diagnosis,
		ImageData:      data.ImageData,
		Status:         string(data.Status),
		ExpertFeedback: data.ExpertFeedback,
		ReviewedBy:     data.ReviewedBy,
		SubmittedAt:    data.SubmittedAt,
		ReviewedAt:     data.ReviewedAt,
	}
}
