package postgres

import (
	"bytes"
	"context"
	"slices"

	"agrinet/internal/domain/entity"
	domainerrors "agrinet/internal/domain/errors"
	"agrinet/internal/domain/repository"
	"agrinet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (repo *profileRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateProfile
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("profile violates a check constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error) {
	var profileM model.UserProfileModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by ID")
	}

	return toProfileDomain(&profileM), nil
}

func (repo *profileRepository) FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	var profileM model.UserProfileModel
	if err := repo.db.WithContext(ctx).Where("uid = ?", uid).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by UID")
	}

	return toProfileDomain(&profileM), nil
}

func (repo *profileRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.UserProfile, error) {
	if len(ids) == 0 {
		return []*entity.UserProfile{}, nil
	}

	var profileModels []*model.UserProfileModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find profiles by IDs")
	}

	return toProfileDomains(profileModels), nil
}

func (repo *profileRepository) FindByRole(ctx context.Context, role entity.Role) ([]*entity.UserProfile, error) {
	var profileModels []*model.UserProfileModel
	if err := repo.db.WithContext(ctx).
		Where("role = ?", role.String()).
		Order("display_name ASC").
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find profiles by role")
	}

	return toProfileDomains(profileModels), nil
}

// LockByIDs takes row locks in ascending id order so two opposite follow requests cannot deadlock.
func (repo *profileRepository) LockByIDs(ctx context.Context, ids []uuid.UUID) error {
	unique := slices.Clone(ids)
	slices.SortFunc(unique, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })
	unique = slices.Compact(unique)

	var locked []uuid.UUID
	if err := repo.db.WithContext(ctx).
		Model(&model.UserProfileModel{}).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id IN ?", unique).
		Order("id").
		Pluck("id", &locked).Error; err != nil {
		return errors.Wrap(err, "failed to lock profiles")
	}

	if len(locked) != len(unique) {
		return repository.ErrProfileNotFound
	}

	return nil
}

func (repo *profileRepository) AdjustFollowCounts(ctx context.Context, followerID, followeeID uuid.UUID, delta int) error {
	if err := repo.db.WithContext(ctx).Model(&model.UserProfileModel{}).
		Where("id = ?", followerID).
		Update("following_count", gorm.Expr("GREATEST(following_count + ?, 0)", delta)).Error; err != nil {
		return errors.Wrap(err, "failed to adjust following count")
	}

	if err := repo.db.WithContext(ctx).Model(&model.UserProfileModel{}).
		Where("id = ?", followeeID).
		Update("follower_count", gorm.Expr("GREATEST(follower_count + ?, 0)", delta)).Error; err != nil {
		return errors.Wrap(err, "failed to adjust follower count")
	}

	return nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.UserProfileModel) *entity.UserProfile {
	if data == nil {
		return nil
	}

	return &entity.UserProfile{
		ID:             data.ID,
		UID:            data.UID,
		DisplayName:    data.DisplayName,
		Username:       data.Username,
		Email:          data.Email,
		PhotoURL:       data.PhotoURL,
		Role:           entity.Role(data.Role),
		Region:         data.Region,
		IsVerified:     data.IsVerified,
		Specialization: data.Specialization,
		FollowerCount:  data.FollowerCount,
		FollowingCount: data.FollowingCount,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toProfileDomains(models []*model.UserProfileModel) []*entity.UserProfile {
	profiles := make([]*entity.UserProfile, 0, len(models))
	for _, profileM := range models {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles
}

func fromProfileDomain(data *entity.UserProfile) *model.UserProfileModel {
	if data == nil {
		return nil
	}

	return &model.UserProfileModel{
		ID:             data.ID,
		UID:            data.UID,
		DisplayName:    data.DisplayName,
		Username:       data.Username,
		Email:          data.Email,
		PhotoURL:       data.PhotoURL,
		Role:           data.Role.String(),
		Region:         data.Region,
		IsVerified:     data.IsVerified,
		Specialization: data.Specialization,
		FollowerCount:  data.FollowerCount,
		FollowingCount: data.FollowingCount,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
