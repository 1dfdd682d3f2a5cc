package postgres

import (
	"context"
	"time"

	domainerrors "agrinet/internal/domain/errors"
	"agrinet/internal/domain/repository"
	"agrinet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository is the constructor for followRepository.
func NewFollowRepository(db *gorm.DB) repository.FollowRepository {
	return &followRepository{db: db}
}

// Create inserts the edge with ON CONFLICT DO NOTHING; RowsAffected tells whether it is new.
func (repo *followRepository) Create(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	edge := &model.FollowModel{
		FollowerID: followerID,
		FolloweeID: followeeID,
		CreatedAt:  time.Now(),
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(edge)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return false, repository.ErrProfileNotFound
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create follow edge")
	}

	return result.RowsAffected > 0, nil
}

func (repo *followRepository) Delete(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&model.FollowModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete follow edge")
	}

	return result.RowsAffected > 0, nil
}

func (repo *followRepository) Exists(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.FollowModel{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check follow edge")
	}

	return count > 0, nil
}

func (repo *followRepository) FindFollowerIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0)
	if err := repo.db.WithContext(ctx).
		Model(&model.FollowModel{}).
		Where("followee_id = ?", userID).
		Order("created_at DESC").
		Pluck("follower_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find followers")
	}

	return ids, nil
}

func (repo *followRepository) FindFollowingIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0)
	if err := repo.db.WithContext(ctx).
		Model(&model.FollowModel{}).
		Where("follower_id = ?", userID).
		Order("created_at DESC").
		Pluck("followee_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find following")
	}

	return ids, nil
}
