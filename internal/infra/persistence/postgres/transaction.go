// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	domainerrors "agrinet/internal/domain/errors"
	"agrinet/internal/domain/repository"
	"agrinet/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to a single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object *gorm.Tx is also a *gorm.DB
}

func (f *gormRepositoryFactory) ProfileRepo() repository.ProfileRepository {
	return NewProfileRepository(f.tx)
}

func (f *gormRepositoryFactory) FollowRepo() repository.FollowRepository {
	return NewFollowRepository(f.tx)
}

func (f *gormRepositoryFactory) ConversationRepo() repository.ConversationRepository {
	return NewConversationRepository(f.tx)
}

func (f *gormRepositoryFactory) MessageRepo() repository.MessageRepository {
	return NewMessageRepository(f.tx)
}

func (f *gormRepositoryFactory) NotificationRepo() repository.NotificationRepository {
	return NewNotificationRepository(f.tx)
}

func (f *gormRepositoryFactory) SubmissionRepo() repository.SubmissionRepository {
	return NewSubmissionRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
// Failures to begin or commit surface as ErrTransactionFailed; errors returned by fn are passed through unchanged.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(domainerrors.ErrTransactionFailed, "begin: "+tx.Error.Error())
	}

	// A panic inside fn must not leave the transaction open.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}
		if isSerializationFailure(err) {
			return errors.Wrap(domainerrors.ErrTransactionFailed, err.Error())
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(domainerrors.ErrTransactionFailed, "commit: "+err.Error())
	}

	return nil
}
