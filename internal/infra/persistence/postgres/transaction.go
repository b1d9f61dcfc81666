package postgres

import (
	"context"

	"hostelbites/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type transactionManager struct {
	db *gorm.DB
}

// repositoryFactory builds repositories bound to one *gorm.DB transaction handle.
type repositoryFactory struct {
	tx *gorm.DB
}

func (f *repositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *repositoryFactory) PaymentRepo() repository.PaymentRepository {
	return NewPaymentRepository(f.tx)
}

// NewTransactionManager creates a TransactionManager that runs each callback in one database transaction.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &transactionManager{db: db}
}

// Execute commits when fn succeeds and rolls back when it returns an error or panics.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(&repositoryFactory{tx: tx})

		return fnErr
	})
	if err == nil {
		return nil
	}
	if fnErr != nil {
		// Domain errors from the callback pass through unwrapped.
		return fnErr
	}

	return errors.Wrap(err, "failed to run transaction")
}
