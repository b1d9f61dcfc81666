package mongodb

import (
	"context"

	"hostelbites/config"
	"hostelbites/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
)

type transactionManager struct {
	client       *mongo.Client
	store        Store
	transactions bool
}

// repositoryFactory hands out repositories that share one store, and with it one session.
type repositoryFactory struct {
	store Store
}

func (f *repositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.store)
}

func (f *repositoryFactory) PaymentRepo() repository.PaymentRepository {
	return NewPaymentRepository(f.store)
}

// NewTransactionManager creates the MongoDB transaction manager. Multi-document transactions are
// only used when enabled in config, since they need a replica set.
func NewTransactionManager(client *mongo.Client, store Store, cfg *config.Config) repository.TransactionManager {
	return &transactionManager{
		client:       client,
		store:        store,
		transactions: cfg.Mongo != nil && cfg.Mongo.Transactions,
	}
}

// Execute runs fn in a session transaction when enabled, otherwise directly against the store.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if !tm.transactions || tm.client == nil {
		return fn(&repositoryFactory{store: tm.store})
	}

	session, err := tm.client.StartSession()
	if err != nil {
		return errors.Wrap(err, "failed to start MongoDB session")
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(_ mongo.SessionContext) (any, error) {
		return nil, fn(&repositoryFactory{store: &sessionStore{base: tm.store, session: session}})
	})

	return err
}
