package repository

import "context"

// TransactionManager defines the interface for running several repository calls as one unit.
// This allows the use case layer to handle transactions without depending on a specific store driver.
type TransactionManager interface {
	// Execute runs a function within a transaction where the store supports one.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	PaymentRepo() PaymentRepository
}
