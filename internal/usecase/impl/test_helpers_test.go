package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"hostelbites/config"
	"hostelbites/internal/domain/repository"
	mockRepo "hostelbites/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(scope string) *config.Config {
	return &config.Config{
		Payment: config.PaymentConfig{Currency: "usd"},
		MealRequest: config.MealRequestConfig{
			DedupeScope: scope,
		},
		Catalog: config.CatalogConfig{
			DefaultPageSize: 20,
			MealPageSize:    3,
			MaxPageSize:     100,
		},
	}
}

// expectTransaction runs the transaction body against a factory backed by the given repositories.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, userRepo repository.UserRepository, paymentRepo repository.PaymentRepository) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().UserRepo().Return(userRepo).Maybe()
			factory.EXPECT().PaymentRepo().Return(paymentRepo).Maybe()

			return fn(factory)
		}).
		Once()
}

func strPtr(s string) *string {
	return &s
}
