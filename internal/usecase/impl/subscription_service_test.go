package impl

import (
	"context"
	"testing"

	"hostelbites/internal/domain/entity"
	domainerrors "hostelbites/internal/domain/errors"
	"hostelbites/internal/domain/repository"
	"hostelbites/internal/domain/service"
	mockRepo "hostelbites/internal/mocks/repository"
	mockSvc "hostelbites/internal/mocks/service"
	"hostelbites/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type subscriptionServiceFixtures struct {
	service     usecase.SubscriptionUsecase
	txManager   *mockRepo.MockTransactionManager
	userRepo    *mockRepo.MockUserRepository
	packageRepo *mockRepo.MockPackageRepository
	paymentRepo *mockRepo.MockPaymentRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestSubscriptionService(t *testing.T) subscriptionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	packageRepo := mockRepo.NewMockPackageRepository(t)
	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewSubscriptionService(SubscriptionServiceParams{
		TxManager:   txManager,
		UserRepo:    userRepo,
		PackageRepo: packageRepo,
		PaymentRepo: paymentRepo,
		Publisher:   publisher,
		Logger:      newDiscardLogger(),
	})

	return subscriptionServiceFixtures{
		service:     svc,
		txManager:   txManager,
		userRepo:    userRepo,
		packageRepo: packageRepo,
		paymentRepo: paymentRepo,
		publisher:   publisher,
	}
}

func goldPurchase(txID string) *usecase.ApplyPurchaseInput {
	return &usecase.ApplyPurchaseInput{
		PackageName:   "Gold",
		UserEmail:     "Alice@Example.com ",
		Amount:        500,
		PaymentMethod: "card",
		TransactionID: txID,
	}
}

func TestSubscriptionService_ApplyPurchase_Created(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()

	fx.packageRepo.EXPECT().FindByName(ctx, "Gold").Return(&entity.Package{Name: "Gold", Price: 500}, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(&entity.User{Email: "alice@example.com"}, nil)
	expectTransaction(t, fx.txManager, fx.userRepo, fx.paymentRepo)
	fx.userRepo.EXPECT().
		SetBadge(ctx, "alice@example.com", mock.MatchedBy(func(b *string) bool { return b != nil && *b == "Gold" })).
		Return(nil)
	fx.paymentRepo.EXPECT().
		UpsertByEmail(ctx, mock.MatchedBy(func(p *entity.Payment) bool {
			return p.UserEmail == "alice@example.com" && p.PackageName == "Gold" && p.Amount == 500 && p.TransactionID == "tx1"
		})).
		Return(&entity.PaymentRecord{Payment: &entity.Payment{ID: "p1", UserEmail: "alice@example.com", TransactionID: "tx1"}, Created: true}, nil)

	var published *service.Event
	fx.publisher.EXPECT().Publish(ctx, mock.AnythingOfType("*service.Event")).
		Run(func(_ context.Context, event *service.Event) { published = event }).
		Return(nil)

	record, err := fx.service.ApplyPurchase(ctx, goldPurchase("tx1"))
	require.NoError(t, err)
	assert.True(t, record.Created)
	assert.Equal(t, "p1", record.Payment.ID)

	require.NotNil(t, published)
	assert.Equal(t, service.EventPurchaseCompleted, published.Type)
	data, ok := published.Data.(*service.PurchaseCompletedData)
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", data.Email)
	assert.True(t, data.Created)
}

func TestSubscriptionService_ApplyPurchase_SecondPurchaseOverwritesLedger(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()

	ledger := map[string]*entity.Payment{}

	fx.packageRepo.EXPECT().FindByName(ctx, "Gold").Return(&entity.Package{Name: "Gold", Price: 500}, nil).Twice()
	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(&entity.User{Email: "alice@example.com"}, nil).Twice()
	expectTransaction(t, fx.txManager, fx.userRepo, fx.paymentRepo)
	expectTransaction(t, fx.txManager, fx.userRepo, fx.paymentRepo)
	fx.userRepo.EXPECT().SetBadge(ctx, "alice@example.com", mock.Anything).Return(nil).Twice()
	fx.paymentRepo.EXPECT().UpsertByEmail(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, p *entity.Payment) (*entity.PaymentRecord, error) {
			_, existed := ledger[p.UserEmail]
			stored := *p
			stored.ID = "p1"
			ledger[p.UserEmail] = &stored

			return &entity.PaymentRecord{Payment: &stored, Created: !existed}, nil
		}).
		Twice()
	fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(nil).Twice()

	first, err := fx.service.ApplyPurchase(ctx, goldPurchase("tx1"))
	require.NoError(t, err)
	assert.True(t, first.Created)

	second, err := fx.service.ApplyPurchase(ctx, goldPurchase("tx2"))
	require.NoError(t, err)
	assert.False(t, second.Created)

	require.Len(t, ledger, 1)
	assert.Equal(t, "tx2", ledger["alice@example.com"].TransactionID)
}

func TestSubscriptionService_ApplyPurchase_UnknownUserWritesNothing(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()

	fx.packageRepo.EXPECT().FindByName(ctx, "Gold").Return(&entity.Package{Name: "Gold", Price: 500}, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(nil, repository.ErrUserNotFound)

	record, err := fx.service.ApplyPurchase(ctx, goldPurchase("tx1"))
	assert.Nil(t, record)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotEligible)

	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	fx.paymentRepo.AssertNotCalled(t, "UpsertByEmail", mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestSubscriptionService_ApplyPurchase_LedgerFailureRestoresBadge(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()

	fx.packageRepo.EXPECT().FindByName(ctx, "Gold").Return(&entity.Package{Name: "Gold", Price: 500}, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").
		Return(&entity.User{Email: "alice@example.com", Badge: strPtr("Silver")}, nil)
	expectTransaction(t, fx.txManager, fx.userRepo, fx.paymentRepo)
	fx.userRepo.EXPECT().
		SetBadge(ctx, "alice@example.com", mock.MatchedBy(func(b *string) bool { return b != nil && *b == "Gold" })).
		Return(nil).
		Once()
	fx.paymentRepo.EXPECT().UpsertByEmail(ctx, mock.Anything).Return(nil, errors.New("write conflict"))
	fx.userRepo.EXPECT().
		RestoreBadge(ctx, "alice@example.com", "Gold", mock.MatchedBy(func(b *string) bool { return b != nil && *b == "Silver" })).
		Return(true, nil).
		Once()

	record, err := fx.service.ApplyPurchase(ctx, goldPurchase("tx1"))
	assert.Nil(t, record)
	assert.Error(t, err)
	fx.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	fx.userRepo.AssertNumberOfCalls(t, "SetBadge", 1)
}

func TestSubscriptionService_ApplyPurchase_LedgerFailureKeepsNewerBadge(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()

	// Another purchase moved the user to Platinum before the restore ran.
	badges := map[string]string{}

	fx.packageRepo.EXPECT().FindByName(ctx, "Gold").Return(&entity.Package{Name: "Gold", Price: 500}, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").
		Return(&entity.User{Email: "alice@example.com", Badge: strPtr("Silver")}, nil)
	expectTransaction(t, fx.txManager, fx.userRepo, fx.paymentRepo)
	fx.userRepo.EXPECT().SetBadge(ctx, "alice@example.com", mock.Anything).
		RunAndReturn(func(_ context.Context, email string, _ *string) error {
			badges[email] = "Platinum"

			return nil
		})
	fx.paymentRepo.EXPECT().UpsertByEmail(ctx, mock.Anything).Return(nil, errors.New("write conflict"))
	fx.userRepo.EXPECT().RestoreBadge(ctx, "alice@example.com", "Gold", mock.Anything).
		RunAndReturn(func(_ context.Context, email, current string, badge *string) (bool, error) {
			if badges[email] != current {
				return false, nil
			}
			badges[email] = *badge

			return true, nil
		})

	_, err := fx.service.ApplyPurchase(ctx, goldPurchase("tx1"))
	assert.Error(t, err)
	assert.Equal(t, "Platinum", badges["alice@example.com"])
}

func TestSubscriptionService_ApplyPurchase_BadgeFailureSkipsLedger(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()

	fx.packageRepo.EXPECT().FindByName(ctx, "Gold").Return(&entity.Package{Name: "Gold", Price: 500}, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(&entity.User{Email: "alice@example.com"}, nil)
	expectTransaction(t, fx.txManager, fx.userRepo, fx.paymentRepo)
	fx.userRepo.EXPECT().SetBadge(ctx, "alice@example.com", mock.Anything).Return(repository.ErrUserNotFound).Once()

	_, err := fx.service.ApplyPurchase(ctx, goldPurchase("tx1"))
	assert.ErrorIs(t, err, domainerrors.ErrUserNotEligible)
	fx.paymentRepo.AssertNotCalled(t, "UpsertByEmail", mock.Anything, mock.Anything)
}

func TestSubscriptionService_ApplyPurchase_PriceMismatchIsAccepted(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()

	input := goldPurchase("tx1")
	input.Amount = 450

	fx.packageRepo.EXPECT().FindByName(ctx, "Gold").Return(&entity.Package{Name: "Gold", Price: 500}, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(&entity.User{Email: "alice@example.com"}, nil)
	expectTransaction(t, fx.txManager, fx.userRepo, fx.paymentRepo)
	fx.userRepo.EXPECT().SetBadge(ctx, "alice@example.com", mock.Anything).Return(nil)
	fx.paymentRepo.EXPECT().
		UpsertByEmail(ctx, mock.MatchedBy(func(p *entity.Payment) bool { return p.Amount == 450 })).
		Return(&entity.PaymentRecord{Payment: &entity.Payment{Amount: 450}, Created: true}, nil)
	fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(errors.New("broker down"))

	record, err := fx.service.ApplyPurchase(ctx, input)
	require.NoError(t, err)
	assert.True(t, record.Created)
}

func TestSubscriptionService_ApplyPurchase_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *usecase.ApplyPurchaseInput)
		wantErr error
	}{
		{
			name:    "zero amount",
			mutate:  func(in *usecase.ApplyPurchaseInput) { in.Amount = 0 },
			wantErr: domainerrors.ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			mutate:  func(in *usecase.ApplyPurchaseInput) { in.Amount = -10 },
			wantErr: domainerrors.ErrInvalidAmount,
		},
		{
			name:    "missing transaction id",
			mutate:  func(in *usecase.ApplyPurchaseInput) { in.TransactionID = "" },
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "malformed email",
			mutate:  func(in *usecase.ApplyPurchaseInput) { in.UserEmail = "not-an-email" },
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSubscriptionService(t)

			input := goldPurchase("tx1")
			tt.mutate(input)

			_, err := fx.service.ApplyPurchase(context.Background(), input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSubscriptionService_ApplyPurchase_UnknownPackage(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()

	fx.packageRepo.EXPECT().FindByName(ctx, "Gold").Return(nil, repository.ErrPackageNotFound)

	_, err := fx.service.ApplyPurchase(ctx, goldPurchase("tx1"))
	assert.ErrorIs(t, err, domainerrors.ErrPackageNotFound)
}

func TestSubscriptionService_GetPayment(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()

	fx.paymentRepo.EXPECT().FindByEmail(ctx, "bob@example.com").Return(nil, repository.ErrPaymentNotFound)

	_, err := fx.service.GetPayment(ctx, "BOB@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrPaymentNotFound)
}

func TestSubscriptionService_ListPayments_ClampsLimit(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()

	fx.paymentRepo.EXPECT().List(ctx, entity.Page{Skip: 5, Limit: 100}).
		Return([]*entity.Payment{{ID: "p1"}}, int64(6), nil)

	out, err := fx.service.ListPayments(ctx, 5, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(6), out.Total)
	assert.Len(t, out.Payments, 1)
}
