package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "hostelbites/internal/delivery/context"
	"hostelbites/internal/domain/entity"
	domainerrors "hostelbites/internal/domain/errors"
	"hostelbites/internal/domain/repository"
	"hostelbites/internal/domain/service"
	"hostelbites/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type subscriptionService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	packageRepo repository.PackageRepository
	paymentRepo repository.PaymentRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	PackageRepo repository.PackageRepository
	PaymentRepo repository.PaymentRepository
	Publisher   service.EventPublisher `optional:"true"`
	Logger      *slog.Logger
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		packageRepo: params.PackageRepo,
		paymentRepo: params.PaymentRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (s *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ApplyPurchase links a paid package to the user and records the payment.
//
// The user is looked up before anything is written, so an unknown email never leaves a
// payment behind. The badge update and the ledger upsert run in one transaction where the
// store supports it; if the ledger write fails the previous badge is restored.
func (s *subscriptionService) ApplyPurchase(ctx context.Context, input *usecase.ApplyPurchaseInput) (*entity.PaymentRecord, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed)
	}
	if input.Amount <= 0 {
		return nil, errors.WithStack(domainerrors.ErrInvalidAmount)
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	email := normalizeEmail(input.UserEmail)

	pkg, err := s.packageRepo.FindByName(ctx, input.PackageName)
	if err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return nil, domainerrors.ErrPackageNotFound.WrapMessage(input.PackageName)
		}

		return nil, errors.Wrap(err, "failed to find package")
	}
	if pkg.Price != input.Amount {
		s.log(ctx).Warn("Purchase amount differs from package price",
			slog.String("package", pkg.Name),
			slog.Int64("price", pkg.Price),
			slog.Int64("amount", input.Amount),
		)
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.log(ctx).Warn("Purchase for unknown user rejected", slog.String("email", email))

			return nil, domainerrors.ErrUserNotEligible.WrapMessage("purchase email is not registered")
		}

		return nil, errors.Wrap(err, "failed to find purchasing user")
	}
	previousBadge := user.Badge

	payment := &entity.Payment{
		UserEmail:     email,
		PackageName:   pkg.Name,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		TransactionID: input.TransactionID,
		PaidAt:        time.Now().UTC(),
	}

	var (
		record       *entity.PaymentRecord
		ledgerFailed bool
	)
	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		badge := pkg.Name
		if err := repoFactory.UserRepo().SetBadge(ctx, email, &badge); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotEligible.WrapMessage("user removed before badge update")
			}

			return errors.Wrap(err, "failed to set user badge")
		}

		rec, err := repoFactory.PaymentRepo().UpsertByEmail(ctx, payment)
		if err != nil {
			ledgerFailed = true

			return errors.Wrap(err, "failed to record payment")
		}
		record = rec

		return nil
	})
	if err != nil {
		if ledgerFailed {
			s.restoreBadge(ctx, email, pkg.Name, previousBadge)
		}
		s.log(ctx).Error("Failed to apply purchase",
			slog.String("email", email),
			slog.String("package", pkg.Name),
			slog.String("transaction_id", input.TransactionID),
			slog.Any("error", err),
		)

		return nil, err
	}

	s.log(ctx).Info("Purchase applied",
		slog.String("email", email),
		slog.String("package", pkg.Name),
		slog.Bool("created", record.Created),
	)

	publishEvent(ctx, s.publisher, s.log(ctx), service.EventPurchaseCompleted, &service.PurchaseCompletedData{
		Email:         email,
		PackageName:   pkg.Name,
		Amount:        input.Amount,
		TransactionID: input.TransactionID,
		Created:       record.Created,
	})

	return record, nil
}

// restoreBadge puts back the badge held before a failed purchase, but only while the user still
// holds the badge this purchase applied. A rollback or a later purchase leaves nothing to restore.
func (s *subscriptionService) restoreBadge(ctx context.Context, email, applied string, previous *string) {
	restored, err := s.userRepo.RestoreBadge(ctx, email, applied, previous)
	if err != nil {
		s.log(ctx).Error("Failed to restore badge after ledger failure",
			slog.String("email", email),
			slog.Any("error", err),
		)

		return
	}
	if !restored {
		s.log(ctx).Info("Badge not restored, it no longer holds the failed purchase",
			slog.String("email", email),
			slog.String("package", applied),
		)
	}
}

// GetPayment returns the current ledger entry for a user
func (s *subscriptionService) GetPayment(ctx context.Context, email string) (*entity.Payment, error) {
	email, err := requireEmail(email)
	if err != nil {
		return nil, err
	}

	payment, err := s.paymentRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, errors.WithStack(domainerrors.ErrPaymentNotFound)
		}

		return nil, errors.Wrap(err, "failed to find payment")
	}

	return payment, nil
}

// ListPayments returns one page of the ledger, newest first
func (s *subscriptionService) ListPayments(ctx context.Context, skip, limit int64) (*usecase.PaymentListOutput, error) {
	page, err := newPage(nil, skip, limit)
	if err != nil {
		return nil, err
	}

	payments, total, err := s.paymentRepo.List(ctx, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return &usecase.PaymentListOutput{Payments: payments, Total: total}, nil
}
