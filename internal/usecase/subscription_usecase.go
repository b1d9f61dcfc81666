package usecase

import (
	"context"

	"hostelbites/internal/domain/entity"
)

// ApplyPurchaseInput describes a completed package purchase.
type ApplyPurchaseInput struct {
	PackageName   string `validate:"required"`
	UserEmail     string `validate:"required,email"`
	Amount        int64
	PaymentMethod string `validate:"required"`
	TransactionID string `validate:"required"`
}

// PaymentListOutput is one page of ledger entries.
type PaymentListOutput struct {
	Payments []*entity.Payment `json:"payments"`
	Total    int64             `json:"total"`
}

// SubscriptionUsecase links purchases to user tiers and keeps the payment ledger.
type SubscriptionUsecase interface {
	// ApplyPurchase sets the user's badge to the package and records the payment,
	// overwriting any earlier entry for the same email.
	ApplyPurchase(ctx context.Context, input *ApplyPurchaseInput) (*entity.PaymentRecord, error)

	GetPayment(ctx context.Context, email string) (*entity.Payment, error)
	ListPayments(ctx context.Context, skip, limit int64) (*PaymentListOutput, error)
}
