package repository

import (
	"context"
	"errors"

	"hostelbites/internal/domain/entity"
)

// ErrPaymentNotFound is returned when a user has no ledger entry.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepository persists the payment ledger, keyed by user email.
type PaymentRepository interface {
	// UpsertByEmail writes the payment as a single atomic conditional write keyed by UserEmail.
	// An existing entry is overwritten. The returned record reflects the stored state.
	UpsertByEmail(ctx context.Context, payment *entity.Payment) (*entity.PaymentRecord, error)

	FindByEmail(ctx context.Context, email string) (*entity.Payment, error)

	// List returns one page of payments, newest first, and the total count.
	List(ctx context.Context, page entity.Page) ([]*entity.Payment, int64, error)
}
