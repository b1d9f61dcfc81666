package service

import (
	"context"

	"hostelbites/internal/domain/entity"
)

// PaymentGateway creates charge intents with an external payment provider.
// Calls are not idempotent: two calls create two independent intents.
type PaymentGateway interface {
	// CreateIntent creates an intent for amount in minor currency units.
	// Provider failures are returned as *errors.GatewayError.
	CreateIntent(ctx context.Context, amount int64, currency string) (*entity.PaymentIntent, error)

	// Name returns the provider name.
	Name() string
}
