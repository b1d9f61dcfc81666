package usecase

import (
	"context"

	"hostelbites/internal/domain/entity"
)

// CreateIntentInput requests a charge intent. Amount is in minor units and must be a positive integer.
type CreateIntentInput struct {
	Amount   float64
	Currency string
}

// PaymentUsecase issues payment intents through the configured gateway.
type PaymentUsecase interface {
	CreateIntent(ctx context.Context, input *CreateIntentInput) (*entity.PaymentIntent, error)
}
