package payment

import (
	"context"

	"hostelbites/internal/domain/entity"
	domainerrors "hostelbites/internal/domain/errors"
	"hostelbites/internal/domain/service"
)

const providerDisabled = "disabled"

type disabledGateway struct{}

func newDisabledGateway() service.PaymentGateway {
	return disabledGateway{}
}

func (disabledGateway) CreateIntent(context.Context, int64, string) (*entity.PaymentIntent, error) {
	return nil, domainerrors.NewGatewayError(providerDisabled, "no payment provider is configured", nil)
}

func (disabledGateway) Name() string {
	return providerDisabled
}
