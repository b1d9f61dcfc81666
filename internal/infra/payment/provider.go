// Package payment creates charge intents with the configured payment provider.
package payment

import (
	"log/slog"

	"hostelbites/config"
	"hostelbites/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Provider names accepted in payment.provider.
const (
	ProviderStripe   = "stripe"
	ProviderMidtrans = "midtrans"
)

// GatewayParams holds dependencies for PaymentGateway, injected by Fx
type GatewayParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewGateway creates a PaymentGateway based on configuration
func NewGateway(params GatewayParams) (service.PaymentGateway, error) {
	cfg := params.Config.Payment
	logger := params.Logger

	switch cfg.Provider {
	case "":
		logger.Info("Payment provider not configured, intents are disabled")

		return newDisabledGateway(), nil

	case ProviderStripe:
		if cfg.Stripe.SecretKey == "" {
			return nil, errors.New("stripe secret key is required for stripe provider")
		}
		logger.Info("Using Stripe payment gateway")

		return NewStripeGateway(cfg.Stripe.SecretKey), nil

	case ProviderMidtrans:
		if cfg.Midtrans.ServerKey == "" {
			return nil, errors.New("midtrans server key is required for midtrans provider")
		}
		logger.Info("Using Midtrans payment gateway", slog.Bool("production", cfg.Midtrans.Production))

		return NewMidtransGateway(cfg.Midtrans.ServerKey, cfg.Midtrans.Production), nil

	default:
		return nil, errors.Errorf("unknown payment provider: %s", cfg.Provider)
	}
}
