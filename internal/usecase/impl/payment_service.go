package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"hostelbites/config"
	deliverycontext "hostelbites/internal/delivery/context"
	"hostelbites/internal/domain/entity"
	domainerrors "hostelbites/internal/domain/errors"
	"hostelbites/internal/domain/service"
	"hostelbites/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxIntentAmount keeps amounts inside the range a float64 represents exactly.
const maxIntentAmount = 1 << 53

type paymentService struct {
	gateway         service.PaymentGateway
	defaultCurrency string
	logger          *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	Gateway service.PaymentGateway
	Config  *config.Config
	Logger  *slog.Logger
}

// NewPaymentService creates a new payment intent service
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	currency := "usd"
	if params.Config != nil && params.Config.Payment.Currency != "" {
		currency = params.Config.Payment.Currency
	}

	return &paymentService{
		gateway:         params.Gateway,
		defaultCurrency: strings.ToLower(currency),
		logger:          params.Logger,
	}
}

func (s *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateIntent validates the amount and asks the gateway for a new intent. Each call creates a new intent.
func (s *paymentService) CreateIntent(ctx context.Context, input *usecase.CreateIntentInput) (*entity.PaymentIntent, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidAmount)
	}

	amount := input.Amount
	if math.IsNaN(amount) || amount <= 0 || amount != math.Trunc(amount) || amount >= maxIntentAmount {
		return nil, errors.WithStack(domainerrors.ErrInvalidAmount)
	}

	currency := strings.ToLower(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = s.defaultCurrency
	}
	if err := inputValidator.Var(strings.ToUpper(currency), "iso4217"); err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("currency must be an ISO 4217 code"))
	}

	intent, err := s.gateway.CreateIntent(ctx, int64(amount), currency)
	if err != nil {
		s.log(ctx).Warn("Payment gateway rejected intent",
			slog.String("provider", s.gateway.Name()),
			slog.Int64("amount", int64(amount)),
			slog.String("currency", currency),
			slog.Any("error", err),
		)

		var gatewayErr *domainerrors.GatewayError
		if errors.As(err, &gatewayErr) {
			return nil, err
		}

		return nil, domainerrors.NewGatewayError(s.gateway.Name(), err.Error(), err)
	}

	s.log(ctx).Debug("Payment intent created",
		slog.String("provider", intent.Provider),
		slog.String("intent_id", intent.ID),
	)

	return intent, nil
}
