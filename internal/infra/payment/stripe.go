package payment

import (
	"context"

	"hostelbites/internal/domain/entity"
	domainerrors "hostelbites/internal/domain/errors"
	"hostelbites/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

// paymentIntentCreator is the part of the Stripe PaymentIntents client the gateway uses.
type paymentIntentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

type stripeGateway struct {
	intents paymentIntentCreator
}

// NewStripeGateway creates a gateway backed by Stripe PaymentIntents.
func NewStripeGateway(secretKey string) service.PaymentGateway {
	sc := client.New(secretKey, nil)

	return &stripeGateway{intents: sc.PaymentIntents}
}

func (g *stripeGateway) Name() string {
	return ProviderStripe
}

func (g *stripeGateway) CreateIntent(ctx context.Context, amount int64, currency string) (*entity.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	intent, err := g.intents.New(params)
	if err != nil {
		message := err.Error()
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
			message = stripeErr.Msg
		}

		return nil, domainerrors.NewGatewayError(ProviderStripe, message, err)
	}

	return &entity.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Provider:     ProviderStripe,
		Amount:       amount,
		Currency:     currency,
	}, nil
}
