package payment

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"hostelbites/config"
	domainerrors "hostelbites/internal/domain/errors"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v81"
)

type fakeIntents struct {
	params []*stripe.PaymentIntentParams
	err    error
}

func (f *fakeIntents) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	f.params = append(f.params, params)
	if f.err != nil {
		return nil, f.err
	}

	return &stripe.PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret_abc"}, nil
}

type fakeSnap struct {
	requests []*snap.Request
	err      *midtrans.Error
}

func (f *fakeSnap) CreateTransaction(req *snap.Request) (*snap.Response, *midtrans.Error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}

	return &snap.Response{Token: "snap-token", RedirectURL: "https://app.sandbox.midtrans.com/snap/v2/vtweb/snap-token"}, nil
}

func TestStripeGateway_CreateIntent(t *testing.T) {
	intents := &fakeIntents{}
	gateway := &stripeGateway{intents: intents}
	ctx := context.Background()

	intent, err := gateway.CreateIntent(ctx, 2500, "usd")

	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret_abc", intent.ClientSecret)
	assert.Equal(t, ProviderStripe, intent.Provider)
	assert.Equal(t, int64(2500), intent.Amount)

	require.Len(t, intents.params, 1)
	params := intents.params[0]
	assert.Equal(t, int64(2500), *params.Amount)
	assert.Equal(t, "usd", *params.Currency)
	assert.True(t, *params.AutomaticPaymentMethods.Enabled)
	assert.Equal(t, ctx, params.Context)
}

func TestStripeGateway_ProviderMessagePassedThrough(t *testing.T) {
	gateway := &stripeGateway{intents: &fakeIntents{
		err: &stripe.Error{Msg: "Amount must be at least $0.50 usd"},
	}}

	_, err := gateway.CreateIntent(context.Background(), 10, "usd")

	var gatewayErr *domainerrors.GatewayError
	require.ErrorAs(t, err, &gatewayErr)
	assert.Equal(t, "Amount must be at least $0.50 usd", gatewayErr.Message())
	assert.Equal(t, ProviderStripe, gatewayErr.Provider())
}

func TestStripeGateway_TransportError(t *testing.T) {
	gateway := &stripeGateway{intents: &fakeIntents{err: errors.New("dial tcp: timeout")}}

	_, err := gateway.CreateIntent(context.Background(), 500, "usd")

	var gatewayErr *domainerrors.GatewayError
	require.ErrorAs(t, err, &gatewayErr)
	assert.Equal(t, "dial tcp: timeout", gatewayErr.Message())
}

func TestMidtransGateway_CreateIntent(t *testing.T) {
	client := &fakeSnap{}
	gateway := &midtransGateway{snap: client}

	intent, err := gateway.CreateIntent(context.Background(), 150000, "idr")

	require.NoError(t, err)
	assert.Equal(t, "snap-token", intent.ClientSecret)
	assert.Equal(t, ProviderMidtrans, intent.Provider)

	require.Len(t, client.requests, 1)
	assert.Equal(t, int64(150000), client.requests[0].TransactionDetails.GrossAmt)
	assert.Equal(t, intent.ID, client.requests[0].TransactionDetails.OrderID)
}

func TestMidtransGateway_EachIntentHasOwnOrder(t *testing.T) {
	client := &fakeSnap{}
	gateway := &midtransGateway{snap: client}

	first, err := gateway.CreateIntent(context.Background(), 1000, "idr")
	require.NoError(t, err)
	second, err := gateway.CreateIntent(context.Background(), 1000, "idr")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestMidtransGateway_Errors(t *testing.T) {
	t.Run("unsupported currency", func(t *testing.T) {
		client := &fakeSnap{}
		gateway := &midtransGateway{snap: client}

		_, err := gateway.CreateIntent(context.Background(), 1000, "usd")

		var gatewayErr *domainerrors.GatewayError
		require.ErrorAs(t, err, &gatewayErr)
		assert.Empty(t, client.requests)
	})

	t.Run("provider rejection", func(t *testing.T) {
		gateway := &midtransGateway{snap: &fakeSnap{
			err: &midtrans.Error{Message: "transaction_details.gross_amount is required", StatusCode: 400},
		}}

		_, err := gateway.CreateIntent(context.Background(), 1000, "idr")

		var gatewayErr *domainerrors.GatewayError
		require.ErrorAs(t, err, &gatewayErr)
		assert.Equal(t, "transaction_details.gross_amount is required", gatewayErr.Message())
	})
}

func TestDisabledGateway(t *testing.T) {
	gateway := newDisabledGateway()

	_, err := gateway.CreateIntent(context.Background(), 100, "usd")

	var gatewayErr *domainerrors.GatewayError
	require.ErrorAs(t, err, &gatewayErr)
	assert.Equal(t, "disabled", gateway.Name())
}

func TestNewGateway(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name     string
		mutate   func(cfg *config.Config)
		wantName string
		wantErr  bool
	}{
		{name: "disabled", mutate: func(*config.Config) {}, wantName: "disabled"},
		{
			name: "stripe",
			mutate: func(cfg *config.Config) {
				cfg.Payment.Provider = ProviderStripe
				cfg.Payment.Stripe.SecretKey = "sk_test_123"
			},
			wantName: ProviderStripe,
		},
		{
			name:    "stripe without key",
			mutate:  func(cfg *config.Config) { cfg.Payment.Provider = ProviderStripe },
			wantErr: true,
		},
		{
			name: "midtrans",
			mutate: func(cfg *config.Config) {
				cfg.Payment.Provider = ProviderMidtrans
				cfg.Payment.Midtrans.ServerKey = "SB-Mid-server-123"
			},
			wantName: ProviderMidtrans,
		},
		{
			name:    "unknown",
			mutate:  func(cfg *config.Config) { cfg.Payment.Provider = "paypal" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			tt.mutate(cfg)

			gateway, err := NewGateway(GatewayParams{Config: cfg, Logger: logger})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, gateway.Name())
		})
	}
}
