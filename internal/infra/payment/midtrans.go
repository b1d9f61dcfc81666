package payment

import (
	"context"

	"hostelbites/internal/domain/entity"
	domainerrors "hostelbites/internal/domain/errors"
	"hostelbites/internal/domain/service"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// Snap charges in rupiah only.
const midtransCurrency = "idr"

// snapTransactionCreator is the part of the Snap client the gateway uses.
type snapTransactionCreator interface {
	CreateTransaction(req *snap.Request) (*snap.Response, *midtrans.Error)
}

type midtransGateway struct {
	snap snapTransactionCreator
}

// NewMidtransGateway creates a gateway backed by Midtrans Snap. The Snap token is returned as the client secret.
func NewMidtransGateway(serverKey string, production bool) service.PaymentGateway {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}

	var s snap.Client
	s.New(serverKey, env)

	return &midtransGateway{snap: &s}
}

func (g *midtransGateway) Name() string {
	return ProviderMidtrans
}

func (g *midtransGateway) CreateIntent(_ context.Context, amount int64, currency string) (*entity.PaymentIntent, error) {
	if currency != midtransCurrency {
		return nil, domainerrors.NewGatewayError(ProviderMidtrans, "unsupported currency "+currency, nil)
	}

	orderID := uuid.NewString()
	resp, mErr := g.snap.CreateTransaction(&snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount,
		},
	})
	if mErr != nil {
		return nil, domainerrors.NewGatewayError(ProviderMidtrans, mErr.Message, mErr)
	}

	return &entity.PaymentIntent{
		ID:           orderID,
		ClientSecret: resp.Token,
		Provider:     ProviderMidtrans,
		Amount:       amount,
		Currency:     currency,
	}, nil
}
