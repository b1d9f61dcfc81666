package handler

import (
	"log/slog"
	"net/http"

	"hostelbites/internal/delivery/api/response"
	"hostelbites/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC      usecase.PaymentUsecase
	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// PaymentHandler serves payment intents and the purchase ledger
type PaymentHandler struct {
	paymentUC      usecase.PaymentUsecase
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC:      params.PaymentUC,
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// CreateIntentRequest is the body of POST /api/v1/payments/intents. Amount is in minor units.
type CreateIntentRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// PurchaseRequest is the body of POST /api/v1/payments. The buyer is the authenticated caller.
type PurchaseRequest struct {
	PackageName   string `json:"packageName" validate:"required"`
	Amount        int64  `json:"amount" validate:"gt=0"`
	PaymentMethod string `json:"paymentMethod" validate:"required"`
	TransactionID string `json:"transactionId" validate:"required"`
}

// CreateIntent creates a provider payment intent
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req CreateIntentRequest
	if err := bindAndValidate(c, &req, "Invalid payment intent input"); err != nil {
		return response.HandleAppError(c, err)
	}

	intent, err := h.paymentUC.CreateIntent(c.Request().Context(), &usecase.CreateIntentInput{
		Amount:   req.Amount,
		Currency: req.Currency,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, intent)
}

// ApplyPurchase records a completed purchase for the caller
func (h *PaymentHandler) ApplyPurchase(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req PurchaseRequest
	if err := bindAndValidate(c, &req, "Invalid purchase input"); err != nil {
		return response.HandleAppError(c, err)
	}

	record, err := h.subscriptionUC.ApplyPurchase(c.Request().Context(), &usecase.ApplyPurchaseInput{
		PackageName:   req.PackageName,
		UserEmail:     email,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if record.Created {
		status = http.StatusCreated
	}

	return response.Success(c, status, record)
}

// GetMyPayment returns the caller's ledger entry
func (h *PaymentHandler) GetMyPayment(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	payment, err := h.subscriptionUC.GetPayment(c.Request().Context(), email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, payment)
}

// ListPayments returns a page of the ledger, newest first
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	var query PageQuery
	if err := bindAndValidate(c, &query, "Invalid payment query"); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.subscriptionUC.ListPayments(c.Request().Context(), query.Skip, query.Limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}
