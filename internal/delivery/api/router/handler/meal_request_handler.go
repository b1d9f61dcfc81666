package handler

import (
	"log/slog"
	"net/http"

	"hostelbites/internal/delivery/api/response"
	"hostelbites/internal/domain/entity"
	"hostelbites/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MealRequestHandlerParams holds dependencies for MealRequestHandler, injected by Fx.
type MealRequestHandlerParams struct {
	fx.In

	MealRequestUC usecase.MealRequestUsecase
	Logger        *slog.Logger
}

// MealRequestHandler serves meal requests for residents and administrators
type MealRequestHandler struct {
	mealRequestUC usecase.MealRequestUsecase
	logger        *slog.Logger
}

// NewMealRequestHandler is the constructor for MealRequestHandler
func NewMealRequestHandler(params MealRequestHandlerParams) *MealRequestHandler {
	return &MealRequestHandler{
		mealRequestUC: params.MealRequestUC,
		logger:        params.Logger,
	}
}

// SubmitMealRequestRequest is the body of POST /api/v1/meal-requests.
type SubmitMealRequestRequest struct {
	MealID   string `json:"mealId" validate:"required"`
	UserName string `json:"userName" validate:"max=100"`
}

// ListMealRequestsQuery filters GET /api/v1/admin/meal-requests.
type ListMealRequestsQuery struct {
	PageQuery
	Status string `query:"status" validate:"omitempty,oneof=pending served cancelled"`
	Search string `query:"search"`
}

// UpdateStatusRequest is the body of PATCH /api/v1/admin/meal-requests/:id.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending served cancelled"`
}

// ScanTicketRequest carries the decoded content of a ticket QR code.
type ScanTicketRequest struct {
	QRData string `json:"qrData" validate:"required"`
}

// Submit records a meal request for the caller
func (h *MealRequestHandler) Submit(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SubmitMealRequestRequest
	if err := bindAndValidate(c, &req, "Invalid meal request input"); err != nil {
		return response.HandleAppError(c, err)
	}

	mealRequest, err := h.mealRequestUC.SubmitRequest(c.Request().Context(), &usecase.SubmitMealRequestInput{
		MealID:    req.MealID,
		UserEmail: email,
		UserName:  req.UserName,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, mealRequest)
}

// ListMine returns the caller's requests joined with current meal data
func (h *MealRequestHandler) ListMine(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views, err := h.mealRequestUC.ListRequestsForUser(c.Request().Context(), email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, views)
}

// Cancel deletes one of the caller's pending requests
func (h *MealRequestHandler) Cancel(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.mealRequestUC.CancelRequest(c.Request().Context(), c.Param("id"), email); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// TicketQR renders the pickup ticket of one of the caller's requests as PNG
func (h *MealRequestHandler) TicketQR(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.mealRequestUC.GenerateTicketQR(c.Request().Context(), c.Param("id"), email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}

// List returns a page of all requests
func (h *MealRequestHandler) List(c echo.Context) error {
	var query ListMealRequestsQuery
	if err := bindAndValidate(c, &query, "Invalid meal request query"); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.mealRequestUC.ListRequests(c.Request().Context(), &usecase.ListMealRequestsInput{
		Status: query.Status,
		Search: query.Search,
		Skip:   query.Skip,
		Limit:  query.Limit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// UpdateStatus moves a request to a new status
func (h *MealRequestHandler) UpdateStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := bindAndValidate(c, &req, "Invalid status input"); err != nil {
		return response.HandleAppError(c, err)
	}

	mealRequest, err := h.mealRequestUC.UpdateStatus(c.Request().Context(), c.Param("id"), entity.MealRequestStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mealRequest)
}

// Scan serves the request encoded in a scanned ticket
func (h *MealRequestHandler) Scan(c echo.Context) error {
	var req ScanTicketRequest
	if err := bindAndValidate(c, &req, "Invalid ticket input"); err != nil {
		return response.HandleAppError(c, err)
	}

	mealRequest, err := h.mealRequestUC.ServeByTicket(c.Request().Context(), req.QRData)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Debug("Ticket scanned", slog.String("request_id", mealRequest.ID))

	return response.Success(c, http.StatusOK, mealRequest)
}
