package handler

import (
	"log/slog"
	"net/http"

	"hostelbites/internal/delivery/api/response"
	"hostelbites/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler serves likes and reviews
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// AddReviewRequest is the body of POST /api/v1/meals/:id/reviews.
type AddReviewRequest struct {
	AuthorName string `json:"authorName" validate:"max=100"`
	Text       string `json:"text" validate:"required,max=2000"`
	Rating     int    `json:"rating" validate:"gte=1,lte=5"`
}

// LikeMeal adds the caller to the meal's likes
func (h *ReviewHandler) LikeMeal(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	liked, err := h.reviewUC.LikeMeal(c.Request().Context(), c.Param("id"), email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"liked": liked})
}

// UnlikeMeal removes the caller from the meal's likes
func (h *ReviewHandler) UnlikeMeal(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	removed, err := h.reviewUC.UnlikeMeal(c.Request().Context(), c.Param("id"), email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"removed": removed})
}

// AddReview appends the caller's review to a meal
func (h *ReviewHandler) AddReview(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AddReviewRequest
	if err := bindAndValidate(c, &req, "Invalid review input"); err != nil {
		return response.HandleAppError(c, err)
	}

	review, err := h.reviewUC.AddReview(c.Request().Context(), c.Param("id"), &usecase.AddReviewInput{
		AuthorEmail: email,
		AuthorName:  req.AuthorName,
		Text:        req.Text,
		Rating:      req.Rating,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, review)
}

// ListMyReviews returns every review the caller wrote
func (h *ReviewHandler) ListMyReviews(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	reviews, err := h.reviewUC.ListReviewsByUser(c.Request().Context(), email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews)
}
