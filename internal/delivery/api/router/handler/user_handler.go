package handler

import (
	"log/slog"
	"net/http"

	"hostelbites/internal/delivery/api/response"
	"hostelbites/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves registration, tokens and profiles.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterRequest is the body of POST /users.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,max=100"`
	PhotoURL string `json:"photoUrl" validate:"omitempty,url"`
}

// TokenRequest is the body of POST /auth/token. IDToken is a Firebase ID token.
type TokenRequest struct {
	Email   string `json:"email" validate:"omitempty,email"`
	IDToken string `json:"idToken"`
}

// ListUsersQuery filters GET /api/v1/admin/users.
type ListUsersQuery struct {
	PageQuery
	Search string `query:"search"`
}

// Register handles user registration
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req, "Invalid registration input"); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterUserInput{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, user)
}

// IssueToken exchanges an email or a Firebase ID token for an access token
func (h *UserHandler) IssueToken(c echo.Context) error {
	var req TokenRequest
	if err := bindAndValidate(c, &req, "Invalid token request"); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.userUC.IssueToken(c.Request().Context(), &usecase.IssueTokenInput{
		Email:   req.Email,
		IDToken: req.IDToken,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// GetProfile returns the caller's profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// ListUsers returns a page of users
func (h *UserHandler) ListUsers(c echo.Context) error {
	var query ListUsersQuery
	if err := bindAndValidate(c, &query, "Invalid user query"); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.userUC.ListUsers(c.Request().Context(), &usecase.ListUsersInput{
		Search: query.Search,
		Skip:   query.Skip,
		Limit:  query.Limit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}
