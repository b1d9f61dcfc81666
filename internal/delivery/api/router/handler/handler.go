// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"hostelbites/internal/delivery/api/middleware"
	"hostelbites/internal/delivery/api/response"
	domainerrors "hostelbites/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PageQuery is the common skip/limit query of admin listings.
type PageQuery struct {
	Skip  int64 `query:"skip"`
	Limit int64 `query:"limit"`
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// callerEmail returns the email of the authenticated caller.
func callerEmail(c echo.Context) (string, error) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		return "", errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return email, nil
}

// bindAndValidate binds the request into req and runs the echo validator.
func bindAndValidate(c echo.Context, req any, bindMessage string) error {
	if err := c.Bind(req); err != nil {
		return errors.WithStack(domainerrors.ErrInvalidInput.WithDetails(bindMessage))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	return nil
}
