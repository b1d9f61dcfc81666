package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "hostelbites/internal/delivery/context"
	"hostelbites/internal/domain/entity"
	domainerrors "hostelbites/internal/domain/errors"
	"hostelbites/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	contextKeyEmail = "userEmail"
	contextKeyRoles = "roles"

	bearerPrefix = "Bearer "
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
}

// AuthMiddleware authenticates access tokens and authorizes roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: params.TokenService}
}

// Authenticate validates the bearer token and stores the caller's email and roles on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return errors.WithStack(domainerrors.ErrInvalidToken)
		}
		tokenString := strings.TrimSpace(authHeader[len(bearerPrefix):])

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || claims.Email == "" {
			return errors.WithStack(domainerrors.ErrInvalidToken)
		}

		email := strings.ToLower(claims.Email)
		c.Set(contextKeyEmail, email)
		c.Set(contextKeyRoles, entity.RolesFromStrings(claims.Roles))

		ctx := deliverycontext.WithCallerEmail(c.Request().Context(), email)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_email", email)))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole rejects callers without the role. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := GetRoles(c)
			if !ok || !roles.Contains(role) {
				return errors.WithStack(domainerrors.ErrForbidden.WithDetails("requires role " + role.String()))
			}

			return next(c)
		}
	}
}

// GetUserEmail returns the authenticated caller's email.
func GetUserEmail(c echo.Context) (string, bool) {
	email, ok := c.Get(contextKeyEmail).(string)

	return email, ok && email != ""
}

// GetRoles returns the authenticated caller's roles.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := c.Get(contextKeyRoles).(entity.Roles)

	return roles, ok
}
