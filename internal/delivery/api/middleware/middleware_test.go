package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"hostelbites/internal/delivery/api/response"
	"hostelbites/internal/domain/entity"
	domainerrors "hostelbites/internal/domain/errors"
	"hostelbites/internal/domain/service"
	mockSvc "hostelbites/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T, tokenSvc service.TokenService) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError

	auth := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokenSvc})
	g := e.Group("/api", auth.Authenticate)
	g.GET("/me", func(c echo.Context) error {
		email, ok := GetUserEmail(c)
		require.True(t, ok)

		return response.Success(c, http.StatusOK, map[string]string{"email": email})
	})
	g.GET("/admin", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}, auth.RequireRole(entity.RoleAdmin))

	return e
}

func decodeError(t *testing.T, body *bytes.Buffer) response.ErrorResponse {
	t.Helper()

	var res response.ErrorResponse
	require.NoError(t, json.Unmarshal(body.Bytes(), &res))
	require.NotNil(t, res.Error)

	return res
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		e := newTestEcho(t, mockSvc.NewMockTokenService(t))

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHORIZED", decodeError(t, rec.Body).Error.Code)
	})

	t.Run("non bearer scheme", func(t *testing.T) {
		e := newTestEcho(t, mockSvc.NewMockTokenService(t))

		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_TOKEN", decodeError(t, rec.Body).Error.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("bad").Return(nil, errors.New("signature is invalid"))
		e := newTestEcho(t, tokenSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer bad")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_TOKEN", decodeError(t, rec.Body).Error.Code)
	})

	t.Run("valid token exposes lower-cased email", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{Email: "Resident@Hostel.io", Roles: []string{"user"}}, nil)
		e := newTestEcho(t, tokenSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "bearer good")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"email":"resident@hostel.io"`)
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name     string
		roles    []string
		wantCode int
	}{
		{name: "admin passes", roles: []string{"admin"}, wantCode: http.StatusNoContent},
		{name: "user forbidden", roles: []string{"user"}, wantCode: http.StatusForbidden},
		{name: "unknown roles dropped", roles: []string{"root"}, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			tokenSvc.EXPECT().ValidateToken("tok").Return(&service.Claims{Email: "a@b.co", Roles: tt.roles}, nil)
			e := newTestEcho(t, tokenSvc)

			req := httptest.NewRequest(http.MethodGet, "/api/admin", nil)
			req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusForbidden {
				res := decodeError(t, rec.Body)
				assert.Equal(t, "FORBIDDEN", res.Error.Code)
				assert.Nil(t, res.Error.Details)
			}
		})
	}
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantErrCode string
		wantMessage string
		wantDetails any
	}{
		{
			name:        "client app error keeps details",
			err:         errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("email is required")),
			wantCode:    http.StatusBadRequest,
			wantErrCode: "VALIDATION_FAILED",
			wantMessage: "Input validation failed",
			wantDetails: "email is required",
		},
		{
			name:        "gateway error passes provider message",
			err:         domainerrors.NewGatewayError("stripe", "Your card was declined.", errors.New("card_declined")),
			wantCode:    http.StatusBadGateway,
			wantErrCode: "PAYMENT_GATEWAY_ERROR",
			wantMessage: "Your card was declined.",
		},
		{
			name:        "store error hides cause",
			err:         domainerrors.NewStoreError(errors.New("connection refused"), "find user"),
			wantCode:    http.StatusInternalServerError,
			wantErrCode: "STORE_ERROR",
		},
		{
			name:        "echo http error",
			err:         echo.NewHTTPError(http.StatusNotFound, "Not Found"),
			wantCode:    http.StatusNotFound,
			wantErrCode: "HTTP_ERROR",
			wantMessage: "Not Found",
		},
		{
			name:        "unknown error",
			err:         errors.New("boom"),
			wantCode:    http.StatusInternalServerError,
			wantErrCode: "INTERNAL_ERROR",
			wantMessage: "Internal server error, please try again later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			res := decodeError(t, rec.Body)
			assert.Equal(t, tt.wantErrCode, res.Error.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, res.Error.Message)
			}
			assert.Equal(t, tt.wantDetails, res.Error.Details)
			assert.NotEmpty(t, res.Meta.RequestID)
		})
	}
}
