package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetRequestID(t *testing.T) {
	e := echo.New()

	t.Run("from echo context", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		SetRequestID(c, "req-1")

		assert.Equal(t, "req-1", GetRequestID(c))
	})

	t.Run("from request context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithRequestID(req.Context(), "req-2"))
		c := e.NewContext(req, httptest.NewRecorder())

		assert.Equal(t, "req-2", GetRequestID(c))
	})

	t.Run("generated once", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		first := GetRequestID(c)
		assert.NotEmpty(t, first)
		assert.Equal(t, first, GetRequestID(c))
	})
}

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	fallback := slog.New(slog.DiscardHandler)

	assert.Empty(t, GetRequestIDFromContext(ctx))
	assert.Empty(t, GetCallerEmail(ctx))
	assert.Nil(t, GetLogger(ctx))
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))

	scoped := fallback.With(slog.String("request_id", "r"))
	ctx = WithLogger(WithCallerEmail(ctx, "a@b.co"), scoped)

	assert.Equal(t, "a@b.co", GetCallerEmail(ctx))
	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
}
