package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hostelbites/config"
	"hostelbites/internal/delivery/api/response"
	deliverycontext "hostelbites/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"

	return cfg
}

func TestNewEcho_RequestID(t *testing.T) {
	e := newEcho(testConfig(), slog.New(slog.DiscardHandler))
	e.GET("/ping", func(c echo.Context) error {
		return response.Success(c, http.StatusOK, deliverycontext.GetRequestIDFromContext(c.Request().Context()))
	})

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		id := rec.Header().Get(deliverycontext.HeaderXRequestID)
		assert.Len(t, id, 36)
		assert.Contains(t, rec.Body.String(), `"request_id":"`+id+`"`)
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "client-id-1")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "client-id-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Contains(t, rec.Body.String(), `"data":"client-id-1"`)
	})

	t.Run("unprintable client id replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "bad id")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.NotEqual(t, "bad id", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})
}

func TestNewEcho_ErrorEnvelope(t *testing.T) {
	e := newEcho(testConfig(), slog.New(slog.DiscardHandler))
	e.POST("/echo", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/panic", func(c echo.Context) error {
		panic("boom")
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var res response.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "HTTP_ERROR", res.Error.Code)
		assert.Equal(t, rec.Header().Get(deliverycontext.HeaderXRequestID), res.Meta.RequestID)
	})

	t.Run("body limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(strings.Repeat("a", 2048)))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("panic recovered", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	})
}
