package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func TestRequestLogger_Levels(t *testing.T) {
	tests := []struct {
		name    string
		handler echo.HandlerFunc
		status  int
		level   zapcore.Level
	}{
		{
			name:    "ok",
			handler: func(c echo.Context) error { return c.JSON(http.StatusOK, echo.Map{"status": "healthy"}) },
			status:  http.StatusOK,
			level:   zapcore.InfoLevel,
		},
		{
			name:    "bad request",
			handler: func(c echo.Context) error { return c.JSON(http.StatusBadRequest, echo.Map{"success": false}) },
			status:  http.StatusBadRequest,
			level:   zapcore.WarnLevel,
		},
		{
			name:    "returned error",
			handler: func(c echo.Context) error { return echo.NewHTTPError(http.StatusServiceUnavailable) },
			status:  http.StatusServiceUnavailable,
			level:   zapcore.ErrorLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, logs := newObserved()
			e := echo.New()
			e.Use(RequestLogger(logger))
			e.GET("/thing", tt.handler)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/thing", nil))
			assert.Equal(t, tt.status, rec.Code)

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.level, entries[0].Level)
			ctx := entries[0].ContextMap()
			assert.Equal(t, int64(tt.status), ctx["status"])
			assert.Equal(t, "/thing", ctx["route"])
			assert.Equal(t, http.MethodGet, ctx["method"])
		})
	}
}

func TestRequestLogger_RequestID(t *testing.T) {
	logger, logs := newObserved()
	e := echo.New()
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: func() string { return "req-42" }}))
	e.Use(RequestLogger(logger))
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "req-42", logs.All()[0].ContextMap()["request_id"])
	assert.Equal(t, "req-42", rec.Header().Get(echo.HeaderXRequestID))
}
