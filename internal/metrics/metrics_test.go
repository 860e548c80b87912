package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictionCounters(t *testing.T) {
	m := New()
	m.PredictionServed("Risiko Tinggi")
	m.PredictionServed("Risiko Tinggi")
	m.PredictionServed("Risiko Rendah")
	m.PredictionFailed("invalid_input")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.predictions.WithLabelValues("Risiko Tinggi")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.predictions.WithLabelValues("Risiko Rendah")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failures.WithLabelValues("invalid_input")))
}

func TestSetModelLoaded(t *testing.T) {
	m := New()
	m.SetModelLoaded(true)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.modelLoaded))
	m.SetModelLoaded(false)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.modelLoaded))
}

func TestMiddlewareAndHandler(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/health", func(c echo.Context) error { return c.JSON(http.StatusOK, echo.Map{"status": "healthy"}) })
	e.POST("/predict", func(c echo.Context) error { return c.JSON(http.StatusBadRequest, echo.Map{"success": false}) })
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/health", nil),
		httptest.NewRequest(http.MethodGet, "/health", nil),
		httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(`{}`)),
	} {
		e.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/health", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("POST", "/predict", "400")))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cardio_risk_http_requests_total")
	assert.Contains(t, rec.Body.String(), "cardio_risk_model_loaded")
}
