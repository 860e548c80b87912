package router_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/cardio-risk-service/internal/handler"
	"github.com/iliyamo/cardio-risk-service/internal/metrics"
	"github.com/iliyamo/cardio-risk-service/internal/router"
	"github.com/iliyamo/cardio-risk-service/internal/service"
)

type constModel struct{}

func (constModel) Predict([]float64) (int, error) { return 1, nil }

func serve(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestRegisterRoutes(t *testing.T) {
	m := metrics.New()
	h := handler.NewRiskHandler(service.NewRiskService(constModel{}, nil, m), "rf_model.json", nil)
	e := echo.New()
	e.Use(m.Middleware())
	router.RegisterRoutes(e, h, m)

	tests := []struct {
		method string
		path   string
		body   string
		code   int
	}{
		{http.MethodGet, "/", "", http.StatusOK},
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodPost, "/predict", `{"age": 60}`, http.StatusOK},
		{http.MethodGet, "/predict", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/nope", "", http.StatusNotFound},
		{http.MethodGet, "/metrics", "", http.StatusOK},
	}
	for _, tt := range tests {
		rec := serve(e, tt.method, tt.path, tt.body)
		assert.Equal(t, tt.code, rec.Code, "%s %s", tt.method, tt.path)
	}

	body := serve(e, http.MethodGet, "/metrics", "").Body.String()
	assert.Contains(t, body, `cardio_risk_predictions_total{risk_level="Risiko Tinggi"} 1`)
}

func TestRegisterRoutes_WithoutMetrics(t *testing.T) {
	h := handler.NewRiskHandler(service.NewRiskService(nil, nil, nil), "rf_model.json", nil)
	e := echo.New()
	router.RegisterRoutes(e, h, nil)

	assert.Equal(t, http.StatusNotFound, serve(e, http.MethodGet, "/metrics", "").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(e, http.MethodPost, "/predict", `{}`).Code)
}
