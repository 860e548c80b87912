// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cardio-risk-service/internal/handler"
	"github.com/iliyamo/cardio-risk-service/internal/metrics"
)

// PredictPath is the scoring endpoint. Its body size cap lives in the
// service rather than in echo middleware.
const PredictPath = "/predict"

// RegisterRoutes maps the public API onto e. m may be nil, in which case
// GET /metrics is not served.
func RegisterRoutes(e *echo.Echo, h *handler.RiskHandler, m *metrics.Metrics) {
	e.GET("/", h.Root)             // service banner
	e.GET("/health", h.Health)     // liveness plus model_loaded
	e.POST(PredictPath, h.Predict) // score one questionnaire

	// Prometheus scrape endpoint, only when metrics are enabled
	if m != nil {
		e.GET("/metrics", echo.WrapHandler(m.Handler()))
	}
}
