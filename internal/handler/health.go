package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cardio-risk-service/internal/model"
)

// Health is used by load balancers and monitoring systems. It answers 200
// even when no model is loaded; model_loaded tells the two states apart.
func (h *RiskHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, model.Health{
		Status:      "healthy",
		ModelLoaded: h.Svc.ModelLoaded(), // false after a failed startup load
	})
}
