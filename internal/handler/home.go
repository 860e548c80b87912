package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cardio-risk-service/internal/model"
)

// Root describes the service and the endpoints it offers.
func (h *RiskHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, model.ServiceInfo{
		Message: "Heart Disease Prediction API",
		Status:  "running",
		Endpoints: map[string]string{
			"/predict": "POST - Predict heart disease risk",
		},
	})
}
