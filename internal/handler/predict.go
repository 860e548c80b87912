package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/cardio-risk-service/internal/model"
	"github.com/iliyamo/cardio-risk-service/internal/service"
)

// Predict scores one patient answer set.
//
//	500 {error, message}            no model was loaded
//	400 {success:false, error, ...} bad body, bad field or model failure
//	200 {success:true, ...}         scored
func (h *RiskHandler) Predict(c echo.Context) error {
	a, err := h.Svc.AssessJSON(c.Request().Body) // model check, size cap, decode, score
	if err != nil {
		if errors.Is(err, service.ErrModelUnavailable) { // checked before any other failure
			return c.JSON(http.StatusInternalServerError, model.ModelUnavailable{
				Error:   "Model not loaded",
				Message: "Please ensure " + h.ModelLocation + " is in the correct location",
			})
		}
		h.Logger.Info("prediction rejected", zap.Error(err)) // raw text also goes back to the caller
		return c.JSON(http.StatusBadRequest, FailureResponse(err))
	}

	return c.JSON(http.StatusOK, PredictionResponse(a))
}

// PredictionResponse renders a successful assessment.
func PredictionResponse(a service.Assessment) model.Prediction {
	return model.Prediction{
		Success:    true,
		Prediction: a.Class,
		RiskScore:  a.RiskScore,
		RiskLevel:  a.Classification.Level,
		Category:   a.Classification.Category,
		Status:     a.Classification.Status,
		Priority:   a.Classification.Priority,
		Message:    "Prediction successful",
	}
}

// FailureResponse renders a rejected assessment.
func FailureResponse(err error) model.PredictionFailure {
	return model.PredictionFailure{
		Success: false,
		Error:   err.Error(),
		Message: "Error during prediction",
	}
}
