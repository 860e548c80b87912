// Package handler exposes the HTTP handlers of the risk API.
package handler

import (
	"go.uber.org/zap"

	"github.com/iliyamo/cardio-risk-service/internal/service"
)

// RiskHandler serves the root, health and prediction endpoints on top of a
// single RiskService.
type RiskHandler struct {
	Svc           *service.RiskService
	ModelLocation string // shown to clients when the model is missing
	Logger        *zap.Logger
}

// NewRiskHandler binds the handlers to svc. modelLocation is echoed in the
// model-unavailable response; a nil logger disables handler logging.
func NewRiskHandler(svc *service.RiskService, modelLocation string, logger *zap.Logger) *RiskHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RiskHandler{Svc: svc, ModelLocation: modelLocation, Logger: logger}
}
