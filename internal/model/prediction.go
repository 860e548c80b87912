package model

// Prediction is the body of a successful POST /predict response. It exists
// only for the duration of the response and is never stored.
type Prediction struct {
	Success    bool    `json:"success"`
	Prediction int     `json:"prediction"`
	RiskScore  float64 `json:"risk_score"` // rounded to two decimals, 0-100
	RiskLevel  string  `json:"risk_level"`
	Category   string  `json:"category"`
	Status     string  `json:"status"`
	Priority   string  `json:"priority"`
	Message    string  `json:"message"`
}

// PredictionFailure is returned with 400 when decoding, normalization or
// inference fails.
type PredictionFailure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ModelUnavailable is returned with 500 when no model was loaded at startup.
// Unlike the other /predict envelopes it carries no success field.
type ModelUnavailable struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Health is the body of GET /health.
type Health struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
}

// ServiceInfo is the body of GET /.
type ServiceInfo struct {
	Message   string            `json:"message"`
	Status    string            `json:"status"`
	Endpoints map[string]string `json:"endpoints"`
}
