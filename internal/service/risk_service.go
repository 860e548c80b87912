package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"go.uber.org/zap"

	"github.com/iliyamo/cardio-risk-service/internal/features"
	"github.com/iliyamo/cardio-risk-service/internal/predictor"
	"github.com/iliyamo/cardio-risk-service/internal/risk"
)

// Recorder receives the outcome of every assessment.
type Recorder interface {
	PredictionServed(level string)
	PredictionFailed(kind string)
}

type nopRecorder struct{}

func (nopRecorder) PredictionServed(string) {}
func (nopRecorder) PredictionFailed(string) {}

// Failure kinds passed to Recorder.PredictionFailed.
const (
	FailureUnavailable = "model_unavailable"
	FailureInput       = "invalid_input"
	FailureInference   = "inference"
)

// Assessment is the outcome of one successful run of the pipeline.
type Assessment struct {
	Class          int
	RiskScore      float64 // rounded to two decimals
	Classification risk.Classification
	Vector         features.Vector
}

// RiskService runs normalize -> predict -> classify. The predictor is set
// once at construction and only read afterwards, so one RiskService serves
// concurrent requests without locking. A nil predictor means the model
// failed to load; every assessment then returns ErrModelUnavailable.
type RiskService struct {
	predictor predictor.Predictor // nil when the startup load failed
	logger    *zap.Logger         // debug lines per assessment
	recorder  Recorder            // metrics sink, never nil
	maxBody   int64               // AssessJSON body cap in bytes, 0 means unlimited
}

// NewRiskService wires the pipeline around p. A nil logger or recorder is
// replaced with a no-op so callers may omit either.
func NewRiskService(p predictor.Predictor, logger *zap.Logger, rec Recorder) *RiskService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rec == nil {
		rec = nopRecorder{}
	}
	return &RiskService{predictor: p, logger: logger, recorder: rec}
}

// WithBodyLimit returns a copy of s whose AssessJSON rejects bodies larger
// than n bytes as invalid input. n <= 0 removes the cap.
func (s *RiskService) WithBodyLimit(n int64) *RiskService {
	cp := *s
	cp.maxBody = max(n, 0)
	return &cp
}

// ModelLoaded reports whether a predictor was injected.
func (s *RiskService) ModelLoaded() bool { return s.predictor != nil }

// AssessJSON decodes a JSON object from r and assesses it. The model check
// happens before the body is read, so an oversized or malformed body still
// reports ErrModelUnavailable when no model is loaded.
func (s *RiskService) AssessJSON(r io.Reader) (Assessment, error) {
	if !s.ModelLoaded() {
		s.recorder.PredictionFailed(FailureUnavailable)
		return Assessment{}, ErrModelUnavailable
	}
	if s.maxBody > 0 {
		limited, err := s.readLimited(r)
		if err != nil {
			s.recorder.PredictionFailed(FailureInput)
			return Assessment{}, err
		}
		r = limited
	}
	raw, err := DecodePayload(r)
	if err != nil {
		s.recorder.PredictionFailed(FailureInput)
		return Assessment{}, err
	}
	return s.Assess(raw)
}

// Assess runs the pipeline over an already decoded payload.
func (s *RiskService) Assess(raw map[string]any) (Assessment, error) {
	if !s.ModelLoaded() {
		s.recorder.PredictionFailed(FailureUnavailable)
		return Assessment{}, ErrModelUnavailable
	}

	vec, err := features.Normalize(raw)
	if err != nil {
		s.recorder.PredictionFailed(FailureInput)
		return Assessment{}, invalidInput(err)
	}

	class, score, err := predictor.Score(s.predictor, vec)
	if err != nil {
		s.logger.Debug("prediction failed", zap.Error(err))
		s.recorder.PredictionFailed(FailureInference)
		return Assessment{}, inferenceFailure(err)
	}

	c := risk.Classify(score)
	rounded := RoundScore(score)
	s.logger.Debug("prediction served",
		zap.Int("class", class),
		zap.Float64("risk_score", rounded),
		zap.String("risk_level", c.Level),
	)
	s.recorder.PredictionServed(c.Level)

	return Assessment{
		Class:          class,
		RiskScore:      rounded,
		Classification: c,
		Vector:         vec,
	}, nil
}

// readLimited buffers at most maxBody bytes of r. One extra byte is read to
// tell a body that exactly fits from one that overflows.
func (s *RiskService) readLimited(r io.Reader) (io.Reader, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxBody+1))
	if err != nil {
		return nil, invalidInput(fmt.Errorf("read request body: %w", err))
	}
	if int64(len(data)) > s.maxBody {
		return nil, invalidInput(fmt.Errorf("request body exceeds %d bytes", s.maxBody))
	}
	return bytes.NewReader(data), nil
}

// DecodePayload reads exactly one JSON object. Numbers are kept as
// json.Number so integer ages survive untouched.
func DecodePayload(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, invalidInput(errors.New("request body is empty"))
		}
		return nil, invalidInput(fmt.Errorf("malformed JSON body: %w", err))
	}
	if raw == nil {
		return nil, invalidInput(errors.New("request body must be a JSON object"))
	}
	// only a decoded token counts as trailing data; read failures keep their cause
	_, err := dec.Token()
	switch {
	case err == nil:
		return nil, invalidInput(errors.New("unexpected data after JSON object"))
	case errors.Is(err, io.EOF):
		return raw, nil
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return nil, invalidInput(fmt.Errorf("malformed JSON body: %w", err))
	}
	return nil, invalidInput(fmt.Errorf("read request body: %w", err))
}

// RoundScore rounds a risk score to two decimal places.
func RoundScore(score float64) float64 {
	return math.Round(score*100) / 100
}
