// Package service holds the request-to-risk pipeline. The errors below let
// handlers tell the failure kinds apart with errors.Is.
package service

import "errors"

// ErrModelUnavailable is returned for every assessment when no model was
// loaded at startup. Handlers translate it into HTTP 500.
var ErrModelUnavailable = errors.New("model not loaded")

// ErrInvalidInput marks payloads that could not be decoded or coerced into
// a feature vector. Handlers translate it into HTTP 400.
var ErrInvalidInput = errors.New("invalid input")

// ErrInference marks failures raised by the model itself. Handlers report
// it exactly like ErrInvalidInput.
var ErrInference = errors.New("inference failed")

// AssessmentError carries the caller-facing message of a failed assessment
// together with its kind.
type AssessmentError struct {
	Kind error
	Err  error
}

func (e *AssessmentError) Error() string { return e.Err.Error() }

func (e *AssessmentError) Unwrap() []error { return []error{e.Kind, e.Err} }

func invalidInput(err error) error { return &AssessmentError{Kind: ErrInvalidInput, Err: err} }

func inferenceFailure(err error) error { return &AssessmentError{Kind: ErrInference, Err: err} }
