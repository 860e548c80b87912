// Package predictor wraps the trained model behind the two capabilities the
// service needs: a class label and, when the model has one, a class
// probability distribution.
package predictor

import (
	"errors"
	"fmt"
)

// Predictor returns the predicted class (0 or 1) for a feature vector.
type Predictor interface {
	Predict(features []float64) (int, error)
}

// ProbabilityPredictor is implemented by models that also expose class
// probabilities as [p0, p1].
type ProbabilityPredictor interface {
	Predictor
	PredictProba(features []float64) ([]float64, error)
}

// ErrBadOutput is returned when a model produces a label or probability
// vector outside the binary contract.
var ErrBadOutput = errors.New("unexpected model output")

// Score runs the model and converts its output into a 0-100 risk score.
// Models with probability output score p1*100; others score 100 for class
// 1 and 0 for class 0.
func Score(p Predictor, features []float64) (class int, score float64, err error) {
	class, err = p.Predict(features)
	if err != nil {
		return 0, 0, err
	}
	if class != 0 && class != 1 {
		return 0, 0, fmt.Errorf("%w: class label %d", ErrBadOutput, class)
	}

	pp, ok := p.(ProbabilityPredictor)
	if !ok {
		if class == 1 {
			return class, 100.0, nil
		}
		return class, 0.0, nil
	}

	proba, err := pp.PredictProba(features)
	if err != nil {
		return 0, 0, err
	}
	if len(proba) != 2 {
		return 0, 0, fmt.Errorf("%w: %d class probabilities", ErrBadOutput, len(proba))
	}
	p1 := proba[1]
	if !(p1 >= 0 && p1 <= 1) {
		return 0, 0, fmt.Errorf("%w: probability %v", ErrBadOutput, p1)
	}
	return class, p1 * 100, nil
}

// HasProbability reports whether p exposes class probabilities.
func HasProbability(p Predictor) bool {
	_, ok := p.(ProbabilityPredictor)
	return ok
}
