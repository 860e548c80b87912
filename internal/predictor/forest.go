package predictor

import (
	"errors"
	"fmt"
)

// ForestTree is one estimator of a random forest, stored as the parallel
// node arrays scikit-learn exposes on tree_. Node i is a leaf when
// ChildrenLeft[i] == -1; Value[i] holds per-class sample counts or fractions.
type ForestTree struct {
	ChildrenLeft  []int       `json:"children_left"`
	ChildrenRight []int       `json:"children_right"`
	Feature       []int       `json:"feature"`
	Threshold     []float64   `json:"threshold"`
	Value         [][]float64 `json:"value"`
}

// RandomForest averages the leaf class distributions of its estimators.
// It is immutable after construction and safe for concurrent use.
type RandomForest struct {
	trees     []ForestTree
	nFeatures int
}

// NewRandomForest validates the estimators and returns a binary forest.
func NewRandomForest(trees []ForestTree, nFeatures int) (*RandomForest, error) {
	if len(trees) == 0 {
		return nil, errors.New("random forest has no estimators")
	}
	if nFeatures <= 0 {
		return nil, errors.New("random forest feature count must be positive")
	}
	for i := range trees {
		if err := validateForestTree(&trees[i], nFeatures); err != nil {
			return nil, fmt.Errorf("estimator %d: %w", i, err)
		}
	}
	return &RandomForest{trees: trees, nFeatures: nFeatures}, nil
}

// Predict returns the class with the highest averaged probability. Ties go
// to class 0.
func (f *RandomForest) Predict(features []float64) (int, error) {
	proba, err := f.PredictProba(features)
	if err != nil {
		return 0, err
	}
	if proba[1] > proba[0] {
		return 1, nil
	}
	return 0, nil
}

// PredictProba returns [p0, p1] averaged over all estimators.
func (f *RandomForest) PredictProba(features []float64) ([]float64, error) {
	if len(features) != f.nFeatures {
		return nil, fmt.Errorf("expected %d features, got %d", f.nFeatures, len(features))
	}
	proba := make([]float64, 2)
	for i := range f.trees {
		leaf := f.trees[i].leaf(features)
		counts := f.trees[i].Value[leaf]
		total := counts[0] + counts[1]
		proba[0] += counts[0] / total
		proba[1] += counts[1] / total
	}
	n := float64(len(f.trees))
	proba[0] /= n
	proba[1] /= n
	return proba, nil
}

// Estimators returns the number of trees in the forest.
func (f *RandomForest) Estimators() int { return len(f.trees) }

func (t *ForestTree) leaf(features []float64) int {
	node := 0
	for t.ChildrenLeft[node] != -1 {
		if features[t.Feature[node]] <= t.Threshold[node] {
			node = t.ChildrenLeft[node]
		} else {
			node = t.ChildrenRight[node]
		}
	}
	return node
}

// validateForestTree checks array shapes and that every child index points
// forward, which rules out cycles during traversal.
func validateForestTree(t *ForestTree, nFeatures int) error {
	n := len(t.ChildrenLeft)
	if n == 0 {
		return errors.New("tree has no nodes")
	}
	if len(t.ChildrenRight) != n || len(t.Feature) != n || len(t.Threshold) != n || len(t.Value) != n {
		return errors.New("node arrays differ in length")
	}
	for i := 0; i < n; i++ {
		left, right := t.ChildrenLeft[i], t.ChildrenRight[i]
		if left == -1 {
			if right != -1 {
				return fmt.Errorf("node %d: leaf with a right child", i)
			}
			if err := validateLeafValue(t.Value[i]); err != nil {
				return fmt.Errorf("node %d: %w", i, err)
			}
			continue
		}
		if left <= i || left >= n || right <= i || right >= n {
			return fmt.Errorf("node %d: child index out of range", i)
		}
		if t.Feature[i] < 0 || t.Feature[i] >= nFeatures {
			return fmt.Errorf("node %d: feature index %d out of range", i, t.Feature[i])
		}
	}
	return nil
}

func validateLeafValue(v []float64) error {
	if len(v) != 2 {
		return fmt.Errorf("leaf has %d class values, want 2", len(v))
	}
	if v[0] < 0 || v[1] < 0 || v[0]+v[1] <= 0 {
		return errors.New("leaf class values must be non-negative with a positive sum")
	}
	return nil
}
