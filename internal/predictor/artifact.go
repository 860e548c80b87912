package predictor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Artifact types understood by Parse.
const (
	TypeRandomForest = "random_forest"
	TypeDecisionTree = "decision_tree"
)

// Artifact is the serialized model envelope.
type Artifact struct {
	Type         string       `json:"type"`
	NFeatures    int          `json:"n_features"`
	FeatureNames []string     `json:"feature_names,omitempty"`
	Classes      []int        `json:"classes,omitempty"`
	Estimators   []ForestTree `json:"estimators,omitempty"`
	Nodes        []TreeNode   `json:"nodes,omitempty"`
}

// Schema is the input layout the service feeds the model.
type Schema struct {
	Features int
	Columns  []string
}

// Info summarizes a loaded model.
type Info struct {
	Type        string `json:"type"`
	Features    int    `json:"features"`
	Probability bool   `json:"probability"`
	Size        int    `json:"size"`
}

// Load fetches the artifact from src and parses it against schema.
func Load(ctx context.Context, src Source, schema Schema) (Predictor, error) {
	data, err := src.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch model from %s: %w", src, err)
	}
	p, err := Parse(data, schema)
	if err != nil {
		return nil, fmt.Errorf("parse model from %s: %w", src, err)
	}
	return p, nil
}

// Parse decodes a JSON artifact and builds the model it describes.
func Parse(data []byte, schema Schema) (Predictor, error) {
	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	if a.NFeatures != schema.Features {
		return nil, fmt.Errorf("model expects %d features, service provides %d", a.NFeatures, schema.Features)
	}
	if len(a.FeatureNames) > 0 {
		if err := checkColumns(a.FeatureNames, schema.Columns); err != nil {
			return nil, err
		}
	}
	if len(a.Classes) > 0 && (len(a.Classes) != 2 || a.Classes[0] != 0 || a.Classes[1] != 1) {
		return nil, fmt.Errorf("model classes %v, want [0 1]", a.Classes)
	}

	switch a.Type {
	case TypeRandomForest:
		return NewRandomForest(a.Estimators, a.NFeatures)
	case TypeDecisionTree:
		return NewDecisionTree(a.Nodes, a.NFeatures)
	case "":
		return nil, errors.New("model type is missing")
	default:
		return nil, fmt.Errorf("unsupported model type %q", a.Type)
	}
}

// Describe reports the type and shape of a model built by Parse.
func Describe(p Predictor) Info {
	info := Info{Probability: HasProbability(p)}
	switch m := p.(type) {
	case *RandomForest:
		info.Type = TypeRandomForest
		info.Features = m.nFeatures
		info.Size = m.Estimators()
	case *DecisionTree:
		info.Type = TypeDecisionTree
		info.Features = m.nFeatures
		info.Size = m.Nodes()
	default:
		info.Type = fmt.Sprintf("%T", p)
	}
	return info
}

func checkColumns(got, want []string) error {
	if len(got) != len(want) {
		return fmt.Errorf("model declares %d feature names, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("feature %d is %q, want %q", i, got[i], want[i])
		}
	}
	return nil
}
