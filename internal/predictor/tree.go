package predictor

import (
	"errors"
	"fmt"
)

// TreeNode is one node of a flat decision tree. The root is node 0.
type TreeNode struct {
	FeatureIdx int     `json:"feature_idx"` // vector position compared at a split
	Threshold  float64 `json:"threshold"`   // go left when value <= threshold
	LeftChild  int     `json:"left_child"`  // node index
	RightChild int     `json:"right_child"` // node index
	ClassLabel int     `json:"class_label"` // 0 or 1, leaves only
	IsLeaf     bool    `json:"is_leaf"`
}

// DecisionTree predicts hard labels only; it has no probability output.
type DecisionTree struct {
	nodes     []TreeNode
	nFeatures int
}

// NewDecisionTree checks that every leaf carries a binary label and every
// split points forward to an existing node, so Predict cannot loop.
func NewDecisionTree(nodes []TreeNode, nFeatures int) (*DecisionTree, error) {
	if len(nodes) == 0 {
		return nil, errors.New("decision tree has no nodes")
	}
	if nFeatures <= 0 {
		return nil, errors.New("decision tree feature count must be positive")
	}
	for i, node := range nodes {
		if node.IsLeaf {
			if node.ClassLabel != 0 && node.ClassLabel != 1 {
				return nil, fmt.Errorf("node %d: class label %d is not binary", i, node.ClassLabel)
			}
			continue
		}
		if node.FeatureIdx < 0 || node.FeatureIdx >= nFeatures {
			return nil, fmt.Errorf("node %d: feature index %d out of range", i, node.FeatureIdx)
		}
		if node.LeftChild <= i || node.LeftChild >= len(nodes) || node.RightChild <= i || node.RightChild >= len(nodes) {
			return nil, fmt.Errorf("node %d: child index out of range", i)
		}
	}
	return &DecisionTree{nodes: nodes, nFeatures: nFeatures}, nil
}

func (dt *DecisionTree) Predict(features []float64) (int, error) {
	if len(features) != dt.nFeatures {
		return 0, fmt.Errorf("expected %d features, got %d", dt.nFeatures, len(features))
	}
	idx := 0
	for {
		node := dt.nodes[idx]
		if node.IsLeaf {
			return node.ClassLabel, nil
		}
		if features[node.FeatureIdx] <= node.Threshold {
			idx = node.LeftChild
		} else {
			idx = node.RightChild
		}
	}
}

// Nodes returns the number of nodes in the tree.
func (dt *DecisionTree) Nodes() int { return len(dt.nodes) }
