// Package forest loads a pretrained random-forest classification artifact
// from disk and serves batch predictions over it.
//
// The artifact is a JSON document produced by the external training
// pipeline: an ensemble of binary decision trees whose nodes reference
// feature columns by index. The artifact is treated as opaque beyond the
// predict capability; training is out of scope.
package forest

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"
)

// Node is one decision or leaf node of a tree. Interior nodes route rows
// left when row[Feature] <= Threshold. Leaves have Left == Right == -1 and
// carry the predicted class.
type Node struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Class     int     `json:"class"`
}

// IsLeaf reports whether the node is terminal
func (n Node) IsLeaf() bool {
	return n.Left < 0 && n.Right < 0
}

// Tree is one decision tree, rooted at Nodes[0]
type Tree struct {
	Nodes []Node `json:"nodes"`
}

// Forest is a loaded random-forest artifact. It is read-only after Load and
// safe to share across concurrent requests.
type Forest struct {
	Features int    `json:"num_features"`
	Trees    []Tree `json:"trees"`
}

// Load reads and validates a forest artifact from path
func Load(path string) (*Forest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact %s: %w", path, err)
	}

	var f Forest
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse model artifact %s: %w", path, err)
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("invalid model artifact %s: %w", path, err)
	}
	return &f, nil
}

func (f *Forest) validate() error {
	if f.Features <= 0 {
		return fmt.Errorf("num_features must be positive, got %d", f.Features)
	}
	if len(f.Trees) == 0 {
		return fmt.Errorf("artifact contains no trees")
	}
	for ti, tree := range f.Trees {
		if len(tree.Nodes) == 0 {
			return fmt.Errorf("tree %d has no nodes", ti)
		}
		for ni, node := range tree.Nodes {
			if node.IsLeaf() {
				if node.Class != 0 && node.Class != 1 {
					return fmt.Errorf("tree %d node %d: leaf class %d is not binary", ti, ni, node.Class)
				}
				continue
			}
			if node.Feature < 0 || node.Feature >= f.Features {
				return fmt.Errorf("tree %d node %d: feature index %d out of range", ti, ni, node.Feature)
			}
			if math.IsNaN(node.Threshold) || math.IsInf(node.Threshold, 0) {
				return fmt.Errorf("tree %d node %d: threshold is not finite", ti, ni)
			}
			if node.Left < 0 || node.Left >= len(tree.Nodes) ||
				node.Right < 0 || node.Right >= len(tree.Nodes) {
				return fmt.Errorf("tree %d node %d: child index out of range", ti, ni)
			}
			// Children must follow their parent so traversal terminates
			if node.Left <= ni || node.Right <= ni {
				return fmt.Errorf("tree %d node %d: child index must follow parent", ti, ni)
			}
		}
	}
	return nil
}

// NumFeatures reports the feature width the forest was trained on
func (f *Forest) NumFeatures() int {
	return f.Features
}

// Predict returns one class label per batch row by majority vote across the
// trees. Ties resolve to class 0.
func (f *Forest) Predict(ctx context.Context, batch [][]float64) ([]int, error) {
	if len(batch) == 0 {
		return nil, fmt.Errorf("empty prediction batch")
	}

	dense, err := f.toDense(batch)
	if err != nil {
		return nil, err
	}

	labels := make([]int, len(batch))
	row := make([]float64, f.Features)
	for i := range batch {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		mat.Row(row, i, dense)

		votes := 0
		for _, tree := range f.Trees {
			votes += tree.classify(row)
		}
		if votes*2 > len(f.Trees) {
			labels[i] = 1
		}
	}
	return labels, nil
}

// toDense packs the batch into a rows × NumFeatures matrix, rejecting rows
// of the wrong width.
func (f *Forest) toDense(batch [][]float64) (*mat.Dense, error) {
	flat := make([]float64, 0, len(batch)*f.Features)
	for i, row := range batch {
		if len(row) != f.Features {
			return nil, fmt.Errorf("row %d has %d features, model expects %d", i, len(row), f.Features)
		}
		flat = append(flat, row...)
	}
	return mat.NewDense(len(batch), f.Features, flat), nil
}

func (t *Tree) classify(row []float64) int {
	idx := 0
	for {
		node := t.Nodes[idx]
		if node.IsLeaf() {
			return node.Class
		}
		if row[node.Feature] <= node.Threshold {
			idx = node.Left
		} else {
			idx = node.Right
		}
	}
}
