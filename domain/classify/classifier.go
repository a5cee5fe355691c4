package classify

import (
	"context"
	"errors"
	"fmt"

	"github.com/darkspy3580/interface/domain/features"
	"github.com/darkspy3580/interface/ports"
)

// Label is the symbolic classification assigned to an input record
type Label string

const (
	LabelARG    Label = "ARG"
	LabelNonARG Label = "Non-ARG"
)

// LabelOrder is the stable display order for distribution summaries
var LabelOrder = []Label{LabelARG, LabelNonARG}

// ErrModelUnavailable is returned by every classify call when no model
// artifact was loaded at startup. Scoring tasks are unaffected.
var ErrModelUnavailable = errors.New("classification model unavailable")

// Classifier wraps an injected pretrained model and remaps its integer
// labels to symbolic categories: 1 becomes ARG, 0 becomes Non-ARG.
type Classifier struct {
	model ports.ClassifierModel
}

// NewClassifier creates a classifier over the given model capability.
// A nil model is allowed; it makes Ready report false and every Classify
// call fail with ErrModelUnavailable.
func NewClassifier(model ports.ClassifierModel) *Classifier {
	return &Classifier{model: model}
}

// Ready reports whether a model artifact is loaded
func (c *Classifier) Ready() bool {
	return c != nil && c.model != nil
}

// Classify predicts one label per row of the validated feature matrix
func (c *Classifier) Classify(ctx context.Context, m *features.Matrix) ([]Label, error) {
	if !c.Ready() {
		return nil, ErrModelUnavailable
	}

	predictions, err := c.model.Predict(ctx, m.Data)
	if err != nil {
		return nil, fmt.Errorf("model prediction failed: %w", err)
	}
	if len(predictions) != m.NumRows() {
		return nil, fmt.Errorf("model returned %d predictions for %d rows", len(predictions), m.NumRows())
	}

	labels := make([]Label, len(predictions))
	for i, p := range predictions {
		switch p {
		case 1:
			labels[i] = LabelARG
		case 0:
			labels[i] = LabelNonARG
		default:
			return nil, fmt.Errorf("model returned unexpected class label %d at row %d", p, i)
		}
	}
	return labels, nil
}
