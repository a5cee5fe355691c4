package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkspy3580/interface/domain/features"
)

// stubModel returns canned labels for any batch
type stubModel struct {
	labels []int
	err    error
}

func (m *stubModel) Predict(ctx context.Context, batch [][]float64) ([]int, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.labels, nil
}

func (m *stubModel) NumFeatures() int { return len(features.RequiredColumns) }

func matrixWithRows(n int) *features.Matrix {
	data := make([][]float64, n)
	for i := range data {
		data[i] = make([]float64, len(features.RequiredColumns))
	}
	return &features.Matrix{Columns: features.RequiredColumns, Data: data}
}

func TestClassify_LabelRemapIsBijective(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		labels := make([]int, n)
		for i := range labels {
			labels[i] = i % 2
		}
		c := NewClassifier(&stubModel{labels: labels})

		got, err := c.Classify(context.Background(), matrixWithRows(n))
		require.NoError(t, err, "batch size %d", n)
		require.Len(t, got, n)

		for i, label := range got {
			if labels[i] == 1 {
				assert.Equal(t, LabelARG, label, "input label 1 must remap to ARG")
			} else {
				assert.Equal(t, LabelNonARG, label, "input label 0 must remap to Non-ARG")
			}
		}
	}
}

func TestClassify_NilModelIsUnavailable(t *testing.T) {
	c := NewClassifier(nil)
	assert.False(t, c.Ready())

	_, err := c.Classify(context.Background(), matrixWithRows(2))
	assert.ErrorIs(t, err, ErrModelUnavailable)
}

func TestClassify_ModelErrorIsWrapped(t *testing.T) {
	modelErr := errors.New("artifact corrupted")
	c := NewClassifier(&stubModel{err: modelErr})

	_, err := c.Classify(context.Background(), matrixWithRows(1))
	assert.ErrorIs(t, err, modelErr)
}

func TestClassify_PredictionCountMismatch(t *testing.T) {
	c := NewClassifier(&stubModel{labels: []int{1}})

	_, err := c.Classify(context.Background(), matrixWithRows(3))
	assert.Error(t, err)
}

func TestClassify_UnexpectedLabelRejected(t *testing.T) {
	c := NewClassifier(&stubModel{labels: []int{2}})

	_, err := c.Classify(context.Background(), matrixWithRows(1))
	assert.Error(t, err)
}
