package ports

import "context"

// ClassifierModel is the pretrained binary classification capability.
// Implementations are loaded once at process start and must be safe for
// concurrent read-only use across requests.
type ClassifierModel interface {
	// Predict returns one integer class label (0 or 1) per input row.
	// Every row must have NumFeatures values.
	Predict(ctx context.Context, batch [][]float64) ([]int, error)

	// NumFeatures reports the feature width the model was trained on
	NumFeatures() int
}
