package forest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The testdata forest votes across three stumps: two on Degree (feature 4,
// thresholds 2.5 and 3.5) and one on BetweennessCentrality (feature 6,
// threshold 1.0).

func loadTestForest(t *testing.T) *Forest {
	t.Helper()
	f, err := Load(filepath.Join("testdata", "forest.json"))
	require.NoError(t, err)
	return f
}

func row(degree, betweenness float64) []float64 {
	r := make([]float64, 11)
	r[4] = degree
	r[6] = betweenness
	return r
}

func TestLoad_ValidArtifact(t *testing.T) {
	f := loadTestForest(t)
	assert.Equal(t, 11, f.NumFeatures())
	assert.Len(t, f.Trees, 3)
}

func TestLoad_MissingArtifact(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoad_RejectsCorruptArtifacts(t *testing.T) {
	cases := map[string]string{
		"not json":            `{"num_features": 11, "trees": [`,
		"no trees":            `{"num_features": 11, "trees": []}`,
		"bad feature index":   `{"num_features": 2, "trees": [{"nodes": [{"feature": 5, "threshold": 0, "left": 1, "right": 2}, {"left": -1, "right": -1}, {"left": -1, "right": -1}]}]}`,
		"child before parent": `{"num_features": 2, "trees": [{"nodes": [{"feature": 0, "threshold": 0, "left": 0, "right": 1}, {"left": -1, "right": -1}]}]}`,
		"non-binary leaf":     `{"num_features": 2, "trees": [{"nodes": [{"left": -1, "right": -1, "class": 3}]}]}`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "forest.json")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestPredict_MajorityVote(t *testing.T) {
	f := loadTestForest(t)
	ctx := context.Background()

	batch := [][]float64{
		row(5, 2),   // all three trees vote 1
		row(1, 0),   // all three trees vote 0
		row(3, 2),   // two of three vote 1
		row(3, 0.5), // one of three votes 1
	}
	labels, err := f.Predict(ctx, batch)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 1, 0}, labels)
}

func TestPredict_RowWidthMismatch(t *testing.T) {
	f := loadTestForest(t)

	_, err := f.Predict(context.Background(), [][]float64{{1, 2, 3}})
	assert.Error(t, err)
}

func TestPredict_EmptyBatch(t *testing.T) {
	f := loadTestForest(t)

	_, err := f.Predict(context.Background(), nil)
	assert.Error(t, err)
}
