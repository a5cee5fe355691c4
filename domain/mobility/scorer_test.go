package mobility

import (
	"errors"
	"math"
	"testing"

	"github.com/darkspy3580/interface/domain/features"
)

// matrixFromColumns builds a validated matrix with the given columns set
// and every other required column zeroed.
func matrixFromColumns(t *testing.T, n int, cols map[string][]float64) *features.Matrix {
	t.Helper()
	data := make([][]float64, n)
	for i := range data {
		row := make([]float64, len(features.RequiredColumns))
		for j, name := range features.RequiredColumns {
			if vals, ok := cols[name]; ok {
				if len(vals) != n {
					t.Fatalf("column %s has %d values for %d rows", name, len(vals), n)
				}
				row[j] = vals[i]
			}
		}
		data[i] = row
	}
	return &features.Matrix{Columns: features.RequiredColumns, Data: data}
}

func TestScore_WorkedThreeRowBatch(t *testing.T) {
	m := matrixFromColumns(t, 3, map[string][]float64{
		features.ColDegree:                      {1, 2, 4},
		features.ColBetweennessCentrality:       {0, 5, 10},
		features.ColClusteringCoefficient:       {0.1, 0.2, 0.9},
		features.ColPositiveTopologyCoefficient: {0, 0, 1},
		features.ColNeighborhoodConnectivity:    {1, 1, 2},
		features.ColCommunicationEfficiency:     {0.5, 0.5, 0.5},
	})

	res, err := Score(m)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	// Raw scores: 0.2275, 0.38, 0.885. The row dominating every term
	// normalizes to exactly 1.0, the weakest to exactly 0.0.
	if res.Potentials[2] != 1.0 {
		t.Errorf("expected top row potential 1.0, got %v", res.Potentials[2])
	}
	if res.Categories[2] != CategoryHigh {
		t.Errorf("expected top row High, got %s", res.Categories[2])
	}
	if res.Potentials[0] != 0.0 {
		t.Errorf("expected bottom row potential 0.0, got %v", res.Potentials[0])
	}
	if res.Categories[0] != CategoryLow {
		t.Errorf("expected bottom row Low, got %s", res.Categories[0])
	}

	middle := (0.38 - 0.2275) / (0.885 - 0.2275)
	if math.Abs(res.Potentials[1]-middle) > 1e-9 {
		t.Errorf("expected middle row potential %v, got %v", middle, res.Potentials[1])
	}
	if res.Categories[1] != CategoryLow {
		t.Errorf("expected middle row Low, got %s", res.Categories[1])
	}

	if res.Degenerate {
		t.Error("batch with distinct scores should not be degenerate")
	}
}

func TestScore_PotentialsStayInUnitInterval(t *testing.T) {
	m := matrixFromColumns(t, 5, map[string][]float64{
		features.ColDegree:                      {3, 7, 1, 9, 2},
		features.ColBetweennessCentrality:       {0.5, 2, 8, 1, 0},
		features.ColClusteringCoefficient:       {0.9, 0.1, 0.4, 0.6, 0.2},
		features.ColPositiveTopologyCoefficient: {1, 0, 0.5, 0.25, 0.75},
		features.ColNeighborhoodConnectivity:    {4, 2, 6, 1, 3},
		features.ColCommunicationEfficiency:     {0.1, 0.9, 0.3, 0.7, 0.5},
	})

	res, err := Score(m)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	for i, p := range res.Potentials {
		if p < 0 || p > 1 || math.IsNaN(p) {
			t.Errorf("row %d potential %v outside [0,1]", i, p)
		}
	}
	if res.Summary.Min != 0 || res.Summary.Max != 1 {
		t.Errorf("min-max normalization should pin summary to [0,1], got [%v,%v]",
			res.Summary.Min, res.Summary.Max)
	}
}

func TestScore_DegenerateBatchDefinedAsZero(t *testing.T) {
	// Identical rows produce identical raw scores: normalization denominator
	// is zero, so the policy pins every potential to 0.0.
	m := matrixFromColumns(t, 3, map[string][]float64{
		features.ColDegree:                      {2, 2, 2},
		features.ColBetweennessCentrality:       {1, 1, 1},
		features.ColClusteringCoefficient:       {0.5, 0.5, 0.5},
		features.ColPositiveTopologyCoefficient: {0.5, 0.5, 0.5},
		features.ColNeighborhoodConnectivity:    {1, 1, 1},
		features.ColCommunicationEfficiency:     {0.5, 0.5, 0.5},
	})

	res, err := Score(m)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if !res.Degenerate {
		t.Fatal("identical rows should mark the batch degenerate")
	}
	for i, p := range res.Potentials {
		if p != 0.0 {
			t.Errorf("row %d: degenerate potential should be 0.0, got %v", i, p)
		}
		if res.Categories[i] != CategoryLow {
			t.Errorf("row %d: degenerate category should be Low, got %s", i, res.Categories[i])
		}
	}
}

func TestScore_SingleRowIsDegenerate(t *testing.T) {
	m := matrixFromColumns(t, 1, map[string][]float64{
		features.ColDegree:                  {5},
		features.ColCommunicationEfficiency: {0.8},
	})

	res, err := Score(m)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if !res.Degenerate {
		t.Error("single-row batch should be degenerate")
	}
	if res.Potentials[0] != 0.0 {
		t.Errorf("single-row potential should be 0.0, got %v", res.Potentials[0])
	}
}

func TestScore_ZeroColumnMaximumContributesZero(t *testing.T) {
	// All BetweennessCentrality zero: the ratio term must contribute 0, not NaN
	m := matrixFromColumns(t, 2, map[string][]float64{
		features.ColDegree:                  {1, 2},
		features.ColBetweennessCentrality:   {0, 0},
		features.ColCommunicationEfficiency: {0.2, 0.8},
	})

	res, err := Score(m)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	for i, p := range res.Potentials {
		if math.IsNaN(p) {
			t.Errorf("row %d potential is NaN", i)
		}
	}
}

func TestScore_EmptyBatch(t *testing.T) {
	m := &features.Matrix{Columns: features.RequiredColumns}
	if _, err := Score(m); !errors.Is(err, ErrEmptyBatch) {
		t.Fatalf("expected ErrEmptyBatch, got %v", err)
	}
}

func TestCategorize_BoundariesAreClosedOnLowerEnd(t *testing.T) {
	cases := []struct {
		potential float64
		want      Category
	}{
		{1.0, CategoryHigh},
		{0.7, CategoryHigh},
		{0.6999999, CategoryModerate},
		{0.3, CategoryModerate},
		{0.2999999, CategoryLow},
		{0.0, CategoryLow},
	}
	for _, tc := range cases {
		if got := Categorize(tc.potential); got != tc.want {
			t.Errorf("Categorize(%v) = %s, want %s", tc.potential, got, tc.want)
		}
	}
}
