package mobility

import (
	"errors"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"

	"github.com/darkspy3580/interface/domain/features"
)

// Mobility-potential term weights. The three ratio terms are scaled by the
// batch-wide maximum of their column, so scores are relative to the uploaded
// batch, not absolute across uploads.
const (
	weightCommunicationEfficiency  = 0.20
	weightDegree                   = 0.15
	weightBetweennessCentrality    = 0.20
	weightClusteringCoefficient    = 0.15
	weightPositiveTopologyCoeff    = 0.15
	weightNeighborhoodConnectivity = 0.15
)

// ErrEmptyBatch is returned when a validated matrix has no data rows
var ErrEmptyBatch = errors.New("mobility scoring requires at least one data row")

// Score computes the normalized mobility potential and category for every
// row of a validated feature matrix.
//
// Raw scores are a weighted sum of six topology features; the normalized
// potential is the raw score min-max scaled across the batch, so adding or
// removing a row changes every other row's potential. When all raw scores
// are identical the normalization denominator is zero; the potential is then
// defined as 0.0 for every row and Result.Degenerate is set so callers can
// surface a warning.
func Score(m *features.Matrix) (*Result, error) {
	if m.NumRows() == 0 {
		return nil, ErrEmptyBatch
	}

	ce := m.Column(features.ColCommunicationEfficiency)
	degree := m.Column(features.ColDegree)
	betweenness := m.Column(features.ColBetweennessCentrality)
	clustering := m.Column(features.ColClusteringCoefficient)
	positive := m.Column(features.ColPositiveTopologyCoefficient)
	neighborhood := m.Column(features.ColNeighborhoodConnectivity)

	maxDegree := floats.Max(degree)
	maxBetweenness := floats.Max(betweenness)
	maxNeighborhood := floats.Max(neighborhood)

	raw := make([]float64, m.NumRows())
	for i := range raw {
		raw[i] = weightCommunicationEfficiency*ce[i] +
			weightDegree*ratio(degree[i], maxDegree) +
			weightBetweennessCentrality*ratio(betweenness[i], maxBetweenness) +
			weightClusteringCoefficient*clustering[i] +
			weightPositiveTopologyCoeff*positive[i] +
			weightNeighborhoodConnectivity*ratio(neighborhood[i], maxNeighborhood)
	}

	res := &Result{
		Potentials: make([]float64, len(raw)),
		Categories: make([]Category, len(raw)),
	}

	rawMin := floats.Min(raw)
	rawMax := floats.Max(raw)
	if rawMax == rawMin {
		// Degenerate batch: every potential defined as 0.0
		res.Degenerate = true
	} else {
		span := rawMax - rawMin
		for i, r := range raw {
			res.Potentials[i] = (r - rawMin) / span
		}
	}

	for i, p := range res.Potentials {
		res.Categories[i] = Categorize(p)
	}

	summary, err := summarize(res.Potentials)
	if err != nil {
		return nil, err
	}
	res.Summary = summary

	return res, nil
}

// Categorize buckets a normalized potential into its mobility tier.
// Tier bounds are closed on the lower end: exactly 0.7 is High and exactly
// 0.3 is Moderate.
func Categorize(potential float64) Category {
	switch {
	case potential >= 0.7:
		return CategoryHigh
	case potential >= 0.3:
		return CategoryModerate
	default:
		return CategoryLow
	}
}

// ratio divides by a batch-wide column maximum, contributing zero when the
// whole column is zero instead of dividing by zero.
func ratio(v, max float64) float64 {
	if max == 0 {
		return 0
	}
	return v / max
}

func summarize(potentials []float64) (Summary, error) {
	mean, err := stats.Mean(potentials)
	if err != nil {
		return Summary{}, err
	}
	median, err := stats.Median(potentials)
	if err != nil {
		return Summary{}, err
	}
	stdDev, err := stats.StandardDeviation(potentials)
	if err != nil {
		return Summary{}, err
	}
	min, err := stats.Min(potentials)
	if err != nil {
		return Summary{}, err
	}
	max, err := stats.Max(potentials)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Mean:   mean,
		Median: median,
		StdDev: stdDev,
		Min:    min,
		Max:    max,
	}, nil
}
