package ui

import (
	"math"
	"strings"
	"testing"

	"github.com/darkspy3580/interface/internal/pipeline"
)

func dist(counts ...pipeline.CategoryCount) pipeline.Distribution {
	total := 0
	for _, cc := range counts {
		total += cc.Count
	}
	return pipeline.Distribution{Categories: counts, Total: total}
}

func TestBuildPieSlices_TwoCategories(t *testing.T) {
	d := dist(
		pipeline.CategoryCount{Label: "ARG", Count: 3},
		pipeline.CategoryCount{Label: "Non-ARG", Count: 1},
	)

	slices := buildPieSlices(d, classificationColors)
	if len(slices) != 2 {
		t.Fatalf("expected 2 slices, got %d", len(slices))
	}

	if math.Abs(slices[0].Percent-75) > 1e-9 {
		t.Errorf("expected 75%%, got %v", slices[0].Percent)
	}
	// The majority slice sweeps more than half the circle
	if !strings.Contains(slices[0].PathD, " 1 1 ") {
		t.Errorf("majority slice should use the large-arc flag: %s", slices[0].PathD)
	}
	if slices[0].FullCircle || slices[1].FullCircle {
		t.Error("neither slice should be a full circle")
	}
}

func TestBuildPieSlices_SingleCategoryIsFullCircle(t *testing.T) {
	d := dist(
		pipeline.CategoryCount{Label: "ARG", Count: 5},
		pipeline.CategoryCount{Label: "Non-ARG", Count: 0},
	)

	slices := buildPieSlices(d, classificationColors)
	if len(slices) != 1 {
		t.Fatalf("expected 1 slice, got %d", len(slices))
	}
	if !slices[0].FullCircle {
		t.Error("single surviving category should render as a full circle")
	}
}

func TestBuildPieSlices_EmptyDistribution(t *testing.T) {
	if slices := buildPieSlices(pipeline.Distribution{}, classificationColors); slices != nil {
		t.Errorf("expected no slices, got %v", slices)
	}
}

func TestBuildBars_ScaledToTallest(t *testing.T) {
	d := dist(
		pipeline.CategoryCount{Label: "High", Count: 1},
		pipeline.CategoryCount{Label: "Moderate", Count: 4},
		pipeline.CategoryCount{Label: "Low", Count: 2},
	)

	bars := buildBars(d, mobilityColors)
	if len(bars) != 3 {
		t.Fatalf("expected 3 bars, got %d", len(bars))
	}
	if bars[1].HeightPct != 100 {
		t.Errorf("tallest bar should be 100%%, got %v", bars[1].HeightPct)
	}
	if bars[0].HeightPct != 25 {
		t.Errorf("High bar should be 25%%, got %v", bars[0].HeightPct)
	}
	if bars[0].Color != "#E74C3C" {
		t.Errorf("unexpected High color: %s", bars[0].Color)
	}
}
