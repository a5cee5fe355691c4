package ui

import (
	"fmt"
	"math"

	"github.com/darkspy3580/interface/internal/pipeline"
)

// Original palette: classification pie and mobility bars keep distinct hues
var (
	classificationColors = map[string]string{
		"ARG":     "#3498DB",
		"Non-ARG": "#E74C3C",
	}
	mobilityColors = map[string]string{
		"High":     "#E74C3C",
		"Moderate": "#F1C40F",
		"Low":      "#2ECC71",
	}
)

// pieSlice is one category wedge of the classification distribution chart,
// pre-rendered as an SVG path in a 200×200 viewBox
type pieSlice struct {
	Label      string
	Count      int
	Percent    float64
	Color      string
	PathD      string
	FullCircle bool
}

// barItem is one category column of the mobility distribution chart
type barItem struct {
	Label     string
	Count     int
	Percent   float64
	Color     string
	HeightPct float64
}

const (
	pieCX = 100.0
	pieCY = 100.0
	pieR  = 90.0
)

// buildPieSlices converts a distribution into SVG pie wedges. Zero-count
// categories are skipped; a single surviving category renders as a full
// circle since a 360° arc path degenerates.
func buildPieSlices(dist pipeline.Distribution, colors map[string]string) []pieSlice {
	if dist.Total == 0 {
		return nil
	}

	nonZero := 0
	for _, cc := range dist.Categories {
		if cc.Count > 0 {
			nonZero++
		}
	}

	var slices []pieSlice
	angle := -math.Pi / 2 // start at 12 o'clock
	for _, cc := range dist.Categories {
		if cc.Count == 0 {
			continue
		}
		frac := float64(cc.Count) / float64(dist.Total)
		slice := pieSlice{
			Label:   cc.Label,
			Count:   cc.Count,
			Percent: 100 * frac,
			Color:   colors[cc.Label],
		}
		if nonZero == 1 {
			slice.FullCircle = true
			slices = append(slices, slice)
			break
		}

		start := angle
		end := angle + frac*2*math.Pi
		angle = end

		x1, y1 := pieCX+pieR*math.Cos(start), pieCY+pieR*math.Sin(start)
		x2, y2 := pieCX+pieR*math.Cos(end), pieCY+pieR*math.Sin(end)
		largeArc := 0
		if frac > 0.5 {
			largeArc = 1
		}
		slice.PathD = fmt.Sprintf("M%.2f,%.2f L%.2f,%.2f A%.1f,%.1f 0 %d 1 %.2f,%.2f Z",
			pieCX, pieCY, x1, y1, pieR, pieR, largeArc, x2, y2)
		slices = append(slices, slice)
	}
	return slices
}

// buildBars converts a distribution into bar-chart columns scaled to the
// tallest category.
func buildBars(dist pipeline.Distribution, colors map[string]string) []barItem {
	maxCount := 0
	for _, cc := range dist.Categories {
		if cc.Count > maxCount {
			maxCount = cc.Count
		}
	}
	if maxCount == 0 {
		return nil
	}

	bars := make([]barItem, 0, len(dist.Categories))
	for _, cc := range dist.Categories {
		bars = append(bars, barItem{
			Label:     cc.Label,
			Count:     cc.Count,
			Percent:   100 * float64(cc.Count) / float64(dist.Total),
			Color:     colors[cc.Label],
			HeightPct: 100 * float64(cc.Count) / float64(maxCount),
		})
	}
	return bars
}
