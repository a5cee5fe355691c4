package mobility

// Category is the ordinal mobility tier assigned to a normalized potential
type Category string

const (
	CategoryHigh     Category = "High"
	CategoryModerate Category = "Moderate"
	CategoryLow      Category = "Low"
)

// CategoryOrder is the stable display order for distribution summaries
var CategoryOrder = []Category{CategoryHigh, CategoryModerate, CategoryLow}

// Summary holds batch statistics over the normalized potential column
type Summary struct {
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
}

// Result is the outcome of scoring one uploaded batch.
// Potentials and Categories are index-aligned with the input rows.
// Degenerate is set when every raw score in the batch was identical; in that
// case all potentials are defined as 0.0 rather than propagating a
// divide-by-zero.
type Result struct {
	Potentials []float64
	Categories []Category
	Degenerate bool
	Summary    Summary
}
