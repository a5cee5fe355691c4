package pipeline

import (
	"fmt"

	"github.com/darkspy3580/interface/domain/mobility"
)

// Task selects which analysis runs over a validated upload
type Task string

const (
	TaskClassify      Task = "classify"
	TaskScoreMobility Task = "score-mobility"
)

// ParseTask maps a request's task selector to a Task
func ParseTask(s string) (Task, error) {
	switch Task(s) {
	case TaskClassify:
		return TaskClassify, nil
	case TaskScoreMobility:
		return TaskScoreMobility, nil
	default:
		return "", fmt.Errorf("unknown task %q", s)
	}
}

// State tracks a run through its per-request lifecycle. Runs move from
// Uploaded to Validated, then to Classified or Scored, then Rendered; any
// failure is terminal for that run only.
type State string

const (
	StateUploaded   State = "uploaded"
	StateValidated  State = "validated"
	StateClassified State = "classified"
	StateScored     State = "scored"
	StateRendered   State = "rendered"
	StateFailed     State = "failed"
)

// Derived column names appended to the uploaded table
const (
	ColPredictions       = "Predictions"
	ColMobilityPotential = "mobility_potential"
	ColMobilityCategory  = "mobility_category"
)

// CategoryCount is one slice of a distribution summary
type CategoryCount struct {
	Label string
	Count int
}

// Distribution summarizes output category counts in a stable display order
type Distribution struct {
	Categories []CategoryCount
	Total      int
}

// Result is the terminal output of one pipeline run: the uploaded table
// augmented with derived columns, plus the category distribution. Results
// live for one request/response cycle and are never persisted.
type Result struct {
	RunID        string
	Task         Task
	State        State
	Headers      []string
	Rows         [][]string
	Distribution Distribution
	Warnings     []string

	// MobilitySummary is set for score-mobility runs only
	MobilitySummary *mobility.Summary
}
