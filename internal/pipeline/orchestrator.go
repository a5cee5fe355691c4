package pipeline

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"

	"github.com/darkspy3580/interface/domain/classify"
	"github.com/darkspy3580/interface/domain/features"
	"github.com/darkspy3580/interface/domain/mobility"
	"github.com/darkspy3580/interface/internal"
	apperrors "github.com/darkspy3580/interface/internal/errors"
)

// Orchestrator runs the upload, validate, analyze pipeline for one
// request at a time. It holds no per-request state; the classifier it wraps
// is read-only, so a single Orchestrator is shared across requests.
type Orchestrator struct {
	classifier *classify.Classifier
	logger     *internal.Logger
}

// NewOrchestrator creates a pipeline orchestrator around the given
// classifier. The classifier may wrap a nil model, in which case only the
// classification task is refused.
func NewOrchestrator(classifier *classify.Classifier, logger *internal.Logger) *Orchestrator {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Orchestrator{
		classifier: classifier,
		logger:     logger.Named("Pipeline"),
	}
}

// ClassifierReady reports whether the classification task is available
func (o *Orchestrator) ClassifierReady() bool {
	return o.classifier.Ready()
}

// Run executes one pipeline run over an uploaded table. All failures are
// scoped to this run; no partial result is ever returned alongside an error.
func (o *Orchestrator) Run(ctx context.Context, task Task, table *features.Table) (*Result, error) {
	runID := uuid.NewString()
	o.logger.Info("run %s: task=%s rows=%d", runID, task, len(table.Rows))

	matrix, err := features.Validate(table)
	if err != nil {
		o.logger.Warn("run %s: validation failed: %v", runID, err)
		return nil, translateValidation(err)
	}

	result := &Result{
		RunID: runID,
		Task:  task,
		State: StateValidated,
	}

	switch task {
	case TaskClassify:
		if err := o.runClassify(ctx, matrix, table, result); err != nil {
			return nil, err
		}
	case TaskScoreMobility:
		if err := o.runScore(matrix, table, result); err != nil {
			return nil, err
		}
	default:
		return nil, apperrors.InvalidInput("unknown task: " + string(task))
	}

	result.State = StateRendered
	o.logger.Info("run %s: completed state=%s", runID, result.State)
	return result, nil
}

func (o *Orchestrator) runClassify(ctx context.Context, matrix *features.Matrix, table *features.Table, result *Result) error {
	labels, err := o.classifier.Classify(ctx, matrix)
	if err != nil {
		if errors.Is(err, classify.ErrModelUnavailable) {
			return apperrors.ModelUnavailable("classification model is not loaded; mobility analysis remains available")
		}
		return apperrors.Wrap(err, "classification failed")
	}
	result.State = StateClassified

	derived := make([]string, len(labels))
	for i, label := range labels {
		derived[i] = string(label)
	}
	result.Headers, result.Rows = augment(table, [][]string{derived}, []string{ColPredictions})

	counts := map[string]int{}
	for _, label := range labels {
		counts[string(label)]++
	}
	for _, label := range classify.LabelOrder {
		result.Distribution.Categories = append(result.Distribution.Categories, CategoryCount{
			Label: string(label),
			Count: counts[string(label)],
		})
	}
	result.Distribution.Total = len(labels)
	return nil
}

func (o *Orchestrator) runScore(matrix *features.Matrix, table *features.Table, result *Result) error {
	scored, err := mobility.Score(matrix)
	if err != nil {
		return apperrors.Wrap(err, "mobility scoring failed")
	}
	result.State = StateScored
	result.MobilitySummary = &scored.Summary

	if scored.Degenerate {
		result.Warnings = append(result.Warnings,
			"all rows scored identically; mobility potential is defined as 0.0 for the whole batch")
	}

	potentials := make([]string, len(scored.Potentials))
	categories := make([]string, len(scored.Categories))
	for i := range scored.Potentials {
		potentials[i] = strconv.FormatFloat(scored.Potentials[i], 'f', -1, 64)
		categories[i] = string(scored.Categories[i])
	}
	result.Headers, result.Rows = augment(table,
		[][]string{potentials, categories},
		[]string{ColMobilityPotential, ColMobilityCategory})

	counts := map[mobility.Category]int{}
	for _, c := range scored.Categories {
		counts[c]++
	}
	for _, c := range mobility.CategoryOrder {
		result.Distribution.Categories = append(result.Distribution.Categories, CategoryCount{
			Label: string(c),
			Count: counts[c],
		})
	}
	result.Distribution.Total = len(scored.Categories)
	return nil
}

// augment appends derived columns to the uploaded table, preserving the
// original header order and row order.
func augment(table *features.Table, derived [][]string, names []string) ([]string, [][]string) {
	headers := make([]string, 0, len(table.Headers)+len(names))
	headers = append(headers, table.Headers...)
	headers = append(headers, names...)

	rows := make([][]string, len(table.Rows))
	for i, raw := range table.Rows {
		row := make([]string, 0, len(headers))
		for _, h := range table.Headers {
			row = append(row, raw[h])
		}
		for _, col := range derived {
			row = append(row, col[i])
		}
		rows[i] = row
	}
	return headers, rows
}

// translateValidation maps domain validation failures to coded app errors
func translateValidation(err error) error {
	var missing *features.MissingColumnsError
	if errors.As(err, &missing) {
		return apperrors.MissingColumns(missing.Missing)
	}
	var cell *features.CellError
	if errors.As(err, &cell) {
		return apperrors.MalformedInput(cell.Error())
	}
	return apperrors.Wrap(err, "validation failed")
}
