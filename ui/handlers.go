package ui

import (
	"encoding/base64"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/darkspy3580/interface/adapters/tabular"
	"github.com/darkspy3580/interface/domain/features"
	apperrors "github.com/darkspy3580/interface/internal/errors"
	"github.com/darkspy3580/interface/internal/pipeline"
)

// indexView is the data for the upload page
type indexView struct {
	ClassifierReady bool
	HelpHTML        template.HTML
	Error           string
}

// resultsView is the data for the results page
type resultsView struct {
	Task            pipeline.Task
	RunID           string
	RowCount        int
	Warnings        []string
	DisplayHeaders  []string
	DisplayRows     [][]string
	Distribution    pipeline.Distribution
	PieSlices       []pieSlice
	Bars            []barItem
	MobilitySummary *summaryView
	CSVDownload     downloadLink
	XLSXDownload    downloadLink
}

type summaryView struct {
	Mean, Median, StdDev, Min, Max float64
}

type downloadLink struct {
	Filename string
	DataURI  template.URL
}

func (s *Server) handleIndex(c *gin.Context) {
	s.renderTemplate(c, "index.html", indexView{
		ClassifierReady: s.orchestrator.ClassifierReady(),
		HelpHTML:        s.helpHTML,
	})
}

// handleAnalyze runs one pipeline request: parse the upload, run the
// selected task, render the results page. All failures render the upload
// page with a human-readable message; nothing is retried.
func (s *Server) handleAnalyze(c *gin.Context) {
	task, err := pipeline.ParseTask(c.PostForm("task"))
	if err != nil {
		s.renderError(c, http.StatusBadRequest, "Select a task: classify or score-mobility.")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		s.renderError(c, http.StatusBadRequest, "Upload a CSV or XLSX file to proceed.")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		s.logger.Error("opening upload %s: %v", fileHeader.Filename, err)
		s.renderError(c, http.StatusBadRequest, "The uploaded file could not be read.")
		return
	}
	defer src.Close()

	table, err := tabular.NewDataReader(fileHeader.Filename).ReadTable(src)
	if err != nil {
		s.logger.Warn("parsing upload %s: %v", fileHeader.Filename, err)
		s.renderError(c, http.StatusBadRequest, "The uploaded file could not be parsed: "+err.Error())
		return
	}

	result, err := s.orchestrator.Run(c.Request.Context(), task, table)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if apperrors.GetCode(err) == apperrors.CodeModelUnavailable {
			status = http.StatusServiceUnavailable
		}
		s.renderError(c, status, err.Error())
		return
	}

	view, err := s.buildResultsView(result)
	if err != nil {
		s.logger.Error("run %s: building results view: %v", result.RunID, err)
		s.renderError(c, http.StatusInternalServerError, "Failed to prepare results for display.")
		return
	}
	s.renderTemplate(c, "results.html", view)
}

func (s *Server) renderError(c *gin.Context, status int, message string) {
	c.Status(status)
	s.renderTemplate(c, "index.html", indexView{
		ClassifierReady: s.orchestrator.ClassifierReady(),
		HelpHTML:        s.helpHTML,
		Error:           message,
	})
}

func (s *Server) buildResultsView(result *pipeline.Result) (*resultsView, error) {
	view := &resultsView{
		Task:         result.Task,
		RunID:        result.RunID,
		RowCount:     result.Distribution.Total,
		Warnings:     result.Warnings,
		Distribution: result.Distribution,
	}

	view.DisplayHeaders, view.DisplayRows = displayColumns(result)

	switch result.Task {
	case pipeline.TaskClassify:
		view.PieSlices = buildPieSlices(result.Distribution, classificationColors)
	case pipeline.TaskScoreMobility:
		view.Bars = buildBars(result.Distribution, mobilityColors)
		if result.MobilitySummary != nil {
			view.MobilitySummary = &summaryView{
				Mean:   result.MobilitySummary.Mean,
				Median: result.MobilitySummary.Median,
				StdDev: result.MobilitySummary.StdDev,
				Min:    result.MobilitySummary.Min,
				Max:    result.MobilitySummary.Max,
			}
		}
	}

	csvName, xlsxName := downloadNames(result.Task)
	csvBytes, err := tabular.WriteCSV(result.Headers, result.Rows)
	if err != nil {
		return nil, err
	}
	view.CSVDownload = downloadLink{
		Filename: csvName,
		DataURI:  dataURI("text/csv", csvBytes),
	}

	xlsxBytes, err := tabular.WriteXLSX(result.Headers, result.Rows)
	if err != nil {
		return nil, err
	}
	view.XLSXDownload = downloadLink{
		Filename: xlsxName,
		DataURI:  dataURI("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", xlsxBytes),
	}

	return view, nil
}

// displayColumns restricts the on-page table to the Node identifier (when
// uploaded) plus the derived columns; the full augmented table is still
// available via download.
func displayColumns(result *pipeline.Result) ([]string, [][]string) {
	var wanted []string
	for _, h := range result.Headers {
		switch h {
		case features.ColNode, pipeline.ColPredictions, pipeline.ColMobilityPotential, pipeline.ColMobilityCategory:
			wanted = append(wanted, h)
		}
	}

	indexOf := map[string]int{}
	for i, h := range result.Headers {
		indexOf[h] = i
	}

	rows := make([][]string, len(result.Rows))
	for i, row := range result.Rows {
		out := make([]string, len(wanted))
		for j, h := range wanted {
			out[j] = row[indexOf[h]]
		}
		rows[i] = out
	}
	return wanted, rows
}

func downloadNames(task pipeline.Task) (csvName, xlsxName string) {
	if task == pipeline.TaskClassify {
		return "arg_predictions.csv", "arg_predictions.xlsx"
	}
	return "mobility_analysis.csv", "mobility_analysis.xlsx"
}

func dataURI(contentType string, data []byte) template.URL {
	return template.URL("data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data))
}
