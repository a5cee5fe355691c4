// Package tabular parses uploaded delimited/spreadsheet tables and exports
// augmented result tables for download.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/darkspy3580/interface/domain/features"
)

// DataReader parses CSV and XLSX uploads into a features.Table
type DataReader struct {
	fileType string // "csv" or "xlsx"
}

// NewDataReader creates a reader for the upload named filename; the file
// extension selects the parser. Unrecognized extensions fall back to CSV,
// matching what the upload form accepts.
func NewDataReader(filename string) *DataReader {
	fileType := "csv"
	if strings.ToLower(filepath.Ext(filename)) == ".xlsx" {
		fileType = "xlsx"
	}
	return &DataReader{fileType: fileType}
}

// ReadTable parses the uploaded content into a header row plus data rows
func (r *DataReader) ReadTable(src io.Reader) (*features.Table, error) {
	switch r.fileType {
	case "xlsx":
		return r.readXLSX(src)
	default:
		return r.readCSV(src)
	}
}

func (r *DataReader) readCSV(src io.Reader) (*features.Table, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1 // ragged rows tolerated; cells map by header index

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV upload: %w", err)
	}
	return processRows(rows)
}

func (r *DataReader) readXLSX(src io.Reader) (*features.Table, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX upload: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("XLSX upload has no sheets")
	}

	// Always read the first sheet
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return processRows(rows)
}

// processRows converts raw string rows into a features.Table
func processRows(rows [][]string) (*features.Table, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("upload must have a header row and at least one data row")
	}

	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	dataRows := make([]features.RawRow, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		rowData := make(features.RawRow)
		for j, cell := range rows[i] {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}
		dataRows = append(dataRows, rowData)
	}

	return &features.Table{
		Headers: headers,
		Rows:    dataRows,
	}, nil
}
