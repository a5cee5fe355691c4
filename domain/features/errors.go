package features

import (
	"fmt"
	"strings"
)

// MissingColumnsError reports required feature columns absent from an upload.
// Missing preserves the order of RequiredColumns.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// CellError reports a required feature cell that could not be parsed as a number
type CellError struct {
	Column string
	Row    int // 0-based data row index
	Value  string
}

func (e *CellError) Error() string {
	return fmt.Sprintf("column %s row %d: value %q is not numeric", e.Column, e.Row+1, e.Value)
}
