package features

import (
	"strconv"
	"strings"
)

// Validate checks that every column in RequiredColumns is present on the
// table and numeric, and returns the validated sub-table restricted to
// exactly those columns, row order preserved.
//
// Column checks run before any cell is parsed: a table missing any required
// column fails with MissingColumnsError naming all absent columns, and no
// partial matrix is produced. A present-but-unparseable cell fails with
// CellError.
func Validate(t *Table) (*Matrix, error) {
	var missing []string
	for _, col := range RequiredColumns {
		if !t.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Missing: missing}
	}

	m := &Matrix{
		Columns: RequiredColumns,
		Data:    make([][]float64, len(t.Rows)),
		HasNode: t.HasColumn(ColNode),
	}
	if m.HasNode {
		m.Nodes = make([]string, len(t.Rows))
	}

	for i, row := range t.Rows {
		values := make([]float64, len(RequiredColumns))
		for j, col := range RequiredColumns {
			cell := strings.TrimSpace(row[col])
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, &CellError{Column: col, Row: i, Value: row[col]}
			}
			values[j] = v
		}
		m.Data[i] = values
		if m.HasNode {
			m.Nodes[i] = row[ColNode]
		}
	}

	return m, nil
}
