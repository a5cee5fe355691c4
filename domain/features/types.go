package features

// Graph-topology feature columns required on every uploaded table.
// Names are matched case-sensitively against the upload header row.
const (
	ColNearestARGDistance          = "NearestARGDistance"
	ColAverageARGDistance          = "AverageARGDistance"
	ColCommunicationEfficiency     = "CommunicationEfficiency"
	ColPositiveTopologyCoefficient = "PositiveTopologyCoefficient"
	ColDegree                      = "Degree"
	ColClusteringCoefficient       = "ClusteringCoefficient"
	ColBetweennessCentrality       = "BetweennessCentrality"
	ColClosenessCentrality         = "ClosenessCentrality"
	ColEccentricity                = "Eccentricity"
	ColNeighborhoodConnectivity    = "NeighborhoodConnectivity"
	ColTopologicalCoefficient      = "TopologicalCoefficient"

	// ColNode is the optional identifier column, passed through when present.
	ColNode = "Node"
)

// RequiredColumns lists the feature columns every upload must carry,
// in the order the model was trained on.
var RequiredColumns = []string{
	ColNearestARGDistance,
	ColAverageARGDistance,
	ColCommunicationEfficiency,
	ColPositiveTopologyCoefficient,
	ColDegree,
	ColClusteringCoefficient,
	ColBetweennessCentrality,
	ColClosenessCentrality,
	ColEccentricity,
	ColNeighborhoodConnectivity,
	ColTopologicalCoefficient,
}

// RawRow holds one uploaded record as raw header-to-cell strings
type RawRow map[string]string

// Table is an uploaded table: a header row plus raw data rows
type Table struct {
	Headers []string
	Rows    []RawRow
}

// HasColumn reports whether the table's header row contains name (exact match)
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// Matrix is the validated numeric sub-table restricted to RequiredColumns.
// Data is rows × len(Columns), input row order preserved. Nodes carries the
// optional Node identifier per row; it is empty when the upload had no Node
// column.
type Matrix struct {
	Columns []string
	Data    [][]float64
	Nodes   []string
	HasNode bool
}

// NumRows returns the number of data rows
func (m *Matrix) NumRows() int {
	return len(m.Data)
}

// Column returns the values of the named feature column in row order.
// Returns nil if the column is not part of the matrix.
func (m *Matrix) Column(name string) []float64 {
	idx := -1
	for i, c := range m.Columns {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	out := make([]float64, len(m.Data))
	for i, row := range m.Data {
		out[i] = row[idx]
	}
	return out
}
