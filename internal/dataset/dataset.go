package dataset

import (
	"fmt"

	"github.com/roach88/bounce/internal/field"
	"github.com/roach88/bounce/internal/grid"
)

// Row is one accepted curve and the control points that produced it.
type Row struct {
	Index      int
	Quadruple  field.Quadruple
	Potential  []float64
	Derivative []float64 // nil when derivatives were not requested
	Stats      RowStats
}

// Column returns the potential values followed by the derivative values.
func (r Row) Column() []float64 {
	out := make([]float64, 0, len(r.Potential)+len(r.Derivative))
	out = append(out, r.Potential...)
	return append(out, r.Derivative...)
}

// Dataset is the full output of a run.
type Dataset struct {
	Seed uint64
	Grid grid.Grid
	Rows []Row
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// HasDerivative reports whether rows carry derivative curves.
func (d *Dataset) HasDerivative() bool {
	return len(d.Rows) > 0 && d.Rows[0].Derivative != nil
}

// ColumnLength is the number of values per exported column.
func (d *Dataset) ColumnLength() int {
	if d.HasDerivative() {
		return 2 * len(d.Grid)
	}
	return len(d.Grid)
}

// ColumnName returns the exported column name of row i.
func ColumnName(i int) string {
	return fmt.Sprintf("v%d", i)
}
