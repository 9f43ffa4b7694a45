package dataset

import (
	"fmt"
	"strings"

	"github.com/roach88/bounce/internal/shape"
)

// Violation describes one row that breaks a dataset invariant.
type Violation struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ValidationError lists every violation found by Validate.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, fmt.Sprintf("row %d: %s", v.Row, v.Message))
	}
	return fmt.Sprintf("%d invariant violation(s): %s", len(e.Violations), strings.Join(msgs, "; "))
}

// Validate checks that d has exactly wantRows rows in index order, that
// every curve has the grid length, and that every potential curve passes c.
// Returns *ValidationError when any check fails.
func (d *Dataset) Validate(c shape.Criteria, wantRows int) error {
	var vs []Violation
	if d.Len() != wantRows {
		vs = append(vs, Violation{Row: -1, Message: fmt.Sprintf("dataset has %d rows, want %d", d.Len(), wantRows)})
	}

	n := len(d.Grid)
	withDeriv := d.HasDerivative()
	for i, r := range d.Rows {
		if r.Index != i {
			vs = append(vs, Violation{Row: i, Message: fmt.Sprintf("row index %d out of order", r.Index)})
		}
		if len(r.Potential) != n {
			vs = append(vs, Violation{Row: i, Message: fmt.Sprintf("potential length %d, want %d", len(r.Potential), n)})
			continue
		}
		if withDeriv && len(r.Derivative) != n {
			vs = append(vs, Violation{Row: i, Message: fmt.Sprintf("derivative length %d, want %d", len(r.Derivative), n)})
		}
		if v := c.Classify(r.Potential); !v.Accepted() {
			vs = append(vs, Violation{Row: i, Message: fmt.Sprintf("curve rejected: %s", v)})
		}
	}

	if len(vs) > 0 {
		return &ValidationError{Violations: vs}
	}
	return nil
}
