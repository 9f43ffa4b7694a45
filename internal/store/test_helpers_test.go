package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/roach88/bounce/internal/config"
	"github.com/roach88/bounce/internal/dataset"
	"github.com/roach88/bounce/internal/field"
	"github.com/roach88/bounce/internal/grid"
)

// createTestStore creates a new store in a temp dir for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestDataset builds a small hand-made dataset on a 4-point grid.
func createTestDataset(t *testing.T, rows int, withDeriv bool) *dataset.Dataset {
	t.Helper()
	g, err := grid.New(4)
	if err != nil {
		t.Fatalf("grid.New() failed: %v", err)
	}
	d := &dataset.Dataset{Seed: 1<<63 + 5, Grid: g}
	for i := 0; i < rows; i++ {
		h := 0.1 + 0.01*float64(i)
		r := dataset.Row{
			Index:     i,
			Quadruple: field.Quadruple{Phi0: 0.4, Phi1n: 0.9, Phi1p: 0.1, Phi2: 0.6},
			Potential: []float64{0, h, -0.5, -1},
			Stats:     dataset.RowStats{Attempts: 3 + i, AmplitudeLow: 1, TooManyMinima: 1 + i},
		}
		if withDeriv {
			r.Derivative = []float64{0, 0.5, -1.5, 0}
		}
		d.Rows = append(d.Rows, r)
	}
	return d
}

// createTestRun builds the run header for d.
func createTestRun(t *testing.T, id string, d *dataset.Dataset) Run {
	t.Helper()
	cfg := config.Default()
	cfg.Rows = d.Len()
	cfg.GridPoints = len(d.Grid)
	cfg.Seed = d.Seed
	cfg.Derivative = d.HasDerivative()

	run, err := NewRun(id, cfg, d, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	if err != nil {
		t.Fatalf("NewRun() failed: %v", err)
	}
	return run
}
