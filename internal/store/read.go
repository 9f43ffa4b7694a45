package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/bounce/internal/dataset"
	"github.com/roach88/bounce/internal/field"
	"github.com/roach88/bounce/internal/grid"
)

const selectRuns = `
	SELECT seq, id, seed, row_count, grid_points, derivative, digest, attempts, config, created_at
	FROM runs`

// GetRun returns the run with the given id, or ErrRunNotFound.
func (s *Store) GetRun(ctx context.Context, id string) (Run, error) {
	return s.getRun(ctx, selectRuns+` WHERE id = ?`, id)
}

// LatestRun returns the most recently written run, or ErrRunNotFound when
// the store is empty.
func (s *Store) LatestRun(ctx context.Context) (Run, error) {
	return s.getRun(ctx, selectRuns+` ORDER BY seq DESC LIMIT 1`)
}

// FindRunByDigest returns the earliest run whose dataset has the given
// digest, or ErrRunNotFound.
func (s *Store) FindRunByDigest(ctx context.Context, digest string) (Run, error) {
	return s.getRun(ctx, selectRuns+` WHERE digest = ? ORDER BY seq ASC LIMIT 1`, digest)
}

// ListRuns returns every run ordered by seq.
// Returns an empty slice (not nil) if the store is empty.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	var recs []runRecord
	if err := s.db.SelectContext(ctx, &recs, selectRuns+` ORDER BY seq ASC`); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	runs := make([]Run, 0, len(recs))
	for _, rec := range recs {
		r, err := rec.run()
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, nil
}

func (s *Store) getRun(ctx context.Context, query string, args ...any) (Run, error) {
	var rec runRecord
	if err := s.db.GetContext(ctx, &rec, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, ErrRunNotFound
		}
		return Run{}, fmt.Errorf("get run: %w", err)
	}
	return rec.run()
}

// curveRecord is the row shape of the curves table.
type curveRecord struct {
	RowIndex int `db:"row_index"`
	field.Quadruple
	Attempts      int    `db:"attempts"`
	NonFinite     int    `db:"non_finite"`
	AmplitudeLow  int    `db:"amplitude_low"`
	AmplitudeHigh int    `db:"amplitude_high"`
	TooManyMaxima int    `db:"too_many_maxima"`
	TooManyMinima int    `db:"too_many_minima"`
	Potential     []byte `db:"potential"`
	Derivative    []byte `db:"derivative"`
}

// ReadDataset loads the dataset of run. Rows come back in row order.
func (s *Store) ReadDataset(ctx context.Context, run Run) (*dataset.Dataset, error) {
	g, err := grid.New(run.GridPoints)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", run.ID, err)
	}

	var recs []curveRecord
	err = s.db.SelectContext(ctx, &recs, `
		SELECT row_index, phi_0, phi_1n, phi_1p, phi_2,
		       attempts, non_finite, amplitude_low, amplitude_high, too_many_maxima, too_many_minima,
		       potential, derivative
		FROM curves
		WHERE run_id = ?
		ORDER BY row_index ASC
	`, run.ID)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", run.ID, err)
	}

	d := &dataset.Dataset{Seed: run.Seed, Grid: g, Rows: make([]dataset.Row, 0, len(recs))}
	for _, rec := range recs {
		pot, err := decodeFloats(rec.Potential)
		if err != nil {
			return nil, fmt.Errorf("read dataset %s row %d: %w", run.ID, rec.RowIndex, err)
		}
		der, err := decodeFloats(rec.Derivative)
		if err != nil {
			return nil, fmt.Errorf("read dataset %s row %d: %w", run.ID, rec.RowIndex, err)
		}
		d.Rows = append(d.Rows, dataset.Row{
			Index:      rec.RowIndex,
			Quadruple:  rec.Quadruple,
			Potential:  pot,
			Derivative: der,
			Stats: dataset.RowStats{
				Attempts:      rec.Attempts,
				NonFinite:     rec.NonFinite,
				AmplitudeLow:  rec.AmplitudeLow,
				AmplitudeHigh: rec.AmplitudeHigh,
				TooManyMaxima: rec.TooManyMaxima,
				TooManyMinima: rec.TooManyMinima,
			},
		})
	}
	return d, nil
}
