package store

import (
	"context"
	"fmt"

	"github.com/roach88/bounce/internal/dataset"
)

// WriteRun inserts run and every row of d in a single transaction.
// Returns the run with Seq assigned. Writing a run id twice is an error.
func (s *Store) WriteRun(ctx context.Context, run Run, d *dataset.Dataset) (Run, error) {
	if run.Rows != d.Len() {
		return Run{}, fmt.Errorf("write run: header has %d rows, dataset has %d", run.Rows, d.Len())
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return Run{}, fmt.Errorf("write run: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	res, err := tx.NamedExecContext(ctx, `
		INSERT INTO runs
		(id, seed, row_count, grid_points, derivative, digest, attempts, config, created_at)
		VALUES (:id, :seed, :row_count, :grid_points, :derivative, :digest, :attempts, :config, :created_at)
	`, run.record())
	if err != nil {
		return Run{}, fmt.Errorf("write run: %w", err)
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return Run{}, fmt.Errorf("write run: last insert id: %w", err)
	}
	run.Seq = seq

	stmt, err := tx.PreparexContext(ctx, `
		INSERT INTO curves
		(run_id, row_index, phi_0, phi_1n, phi_1p, phi_2,
		 attempts, non_finite, amplitude_low, amplitude_high, too_many_maxima, too_many_minima,
		 potential, derivative)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return Run{}, fmt.Errorf("write run: prepare curves: %w", err)
	}
	defer stmt.Close()

	for _, r := range d.Rows {
		q, st := r.Quadruple, r.Stats
		_, err := stmt.ExecContext(ctx,
			run.ID, r.Index, q.Phi0, q.Phi1n, q.Phi1p, q.Phi2,
			st.Attempts, st.NonFinite, st.AmplitudeLow, st.AmplitudeHigh, st.TooManyMaxima, st.TooManyMinima,
			encodeFloats(r.Potential), encodeFloats(r.Derivative),
		)
		if err != nil {
			return Run{}, fmt.Errorf("write run: row %d: %w", r.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("write run: commit: %w", err)
	}
	return run, nil
}

// DeleteRun removes a run and its curves. Deleting an unknown run returns
// ErrRunNotFound.
func (s *Store) DeleteRun(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("delete run %s: %w", id, ErrRunNotFound)
	}
	return nil
}
