package store

import (
	"bytes"
	"fmt"
	"time"

	"github.com/roach88/bounce/internal/config"
	"github.com/roach88/bounce/internal/dataset"
)

// Run is the stored header of one generation run.
type Run struct {
	Seq        int64     `json:"seq"`
	ID         string    `json:"id"`
	Seed       uint64    `json:"seed"`
	Rows       int       `json:"rows"`
	GridPoints int       `json:"grid_points"`
	Derivative bool      `json:"derivative"`
	Digest     string    `json:"digest"`
	Attempts   int       `json:"attempts"`
	Config     string    `json:"config"` // effective config as YAML
	CreatedAt  time.Time `json:"created_at"`
}

// NewRun describes the run that produced d under cfg.
func NewRun(id string, cfg config.Config, d *dataset.Dataset, createdAt time.Time) (Run, error) {
	var buf bytes.Buffer
	if err := config.Write(&buf, cfg); err != nil {
		return Run{}, fmt.Errorf("new run: %w", err)
	}

	return Run{
		ID:         id,
		Seed:       d.Seed,
		Rows:       d.Len(),
		GridPoints: len(d.Grid),
		Derivative: d.HasDerivative(),
		Digest:     d.Digest(),
		Attempts:   d.Summarize().Totals.Attempts,
		Config:     buf.String(),
		CreatedAt:  createdAt.UTC(),
	}, nil
}

// ParsedConfig decodes the stored config.
func (r Run) ParsedConfig() (config.Config, error) {
	return config.Parse([]byte(r.Config))
}

// runRecord is the row shape of the runs table.
type runRecord struct {
	Seq        int64  `db:"seq"`
	ID         string `db:"id"`
	Seed       int64  `db:"seed"`
	Rows       int    `db:"row_count"`
	GridPoints int    `db:"grid_points"`
	Derivative bool   `db:"derivative"`
	Digest     string `db:"digest"`
	Attempts   int    `db:"attempts"`
	Config     string `db:"config"`
	CreatedAt  string `db:"created_at"`
}

func (r Run) record() runRecord {
	return runRecord{
		Seq:        r.Seq,
		ID:         r.ID,
		Seed:       int64(r.Seed),
		Rows:       r.Rows,
		GridPoints: r.GridPoints,
		Derivative: r.Derivative,
		Digest:     r.Digest,
		Attempts:   r.Attempts,
		Config:     r.Config,
		CreatedAt:  r.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func (rec runRecord) run() (Run, error) {
	created, err := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	if err != nil {
		return Run{}, fmt.Errorf("parse created_at of run %s: %w", rec.ID, err)
	}
	return Run{
		Seq:        rec.Seq,
		ID:         rec.ID,
		Seed:       uint64(rec.Seed),
		Rows:       rec.Rows,
		GridPoints: rec.GridPoints,
		Derivative: rec.Derivative,
		Digest:     rec.Digest,
		Attempts:   rec.Attempts,
		Config:     rec.Config,
		CreatedAt:  created,
	}, nil
}
