package generator

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/roach88/bounce/internal/config"
	"github.com/roach88/bounce/internal/dataset"
	"github.com/roach88/bounce/internal/grid"
)

// ProgressFunc is called after each finished row with the number of rows
// done so far. It may be called from several goroutines at once.
type ProgressFunc func(done, total int)

type options struct {
	progress ProgressFunc
	logger   *slog.Logger
}

// Option configures Generate.
type Option func(*options)

// WithProgress registers a progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(o *options) { o.progress = fn }
}

// WithLogger overrides the logger used for run-level messages.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// NewRowGenerator builds the per-row generator described by cfg.
func NewRowGenerator(cfg config.Config) (*RowGenerator, error) {
	g, err := grid.New(cfg.GridPoints)
	if err != nil {
		return nil, err
	}
	return &RowGenerator{
		Grid:        g,
		Criteria:    cfg.Criteria(),
		Seed:        cfg.Seed,
		Orientation: cfg.OrientationProbability,
		MaxAttempts: cfg.MaxAttempts,
		Derivative:  cfg.Derivative,
	}, nil
}

// Generate produces a dataset of cfg.Rows accepted rows.
//
// cfg must already be validated. The returned dataset is complete: either
// every row is accepted or an error is returned and no dataset is.
func Generate(ctx context.Context, cfg config.Config, opts ...Option) (*dataset.Dataset, error) {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	rg, err := NewRowGenerator(cfg)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	workers := cfg.EffectiveWorkers()
	o.logger.Info("generation starting",
		"rows", cfg.Rows,
		"grid_points", cfg.GridPoints,
		"workers", workers,
		"seed", cfg.Seed,
		"max_attempts", cfg.MaxAttempts,
	)
	start := time.Now()

	rows := make([]dataset.Row, cfg.Rows)
	var done atomic.Int64
	logEvery := max(cfg.Rows/10, 1)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range rows {
		eg.Go(func() error {
			r, err := rg.Generate(egCtx, i)
			if err != nil {
				return err
			}
			rows[i] = r

			n := int(done.Add(1))
			if o.progress != nil {
				o.progress(n, cfg.Rows)
			}
			if n%logEvery == 0 {
				o.logger.Debug("generation progress", "done", n, "total", cfg.Rows)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	d := &dataset.Dataset{Seed: cfg.Seed, Grid: rg.Grid, Rows: rows}
	sum := d.Summarize()
	o.logger.Info("generation finished",
		"rows", sum.Rows,
		"attempts", sum.Totals.Attempts,
		"acceptance_rate", sum.AcceptanceRate,
		"elapsed", time.Since(start),
	)
	return d, nil
}
