package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/bounce/internal/config"
	"github.com/roach88/bounce/internal/dataset"
	"github.com/roach88/bounce/internal/export"
	"github.com/roach88/bounce/internal/store"
)

// configFlags are the generation knobs. A flag overrides the config file
// only when it is set on the command line.
type configFlags struct {
	path         string
	rows         int
	gridPoints   int
	seed         uint64
	workers      int
	maxAttempts  int
	noDerivative bool
}

func (f *configFlags) register(cmd *cobra.Command) {
	d := config.Default()
	fs := cmd.Flags()
	fs.StringVarP(&f.path, "config", "c", "", "path to YAML config file")
	fs.IntVar(&f.rows, "rows", d.Rows, "number of curves to generate")
	fs.IntVar(&f.gridPoints, "grid-points", d.GridPoints, "number of grid points on [0, 1]")
	fs.Uint64Var(&f.seed, "seed", d.Seed, "base seed for the per-row random streams")
	fs.IntVar(&f.workers, "workers", d.Workers, "parallel workers (0 uses GOMAXPROCS)")
	fs.IntVar(&f.maxAttempts, "max-attempts", d.MaxAttempts, "candidate budget per row")
	fs.BoolVar(&f.noDerivative, "no-derivative", false, "omit dV/dphi from the output")
}

// resolve loads the config file (or the defaults), applies explicit flags
// and validates the result.
func (f *configFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if f.path != "" {
		loaded, err := config.Load(f.path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	fs := cmd.Flags()
	if fs.Changed("rows") {
		cfg.Rows = f.rows
	}
	if fs.Changed("grid-points") {
		cfg.GridPoints = f.gridPoints
	}
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fs.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fs.Changed("max-attempts") {
		cfg.MaxAttempts = f.maxAttempts
	}
	if f.noDerivative {
		cfg.Derivative = false
	}

	if err := config.Validate(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// sourceFlags select an existing dataset: a stored run or a CSV file.
type sourceFlags struct {
	db           string
	run          string
	csv          string
	noDerivative bool
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.db, "db", "", "path to SQLite database")
	fs.StringVar(&f.run, "run", "", "run id in the database (default: latest run)")
	fs.StringVar(&f.csv, "csv", "", "path to exported CSV file")
	fs.BoolVar(&f.noDerivative, "no-derivative", false, "CSV file holds potential values only")
}

// source is a loaded dataset and where it came from.
type source struct {
	Dataset *dataset.Dataset
	Run     *store.Run // nil for CSV input
	Path    string
}

// Label names the source for reports.
func (s *source) Label() string {
	if s.Run != nil {
		return "run " + s.Run.ID
	}
	return s.Path
}

var errNoSource = errors.New("exactly one of --db or --csv is required")

// load reads the selected dataset.
func (f *sourceFlags) load(ctx context.Context) (*source, error) {
	switch {
	case (f.db == "") == (f.csv == ""):
		return nil, errNoSource
	case f.csv != "":
		d, err := export.ReadCSVFile(f.csv, !f.noDerivative)
		if err != nil {
			return nil, err
		}
		return &source{Dataset: d, Path: f.csv}, nil
	}

	if _, err := os.Stat(f.db); err != nil {
		return nil, fmt.Errorf("database not found: %w", err)
	}
	st, err := store.Open(f.db)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	var run store.Run
	if f.run != "" {
		run, err = st.GetRun(ctx, f.run)
	} else {
		run, err = st.LatestRun(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.db, err)
	}

	d, err := st.ReadDataset(ctx, run)
	if err != nil {
		return nil, err
	}
	return &source{Dataset: d, Run: &run, Path: f.db}, nil
}
