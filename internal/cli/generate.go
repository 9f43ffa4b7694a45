package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/roach88/bounce/internal/config"
	"github.com/roach88/bounce/internal/dataset"
	"github.com/roach88/bounce/internal/export"
	"github.com/roach88/bounce/internal/generator"
	"github.com/roach88/bounce/internal/runid"
	"github.com/roach88/bounce/internal/store"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	config   configFlags
	Output   string
	Database string

	// RunIDs allows overriding the run id generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	RunIDs runid.Generator

	// Now allows overriding the run timestamp (for testing).
	Now func() time.Time
}

// GenerateResult is the JSON payload of the generate command.
type GenerateResult struct {
	RunID     string          `json:"run_id,omitempty"`
	Output    string          `json:"output,omitempty"`
	Digest    string          `json:"digest"`
	Duplicate string          `json:"duplicate_of,omitempty"`
	Summary   dataset.Summary `json:"summary"`
	Done      bool            `json:"done"` // completion marker of the JSON output
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	return newGenerateCommand(&GenerateOptions{RootOptions: rootOpts})
}

func newGenerateCommand(opts *GenerateOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a dataset of accepted potential curves",
		Long: `Generate a dataset of accepted potential curves.

Every row draws control quadruples from its own seeded stream until a curve
passes the acceptance criteria. Rows run in parallel; the result depends
only on the seed and config, never on the worker count.

The dataset is written as wide CSV (--out) and, with --db, stored in a
SQLite database together with its config and per-row statistics.

Example:
  bounce generate --out potentials.csv
  bounce generate --rows 500 --seed 7 --db ./bounce.db --out ""
  bounce generate --config run.yaml --workers 8 --verbose`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, cmd)
		},
	}

	opts.config.register(cmd)
	cmd.Flags().StringVarP(&opts.Output, "out", "o", "potentials.csv", "CSV output path (empty to skip)")
	cmd.Flags().StringVar(&opts.Database, "db", "", "SQLite database to store the run in")

	return cmd
}

func runGenerate(opts *GenerateOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr())

	if opts.Output == "" && opts.Database == "" {
		return formatter.Fail(ExitCommandError, ErrCodeConfig, "nothing to write: set --out or --db", nil)
	}

	cfg, err := opts.config.resolve(cmd)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeConfig, "invalid configuration", err)
	}

	ctx, stop := signalContext(cmd.Context(), logger)
	defer stop()

	d, err := generator.Generate(ctx, cfg, generator.WithLogger(logger))
	if err != nil {
		switch {
		case generator.IsNoSampleError(err):
			return formatter.Fail(ExitFailure, ErrCodeGenerate, "attempt budget exhausted", err)
		case errors.Is(err, context.Canceled):
			return formatter.Fail(ExitFailure, ErrCodeGenerate, "generation interrupted", err)
		default:
			return formatter.Fail(ExitFailure, ErrCodeGenerate, "generation failed", err)
		}
	}

	result := GenerateResult{Digest: d.Digest(), Summary: d.Summarize()}

	if opts.Output != "" {
		if err := export.WriteCSVFile(opts.Output, d); err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeIO, "failed to write dataset", err)
		}
		result.Output = opts.Output
		logger.Info("dataset written", "path", opts.Output)
	}

	if opts.Database != "" {
		if err := storeRun(ctx, opts, cfg, d, &result, logger); err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeStore, "failed to store run", err)
		}
	}

	result.Done = true
	if formatter.Format == "json" {
		return formatter.SuccessForRun(result.RunID, result)
	}
	printGenerateResult(formatter, result)
	return nil
}

// storeRun persists d under a fresh run id and records whether an identical
// dataset was stored before.
func storeRun(ctx context.Context, opts *GenerateOptions, cfg config.Config, d *dataset.Dataset, result *GenerateResult, logger *slog.Logger) error {
	st, err := store.Open(opts.Database)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			logger.Error("error closing database", "error", closeErr)
		}
	}()

	if prev, err := st.FindRunByDigest(ctx, result.Digest); err == nil {
		result.Duplicate = prev.ID
		logger.Info("identical dataset already stored", "run_id", prev.ID)
	} else if !errors.Is(err, store.ErrRunNotFound) {
		return err
	}

	ids := opts.RunIDs
	if ids == nil {
		ids = runid.UUIDv7Generator{}
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	run, err := store.NewRun(ids.Generate(), cfg, d, now())
	if err != nil {
		return err
	}
	run, err = st.WriteRun(ctx, run, d)
	if err != nil {
		return err
	}
	result.RunID = run.ID
	logger.Info("run stored", "run_id", run.ID, "seq", run.Seq, "db", opts.Database)
	return nil
}

func printGenerateResult(f *OutputFormatter, r GenerateResult) {
	s := r.Summary
	fmt.Fprintf(f.Writer, "generated %d rows on %d grid points (%s attempts, acceptance %.2f%%)\n",
		s.Rows, s.GridPoints, humanize.Comma(int64(s.Totals.Attempts)), 100*s.AcceptanceRate)
	if r.Output != "" {
		if fi, err := os.Stat(r.Output); err == nil {
			fmt.Fprintf(f.Writer, "wrote %s (%s)\n", r.Output, humanize.Bytes(uint64(fi.Size())))
		}
	}
	if r.RunID != "" {
		fmt.Fprintf(f.Writer, "stored run %s\n", r.RunID)
	}
	if r.Duplicate != "" {
		fmt.Fprintf(f.Writer, "identical to run %s\n", r.Duplicate)
	}
	fmt.Fprintln(f.Writer, "done")
}

// signalContext derives a context that is cancelled on SIGINT or SIGTERM.
// Uses parent if set (for testing), otherwise context.Background.
func signalContext(parent context.Context, logger *slog.Logger) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigChan) // Prevent signal handler leak
		cancel()
	}
}
