package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/bounce/internal/config"
	"github.com/roach88/bounce/internal/dataset"
	"github.com/roach88/bounce/internal/generator"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid      bool                `json:"valid"`
	Source     string              `json:"source"`
	Rows       int                 `json:"rows"`
	Digest     string              `json:"digest"`
	Violations []dataset.Violation `json:"violations,omitempty"`
}

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	*RootOptions
	source     sourceFlags
	ConfigPath string
	Rows       int
	Replay     bool
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a dataset against the acceptance criteria",
		Long: `Check a stored run or an exported CSV file against the acceptance criteria.

Every curve must pass the amplitude and extremum bounds and have the grid
length. Stored runs are checked against their own config and digest; with
--replay every row is regenerated from its seed and compared bit for bit.
CSV files are checked against --config (or the defaults).

Example:
  bounce validate --db ./bounce.db
  bounce validate --db ./bounce.db --run 0192f7c4-... --replay
  bounce validate --csv potentials.csv --rows 10000`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, cmd)
		},
	}

	opts.source.register(cmd)
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "config with the criteria for CSV input")
	cmd.Flags().IntVar(&opts.Rows, "rows", 0, "expected row count for CSV input (0 accepts any)")
	cmd.Flags().BoolVar(&opts.Replay, "replay", false, "regenerate stored rows and compare")

	return cmd
}

func runValidate(opts *ValidateOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	ctx := cmd.Context()

	src, err := opts.source.load(ctx)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeIO, "failed to load dataset", err)
	}
	d := src.Dataset
	formatter.VerboseLog("Loaded %d row(s) from %s", d.Len(), src.Label())

	var (
		cfg      config.Config
		wantRows int
	)
	if src.Run != nil {
		cfg, err = src.Run.ParsedConfig()
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeStore, "stored config is unreadable", err)
		}
		wantRows = src.Run.Rows
	} else {
		cfg = config.Default()
		if opts.ConfigPath != "" {
			if cfg, err = config.Load(opts.ConfigPath); err != nil {
				return formatter.Fail(ExitCommandError, ErrCodeConfig, "invalid configuration", err)
			}
		}
		wantRows = d.Len()
		if opts.Rows > 0 {
			wantRows = opts.Rows
		}
	}

	result := ValidationResult{Source: src.Label(), Rows: d.Len(), Digest: d.Digest()}

	var verr *dataset.ValidationError
	if err := d.Validate(cfg.Criteria(), wantRows); errors.As(err, &verr) {
		result.Violations = append(result.Violations, verr.Violations...)
	} else if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeValidation, "validation failed", err)
	}

	if src.Run != nil {
		if result.Digest != src.Run.Digest {
			result.Violations = append(result.Violations, dataset.Violation{
				Row:     -1,
				Message: fmt.Sprintf("digest %s does not match stored %s", result.Digest, src.Run.Digest),
			})
		}
		if opts.Replay {
			formatter.VerboseLog("Replaying %d row(s) with seed %d", d.Len(), cfg.Seed)
			vs, err := generator.Verify(ctx, cfg, d)
			if err != nil {
				return formatter.Fail(ExitFailure, ErrCodeGenerate, "replay failed", err)
			}
			result.Violations = append(result.Violations, vs...)
		}
	}

	result.Valid = len(result.Violations) == 0
	if !result.Valid {
		return outputViolations(formatter, result)
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintf(formatter.Writer, "✓ %s valid (%d rows, digest %s)\n", result.Source, result.Rows, shortDigest(result.Digest))
	return nil
}

// outputViolations reports a failed validation.
func outputViolations(formatter *OutputFormatter, result ValidationResult) error {
	if formatter.Format == "json" {
		_ = formatter.Error(ErrCodeValidation, "dataset violates its invariants", result)
	} else {
		fmt.Fprintf(formatter.Writer, "✗ %s invalid (%d violation(s))\n", result.Source, len(result.Violations))
		for _, v := range result.Violations {
			if v.Row < 0 {
				fmt.Fprintf(formatter.Writer, "  dataset: %s\n", v.Message)
				continue
			}
			fmt.Fprintf(formatter.Writer, "  row %d: %s\n", v.Row, v.Message)
		}
	}

	// Validation failures = exit code 1
	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d violation(s)", len(result.Violations)))
}

func shortDigest(digest string) string {
	if len(digest) > 12 {
		return digest[:12]
	}
	return digest
}
