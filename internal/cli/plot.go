package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/bounce/internal/chart"
)

// PlotOptions holds flags for the plot command.
type PlotOptions struct {
	*RootOptions
	source     sourceFlags
	Output     string
	Limit      int
	Title      string
	Derivative bool
}

// PlotResult is the JSON payload of the plot command.
type PlotResult struct {
	Output string `json:"output"`
	Curves int    `json:"curves"`
}

// NewPlotCommand creates the plot command.
func NewPlotCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlotOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render dataset curves to a PNG image",
		Long: `Render the curves of a stored run or CSV file against phi.

Example:
  bounce plot --csv potentials.csv --out potentials.png
  bounce plot --db ./bounce.db --limit 50 --derivative`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(opts, cmd)
		},
	}

	opts.source.register(cmd)
	cmd.Flags().StringVarP(&opts.Output, "out", "o", "potentials.png", "image output path")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "plot only the first N curves (0 plots all)")
	cmd.Flags().StringVar(&opts.Title, "title", "", "plot title")
	cmd.Flags().BoolVar(&opts.Derivative, "derivative", false, "plot dV/dphi instead of V")

	return cmd
}

func runPlot(opts *PlotOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	src, err := opts.source.load(cmd.Context())
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeIO, "failed to load dataset", err)
	}

	chartOpts := chart.Options{Title: opts.Title, Limit: opts.Limit, Derivative: opts.Derivative}
	if err := chart.SavePNG(opts.Output, src.Dataset, chartOpts); err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeIO, "failed to plot dataset", err)
	}

	curves := src.Dataset.Len()
	if opts.Limit > 0 && opts.Limit < curves {
		curves = opts.Limit
	}
	result := PlotResult{Output: opts.Output, Curves: curves}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintf(formatter.Writer, "plotted %d curve(s) from %s to %s\n", curves, src.Label(), opts.Output)
	return nil
}
