package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/bounce/internal/chart"
	"github.com/roach88/bounce/internal/dataset"
	"github.com/roach88/bounce/internal/field"
	"github.com/roach88/bounce/internal/store"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(18)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
)

// InspectOptions holds flags for the inspect command.
type InspectOptions struct {
	*RootOptions
	source sourceFlags
	Row    int
	Width  int
	Height int
}

// InspectResult is the JSON payload of the inspect command.
type InspectResult struct {
	Source    string           `json:"source"`
	Run       *store.Run       `json:"run,omitempty"`
	Summary   dataset.Summary  `json:"summary"`
	Row       int              `json:"row"`
	Quadruple *field.Quadruple `json:"quadruple,omitempty"`
	Stats     dataset.RowStats `json:"stats"`
	Potential []float64        `json:"potential"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InspectOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarise a dataset and preview one curve",
		Long: `Summarise a stored run or CSV file and preview one curve in the terminal.

The summary lists row and attempt counts, the acceptance rate and the
rejection breakdown (stored runs only).

Example:
  bounce inspect --db ./bounce.db --row 12
  bounce inspect --csv potentials.csv --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(opts, cmd)
		},
	}

	opts.source.register(cmd)
	cmd.Flags().IntVar(&opts.Row, "row", 0, "row to preview")
	cmd.Flags().IntVar(&opts.Width, "width", 60, "preview width in columns")
	cmd.Flags().IntVar(&opts.Height, "height", 12, "preview height in lines")

	return cmd
}

func runInspect(opts *InspectOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	src, err := opts.source.load(cmd.Context())
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeIO, "failed to load dataset", err)
	}
	d := src.Dataset
	if opts.Row < 0 || opts.Row >= d.Len() {
		return formatter.Fail(ExitCommandError, ErrCodeConfig,
			fmt.Sprintf("row %d out of range [0, %d)", opts.Row, d.Len()), nil)
	}
	row := d.Rows[opts.Row]

	result := InspectResult{
		Source:    src.Label(),
		Run:       src.Run,
		Summary:   d.Summarize(),
		Row:       opts.Row,
		Stats:     row.Stats,
		Potential: row.Potential,
	}
	if src.Run != nil {
		q := row.Quadruple
		result.Quadruple = &q
	}

	if formatter.Format == "json" {
		var runID string
		if src.Run != nil {
			runID = src.Run.ID
		}
		return formatter.SuccessForRun(runID, result)
	}

	fmt.Fprintln(formatter.Writer, renderInspect(src, result, opts))
	return nil
}

func renderInspect(src *source, r InspectResult, opts *InspectOptions) string {
	p := message.NewPrinter(language.English)
	s := r.Summary

	var b strings.Builder
	line := func(label, value string) {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value)))
		b.WriteByte('\n')
	}

	b.WriteString(headerStyle.Render(r.Source))
	b.WriteByte('\n')
	line("rows", p.Sprintf("%d", s.Rows))
	line("grid points", p.Sprintf("%d", s.GridPoints))
	line("derivative", fmt.Sprint(s.Derivative))
	if fi, err := os.Stat(src.Path); err == nil {
		line("size", humanize.Bytes(uint64(fi.Size())))
	}

	if src.Run != nil {
		line("seed", p.Sprintf("%d", src.Run.Seed))
		line("created", humanize.Time(src.Run.CreatedAt))
		line("digest", shortDigest(src.Run.Digest))
		line("attempts", p.Sprintf("%d", s.Totals.Attempts))
		line("acceptance", p.Sprintf("%.2f%%", 100*s.AcceptanceRate))
		line("mean attempts", p.Sprintf("%.1f", s.MeanAttempts))
		line("max attempts", p.Sprintf("%d", s.MaxAttempts))
		line("non-finite", p.Sprintf("%d", s.Totals.NonFinite))
		line("amplitude low", p.Sprintf("%d", s.Totals.AmplitudeLow))
		line("amplitude high", p.Sprintf("%d", s.Totals.AmplitudeHigh))
		line("too many maxima", p.Sprintf("%d", s.Totals.TooManyMaxima))
		line("too many minima", p.Sprintf("%d", s.Totals.TooManyMinima))
	}

	caption := fmt.Sprintf("row %d", r.Row)
	if r.Quadruple != nil {
		caption += " " + r.Quadruple.String()
	}
	b.WriteString(graphStyle.Render(chart.Preview(r.Potential, caption, opts.Width, opts.Height)))
	return b.String()
}
