// Package chart renders dataset curves as PNG images and terminal previews.
package chart

import (
	"errors"
	"fmt"
	"io"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/roach88/bounce/internal/dataset"
)

// Default image size.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

// ErrNoCurves is returned when a plot would be empty.
var ErrNoCurves = errors.New("no curves to plot")

// Options controls which curves are drawn.
type Options struct {
	Title      string
	Limit      int  // 0 draws every row
	Derivative bool // draw dV/dphi instead of V
}

// Curves plots the potential (or derivative) of each row of d against the
// grid.
func Curves(d *dataset.Dataset, opts Options) (*plot.Plot, error) {
	n := d.Len()
	if opts.Limit > 0 && opts.Limit < n {
		n = opts.Limit
	}
	if n == 0 {
		return nil, ErrNoCurves
	}
	if opts.Derivative && !d.HasDerivative() {
		return nil, errors.New("dataset has no derivative curves")
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "phi"
	p.Y.Label.Text = "V(phi)"
	if opts.Derivative {
		p.Y.Label.Text = "dV/dphi"
	}
	p.X.Min, p.X.Max = 0, 1

	for i, r := range d.Rows[:n] {
		ys := r.Potential
		if opts.Derivative {
			ys = r.Derivative
		}
		if len(ys) != len(d.Grid) {
			return nil, fmt.Errorf("row %d: %d values for %d grid points", r.Index, len(ys), len(d.Grid))
		}

		pts := make(plotter.XYs, len(ys))
		for j, y := range ys {
			pts[j] = plotter.XY{X: d.Grid[j], Y: y}
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", r.Index, err)
		}
		l.LineStyle.Color = plotutil.Color(i)
		l.LineStyle.Width = vg.Points(0.5)
		p.Add(l)
	}
	return p, nil
}

// SavePNG plots d and writes the image to path.
func SavePNG(path string, d *dataset.Dataset, opts Options) error {
	p, err := Curves(d, opts)
	if err != nil {
		return err
	}
	if err := p.Save(DefaultWidth, DefaultHeight, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// WritePNG plots d and streams the PNG encoding to w.
func WritePNG(w io.Writer, d *dataset.Dataset, opts Options) error {
	p, err := Curves(d, opts)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(DefaultWidth, DefaultHeight, "png")
	if err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

// Preview renders ys as an ASCII chart for terminal output.
func Preview(ys []float64, caption string, width, height int) string {
	if len(ys) == 0 {
		return ""
	}
	return asciigraph.Plot(ys,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Precision(3),
		asciigraph.Caption(caption),
	)
}
