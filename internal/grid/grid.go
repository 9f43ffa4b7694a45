// Package grid provides the fixed evaluation points shared by every row.
package grid

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Grid is an ordered sequence of evenly spaced points spanning [0, 1]
// inclusive. A Grid is read-only once built and may be shared freely.
type Grid []float64

// New returns n evenly spaced points from 0 to 1 inclusive.
func New(n int) (Grid, error) {
	if n < 2 {
		return nil, fmt.Errorf("grid: need at least 2 points, got %d", n)
	}
	g := make(Grid, n)
	floats.Span(g, 0, 1)
	return g, nil
}

// Spacing returns the distance between neighbouring points.
func (g Grid) Spacing() float64 {
	return 1 / float64(len(g)-1)
}

// Map evaluates f at every grid point.
func (g Grid) Map(f func(float64) float64) []float64 {
	out := make([]float64, len(g))
	g.MapInto(out, f)
	return out
}

// MapInto evaluates f at every grid point into dst, which must have the same
// length as g.
func (g Grid) MapInto(dst []float64, f func(float64) float64) {
	if len(dst) != len(g) {
		panic(fmt.Sprintf("grid: destination length %d != grid length %d", len(dst), len(g)))
	}
	for i, x := range g {
		dst[i] = f(x)
	}
}
