package generator

import (
	"context"

	"github.com/roach88/bounce/internal/dataset"
	"github.com/roach88/bounce/internal/field"
	"github.com/roach88/bounce/internal/grid"
	"github.com/roach88/bounce/internal/sampler"
	"github.com/roach88/bounce/internal/shape"
)

// cancelCheckInterval is how many attempts run between context checks.
const cancelCheckInterval = 256

// RowGenerator produces accepted rows for one run.
//
// A RowGenerator holds only read-only state and is safe for concurrent use;
// every call to Generate builds its own sampler and scratch buffer.
type RowGenerator struct {
	Grid        grid.Grid
	Criteria    shape.Criteria
	Seed        uint64
	Orientation float64
	MaxAttempts int
	Derivative  bool
}

// Generate runs the rejection loop for row until a candidate is accepted,
// the attempt budget is spent, or ctx is cancelled.
func (g *RowGenerator) Generate(ctx context.Context, row int) (dataset.Row, error) {
	s := sampler.New(sampler.Stream(g.Seed, row), g.Orientation)
	candidate := make([]float64, len(g.Grid))

	var stats dataset.RowStats
	for stats.Attempts < g.MaxAttempts {
		if stats.Attempts%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return dataset.Row{}, err
			}
		}

		q := s.Draw()
		f := field.New(q)
		g.Grid.MapInto(candidate, f.Potential)

		v := g.Criteria.Classify(candidate)
		stats.Record(v)
		if !v.Accepted() {
			continue
		}

		r := dataset.Row{
			Index:     row,
			Quadruple: q,
			Potential: candidate,
			Stats:     stats,
		}
		if g.Derivative {
			r.Derivative = g.Grid.Map(f.Derivative)
		}
		return r, nil
	}

	return dataset.Row{}, &NoAcceptableSampleError{Row: row, Attempts: stats.Attempts}
}
