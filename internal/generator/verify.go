package generator

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/roach88/bounce/internal/config"
	"github.com/roach88/bounce/internal/dataset"
)

// Verify replays every row of d under cfg and reports rows whose quadruple,
// attempt count or curves differ from a fresh generation. A dataset written
// by Generate with the same cfg verifies clean.
func Verify(ctx context.Context, cfg config.Config, d *dataset.Dataset) ([]dataset.Violation, error) {
	rg, err := NewRowGenerator(cfg)
	if err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}
	rg.Derivative = d.HasDerivative()
	if len(rg.Grid) != len(d.Grid) {
		return []dataset.Violation{{Row: -1, Message: fmt.Sprintf("grid has %d points, config says %d", len(d.Grid), len(rg.Grid))}}, nil
	}

	var (
		mu sync.Mutex
		vs []dataset.Violation
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.EffectiveWorkers())
	for _, r := range d.Rows {
		eg.Go(func() error {
			want, err := rg.Generate(egCtx, r.Index)
			if err != nil {
				return err
			}
			if msg := diffRow(want, r); msg != "" {
				mu.Lock()
				vs = append(vs, dataset.Violation{Row: r.Index, Message: msg})
				mu.Unlock()
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}

	slices.SortFunc(vs, func(a, b dataset.Violation) int { return a.Row - b.Row })
	return vs, nil
}

func diffRow(want, got dataset.Row) string {
	switch {
	case want.Quadruple != got.Quadruple:
		return fmt.Sprintf("quadruple %s, replay gives %s", got.Quadruple, want.Quadruple)
	case want.Stats.Attempts != got.Stats.Attempts:
		return fmt.Sprintf("accepted after %d attempts, replay needs %d", got.Stats.Attempts, want.Stats.Attempts)
	case !slices.Equal(want.Potential, got.Potential):
		return "potential curve differs from replay"
	case !slices.Equal(want.Derivative, got.Derivative):
		return "derivative curve differs from replay"
	}
	return ""
}
