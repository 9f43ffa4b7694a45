package dataset

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/roach88/bounce/internal/shape"
)

// RowStats counts the attempts a row needed and why candidates were rejected.
type RowStats struct {
	Attempts      int `json:"attempts"`
	NonFinite     int `json:"non_finite"`
	AmplitudeLow  int `json:"amplitude_low"`
	AmplitudeHigh int `json:"amplitude_high"`
	TooManyMaxima int `json:"too_many_maxima"`
	TooManyMinima int `json:"too_many_minima"`
}

// Record counts one classified candidate.
func (s *RowStats) Record(v shape.Verdict) {
	s.Attempts++
	switch v {
	case shape.VerdictNonFinite:
		s.NonFinite++
	case shape.VerdictAmplitudeLow:
		s.AmplitudeLow++
	case shape.VerdictAmplitudeHigh:
		s.AmplitudeHigh++
	case shape.VerdictTooManyMaxima:
		s.TooManyMaxima++
	case shape.VerdictTooManyMinima:
		s.TooManyMinima++
	}
}

// Rejected returns the number of rejected candidates.
func (s RowStats) Rejected() int {
	return s.NonFinite + s.AmplitudeLow + s.AmplitudeHigh + s.TooManyMaxima + s.TooManyMinima
}

// Add accumulates o into s.
func (s *RowStats) Add(o RowStats) {
	s.Attempts += o.Attempts
	s.NonFinite += o.NonFinite
	s.AmplitudeLow += o.AmplitudeLow
	s.AmplitudeHigh += o.AmplitudeHigh
	s.TooManyMaxima += o.TooManyMaxima
	s.TooManyMinima += o.TooManyMinima
}

// Summary aggregates RowStats over a dataset.
type Summary struct {
	Rows           int      `json:"rows"`
	GridPoints     int      `json:"grid_points"`
	Derivative     bool     `json:"derivative"`
	Totals         RowStats `json:"totals"`
	MeanAttempts   float64  `json:"mean_attempts"`
	MaxAttempts    int      `json:"max_attempts"`
	AcceptanceRate float64  `json:"acceptance_rate"`
}

// Summarize computes the run summary of d.
func (d *Dataset) Summarize() Summary {
	s := Summary{
		Rows:       d.Len(),
		GridPoints: len(d.Grid),
		Derivative: d.HasDerivative(),
	}
	if d.Len() == 0 {
		return s
	}

	attempts := make([]float64, d.Len())
	for i, r := range d.Rows {
		s.Totals.Add(r.Stats)
		attempts[i] = float64(r.Stats.Attempts)
	}
	s.MeanAttempts = stat.Mean(attempts, nil)
	s.MaxAttempts = int(floats.Max(attempts))
	if s.Totals.Attempts > 0 {
		s.AcceptanceRate = float64(d.Len()) / float64(s.Totals.Attempts)
	}
	return s
}
