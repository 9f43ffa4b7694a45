package shape

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Verdict is the outcome of classifying one candidate curve.
type Verdict uint8

const (
	// VerdictAccepted means the curve passed every gate.
	VerdictAccepted Verdict = iota
	// VerdictNonFinite means the curve contains NaN or an infinity.
	VerdictNonFinite
	// VerdictAmplitudeLow means max(curve) is below the lower amplitude bound.
	VerdictAmplitudeLow
	// VerdictAmplitudeHigh means max(curve) is above the upper amplitude bound.
	VerdictAmplitudeHigh
	// VerdictTooManyMaxima means the curve has more local maxima than allowed.
	VerdictTooManyMaxima
	// VerdictTooManyMinima means the curve has more local minima than allowed.
	VerdictTooManyMinima

	numVerdicts
)

// Verdicts lists every verdict in declaration order.
var Verdicts = []Verdict{
	VerdictAccepted,
	VerdictNonFinite,
	VerdictAmplitudeLow,
	VerdictAmplitudeHigh,
	VerdictTooManyMaxima,
	VerdictTooManyMinima,
}

var verdictNames = [numVerdicts]string{
	VerdictAccepted:      "accepted",
	VerdictNonFinite:     "non_finite",
	VerdictAmplitudeLow:  "amplitude_low",
	VerdictAmplitudeHigh: "amplitude_high",
	VerdictTooManyMaxima: "too_many_maxima",
	VerdictTooManyMinima: "too_many_minima",
}

func (v Verdict) String() string {
	if v < numVerdicts {
		return verdictNames[v]
	}
	return "unknown"
}

// Accepted reports whether v is VerdictAccepted.
func (v Verdict) Accepted() bool {
	return v == VerdictAccepted
}

// Criteria holds the acceptance bounds. Amplitude bounds are inclusive.
type Criteria struct {
	AmplitudeMin float64
	AmplitudeMax float64
	MaxMaxima    int
	MaxMinima    int
}

// DefaultCriteria returns the bounds the dataset was designed around:
// 0.01 <= max(v) <= 10^-0.5, at most one maximum and two minima.
func DefaultCriteria() Criteria {
	return Criteria{
		AmplitudeMin: 0.01,
		AmplitudeMax: math.Pow(10, -0.5),
		MaxMaxima:    1,
		MaxMinima:    2,
	}
}

// Classify runs the gates in order and returns the first failing one, or
// VerdictAccepted.
func (c Criteria) Classify(curve []float64) Verdict {
	if len(curve) == 0 {
		return VerdictAmplitudeLow
	}
	for _, v := range curve {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return VerdictNonFinite
		}
	}

	vmax := floats.Max(curve)
	if vmax < c.AmplitudeMin {
		return VerdictAmplitudeLow
	}
	if vmax > c.AmplitudeMax {
		return VerdictAmplitudeHigh
	}

	maxima, minima := CountExtrema(curve)
	if maxima > c.MaxMaxima {
		return VerdictTooManyMaxima
	}
	if minima > c.MaxMinima {
		return VerdictTooManyMinima
	}
	return VerdictAccepted
}

// Accepts reports whether curve passes every gate.
func (c Criteria) Accepts(curve []float64) bool {
	return c.Classify(curve).Accepted()
}
