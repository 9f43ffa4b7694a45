package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountExtrema(t *testing.T) {
	tests := []struct {
		name   string
		ys     []float64
		maxima int
		minima int
	}{
		{"increasing", []float64{1, 2, 3}, 1, 1},
		{"interior peak", []float64{1, 3, 2}, 1, 2},
		{"flat", []float64{1, 1, 1}, 0, 0},
		{"interior valley", []float64{3, 1, 2}, 2, 1},
		{"two points rising", []float64{0, 1}, 1, 1},
		{"two points equal", []float64{2, 2}, 0, 0},
		{"plateau peak is not an extremum", []float64{0, 1, 1, 0}, 0, 2},
		{"shoulder then drop", []float64{0, 1, 1, 2, 0}, 1, 2},
		{"oscillation", []float64{0, 2, 1, 3, 0}, 2, 3},
		{"single point", []float64{5}, 0, 0},
		{"empty", nil, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			maxima, minima := CountExtrema(tt.ys)
			assert.Equal(t, tt.maxima, maxima, "maxima")
			assert.Equal(t, tt.minima, minima, "minima")
		})
	}
}

func TestCountExtremaIsPure(t *testing.T) {
	ys := []float64{0, 0.3, 0.1, 0.2, -0.4, 0.5}
	snapshot := append([]float64(nil), ys...)

	a1, b1 := CountExtrema(ys)
	a2, b2 := CountExtrema(ys)

	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
	assert.Equal(t, snapshot, ys, "input must not be modified")
}
