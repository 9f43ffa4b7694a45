package sampler

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawOrdering(t *testing.T) {
	s := New(Stream(42, 0), 0.5)
	for i := 0; i < 10000; i++ {
		q := s.Draw()
		require.True(t, q.Ordered(), "draw %d: %s", i, q)
		for _, v := range []float64{q.Phi0, q.Phi1n, q.Phi1p, q.Phi2} {
			require.GreaterOrEqual(t, v, 0.0)
			require.Less(t, v, 1.0)
		}
	}
}

func TestDrawOrientationIsFair(t *testing.T) {
	s := New(Stream(7, 3), 0.5)
	const n = 20000
	swapped := 0
	for i := 0; i < n; i++ {
		q := s.Draw()
		if q.Phi0 > q.Phi2 {
			swapped++
		}
	}
	frac := float64(swapped) / n
	assert.InDelta(t, 0.5, frac, 0.02)
}

func TestDrawOrientationProbability(t *testing.T) {
	// P=1 means the coin always lands 1 and phi_0 is never moved above phi_2.
	s := New(Stream(1, 1), 1)
	for i := 0; i < 1000; i++ {
		q := s.Draw()
		require.LessOrEqual(t, q.Phi0, q.Phi2)
	}

	s = New(Stream(1, 1), 0)
	for i := 0; i < 1000; i++ {
		q := s.Draw()
		require.GreaterOrEqual(t, q.Phi0, q.Phi2)
	}
}

func TestStreamDeterminism(t *testing.T) {
	a := New(Stream(99, 5), 0.5)
	b := New(Stream(99, 5), 0.5)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Draw(), b.Draw())
	}
}

func TestStreamsDifferByRow(t *testing.T) {
	a := New(Stream(99, 5), 0.5)
	b := New(Stream(99, 6), 0.5)
	assert.NotEqual(t, a.Draw(), b.Draw())
}

func TestNewAcceptsStdlibSources(t *testing.T) {
	for _, src := range []rand.Source{
		Stream(1, 0),
		rand.NewPCG(1, 2),
		rand.NewChaCha8([32]byte{1}),
	} {
		q := New(src, 0.5).Draw()
		assert.True(t, q.Ordered(), "quadruple %s", q)
	}
}

func TestStreamStatesAreMixed(t *testing.T) {
	// Seeding PCG with (seed, row) directly would put neighbouring rows on
	// adjacent states; mixed rows must not reproduce that source.
	for row := 0; row < 4; row++ {
		mixed := Stream(99, row)
		direct := rand.NewPCG(99, uint64(row))
		assert.NotEqual(t, direct.Uint64(), mixed.Uint64(), "row %d", row)
	}
}

func TestStreamsDoNotOverlap(t *testing.T) {
	const window = 4096
	seen := make(map[uint64]int, window)
	a := Stream(7, 10)
	for i := 0; i < window; i++ {
		seen[a.Uint64()] = i
	}

	b := Stream(7, 11)
	for i := 0; i < 16; i++ {
		v := b.Uint64()
		_, dup := seen[v]
		assert.False(t, dup, "row 11 output %d appears in row 10's stream", i)
	}
}
