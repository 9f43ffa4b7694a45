// Package sampler draws control point quadruples for the potential.
package sampler

import (
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/roach88/bounce/internal/field"
)

// Sampler draws ordered Quadruples from uniform [0, 1) control points and an
// orientation coin.
//
// A Sampler is not safe for concurrent use; give each goroutine its own,
// built on its own Stream.
type Sampler struct {
	uniform     distuv.Uniform
	orientation distuv.Bernoulli
	ps          [4]float64
}

// New returns a Sampler reading entropy from src. orientationP is the
// probability that the coin keeps phi_0 below phi_2; the swap happens on the
// other outcome.
func New(src rand.Source, orientationP float64) *Sampler {
	return &Sampler{
		uniform:     distuv.Uniform{Min: 0, Max: 1, Src: src},
		orientation: distuv.Bernoulli{P: orientationP, Src: src},
	}
}

// Draw returns one quadruple.
//
// Four uniforms are sorted ascending and assigned phi_1p, phi_0, phi_2,
// phi_1n in that order. A failed coin toss then exchanges phi_0 and phi_2,
// so phi_1p stays the minimum and phi_1n the maximum either way.
func (s *Sampler) Draw() field.Quadruple {
	for i := range s.ps {
		s.ps[i] = s.uniform.Rand()
	}
	sort.Float64s(s.ps[:])

	q := field.Quadruple{
		Phi1p: s.ps[0],
		Phi0:  s.ps[1],
		Phi2:  s.ps[2],
		Phi1n: s.ps[3],
	}
	if s.orientation.Rand() < 0.5 {
		q = q.Swapped()
	}
	return q
}

// Stream returns the random source for one row of a run. Both PCG state
// words are derived by mixing seed and row, so neighbouring rows start far
// apart instead of at adjacent states. The same (seed, row) always yields
// the same sequence.
func Stream(seed uint64, row int) rand.Source {
	hi := splitmix64(seed ^ splitmix64(uint64(row)))
	lo := splitmix64(hi ^ uint64(row))
	return rand.NewPCG(hi, lo)
}

// splitmix64 is the SplitMix64 finaliser: a bijective 64-bit mix.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
