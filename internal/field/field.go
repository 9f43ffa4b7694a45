package field

import "math"

const (
	// maxPhiDegree is the highest power of phi in either numerator.
	maxPhiDegree = 7

	// maxKnotDegree is the highest power of any control point in the tables.
	maxKnotDegree = 4
)

// term is one monomial coef * phi^Phi * phi_0^P0 * phi_1n^P1n * phi_1p^P1p * phi_2^P2.
type term struct {
	Coef float64
	Phi  uint8
	P0   uint8
	P1n  uint8
	P1p  uint8
	P2   uint8
}

// Field is the potential bound to one Quadruple.
//
// The zero value is not useful; construct with New. Field is immutable and
// safe to share between goroutines.
type Field struct {
	q     Quadruple
	pot   [maxPhiDegree + 1]float64
	deriv [maxPhiDegree + 1]float64
	den   float64
}

// New binds the potential to q.
func New(q Quadruple) Field {
	k := newKnotPowers(q)
	f := Field{q: q}
	for _, t := range potentialTerms {
		f.pot[t.Phi] += t.Coef * k.monomial(t)
	}
	for _, t := range derivativeTerms {
		f.deriv[t.Phi] += t.Coef * k.monomial(t)
	}
	for _, t := range denominatorTerms {
		f.den += t.Coef * k.monomial(t)
	}
	return f
}

// Quadruple returns the control points f was built from.
func (f Field) Quadruple() Quadruple {
	return f.q
}

// Denominator returns D(q).
func (f Field) Denominator() float64 {
	return f.den
}

// Degenerate reports whether the denominator is zero or non-finite, in which
// case every evaluation of f is non-finite.
func (f Field) Degenerate() bool {
	return f.den == 0 || math.IsNaN(f.den) || math.IsInf(f.den, 0)
}

// Potential evaluates V(phi).
func (f Field) Potential(phi float64) float64 {
	return horner(&f.pot, phi) / f.den
}

// Derivative evaluates dV/dphi.
func (f Field) Derivative(phi float64) float64 {
	return horner(&f.deriv, phi) / f.den
}

func horner(c *[maxPhiDegree + 1]float64, x float64) float64 {
	acc := c[maxPhiDegree]
	for i := maxPhiDegree - 1; i >= 0; i-- {
		acc = acc*x + c[i]
	}
	return acc
}

// knotPowers caches x^0..x^maxKnotDegree for each control point.
type knotPowers struct {
	p0, p1n, p1p, p2 [maxKnotDegree + 1]float64
}

func newKnotPowers(q Quadruple) knotPowers {
	var k knotPowers
	fill := func(dst *[maxKnotDegree + 1]float64, x float64) {
		dst[0] = 1
		for i := 1; i <= maxKnotDegree; i++ {
			dst[i] = dst[i-1] * x
		}
	}
	fill(&k.p0, q.Phi0)
	fill(&k.p1n, q.Phi1n)
	fill(&k.p1p, q.Phi1p)
	fill(&k.p2, q.Phi2)
	return k
}

func (k *knotPowers) monomial(t term) float64 {
	return k.p0[t.P0] * k.p1n[t.P1n] * k.p1p[t.P1p] * k.p2[t.P2]
}
