// Package field evaluates the C1 potential and its derivative.
//
// The potential is a fixed closed-form rational expression in the field
// value phi and four control points (phi_0, phi_1n, phi_1p, phi_2):
//
//	V(phi) = N(phi; q) / D(q)
//	V'(phi) = N'(phi; q) / D(q)
//
// Both numerators are polynomials of degree at most 7 in phi whose
// coefficients are polynomials in the control points. The denominator does
// not depend on phi. The monomial tables live in terms.go and are generated
// from the symbolic expansion; they are data, not design.
//
// A Field is a small value type. New collapses the tables into eight phi
// coefficients per numerator and one denominator value, so evaluating a
// point on the grid is a single Horner pass.
//
// The denominator vanishes on a measure-zero set of control points (for
// example phi_0 == phi_2). Degenerate reports that case; evaluation then
// returns a non-finite value and callers are expected to reject the curve.
package field
