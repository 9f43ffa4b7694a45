package field

import "fmt"

// Quadruple holds the four control points of the potential.
//
// Sampled quadruples satisfy Phi1p <= min(Phi0, Phi2) <= max(Phi0, Phi2) <= Phi1n.
type Quadruple struct {
	Phi0  float64 `json:"phi_0" db:"phi_0"`
	Phi1n float64 `json:"phi_1n" db:"phi_1n"`
	Phi1p float64 `json:"phi_1p" db:"phi_1p"`
	Phi2  float64 `json:"phi_2" db:"phi_2"`
}

// Ordered reports whether q satisfies the control point ordering: phi_1p is
// the minimum, phi_1n the maximum, and phi_0, phi_2 the middle pair in
// either order.
func (q Quadruple) Ordered() bool {
	lo, hi := q.Phi0, q.Phi2
	if lo > hi {
		lo, hi = hi, lo
	}
	return q.Phi1p <= lo && hi <= q.Phi1n
}

// Swapped returns q with phi_0 and phi_2 exchanged.
func (q Quadruple) Swapped() Quadruple {
	q.Phi0, q.Phi2 = q.Phi2, q.Phi0
	return q
}

func (q Quadruple) String() string {
	return fmt.Sprintf("(phi_0=%.6f, phi_1n=%.6f, phi_1p=%.6f, phi_2=%.6f)", q.Phi0, q.Phi1n, q.Phi1p, q.Phi2)
}
