package column

import "math"

// Vec4 is a four-momentum record carried by sequence columns.
type Vec4 struct {
	Px, Py, Pz, E float64
}

// Pt returns the transverse momentum.
func (v Vec4) Pt() float64 {
	return math.Hypot(v.Px, v.Py)
}

// P returns the momentum magnitude.
func (v Vec4) P() float64 {
	return math.Sqrt(v.Px*v.Px + v.Py*v.Py + v.Pz*v.Pz)
}

// Phi returns the azimuthal angle in (-pi, pi].
func (v Vec4) Phi() float64 {
	return math.Atan2(v.Py, v.Px)
}

// Eta returns the pseudorapidity. Vectors aligned with the beam axis
// return +/-Inf.
func (v Vec4) Eta() float64 {
	p := v.P()
	if p == math.Abs(v.Pz) {
		if v.Pz >= 0 {
			return math.Inf(1)
		}
		return math.Inf(-1)
	}
	return 0.5 * math.Log((p+v.Pz)/(p-v.Pz))
}

// M returns the invariant mass, or 0 for spacelike vectors.
func (v Vec4) M() float64 {
	m2 := v.E*v.E - v.Px*v.Px - v.Py*v.Py - v.Pz*v.Pz
	if m2 <= 0 {
		return 0
	}
	return math.Sqrt(m2)
}

// FromCylindrical builds a Vec4 from transverse momentum, pseudorapidity,
// azimuth and energy.
func FromCylindrical(pt, eta, phi, e float64) Vec4 {
	return Vec4{
		Px: pt * math.Cos(phi),
		Py: pt * math.Sin(phi),
		Pz: pt * math.Sinh(eta),
		E:  e,
	}
}
