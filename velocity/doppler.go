// SPDX-License-Identifier: MIT
// Package: rvccf/velocity
//
// doppler.go — velocity to wavelength-factor conversion.
//
// Conventions:
//   • Classical    f(v) = 1 + v/c                  defined for v > −c
//   • Relativistic f(v) = √((1 + v/c)/(1 − v/c))   defined for |v| < c
//
// Check reports velocities outside these domains; Factor itself never
// fails and assumes a checked v.

package velocity

import (
	"fmt"
	"math"
)

// SpeedOfLight is the speed of light in vacuum, in m/s.
const SpeedOfLight = 299792458.0

// Convention selects the Doppler formula.
type Convention int

const (
	// Classical uses 1 + v/c. This is the default.
	Classical Convention = iota

	// Relativistic uses sqrt((1+v/c)/(1-v/c)) for purely radial motion.
	Relativistic
)

// String implements fmt.Stringer.
func (cv Convention) String() string {
	switch cv {
	case Classical:
		return "classical"
	case Relativistic:
		return "relativistic"
	default:
		return fmt.Sprintf("Convention(%d)", int(cv))
	}
}

// Doppler converts trial velocities into multiplicative wavelength factors.
// The zero value is not usable; start from DefaultDoppler.
type Doppler struct {
	C          float64    // speed of light in the velocity unit of the grid
	Convention Convention // Classical or Relativistic
}

// DefaultDoppler returns the classical convention with c in m/s.
func DefaultDoppler() Doppler {
	return Doppler{C: SpeedOfLight, Convention: Classical}
}

// Factor returns the wavelength scale for velocity v.
// A positive v (receding source) yields a factor > 1.
//
// Complexity: O(1).
func (d Doppler) Factor(v float64) float64 {
	beta := v / d.C
	if d.Convention == Relativistic {
		return math.Sqrt((1 + beta) / (1 - beta))
	}

	return 1 + beta
}

// Check reports ErrSuperluminal when v cannot be converted under d:
// |v| ≥ c for Relativistic, v ≤ −c for Classical (a factor ≤ 0 would fold
// the spectrum onto non-positive wavelengths).
func (d Doppler) Check(v float64) error {
	switch {
	case d.Convention == Relativistic && math.Abs(v) >= d.C:
		return fmt.Errorf("%w: v=%g c=%g", ErrSuperluminal, v, d.C)
	case d.Convention != Relativistic && v <= -d.C:
		return fmt.Errorf("%w: v=%g c=%g (classical factor ≤ 0)", ErrSuperluminal, v, d.C)
	}

	return nil
}

// Factor is the free-function form of Doppler{C: c, Convention: cv}.Factor(v).
func Factor(v, c float64, cv Convention) float64 {
	return Doppler{C: c, Convention: cv}.Factor(v)
}
