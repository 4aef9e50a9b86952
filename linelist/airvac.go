// SPDX-License-Identifier: MIT

package linelist

// Refractive-index coefficients for standard air (wavelengths in Å).
const (
	airN0   = 8.34254e-5
	airA    = 2.406147e-2
	airAPol = 130.0
	airB    = 1.5998e-4
	airBPol = 38.9

	// vacuumToAirIters bounds the fixed-point inversion; it converges to
	// machine precision in three or four steps in the optical.
	vacuumToAirIters = 8
)

// refractiveIndex returns n(λ) for a wavelength in Å.
func refractiveIndex(lambda float64) float64 {
	s := 1e4 / lambda
	s2 := s * s

	return 1 + airN0 + airA/(airAPol-s2) + airB/(airBPol-s2)
}

// AirToVacuum converts an air wavelength (Å) to vacuum.
func AirToVacuum(lambda float64) float64 {
	return lambda * refractiveIndex(lambda)
}

// VacuumToAir converts a vacuum wavelength (Å) to air.
func VacuumToAir(lambda float64) float64 {
	air := lambda
	for i := 0; i < vacuumToAirIters; i++ {
		air = lambda / refractiveIndex(air)
	}

	return air
}
