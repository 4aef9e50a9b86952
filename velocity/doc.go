// SPDX-License-Identifier: MIT

// Package velocity holds the velocity-domain primitives shared by every
// cross-correlation computation: the speed-of-light constant, the Doppler
// factor that turns a trial radial velocity into a wavelength scale, and the
// evenly spaced grid of trial velocities a CCF is evaluated on.
//
// What:
//
//   - Doppler{C, Convention}.Factor(v) — classical 1+v/c (default) or
//     relativistic sqrt((1+v/c)/(1−v/c)).
//   - Grid — immutable, strictly increasing, evenly spaced velocities (m/s),
//     built from {min, max, step}, {center, halfRange, step} or
//     {center, step, n}.
//
// Why explicit constants:
//
//	The Doppler convention and c are plain values carried by configuration
//	(see ccf.Plan) instead of package globals, so the classical-vs-relativistic
//	choice is a testable parameter.
//
// Complexity:
//
//   - Factor: O(1).
//   - Grid constructors: O(n) time and memory.
//
// Errors:
//
//   - ErrBadStep, ErrBadRange, ErrTooFewPoints: invalid grid parameters.
//   - ErrTooManyPoints: the grid would exceed MaxGridPoints.
//   - ErrNotIncreasing, ErrUneven: GridFromValues input is not a valid grid.
//   - ErrSuperluminal: |v| ≥ c (relativistic) or v ≤ −c (classical).
package velocity
