// SPDX-License-Identifier: MIT

// Package synth builds deterministic synthetic spectra for tests, examples
// and demos: wavelength grids plus absorption-line spectra generated from a
// line list, optionally Doppler-shifted and with seeded Gaussian noise.
//
// The package offers:
//
//   - Grids:
//     – UniformGrid:    n centres evenly spaced in λ.
//     – LogUniformGrid: n centres evenly spaced in ln λ (constant velocity
//     width per pixel, as for echelle spectrographs).
//   - Spectra:
//     – BuildSpectrum: continuum × Π(1 − depth·G(λ)) with Gaussian lines
//     at the (shifted) list centres, plus noise; returns flux and variance.
//   - Options (functional, validated by panicking WithX constructors):
//     – WithContinuum, WithVelocity, WithLineWidth, WithDepthScale,
//     WithNoise, WithVarianceFloor, WithSeed, WithRand.
//
// Determinism:
//
//	If WithRand/WithSeed provided an RNG it is used (shared stream);
//	otherwise a local RNG is seeded with the seed argument. Identical
//	(seed, options) always give identical output.
//
// Complexity: BuildSpectrum is O(P + L·w) where w is the number of pixels
// within the ±5σ window of a line.
package synth
