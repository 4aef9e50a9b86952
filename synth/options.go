// SPDX-License-Identifier: MIT

package synth

import (
	"math"
	"math/rand"
)

// Option customizes BuildSpectrum by mutating a config before generation.
// Complexity: applying N options costs O(N).
type Option func(*config)

// WithContinuum sets the continuum level (> 0). Panics otherwise.
func WithContinuum(c float64) Option {
	if !(c > 0) || math.IsInf(c, 0) {
		panic("synth: WithContinuum(c<=0)")
	}
	return func(cfg *config) { cfg.continuum = c }
}

// WithVelocity Doppler-shifts every line by v (m/s, classical factor).
func WithVelocity(v float64) Option {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic("synth: WithVelocity(non-finite)")
	}
	return func(cfg *config) { cfg.velocity = v }
}

// WithLineWidth sets the Gaussian line σ in m/s (> 0). Panics otherwise.
func WithLineWidth(sigma float64) Option {
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		panic("synth: WithLineWidth(sigma<=0)")
	}
	return func(cfg *config) { cfg.lineSigma = sigma }
}

// WithDepthScale multiplies every line weight to obtain its depth (> 0).
// Depths are clipped to 1. Panics on non-positive scale.
func WithDepthScale(d float64) Option {
	if !(d > 0) || math.IsInf(d, 0) {
		panic("synth: WithDepthScale(d<=0)")
	}
	return func(cfg *config) { cfg.depthScale = d }
}

// WithNoise sets the additive Gaussian noise σ (≥ 0); 0 disables noise.
// Panics if sigma < 0.
func WithNoise(sigma float64) Option {
	if sigma < 0 || math.IsNaN(sigma) {
		panic("synth: WithNoise(sigma<0)")
	}
	return func(cfg *config) { cfg.noiseSigma = sigma }
}

// WithVarianceFloor sets the minimum reported per-pixel variance (≥ 0).
// Useful for noiseless spectra that still need a nonzero variance.
func WithVarianceFloor(v float64) Option {
	if v < 0 || math.IsNaN(v) {
		panic("synth: WithVarianceFloor(v<0)")
	}
	return func(cfg *config) { cfg.varFloor = v }
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("synth: WithRand(nil)")
	}
	return func(cfg *config) { cfg.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(cfg *config) { cfg.rng = rand.New(rand.NewSource(seed)) }
}
