// SPDX-License-Identifier: MIT
// Package: rvccf/synth
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • config is the single source of truth for every generator knob.
//   • Defaults are deterministic and documented; no globals.
//   • newConfig applies options in order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • continuum   = 1.0
//   • velocity    = 0 m/s              (rest frame)
//   • lineSigma   = 3000 m/s           (Gaussian σ of each absorption line)
//   • depthScale  = 1.0                (depth = min(1, weight·scale))
//   • noiseSigma  = 0.0                (noise-free unless asked)
//   • varFloor    = 0.0
//   • rng         = nil                (seeded from the call's seed)
//
// Hints:
//   • Pass WithRand to share one stream across several BuildSpectrum calls.
//   • WithVarianceFloor keeps variance positive for noise-free spectra.

package synth

import "math/rand" // per-call or shared noise stream

// config aggregates all knobs used by the generators.
// It is passed by value (immutable to callers).
type config struct {
	rng        *rand.Rand // nil: seed a local RNG from the call's seed
	continuum  float64
	velocity   float64 // m/s
	lineSigma  float64 // m/s
	depthScale float64
	noiseSigma float64
	varFloor   float64
}

// Deterministic defaults.
const (
	defaultContinuum  = 1.0
	defaultVelocity   = 0.0
	defaultLineSigma  = 3000.0 // m/s, a typical FGK line width
	defaultDepthScale = 1.0
	defaultNoiseSigma = 0.0
	defaultVarFloor   = 0.0

	// lineWindowSigmas bounds the pixels a line is evaluated on.
	lineWindowSigmas = 5.0
)

// newConfig applies opts over the defaults; last option wins.
func newConfig(opts ...Option) config {
	cfg := config{
		continuum:  defaultContinuum,
		velocity:   defaultVelocity,
		lineSigma:  defaultLineSigma,
		depthScale: defaultDepthScale,
		noiseSigma: defaultNoiseSigma,
		varFloor:   defaultVarFloor,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by seed.
func rngFrom(cfg config, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}
