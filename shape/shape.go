// SPDX-License-Identifier: MIT
// Package: rvccf/shape
//
// shape.go — the Shape capability set and construction options.
//
// Design:
//   • Shape is sealed: TopHat and Gaussian are the only variants, and the
//     projector relies on every kernel having compact support.
//   • A kernel lives in velocity space; LowerBound/UpperBound convert its
//     support to wavelengths around a centre using c.
//   • Integrate is normalised: over the full support it returns exactly 1.
//
// Deterministic defaults:
//   • c          = velocity.SpeedOfLight   (m/s)
//   • truncation = DefaultTruncation        (Gaussian only, in σ)

package shape

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rvccf/velocity"
)

// Kind tags the concrete kernel behind a Shape.
type Kind int

const (
	// KindTopHat is the rectangular kernel.
	KindTopHat Kind = iota
	// KindGaussian is the truncated Gaussian kernel.
	KindGaussian
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindTopHat:
		return "tophat"
	case KindGaussian:
		return "gaussian"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Shape is the closed capability set of a mask line kernel.
type Shape interface {
	// Kind reports which variant this is.
	Kind() Kind
	// LowerBound returns the lower wavelength edge of the support around center.
	LowerBound(center float64) float64
	// UpperBound returns the upper wavelength edge of the support around center.
	UpperBound(center float64) float64
	// Integrate returns the fraction of unit mass in velocity offsets [lo, hi].
	Integrate(lo, hi float64) float64
	// HalfWidth returns the half-extent of the support in velocity units.
	HalfWidth() float64
	// SpeedOfLight returns the c used to convert between velocity and wavelength.
	SpeedOfLight() float64

	sealed()
}

// Option customizes a kernel at construction time.
type Option func(*config)

type config struct {
	c          float64
	truncation float64
}

// Defaults shared by all variants.
const (
	// DefaultTruncation is the Gaussian support half-width in units of σ.
	DefaultTruncation = 3.0
)

const (
	panicSpeedOfLight = "shape: WithSpeedOfLight: c must be finite and > 0"
	panicTruncation   = "shape: WithTruncation: k must be finite and > 0"
)

// WithSpeedOfLight overrides c (default velocity.SpeedOfLight in m/s).
// Use it when widths are expressed in a different velocity unit.
// Panics on non-finite or non-positive c.
func WithSpeedOfLight(c float64) Option {
	if math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 {
		panic(panicSpeedOfLight)
	}

	return func(cfg *config) { cfg.c = c }
}

// WithTruncation sets the Gaussian support half-width in σ (default 3).
// It has no effect on TopHat. Panics on non-finite or non-positive k.
func WithTruncation(k float64) Option {
	if math.IsNaN(k) || math.IsInf(k, 0) || k <= 0 {
		panic(panicTruncation)
	}

	return func(cfg *config) { cfg.truncation = k }
}

func gatherOptions(opts []Option) config {
	cfg := config{c: velocity.SpeedOfLight, truncation: DefaultTruncation}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// validWidth reports whether w is a usable half-width for speed of light c.
func validWidth(w, c float64) bool {
	return !math.IsNaN(w) && !math.IsInf(w, 0) && w > 0 && w < c
}

// clamp restricts x to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}
