// SPDX-License-Identifier: MIT
// Package: rvccf/shape
//
// gaussian.go — truncated, renormalised Gaussian kernel.
//
// Integrate on [a, b] (clamped to [−kσ, kσ]):
//   ½·(erf(b/(σ√2)) − erf(a/(σ√2))) / erf(k/√2)
//
// The renormalisation makes the truncated support carry unit mass, so the
// projector conserves line weight for any k.

package shape

import (
	"fmt"
	"math"
)

// Gaussian is a Gaussian kernel of standard deviation σ (velocity units),
// truncated at ±k·σ and renormalised so its support carries unit mass.
type Gaussian struct {
	sigma     float64
	halfWidth float64 // k·σ
	c         float64
	invSqrt2s float64 // 1 / (σ·√2)
	norm      float64 // 1 / (2·erf(k/√2))
}

// NewGaussian builds a truncated Gaussian of width sigma.
// The truncation defaults to DefaultTruncation σ; see WithTruncation.
//
// Errors:
//   - ErrBadWidth if sigma is not finite and positive, or k·σ ≥ c.
func NewGaussian(sigma float64, opts ...Option) (Gaussian, error) {
	cfg := gatherOptions(opts)
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma <= 0 {
		return Gaussian{}, fmt.Errorf("%w: sigma=%g", ErrBadWidth, sigma)
	}
	h := cfg.truncation * sigma
	if !validWidth(h, cfg.c) {
		return Gaussian{}, fmt.Errorf("%w: support half-width=%g", ErrBadWidth, h)
	}
	inv := 1 / (sigma * math.Sqrt2)

	return Gaussian{
		sigma:     sigma,
		halfWidth: h,
		c:         cfg.c,
		invSqrt2s: inv,
		norm:      0.5 / math.Erf(h*inv),
	}, nil
}

// Kind implements Shape.
func (Gaussian) Kind() Kind { return KindGaussian }

// LowerBound implements Shape.
func (s Gaussian) LowerBound(center float64) float64 {
	return center * (1 - s.halfWidth/s.c)
}

// UpperBound implements Shape.
func (s Gaussian) UpperBound(center float64) float64 {
	return center * (1 + s.halfWidth/s.c)
}

// Integrate implements Shape using the error function on the clamped interval.
func (s Gaussian) Integrate(lo, hi float64) float64 {
	a := clamp(lo, -s.halfWidth, s.halfWidth)
	b := clamp(hi, -s.halfWidth, s.halfWidth)
	if b <= a {
		return 0
	}

	return (math.Erf(b*s.invSqrt2s) - math.Erf(a*s.invSqrt2s)) * s.norm
}

// HalfWidth implements Shape.
func (s Gaussian) HalfWidth() float64 { return s.halfWidth }

// Sigma returns the kernel's standard deviation.
func (s Gaussian) Sigma() float64 { return s.sigma }

// SpeedOfLight implements Shape.
func (s Gaussian) SpeedOfLight() float64 { return s.c }

// String implements fmt.Stringer.
func (s Gaussian) String() string {
	return fmt.Sprintf("gaussian(σ=%g, ±%g)", s.sigma, s.halfWidth)
}

func (Gaussian) sealed() {}
