// SPDX-License-Identifier: MIT

package shape

import "fmt"

// TopHat is a rectangular kernel of fixed half-width in velocity space.
// Immutable; safe for concurrent use.
type TopHat struct {
	halfWidth float64
	c         float64
	scale     float64 // 1 / full width
}

// NewTopHat builds a TopHat of the given velocity half-width.
//
// Errors:
//   - ErrBadWidth if halfWidth is not finite, positive and below c.
func NewTopHat(halfWidth float64, opts ...Option) (TopHat, error) {
	cfg := gatherOptions(opts)
	if !validWidth(halfWidth, cfg.c) {
		return TopHat{}, fmt.Errorf("%w: halfWidth=%g", ErrBadWidth, halfWidth)
	}

	return TopHat{halfWidth: halfWidth, c: cfg.c, scale: 0.5 / halfWidth}, nil
}

// Kind implements Shape.
func (TopHat) Kind() Kind { return KindTopHat }

// LowerBound implements Shape: center·(1 − w/c).
func (s TopHat) LowerBound(center float64) float64 {
	return center * (1 - s.halfWidth/s.c)
}

// UpperBound implements Shape: center·(1 + w/c).
func (s TopHat) UpperBound(center float64) float64 {
	return center * (1 + s.halfWidth/s.c)
}

// Integrate implements Shape. The result is the clamped overlap of [lo, hi]
// with [−w, w] divided by 2w; reversed or disjoint intervals yield 0.
func (s TopHat) Integrate(lo, hi float64) float64 {
	a := clamp(lo, -s.halfWidth, s.halfWidth)
	b := clamp(hi, -s.halfWidth, s.halfWidth)
	if b <= a {
		return 0
	}

	return (b - a) * s.scale
}

// HalfWidth implements Shape.
func (s TopHat) HalfWidth() float64 { return s.halfWidth }

// SpeedOfLight implements Shape.
func (s TopHat) SpeedOfLight() float64 { return s.c }

// String implements fmt.Stringer.
func (s TopHat) String() string {
	return fmt.Sprintf("tophat(w=%g)", s.halfWidth)
}

func (TopHat) sealed() {}
