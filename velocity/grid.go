// SPDX-License-Identifier: MIT
// Package: rvccf/velocity
//
// grid.go — evenly spaced trial-velocity grids.
//
// Design:
//   • Values are materialised once; Grid is immutable and cheap to copy.
//   • Range constructors count steps in float64 with gridEps slack, so an
//     endpoint that is a whole number of steps away is always included.
//   • Point counts are checked against MaxGridPoints before any allocation.

package velocity

import (
	"fmt"
	"math"
)

// gridEps absorbs floating-point noise when counting steps in a range,
// so that e.g. [-100, 100] with step 100 yields exactly three points.
const gridEps = 1e-9

// MaxGridPoints caps the length of grids built from a range and a step.
const MaxGridPoints = 1 << 24

// Grid is an immutable, strictly increasing, evenly spaced sequence of trial
// velocities. Values are materialized once at construction.
type Grid struct {
	values []float64
	step   float64
}

// NewGridRange builds the grid vmin, vmin+step, … up to and including vmax
// (within gridEps·step).
//
// Errors:
//   - ErrBadStep if step is not finite and positive.
//   - ErrBadRange if bounds are non-finite or vmax < vmin.
//   - ErrTooManyPoints if the grid would exceed MaxGridPoints.
//
// Complexity: O(n) time and memory.
func NewGridRange(vmin, vmax, step float64) (Grid, error) {
	if !isFinite(step) || step <= 0 {
		return Grid{}, ErrBadStep
	}
	if !isFinite(vmin) || !isFinite(vmax) || vmax < vmin {
		return Grid{}, fmt.Errorf("%w: min=%g max=%g", ErrBadRange, vmin, vmax)
	}
	steps, err := stepCount(vmax-vmin, step, 1)
	if err != nil {
		return Grid{}, err
	}

	return buildGrid(vmin, step, steps+1), nil
}

// NewGridCentered builds a grid symmetric about center that covers
// [center-halfRange, center+halfRange] with the given step. The number of
// points is always odd and the center is always a member.
//
// Errors: ErrBadStep, ErrBadRange, ErrTooManyPoints as for NewGridRange.
//
// Complexity: O(n) time and memory.
func NewGridCentered(center, halfRange, step float64) (Grid, error) {
	if !isFinite(step) || step <= 0 {
		return Grid{}, ErrBadStep
	}
	if !isFinite(center) || !isFinite(halfRange) || halfRange < 0 {
		return Grid{}, fmt.Errorf("%w: center=%g halfRange=%g", ErrBadRange, center, halfRange)
	}
	k, err := stepCount(halfRange, step, 2)
	if err != nil {
		return Grid{}, err
	}

	return buildGrid(center-float64(k)*step, step, 2*k+1), nil
}

// stepCount returns ⌊span/step⌋ (within gridEps), refusing counts whose grid
// of per·k+1 points would exceed MaxGridPoints. The check runs in float64,
// before any conversion to int can overflow.
func stepCount(span, step float64, per int) (int, error) {
	k := math.Floor(span/step + gridEps)
	if !isFinite(k) || k*float64(per)+1 > MaxGridPoints {
		return 0, fmt.Errorf("%w: span=%g step=%g", ErrTooManyPoints, span, step)
	}

	return int(k), nil
}

// NewGridN builds n points with the given step, symmetric about center.
// For even n the center itself is not a grid point.
func NewGridN(center, step float64, n int) (Grid, error) {
	if !isFinite(step) || step <= 0 {
		return Grid{}, ErrBadStep
	}
	if !isFinite(center) {
		return Grid{}, fmt.Errorf("%w: center=%g", ErrBadRange, center)
	}
	if n < 1 {
		return Grid{}, ErrTooFewPoints
	}
	if n > MaxGridPoints {
		return Grid{}, fmt.Errorf("%w: n=%d", ErrTooManyPoints, n)
	}
	start := center - 0.5*float64(n-1)*step

	return buildGrid(start, step, n), nil
}

// GridFromValues validates an explicit list of velocities and wraps a copy.
// The spacing must be constant to a relative tolerance of 1e-6 of the step.
//
// Errors:
//   - ErrTooFewPoints for an empty slice.
//   - ErrNotIncreasing if any value does not exceed its predecessor.
//   - ErrUneven if spacing varies.
func GridFromValues(vs []float64) (Grid, error) {
	n := len(vs)
	if n == 0 {
		return Grid{}, ErrTooFewPoints
	}
	for _, v := range vs {
		if !isFinite(v) {
			return Grid{}, fmt.Errorf("%w: non-finite value %g", ErrBadRange, v)
		}
	}
	if n == 1 {
		return Grid{values: []float64{vs[0]}, step: 0}, nil
	}
	step := (vs[n-1] - vs[0]) / float64(n-1)
	for i := 1; i < n; i++ {
		d := vs[i] - vs[i-1]
		if d <= 0 {
			return Grid{}, fmt.Errorf("%w: index %d", ErrNotIncreasing, i)
		}
		if math.Abs(d-step) > 1e-6*step {
			return Grid{}, fmt.Errorf("%w: index %d spacing %g, want %g", ErrUneven, i, d, step)
		}
	}
	values := make([]float64, n)
	copy(values, vs)

	return Grid{values: values, step: step}, nil
}

func buildGrid(start, step float64, n int) Grid {
	values := make([]float64, n)
	for i := range values {
		values[i] = start + float64(i)*step
	}

	return Grid{values: values, step: step}
}

// Len returns the number of velocities.
func (g Grid) Len() int { return len(g.values) }

// At returns the i-th velocity. It panics if i is out of range, like a slice.
func (g Grid) At(i int) float64 { return g.values[i] }

// Step returns the spacing between consecutive velocities (0 for a single point).
func (g Grid) Step() float64 { return g.step }

// Min returns the smallest velocity, or 0 for an empty grid.
func (g Grid) Min() float64 {
	if len(g.values) == 0 {
		return 0
	}

	return g.values[0]
}

// Max returns the largest velocity, or 0 for an empty grid.
func (g Grid) Max() float64 {
	if len(g.values) == 0 {
		return 0
	}

	return g.values[len(g.values)-1]
}

// Center returns the midpoint of the grid span.
func (g Grid) Center() float64 { return 0.5 * (g.Min() + g.Max()) }

// Values returns a copy of the velocities.
func (g Grid) Values() []float64 {
	out := make([]float64, len(g.values))
	copy(out, g.values)

	return out
}

// CheckDoppler reports ErrSuperluminal if any grid velocity is invalid for d.
// Only the extremes need checking because the grid is sorted.
func (g Grid) CheckDoppler(d Doppler) error {
	if len(g.values) == 0 {
		return nil
	}
	if err := d.Check(g.Min()); err != nil {
		return err
	}

	return d.Check(g.Max())
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
