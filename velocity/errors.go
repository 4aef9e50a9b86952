// SPDX-License-Identifier: MIT

package velocity

import "errors"

var (
	// ErrBadStep indicates a non-positive or non-finite grid step.
	ErrBadStep = errors.New("velocity: step must be finite and > 0")

	// ErrBadRange indicates max < min, a negative half-range, or non-finite bounds.
	ErrBadRange = errors.New("velocity: invalid velocity range")

	// ErrTooFewPoints indicates a grid request that yields no points.
	ErrTooFewPoints = errors.New("velocity: grid must contain at least one point")

	// ErrTooManyPoints indicates a grid request longer than MaxGridPoints.
	ErrTooManyPoints = errors.New("velocity: grid exceeds MaxGridPoints")

	// ErrNotIncreasing indicates explicit grid values that are not strictly increasing.
	ErrNotIncreasing = errors.New("velocity: grid values must be strictly increasing")

	// ErrUneven indicates explicit grid values that are not evenly spaced.
	ErrUneven = errors.New("velocity: grid values must be evenly spaced")

	// ErrSuperluminal indicates a velocity outside the convention's domain:
	// |v| ≥ c for the relativistic factor, v ≤ −c for the classical one.
	ErrSuperluminal = errors.New("velocity: |v| must be below the speed of light")
)
