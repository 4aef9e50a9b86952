// SPDX-License-Identifier: MIT

package linelist

import "errors"

var (
	// ErrLengthMismatch indicates centre and weight slices of different lengths.
	ErrLengthMismatch = errors.New("linelist: lambdas and weights differ in length")

	// ErrUnsorted indicates centres that are not strictly ascending.
	ErrUnsorted = errors.New("linelist: line centres must be strictly ascending")

	// ErrNegativeWeight indicates a weight below zero.
	ErrNegativeWeight = errors.New("linelist: weights must be nonnegative")

	// ErrNaNInf indicates a NaN or infinite centre or weight, or a centre ≤ 0.
	ErrNaNInf = errors.New("linelist: non-finite or non-positive value")

	// ErrParse indicates a malformed row in a line-list file.
	ErrParse = errors.New("linelist: parse error")

	// ErrUnknownFormat indicates a Format value LoadFile does not handle.
	ErrUnknownFormat = errors.New("linelist: unknown format")
)
