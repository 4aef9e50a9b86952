// SPDX-License-Identifier: MIT

// Package ccf computes the cross-correlation function (CCF) of an observed
// spectrum against a weighted line mask, scanned over a grid of trial radial
// velocities.
//
// 🚀 What is a CCF?
//
//	For each trial velocity v the mask lines are Doppler-shifted by
//	f(v) = 1 + v/c (or the relativistic form) and projected onto the
//	spectrum's pixel grid. The CCF value is the flux weighted by that
//	projection. An absorption spectrum moving at v produces a dip in the CCF
//	at v, which is what radial-velocity pipelines fit downstream.
//
// ✨ Key pieces:
//   - Plan      — immutable {LineList, Shape, velocity.Grid, Doppler}; built once.
//   - Project   — fills a Workspace with the mask's per-pixel density for one
//     shift factor (exact sub-pixel overlap, two-pointer sweep).
//   - Compute*  — drives Project across the velocity grid and reduces flux
//     (and variance) against each projection.
//   - Workspace — caller-owned scratch buffer, reused across velocities,
//     chunks and spectra.
//
// ⚙️ Usage:
//
//	lines, _ := linelist.New(centres, weights)
//	mask, _ := shape.NewTopHat(410)          // half-width in m/s
//	grid, _ := velocity.NewGridRange(-20e3, 20e3, 250)
//	plan, _ := ccf.NewPlan(lines, mask, grid)
//
//	ccfOut, varOut, err := ccf.ComputeWithVariance(lambdas, flux, variance, plan)
//
// Projection algorithm (per velocity):
//  1. Pixel edges are midpoints between neighbouring centres; the outer edges
//     of the first and last pixel are extrapolated from their only neighbour.
//  2. Binary-search the first line whose shifted upper bound lies right of the
//     grid's left edge.
//  3. Sweep pixels and lines together through the states
//     seeking → entering → inside → exiting, crediting each pixel with
//     Integrate(overlap) · weight · λ_pixel/Δλ_pixel.
//  4. When the next line's lower bound lies left of the current pixel (lines
//     overlap after shifting), rewind to the previous line's first pixel.
//  5. Divide by c so velocity-domain integrals become wavelength densities.
//
// Concurrency:
//
//	A Workspace is mutated destructively by every projection; never share one
//	between goroutines. ComputeConcurrent gives each worker its own buffer.
//	Plans and line lists are read-only and safe to share.
//
// Experimental:
//
//	ComputeSegmentVariance replaces per-pixel variance by its mean over each
//	contiguous run of nonzero projection before reducing. It is under active
//	tuning and is not a drop-in replacement for ComputeWithVariance.
//
// Complexity:
//
//   - Project: O(P + L + log L) per velocity (P pixels, L lines), plus the
//     pixels revisited on overlap rewinds.
//   - Compute: O(V·(P + L)) time, O(P) scratch memory.
//
// Errors:
//
//   - ErrNilPlan, ErrLengthMismatch, ErrOutputLength, ErrWorkspaceLength,
//     ErrTooFewPixels, ErrNotIncreasing, ErrEmptyMask, ErrBadWorkers,
//     ErrNilShape, ErrEmptyGrid, ErrSpeedOfLightMismatch.
package ccf
