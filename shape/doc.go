// SPDX-License-Identifier: MIT

// Package shape defines the line-profile kernels a mask line is spread over.
//
// A Shape is a normalized kernel in velocity space centred on a line. It
// answers three questions used by the mask projector:
//
//   - LowerBound(λ) / UpperBound(λ): wavelength edges of the kernel's support
//     around a line centre λ (always LowerBound < λ < UpperBound).
//   - Integrate(a, b): fraction of the kernel's unit mass lying in the velocity
//     offsets [a, b] (m/s) measured from the line centre.
//
// The set of shapes is closed: Shape carries an unexported method, so only
// the variants in this package implement it and a switch over Kind is
// exhaustive.
//
//	TopHat   — rectangular kernel of half-width w; exact linear overlap.
//	Gaussian — Gaussian of width σ truncated at k·σ and renormalised to 1.
//
// Invariants (covered by tests):
//
//   - Integrate(a, b) == 0 when [a, b] is disjoint from the support.
//   - Integrate over the full support == 1.
//   - Integrate(a, b) + Integrate(b, c) == Integrate(a, c) for a ≤ b ≤ c.
//   - UpperBound(λ) − λ == λ − LowerBound(λ) (supports are symmetric).
package shape
