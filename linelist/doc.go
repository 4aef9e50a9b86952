// SPDX-License-Identifier: MIT

// Package linelist holds the weighted line lists ("masks") a spectrum is
// correlated against, and the small utilities that build them from text.
//
// A LineList is an immutable pair of parallel sequences: line centre
// wavelengths, strictly ascending, and nonnegative weights. It is validated
// once at construction so that the hot CCF loop may assume sortedness.
//
// Ingestion:
//
//   - ReadPairs      — rows of (centre, weight).
//   - ReadIntervals  — rows of (lower, upper, depth); centre is the geometric
//     mean sqrt(lower·upper) and weight is depth.
//   - LoadFile       — opens a path and dispatches on Format.
//
// Rows may be separated by whitespace or commas; blank lines and lines
// starting with '#' are skipped. Both readers convert air wavelengths (Å) to
// vacuum by default, then sort.
//
// Wavelength conventions:
//
//	AirToVacuum / VacuumToAir use the refractive index
//	  n(s) = 1 + 8.34254e-5 + 2.406147e-2/(130 − s²) + 1.5998e-4/(38.9 − s²),
//	with s = 10⁴/λ[Å] in µm⁻¹. VacuumToAir inverts it by fixed-point iteration.
package linelist
