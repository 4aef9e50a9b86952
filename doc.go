// Package rvccf is a radial-velocity cross-correlation engine: it correlates
// an observed spectrum with a weighted line mask over a grid of trial
// velocities, exactly accounting for sub-pixel overlap.
//
// 🚀 What is rvccf?
//
//	A small, allocation-aware library that brings together:
//		• Velocities: evenly spaced grids, classical & relativistic Doppler
//		• Mask shapes: TopHat and truncated Gaussian kernels
//		• Line lists: validated masks, text readers, air↔vacuum conversion
//		• CCF core: projection sweep, CCF + variance, concurrent evaluation
//		• Chunks: worker-pool aggregation of echelle orders with progress
//		• Synthetic spectra: deterministic grids and absorption spectra
//
// ✨ Why choose rvccf?
//
//   - Exact – every mask line deposits exactly its weight on the pixel grid
//   - Reusable – one Plan, one Workspace per worker, no hidden allocation
//   - Deterministic – concurrent results are bit-identical to sequential ones
//   - Traceable – debug tracing via schuko, silent by default
//
// Packages:
//
//	velocity/  — Grid, Doppler factor, speed of light
//	shape/     — mask line kernels (TopHat, Gaussian)
//	linelist/  — LineList, ReadPairs/ReadIntervals, AirToVacuum
//	ccf/       — Plan, Project, Compute*, Workspace, Result
//	chunk/     — Aggregate over spectral chunks
//	synth/     — synthetic grids and spectra for tests and demos
//	cmd/ccfcalc — command line front end
//
// Quick ASCII picture of one mask line on the pixel grid:
//
//	  |  p-1  |   p   |  p+1  |
//	      [=====line=====]
//	   partial   full   partial
//
//	go get github.com/katalvlaran/rvccf
package rvccf
