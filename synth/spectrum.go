// SPDX-License-Identifier: MIT
// Package: rvccf/synth
//
// spectrum.go — absorption spectra rendered from a line list.
//
// Design:
//   • Lines multiply into a unit continuum, so blends stay physical (flux ≥ 0
//     before noise when every depth ≤ 1).
//   • Each line touches only the pixels within lineWindowSigmas·σ of its
//     shifted centre, found by binary search: O(P + L·log P + window).
//   • Noise is drawn after all lines, in pixel order, so a seed fixes the
//     whole spectrum.

package synth

import (
	"math" // Exp for line profiles
	"sort" // pixel window lookup

	"github.com/katalvlaran/rvccf/linelist"
	"github.com/katalvlaran/rvccf/velocity"
)

// BuildSpectrum renders an absorption spectrum on lambdas from lines.
// Model:
//   - f_m  = 1 + v/c                      (classical Doppler factor)
//   - σ_m  = λ_m·f_m·σ_v/c                 (line width in Å)
//   - y_k  = C · Π_m (1 − d_m·exp(−½((λ_k − λ_m f_m)/σ_m)²)),  d_m = min(1, w_m·scale)
//   - y_k += noise·N(0,1);  var_k = max(noise², floor)
//
// Errors: ErrBadInput if lambdas has < 2 entries, is not strictly
// increasing, or has non-positive values.
func BuildSpectrum(lambdas []float64, lines linelist.LineList, seed int64, opts ...Option) (flux, variance []float64, err error) {
	if len(lambdas) < minGridPoints {
		return nil, nil, synthErrorf(methodBuildSpectrum, ErrBadInput, "need at least %d pixels", minGridPoints)
	}
	for i, l := range lambdas {
		if !(l > 0) || (i > 0 && !(l > lambdas[i-1])) {
			return nil, nil, synthErrorf(methodBuildSpectrum, ErrBadInput, "pixel %d", i)
		}
	}

	cfg := newConfig(opts...)
	rng := rngFrom(cfg, seed)
	n := len(lambdas)

	// Start from the unit continuum; lines multiply in.
	flux = make([]float64, n)
	for i := range flux {
		flux[i] = 1
	}

	shift := velocity.DefaultDoppler().Factor(cfg.velocity)
	var (
		centre, sigma, depth, lo, hi, z float64
		from, to                        int
	)
	for m := 0; m < lines.Len(); m++ {
		centre = lines.Lambda(m) * shift
		sigma = centre * cfg.lineSigma / velocity.SpeedOfLight
		depth = math.Min(1, lines.Weight(m)*cfg.depthScale)
		if depth <= 0 {
			continue
		}
		lo, hi = centre-lineWindowSigmas*sigma, centre+lineWindowSigmas*sigma
		from = sort.SearchFloat64s(lambdas, lo)
		to = sort.SearchFloat64s(lambdas, hi)
		for k := from; k < to; k++ {
			z = (lambdas[k] - centre) / sigma
			flux[k] *= 1 - depth*math.Exp(-0.5*z*z)
		}
	}

	v := math.Max(cfg.noiseSigma*cfg.noiseSigma, cfg.varFloor)
	variance = make([]float64, n)
	for k := range flux {
		flux[k] *= cfg.continuum
		if cfg.noiseSigma > 0 {
			flux[k] += cfg.noiseSigma * rng.NormFloat64()
		}
		variance[k] = v
	}

	return flux, variance, nil
}

// RegularLineList returns n lines of the given weight evenly spaced on
// [lo, hi]. Handy for masks and synthetic spectra that must not blend.
func RegularLineList(lo, hi float64, n int, weight float64) (linelist.LineList, error) {
	centres, err := UniformGrid(lo, hi, n)
	if err != nil {
		return linelist.LineList{}, err
	}
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = weight
	}

	return linelist.New(centres, weights)
}
