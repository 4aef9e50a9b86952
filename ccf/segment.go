// SPDX-License-Identifier: MIT

package ccf

// EXPERIMENTAL: segment-averaged variance.
//
// The projection is split into maximal runs of nonzero entries ("segments");
// inside each run every pixel's variance is replaced by the run's mean
// variance before the weighted reduction. A blended mask feature spread over
// several pixels then does not inherit the variance of a single outlier
// pixel. The formula is still being tuned and is numerically fragile at
// segment boundaries; prefer ComputeWithVariance unless you are evaluating
// this estimator.

// ComputeSegmentVariance is ComputeWithVariance with segment-averaged
// variance. EXPERIMENTAL; see the note above.
func ComputeSegmentVariance(lambdas, flux, variance []float64, plan *Plan) (ccf, ccfVar []float64, err error) {
	if plan == nil {
		return nil, nil, ccfErrorf(opComputeSegVar, ErrNilPlan)
	}
	ccf = make([]float64, plan.Len())
	ccfVar = make([]float64, plan.Len())
	if err = ComputeSegmentVarianceInto(ccf, ccfVar, lambdas, flux, variance, plan, nil); err != nil {
		return nil, nil, err
	}

	return ccf, ccfVar, nil
}

// ComputeSegmentVarianceInto is the in-place form of ComputeSegmentVariance.
// EXPERIMENTAL.
func ComputeSegmentVarianceInto(dst, dstVar, lambdas, flux, variance []float64, plan *Plan, ws *Workspace) error {
	r := request{dst: dst, dstVar: dstVar, lambdas: lambdas, flux: flux, variance: variance, wantVar: true, ws: ws}

	return run(opComputeSegVar, r, plan, varSegment)
}

// segmentVariance returns Σ_seg mean(variance[seg]) · Σ ws[seg] over the
// maximal nonzero runs of ws. A zero-length run contributes nothing.
func segmentVariance(variance, ws []float64) float64 {
	var total float64
	n := len(ws)
	for k := 0; k < n; {
		if ws[k] == 0 {
			k++
			continue
		}
		start := k
		var sumVar, sumWs float64
		for k < n && ws[k] != 0 {
			sumVar += variance[k]
			sumWs += ws[k]
			k++
		}
		if length := k - start; length > 0 {
			total += sumVar / float64(length) * sumWs
		}
	}

	return total
}

// Segments returns the [start, end) bounds of the maximal nonzero runs of
// a projection, in order. Exposed for diagnostics of the experimental path.
func Segments(ws []float64) [][2]int {
	var out [][2]int
	n := len(ws)
	for k := 0; k < n; {
		if ws[k] == 0 {
			k++
			continue
		}
		start := k
		for k < n && ws[k] != 0 {
			k++
		}
		out = append(out, [2]int{start, k})
	}

	return out
}
