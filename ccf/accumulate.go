// SPDX-License-Identifier: MIT

package ccf

// Compute returns the CCF of flux on lambdas for every velocity of plan.
// An empty line list yields an all-zero result of length plan.Len().
// The sum runs over all pixels: a NaN or ±Inf flux, even off the mask,
// makes every entry NaN.
//
// Errors:
//   - ErrNilPlan, ErrLengthMismatch, ErrTooFewPixels, ErrNotIncreasing.
//
// Complexity: O(V·(P + L)) time, O(V + P) memory.
func Compute(lambdas, flux []float64, plan *Plan) ([]float64, error) {
	if plan == nil {
		return nil, ccfErrorf(opCompute, ErrNilPlan)
	}
	dst := make([]float64, plan.Len())
	if err := ComputeInto(dst, lambdas, flux, plan, nil); err != nil {
		return nil, err
	}

	return dst, nil
}

// ComputeWithVariance is Compute plus variance propagation:
// ccfVar[i] = Σ variance[k]·ws_i[k], where ws_i is the projection for
// velocity i.
func ComputeWithVariance(lambdas, flux, variance []float64, plan *Plan) (ccf, ccfVar []float64, err error) {
	if plan == nil {
		return nil, nil, ccfErrorf(opComputeVar, ErrNilPlan)
	}
	ccf = make([]float64, plan.Len())
	ccfVar = make([]float64, plan.Len())
	if err = ComputeWithVarianceInto(ccf, ccfVar, lambdas, flux, variance, plan, nil); err != nil {
		return nil, nil, err
	}

	return ccf, ccfVar, nil
}

// ComputeInto writes the CCF into dst, which must have length plan.Len().
// ws may be nil, in which case a workspace is allocated for this call;
// pass a reused Workspace of len(lambdas) to avoid that allocation in loops.
// On error dst is left untouched.
func ComputeInto(dst, lambdas, flux []float64, plan *Plan, ws *Workspace) error {
	r := request{dst: dst, lambdas: lambdas, flux: flux, ws: ws}

	return run(opCompute, r, plan, varNone)
}

// ComputeWithVarianceInto writes the CCF into dst and its variance into
// dstVar, both of length plan.Len(). See ComputeInto for ws.
func ComputeWithVarianceInto(dst, dstVar, lambdas, flux, variance []float64, plan *Plan, ws *Workspace) error {
	r := request{dst: dst, dstVar: dstVar, lambdas: lambdas, flux: flux, variance: variance, wantVar: true, ws: ws}

	return run(opComputeVar, r, plan, varPixel)
}

// ComputeResult is Compute/ComputeWithVariance returning a Result that
// carries the velocity grid alongside the values.
func ComputeResult(lambdas, flux, variance []float64, plan *Plan) (Result, error) {
	if plan == nil {
		return Result{}, ccfErrorf(opCompute, ErrNilPlan)
	}
	res := Result{Velocities: plan.grid.Values(), CCF: make([]float64, plan.Len())}
	var err error
	if variance == nil {
		err = ComputeInto(res.CCF, lambdas, flux, plan, nil)
	} else {
		res.Var = make([]float64, plan.Len())
		err = ComputeWithVarianceInto(res.CCF, res.Var, lambdas, flux, variance, plan, nil)
	}
	if err != nil {
		return Result{}, err
	}

	return res, nil
}

// run validates r and evaluates every velocity of plan.
func run(op string, r request, plan *Plan, mode varianceMode) error {
	empty, err := r.validate(plan)
	if err != nil {
		return ccfErrorf(op, err)
	}
	if empty {
		fill(r.dst, 0)
		if mode != varNone {
			fill(r.dstVar, 0)
		}
		return nil
	}
	ws := r.ws
	if ws == nil {
		ws = NewWorkspace(len(r.lambdas))
	}
	tracer().Debugf("ccf: %s over %d pixels, %d lines, %d velocities", op, len(r.lambdas), plan.lines.Len(), plan.Len())
	accumulate(r, plan, ws, mode, 0, plan.Len())

	return nil
}

// accumulate evaluates velocities [from, to) of plan into r.dst / r.dstVar.
// Iterations are independent; only ws is carried between them.
func accumulate(r request, plan *Plan, ws *Workspace, mode varianceMode, from, to int) {
	for i := from; i < to; i++ {
		s := plan.doppler.Factor(plan.grid.At(i))
		project(ws, r.lambdas, plan.lines, plan.shape, plan.doppler.C, s)
		r.dst[i] = dot(r.flux, ws.buf)
		switch mode {
		case varPixel:
			r.dstVar[i] = dot(r.variance, ws.buf)
		case varSegment:
			r.dstVar[i] = segmentVariance(r.variance, ws.buf)
		}
	}
}

// dot returns Σ a[k]·b[k] over every pixel, so a NaN anywhere in a
// propagates; len(a) == len(b) is guaranteed by validation.
func dot(a, b []float64) float64 {
	var sum float64
	for k, v := range b {
		sum += a[k] * v
	}

	return sum
}
