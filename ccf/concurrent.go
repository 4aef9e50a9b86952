// SPDX-License-Identifier: MIT

package ccf

import "sync"

// ComputeConcurrent evaluates the velocity grid on up to workers goroutines.
// The grid is cut into contiguous blocks and every worker owns a private
// Workspace, so results are bit-identical to the sequential functions.
// variance may be nil; ccfVar is then nil as well.
//
// Errors: as ComputeWithVariance, plus ErrBadWorkers for workers < 1.
//
// Complexity: O(V·(P + L)/workers) wall time, O(workers·P) scratch memory.
func ComputeConcurrent(lambdas, flux, variance []float64, plan *Plan, workers int) (ccf, ccfVar []float64, err error) {
	if workers < 1 {
		return nil, nil, ccfErrorf(opComputeParallel, ErrBadWorkers)
	}
	if plan == nil {
		return nil, nil, ccfErrorf(opComputeParallel, ErrNilPlan)
	}
	n := plan.Len()
	mode := varNone
	r := request{dst: make([]float64, n), lambdas: lambdas, flux: flux}
	if variance != nil {
		mode = varPixel
		r.variance, r.dstVar, r.wantVar = variance, make([]float64, n), true
	}
	empty, err := r.validate(plan)
	if err != nil {
		return nil, nil, ccfErrorf(opComputeParallel, err)
	}
	if empty {
		return r.dst, r.dstVar, nil
	}
	if workers > n {
		workers = n
	}
	tracer().Debugf("ccf: %s on %d workers, %d velocities", opComputeParallel, workers, n)

	var wg sync.WaitGroup
	block := (n + workers - 1) / workers
	for from := 0; from < n; from += block {
		to := from + block
		if to > n {
			to = n
		}
		wg.Add(1)
		go func(from, to int) {
			defer wg.Done()
			accumulate(r, plan, NewWorkspace(len(lambdas)), mode, from, to)
		}(from, to)
	}
	wg.Wait()

	return r.dst, r.dstVar, nil
}
