// SPDX-License-Identifier: MIT

package ccf

import (
	"fmt"
	"math"
)

// validatePixels checks that lambdas has ≥ 2 strictly increasing entries.
// Complexity: O(P).
func validatePixels(lambdas []float64) error {
	if len(lambdas) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewPixels, len(lambdas))
	}
	for i := 1; i < len(lambdas); i++ {
		if !(lambdas[i] > lambdas[i-1]) {
			return fmt.Errorf("%w: index %d", ErrNotIncreasing, i)
		}
	}

	return nil
}

// request bundles one Compute call's arguments for validation.
type request struct {
	dst, dstVar []float64
	lambdas     []float64
	flux        []float64
	variance    []float64
	wantVar     bool
	ws          *Workspace
}

// validate enforces the precondition order
// plan → outputs → input lengths → (empty mask short-circuit) → pixels → workspace.
// It reports empty=true when the mask has no lines and outputs must be zeroed.
func (r request) validate(plan *Plan) (empty bool, err error) {
	if plan == nil {
		return false, ErrNilPlan
	}
	n := plan.Len()
	if len(r.dst) != n {
		return false, fmt.Errorf("%w: ccf has %d, grid has %d", ErrOutputLength, len(r.dst), n)
	}
	if r.wantVar && len(r.dstVar) != n {
		return false, fmt.Errorf("%w: variance has %d, grid has %d", ErrOutputLength, len(r.dstVar), n)
	}
	if len(r.flux) != len(r.lambdas) {
		return false, fmt.Errorf("%w: flux %d vs lambdas %d", ErrLengthMismatch, len(r.flux), len(r.lambdas))
	}
	if r.wantVar && len(r.variance) != len(r.lambdas) {
		return false, fmt.Errorf("%w: variance %d vs lambdas %d", ErrLengthMismatch, len(r.variance), len(r.lambdas))
	}
	if plan.lines.Len() == 0 {
		return true, nil
	}
	if err = validatePixels(r.lambdas); err != nil {
		return false, err
	}
	if r.ws != nil && r.ws.Len() != len(r.lambdas) {
		return false, fmt.Errorf("%w: workspace %d vs lambdas %d", ErrWorkspaceLength, r.ws.Len(), len(r.lambdas))
	}

	return false, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func fill(xs []float64, v float64) {
	for i := range xs {
		xs[i] = v
	}
}
