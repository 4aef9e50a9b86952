// SPDX-License-Identifier: MIT

package linelist

import (
	"fmt"
	"math"
	"sort"
)

// LineList is an immutable, ascending list of weighted mask lines.
// The zero value is a valid empty list.
type LineList struct {
	lambdas []float64
	weights []float64
}

// New copies and validates lambdas and weights.
//
// Errors:
//   - ErrLengthMismatch if the slices differ in length.
//   - ErrNaNInf on non-finite values or non-positive centres.
//   - ErrNegativeWeight on weights < 0.
//   - ErrUnsorted unless centres are strictly ascending.
//
// Complexity: O(n) time and memory.
func New(lambdas, weights []float64) (LineList, error) {
	if len(lambdas) != len(weights) {
		return LineList{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(lambdas), len(weights))
	}
	if err := validateValues(lambdas, weights); err != nil {
		return LineList{}, err
	}
	for i := 1; i < len(lambdas); i++ {
		if lambdas[i] <= lambdas[i-1] {
			return LineList{}, fmt.Errorf("%w: index %d (%g after %g)", ErrUnsorted, i, lambdas[i], lambdas[i-1])
		}
	}

	return LineList{lambdas: clone(lambdas), weights: clone(weights)}, nil
}

// NewSorted is New for input in any order: it sorts copies by centre first.
// Duplicate centres are still rejected with ErrUnsorted.
//
// Complexity: O(n log n).
func NewSorted(lambdas, weights []float64) (LineList, error) {
	if len(lambdas) != len(weights) {
		return LineList{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(lambdas), len(weights))
	}
	idx := make([]int, len(lambdas))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return lambdas[idx[a]] < lambdas[idx[b]] })
	ls := make([]float64, len(idx))
	ws := make([]float64, len(idx))
	for k, i := range idx {
		ls[k], ws[k] = lambdas[i], weights[i]
	}

	return New(ls, ws)
}

func validateValues(lambdas, weights []float64) error {
	for i, l := range lambdas {
		if math.IsNaN(l) || math.IsInf(l, 0) || l <= 0 {
			return fmt.Errorf("%w: lambda[%d]=%g", ErrNaNInf, i, l)
		}
		w := weights[i]
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: weight[%d]=%g", ErrNaNInf, i, w)
		}
		if w < 0 {
			return fmt.Errorf("%w: weight[%d]=%g", ErrNegativeWeight, i, w)
		}
	}

	return nil
}

// Len returns the number of lines.
func (l LineList) Len() int { return len(l.lambdas) }

// Lambda returns the centre of line i.
func (l LineList) Lambda(i int) float64 { return l.lambdas[i] }

// Weight returns the weight of line i.
func (l LineList) Weight(i int) float64 { return l.weights[i] }

// Lambdas returns a copy of the line centres.
func (l LineList) Lambdas() []float64 { return clone(l.lambdas) }

// Weights returns a copy of the weights.
func (l LineList) Weights() []float64 { return clone(l.weights) }

// TotalWeight returns the sum of all weights.
func (l LineList) TotalWeight() float64 {
	var sum float64
	for _, w := range l.weights {
		sum += w
	}

	return sum
}

// Subset returns the lines whose centres lie in [lo, hi]. It is the usual way
// to build a per-chunk mask from a full-spectrum list.
//
// Complexity: O(log n + k).
func (l LineList) Subset(lo, hi float64) LineList {
	i := sort.SearchFloat64s(l.lambdas, lo)
	j := sort.Search(len(l.lambdas), func(k int) bool { return l.lambdas[k] > hi })
	if j <= i {
		return LineList{}
	}

	return LineList{lambdas: clone(l.lambdas[i:j]), weights: clone(l.weights[i:j])}
}

// Filter returns the lines for which keep(centre, weight) is true.
func (l LineList) Filter(keep func(lambda, weight float64) bool) LineList {
	var out LineList
	for i, lam := range l.lambdas {
		if keep(lam, l.weights[i]) {
			out.lambdas = append(out.lambdas, lam)
			out.weights = append(out.weights, l.weights[i])
		}
	}

	return out
}

// String implements fmt.Stringer.
func (l LineList) String() string {
	if len(l.lambdas) == 0 {
		return "linelist(empty)"
	}

	return fmt.Sprintf("linelist(n=%d, %g..%g)", len(l.lambdas), l.lambdas[0], l.lambdas[len(l.lambdas)-1])
}

func clone(xs []float64) []float64 {
	if xs == nil {
		return nil
	}
	out := make([]float64, len(xs))
	copy(out, xs)

	return out
}
