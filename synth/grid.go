// SPDX-License-Identifier: MIT

package synth

import "math"

// minGridPoints is the smallest grid with defined pixel edges.
const minGridPoints = 2

// UniformGrid returns n wavelengths evenly spaced on [lo, hi].
//
// Errors: ErrBadSize if n < 2 or hi ≤ lo (or either bound ≤ 0).
//
// Complexity: O(n).
func UniformGrid(lo, hi float64, n int) ([]float64, error) {
	if err := checkGrid(methodUniformGrid, lo, hi, n); err != nil {
		return nil, err
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi

	return out, nil
}

// LogUniformGrid returns n wavelengths evenly spaced in ln λ on [lo, hi],
// i.e. every pixel spans the same velocity width.
func LogUniformGrid(lo, hi float64, n int) ([]float64, error) {
	if err := checkGrid(methodLogUniformGrid, lo, hi, n); err != nil {
		return nil, err
	}
	out := make([]float64, n)
	a, b := math.Log(lo), math.Log(hi)
	step := (b - a) / float64(n-1)
	for i := range out {
		out[i] = math.Exp(a + float64(i)*step)
	}
	out[0], out[n-1] = lo, hi

	return out, nil
}

func checkGrid(method string, lo, hi float64, n int) error {
	if n < minGridPoints {
		return synthErrorf(method, ErrBadSize, "need at least %d points, got %d", minGridPoints, n)
	}
	if !(lo > 0) || !(hi > lo) || math.IsInf(hi, 0) {
		return synthErrorf(method, ErrBadSize, "range [%g, %g]", lo, hi)
	}

	return nil
}
