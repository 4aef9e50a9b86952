// SPDX-License-Identifier: MIT

package ccf

// varianceMode selects how pixel variance is reduced against a projection.
type varianceMode int

const (
	// varNone skips variance propagation.
	varNone varianceMode = iota
	// varPixel reduces Σ var[k]·ws[k].
	varPixel
	// varSegment replaces var by its mean over each nonzero run of ws first.
	varSegment
)

// Result is the outcome of a CCF evaluation: one value per grid velocity.
// Var is nil when variance was not requested.
type Result struct {
	Velocities []float64
	CCF        []float64
	Var        []float64
}

// MinIndex returns the index of the smallest CCF value, or −1 if empty.
// For an absorption-line mask that is the velocity bin nearest the dip.
func (r Result) MinIndex() int {
	if len(r.CCF) == 0 {
		return -1
	}
	best := 0
	for i, v := range r.CCF {
		if v < r.CCF[best] {
			best = i
		}
	}

	return best
}
