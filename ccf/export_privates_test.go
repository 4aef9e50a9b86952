// SPDX-License-Identifier: MIT

package ccf

// White-box bridge: exposes unexported kernels to package ccf_test only.

// SegmentVarianceTestOnly forwards to segmentVariance.
func SegmentVarianceTestOnly(variance, ws []float64) float64 {
	return segmentVariance(variance, ws)
}

// ClassifyTestOnly forwards to classify and returns the state name.
func ClassifyTestOnly(onMask bool, right, lo, hi float64) string {
	return classify(onMask, right, lo, hi).String()
}
