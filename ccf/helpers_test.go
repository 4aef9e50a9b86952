// SPDX-License-Identifier: MIT

package ccf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rvccf/ccf"
	"github.com/katalvlaran/rvccf/linelist"
	"github.com/katalvlaran/rvccf/shape"
	"github.com/katalvlaran/rvccf/synth"
	"github.com/katalvlaran/rvccf/velocity"
)

// fineGrid is 1001 pixels of 0.01 Å on [5000, 5010].
func fineGrid(t testing.TB) []float64 {
	t.Helper()
	lambdas, err := synth.UniformGrid(5000, 5010, 1001)
	require.NoError(t, err)

	return lambdas
}

func mustLines(t testing.TB, lambdas, weights []float64) linelist.LineList {
	t.Helper()
	ls, err := linelist.New(lambdas, weights)
	require.NoError(t, err)

	return ls
}

func mustTopHat(t testing.TB, w float64, opts ...shape.Option) shape.TopHat {
	t.Helper()
	sh, err := shape.NewTopHat(w, opts...)
	require.NoError(t, err)

	return sh
}

func mustGrid(t testing.TB, vs ...float64) velocity.Grid {
	t.Helper()
	g, err := velocity.GridFromValues(vs)
	require.NoError(t, err)

	return g
}

func mustPlan(t testing.TB, lines linelist.LineList, sh shape.Shape, grid velocity.Grid, opts ...ccf.Option) *ccf.Plan {
	t.Helper()
	p, err := ccf.NewPlan(lines, sh, grid, opts...)
	require.NoError(t, err)

	return p
}

// projectAt returns a copy of the projection of plan at shift factor s.
func projectAt(t testing.TB, lambdas []float64, plan *ccf.Plan, s float64) []float64 {
	t.Helper()
	ws := ccf.NewWorkspace(len(lambdas))
	require.NoError(t, ccf.Project(ws, lambdas, plan, s))

	return append([]float64(nil), ws.Values()...)
}

// mass returns Σ ws[p]·Δλ_p/λ_p·c, the mask weight carried by a projection.
func mass(t testing.TB, lambdas, ws []float64, c float64) float64 {
	t.Helper()
	left, right, err := ccf.PixelEdges(lambdas)
	require.NoError(t, err)
	var sum float64
	for p := range ws {
		sum += ws[p] * (right[p] - left[p]) / (0.5 * (right[p] + left[p])) * c
	}

	return sum
}

func constant(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out
}

func maxAbs(xs []float64) float64 {
	var m float64
	for _, x := range xs {
		if x < 0 {
			x = -x
		}
		if x > m {
			m = x
		}
	}

	return m
}
