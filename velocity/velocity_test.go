// SPDX-License-Identifier: MIT

package velocity_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rvccf/velocity"
)

// TestFactor_Classical checks 1+v/c for a few velocities.
func TestFactor_Classical(t *testing.T) {
	d := velocity.DefaultDoppler()
	assert.Equal(t, 1.0, d.Factor(0))
	assert.InDelta(t, 1+1000/velocity.SpeedOfLight, d.Factor(1000), 1e-15)
	assert.InDelta(t, 1-1000/velocity.SpeedOfLight, d.Factor(-1000), 1e-15)
}

// TestFactor_RelativisticMatchesClassicalToFirstOrder compares conventions at small v.
func TestFactor_RelativisticMatchesClassicalToFirstOrder(t *testing.T) {
	for _, v := range []float64{-3e4, -100, 0, 100, 3e4} {
		cl := velocity.Factor(v, velocity.SpeedOfLight, velocity.Classical)
		rel := velocity.Factor(v, velocity.SpeedOfLight, velocity.Relativistic)
		beta := v / velocity.SpeedOfLight
		// Difference is beta²/2 + O(beta³).
		assert.InDelta(t, 0.5*beta*beta, rel-cl, 1e-12, "v=%g", v)
	}
}

// TestFactor_RelativisticInverse verifies f(v)·f(−v) == 1.
func TestFactor_RelativisticInverse(t *testing.T) {
	d := velocity.Doppler{C: velocity.SpeedOfLight, Convention: velocity.Relativistic}
	assert.InDelta(t, 1.0, d.Factor(1.5e7)*d.Factor(-1.5e7), 1e-14)
}

// TestDoppler_Check rejects |v| ≥ c relativistically and v ≤ −c classically.
func TestDoppler_Check(t *testing.T) {
	rel := velocity.Doppler{C: 10, Convention: velocity.Relativistic}
	assert.ErrorIs(t, rel.Check(10), velocity.ErrSuperluminal)
	assert.ErrorIs(t, rel.Check(-11), velocity.ErrSuperluminal)
	assert.NoError(t, rel.Check(9.99))

	cl := velocity.Doppler{C: 10, Convention: velocity.Classical}
	assert.NoError(t, cl.Check(100))
	assert.NoError(t, cl.Check(-9.99))
	assert.ErrorIs(t, cl.Check(-10), velocity.ErrSuperluminal)
	assert.ErrorIs(t, cl.Check(-4e8), velocity.ErrSuperluminal)
}

func TestConvention_String(t *testing.T) {
	assert.Equal(t, "classical", velocity.Classical.String())
	assert.Equal(t, "relativistic", velocity.Relativistic.String())
	assert.Equal(t, "Convention(7)", velocity.Convention(7).String())
}

// TestNewGridRange covers the inclusive upper bound and spacing.
func TestNewGridRange(t *testing.T) {
	g, err := velocity.NewGridRange(-100, 100, 100)
	require.NoError(t, err)
	assert.Equal(t, []float64{-100, 0, 100}, g.Values())
	assert.Equal(t, 100.0, g.Step())
	assert.Equal(t, -100.0, g.Min())
	assert.Equal(t, 100.0, g.Max())
	assert.Equal(t, 0.0, g.Center())

	// Non-multiple span: last point stays below vmax.
	g, err = velocity.NewGridRange(0, 250, 100)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 100, 200}, g.Values())

	// Floating-point step that does not divide exactly in binary.
	g, err = velocity.NewGridRange(0, 0.3, 0.1)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Len())
}

func TestNewGridRange_Errors(t *testing.T) {
	cases := []struct {
		name            string
		vmin, vmax, stp float64
		err             error
	}{
		{"ZeroStep", 0, 1, 0, velocity.ErrBadStep},
		{"NegativeStep", 0, 1, -1, velocity.ErrBadStep},
		{"NaNStep", 0, 1, math.NaN(), velocity.ErrBadStep},
		{"Reversed", 1, 0, 0.1, velocity.ErrBadRange},
		{"InfBound", math.Inf(-1), 0, 0.1, velocity.ErrBadRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := velocity.NewGridRange(tc.vmin, tc.vmax, tc.stp)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNewGridCentered checks symmetry and membership of the center.
func TestNewGridCentered(t *testing.T) {
	g, err := velocity.NewGridCentered(500, 1000, 250)
	require.NoError(t, err)
	assert.Equal(t, []float64{-500, -250, 0, 250, 500, 750, 1000, 1250, 1500}, g.Values())
	assert.Equal(t, 500.0, g.Center())

	g, err = velocity.NewGridCentered(0, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, g.Values())

	_, err = velocity.NewGridCentered(0, -1, 10)
	assert.ErrorIs(t, err, velocity.ErrBadRange)
}

func TestNewGridN(t *testing.T) {
	g, err := velocity.NewGridN(0, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, []float64{-3, -1, 1, 3}, g.Values())

	_, err = velocity.NewGridN(0, 2, 0)
	assert.ErrorIs(t, err, velocity.ErrTooFewPoints)

	_, err = velocity.NewGridN(0, 2, velocity.MaxGridPoints+1)
	assert.ErrorIs(t, err, velocity.ErrTooManyPoints)
}

// TestGrid_TooManyPoints rejects tiny steps before allocating.
func TestGrid_TooManyPoints(t *testing.T) {
	cases := []struct {
		name string
		make func() (velocity.Grid, error)
	}{
		{"range/tiny step", func() (velocity.Grid, error) { return velocity.NewGridRange(0, 1, 1e-300) }},
		{"range/huge span", func() (velocity.Grid, error) { return velocity.NewGridRange(-1e308, 1e308, 1) }},
		{"centered/tiny step", func() (velocity.Grid, error) { return velocity.NewGridCentered(0, 1, 1e-300) }},
		{"centered/just over", func() (velocity.Grid, error) {
			return velocity.NewGridCentered(0, velocity.MaxGridPoints/2, 1)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := tc.make()
			assert.ErrorIs(t, err, velocity.ErrTooManyPoints)
			assert.Equal(t, 0, g.Len())
		})
	}
}

func TestGridFromValues(t *testing.T) {
	g, err := velocity.GridFromValues([]float64{-100, 0, 100})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, 100.0, g.Step())

	_, err = velocity.GridFromValues(nil)
	assert.ErrorIs(t, err, velocity.ErrTooFewPoints)
	_, err = velocity.GridFromValues([]float64{0, 0, 1})
	assert.ErrorIs(t, err, velocity.ErrNotIncreasing)
	_, err = velocity.GridFromValues([]float64{0, 1, 3})
	assert.ErrorIs(t, err, velocity.ErrUneven)
}

// TestGrid_ValuesIsCopy ensures the grid stays immutable.
func TestGrid_ValuesIsCopy(t *testing.T) {
	src := []float64{1, 2, 3}
	g, err := velocity.GridFromValues(src)
	require.NoError(t, err)
	src[0] = 42
	vs := g.Values()
	vs[1] = 42
	assert.Equal(t, []float64{1, 2, 3}, g.Values())
}

func TestGrid_CheckDoppler(t *testing.T) {
	g, err := velocity.NewGridRange(-20, 20, 10)
	require.NoError(t, err)
	assert.ErrorIs(t, g.CheckDoppler(velocity.Doppler{C: 15, Convention: velocity.Relativistic}), velocity.ErrSuperluminal)
	assert.ErrorIs(t, g.CheckDoppler(velocity.Doppler{C: 15, Convention: velocity.Classical}), velocity.ErrSuperluminal)
	assert.NoError(t, g.CheckDoppler(velocity.Doppler{C: 25, Convention: velocity.Classical}))
	assert.NoError(t, velocity.Grid{}.CheckDoppler(velocity.DefaultDoppler()))
}
