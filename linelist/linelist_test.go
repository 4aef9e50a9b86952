// SPDX-License-Identifier: MIT

package linelist_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rvccf/linelist"
)

func TestNew_Valid(t *testing.T) {
	ls, err := linelist.New([]float64{5000, 5001, 5002.5}, []float64{0.5, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, 3, ls.Len())
	assert.Equal(t, 5001.0, ls.Lambda(1))
	assert.Equal(t, 1.0, ls.Weight(1))
	assert.Equal(t, 1.5, ls.TotalWeight())
	assert.Equal(t, "linelist(n=3, 5000..5002.5)", ls.String())
}

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name    string
		lambdas []float64
		weights []float64
		err     error
	}{
		{"LengthMismatch", []float64{1, 2}, []float64{1}, linelist.ErrLengthMismatch},
		{"Unsorted", []float64{2, 1}, []float64{1, 1}, linelist.ErrUnsorted},
		{"Duplicate", []float64{1, 1}, []float64{1, 1}, linelist.ErrUnsorted},
		{"NegativeWeight", []float64{1, 2}, []float64{1, -0.1}, linelist.ErrNegativeWeight},
		{"NaNLambda", []float64{math.NaN()}, []float64{1}, linelist.ErrNaNInf},
		{"ZeroLambda", []float64{0}, []float64{1}, linelist.ErrNaNInf},
		{"InfWeight", []float64{1}, []float64{math.Inf(1)}, linelist.ErrNaNInf},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := linelist.New(tc.lambdas, tc.weights)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_Empty verifies the degenerate empty list is valid.
func TestNew_Empty(t *testing.T) {
	ls, err := linelist.New(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, ls.Len())
	assert.Equal(t, "linelist(empty)", ls.String())
	assert.Equal(t, 0, linelist.LineList{}.Len())
}

// TestNew_Copies verifies the list is immune to caller mutation.
func TestNew_Copies(t *testing.T) {
	l := []float64{1, 2}
	w := []float64{3, 4}
	ls, err := linelist.New(l, w)
	require.NoError(t, err)
	l[0], w[0] = 100, 100
	got := ls.Lambdas()
	got[1] = 100
	assert.Equal(t, []float64{1, 2}, ls.Lambdas())
	assert.Equal(t, []float64{3, 4}, ls.Weights())
}

func TestNewSorted(t *testing.T) {
	ls, err := linelist.NewSorted([]float64{3, 1, 2}, []float64{30, 10, 20})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, ls.Lambdas())
	assert.Equal(t, []float64{10, 20, 30}, ls.Weights())

	_, err = linelist.NewSorted([]float64{1, 1}, []float64{1, 1})
	assert.ErrorIs(t, err, linelist.ErrUnsorted)
}

func TestSubsetAndFilter(t *testing.T) {
	ls, err := linelist.New([]float64{1, 2, 3, 4, 5}, []float64{1, 0, 1, 0, 1})
	require.NoError(t, err)

	sub := ls.Subset(2, 4)
	assert.Equal(t, []float64{2, 3, 4}, sub.Lambdas())
	assert.Equal(t, 0, ls.Subset(5.5, 9).Len())
	assert.Equal(t, 0, ls.Subset(3.2, 3.8).Len())

	f := ls.Filter(func(_, w float64) bool { return w > 0 })
	assert.Equal(t, []float64{1, 3, 5}, f.Lambdas())
}

// TestAirVacuum_RoundTrip checks both conversions invert each other.
func TestAirVacuum_RoundTrip(t *testing.T) {
	for _, air := range []float64{3800, 5000, 6562.8, 9000, 25000} {
		vac := linelist.AirToVacuum(air)
		assert.Greater(t, vac, air, "vacuum wavelengths are longer")
		assert.InDelta(t, air, linelist.VacuumToAir(vac), 1e-8)
	}
	// Hα: 6562.80 Å in air is about 6564.61 Å in vacuum.
	assert.InDelta(t, 6564.61, linelist.AirToVacuum(6562.80), 0.01)
}

func TestReadPairs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rvccf")
	defer teardown()

	src := `# centre weight
5002.0, 0.2

5000.0 0.8
5001.0	0.5 extra
`
	ls, err := linelist.ReadPairs(strings.NewReader(src), linelist.WithAirToVacuum(false))
	require.NoError(t, err)
	assert.Equal(t, []float64{5000, 5001, 5002}, ls.Lambdas())
	assert.Equal(t, []float64{0.8, 0.5, 0.2}, ls.Weights())

	vac, err := linelist.ReadPairs(strings.NewReader(src))
	require.NoError(t, err)
	assert.InDelta(t, linelist.AirToVacuum(5000), vac.Lambda(0), 1e-12)
}

func TestReadIntervals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rvccf")
	defer teardown()

	src := "4000 4001 0.3\n3990 3991 0.7\n"
	ls, err := linelist.ReadIntervals(strings.NewReader(src), linelist.WithAirToVacuum(false))
	require.NoError(t, err)
	require.Equal(t, 2, ls.Len())
	assert.InDelta(t, math.Sqrt(3990*3991.0), ls.Lambda(0), 1e-12)
	assert.Equal(t, 0.7, ls.Weight(0))
	assert.Equal(t, 0.3, ls.Weight(1))
}

func TestRead_Errors(t *testing.T) {
	_, err := linelist.ReadPairs(strings.NewReader("5000\n"))
	assert.ErrorIs(t, err, linelist.ErrParse)
	_, err = linelist.ReadPairs(strings.NewReader("5000 abc\n"))
	assert.ErrorIs(t, err, linelist.ErrParse)
	_, err = linelist.ReadIntervals(strings.NewReader("4001 4000 1\n"))
	assert.ErrorIs(t, err, linelist.ErrParse)
	_, err = linelist.ReadPairs(strings.NewReader("5000 -1\n"))
	assert.ErrorIs(t, err, linelist.ErrNegativeWeight)
}

func TestRead_WithRange(t *testing.T) {
	src := "1 1\n2 1\n3 1\n4 1\n"
	ls, err := linelist.ReadPairs(strings.NewReader(src), linelist.WithAirToVacuum(false), linelist.WithRange(2, 3))
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3}, ls.Lambdas())
	assert.Panics(t, func() { linelist.WithRange(3, 2) })
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mask.txt")
	require.NoError(t, os.WriteFile(path, []byte("6000 6000.2 1\n"), 0o600))

	ls, err := linelist.LoadFile(path, linelist.FormatIntervals, linelist.WithAirToVacuum(false))
	require.NoError(t, err)
	assert.Equal(t, 1, ls.Len())

	_, err = linelist.LoadFile(path, linelist.Format(9))
	assert.ErrorIs(t, err, linelist.ErrUnknownFormat)
	_, err = linelist.LoadFile(filepath.Join(dir, "missing.txt"), linelist.FormatPairs)
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, err := linelist.ParseFormat("Pairs")
	require.NoError(t, err)
	assert.Equal(t, linelist.FormatPairs, f)
	f, err = linelist.ParseFormat("intervals")
	require.NoError(t, err)
	assert.Equal(t, "intervals", f.String())
	_, err = linelist.ParseFormat("fits")
	assert.ErrorIs(t, err, linelist.ErrUnknownFormat)
}
