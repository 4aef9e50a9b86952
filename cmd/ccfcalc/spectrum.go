// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/rvccf/linelist"
	"github.com/katalvlaran/rvccf/synth"
)

var errSpectrum = errors.New("spectrum")

// loadSpectrum reads a spectrum CSV file; see readSpectrum.
func loadSpectrum(path string) (lambdas, flux, variance []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, err
	}
	defer f.Close()

	return readSpectrum(f)
}

// readSpectrum parses rows of "lambda,flux[,variance]". Lines starting with
// '#' are comments; a first row that does not parse as numbers is taken as
// a header. All rows must have the same column count. variance is nil for
// two-column input.
func readSpectrum(r io.Reader) (lambdas, flux, variance []float64, err error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", errSpectrum, err)
	}
	cols := 0
	for i, rec := range records {
		row, perr := parseRow(rec)
		if perr != nil {
			if i == 0 {
				continue // header
			}
			return nil, nil, nil, fmt.Errorf("%w: row %d: %v", errSpectrum, i+1, perr)
		}
		if cols == 0 {
			cols = len(row)
			if cols < 2 || cols > 3 {
				return nil, nil, nil, fmt.Errorf("%w: want 2 or 3 columns, got %d", errSpectrum, cols)
			}
		} else if len(row) != cols {
			return nil, nil, nil, fmt.Errorf("%w: row %d has %d columns, want %d", errSpectrum, i+1, len(row), cols)
		}
		lambdas = append(lambdas, row[0])
		flux = append(flux, row[1])
		if cols == 3 {
			variance = append(variance, row[2])
		}
	}
	if len(lambdas) == 0 {
		return nil, nil, nil, fmt.Errorf("%w: no data rows", errSpectrum)
	}

	return lambdas, flux, variance, nil
}

func parseRow(rec []string) ([]float64, error) {
	row := make([]float64, len(rec))
	for j, field := range rec {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, err
		}
		row[j] = v
	}

	return row, nil
}

// demoSpectrum is a noisy synthetic spectrum with 37 lines, shifted by v.
// The same lines serve as the mask.
func demoSpectrum(v float64) (lambdas, flux, variance []float64, lines linelist.LineList, err error) {
	if lambdas, err = synth.LogUniformGrid(5000, 5100, 20000); err != nil {
		return
	}
	if lines, err = synth.RegularLineList(5005, 5095, 37, 0.6); err != nil {
		return
	}
	flux, variance, err = synth.BuildSpectrum(lambdas, lines, 1,
		synth.WithVelocity(v), synth.WithNoise(0.002))

	return
}
