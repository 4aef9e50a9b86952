// SPDX-License-Identifier: MIT

package linelist

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Format identifies a line-list text layout.
type Format int

const (
	// FormatPairs rows are "centre weight".
	FormatPairs Format = iota
	// FormatIntervals rows are "lower upper depth".
	FormatIntervals
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case FormatPairs:
		return "pairs"
	case FormatIntervals:
		return "intervals"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps "pairs" / "intervals" to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pairs":
		return FormatPairs, nil
	case "intervals":
		return FormatIntervals, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// ReadOption customizes ReadPairs, ReadIntervals and LoadFile.
type ReadOption func(*readConfig)

type readConfig struct {
	airToVacuum bool
	lo, hi      float64
}

// WithAirToVacuum toggles the air→vacuum conversion (default on).
func WithAirToVacuum(on bool) ReadOption {
	return func(c *readConfig) { c.airToVacuum = on }
}

// WithRange keeps only lines whose final (converted) centre lies in [lo, hi].
// Panics if lo > hi.
func WithRange(lo, hi float64) ReadOption {
	if lo > hi {
		panic("linelist: WithRange: lo > hi")
	}

	return func(c *readConfig) { c.lo, c.hi = lo, hi }
}

func gatherReadOptions(opts []ReadOption) readConfig {
	cfg := readConfig{airToVacuum: true, lo: math.Inf(-1), hi: math.Inf(1)}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// ReadPairs parses rows of (centre, weight). Extra columns are ignored.
func ReadPairs(r io.Reader, opts ...ReadOption) (LineList, error) {
	return read(r, 2, func(f []float64) (float64, float64) { return f[0], f[1] }, opts)
}

// ReadIntervals parses rows of (lower, upper, depth) and converts each to a
// line at sqrt(lower·upper) with weight depth. Rows with upper ≤ lower are
// rejected with ErrParse.
func ReadIntervals(r io.Reader, opts ...ReadOption) (LineList, error) {
	return read(r, 3, func(f []float64) (float64, float64) { return math.Sqrt(f[0] * f[1]), f[2] }, opts)
}

// LoadFile opens path and reads it in the given format.
func LoadFile(path string, format Format, opts ...ReadOption) (LineList, error) {
	f, err := os.Open(path)
	if err != nil {
		return LineList{}, err
	}
	defer f.Close()

	switch format {
	case FormatPairs:
		return ReadPairs(f, opts...)
	case FormatIntervals:
		return ReadIntervals(f, opts...)
	default:
		return LineList{}, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
}

// read drives the shared row loop: tokenize, convert, filter, sort, validate.
func read(r io.Reader, cols int, toLine func([]float64) (float64, float64), opts []ReadOption) (LineList, error) {
	cfg := gatherReadOptions(opts)
	var lambdas, weights []float64
	fields := make([]float64, cols)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		toks := strings.FieldsFunc(text, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' || r == ';' })
		if len(toks) < cols {
			return LineList{}, fmt.Errorf("%w: line %d: want %d columns, got %d", ErrParse, lineNo, cols, len(toks))
		}
		for k := 0; k < cols; k++ {
			v, err := strconv.ParseFloat(toks[k], 64)
			if err != nil {
				return LineList{}, fmt.Errorf("%w: line %d column %d: %v", ErrParse, lineNo, k+1, err)
			}
			fields[k] = v
		}
		if cols == 3 && fields[1] <= fields[0] {
			return LineList{}, fmt.Errorf("%w: line %d: upper %g ≤ lower %g", ErrParse, lineNo, fields[1], fields[0])
		}
		lambda, weight := toLine(fields)
		if cfg.airToVacuum {
			lambda = AirToVacuum(lambda)
		}
		if lambda < cfg.lo || lambda > cfg.hi {
			continue
		}
		lambdas = append(lambdas, lambda)
		weights = append(weights, weight)
	}
	if err := sc.Err(); err != nil {
		return LineList{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	tracer().Debugf("linelist: read %d lines (air→vacuum=%v)", len(lambdas), cfg.airToVacuum)

	return NewSorted(lambdas, weights)
}
