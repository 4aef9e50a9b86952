// SPDX-License-Identifier: MIT

// Command ccfcalc cross-correlates a spectrum with a weighted line mask and
// prints the CCF on a velocity grid.
//
// Usage:
//
//	ccfcalc -mask lines.txt -spectrum spec.csv [flags]
//	ccfcalc -demo [flags]
//
// The spectrum CSV holds λ, flux and optionally variance per row. Output is
// one "v ccf [var]" row per velocity; the minimum is highlighted when stdout
// is a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/term"

	"github.com/katalvlaran/rvccf/ccf"
	"github.com/katalvlaran/rvccf/linelist"
	"github.com/katalvlaran/rvccf/shape"
	"github.com/katalvlaran/rvccf/velocity"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// options holds the parsed command line.
type options struct {
	mask         string
	format       string
	air          bool
	spectrum     string
	vmin, vmax   float64
	vstep        float64
	halfWidth    float64
	shape        string
	workers      int
	chunks       int
	segVar       bool
	relativistic bool
	demo         bool
	demoVelocity float64
	debug        bool
	color        string
}

var errUsage = errors.New("usage")

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("ccfcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.mask, "mask", "", "line mask file")
	fs.StringVar(&o.format, "format", "pairs", "mask format: pairs|intervals")
	fs.BoolVar(&o.air, "air", true, "mask wavelengths are in air; convert to vacuum")
	fs.StringVar(&o.spectrum, "spectrum", "", "spectrum CSV: lambda,flux[,variance]")
	fs.Float64Var(&o.vmin, "vmin", -20000, "lowest trial velocity (m/s)")
	fs.Float64Var(&o.vmax, "vmax", 20000, "highest trial velocity (m/s)")
	fs.Float64Var(&o.vstep, "vstep", 250, "velocity step (m/s)")
	fs.Float64Var(&o.halfWidth, "halfwidth", 2000, "mask line half-width, or sigma for gaussian (m/s)")
	fs.StringVar(&o.shape, "shape", "tophat", "mask line shape: tophat|gaussian")
	fs.IntVar(&o.workers, "workers", 1, "concurrent workers")
	fs.IntVar(&o.chunks, "chunks", 1, "split the spectrum into this many chunks and sum their CCFs")
	fs.BoolVar(&o.segVar, "segvar", false, "EXPERIMENTAL segment-averaged variance")
	fs.BoolVar(&o.relativistic, "relativistic", false, "relativistic Doppler factor")
	fs.BoolVar(&o.demo, "demo", false, "correlate a synthetic spectrum")
	fs.Float64Var(&o.demoVelocity, "demo-velocity", 12000, "velocity injected into the demo spectrum (m/s)")
	fs.BoolVar(&o.debug, "debug", false, "trace at debug level to stderr")
	fs.StringVar(&o.color, "color", "auto", "highlight the minimum: auto|always|never")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("%w: unexpected argument %q", errUsage, fs.Arg(0))
	}
	if !o.demo && (o.mask == "" || o.spectrum == "") {
		return o, fmt.Errorf("%w: -mask and -spectrum are required unless -demo is set", errUsage)
	}
	if o.workers < 1 || o.chunks < 1 {
		return o, fmt.Errorf("%w: -workers and -chunks must be >= 1", errUsage)
	}
	switch o.color {
	case "auto", "always", "never":
	default:
		return o, fmt.Errorf("%w: -color must be auto, always or never", errUsage)
	}

	return o, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	o, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "ccfcalc: %v\n", err)
		return exitUsage
	}
	if o.debug {
		tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
		tracing.Select("rvccf").SetTraceLevel(tracing.LevelDebug)
	}

	res, err := correlate(ctx, o, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "ccfcalc: %v\n", err)
		return exitError
	}
	if err := writeTable(stdout, res, highlight(o.color, stdout)); err != nil {
		fmt.Fprintf(stderr, "ccfcalc: %v\n", err)
		return exitError
	}

	return exitOK
}

// highlight resolves -color against the output stream.
func highlight(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

// input is everything needed for one correlation.
type input struct {
	lambdas, flux, variance []float64
	plan                    *ccf.Plan
}

func correlate(ctx context.Context, o options, stderr io.Writer) (ccf.Result, error) {
	in, err := load(o)
	if err != nil {
		return ccf.Result{}, err
	}
	if o.segVar && in.variance == nil {
		return ccf.Result{}, errors.New("-segvar needs a variance column")
	}
	if o.chunks > 1 {
		return correlateChunks(ctx, in, o, stderr)
	}

	res := ccf.Result{Velocities: in.plan.Grid().Values()}
	switch {
	case o.segVar:
		res.CCF, res.Var, err = ccf.ComputeSegmentVariance(in.lambdas, in.flux, in.variance, in.plan)
	default:
		res.CCF, res.Var, err = ccf.ComputeConcurrent(in.lambdas, in.flux, in.variance, in.plan, o.workers)
	}
	if err != nil {
		return ccf.Result{}, err
	}

	return res, nil
}

func load(o options) (input, error) {
	var (
		in    input
		lines linelist.LineList
		err   error
	)
	if o.demo {
		in.lambdas, in.flux, in.variance, lines, err = demoSpectrum(o.demoVelocity)
		if err != nil {
			return in, err
		}
	}
	if o.mask != "" {
		format, err := linelist.ParseFormat(o.format)
		if err != nil {
			return in, err
		}
		if lines, err = linelist.LoadFile(o.mask, format, linelist.WithAirToVacuum(o.air)); err != nil {
			return in, err
		}
	}
	if o.spectrum != "" {
		if in.lambdas, in.flux, in.variance, err = loadSpectrum(o.spectrum); err != nil {
			return in, err
		}
	}

	var sh shape.Shape
	switch o.shape {
	case "tophat":
		sh, err = shape.NewTopHat(o.halfWidth)
	case "gaussian":
		sh, err = shape.NewGaussian(o.halfWidth)
	default:
		err = fmt.Errorf("unknown shape %q", o.shape)
	}
	if err != nil {
		return in, err
	}
	grid, err := velocity.NewGridRange(o.vmin, o.vmax, o.vstep)
	if err != nil {
		return in, err
	}
	cv := velocity.Classical
	if o.relativistic {
		cv = velocity.Relativistic
	}
	in.plan, err = ccf.NewPlan(lines, sh, grid, ccf.WithConvention(cv))

	return in, err
}
