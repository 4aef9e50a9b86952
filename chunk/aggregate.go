// SPDX-License-Identifier: MIT

package chunk

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/rvccf/ccf"
	"github.com/katalvlaran/rvccf/velocity"
)

// gridTol is the relative tolerance when matching chunk velocity grids.
const gridTol = 1e-9

// Chunk is one independently correlated piece of a spectrum.
type Chunk struct {
	Lambdas []float64
	Flux    []float64
	Var     []float64 // may be nil unless variance is requested
	Plan    *ccf.Plan
}

// Result is the aggregated CCF. Var and PerChunkVar are nil unless variance
// was requested. PerChunk[i] is the CCF of chunks[i].
type Result struct {
	Velocities  []float64
	CCF         []float64
	Var         []float64
	PerChunk    [][]float64
	PerChunkVar [][]float64
}

// Progress is published once per finished chunk.
type Progress struct {
	Index int // chunk index
	Done  int // chunks finished so far, including this one
	Total int
}

// Aggregate correlates every chunk and sums the CCFs elementwise.
// A chunk whose plan has an empty line list contributes zeros.
//
// Errors: see the package doc.
func Aggregate(ctx context.Context, chunks []Chunk, opts ...Option) (Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(chunks, cfg); err != nil {
		return Result{}, fmt.Errorf("Aggregate: %w", err)
	}

	n := chunks[0].Plan.Len()
	workers := cfg.workers
	if workers > len(chunks) {
		workers = len(chunks)
	}
	tracer().Debugf("chunk: aggregating %d chunks on %d workers", len(chunks), workers)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type res struct {
		idx     int
		ccf, vr []float64
		err     error
	}
	// Bounded channels: 2×workers gives natural back-pressure.
	inCh := make(chan int, workers*2)
	outCh := make(chan res, workers*2)

	var wg sync.WaitGroup
	worker := func() {
		defer wg.Done()
		ws := ccf.NewWorkspace(0)
		for idx := range inCh {
			if ctx.Err() != nil {
				outCh <- res{idx: idx, err: ctx.Err()}
				continue
			}
			c := chunks[idx]
			ws.Resize(len(c.Lambdas))
			r := res{idx: idx, ccf: make([]float64, n)}
			switch {
			case cfg.segment:
				r.vr = make([]float64, n)
				r.err = ccf.ComputeSegmentVarianceInto(r.ccf, r.vr, c.Lambdas, c.Flux, c.Var, c.Plan, ws)
			case cfg.variance:
				r.vr = make([]float64, n)
				r.err = ccf.ComputeWithVarianceInto(r.ccf, r.vr, c.Lambdas, c.Flux, c.Var, c.Plan, ws)
			default:
				r.err = ccf.ComputeInto(r.ccf, c.Lambdas, c.Flux, c.Plan, ws)
			}
			outCh <- r
		}
	}
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go worker()
	}

	// producer
	go func() {
		defer close(inCh)
		for i := range chunks {
			select {
			case <-ctx.Done():
				return
			case inCh <- i:
			}
		}
	}()
	go func() {
		wg.Wait()
		close(outCh)
	}()

	out := Result{
		Velocities: chunks[0].Plan.Grid().Values(),
		PerChunk:   make([][]float64, len(chunks)),
	}
	if cfg.variance {
		out.PerChunkVar = make([][]float64, len(chunks))
	}
	var firstErr error
	done := 0
	for r := range outCh {
		if r.err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("Aggregate: chunk %d: %w", r.idx, r.err)
				cancel()
			}
			continue
		}
		out.PerChunk[r.idx] = r.ccf
		if cfg.variance {
			out.PerChunkVar[r.idx] = r.vr
		}
		done++
		tracer().Debugf("chunk: %d/%d done (chunk %d)", done, len(chunks), r.idx)
		if cfg.progress != nil {
			cfg.progress.Pub(Progress{Index: r.idx, Done: done, Total: len(chunks)})
		}
	}
	if firstErr != nil {
		return Result{}, firstErr
	}
	// The producer stops early on caller cancellation without any worker error.
	if done < len(chunks) {
		return Result{}, fmt.Errorf("Aggregate: %w", ctx.Err())
	}

	out.CCF = make([]float64, n)
	if err := Sum(out.CCF, out.PerChunk...); err != nil {
		return Result{}, err
	}
	if cfg.variance {
		out.Var = make([]float64, n)
		if err := Sum(out.Var, out.PerChunkVar...); err != nil {
			return Result{}, err
		}
	}

	return out, nil
}

// validate checks the chunk set before any work starts. Every plan must
// share chunk 0's velocity grid: same length, first velocity and step.
func validate(chunks []Chunk, cfg config) error {
	if len(chunks) == 0 {
		return ErrNoChunks
	}
	var ref velocity.Grid
	for i, c := range chunks {
		if c.Plan == nil {
			return fmt.Errorf("chunk %d: %w", i, ccf.ErrNilPlan)
		}
		g := c.Plan.Grid()
		switch {
		case i == 0:
			ref = g
		case g.Len() != ref.Len():
			return fmt.Errorf("%w: chunk %d has %d velocities, chunk 0 has %d", ErrGridMismatch, i, g.Len(), ref.Len())
		case !sameGrid(g, ref):
			return fmt.Errorf("%w: chunk %d starts at %g step %g, chunk 0 at %g step %g",
				ErrGridMismatch, i, g.Min(), g.Step(), ref.Min(), ref.Step())
		}
		if cfg.variance && c.Var == nil {
			return fmt.Errorf("%w: chunk %d", ErrMissingVariance, i)
		}
	}

	return nil
}

// sameGrid compares two equal-length grids by origin and spacing.
func sameGrid(a, b velocity.Grid) bool {
	tol := gridTol * math.Max(math.Abs(a.Step()), math.Abs(a.Min()))
	if tol == 0 {
		tol = gridTol
	}

	return math.Abs(a.Min()-b.Min()) <= tol && math.Abs(a.Step()-b.Step()) <= tol
}

// Sum adds every ccf elementwise into dst, which is overwritten.
// All inputs must have len(dst).
//
// Errors: ErrGridMismatch on a length mismatch; dst is untouched then.
func Sum(dst []float64, ccfs ...[]float64) error {
	for i, c := range ccfs {
		if len(c) != len(dst) {
			return fmt.Errorf("Sum: %w: input %d has %d, want %d", ErrGridMismatch, i, len(c), len(dst))
		}
	}
	for i := range dst {
		dst[i] = 0
	}
	for _, c := range ccfs {
		for i, v := range c {
			dst[i] += v
		}
	}

	return nil
}
