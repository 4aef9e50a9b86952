// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/guiguan/caster"

	"github.com/katalvlaran/rvccf/ccf"
	"github.com/katalvlaran/rvccf/chunk"
)

// splitChunks cuts the spectrum into n pixel ranges of similar size. Each
// chunk keeps the mask lines whose centre falls inside its wavelength span.
func splitChunks(in input, n int) ([]chunk.Chunk, error) {
	if n > len(in.lambdas)/2 {
		return nil, fmt.Errorf("cannot split %d pixels into %d chunks", len(in.lambdas), n)
	}
	lines := in.plan.Lines()
	size := len(in.lambdas) / n
	out := make([]chunk.Chunk, 0, n)
	for i := 0; i < n; i++ {
		from, to := i*size, (i+1)*size
		if i == n-1 {
			to = len(in.lambdas)
		}
		c := chunk.Chunk{
			Lambdas: in.lambdas[from:to],
			Flux:    in.flux[from:to],
			Plan:    in.plan.WithLines(lines.Subset(in.lambdas[from], in.lambdas[to-1])),
		}
		if in.variance != nil {
			c.Var = in.variance[from:to]
		}
		out = append(out, c)
	}

	return out, nil
}

// correlateChunks runs chunk.Aggregate and reports progress on stderr.
func correlateChunks(ctx context.Context, in input, o options, stderr io.Writer) (ccf.Result, error) {
	chunks, err := splitChunks(in, o.chunks)
	if err != nil {
		return ccf.Result{}, err
	}
	opts := []chunk.Option{chunk.WithWorkers(o.workers)}
	switch {
	case o.segVar:
		opts = append(opts, chunk.WithSegmentVariance())
	case in.variance != nil:
		opts = append(opts, chunk.WithVariance())
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	cast := caster.New(ctx)
	sub, ok := cast.Sub(ctx, uint(len(chunks)))
	var wg sync.WaitGroup
	if ok {
		opts = append(opts, chunk.WithProgress(cast))
		wg.Add(1)
		go func() {
			defer wg.Done()
			for msg := range sub {
				if p, isProgress := msg.(chunk.Progress); isProgress {
					fmt.Fprintf(stderr, "chunk %d done (%d/%d)\n", p.Index, p.Done, p.Total)
				}
			}
		}()
	}

	agg, err := chunk.Aggregate(ctx, chunks, opts...)
	cast.Close()
	wg.Wait()
	if err != nil {
		return ccf.Result{}, err
	}

	return ccf.Result{Velocities: agg.Velocities, CCF: agg.CCF, Var: agg.Var}, nil
}
