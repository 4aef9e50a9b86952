// SPDX-License-Identifier: MIT

package chunk

import (
	"runtime"

	"github.com/guiguan/caster"
)

// Option customizes Aggregate.
type Option func(*config)

type config struct {
	workers  int
	variance bool
	segment  bool
	progress *caster.Caster
}

func defaultConfig() config {
	return config{workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers bounds the number of concurrent chunk evaluations
// (default GOMAXPROCS). Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("chunk: WithWorkers(n<1)")
	}
	return func(c *config) { c.workers = n }
}

// WithVariance propagates per-pixel variance; every chunk needs Var.
func WithVariance() Option {
	return func(c *config) { c.variance = true }
}

// WithSegmentVariance propagates variance with the EXPERIMENTAL
// segment-mean estimator of ccf.ComputeSegmentVariance. Implies WithVariance.
func WithSegmentVariance() Option {
	return func(c *config) { c.variance, c.segment = true, true }
}

// WithProgress publishes a Progress after every finished chunk.
// The caster is not closed by Aggregate. Panics on nil.
func WithProgress(cast *caster.Caster) Option {
	if cast == nil {
		panic("chunk: WithProgress(nil)")
	}
	return func(c *config) { c.progress = cast }
}
