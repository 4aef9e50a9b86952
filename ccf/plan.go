// SPDX-License-Identifier: MIT

package ccf

import (
	"fmt"

	"github.com/katalvlaran/rvccf/linelist"
	"github.com/katalvlaran/rvccf/shape"
	"github.com/katalvlaran/rvccf/velocity"
)

// Plan is the immutable configuration of a CCF: which lines, with which
// kernel, at which trial velocities, under which Doppler convention.
// Build it once and reuse it across spectra and chunks; it is safe for
// concurrent use.
type Plan struct {
	lines   linelist.LineList
	shape   shape.Shape
	grid    velocity.Grid
	doppler velocity.Doppler
}

// Option customizes NewPlan.
type Option func(*planConfig)

type planConfig struct {
	convention velocity.Convention
	c          float64 // 0 means "take it from the shape"
}

const panicSpeedOfLight = "ccf: WithSpeedOfLight: c must be finite and > 0"

// WithConvention selects the Doppler convention (default velocity.Classical).
func WithConvention(cv velocity.Convention) Option {
	return func(pc *planConfig) { pc.convention = cv }
}

// WithSpeedOfLight pins the Doppler speed of light. It must equal the
// shape's SpeedOfLight; the option exists so a mismatch is reported rather
// than silently inherited. Panics on non-finite or non-positive c.
func WithSpeedOfLight(c float64) Option {
	if !isFinite(c) || c <= 0 {
		panic(panicSpeedOfLight)
	}

	return func(pc *planConfig) { pc.c = c }
}

// NewPlan validates and bundles a CCF configuration.
// The line list may be empty; every Compute call then yields zeros.
//
// Errors:
//   - ErrNilShape, ErrEmptyGrid.
//   - ErrSpeedOfLightMismatch if WithSpeedOfLight disagrees with the shape.
//   - velocity.ErrSuperluminal if the grid leaves the convention's domain.
func NewPlan(lines linelist.LineList, sh shape.Shape, grid velocity.Grid, opts ...Option) (*Plan, error) {
	pc := planConfig{convention: velocity.Classical}
	for _, opt := range opts {
		opt(&pc)
	}
	if sh == nil {
		return nil, ccfErrorf(opNewPlan, ErrNilShape)
	}
	if grid.Len() == 0 {
		return nil, ccfErrorf(opNewPlan, ErrEmptyGrid)
	}
	c := sh.SpeedOfLight()
	if pc.c != 0 && pc.c != c {
		return nil, ccfErrorf(opNewPlan, fmt.Errorf("%w: %g vs %g", ErrSpeedOfLightMismatch, pc.c, c))
	}
	d := velocity.Doppler{C: c, Convention: pc.convention}
	if err := grid.CheckDoppler(d); err != nil {
		return nil, ccfErrorf(opNewPlan, err)
	}
	tracer().Debugf("ccf: plan %v, %v, %d velocities [%g, %g] (%v)",
		lines, sh, grid.Len(), grid.Min(), grid.Max(), d.Convention)

	return &Plan{lines: lines, shape: sh, grid: grid, doppler: d}, nil
}

// Lines returns the plan's line list.
func (p *Plan) Lines() linelist.LineList { return p.lines }

// Shape returns the plan's mask kernel.
func (p *Plan) Shape() shape.Shape { return p.shape }

// Grid returns the plan's velocity grid.
func (p *Plan) Grid() velocity.Grid { return p.grid }

// Doppler returns the plan's Doppler convention and speed of light.
func (p *Plan) Doppler() velocity.Doppler { return p.doppler }

// Len returns the number of velocities, i.e. the length of every CCF output.
func (p *Plan) Len() int { return p.grid.Len() }

// WithLines returns a copy of p using another line list. It is how per-chunk
// plans share one shape and grid.
func (p *Plan) WithLines(lines linelist.LineList) *Plan {
	cp := *p
	cp.lines = lines

	return &cp
}
