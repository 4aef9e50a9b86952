// SPDX-License-Identifier: MIT

package ccf

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/rvccf/linelist"
	"github.com/katalvlaran/rvccf/shape"
)

// sweepState is the position of the current pixel relative to the current
// mask line's support.
type sweepState int

const (
	// seeking: the pixel ends at or before the line's lower bound.
	seeking sweepState = iota
	// entering: the pixel holds the lower bound (and maybe the upper one too).
	entering
	// inside: the pixel lies wholly inside the support.
	inside
	// exiting: the pixel holds the upper bound.
	exiting
)

// String implements fmt.Stringer; used in trace output.
func (s sweepState) String() string {
	switch s {
	case seeking:
		return "seeking"
	case entering:
		return "entering"
	case inside:
		return "inside"
	case exiting:
		return "exiting"
	default:
		return fmt.Sprintf("sweepState(%d)", int(s))
	}
}

// classify maps the on-mask flag and the pixel's right edge onto a state.
func classify(onMask bool, right, lo, hi float64) sweepState {
	if !onMask {
		if right > lo {
			return entering
		}
		return seeking
	}
	if right > hi {
		return exiting
	}

	return inside
}

// Project fills ws with the density of plan's mask, Doppler-shifted by
// shiftFactor, on the pixel grid lambdas.
//
// A line of weight w that fully covers a pixel with edges [l, r] contributes
// w · Integrate(overlap) · ½(r+l)/(r−l) / c to it, so Σ ws[p]·Δλ_p/λ_p·c
// equals the total weight of the lines inside the grid.
//
// Errors:
//   - ErrNilPlan, ErrEmptyMask, ErrTooFewPixels, ErrWorkspaceLength,
//     ErrNotIncreasing.
//
// Complexity: O(P + L) amortized; see package doc.
func Project(ws *Workspace, lambdas []float64, plan *Plan, shiftFactor float64) error {
	if plan == nil {
		return ccfErrorf(opProject, ErrNilPlan)
	}
	if plan.lines.Len() == 0 {
		return ccfErrorf(opProject, ErrEmptyMask)
	}
	if err := validatePixels(lambdas); err != nil {
		return ccfErrorf(opProject, err)
	}
	if ws == nil || ws.Len() != len(lambdas) {
		return ccfErrorf(opProject, ErrWorkspaceLength)
	}
	project(ws, lambdas, plan.lines, plan.shape, plan.doppler.C, shiftFactor)

	return nil
}

// pixelGrid answers edge queries for a strictly increasing centre list.
type pixelGrid []float64

// left returns the left edge of pixel p.
func (g pixelGrid) left(p int) float64 {
	if p > 0 {
		return 0.5 * (g[p-1] + g[p])
	}

	return g[0] - 0.5*(g[1]-g[0])
}

// right returns the right edge of pixel p.
func (g pixelGrid) right(p int) float64 {
	n := len(g)
	if p < n-1 {
		return 0.5 * (g[p] + g[p+1])
	}

	return g[n-1] + 0.5*(g[n-1]-g[n-2])
}

// PixelEdges returns the left and right edge of every pixel of lambdas,
// using the same convention as the projector. lambdas needs ≥ 2 entries.
func PixelEdges(lambdas []float64) (left, right []float64, err error) {
	if err = validatePixels(lambdas); err != nil {
		return nil, nil, err
	}
	g := pixelGrid(lambdas)
	left = make([]float64, len(g))
	right = make([]float64, len(g))
	for p := range g {
		left[p], right[p] = g.left(p), g.right(p)
	}

	return left, right, nil
}

// maskLine is one mask line after Doppler shifting.
type maskLine struct {
	mid, lo, hi, weight float64
}

// project is the unchecked projection kernel; callers validate inputs.
// It keeps two monotone pointers (pixel p, line m) and rewinds p only when
// consecutive shifted supports overlap.
func project(ws *Workspace, lambdas []float64, lines linelist.LineList, sh shape.Shape, c, s float64) {
	ws.zero()
	buf := ws.buf
	g := pixelGrid(lambdas)
	nPix, nLines := len(g), lines.Len()

	line := func(m int) maskLine {
		lam := lines.Lambda(m)
		return maskLine{
			mid:    lam * s,
			lo:     sh.LowerBound(lam) * s,
			hi:     sh.UpperBound(lam) * s,
			weight: lines.Weight(m),
		}
	}
	// offset converts a shifted wavelength to a velocity offset from the line centre.
	offset := func(x float64, ln maskLine) float64 {
		return (x - ln.mid) / ln.mid * c
	}

	p := 0
	le, re := g.left(0), g.right(0)

	// First line whose shifted support reaches past the grid's left edge.
	m := sort.Search(nLines, func(k int) bool { return sh.UpperBound(lines.Lambda(k))*s > le })
	if m == nLines {
		return
	}
	cur := line(m)
	onMask := false
	leftPix := 0 // first pixel of the current line, target of overlap rewinds
	if cur.lo < le {
		// The line straddles the grid's left edge: its visible part starts inside pixel 0.
		onMask = true
	}

	// nextLine advances m; it reports false when the list is exhausted.
	nextLine := func() bool {
		m++
		if m >= nLines {
			return false
		}
		cur = line(m)
		return true
	}
	// moveTo positions the sweep on pixel q.
	moveTo := func(q int) {
		p = q
		if p < nPix {
			le, re = g.left(p), g.right(p)
		}
	}

	for m < nLines {
		if p == nPix {
			if !onMask {
				break
			}
			// The current line straddles the grid's right edge. Later lines
			// that still start inside the grid are layered from leftPix on.
			onMask = false
			if !nextLine() || cur.lo >= g.right(nPix-1) {
				break
			}
			moveTo(leftPix)
			if leftPix == 0 && cur.lo < le {
				onMask = true
			}
		}
		invDz := 0.5 * (re + le) / (re - le) // λ/Δλ, i.e. 1/Δlnλ
		switch classify(onMask, re, cur.lo, cur.hi) {
		case seeking:
			moveTo(p + 1)

		case entering:
			if re > cur.hi {
				// Narrow line wholly inside this pixel: credit all of it here and
				// keep the pixel, which may absorb further narrow lines.
				buf[p] += invDz * cur.weight
				nextLine()
				break
			}
			frac := sh.Integrate(offset(cur.lo, cur), offset(re, cur))
			buf[p] += frac * invDz * cur.weight
			onMask = true
			leftPix = p
			moveTo(p + 1)

		case inside:
			frac := sh.Integrate(offset(le, cur), offset(re, cur))
			buf[p] += frac * invDz * cur.weight
			moveTo(p + 1)

		case exiting:
			frac := sh.Integrate(offset(le, cur), offset(cur.hi, cur))
			buf[p] += frac * invDz * cur.weight
			onMask = false
			if !nextLine() {
				break
			}
			if cur.lo < le {
				// Shifted supports overlap: revisit the previous line's pixels so
				// this line is layered on top of them.
				moveTo(leftPix)
				if leftPix == 0 && cur.lo < le {
					onMask = true
				}
			}
		}
	}

	invC := 1 / c
	for i := range buf {
		buf[i] *= invC
	}
}
