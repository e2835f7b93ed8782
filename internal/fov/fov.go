// Package fov computes grid field of view by recursive shadowcasting
// over eight octants, tracking visible wedges as exact rational angle
// intervals. A single scan implementation produces a lazy sequence of
// results; Visit and Iterator are thin adapters over it.
package fov

import (
	"errors"
	"iter"

	"github.com/dungeonworks/sightline/internal/geometry"
)

// Visible is one cell emitted by the visibility engine. Symmetric means
// the origin would itself be visible in a computation run from this cell
// with the same shape and radius; asymmetric cells only appear when the
// grid's IsAsymmetricallyVisible override claims them.
type Visible struct {
	X         int
	Y         int
	Symmetric bool
}

// ErrNegativeRadius is returned before any scan work begins. It is the
// engine's only failure mode; every other degenerate input produces a
// smaller but valid result.
var ErrNegativeRadius = errors.New("fov: radius must be non-negative")

// sight is one contiguous visible wedge within an octant, bounded below
// and above by rational slopes measured against the scan column.
type sight struct {
	low  slope
	high slope
}

// fullWedge spans a whole octant: from the bottom diamond corner of the
// first cardinal cell (-1/2) up to the diagonal (1). Starting below zero
// lets walls on the cardinal seam clip this octant's half of the span
// they share with the mirrored octant.
var fullWedge = sight{low: slope{-1, 2}, high: slope{1, 1}}

// Compute returns the visible cells around origin as a lazy, finite,
// single-use sequence. The origin is emitted first, then cells octant by
// octant, column by column. Nothing is precomputed: abandoning the
// sequence abandons the remaining scan work.
func Compute(g geometry.Grid, origin geometry.Point, radius int, shape Shape) (iter.Seq[Visible], error) {
	if radius < 0 {
		return nil, ErrNegativeRadius
	}
	return func(yield func(Visible) bool) {
		scan(g, origin, radius, shape, yield)
	}, nil
}

// Visit runs the computation to completion, calling fn for every visible
// cell.
func Visit(g geometry.Grid, origin geometry.Point, radius int, shape Shape, fn func(Visible)) error {
	seq, err := Compute(g, origin, radius, shape)
	if err != nil {
		return err
	}
	for v := range seq {
		fn(v)
	}
	return nil
}

// Iterator pulls visible cells one at a time. Callers that do not drain
// it must call Stop to release the underlying sequence.
type Iterator struct {
	next func() (Visible, bool)
	stop func()
}

func NewIterator(g geometry.Grid, origin geometry.Point, radius int, shape Shape) (*Iterator, error) {
	seq, err := Compute(g, origin, radius, shape)
	if err != nil {
		return nil, err
	}
	it := &Iterator{}
	it.next, it.stop = iter.Pull(seq)
	return it, nil
}

// Next returns the next visible cell, or ok=false when the scan is done.
func (it *Iterator) Next() (Visible, bool) {
	return it.next()
}

// Stop ends iteration early.
func (it *Iterator) Stop() {
	it.stop()
}

func scan(g geometry.Grid, origin geometry.Point, radius int, shape Shape, yield func(Visible) bool) {
	bounds := g.Bounds()
	if !circleTouches(bounds, origin, radius) {
		return
	}

	// A cell is never opaque to itself.
	if !yield(Visible{X: origin.X, Y: origin.Y, Symmetric: true}) {
		return
	}

	// Two page-flip scratch buffers shared by all octants: cur holds the
	// sights for the column being scanned, next collects the survivors
	// for the following column, then the roles swap.
	cur := make([]sight, 0, 16)
	next := make([]sight, 0, 16)

	for i := range octants {
		oct := &octants[i]
		cur = append(cur[:0], fullWedge)
		for x := 1; x <= radius && len(cur) > 0; x++ {
			next = next[:0]
			for _, s := range cur {
				var ok bool
				next, ok = scanColumn(g, bounds, origin, oct, x, s, radius, shape, next, yield)
				if !ok {
					return
				}
			}
			cur, next = next, cur
		}
	}
}

// scanColumn walks one sight down column x of one octant, appending the
// sub-sights that survive past this column's walls to out. It returns
// ok=false when the consumer stopped the sequence.
func scanColumn(g geometry.Grid, bounds geometry.Bounds, origin geometry.Point, oct *octant, x int, s sight, radius int, shape Shape, out []sight, yield func(Visible) bool) ([]sight, bool) {
	lowY := s.low.row(x)
	if lowY < 0 {
		lowY = 0
	}
	highY := s.high.row(x)
	if highY > x {
		highY = x
	}

	open := false
	var openLow slope

	for y := lowY; y <= highY; y++ {
		realX := origin.X + x*oct.xx + y*oct.xy
		realY := origin.Y + x*oct.yx + y*oct.yy

		// Cells outside the shape or the grid are neither visited nor
		// allowed to clip the wedge.
		if !shape.contains(x, y, radius) || !bounds.Contains(realX, realY) {
			continue
		}

		angle := bottomCenter(x, y)

		if g.IsOpaque(realX, realY) {
			// The wall's lower diamond corner caps everything opened
			// below it. Inverted wedges from the row clamp are dropped.
			if open {
				if openLow.lessEq(angle) {
					out = append(out, sight{low: openLow, high: angle})
				}
				open = false
			}
		} else if !open {
			openLow = angle
			if openLow.lessEq(s.low) {
				openLow = s.low
			}
			open = true
		}

		// Seam rows are scanned everywhere but emitted by one owner.
		if (y == 0 || y == x) && !oct.includeEdges {
			continue
		}
		// Symmetric when the line to the tile center clears every wall;
		// clipped rows at the wedge rim are scanned but fail this test.
		center := tileCenter(x, y)
		symmetric := s.low.lessEq(center) && center.lessEq(s.high)
		if symmetric || g.IsAsymmetricallyVisible(realX, realY) {
			if !yield(Visible{X: realX, Y: realY, Symmetric: symmetric}) {
				return out, false
			}
		}
	}

	// A wedge still open at the bottom of the column keeps the parent's
	// high bound into the next column.
	if open && openLow.lessEq(s.high) {
		out = append(out, sight{low: openLow, high: s.high})
	}
	return out, true
}

// circleTouches reports whether the Euclidean circle of the given radius
// around origin intersects the bounds rectangle at all.
func circleTouches(b geometry.Bounds, origin geometry.Point, radius int) bool {
	if b.Empty() {
		return false
	}
	nearest := geometry.Point{X: clampInt(origin.X, b.MinX, b.MaxX), Y: clampInt(origin.Y, b.MinY, b.MaxY)}
	return geometry.DistanceSquared(origin, nearest) <= radius*radius
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
