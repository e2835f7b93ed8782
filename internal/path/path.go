// Package path finds lowest-cost routes across a grid with A* search.
// Costs are fixed-point integers (100 per cardinal step, 141 per diagonal
// step under the circle metric) so the hot loop never touches floats.
package path

import (
	"container/heap"

	"github.com/dungeonworks/sightline/internal/geometry"
)

// Kind classifies a pathfinding result.
type Kind int

const (
	// NoPath means nothing reachable connects start and dest and the
	// caller declined the closest-point fallback. It is a result, not
	// an error: a boxed-in monster is an ordinary game state.
	NoPath Kind = iota
	// Exact means Steps runs from start all the way to dest.
	Exact
	// Fallback means dest was unreachable and Steps runs from start to
	// the reachable cell nearest to dest instead.
	Fallback
)

func (k Kind) String() string {
	switch k {
	case Exact:
		return "exact"
	case Fallback:
		return "fallback"
	}
	return "no-path"
}

// Result is an ordered walk from start toward dest. Steps includes both
// endpoints on the Exact branch; it is nil when Kind is NoPath.
type Result struct {
	Steps []geometry.Point
	Kind  Kind
}

// Options tune a single FindPath call.
type Options struct {
	// BoundPad, when positive, restricts the search to the bounding
	// rectangle of start and dest expanded by this many tiles. Shorter
	// walks explore far less of the level, at the price of missing
	// detours wider than the pad. Zero searches the whole grid.
	BoundPad int

	// FallbackClosest substitutes the reachable cell closest to dest
	// when no exact path exists.
	FallbackClosest bool

	// CircleDist charges diagonal steps 141 instead of 100,
	// approximating Euclidean distance in fixed point.
	CircleDist bool

	// ExploreLimit, when positive, abandons the search after this many
	// expanded cells. A bounded search always terminates quickly on
	// pathological maps; the caller decides what the budget is.
	ExploreLimit int
}

const (
	cardinalCost = 100
	diagonalCost = 141
)

var neighborOffsets = [8]geometry.Point{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 1, Y: -1},
	{X: 1, Y: 1},
	{X: -1, Y: 1},
	{X: -1, Y: -1},
}

// FindPath returns a lowest-cost route from start to dest across g.
//
// The search expands from dest toward start so that the predecessor
// table, once the goal is reached, reads forward from start without a
// reversal pass. Start and dest are always treated as passable: a caller
// may path toward an occupied cell (to attack whatever stands there) and
// is never blocked by its own tile.
func FindPath(g geometry.Grid, start, dest geometry.Point, opts Options) Result {
	area := searchArea(g, start, dest, opts.BoundPad)

	s := newSearch(g, start, dest, area, opts)
	s.run(dest, start, false)
	if s.reached {
		steps := []geometry.Point{start}
		for p := start; p != dest; {
			p = s.cameFrom[p]
			steps = append(steps, p)
		}
		return Result{Steps: steps, Kind: Exact}
	}

	if !opts.FallbackClosest {
		return Result{Kind: NoPath}
	}

	// The fallback ranks cells reachable from start, which the reverse
	// pass never explored, so expand once more from start toward dest
	// tracking the nearest approach. Only this failure branch pays for
	// the reversal of the reconstructed walk.
	s = newSearch(g, start, dest, area, opts)
	s.run(start, dest, true)
	steps := []geometry.Point{s.best}
	for p := s.best; p != start; {
		p = s.cameFrom[p]
		steps = append(steps, p)
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return Result{Steps: steps, Kind: Fallback}
}

// searchArea clips the explorable rectangle: the whole grid when pad is
// zero, otherwise the padded bounding box of the endpoints.
func searchArea(g geometry.Grid, start, dest geometry.Point, pad int) geometry.Bounds {
	area := g.Bounds()
	if pad <= 0 {
		return area
	}
	box := geometry.Bounds{MinX: start.X, MinY: start.Y, MaxX: start.X, MaxY: start.Y}
	if dest.X < box.MinX {
		box.MinX = dest.X
	}
	if dest.X > box.MaxX {
		box.MaxX = dest.X
	}
	if dest.Y < box.MinY {
		box.MinY = dest.Y
	}
	if dest.Y > box.MaxY {
		box.MaxY = dest.Y
	}
	return area.Intersect(box.Expand(pad))
}

// search holds the per-call scratch state: the frontier, the lowest known
// cost per visited cell, and the predecessor table the result is rebuilt
// from. Nothing escapes the call except the returned steps.
type search struct {
	grid      geometry.Grid
	start     geometry.Point
	dest      geometry.Point
	area      geometry.Bounds
	opts      Options
	cameFrom  map[geometry.Point]geometry.Point
	costSoFar map[geometry.Point]int
	reached   bool

	best     geometry.Point
	bestDist int
	bestCost int
}

func newSearch(g geometry.Grid, start, dest geometry.Point, area geometry.Bounds, opts Options) *search {
	return &search{
		grid:      g,
		start:     start,
		dest:      dest,
		area:      area,
		opts:      opts,
		cameFrom:  make(map[geometry.Point]geometry.Point),
		costSoFar: make(map[geometry.Point]int),
	}
}

// run expands from `from` toward `goal` until the goal is popped, the
// frontier empties, or the explore limit runs out. With trackBest it
// remembers the expanded cell nearest to dest, ties broken by lower
// accumulated cost.
func (s *search) run(from, goal geometry.Point, trackBest bool) {
	frontier := &nodeQueue{}
	heap.Init(frontier)
	heap.Push(frontier, node{p: from, cost: 0, priority: s.stepEstimate(from, goal)})
	s.costSoFar[from] = 0
	if trackBest {
		s.best = from
		s.bestDist = s.stepEstimate(from, s.dest)
		s.bestCost = 0
	}

	explored := 0
	for frontier.Len() > 0 {
		if s.opts.ExploreLimit > 0 && explored >= s.opts.ExploreLimit {
			return
		}
		cur := heap.Pop(frontier).(node)
		if cur.cost > s.costSoFar[cur.p] {
			continue // stale frontier entry, already improved
		}
		explored++

		if cur.p == goal {
			s.reached = true
			return
		}
		if trackBest {
			d := s.stepEstimate(cur.p, s.dest)
			if d < s.bestDist || (d == s.bestDist && cur.cost < s.bestCost) {
				s.best, s.bestDist, s.bestCost = cur.p, d, cur.cost
			}
		}

		for i, off := range neighborOffsets {
			n := geometry.Point{X: cur.p.X + off.X, Y: cur.p.Y + off.Y}
			if !s.passable(n) {
				continue
			}
			stepCost := cardinalCost
			if i >= 4 && s.opts.CircleDist {
				stepCost = diagonalCost
			}
			cost := cur.cost + stepCost
			if known, ok := s.costSoFar[n]; ok && cost >= known {
				continue
			}
			s.costSoFar[n] = cost
			s.cameFrom[n] = cur.p
			heap.Push(frontier, node{p: n, cost: cost, priority: cost + s.stepEstimate(n, goal)})
		}
	}
}

// passable applies the traversal predicate. The endpoints are always
// passable; everything else must sit inside the search area and clear
// the grid's blocked check.
func (s *search) passable(p geometry.Point) bool {
	if p == s.start || p == s.dest {
		return true
	}
	return s.area.Contains(p.X, p.Y) && !s.grid.IsBlocked(p.X, p.Y)
}

// stepEstimate is the admissible fixed-point distance matching the step
// costs in use: octile (100/41) under the circle metric, Chebyshev·100
// otherwise. Neither ever overestimates the true remaining cost.
func (s *search) stepEstimate(a, b geometry.Point) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	if dx < dy {
		dx, dy = dy, dx
	}
	if s.opts.CircleDist {
		return cardinalCost*dx + (diagonalCost-cardinalCost)*dy
	}
	return cardinalCost * dx
}

// node is one frontier entry; priority is cost so far plus the estimate
// to the goal.
type node struct {
	p        geometry.Point
	cost     int
	priority int
}

// nodeQueue is a container/heap min-queue over node priority. Ties keep
// natural heap order; fairness between equal priorities is not a
// contract.
type nodeQueue []node

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool { return q[i].priority < q[j].priority }

func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *nodeQueue) Push(x any) {
	*q = append(*q, x.(node))
}

func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
