package path

import (
	"testing"

	"github.com/dungeonworks/sightline/internal/dungeon"
	"github.com/dungeonworks/sightline/internal/geometry"
)

// assertWalk checks that steps form a contiguous king-move walk between
// the given endpoints without crossing blocked tiles.
func assertWalk(t *testing.T, g geometry.Grid, steps []geometry.Point, first, last geometry.Point) {
	t.Helper()
	if len(steps) == 0 {
		t.Fatal("expected a non-empty walk")
	}
	if steps[0] != first {
		t.Errorf("walk starts at %+v, want %+v", steps[0], first)
	}
	if steps[len(steps)-1] != last {
		t.Errorf("walk ends at %+v, want %+v", steps[len(steps)-1], last)
	}
	for i := 1; i < len(steps); i++ {
		if geometry.Chebyshev(steps[i-1], steps[i]) != 1 {
			t.Errorf("steps %d and %d are not adjacent: %+v -> %+v", i-1, i, steps[i-1], steps[i])
		}
		if steps[i] != last && g.IsBlocked(steps[i].X, steps[i].Y) {
			t.Errorf("step %d crosses blocked tile %+v", i, steps[i])
		}
	}
}

func walkCost(steps []geometry.Point, circleDist bool) int {
	total := 0
	for i := 1; i < len(steps); i++ {
		if circleDist && steps[i-1].X != steps[i].X && steps[i-1].Y != steps[i].Y {
			total += diagonalCost
		} else {
			total += cardinalCost
		}
	}
	return total
}

func TestFindPath_StartEqualsDest(t *testing.T) {
	// Arrange
	grid := dungeon.NewMap(5, 5)
	p := geometry.Point{X: 2, Y: 2}

	// Act
	result := FindPath(grid, p, p, Options{})

	// Assert
	if result.Kind != Exact {
		t.Fatalf("expected exact result, got %v", result.Kind)
	}
	if len(result.Steps) != 1 || result.Steps[0] != p {
		t.Errorf("expected a single-step walk at %+v, got %+v", p, result.Steps)
	}
}

func TestFindPath_StraightLine(t *testing.T) {
	// Arrange
	grid := dungeon.NewMap(10, 10)
	start := geometry.Point{X: 1, Y: 5}
	dest := geometry.Point{X: 6, Y: 5}

	// Act
	result := FindPath(grid, start, dest, Options{CircleDist: true})

	// Assert
	if result.Kind != Exact {
		t.Fatalf("expected exact result, got %v", result.Kind)
	}
	if len(result.Steps) != 6 {
		t.Errorf("expected 6 steps, got %d: %+v", len(result.Steps), result.Steps)
	}
	assertWalk(t, grid, result.Steps, start, dest)
}

func TestFindPath_OpenGroundCostIsOctile(t *testing.T) {
	// Arrange: with nothing in the way the walk cost must equal the
	// octile distance, 100 per axis step plus 41 per diagonal.
	grid := dungeon.NewMap(12, 12)
	start := geometry.Point{X: 1, Y: 1}
	dest := geometry.Point{X: 9, Y: 4}

	// Act
	result := FindPath(grid, start, dest, Options{CircleDist: true})

	// Assert
	if result.Kind != Exact {
		t.Fatalf("expected exact result, got %v", result.Kind)
	}
	assertWalk(t, grid, result.Steps, start, dest)
	want := 100*8 + 41*3
	if got := walkCost(result.Steps, true); got != want {
		t.Errorf("expected walk cost %d, got %d", want, got)
	}
}

func TestFindPath_ChebyshevMetricFavorsDiagonals(t *testing.T) {
	// Arrange: without the circle metric diagonals cost the same as
	// cardinals, so the shortest walk is Chebyshev distance long.
	grid := dungeon.NewMap(12, 12)
	start := geometry.Point{X: 1, Y: 1}
	dest := geometry.Point{X: 7, Y: 5}

	// Act
	result := FindPath(grid, start, dest, Options{})

	// Assert
	if result.Kind != Exact {
		t.Fatalf("expected exact result, got %v", result.Kind)
	}
	if want := geometry.Chebyshev(start, dest) + 1; len(result.Steps) != want {
		t.Errorf("expected %d steps, got %d", want, len(result.Steps))
	}
}

func TestFindPath_RoutesAroundWall(t *testing.T) {
	// Arrange
	grid := dungeon.MustParse(`
		..........
		....#.....
		....#.....
		....#.....
		....#.....
		..........
	`)
	start := geometry.Point{X: 2, Y: 2}
	dest := geometry.Point{X: 7, Y: 2}

	// Act
	result := FindPath(grid, start, dest, Options{CircleDist: true})

	// Assert
	if result.Kind != Exact {
		t.Fatalf("expected exact result, got %v", result.Kind)
	}
	assertWalk(t, grid, result.Steps, start, dest)
	crossed := false
	for _, s := range result.Steps {
		if s.X == 4 {
			crossed = true
			if s.Y != 0 && s.Y != 5 {
				t.Errorf("walk crosses the wall column at %+v", s)
			}
		}
	}
	if !crossed {
		t.Error("walk never crossed the wall column")
	}
}

func TestFindPath_NoPathWithoutFallback(t *testing.T) {
	// Arrange: dest sealed inside a box.
	grid := dungeon.MustParse(`
		.......
		..###..
		..#.#..
		..###..
		.......
	`)
	start := geometry.Point{X: 0, Y: 0}
	dest := geometry.Point{X: 3, Y: 2}

	// Act
	result := FindPath(grid, start, dest, Options{CircleDist: true})

	// Assert
	if result.Kind != NoPath {
		t.Errorf("expected no path, got %v", result.Kind)
	}
	if result.Steps != nil {
		t.Errorf("expected nil steps, got %+v", result.Steps)
	}
}

func TestFindPath_FallbackReachesClosestCell(t *testing.T) {
	// Arrange: same sealed box, fallback on. The reachable cell nearest
	// to the boxed dest is (1,2), two cardinal steps west of it.
	grid := dungeon.MustParse(`
		.......
		..###..
		..#.#..
		..###..
		.......
	`)
	start := geometry.Point{X: 0, Y: 0}
	dest := geometry.Point{X: 3, Y: 2}

	// Act
	result := FindPath(grid, start, dest, Options{CircleDist: true, FallbackClosest: true})

	// Assert
	if result.Kind != Fallback {
		t.Fatalf("expected fallback result, got %v", result.Kind)
	}
	want := geometry.Point{X: 1, Y: 2}
	assertWalk(t, grid, result.Steps, start, want)
}

func TestFindPath_FollowsCorridorAroundTurn(t *testing.T) {
	// Arrange: an L-shaped corridor. The straight-line shortcut to dest
	// runs through solid wall, so the walk must take the corner.
	grid := dungeon.MustParse(`
		#######
		#.....#
		#####.#
		#####.#
		#######
	`)
	start := geometry.Point{X: 1, Y: 1}
	dest := geometry.Point{X: 5, Y: 3}

	// Act
	result := FindPath(grid, start, dest, Options{CircleDist: true})

	// Assert: three cardinals along the top leg, one diagonal into the
	// corner, one cardinal down.
	if result.Kind != Exact {
		t.Fatalf("expected exact result, got %v", result.Kind)
	}
	assertWalk(t, grid, result.Steps, start, dest)
	if len(result.Steps) != 6 {
		t.Errorf("expected 6 steps along the corridor, got %d: %+v", len(result.Steps), result.Steps)
	}
	if want, got := 3*cardinalCost+diagonalCost+cardinalCost, walkCost(result.Steps, true); got != want {
		t.Errorf("expected walk cost %d, got %d", want, got)
	}
}

func TestFindPath_FallbackFromBoxedInStart(t *testing.T) {
	// Arrange: the start itself is sealed in, so no cell closer to dest
	// is reachable and the fallback degenerates to standing still.
	grid := dungeon.MustParse(`
		.......
		..###..
		..#.#..
		..###..
		.......
	`)
	start := geometry.Point{X: 3, Y: 2}
	dest := geometry.Point{X: 6, Y: 0}

	// Act
	result := FindPath(grid, start, dest, Options{CircleDist: true, FallbackClosest: true})

	// Assert
	if result.Kind != Fallback {
		t.Fatalf("expected fallback result, got %v", result.Kind)
	}
	if len(result.Steps) != 1 || result.Steps[0] != start {
		t.Errorf("expected the walk to stay at %+v, got %+v", start, result.Steps)
	}
}

func TestFindPath_BoundPadMissesWideDetour(t *testing.T) {
	// Arrange: the wall reaches the bottom edge, the only way around is
	// over the top, outside a 1-tile pad of the endpoint box.
	grid := dungeon.MustParse(`
		.....
		.....
		..#..
		..#..
		..#..
	`)
	start := geometry.Point{X: 0, Y: 3}
	dest := geometry.Point{X: 4, Y: 3}

	// Act
	clipped := FindPath(grid, start, dest, Options{BoundPad: 1})
	wide := FindPath(grid, start, dest, Options{BoundPad: 3})

	// Assert
	if clipped.Kind != NoPath {
		t.Errorf("expected clipped search to find no path, got %v", clipped.Kind)
	}
	if wide.Kind != Exact {
		t.Errorf("expected padded search to find the detour, got %v", wide.Kind)
	}
}

func TestFindPath_ExploreLimitAbandonsSearch(t *testing.T) {
	// Arrange
	grid := dungeon.NewMap(50, 50)
	start := geometry.Point{X: 1, Y: 1}
	dest := geometry.Point{X: 48, Y: 48}

	// Act
	result := FindPath(grid, start, dest, Options{ExploreLimit: 5})

	// Assert
	if result.Kind != NoPath {
		t.Errorf("expected budget exhaustion to yield no path, got %v", result.Kind)
	}
}

func TestFindPath_OccupiedDestStaysReachable(t *testing.T) {
	// Arrange: a blocker on the dest tile must not make it unreachable,
	// walking onto the target is how an attack starts.
	grid := dungeon.NewMap(8, 8)
	dest := geometry.Point{X: 5, Y: 5}
	grid.PlaceBlocker(dest)
	start := geometry.Point{X: 1, Y: 5}

	// Act
	result := FindPath(grid, start, dest, Options{CircleDist: true})

	// Assert
	if result.Kind != Exact {
		t.Fatalf("expected exact result onto occupied dest, got %v", result.Kind)
	}
	assertWalk(t, grid, result.Steps, start, dest)
}

func TestFindPath_BlockerForcesDetour(t *testing.T) {
	// Arrange: blockers stop traversal like walls do.
	grid := dungeon.NewMap(8, 3)
	for y := 0; y < 3; y++ {
		grid.PlaceBlocker(geometry.Point{X: 4, Y: y})
	}
	start := geometry.Point{X: 2, Y: 1}
	dest := geometry.Point{X: 6, Y: 1}

	// Act
	result := FindPath(grid, start, dest, Options{FallbackClosest: true})

	// Assert
	if result.Kind != Fallback {
		t.Errorf("expected fallback around a full blocker column, got %v", result.Kind)
	}
}

func BenchmarkFindPath_OpenGround(b *testing.B) {
	grid := dungeon.NewMap(64, 64)
	start := geometry.Point{X: 2, Y: 2}
	dest := geometry.Point{X: 61, Y: 61}
	opts := Options{CircleDist: true}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FindPath(grid, start, dest, opts)
	}
}

func BenchmarkFindPath_Walled(b *testing.B) {
	grid := dungeon.NewMap(64, 64)
	for y := 0; y < 60; y++ {
		grid.SetWall(20, y, true)
		grid.SetWall(40, 63-y, true)
	}
	start := geometry.Point{X: 2, Y: 2}
	dest := geometry.Point{X: 61, Y: 61}
	opts := Options{CircleDist: true, FallbackClosest: true}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FindPath(grid, start, dest, opts)
	}
}
