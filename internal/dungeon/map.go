// Package dungeon provides the concrete tile map the spatial engines run
// against: a wall grid plus sets of blocking and tracked tiles.
package dungeon

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/dungeonworks/sightline/internal/geometry"
)

// Map implements geometry.Grid. Walls are both opaque and blocking;
// blockers (occupied tiles) block traversal without blocking sight;
// tracked tiles are revealed even without mutual line of sight.
type Map struct {
	width    int
	height   int
	walls    []bool
	blockers mapset.Set[geometry.Point]
	tracked  mapset.Set[geometry.Point]
}

func NewMap(width, height int) *Map {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Map{
		width:    width,
		height:   height,
		walls:    make([]bool, width*height),
		blockers: mapset.New[geometry.Point](),
		tracked:  mapset.New[geometry.Point](),
	}
}

func (m *Map) Bounds() geometry.Bounds {
	return geometry.Bounds{MinX: 0, MinY: 0, MaxX: m.width - 1, MaxY: m.height - 1}
}

func (m *Map) IsOpaque(x, y int) bool {
	return m.Wall(x, y)
}

func (m *Map) IsBlocked(x, y int) bool {
	return m.Wall(x, y) || m.blockers.Has(geometry.Point{X: x, Y: y})
}

func (m *Map) IsAsymmetricallyVisible(x, y int) bool {
	return m.tracked.Has(geometry.Point{X: x, Y: y})
}

func (m *Map) Wall(x, y int) bool {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return false
	}
	return m.walls[y*m.width+x]
}

func (m *Map) SetWall(x, y int, wall bool) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return
	}
	m.walls[y*m.width+x] = wall
}

// PlaceBlocker marks a tile as occupied for pathing purposes.
func (m *Map) PlaceBlocker(p geometry.Point) {
	m.blockers.Put(p)
}

func (m *Map) RemoveBlocker(p geometry.Point) {
	m.blockers.Remove(p)
}

// Track reveals a tile to the visibility engine regardless of symmetric
// line of sight, e.g. the tile under a hunted entity.
func (m *Map) Track(p geometry.Point) {
	m.tracked.Put(p)
}

func (m *Map) Untrack(p geometry.Point) {
	m.tracked.Remove(p)
}

// EachWall calls fn for every wall tile, row by row.
func (m *Map) EachWall(fn func(geometry.Point)) {
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.walls[y*m.width+x] {
				fn(geometry.Point{X: x, Y: y})
			}
		}
	}
}
