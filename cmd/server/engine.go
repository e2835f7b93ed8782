package main

import (
	"sync"

	"github.com/dungeonworks/sightline/internal/dungeon"
	"github.com/dungeonworks/sightline/internal/fov"
	"github.com/dungeonworks/sightline/internal/geometry"
	"github.com/dungeonworks/sightline/internal/path"
	"github.com/dungeonworks/sightline/internal/protocol"
)

const (
	seekerID = "seeker-1"
	lurkerID = "lurker-1"

	protocolVersion = "1"
)

// Config is the engine tuning shared by all connected viewers.
type Config struct {
	Shape           fov.Shape
	Radius          int
	CircleDist      bool
	BoundPad        int
	ExploreLimit    int
	FallbackClosest bool
}

func (c Config) protocol() protocol.ConfigChanged {
	return protocol.ConfigChanged{
		Shape:           c.Shape.String(),
		Radius:          c.Radius,
		CircleDist:      c.CircleDist,
		BoundPad:        c.BoundPad,
		ExploreLimit:    c.ExploreLimit,
		FallbackClosest: c.FallbackClosest,
	}
}

// WorldState is the mutable demo world: one map, a seeker whose eyes the
// viewers look through, a lurker that blocks and is tracked, and the
// path target.
type WorldState struct {
	Lock     sync.Mutex
	Map      *dungeon.Map
	Entities map[string]geometry.Point
	Target   geometry.Point
	Config   Config
}

// SightEngineImpl implements SightEngine
type SightEngineImpl struct {
	state  *WorldState
	logger Logger
}

func NewSightEngine(state *WorldState, logger Logger) *SightEngineImpl {
	return &SightEngineImpl{state: state, logger: logger}
}

func (e *SightEngineImpl) ProcessMove(req protocol.RequestMove) (*MoveResult, error) {
	if req.DX < -1 || req.DX > 1 || req.DY < -1 || req.DY > 1 {
		return nil, errInvalidInput("move delta out of range")
	}
	if req.DX == 0 && req.DY == 0 {
		return nil, errInvalidInput("no movement specified")
	}

	e.state.Lock.Lock()
	defer e.state.Lock.Unlock()

	tile, ok := e.state.Entities[req.EntityID]
	if !ok {
		return nil, errUnknownEntity(req.EntityID)
	}
	nx, ny := tile.X+req.DX, tile.Y+req.DY
	if !e.state.Map.Bounds().Contains(nx, ny) {
		return nil, errBlocked("destination outside the map")
	}
	if e.state.Map.IsBlocked(nx, ny) {
		return nil, errBlocked("destination tile is blocked")
	}

	next := geometry.Point{X: nx, Y: ny}
	e.state.Entities[req.EntityID] = next
	if req.EntityID == lurkerID {
		e.state.Map.RemoveBlocker(tile)
		e.state.Map.Untrack(tile)
		e.state.Map.PlaceBlocker(next)
		e.state.Map.Track(next)
	}

	visible, pathPatch, err := e.recomputeLocked()
	if err != nil {
		return nil, err
	}
	e.logger.Printf("entity %s moved to (%d,%d), %d tiles visible", req.EntityID, nx, ny, len(visible.Tiles))

	return &MoveResult{
		EntityUpdated: &protocol.EntityUpdated{ID: req.EntityID, Tile: protocol.TilePos{X: nx, Y: ny}},
		VisibleTiles:  visible,
		Path:          pathPatch,
	}, nil
}

func (e *SightEngineImpl) ProcessSetTarget(req protocol.RequestSetTarget) (*TargetResult, error) {
	e.state.Lock.Lock()
	defer e.state.Lock.Unlock()

	e.state.Target = geometry.Point{X: req.X, Y: req.Y}
	pathPatch := e.findPathLocked()
	e.logger.Printf("target set to (%d,%d), path kind %s with %d steps", req.X, req.Y, pathPatch.Kind, len(pathPatch.Steps))
	return &TargetResult{Path: pathPatch}, nil
}

func (e *SightEngineImpl) ProcessToggleWall(req protocol.RequestToggleWall) (*WallResult, error) {
	e.state.Lock.Lock()
	defer e.state.Lock.Unlock()

	if !e.state.Map.Bounds().Contains(req.X, req.Y) {
		return nil, errInvalidInput("wall toggle outside the map")
	}
	wall := !e.state.Map.Wall(req.X, req.Y)
	e.state.Map.SetWall(req.X, req.Y, wall)

	visible, pathPatch, err := e.recomputeLocked()
	if err != nil {
		return nil, err
	}
	return &WallResult{
		WallToggled:  &protocol.WallToggled{X: req.X, Y: req.Y, Wall: wall},
		VisibleTiles: visible,
		Path:         pathPatch,
	}, nil
}

func (e *SightEngineImpl) ProcessConfigure(req protocol.RequestConfigure) (*ConfigResult, error) {
	e.state.Lock.Lock()
	defer e.state.Lock.Unlock()

	cfg := e.state.Config
	if req.Shape != nil {
		shape, ok := parseShape(*req.Shape)
		if !ok {
			return nil, errInvalidInput("unknown shape %s", *req.Shape)
		}
		cfg.Shape = shape
	}
	if req.Radius != nil {
		if *req.Radius < 0 {
			return nil, errInvalidInput("radius must be non-negative")
		}
		cfg.Radius = *req.Radius
	}
	if req.CircleDist != nil {
		cfg.CircleDist = *req.CircleDist
	}
	if req.BoundPad != nil {
		cfg.BoundPad = *req.BoundPad
	}
	if req.ExploreLimit != nil {
		cfg.ExploreLimit = *req.ExploreLimit
	}
	if req.FallbackClosest != nil {
		cfg.FallbackClosest = *req.FallbackClosest
	}
	e.state.Config = cfg

	visible, pathPatch, err := e.recomputeLocked()
	if err != nil {
		return nil, err
	}
	cfgPatch := cfg.protocol()
	return &ConfigResult{
		Config:       &cfgPatch,
		VisibleTiles: visible,
		Path:         pathPatch,
	}, nil
}

func (e *SightEngineImpl) Snapshot() protocol.Snapshot {
	e.state.Lock.Lock()
	defer e.state.Lock.Unlock()

	bounds := e.state.Map.Bounds()
	walls := make([]protocol.TilePos, 0, 64)
	e.state.Map.EachWall(func(p geometry.Point) {
		walls = append(walls, protocol.TilePos{X: p.X, Y: p.Y})
	})
	entities := make([]protocol.EntityLite, 0, len(e.state.Entities))
	for id, tile := range e.state.Entities {
		kind := "seeker"
		if id == lurkerID {
			kind = "lurker"
		}
		entities = append(entities, protocol.EntityLite{
			ID:   id,
			Kind: kind,
			Tile: protocol.TilePos{X: tile.X, Y: tile.Y},
		})
	}
	snap := protocol.Snapshot{
		MapWidth:        bounds.Width(),
		MapHeight:       bounds.Height(),
		Walls:           walls,
		Entities:        entities,
		Target:          protocol.TilePos{X: e.state.Target.X, Y: e.state.Target.Y},
		Config:          e.state.Config.protocol(),
		ProtocolVersion: protocolVersion,
	}
	if visible, pathPatch, err := e.recomputeLocked(); err == nil {
		snap.Visible = visible.Tiles
		snap.Path = pathPatch
	}
	return snap
}

// recomputeLocked re-derives the seeker's field of view and the current
// path. Callers hold the state lock.
func (e *SightEngineImpl) recomputeLocked() (*protocol.VisibleTilesChanged, *protocol.PathChanged, error) {
	seeker := e.state.Entities[seekerID]
	tiles := make([]protocol.VisibleTile, 0, 128)
	err := fov.Visit(e.state.Map, seeker, e.state.Config.Radius, e.state.Config.Shape, func(v fov.Visible) {
		tiles = append(tiles, protocol.VisibleTile{X: v.X, Y: v.Y, Symmetric: v.Symmetric})
	})
	if err != nil {
		return nil, nil, errInvalidInput("%s", err)
	}
	return &protocol.VisibleTilesChanged{EntityID: seekerID, Tiles: tiles}, e.findPathLocked(), nil
}

func (e *SightEngineImpl) findPathLocked() *protocol.PathChanged {
	seeker := e.state.Entities[seekerID]
	res := path.FindPath(e.state.Map, seeker, e.state.Target, path.Options{
		BoundPad:        e.state.Config.BoundPad,
		FallbackClosest: e.state.Config.FallbackClosest,
		CircleDist:      e.state.Config.CircleDist,
		ExploreLimit:    e.state.Config.ExploreLimit,
	})
	steps := make([]protocol.TilePos, len(res.Steps))
	for i, s := range res.Steps {
		steps[i] = protocol.TilePos{X: s.X, Y: s.Y}
	}
	return &protocol.PathChanged{EntityID: seekerID, Kind: res.Kind.String(), Steps: steps}
}

func parseShape(name string) (fov.Shape, bool) {
	switch name {
	case "square":
		return fov.Square, true
	case "circle":
		return fov.Circle, true
	case "circle-plus":
		return fov.CirclePlus, true
	}
	return fov.Square, false
}
