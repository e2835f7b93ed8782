package main

import (
	"github.com/dungeonworks/sightline/internal/protocol"
)

// Broadcaster interface for WebSocket communication
type Broadcaster interface {
	BroadcastEvent(eventType string, payload any)
}

// Logger interface for logging abstraction
type Logger interface {
	Printf(format string, v ...any)
}

// SequenceGenerator interface for patch sequence numbers
type SequenceGenerator interface {
	Next() uint64
}

// SightEngine drives the spatial engines over the shared world state.
// Every operation recomputes visibility and the current path from
// scratch; results are never cached across intents.
type SightEngine interface {
	ProcessMove(req protocol.RequestMove) (*MoveResult, error)
	ProcessSetTarget(req protocol.RequestSetTarget) (*TargetResult, error)
	ProcessToggleWall(req protocol.RequestToggleWall) (*WallResult, error)
	ProcessConfigure(req protocol.RequestConfigure) (*ConfigResult, error)
	Snapshot() protocol.Snapshot
}

// MoveResult contains the patches produced by a move operation
type MoveResult struct {
	EntityUpdated *protocol.EntityUpdated
	VisibleTiles  *protocol.VisibleTilesChanged
	Path          *protocol.PathChanged
}

// TargetResult contains the patches produced by retargeting the path
type TargetResult struct {
	Path *protocol.PathChanged
}

// WallResult contains the patches produced by editing a wall tile
type WallResult struct {
	WallToggled  *protocol.WallToggled
	VisibleTiles *protocol.VisibleTilesChanged
	Path         *protocol.PathChanged
}

// ConfigResult contains the patches produced by a configuration change
type ConfigResult struct {
	Config       *protocol.ConfigChanged
	VisibleTiles *protocol.VisibleTilesChanged
	Path         *protocol.PathChanged
}
