package geometry

// Grid is the map collaborator the spatial engines are parametrized over.
// Implementations supply bounds and per-cell predicates; the engines never
// mutate the grid and only query cells inside (or clipped against) Bounds.
//
// IsOpaque and IsBlocked are independent: a closed portcullis may block
// traversal without blocking sight, and a curtain may do the opposite.
type Grid interface {
	// Bounds returns the inclusive rectangle of valid tiles.
	Bounds() Bounds

	// IsOpaque reports whether the tile blocks line of sight.
	IsOpaque(x, y int) bool

	// IsBlocked reports whether the tile blocks path traversal.
	IsBlocked(x, y int) bool

	// IsAsymmetricallyVisible reports whether the tile should be revealed
	// by the visibility engine even when mutual line of sight does not
	// hold, e.g. tiles occupied by a tracked entity.
	IsAsymmetricallyVisible(x, y int) bool
}
