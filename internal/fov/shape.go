package fov

// Shape selects the outline of the visible area around the origin.
type Shape int

const (
	// Square accepts every cell within Chebyshev range.
	Square Shape = iota
	// Circle accepts cells with dx²+dy² ≤ radius².
	Circle
	// CirclePlus relaxes Circle to dx²+dy² ≤ radius·(radius+1), which
	// rounds off the one-cell bumps a strict circle shows on the
	// cardinal axes at the cost of slight over-inclusion.
	CirclePlus
)

func (s Shape) String() string {
	switch s {
	case Square:
		return "square"
	case Circle:
		return "circle"
	case CirclePlus:
		return "circle-plus"
	}
	return "unknown"
}

// contains tests a canonical octant offset against the shape cutoff.
// Octant scans never leave Chebyshev range, so Square always passes.
func (s Shape) contains(x, y, radius int) bool {
	switch s {
	case Circle:
		return x*x+y*y <= radius*radius
	case CirclePlus:
		return x*x+y*y <= radius*(radius+1)
	default:
		return true
	}
}
