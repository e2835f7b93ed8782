package geometry

// Point is an integer tile coordinate.
type Point struct {
	X int
	Y int
}

// Bounds is an inclusive rectangle of tile coordinates.
type Bounds struct {
	MinX int
	MinY int
	MaxX int
	MaxY int
}

func (b Bounds) Width() int {
	return b.MaxX - b.MinX + 1
}

func (b Bounds) Height() int {
	return b.MaxY - b.MinY + 1
}

// Empty reports whether the rectangle contains no tiles.
func (b Bounds) Empty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

func (b Bounds) Contains(x, y int) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Expand grows the rectangle by pad tiles in every direction.
func (b Bounds) Expand(pad int) Bounds {
	return Bounds{
		MinX: b.MinX - pad,
		MinY: b.MinY - pad,
		MaxX: b.MaxX + pad,
		MaxY: b.MaxY + pad,
	}
}

// Intersect returns the overlap of two rectangles; the result may be empty.
func (b Bounds) Intersect(o Bounds) Bounds {
	r := b
	if o.MinX > r.MinX {
		r.MinX = o.MinX
	}
	if o.MinY > r.MinY {
		r.MinY = o.MinY
	}
	if o.MaxX < r.MaxX {
		r.MaxX = o.MaxX
	}
	if o.MaxY < r.MaxY {
		r.MaxY = o.MaxY
	}
	return r
}

// Chebyshev is the chessboard distance between two points.
func Chebyshev(a, b Point) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// DistanceSquared is the squared Euclidean distance between two points.
func DistanceSquared(a, b Point) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
