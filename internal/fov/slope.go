package fov

// slope is an exact rational angle num/den with den > 0. Keeping angles
// as integer pairs and comparing by cross-multiplication is a correctness
// requirement: float slopes drift at long range and produce visibly
// asymmetric wall artifacts.
type slope struct {
	num int
	den int
}

func (s slope) lessEq(o slope) bool {
	return s.num*o.den <= o.num*s.den
}

// row evaluates the slope at column x and rounds to the nearest row
// using midpoint rounding: y = (2·x·num/den + 1) / 2 with the inner
// division truncated first. This rounding is what gives walls their
// diamond-shaped visual footprint.
func (s slope) row(x int) int {
	return ((2*x*s.num)/s.den + 1) / 2
}

// bottomCenter is the angle through the bottom corner of the diamond
// inscribed in the tile at canonical offset (x, y), i.e. (y − ½) / x
// kept in integers. Walls open and close wedges at these corner angles.
func bottomCenter(x, y int) slope {
	return slope{num: 2*y - 1, den: 2 * x}
}

// tileCenter is the angle through the middle of the tile at canonical
// offset (x, y). Emission tests centers, never corners: the center line
// between two tiles is the same segment in both scan directions, which
// is what keeps visibility mutual.
func tileCenter(x, y int) slope {
	return slope{num: y, den: x}
}
