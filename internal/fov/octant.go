package fov

// octant maps the canonical scan (forward = +x, side = +y, 0 ≤ y ≤ x)
// into real grid offsets: realX = c·xx + r·xy, realY = c·yx + r·yy.
//
// Adjacent octants share their cardinal (y = 0) and diagonal (y = x)
// seam rows. Every octant scans its seam rows so walls on them clip
// sight lines, but only octants with includeEdges set emit them, so
// each seam cell is visited exactly once per computation.
type octant struct {
	xx, xy, yx, yy int
	includeEdges   bool
}

var octants = [8]octant{
	{1, 0, 0, 1, true},
	{0, 1, 1, 0, false},
	{0, -1, 1, 0, true},
	{-1, 0, 0, 1, false},
	{-1, 0, 0, -1, true},
	{0, -1, -1, 0, false},
	{0, 1, -1, 0, true},
	{1, 0, 0, -1, false},
}
