package dungeon

func DevMap() *Map {
	w := 26
	h := 19

	m := NewMap(w, h)

	// Full-height wall at x=12 splits the board into left/right, with a
	// single doorway at (12,9).
	for y := 0; y < h; y++ {
		if y == 9 {
			continue
		}
		m.SetWall(12, y, true)
	}

	// A small room in the left half to give sight lines something to
	// wrap around.
	for x := 3; x <= 8; x++ {
		m.SetWall(x, 4, true)
		m.SetWall(x, 10, true)
	}
	for y := 4; y <= 10; y++ {
		m.SetWall(3, y, true)
		if y != 7 {
			m.SetWall(8, y, true)
		}
	}

	return m
}
