package dungeon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dungeonworks/sightline/internal/geometry"
)

func TestNewMap_ClampsDegenerateDimensions(t *testing.T) {
	// Act
	m := NewMap(0, -3)

	// Assert
	b := m.Bounds()
	if b.Width() != 1 || b.Height() != 1 {
		t.Errorf("expected 1x1 map, got %dx%d", b.Width(), b.Height())
	}
}

func TestMap_WallsAreOpaqueAndBlocking(t *testing.T) {
	// Arrange
	m := NewMap(6, 6)
	m.SetWall(2, 3, true)

	// Assert
	if !m.IsOpaque(2, 3) || !m.IsBlocked(2, 3) {
		t.Error("wall should be opaque and blocking")
	}
	if m.IsOpaque(1, 1) || m.IsBlocked(1, 1) {
		t.Error("open floor should be neither opaque nor blocking")
	}
}

func TestMap_BlockersBlockWithoutBlockingSight(t *testing.T) {
	// Arrange
	m := NewMap(6, 6)
	p := geometry.Point{X: 4, Y: 4}

	// Act
	m.PlaceBlocker(p)

	// Assert
	if m.IsOpaque(4, 4) {
		t.Error("blocker should not block sight")
	}
	if !m.IsBlocked(4, 4) {
		t.Error("blocker should block traversal")
	}

	// Act
	m.RemoveBlocker(p)

	// Assert
	if m.IsBlocked(4, 4) {
		t.Error("removed blocker should no longer block")
	}
}

func TestMap_TrackedTiles(t *testing.T) {
	// Arrange
	m := NewMap(6, 6)
	p := geometry.Point{X: 1, Y: 2}

	// Act / Assert
	m.Track(p)
	if !m.IsAsymmetricallyVisible(1, 2) {
		t.Error("tracked tile should be asymmetrically visible")
	}
	m.Untrack(p)
	if m.IsAsymmetricallyVisible(1, 2) {
		t.Error("untracked tile should not be asymmetrically visible")
	}
}

func TestMap_OutOfRangeAccessIsInert(t *testing.T) {
	// Arrange
	m := NewMap(4, 4)

	// Act
	m.SetWall(-1, 0, true)
	m.SetWall(4, 4, true)

	// Assert
	if m.Wall(-1, 0) || m.Wall(4, 4) {
		t.Error("out-of-range tiles should never read as walls")
	}
	count := 0
	m.EachWall(func(geometry.Point) { count++ })
	if count != 0 {
		t.Errorf("expected no walls, got %d", count)
	}
}

func TestParse_BuildsWallsFromArt(t *testing.T) {
	// Act
	m, err := Parse([]string{
		"....",
		".##.",
		"....",
	})

	// Assert
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !m.Wall(1, 1) || !m.Wall(2, 1) {
		t.Error("expected walls at (1,1) and (2,1)")
	}
	if m.Wall(0, 0) || m.Wall(3, 2) {
		t.Error("expected open corners")
	}
}

func TestParse_RejectsRaggedRows(t *testing.T) {
	// Act
	_, err := Parse([]string{"....", "..."})

	// Assert
	if err == nil {
		t.Error("expected an error for ragged rows")
	}
}

func TestParse_RejectsEmptyInput(t *testing.T) {
	// Act
	_, err := Parse(nil)

	// Assert
	if err == nil {
		t.Error("expected an error for empty input")
	}
}

func TestLoadBoardFromFile_BuildsMap(t *testing.T) {
	// Arrange
	board := `{
		"id": "test-board",
		"name": "Test Board",
		"dimensions": {"width": 8, "height": 6},
		"walls": [{"x": 3, "y": 2}, {"x": 3, "y": 3}],
		"blockers": [{"x": 5, "y": 1}]
	}`
	file := filepath.Join(t.TempDir(), "board.json")
	if err := os.WriteFile(file, []byte(board), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	// Act
	m, err := LoadBoardFromFile(file)

	// Assert
	if err != nil {
		t.Fatalf("LoadBoardFromFile failed: %v", err)
	}
	if b := m.Bounds(); b.Width() != 8 || b.Height() != 6 {
		t.Errorf("expected 8x6 map, got %dx%d", b.Width(), b.Height())
	}
	if !m.Wall(3, 2) || !m.Wall(3, 3) {
		t.Error("expected walls from the board file")
	}
	if !m.IsBlocked(5, 1) || m.IsOpaque(5, 1) {
		t.Error("expected a sight-transparent blocker at (5,1)")
	}
}

func TestLoadBoardFromFile_MissingFile(t *testing.T) {
	// Act
	_, err := LoadBoardFromFile(filepath.Join(t.TempDir(), "missing.json"))

	// Assert
	if err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestMapFromBoard_RejectsBadBoards(t *testing.T) {
	// Arrange
	var degenerate BoardDefinition
	degenerate.ID = "degenerate"

	outside := BoardDefinition{ID: "outside"}
	outside.Dimensions.Width = 4
	outside.Dimensions.Height = 4
	outside.Walls = []TileCoordinate{{X: 9, Y: 0}}

	// Act / Assert
	if _, err := MapFromBoard(&degenerate); err == nil {
		t.Error("expected an error for zero dimensions")
	}
	if _, err := MapFromBoard(&outside); err == nil {
		t.Error("expected an error for a wall outside the board")
	}
}

func TestDevMap_Layout(t *testing.T) {
	// Act
	m := DevMap()

	// Assert
	if b := m.Bounds(); b.Width() != 26 || b.Height() != 19 {
		t.Fatalf("expected 26x19 map, got %dx%d", b.Width(), b.Height())
	}
	if !m.Wall(12, 0) || !m.Wall(12, 18) {
		t.Error("expected the dividing wall at x=12")
	}
	if m.Wall(12, 9) {
		t.Error("expected the doorway at (12,9) to be open")
	}
	if m.Wall(8, 7) {
		t.Error("expected the room door at (8,7) to be open")
	}
	if !m.Wall(3, 4) || !m.Wall(8, 10) {
		t.Error("expected the room walls")
	}
}
