package dungeon

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/dungeonworks/sightline/internal/geometry"
)

// TileCoordinate is a single tile position in a board file.
type TileCoordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// BoardDefinition is the static board layout loaded from JSON.
type BoardDefinition struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Dimensions struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"dimensions"`
	Walls    []TileCoordinate `json:"walls"`
	Blockers []TileCoordinate `json:"blockers"`
}

// LoadBoardFromFile loads a board definition from a JSON file and builds
// the corresponding map.
func LoadBoardFromFile(filepath string) (*Map, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read board file: %w", err)
	}

	var board BoardDefinition
	if err := json.Unmarshal(data, &board); err != nil {
		return nil, fmt.Errorf("failed to parse board JSON: %w", err)
	}

	return MapFromBoard(&board)
}

// MapFromBoard converts a BoardDefinition into a Map.
func MapFromBoard(board *BoardDefinition) (*Map, error) {
	if board.Dimensions.Width < 1 || board.Dimensions.Height < 1 {
		return nil, fmt.Errorf("board %q has invalid dimensions %dx%d", board.ID, board.Dimensions.Width, board.Dimensions.Height)
	}
	m := NewMap(board.Dimensions.Width, board.Dimensions.Height)
	for _, w := range board.Walls {
		if w.X < 0 || w.Y < 0 || w.X >= board.Dimensions.Width || w.Y >= board.Dimensions.Height {
			return nil, fmt.Errorf("board %q wall (%d,%d) outside %dx%d", board.ID, w.X, w.Y, board.Dimensions.Width, board.Dimensions.Height)
		}
		m.SetWall(w.X, w.Y, true)
	}
	for _, b := range board.Blockers {
		m.PlaceBlocker(geometry.Point{X: b.X, Y: b.Y})
	}
	return m, nil
}

// Parse builds a map from rows of text: '#' is a wall, anything else is
// open floor. Handy for tests and hand-drawn fixtures.
func Parse(rows []string) (*Map, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty map text")
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d is %d wide, want %d", i, len(row), width)
		}
	}
	m := NewMap(width, len(rows))
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if row[x] == '#' {
				m.SetWall(x, y, true)
			}
		}
	}
	return m, nil
}

// MustParse is Parse for fixtures known to be well-formed.
func MustParse(art string) *Map {
	rows := strings.Split(strings.TrimSpace(art), "\n")
	for i := range rows {
		rows[i] = strings.TrimSpace(rows[i])
	}
	m, err := Parse(rows)
	if err != nil {
		panic(err)
	}
	return m
}
