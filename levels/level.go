package levels

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/geom"
)

// maxRowBytes bounds a single row of level text.
const maxRowBytes = 16 << 20

const (
	groundRune = 'g'
	startRune  = 'p'
)

// ErrDuplicateStart is returned when a level marks more than one start cell.
var ErrDuplicateStart = errors.New("more than one start location")

// Tile is one immovable ground cell, positioned in pixels.
type Tile struct {
	Position geom.Point
}

// BoundingBox returns the tile's full cell.
func (t Tile) BoundingBox() geom.Rect {
	return geom.Rect{
		X: float64(t.Position.X),
		Y: float64(t.Position.Y),
		W: common.TileSize,
		H: common.TileSize,
	}
}

// Level is the static geometry of one stage. It is not modified after
// parsing; the tile order is the order cells appear in the text.
type Level struct {
	Tiles []Tile
	Start geom.Point

	// Width and Height are the grid size in cells.
	Width  int
	Height int

	hasStart bool
}

// HasStart reports whether the text contained a start marker. Levels
// without one start at the origin.
func (l *Level) HasStart() bool {
	return l != nil && l.hasStart
}

// PixelSize returns the level extent in pixels.
func (l *Level) PixelSize() (int, int) {
	if l == nil {
		return 0, 0
	}
	return l.Width * common.TileSize, l.Height * common.TileSize
}

// ParseString parses a level from its text form.
func ParseString(s string) (*Level, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads a character grid. Row j, column i maps to pixel
// (i*TileSize, j*TileSize); 'g' is ground, 'p' is the start, anything else
// is empty space.
func Parse(r io.Reader) (*Level, error) {
	lvl := &Level{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxRowBytes)

	row := 0
	for scanner.Scan() {
		col := 0
		for _, ch := range scanner.Text() {
			pos := geom.Point{X: col * common.TileSize, Y: row * common.TileSize}
			switch ch {
			case groundRune:
				lvl.Tiles = append(lvl.Tiles, Tile{Position: pos})
			case startRune:
				if lvl.hasStart {
					return nil, fmt.Errorf("row %d col %d: %w (first at %s)", row, col, ErrDuplicateStart, lvl.Start)
				}
				lvl.Start = pos
				lvl.hasStart = true
			}
			col++
		}
		if col > lvl.Width {
			lvl.Width = col
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan level: %w", err)
	}
	lvl.Height = row

	return lvl, nil
}
