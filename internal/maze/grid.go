// Package maze builds perfect mazes on a square cell grid and answers
// queries about them. A grid never changes after Generate returns it.
package maze

import (
	"errors"
	"fmt"
	"strings"
)

// Cell is the content of one grid unit.
type Cell uint8

const (
	Wall Cell = iota
	Open
)

// Text runes used by String and Parse.
const (
	wallRune = '#'
	openRune = '.'
)

// Position is a (column, row) coordinate with the origin at the top-left.
type Position struct {
	X, Y int
}

// Step returns the position one cell away in direction d.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is one of the four axis-aligned moves.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in a fixed order.
var Directions = [...]Direction{Up, Down, Left, Right}

// Delta returns the column and row offset of a single step.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ErrMalformedGrid is returned by Parse for input that is not a rectangle of
// wall and open runes.
var ErrMalformedGrid = errors.New("maze: malformed grid")

// Grid is a rectangle of cells indexed [row][col].
type Grid struct {
	width  int
	height int
	cells  [][]Cell
}

// newGrid allocates a grid filled with walls.
func newGrid(width, height int) *Grid {
	g := &Grid{width: width, height: height}
	g.cells = make([][]Cell, height)
	for y := range g.cells {
		g.cells[y] = make([]Cell, width)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the cell at p. Positions outside the grid read as Wall.
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[p.Y][p.X]
}

// IsOpen reports whether p is inside the grid and passable.
func (g *Grid) IsOpen(p Position) bool {
	return g.At(p) == Open
}

// Start is the entrance cell.
func (g *Grid) Start() Position {
	return Position{X: 1, Y: 1}
}

// Goal is the exit cell in the bottom-right interior corner.
func (g *Grid) Goal() Position {
	return Position{X: g.width - 2, Y: g.height - 2}
}

// OpenCount returns the number of open cells.
func (g *Grid) OpenCount() int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c == Open {
				n++
			}
		}
	}
	return n
}

func (g *Grid) set(p Position, c Cell) {
	if g.InBounds(p) {
		g.cells[p.Y][p.X] = c
	}
}

// String renders the grid one row per line, '#' for walls and '.' for open
// cells.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.width*g.height + g.height)

	for y, row := range g.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			if c == Open {
				sb.WriteByte(openRune)
			} else {
				sb.WriteByte(wallRune)
			}
		}
	}
	return sb.String()
}

// Parse reads the textual form produced by String. Surrounding blank lines
// are ignored.
func Parse(s string) (*Grid, error) {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedGrid)
	}

	width := len(strings.TrimSpace(lines[0]))
	g := newGrid(width, len(lines))
	for y, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrMalformedGrid, y, len(line), width)
		}
		for x := 0; x < width; x++ {
			switch line[x] {
			case wallRune:
				g.cells[y][x] = Wall
			case openRune:
				g.cells[y][x] = Open
			default:
				return nil, fmt.Errorf("%w: unexpected %q at %s", ErrMalformedGrid, line[x], Position{X: x, Y: y})
			}
		}
	}
	return g, nil
}
