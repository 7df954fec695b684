// Package maze generates rectangular, always-solvable mazes.
//
// Mazes use a lattice encoding: odd rows and columns hold the cells a
// player walks through, even rows and columns hold the walls between them.
// Generation carves a perfect maze with a randomized depth-first search,
// perturbs it with extra branches and loops, and verifies that the goal is
// reachable from the start before handing back an immutable Maze.
//
// The package performs no logging and no I/O. Randomness is injected
// through Source so generation is reproducible under a fixed seed.
package maze

import (
	"fmt"
	"strings"
)

// Cell is the state of a single grid position.
type Cell uint8

const (
	Wall Cell = iota
	Path
)

// String returns the cell state name.
func (c Cell) String() string {
	switch c {
	case Wall:
		return "wall"
	case Path:
		return "path"
	default:
		return "unknown"
	}
}

// Coord is a (row, column) position, 0-indexed from the top-left corner.
type Coord struct {
	Row int
	Col int
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns the coordinate offset by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(other Coord) int {
	dr := c.Row - other.Row
	dc := c.Col - other.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// steps are the four axis-aligned unit offsets: up, right, down, left.
var steps = [4]Coord{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Grid is a rows x cols matrix of cells stored in row-major order.
// It is mutable only while a maze is being generated.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// NewGrid creates a grid with every cell set to Wall.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols), // Wall is the zero value
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// InBounds reports whether c lies inside [0,rows) x [0,cols).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the cell at c. Out-of-bounds positions read as Wall.
func (g *Grid) At(c Coord) Cell {
	if !g.InBounds(c) {
		return Wall
	}
	return g.cells[g.index(c)]
}

// Set changes the cell at c. Out-of-bounds writes are ignored.
func (g *Grid) Set(c Coord, v Cell) {
	if g.InBounds(c) {
		g.cells[g.index(c)] = v
	}
}

// IsWall reports whether (row, col) is a wall. Out of bounds counts as wall.
func (g *Grid) IsWall(row, col int) bool {
	return g.At(Coord{Row: row, Col: col}) == Wall
}

// IsPath reports whether (row, col) is walkable.
func (g *Grid) IsPath(row, col int) bool {
	return g.At(Coord{Row: row, Col: col}) == Path
}

// Neighbors returns the in-bounds lattice neighbors of c, two steps away
// along each axis.
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, 4)
	for _, s := range steps {
		n := Coord{Row: c.Row + 2*s.Row, Col: c.Col + 2*s.Col}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Adjacent returns the in-bounds cells one step away from c.
func (g *Grid) Adjacent(c Coord) []Coord {
	out := make([]Coord, 0, 4)
	for _, s := range steps {
		n := c.Add(s)
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// WallBetween returns the cell separating two lattice neighbors.
// a and b must be exactly two cells apart on a single axis.
func WallBetween(a, b Coord) (Coord, error) {
	dr := b.Row - a.Row
	dc := b.Col - a.Col
	aligned := (dr == 0 && (dc == 2 || dc == -2)) || (dc == 0 && (dr == 2 || dr == -2))
	if !aligned {
		return Coord{}, fmt.Errorf("%w: %s and %s", ErrNotLatticeNeighbors, a, b)
	}
	return Coord{Row: a.Row + dr/2, Col: a.Col + dc/2}, nil
}

// CountPaths returns the number of Path cells.
func (g *Grid) CountPaths() int {
	n := 0
	for _, c := range g.cells {
		if c == Path {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Equal reports whether two grids have the same shape and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid with '#' for walls and ' ' for paths.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := range g.rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range g.cols {
			if g.cells[r*g.cols+c] == Wall {
				sb.WriteByte('#')
			} else {
				sb.WriteByte(' ')
			}
		}
	}
	return sb.String()
}
