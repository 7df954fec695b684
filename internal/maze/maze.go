package maze

// DefaultCellSize is the pixel size of one cell when none is given.
const DefaultCellSize = 30

// Stats describes how a maze was produced.
type Stats struct {
	Attempts     int // generation attempts, including the successful one
	CarvedCells  int // lattice cells visited by the carver
	Branches     int // walls opened by the complexity pass
	Loops        int // walls opened by the density pass
	PathCells    int // walkable cells in the final grid
	GoalDistance int // shortest walk from start to goal, in steps
}

// Maze is a finished, read-only maze. It is safe for concurrent reads.
// Regenerating produces a new Maze; an existing one never changes.
type Maze struct {
	grid     *Grid
	start    Coord
	goal     Coord
	cellSize int
	stats    Stats
}

// Rows returns the grid height in cells.
func (m *Maze) Rows() int { return m.grid.rows }

// Cols returns the grid width in cells.
func (m *Maze) Cols() int { return m.grid.cols }

// Start returns the spawn cell.
func (m *Maze) Start() Coord { return m.start }

// Goal returns the exit cell.
func (m *Maze) Goal() Coord { return m.goal }

// CellSize returns the pixel size the maze was built with.
func (m *Maze) CellSize() int { return m.cellSize }

// Stats returns generation statistics.
func (m *Maze) Stats() Stats { return m.stats }

// IsWall reports whether (row, col) blocks movement. Out of bounds is a wall.
func (m *Maze) IsWall(row, col int) bool {
	return m.grid.IsWall(row, col)
}

// IsPath reports whether (row, col) is walkable.
func (m *Maze) IsPath(row, col int) bool {
	return m.grid.IsPath(row, col)
}

// IsGoal reports whether (row, col) is the exit.
func (m *Maze) IsGoal(row, col int) bool {
	return m.goal.Row == row && m.goal.Col == col
}

// DimensionsInPixels returns cellSize*cols by cellSize*rows.
func (m *Maze) DimensionsInPixels() (width, height int) {
	return m.cellSize * m.grid.cols, m.cellSize * m.grid.rows
}

// Grid returns a copy of the underlying cells.
func (m *Maze) Grid() *Grid {
	return m.grid.Clone()
}

// String renders the maze as ASCII with the start and goal marked.
func (m *Maze) String() string {
	return Render(m, RenderOptions{})
}
