package maze

import (
	"fmt"
	"math"
)

const (
	// MinSize is the smallest accepted row or column count.
	MinSize = 5

	// DefaultMaxAttempts bounds regeneration when verification fails.
	DefaultMaxAttempts = 5
)

// Params configures a generation run.
type Params struct {
	Rows       int     // odd, >= MinSize
	Cols       int     // odd, >= MinSize
	Complexity float64 // extra branch points, in [0, 1]
	Density    float64 // extra loops, in [0, 1]
	CellSize   int     // pixels per cell; 0 selects DefaultCellSize
}

// Validate checks every field and returns the first violation as a
// *ParamError.
func (p Params) Validate() error {
	if err := validateSize("rows", p.Rows); err != nil {
		return err
	}
	if err := validateSize("cols", p.Cols); err != nil {
		return err
	}
	if err := validateUnit("complexity", p.Complexity); err != nil {
		return err
	}
	if err := validateUnit("density", p.Density); err != nil {
		return err
	}
	if p.CellSize < 0 {
		return &ParamError{Field: "cell_size", Value: p.CellSize, Reason: "must not be negative"}
	}
	return nil
}

func validateSize(field string, v int) error {
	if v < MinSize {
		return &ParamError{Field: field, Value: v, Reason: fmt.Sprintf("must be at least %d", MinSize)}
	}
	if v%2 == 0 {
		return &ParamError{Field: field, Value: v, Reason: "must be odd"}
	}
	return nil
}

func validateUnit(field string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return &ParamError{Field: field, Value: v, Reason: "must be within [0, 1]"}
	}
	return nil
}

// Generator runs the carve, perturb and verify pipeline.
type Generator struct {
	rng         Source
	verifier    Verifier
	maxAttempts int
}

// Option customizes a Generator.
type Option func(*Generator)

// WithVerifier replaces the default BFS reachability check.
func WithVerifier(v Verifier) Option {
	return func(g *Generator) {
		if v != nil {
			g.verifier = v
		}
	}
}

// WithMaxAttempts sets how many times generation is tried before giving up.
// Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n >= 1 {
			g.maxAttempts = n
		}
	}
}

// NewGenerator creates a generator drawing all randomness from rng.
func NewGenerator(rng Source, opts ...Option) *Generator {
	g := &Generator{
		rng:         rng,
		verifier:    BFSVerifier{},
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds a maze or returns ErrInvalidParameter or
// ErrGenerationExhausted. A failed call publishes nothing.
func (gen *Generator) Generate(p Params) (*Maze, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	cellSize := p.CellSize
	if cellSize == 0 {
		cellSize = DefaultCellSize
	}

	for attempt := 1; attempt <= gen.maxAttempts; attempt++ {
		grid, carved := Carve(p.Rows, p.Cols, gen.rng)
		perturbed := Perturb(grid, p.Complexity, p.Density, gen.rng)

		start := startCell(grid)
		goal, dist := Distances(grid, start).Farthest()
		if goal == start || !gen.verifier.Reachable(grid, start, goal) {
			continue
		}

		return &Maze{
			grid:     grid,
			start:    start,
			goal:     goal,
			cellSize: cellSize,
			stats: Stats{
				Attempts:     attempt,
				CarvedCells:  carved,
				Branches:     perturbed.Branches,
				Loops:        perturbed.Loops,
				PathCells:    grid.CountPaths(),
				GoalDistance: dist,
			},
		}, nil
	}

	return nil, fmt.Errorf("%w: no valid start/goal pair after %d attempts", ErrGenerationExhausted, gen.maxAttempts)
}

// Generate is shorthand for NewGenerator(rng).Generate(p).
func Generate(rng Source, p Params) (*Maze, error) {
	return NewGenerator(rng).Generate(p)
}

// startCell picks the first carved cell next to a corner, checking
// top-left, top-right, bottom-left, bottom-right.
func startCell(g *Grid) Coord {
	corners := []Coord{
		{Row: 1, Col: 1},
		{Row: 1, Col: g.cols - 2},
		{Row: g.rows - 2, Col: 1},
		{Row: g.rows - 2, Col: g.cols - 2},
	}
	for _, c := range corners {
		if g.At(c) == Path {
			return c
		}
	}
	for i, v := range g.cells {
		if v == Path {
			return Coord{Row: i / g.cols, Col: i % g.cols}
		}
	}
	return corners[0]
}
