package maze

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubVerifier fails the first failures calls and then defers to BFS.
type stubVerifier struct {
	failures int
	calls    int
}

func (v *stubVerifier) Reachable(g *Grid, start, goal Coord) bool {
	v.calls++
	if v.failures < 0 || v.calls <= v.failures {
		return false
	}
	return BFSVerifier{}.Reachable(g, start, goal)
}

func TestParamsValidate(t *testing.T) {
	valid := Params{Rows: 15, Cols: 15, Complexity: 0.5, Density: 0.5}

	tests := []struct {
		name  string
		mod   func(p *Params)
		field string
	}{
		{name: "even rows", mod: func(p *Params) { p.Rows = 4 }, field: "rows"},
		{name: "even cols", mod: func(p *Params) { p.Cols = 16 }, field: "cols"},
		{name: "rows too small", mod: func(p *Params) { p.Rows = 3 }, field: "rows"},
		{name: "negative cols", mod: func(p *Params) { p.Cols = -5 }, field: "cols"},
		{name: "complexity below range", mod: func(p *Params) { p.Complexity = -0.1 }, field: "complexity"},
		{name: "complexity above range", mod: func(p *Params) { p.Complexity = 1.01 }, field: "complexity"},
		{name: "complexity NaN", mod: func(p *Params) { p.Complexity = math.NaN() }, field: "complexity"},
		{name: "density above range", mod: func(p *Params) { p.Density = 2 }, field: "density"},
		{name: "negative cell size", mod: func(p *Params) { p.CellSize = -1 }, field: "cell_size"},
	}

	require.NoError(t, valid.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mod(&p)

			err := p.Validate()
			require.ErrorIs(t, err, ErrInvalidParameter)

			var perr *ParamError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.field, perr.Field)
		})
	}
}

func TestGenerateRejectsEvenRows(t *testing.T) {
	rng := &countingSource{Source: NewSource(1)}

	m, err := Generate(rng, Params{Rows: 4, Cols: 15, Complexity: 0.5, Density: 0.5})

	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	assert.Zero(t, rng.calls, "validation happens before any carving")
}

func TestGenerateAlwaysSolvable(t *testing.T) {
	sizes := []int{15, 25, 35, 45, 55}
	levels := []float64{0, 0.3, 0.6, 0.9, 1}

	seed := int64(1)
	for _, size := range sizes {
		for _, complexity := range levels {
			for _, density := range levels {
				seed++
				name := fmt.Sprintf("%dx%d/c%.1f/d%.1f", size, size, complexity, density)
				t.Run(name, func(t *testing.T) {
					m, err := Generate(NewSource(seed), Params{
						Rows: size, Cols: size, Complexity: complexity, Density: density,
					})
					require.NoError(t, err)

					start, goal := m.Start(), m.Goal()
					g := m.Grid()
					assert.True(t, g.InBounds(start))
					assert.True(t, g.InBounds(goal))
					assert.True(t, m.IsPath(start.Row, start.Col))
					assert.True(t, m.IsPath(goal.Row, goal.Col))
					assert.NotEqual(t, start, goal)

					dm := Distances(g, start)
					dist, ok := dm.Distance(goal)
					require.True(t, ok, "goal unreachable")
					assert.Equal(t, m.Stats().GoalDistance, dist)
					assert.Equal(t, m.Stats().PathCells, dm.Reached(), "every path cell reachable from start")
				})
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	p := Params{Rows: 35, Cols: 25, Complexity: 0.7, Density: 0.4}

	a, err := Generate(NewSource(2024), p)
	require.NoError(t, err)
	b, err := Generate(NewSource(2024), p)
	require.NoError(t, err)

	assert.True(t, a.Grid().Equal(b.Grid()), "same seed must yield identical grids")
	assert.Equal(t, a.Start(), b.Start())
	assert.Equal(t, a.Goal(), b.Goal())
	assert.Equal(t, a.Stats(), b.Stats())
	assert.Equal(t, a.String(), b.String())
}

func TestGenerateGoalIsFar(t *testing.T) {
	m, err := Generate(NewSource(15), Params{Rows: 15, Cols: 15, Complexity: 0.5, Density: 0.5})
	require.NoError(t, err)

	assert.NotEqual(t, m.Start(), m.Goal())
	assert.True(t, m.IsPath(m.Start().Row, m.Start().Col))
	assert.True(t, m.IsPath(m.Goal().Row, m.Goal().Col))
	assert.GreaterOrEqual(t, m.Stats().GoalDistance, m.Rows()/2)
	assert.Equal(t, Coord{Row: 1, Col: 1}, m.Start())
}

func TestGenerateWithoutPerturbationKeepsCarvedMaze(t *testing.T) {
	carved, visited := Carve(5, 5, NewSource(8))

	m, err := Generate(NewSource(8), Params{Rows: 5, Cols: 5})
	require.NoError(t, err)

	assert.True(t, carved.Equal(m.Grid()))
	assert.Equal(t, visited, m.Stats().CarvedCells)
	assert.Equal(t, 4, m.Stats().CarvedCells)
	assert.Equal(t, 2*visited-1, m.Stats().PathCells)
	assert.Zero(t, m.Stats().Branches)
	assert.Zero(t, m.Stats().Loops)
}

func TestGenerateFullPerturbationAddsPaths(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		plain, err := Generate(NewSource(seed), Params{Rows: 25, Cols: 25})
		require.NoError(t, err)
		dense, err := Generate(NewSource(seed), Params{Rows: 25, Cols: 25, Complexity: 1, Density: 1})
		require.NoError(t, err)

		assert.Greater(t, dense.Stats().PathCells, plain.Stats().PathCells, "seed %d", seed)
	}
}

func TestGenerateExhaustsRetries(t *testing.T) {
	v := &stubVerifier{failures: -1}
	gen := NewGenerator(NewSource(1), WithVerifier(v))

	m, err := gen.Generate(Params{Rows: 15, Cols: 15, Complexity: 0.3, Density: 0.3})

	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrGenerationExhausted)
	assert.Equal(t, DefaultMaxAttempts, v.calls)
}

func TestGenerateCustomAttemptBound(t *testing.T) {
	v := &stubVerifier{failures: -1}
	gen := NewGenerator(NewSource(1), WithVerifier(v), WithMaxAttempts(2))

	_, err := gen.Generate(Params{Rows: 9, Cols: 9})

	assert.ErrorIs(t, err, ErrGenerationExhausted)
	assert.EqualError(t, err, "maze: generation exhausted: no valid start/goal pair after 2 attempts")
	assert.Equal(t, 2, v.calls)
}

func TestGenerateRecoversAfterFailedAttempts(t *testing.T) {
	v := &stubVerifier{failures: 2}
	gen := NewGenerator(NewSource(1), WithVerifier(v))

	m, err := gen.Generate(Params{Rows: 15, Cols: 15, Complexity: 0.5, Density: 0.5})

	require.NoError(t, err)
	assert.Equal(t, 3, m.Stats().Attempts)
	assert.Equal(t, 3, v.calls)
}
