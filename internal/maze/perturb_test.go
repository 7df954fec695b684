package maze

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSource records how often randomness is consumed.
type countingSource struct {
	Source
	calls int
}

func (s *countingSource) Intn(n int) int {
	s.calls++
	return s.Source.Intn(n)
}

func (s *countingSource) Shuffle(n int, swap func(i, j int)) {
	s.calls++
	s.Source.Shuffle(n, swap)
}

func TestPerturbNeverDisconnects(t *testing.T) {
	levels := []float64{0, 0.3, 0.6, 0.9, 1}

	for _, size := range []int{15, 25, 35} {
		for _, p := range levels {
			t.Run(fmt.Sprintf("%d/%.1f", size, p), func(t *testing.T) {
				rng := NewSource(int64(size) * 31)
				perfect, _ := Carve(size, size, rng)
				perturbed := perfect.Clone()
				Perturb(perturbed, p, p, rng)

				before := Distances(perfect, Coord{1, 1})
				after := Distances(perturbed, Coord{1, 1})

				for r := range size {
					for c := range size {
						cell := Coord{Row: r, Col: c}
						if perfect.IsPath(r, c) {
							assert.True(t, perturbed.IsPath(r, c), "path %s closed", cell)
						}
						if before.Reaches(cell) {
							assert.True(t, after.Reaches(cell), "%s no longer reachable", cell)
						}
					}
				}
				assert.GreaterOrEqual(t, after.Reached(), before.Reached())
				assert.Equal(t, perturbed.CountPaths(), after.Reached(), "every path cell reachable")
			})
		}
	}
}

func TestPerturbZeroStrengthIsNoop(t *testing.T) {
	g, _ := Carve(25, 25, NewSource(5))
	before := g.Clone()

	rng := &countingSource{Source: NewSource(1)}
	stats := Perturb(g, 0, 0, rng)

	assert.Equal(t, PerturbStats{}, stats)
	assert.Zero(t, rng.calls, "no randomness consumed")
	assert.True(t, before.Equal(g))
}

func TestPerturbOpensRequestedWalls(t *testing.T) {
	g, _ := Carve(25, 25, NewSource(11))
	before := g.CountPaths()

	stats := Perturb(g, 1, 1, NewSource(12))

	assert.Equal(t, removalTarget(1, g, complexityScale), stats.Branches)
	assert.Equal(t, removalTarget(1, g, densityScale), stats.Loops)
	assert.Equal(t, before+stats.Branches+stats.Loops, g.CountPaths())
}

func TestAddBranchesStopsWhenExhausted(t *testing.T) {
	// A 5x5 perfect maze has four lattice cells joined by three corridors,
	// leaving exactly one openable wall.
	g, _ := Carve(5, 5, NewSource(2))

	opened := addBranches(g, 100, NewSource(3))

	assert.Equal(t, 1, opened)
	assert.Empty(t, branchCandidates(g))
}

func TestAddLoopsSkipsDeadEnds(t *testing.T) {
	// Single horizontal corridor with a stub: the wall below (1,3) touches
	// only one path cell and must stay closed.
	g := NewGrid(5, 7)
	for c := 1; c <= 5; c++ {
		g.Set(Coord{1, c}, Path)
	}
	g.Set(Coord{3, 1}, Path)

	candidates := loopCandidates(g)
	require.Len(t, candidates, 1)
	assert.Equal(t, Coord{2, 1}, candidates[0])

	opened := addLoops(g, 10, NewSource(4))
	assert.Equal(t, 1, opened)
	assert.True(t, g.IsPath(2, 1))
	assert.True(t, g.IsWall(2, 3))
}
