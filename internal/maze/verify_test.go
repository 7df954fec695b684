package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// gridFrom builds a grid from rows of '#' (wall) and '.' (path).
func gridFrom(rows ...string) *Grid {
	g := NewGrid(len(rows), len(rows[0]))
	for r, line := range rows {
		for c, ch := range line {
			if ch == '.' {
				g.Set(Coord{Row: r, Col: c}, Path)
			}
		}
	}
	return g
}

func TestDistances(t *testing.T) {
	g := gridFrom(
		"#######",
		"#.....#",
		"#.###.#",
		"#.#...#",
		"#######",
	)

	dm := Distances(g, Coord{1, 1})

	d, ok := dm.Distance(Coord{1, 5})
	assert.True(t, ok)
	assert.Equal(t, 4, d)

	d, ok = dm.Distance(Coord{3, 3})
	assert.True(t, ok)
	assert.Equal(t, 8, d)

	_, ok = dm.Distance(Coord{0, 0})
	assert.False(t, ok, "walls are never reached")
	_, ok = dm.Distance(Coord{-1, 3})
	assert.False(t, ok, "out of bounds is never reached")

	assert.Equal(t, g.CountPaths(), dm.Reached())

	far, dist := dm.Farthest()
	assert.Equal(t, Coord{3, 3}, far)
	assert.Equal(t, 8, dist)
}

func TestDistancesFromWall(t *testing.T) {
	g := gridFrom(
		"#####",
		"#...#",
		"#####",
	)
	dm := Distances(g, Coord{0, 0})

	assert.Zero(t, dm.Reached())
	far, dist := dm.Farthest()
	assert.Equal(t, Coord{0, 0}, far)
	assert.Zero(t, dist)
}

func TestDistancesSkipsDisconnectedCells(t *testing.T) {
	g := gridFrom(
		"#########",
		"#...#...#",
		"#########",
	)
	dm := Distances(g, Coord{1, 1})

	assert.Equal(t, 3, dm.Reached())
	assert.Equal(t, 6, g.CountPaths())
	_, ok := dm.Distance(Coord{1, 5})
	assert.False(t, ok, "path cell behind a wall is not reached")

	far, dist := dm.Farthest()
	assert.Equal(t, Coord{1, 3}, far)
	assert.Equal(t, 2, dist)
}

func TestFarthestPrefersBottomRight(t *testing.T) {
	// (3,1) and (3,5) are both six steps away; the tie goes to (3,5).
	g := gridFrom(
		"#######",
		"#...###",
		"###.###",
		"#.....#",
		"#######",
	)
	far, dist := Distances(g, Coord{1, 1}).Farthest()

	assert.Equal(t, Coord{3, 5}, far)
	assert.Equal(t, 6, dist)
}

func TestBFSVerifier(t *testing.T) {
	g := gridFrom(
		"#######",
		"#..#..#",
		"#######",
	)
	v := BFSVerifier{}

	assert.True(t, v.Reachable(g, Coord{1, 1}, Coord{1, 2}))
	assert.False(t, v.Reachable(g, Coord{1, 1}, Coord{1, 5}))
	assert.False(t, v.Reachable(g, Coord{1, 1}, Coord{0, 0}))
}
