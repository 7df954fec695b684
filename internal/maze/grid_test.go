package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWallBetween(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Coord
		want    Coord
		wantErr bool
	}{
		{name: "right", a: Coord{1, 1}, b: Coord{1, 3}, want: Coord{1, 2}},
		{name: "left", a: Coord{3, 5}, b: Coord{3, 3}, want: Coord{3, 4}},
		{name: "down", a: Coord{1, 1}, b: Coord{3, 1}, want: Coord{2, 1}},
		{name: "up", a: Coord{5, 3}, b: Coord{3, 3}, want: Coord{4, 3}},
		{name: "same cell", a: Coord{1, 1}, b: Coord{1, 1}, wantErr: true},
		{name: "single step", a: Coord{1, 1}, b: Coord{1, 2}, wantErr: true},
		{name: "diagonal", a: Coord{1, 1}, b: Coord{3, 3}, wantErr: true},
		{name: "too far", a: Coord{1, 1}, b: Coord{1, 5}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WallBetween(tt.a, tt.b)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotLatticeNeighbors)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNeighborsStayInBounds(t *testing.T) {
	g := NewGrid(15, 21)

	for r := range g.Rows() {
		for c := range g.Cols() {
			cell := Coord{Row: r, Col: c}
			for _, n := range g.Neighbors(cell) {
				assert.True(t, g.InBounds(n), "neighbor %s of %s out of bounds", n, cell)
				assert.Equal(t, 2, cell.Manhattan(n))
			}
			for _, n := range g.Adjacent(cell) {
				assert.True(t, g.InBounds(n), "adjacent %s of %s out of bounds", n, cell)
				assert.Equal(t, 1, cell.Manhattan(n))
			}
		}
	}
}

func TestNeighborsCount(t *testing.T) {
	g := NewGrid(7, 7)

	assert.Len(t, g.Neighbors(Coord{1, 1}), 2, "corner lattice cell")
	assert.Len(t, g.Neighbors(Coord{1, 3}), 3, "edge lattice cell")
	assert.Len(t, g.Neighbors(Coord{3, 3}), 4, "center lattice cell")
}

func TestOutOfBoundsReadsAsWall(t *testing.T) {
	g := NewGrid(5, 5)
	g.Set(Coord{1, 1}, Path)

	assert.True(t, g.IsPath(1, 1))
	for _, c := range []Coord{{-1, 0}, {0, -1}, {5, 0}, {0, 5}, {100, 100}} {
		assert.True(t, g.IsWall(c.Row, c.Col), "%s", c)
		assert.False(t, g.IsPath(c.Row, c.Col), "%s", c)
	}

	// Out-of-bounds writes are dropped.
	g.Set(Coord{-1, -1}, Path)
	assert.Equal(t, 1, g.CountPaths())
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid(5, 5)
	g.Set(Coord{1, 1}, Path)

	clone := g.Clone()
	require.True(t, g.Equal(clone))

	clone.Set(Coord{1, 2}, Path)
	assert.False(t, g.Equal(clone))
	assert.True(t, g.IsWall(1, 2))
}

func TestCoordManhattan(t *testing.T) {
	assert.Equal(t, 0, Coord{2, 2}.Manhattan(Coord{2, 2}))
	assert.Equal(t, 7, Coord{1, 1}.Manhattan(Coord{4, 5}))
	assert.Equal(t, 7, Coord{4, 5}.Manhattan(Coord{1, 1}))
	assert.Equal(t, "(3,4)", Coord{3, 4}.String())
}
