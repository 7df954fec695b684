package maze

import "github.com/zyedidia/generic/mapset"

// Carve excavates a perfect maze over a fresh rows x cols grid using an
// iterative randomized depth-first search. Every odd/odd lattice cell is
// visited exactly once, so the result is a spanning tree: all path cells
// are connected and there are no cycles.
//
// It returns the grid and the number of lattice cells visited.
func Carve(rows, cols int, rng Source) (*Grid, int) {
	g := NewGrid(rows, cols)

	start := Coord{
		Row: 1 + 2*rng.Intn((rows-1)/2),
		Col: 1 + 2*rng.Intn((cols-1)/2),
	}

	visited := mapset.New[Coord]()
	visited.Put(start)
	g.Set(start, Path)

	stack := []Coord{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		candidates := make([]Coord, 0, 4)
		for _, n := range g.Neighbors(cur) {
			if !visited.Has(n) {
				candidates = append(candidates, n)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		next := candidates[0]

		// Lattice neighbors are always two apart, so this cannot fail.
		wall, _ := WallBetween(cur, next)
		g.Set(wall, Path)
		g.Set(next, Path)
		visited.Put(next)
		stack = append(stack, next)
	}

	return g, visited.Size()
}
