package maze

import "math"

// Removal targets per grid cell at full strength.
const (
	complexityScale = 0.03
	densityScale    = 0.02
)

// PerturbStats counts the walls opened by each perturbation pass.
type PerturbStats struct {
	Branches int // walls opened by the complexity pass
	Loops    int // walls opened by the density pass
}

// Perturb raises the branchiness and loopiness of a carved maze.
//
// The complexity pass opens lattice walls between two carved cells, turning
// corridors into branch points. The density pass opens interior walls that
// have path on two opposite sides, injecting cycles. Both passes only flip
// Wall to Path, so everything reachable before stays reachable. When fewer
// walls qualify than requested, a pass opens what it can and stops.
func Perturb(g *Grid, complexity, density float64, rng Source) PerturbStats {
	return PerturbStats{
		Branches: addBranches(g, removalTarget(complexity, g, complexityScale), rng),
		Loops:    addLoops(g, removalTarget(density, g, densityScale), rng),
	}
}

func removalTarget(strength float64, g *Grid, scale float64) int {
	return int(math.Round(strength * float64(g.rows*g.cols) * scale))
}

// addBranches repeatedly picks a random lattice cell that still has an
// openable wall and opens one of those walls at random.
func addBranches(g *Grid, target int, rng Source) int {
	opened := 0
	for opened < target {
		cells := branchCandidates(g)
		if len(cells) == 0 {
			break
		}
		cell := cells[rng.Intn(len(cells))]
		walls := openableWalls(g, cell)
		g.Set(walls[rng.Intn(len(walls))], Path)
		opened++
	}
	return opened
}

// branchCandidates lists carved lattice cells with at least one openable wall.
func branchCandidates(g *Grid) []Coord {
	var out []Coord
	for r := 1; r < g.rows; r += 2 {
		for c := 1; c < g.cols; c += 2 {
			cell := Coord{Row: r, Col: c}
			if g.At(cell) == Path && len(openableWalls(g, cell)) > 0 {
				out = append(out, cell)
			}
		}
	}
	return out
}

// openableWalls returns the walls around cell whose far side is already path.
func openableWalls(g *Grid, cell Coord) []Coord {
	var out []Coord
	for _, n := range g.Neighbors(cell) {
		if g.At(n) != Path {
			continue
		}
		wall, err := WallBetween(cell, n)
		if err != nil {
			continue
		}
		if g.At(wall) == Wall {
			out = append(out, wall)
		}
	}
	return out
}

// addLoops opens up to target interior walls that join two path cells lying
// on opposite sides. A wall touching a single path cell is never opened.
func addLoops(g *Grid, target int, rng Source) int {
	if target <= 0 {
		return 0
	}
	candidates := loopCandidates(g)
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	n := min(target, len(candidates))
	for _, w := range candidates[:n] {
		g.Set(w, Path)
	}
	return n
}

// loopCandidates scans the interior for walls bridging two opposite path cells.
func loopCandidates(g *Grid) []Coord {
	var out []Coord
	for r := 1; r < g.rows-1; r++ {
		for c := 1; c < g.cols-1; c++ {
			if g.IsPath(r, c) {
				continue
			}
			vertical := g.IsPath(r-1, c) && g.IsPath(r+1, c)
			horizontal := g.IsPath(r, c-1) && g.IsPath(r, c+1)
			if vertical || horizontal {
				out = append(out, Coord{Row: r, Col: c})
			}
		}
	}
	return out
}
