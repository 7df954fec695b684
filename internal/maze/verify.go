package maze

// Verifier decides whether goal can be reached from start.
type Verifier interface {
	Reachable(g *Grid, start, goal Coord) bool
}

// BFSVerifier checks reachability with a breadth-first search over path
// cells using single-step adjacency.
type BFSVerifier struct{}

// Reachable implements Verifier.
func (BFSVerifier) Reachable(g *Grid, start, goal Coord) bool {
	return Distances(g, start).Reaches(goal)
}

// DistanceMap holds breadth-first distances from a single origin.
type DistanceMap struct {
	origin  Coord
	rows    int
	cols    int
	dist    []int // -1 marks unreached cells
	reached int
}

// Distances runs a breadth-first search from start across path cells.
// If start is not a path cell nothing is reached.
func Distances(g *Grid, start Coord) DistanceMap {
	dm := DistanceMap{
		origin: start,
		rows:   g.rows,
		cols:   g.cols,
		dist:   make([]int, len(g.cells)),
	}
	for i := range dm.dist {
		dm.dist[i] = -1
	}
	if g.At(start) != Path {
		return dm
	}

	dm.dist[g.index(start)] = 0
	dm.reached = 1

	queue := []Coord{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := dm.dist[g.index(cur)]

		for _, n := range g.Adjacent(cur) {
			i := g.index(n)
			if dm.dist[i] >= 0 || g.At(n) != Path {
				continue
			}
			dm.dist[i] = d + 1
			dm.reached++
			queue = append(queue, n)
		}
	}
	return dm
}

// Reached returns how many cells the search visited, origin included.
func (d DistanceMap) Reached() int { return d.reached }

// Distance returns the step count to c and whether c was reached.
func (d DistanceMap) Distance(c Coord) (int, bool) {
	if c.Row < 0 || c.Row >= d.rows || c.Col < 0 || c.Col >= d.cols {
		return 0, false
	}
	v := d.dist[c.Row*d.cols+c.Col]
	return v, v >= 0
}

// Reaches reports whether c was reached.
func (d DistanceMap) Reaches(c Coord) bool {
	_, ok := d.Distance(c)
	return ok
}

// Farthest returns the reached cell at maximum distance. Ties go to the
// cell with the larger row+col sum, then to the first in row-major order.
func (d DistanceMap) Farthest() (Coord, int) {
	best := d.origin
	bestDist := -1
	for i, v := range d.dist {
		if v < 0 {
			continue
		}
		c := Coord{Row: i / d.cols, Col: i % d.cols}
		switch {
		case v > bestDist:
		case v == bestDist && c.Row+c.Col > best.Row+best.Col:
		default:
			continue
		}
		best, bestDist = c, v
	}
	if bestDist < 0 {
		return d.origin, 0
	}
	return best, bestDist
}
