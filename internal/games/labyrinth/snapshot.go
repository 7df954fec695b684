package labyrinth

import "time"

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Mode       string
	Difficulty string
	Phase      Phase
	PlayerRow  int
	PlayerCol  int
	GoalRow    int
	GoalCol    int
	PathCells  int
	Moves      int
	Score      int
	Elapsed    time.Duration
	Remaining  time.Duration
	CameraX    int
	CameraY    int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       g.tick,
		Mode:       string(g.mode),
		Difficulty: g.level.ID,
		Phase:      g.phase,
		PlayerRow:  g.player.Row,
		PlayerCol:  g.player.Col,
		Moves:      g.moves,
		Score:      g.score,
		Elapsed:    g.Elapsed(),
	}
	if g.maze != nil {
		goal := g.maze.Goal()
		s.GoalRow, s.GoalCol = goal.Row, goal.Col
		s.PathCells = g.maze.Stats().PathCells
	}
	if g.clock != nil {
		s.Remaining = g.clock.Remaining()
	}
	s.CameraX, s.CameraY = g.camera.Offset()
	return s
}
