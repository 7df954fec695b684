// Package labyrinth implements the playable maze: the player walks from
// the start cell to the goal before the countdown runs out.
package labyrinth

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

// Mode selects timed or practice play.
type Mode string

const (
	ModeTimed    Mode = "labyrinth"
	ModePractice Mode = "labyrinth_practice"
)

const (
	hudHeight    = 2 // HUD line plus separator
	footerHeight = 1 // key hints
	cellWidth    = 2 // terminal columns per maze cell

	minViewCols = 10 // smallest playable view, in maze cells
	minViewRows = 5
)

// clockEpoch anchors the tick-driven clock. Any fixed instant works.
var clockEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Package-level settings applied by the CLI before a game is created.
var (
	configPath        string
	defaultDifficulty string
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficulty sets the level id used when RuntimeConfig.Difficulty is empty.
func SetDifficulty(id string) {
	defaultDifficulty = id
}

// Game implements the labyrinth game logic.
type Game struct {
	mode Mode

	// Configuration
	cfg       config.LabyrinthConfig
	cfgLoaded bool
	level     config.Level
	runtime   core.RuntimeConfig

	rng     *rand.Rand
	tick    uint64
	tickDur time.Duration

	maze   *maze.Maze
	genErr error

	player   maze.Coord
	moves    int
	pending  core.Action // buffered direction, ActionNone if none
	cooldown int         // ticks until the next step is allowed

	phase     Phase
	prevPhase Phase // restored when a too-small window grows again
	clock     *core.Countdown
	camera    Camera
	score     int
	elapsed   time.Duration // frozen at the end of the run

	screenW int
	screenH int
}

// New creates a timed labyrinth game.
func New() *Game {
	return &Game{mode: ModeTimed}
}

// NewPractice creates an untimed labyrinth game whose runs are not ranked.
func NewPractice() *Game {
	return &Game{mode: ModePractice}
}

func init() {
	registry.Register(string(ModeTimed), func() registry.Game {
		return New()
	})
	registry.Register(string(ModePractice), func() registry.Game {
		return NewPractice()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModePractice {
		return "Labyrinth (Practice)"
	}
	return "Labyrinth"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	if g.mode == ModePractice {
		return "Explore without a clock. Runs are not ranked."
	}
	return "Reach the exit before time runs out."
}

// Reset loads the configuration and builds a fresh maze for the selected level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tickDur = time.Second / time.Duration(max(cfg.TickRate, 1))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.moves = 0
	g.pending = core.ActionNone
	g.cooldown = 0
	g.score = 0
	g.elapsed = 0
	g.maze = nil
	g.genErr = nil

	if !g.cfgLoaded {
		loaded, err := config.LoadLabyrinth(configPath)
		if err != nil {
			g.fail(err)
			return
		}
		g.cfg = loaded
		g.cfgLoaded = true
	}

	id := cfg.Difficulty
	if id == "" {
		id = defaultDifficulty
	}
	g.level = g.cfg.LevelOrDefault(id)
	g.runtime.Difficulty = g.level.ID

	limit := g.level.TimeLimit()
	if g.mode == ModePractice {
		limit = 0
	}
	g.clock = core.NewCountdown(0, g.now)

	cellSize := g.cfg.Viewport.FitCellSize(g.level.Rows, g.level.Cols)
	m, err := maze.NewGenerator(g.rng).Generate(g.level.Params(cellSize))
	if err != nil {
		g.fail(err)
		return
	}
	g.maze = m
	g.player = m.Start()

	st := m.Stats()
	log.Debug("maze generated",
		"level", g.level.ID,
		"size", fmt.Sprintf("%dx%d", m.Rows(), m.Cols()),
		"attempts", st.Attempts,
		"branches", st.Branches,
		"loops", st.Loops,
		"goal_distance", st.GoalDistance,
	)

	g.camera = NewCamera(g.cfg.Camera.Smoothing, g.cfg.Camera.DeadZone)
	g.phase = PhasePlaying
	g.clock.Restart(limit)
	g.applyScreenSize()
	g.camera.Snap(g.player, m.Rows(), m.Cols())
}

// Resize adapts the view to a new terminal size without regenerating the maze.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	if g.maze == nil {
		return
	}
	g.applyScreenSize()
	g.camera.Snap(g.player, g.maze.Rows(), g.maze.Cols())
}

// applyScreenSize recomputes the view and enters or leaves PhaseTooSmall.
func (g *Game) applyScreenSize() {
	viewW := g.screenW / cellWidth
	viewH := g.screenH - hudHeight - footerHeight
	g.camera.SetView(viewW, viewH)

	tooSmall := viewW < minViewCols || viewH < minViewRows
	switch {
	case tooSmall && g.phase != PhaseTooSmall && !g.phase.Finished():
		g.prevPhase = g.phase
		g.phase = PhaseTooSmall
		g.clock.Pause()
	case !tooSmall && g.phase == PhaseTooSmall:
		g.phase = g.prevPhase
		if g.phase == PhasePlaying {
			g.clock.Resume()
		}
	}
}

func (g *Game) fail(err error) {
	g.genErr = err
	g.phase = PhaseFailed
	log.Error("could not start labyrinth", "err", err)
	if g.clock == nil {
		g.clock = core.NewCountdown(0, g.now)
	}
}

// now is the game clock: simulated time derived from the tick counter, so
// replays with the same inputs see the same timings.
func (g *Game) now() time.Time {
	return clockEpoch.Add(time.Duration(g.tick) * g.tickDur)
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// New maze at the same level
	if input.Has(core.ActionRestart) && g.phase != PhaseTooSmall {
		next := g.runtime
		next.Seed = g.rng.Int63()
		g.Reset(next)
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && (g.phase == PhasePlaying || g.phase == PhasePaused) {
		g.clock.Toggle()
		g.phase = PhasePlaying
		if g.clock.Paused() {
			g.phase = PhasePaused
		}
	}

	if g.phase != PhasePlaying {
		return core.StepResult{State: g.State()}
	}

	if g.clock.Expired() {
		g.finish(PhaseLost)
		return core.StepResult{State: g.State()}
	}

	if a := moveAction(input); a != core.ActionNone {
		g.pending = a
	}
	if g.cooldown > 0 {
		g.cooldown--
	}
	if g.pending != core.ActionNone && g.cooldown == 0 {
		g.tryMove(g.pending)
		g.pending = core.ActionNone
	}

	g.camera.Follow(g.player, g.maze.Rows(), g.maze.Cols())

	return core.StepResult{State: g.State()}
}

// moveAction returns the first direction in the frame, in up, down, left, right order.
func moveAction(input core.InputFrame) core.Action {
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if input.Has(a) {
			return a
		}
	}
	return core.ActionNone
}

func actionDelta(a core.Action) maze.Coord {
	switch a {
	case core.ActionUp:
		return maze.Coord{Row: -1}
	case core.ActionDown:
		return maze.Coord{Row: 1}
	case core.ActionLeft:
		return maze.Coord{Col: -1}
	case core.ActionRight:
		return maze.Coord{Col: 1}
	default:
		return maze.Coord{}
	}
}

// tryMove steps the player one cell unless a wall is in the way.
func (g *Game) tryMove(a core.Action) {
	next := g.player.Add(actionDelta(a))
	if g.maze.IsWall(next.Row, next.Col) {
		return
	}
	g.player = next
	g.moves++
	g.cooldown = max(g.cfg.Player.MoveEveryTicks, 1)

	if g.maze.IsGoal(next.Row, next.Col) {
		g.finish(PhaseWon)
	}
}

// finish freezes the clock and scores the run.
func (g *Game) finish(p Phase) {
	g.phase = p
	g.elapsed = g.clock.Elapsed()
	g.clock.Pause()
	if p == PhaseWon && g.clock.Timed() {
		secs := int(g.clock.Remaining() / time.Second)
		g.score = secs*g.cfg.Scoring.PointsPerSecond + g.level.Bonus
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase.Finished(),
		Won:      g.phase == PhaseWon,
		Paused:   g.phase == PhasePaused || g.phase == PhaseTooSmall,
	}
}

// Summary describes the run for storage. Only won or lost runs are
// reported; a run that never started has nothing to record.
func (g *Game) Summary() (core.RunSummary, bool) {
	s := core.RunSummary{
		Mode:       g.ID(),
		Difficulty: g.level.ID,
		Rows:       g.level.Rows,
		Cols:       g.level.Cols,
		Won:        g.phase == PhaseWon,
		Elapsed:    g.Elapsed(),
		Moves:      g.moves,
		Score:      g.score,
		Ranked:     g.mode == ModeTimed,
	}
	return s, g.phase == PhaseWon || g.phase == PhaseLost
}

// Elapsed returns play time so far, or the final time once the run is over.
func (g *Game) Elapsed() time.Duration {
	if g.phase == PhaseWon || g.phase == PhaseLost {
		return g.elapsed
	}
	if g.clock == nil {
		return 0
	}
	return g.clock.Elapsed()
}

// Phase returns the lifecycle state.
func (g *Game) Phase() Phase {
	return g.phase
}

// Maze returns the current maze, or nil if generation failed.
func (g *Game) Maze() *maze.Maze {
	return g.maze
}

// Level returns the level being played.
func (g *Game) Level() config.Level {
	return g.level
}

// Err returns the config or generation error behind PhaseFailed.
func (g *Game) Err() error {
	return g.genErr
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, Level: %s, Phase: %s\n", g.tick, g.level.ID, g.phase))
	b.WriteString(fmt.Sprintf("Player: %s, Moves: %d, Score: %d\n", g.player, g.moves, g.score))
	if g.maze != nil {
		st := g.maze.Stats()
		b.WriteString(fmt.Sprintf("Goal: %s, Distance: %d, Attempts: %d\n", g.maze.Goal(), st.GoalDistance, st.Attempts))
	}
	if g.clock != nil {
		b.WriteString(fmt.Sprintf("Elapsed: %s, Remaining: %s\n", g.clock.Elapsed(), g.clock.Remaining()))
	}
	return b.String()
}

var (
	_ registry.Game       = (*Game)(nil)
	_ registry.Summarizer = (*Game)(nil)
	_ registry.Resizer    = (*Game)(nil)
	_ registry.Describer  = (*Game)(nil)
)
