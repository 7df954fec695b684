package labyrinth

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-maze/internal/core"
)

const (
	wallGlyph   = "██"
	startGlyph  = "::"
	goalGlyph   = "[]"
	playerGlyph = "()"
	footerHint  = " Arrows/WASD move  P pause  R new maze  B menu  Q quit"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	switch g.phase {
	case PhaseFailed:
		msg := "unknown error"
		if g.genErr != nil {
			msg = g.genErr.Error()
		}
		g.renderOverlay(dst, "Could not build a maze", msg)
		return
	case PhaseTooSmall:
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderMaze(dst)
	g.renderGoalArrow(dst)
	dst.DrawTextColored(0, dst.Height()-1, footerHint, core.ColorGray)

	switch g.phase {
	case PhaseWon:
		line := fmt.Sprintf("Time %s  Moves %d", core.FormatClock(g.elapsed), g.moves)
		if g.clock.Timed() {
			line += fmt.Sprintf("  Score %d", g.score)
		}
		g.renderOverlay(dst, "You escaped!", line)
	case PhaseLost:
		g.renderOverlay(dst, "Time's up!", "Press R for a new maze")
	case PhasePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	var clock string
	switch {
	case g.clock == nil:
		clock = "--:--"
	case g.clock.Timed():
		clock = "Time: " + core.FormatClock(g.clock.Remaining())
	default:
		clock = "Elapsed: " + core.FormatClock(g.Elapsed())
	}

	hud := fmt.Sprintf(" %s — %s  %s  Moves: %d", g.Title(), g.level.Name, clock, g.moves)
	if g.maze != nil {
		hud += fmt.Sprintf("  Distance: %.0f", g.goalDistance())
	}

	color := core.ColorWhite
	if g.clock != nil && g.clock.Timed() && g.clock.Remaining() <= g.clock.Limit()/10 {
		color = core.ColorBrightRed
	}
	dst.DrawTextColored(0, 0, hud, color)

	// Draw separator
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// goalDistance is the straight-line distance from player to goal in cells.
func (g *Game) goalDistance() float64 {
	goal := g.maze.Goal()
	return math.Hypot(float64(goal.Row-g.player.Row), float64(goal.Col-g.player.Col))
}

// renderMaze draws the visible part of the maze below the HUD.
func (g *Game) renderMaze(dst *core.Screen) {
	ox, oy := g.camera.Offset()
	viewW, viewH := g.camera.View()
	start := g.maze.Start()

	for vy := range viewH {
		row := oy + vy
		if row < 0 || row >= g.maze.Rows() {
			continue
		}
		for vx := range viewW {
			col := ox + vx
			if col < 0 || col >= g.maze.Cols() {
				continue
			}
			x, y := vx*cellWidth, hudHeight+vy

			switch {
			case row == g.player.Row && col == g.player.Col:
				dst.DrawTextColored(x, y, playerGlyph, core.ColorBrightYellow)
			case g.maze.IsGoal(row, col):
				dst.DrawTextColored(x, y, goalGlyph, core.ColorBrightGreen)
			case row == start.Row && col == start.Col:
				dst.DrawTextColored(x, y, startGlyph, core.ColorRed)
			case g.maze.IsWall(row, col):
				dst.DrawTextColored(x, y, wallGlyph, core.ColorGray)
			}
		}
	}
}

// renderGoalArrow points at the goal from the viewport edge when the goal
// is off-screen. The dominant axis of the offset picks the edge.
func (g *Game) renderGoalArrow(dst *core.Screen) {
	goal := g.maze.Goal()
	if g.camera.Visible(goal) {
		return
	}

	ox, oy := g.camera.Offset()
	viewW, viewH := g.camera.View()
	ind := g.cfg.GoalIndicator
	margin := max(ind.Margin, 0)

	// Goal position relative to the view, in cells.
	gx, gy := goal.Col-ox, goal.Row-oy
	cx, cy := viewW/2, viewH/2
	dx, dy := gx-cx, gy-cy

	var glyph string
	var ax, ay int // in view cells
	if core.Abs(dx)*viewH >= core.Abs(dy)*viewW {
		ay = core.Clamp(gy, margin, viewH-1-margin)
		if dx > 0 {
			glyph, ax = ind.Right, viewW-1-margin
		} else {
			glyph, ax = ind.Left, margin
		}
	} else {
		ax = core.Clamp(gx, margin, viewW-1-margin)
		if dy > 0 {
			glyph, ay = ind.Down, viewH-1-margin
		} else {
			glyph, ay = ind.Up, margin
		}
	}

	r, _ := utf8.DecodeRuneInString(glyph)
	if r == utf8.RuneError {
		r = '*'
	}
	dst.SetColored(ax*cellWidth, hudHeight+ay, r, core.ColorBrightGreen)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2))
	boxW := min(maxLen+4, w)
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
