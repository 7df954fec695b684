package labyrinth

import (
	"math"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

// Camera tracks which part of the maze is visible. Positions are in maze
// cells; X/Y is the top-left visible cell and may be negative when the
// maze is smaller than the view, which centers it.
type Camera struct {
	x, y      float64
	viewW     int
	viewH     int
	smoothing float64
	deadZone  int
}

// NewCamera creates a camera with the given smoothing factor in (0, 1].
func NewCamera(smoothing float64, deadZone int) Camera {
	if smoothing <= 0 || smoothing > 1 {
		smoothing = 1
	}
	return Camera{smoothing: smoothing, deadZone: max(deadZone, 0)}
}

// SetView sets the visible area in cells.
func (c *Camera) SetView(w, h int) {
	c.viewW, c.viewH = max(w, 1), max(h, 1)
}

// View returns the visible area in cells.
func (c *Camera) View() (w, h int) {
	return c.viewW, c.viewH
}

// target returns where the camera wants to be to keep p in view.
func (c *Camera) target(p maze.Coord, rows, cols int) (float64, float64) {
	tx := axisTarget(c.x, p.Col, cols, c.viewW, c.deadZone)
	ty := axisTarget(c.y, p.Row, rows, c.viewH, c.deadZone)
	return tx, ty
}

func axisTarget(cur float64, pos, size, view, deadZone int) float64 {
	if size <= view {
		return -float64(view-size) / 2
	}
	center := cur + float64(view)/2
	if math.Abs(float64(pos)-center) <= float64(deadZone) {
		return core.ClampF(cur, 0, float64(size-view))
	}
	t := float64(pos) - float64(view)/2
	return core.ClampF(t, 0, float64(size-view))
}

// Follow moves the camera a smoothing fraction toward keeping p centered.
func (c *Camera) Follow(p maze.Coord, rows, cols int) {
	tx, ty := c.target(p, rows, cols)
	c.x = core.Lerp(c.x, tx, c.smoothing)
	c.y = core.Lerp(c.y, ty, c.smoothing)
	// Settle once within a hundredth of a cell so rounding is stable.
	if math.Abs(c.x-tx) < 0.01 {
		c.x = tx
	}
	if math.Abs(c.y-ty) < 0.01 {
		c.y = ty
	}
}

// Snap jumps straight to the target for p.
func (c *Camera) Snap(p maze.Coord, rows, cols int) {
	c.x, c.y = c.target(p, rows, cols)
}

// Offset returns the top-left visible cell, rounded.
func (c *Camera) Offset() (col, row int) {
	return int(math.Round(c.x)), int(math.Round(c.y))
}

// Visible reports whether cell p is inside the current view.
func (c *Camera) Visible(p maze.Coord) bool {
	ox, oy := c.Offset()
	return core.NewRect(ox, oy, c.viewW, c.viewH).Contains(p.Col, p.Row)
}
