// Package config provides YAML-based configuration for the labyrinth game:
// the difficulty table, gameplay tuning and the viewport used to derive
// cell sizes.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

// LabyrinthConfig contains all configuration for the labyrinth game.
type LabyrinthConfig struct {
	DefaultLevel  string              `yaml:"default_level"`
	Levels        []Level             `yaml:"levels"`
	Player        PlayerConfig        `yaml:"player"`
	Camera        CameraConfig        `yaml:"camera"`
	Viewport      Viewport            `yaml:"viewport"`
	GoalIndicator GoalIndicatorConfig `yaml:"goal_indicator"`
	Scoring       ScoringConfig       `yaml:"scoring"`
}

// Level is one entry of the difficulty table.
type Level struct {
	ID            string  `yaml:"id"`
	Name          string  `yaml:"name"`
	Rows          int     `yaml:"rows"`
	Cols          int     `yaml:"cols"`
	Complexity    float64 `yaml:"complexity"`
	Density       float64 `yaml:"density"`
	TimeLimitSecs int     `yaml:"time_limit_secs"`
	Bonus         int     `yaml:"bonus"` // added to the score of a timed win
	Color         string  `yaml:"color"` // menu color name, see core.ParseColor
}

// TimeLimit returns the level's limit as a duration.
func (l Level) TimeLimit() time.Duration {
	return time.Duration(l.TimeLimitSecs) * time.Second
}

// Params converts the level into generator parameters.
func (l Level) Params(cellSize int) maze.Params {
	return maze.Params{
		Rows:       l.Rows,
		Cols:       l.Cols,
		Complexity: l.Complexity,
		Density:    l.Density,
		CellSize:   cellSize,
	}
}

// PlayerConfig tunes player movement.
type PlayerConfig struct {
	MoveEveryTicks int `yaml:"move_every_ticks"` // minimum ticks between two steps
}

// CameraConfig tunes how the view follows the player.
type CameraConfig struct {
	Smoothing float64 `yaml:"smoothing"` // fraction of the remaining distance covered per tick
	DeadZone  int     `yaml:"dead_zone"` // cells the player may drift from center before the camera moves
}

// Viewport describes the nominal window the maze is laid out in.
type Viewport struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	PanelHeight int `yaml:"panel_height"`
	MinCellSize int `yaml:"min_cell_size"`
	MaxCellSize int `yaml:"max_cell_size"`
}

// FitCellSize returns the largest cell size at which a rows x cols maze
// fits the viewport between the top and bottom panels, clamped to
// [MinCellSize, MaxCellSize].
func (v Viewport) FitCellSize(rows, cols int) int {
	if rows <= 0 || cols <= 0 {
		return v.MinCellSize
	}
	size := min(v.Width/cols, (v.Height-2*v.PanelHeight)/rows)
	if size < v.MinCellSize {
		return v.MinCellSize
	}
	if v.MaxCellSize > 0 && size > v.MaxCellSize {
		return v.MaxCellSize
	}
	return size
}

// GoalIndicatorConfig controls the arrow pointing at an off-screen goal.
type GoalIndicatorConfig struct {
	Margin int    `yaml:"margin"` // cells between the arrow and the viewport edge
	Up     string `yaml:"up"`
	Down   string `yaml:"down"`
	Left   string `yaml:"left"`
	Right  string `yaml:"right"`
}

// ScoringConfig controls how wins are scored.
type ScoringConfig struct {
	PointsPerSecond int `yaml:"points_per_second"`
}

// Level returns the level with the given id.
func (c LabyrinthConfig) Level(id string) (Level, bool) {
	for _, l := range c.Levels {
		if l.ID == id {
			return l, true
		}
	}
	return Level{}, false
}

// LevelOrDefault returns the level with the given id, falling back to
// DefaultLevel and then to the first level.
func (c LabyrinthConfig) LevelOrDefault(id string) Level {
	if l, ok := c.Level(id); ok {
		return l
	}
	if l, ok := c.Level(c.DefaultLevel); ok {
		return l
	}
	if len(c.Levels) > 0 {
		return c.Levels[0]
	}
	return DefaultLabyrinthConfig().Levels[0]
}

// LevelIDs returns level ids in table order.
func (c LabyrinthConfig) LevelIDs() []string {
	ids := make([]string, len(c.Levels))
	for i, l := range c.Levels {
		ids[i] = l.ID
	}
	return ids
}

// Validate rejects levels the generator would refuse and malformed tuning.
func (c LabyrinthConfig) Validate() error {
	if len(c.Levels) == 0 {
		return fmt.Errorf("config: no levels defined")
	}
	seen := make(map[string]bool, len(c.Levels))
	for _, l := range c.Levels {
		if l.ID == "" {
			return fmt.Errorf("config: level %q has no id", l.Name)
		}
		if seen[l.ID] {
			return fmt.Errorf("config: duplicate level id %q", l.ID)
		}
		seen[l.ID] = true

		if err := l.Params(0).Validate(); err != nil {
			return fmt.Errorf("config: level %q: %w", l.ID, err)
		}
		if l.TimeLimitSecs <= 0 {
			return fmt.Errorf("config: level %q: time_limit_secs must be positive", l.ID)
		}
	}
	if c.DefaultLevel != "" && !seen[c.DefaultLevel] {
		return fmt.Errorf("config: default_level %q is not a defined level", c.DefaultLevel)
	}
	if c.Camera.Smoothing <= 0 || c.Camera.Smoothing > 1 {
		return fmt.Errorf("config: camera.smoothing must be within (0, 1]")
	}
	if c.Viewport.MinCellSize <= 0 {
		return fmt.Errorf("config: viewport.min_cell_size must be positive")
	}
	return nil
}
