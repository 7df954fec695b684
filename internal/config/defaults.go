package config

import (
	_ "embed"
)

//go:embed defaults/labyrinth.yaml
var defaultLabyrinthYAML []byte

// DefaultLabyrinthConfig returns the built-in configuration. It matches
// defaults/labyrinth.yaml and backs it if the embedded file fails to parse.
func DefaultLabyrinthConfig() LabyrinthConfig {
	return LabyrinthConfig{
		DefaultLevel: "normal",
		Levels: []Level{
			{ID: "easy", Name: "Easy", Rows: 15, Cols: 15, Complexity: 0.5, Density: 0.5, TimeLimitSecs: 120, Bonus: 100, Color: "green"},
			{ID: "normal", Name: "Normal", Rows: 25, Cols: 25, Complexity: 0.6, Density: 0.6, TimeLimitSecs: 180, Bonus: 250, Color: "blue"},
			{ID: "hard", Name: "Hard", Rows: 35, Cols: 35, Complexity: 0.7, Density: 0.7, TimeLimitSecs: 240, Bonus: 500, Color: "orange"},
			{ID: "very_hard", Name: "Very Hard", Rows: 45, Cols: 45, Complexity: 0.8, Density: 0.8, TimeLimitSecs: 300, Bonus: 1000, Color: "magenta"},
			{ID: "extreme", Name: "Extreme", Rows: 55, Cols: 55, Complexity: 0.9, Density: 0.9, TimeLimitSecs: 360, Bonus: 2000, Color: "red"},
		},
		Player: PlayerConfig{
			MoveEveryTicks: 4,
		},
		Camera: CameraConfig{
			Smoothing: 0.1,
			DeadZone:  0,
		},
		Viewport: Viewport{
			Width:       800,
			Height:      600,
			PanelHeight: 40,
			MinCellSize: 8,
			MaxCellSize: 40,
		},
		GoalIndicator: GoalIndicatorConfig{
			Margin: 1,
			Up:     "▲",
			Down:   "▼",
			Left:   "◀",
			Right:  "▶",
		},
		Scoring: ScoringConfig{
			PointsPerSecond: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultLabyrinthYAML
}
