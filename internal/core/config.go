package core

import "time"

// RuntimeConfig is passed to games on Reset.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	TickRate   int    // Simulation ticks per second (default 60)
	Seed       int64  // RNG seed; 0 lets the platform pick one from the clock
	Difficulty string // Level id from the difficulty table; empty selects the default
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the status a game reports to the platform after each tick.
type GameState struct {
	Score    int
	GameOver bool // finished, won or lost
	Won      bool
	Paused   bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}

// RunSummary describes a finished run for persistence.
type RunSummary struct {
	Mode       string
	Difficulty string
	Rows       int
	Cols       int
	Won        bool
	Elapsed    time.Duration
	Moves      int
	Score      int
	Ranked     bool // false for untimed practice runs
}
