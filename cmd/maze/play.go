package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/games/labyrinth"
	"github.com/vovakirdan/tui-maze/internal/platform/tui"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagPractice   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a maze",
	Long: `Generate a maze at the chosen difficulty and start playing.

Controls:
  Arrows/WASD/HJKL  - Move
  P/Space           - Pause
  R                 - New maze
  B/Esc             - Back (when paused or finished)
  Q/Ctrl+C          - Quit

Difficulties (default table):
  easy       15x15  2:00
  normal     25x25  3:00
  hard       35x35  4:00
  very_hard  45x45  5:00
  extreme    55x55  6:00

Examples:
  maze play
  maze play --difficulty hard
  maze play --practice --difficulty extreme
  maze play --config ./my-labyrinth.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", env.ConfigPath, "Path to custom labyrinth config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", env.Difficulty, "Level id from the difficulty table")
	playCmd.Flags().BoolVar(&flagPractice, "practice", false, "Play without a clock; runs are not ranked")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadLabyrinth(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	levelID, err := resolveLevel(cfg, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	labyrinth.SetConfigPath(flagConfig)

	gameID := string(labyrinth.ModeTimed)
	if flagPractice {
		gameID = string(labyrinth.ModePractice)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	width, height := terminalSize()
	runtime := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		Difficulty: levelID,
	}

	store := openStore()
	closeLog := logToFile()
	log.Debug("starting game", "mode", gameID, "difficulty", levelID, "seed", flagSeed)

	runErr := tui.Run(game, store, runtime)

	closeLog()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// resolveLevel returns id if the table has it, the table default for an
// empty id, and an error listing the valid ids otherwise.
func resolveLevel(cfg config.LabyrinthConfig, id string) (string, error) {
	if id == "" {
		return cfg.LevelOrDefault("").ID, nil
	}
	if _, ok := cfg.Level(id); !ok {
		return "", fmt.Errorf("unknown difficulty %q (available: %v)", id, cfg.LevelIDs())
	}
	return id, nil
}
