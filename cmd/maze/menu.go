package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/games/labyrinth"
	"github.com/vovakirdan/tui-maze/internal/platform/tui"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode and difficulty picker",
	Long: `Start the game in interactive menu mode.

Pick a mode, then a difficulty. After a run ends press B to return
to the menu and play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter        - Select
  Tab          - Best times
  Esc/B        - Back
  Q            - Quit

Examples:
  maze menu
  maze menu --fps 30
  maze menu --db ./maze.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", env.ConfigPath, "Path to custom labyrinth config YAML")
}

func runMenu(_ *cobra.Command, _ []string) {
	labCfg, err := config.LoadLabyrinth(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	labyrinth.SetConfigPath(flagConfig)

	store := openStore()
	closeLog := logToFile()

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	lastLevel := labCfg.DefaultLevel
	if env.Difficulty != "" {
		lastLevel = env.Difficulty
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			log.Error("menu failed", "err", err)
			break
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, labCfg.Levels, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				log.Error("scoreboard failed", "err", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		diff, err := tui.RunDifficultyMenu(labCfg.Levels, lastLevel, cfg)
		if err != nil {
			log.Error("difficulty menu failed", "err", err)
			continue
		}
		if diff.Quit {
			break
		}
		if diff.Back {
			continue
		}
		lastLevel = diff.LevelID

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			log.Error("could not create game", "id", menuResult.GameID, "err", err)
			continue
		}

		runCfg := cfg
		runCfg.Difficulty = diff.LevelID
		if runCfg.Seed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}
		cfg.Seed = 0 // --seed applies to the first maze only

		backToMenu, err := tui.RunGame(game, store, runCfg)
		if err != nil {
			log.Error("game failed", "err", err)
			continue
		}
		if !backToMenu {
			break
		}
	}

	closeLog()
	if store != nil {
		store.Close()
	}
}
