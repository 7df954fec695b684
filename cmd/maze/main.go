// maze is a terminal maze game built around a procedural maze generator.
//
// Usage:
//
//	maze play               - Play a maze at the chosen difficulty
//	maze menu               - Start menu to pick mode and difficulty interactively
//	maze generate           - Print a generated maze and its statistics
//	maze scores [level]     - Show best times
//	maze list               - List game modes and difficulties
//	maze serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible mazes
//	--db <path>     - Set database path (default: ~/.maze/maze.db)
//	--verbose       - Enable debug logging
//
// Flag defaults can also come from MAZE_* variables or a .env file.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/tui-maze/internal/games/labyrinth"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool
)

// env is read before flags are declared so it can provide their defaults.
var env, envErr = config.LoadEnv()

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "Maze - Escape procedurally generated mazes in your terminal",
	Long: `Maze generates a fresh, always solvable maze for every run and
gives you a countdown to find the exit.

Available commands:
  play      - Play a maze directly
  menu      - Interactive mode and difficulty picker
  generate  - Print a maze without playing it
  scores    - View best times
  list      - Show game modes and difficulties
  serve     - Start SSH server for remote play

Examples:
  maze play --difficulty hard
  maze menu
  maze generate --rows 21 --cols 41 --seed 7
  maze serve --ssh :2222
  maze scores normal`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogger()
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", env.FPS, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", env.DBPath, "Path to run history database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// setupLogger installs the process-wide logger used by every package.
func setupLogger() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "maze",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)

	if envErr != nil {
		log.Warn("could not load .env", "err", envErr)
	}
}

// logToFile moves logging off the terminal while a Bubble Tea program owns
// it. The returned function closes the log file.
func logToFile() func() {
	home, err := os.UserHomeDir()
	if err != nil {
		return func() {}
	}
	dir := filepath.Join(home, ".maze")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warn("could not create log directory", "err", err)
		return func() {}
	}

	f, err := tea.LogToFileWith(filepath.Join(dir, "maze.log"), "maze", log.Default())
	if err != nil {
		log.Warn("could not open log file", "err", err)
		return func() {}
	}
	return func() { f.Close() }
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (width, height int) {
	width, height = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// openStore opens the run history. Failures are logged and play continues
// without storage.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open run database, runs will not be saved", "err", err)
		return nil
	}
	return store
}
