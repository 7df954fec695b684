package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresID    string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show best times",
	Long: `Without arguments, show a summary of every difficulty followed by the
most recent runs. With a difficulty, show its fastest escapes. With --id,
show a single run as listed under recent runs.

Only timed runs count towards best times; practice runs are listed
under recent runs but never ranked.

Examples:
  maze scores
  maze scores hard
  maze scores hard --limit 25
  maze scores easy --clear
  maze scores --id 3f0c9a52-8d1e-4b7a-9c55-0e2f6a1d7b44`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete stored runs (for one difficulty if given)")
	scoresCmd.Flags().StringVar(&flagScoresID, "id", "", "Show a single run by id")
	scoresCmd.Flags().StringVar(&flagConfig, "config", env.ConfigPath, "Path to custom labyrinth config YAML")
}

func runScores(_ *cobra.Command, args []string) {
	labCfg, err := config.LoadLabyrinth(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	difficulty := ""
	if len(args) == 1 {
		difficulty = args[0]
		if _, ok := labCfg.Level(difficulty); !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", difficulty)
			fmt.Fprintln(os.Stderr, "Run 'maze list' to see available difficulties.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresID != "" {
		r, err := store.RunByID(flagScoresID)
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "Error: no run with id %q\n", flagScoresID)
			os.Exit(1)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving run: %v\n", err)
			os.Exit(1)
		}
		printRun(os.Stdout, r)
		return
	}

	if flagScoresClear {
		if err := store.ClearRuns(difficulty); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		if difficulty == "" {
			fmt.Println("All runs deleted.")
		} else {
			fmt.Printf("Runs for %s deleted.\n", difficulty)
		}
		return
	}

	if difficulty == "" {
		err = printSummary(store, labCfg)
	} else {
		level, _ := labCfg.Level(difficulty)
		err = printBest(store, level)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
}

func printBest(store *storage.Store, level config.Level) error {
	runs, err := store.BestRuns(level.ID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best Times - %s (%dx%d)\n", level.Name, level.Rows, level.Cols)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No escapes recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'maze play --difficulty %s' to set the first best time!\n", level.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-7s  %s\n", "Rank", "Time", "Moves", "Score", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-7s  %s\n", "----", "----", "-----", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-6s  %-6d  %-7d  %s\n",
			i+1, core.FormatClock(r.Elapsed), r.Moves, r.Score, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	st, err := store.GetDifficultyStats(level.ID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Played: %d  Won: %d (%.0f%%)  Average: %s\n",
		st.Played, st.Won, st.WinRate()*100, core.FormatClock(st.AvgTime))
	return nil
}

func printSummary(store *storage.Store, labCfg config.LabyrinthConfig) error {
	all, err := store.GetAllDifficultyStats()
	if err != nil {
		return err
	}

	fmt.Println("Summary")
	fmt.Println()
	fmt.Printf("  %-10s  %-6s  %-4s  %-6s  %-6s\n", "Difficulty", "Played", "Won", "Best", "Score")
	fmt.Printf("  %-10s  %-6s  %-4s  %-6s  %-6s\n", "----------", "------", "---", "----", "-----")
	for _, level := range labCfg.Levels {
		st, ok := all[level.ID]
		if !ok {
			fmt.Printf("  %-10s  %-6d  %-4d  %-6s  %-6s\n", level.ID, 0, 0, "-", "-")
			continue
		}
		best := "-"
		if st.BestTime > 0 {
			best = core.FormatClock(st.BestTime)
		}
		fmt.Printf("  %-10s  %-6d  %-4d  %-6s  %-6d\n", level.ID, st.Played, st.Won, best, st.BestScore)
	}

	recent, err := store.RecentRuns(flagScoresLimit)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("Recent runs")
	fmt.Println()
	if len(recent) == 0 {
		fmt.Println("  none")
		return nil
	}
	for _, r := range recent {
		result := "lost"
		if r.Won {
			result = "won"
		}
		mode := "timed"
		if !r.Ranked {
			mode = "practice"
		}
		fmt.Printf("  %s  %s  %-10s  %-8s  %-4s  %s  %d moves\n",
			r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Difficulty, mode, result, core.FormatClock(r.Elapsed), r.Moves)
	}
	return nil
}

func printRun(w io.Writer, r *storage.Run) {
	result := "lost"
	if r.Won {
		result = "won"
	}
	fmt.Fprintf(w, "Run %s\n\n", r.ID)
	fmt.Fprintf(w, "  Date:       %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "  Difficulty: %s (%dx%d)\n", r.Difficulty, r.Rows, r.Cols)
	fmt.Fprintf(w, "  Mode:       %s\n", r.Mode)
	fmt.Fprintf(w, "  Ranked:     %t\n", r.Ranked)
	fmt.Fprintf(w, "  Result:     %s\n", result)
	fmt.Fprintf(w, "  Time:       %s\n", core.FormatClock(r.Elapsed))
	fmt.Fprintf(w, "  Moves:      %d\n", r.Moves)
	fmt.Fprintf(w, "  Score:      %d\n", r.Score)
}
