package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes and difficulties",
	Long:  `Shows the registered game modes and the configured difficulty table.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func init() {
	listCmd.Flags().StringVar(&flagConfig, "config", env.ConfigPath, "Path to custom labyrinth config YAML")
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No game modes available.")
		return
	}

	fmt.Println("Game modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	labCfg, err := config.LoadLabyrinth(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Difficulties:")
	fmt.Println()
	fmt.Printf("  %-10s  %-7s  %-10s  %-7s  %-5s  %s\n", "ID", "Size", "Complexity", "Density", "Time", "Bonus")
	fmt.Printf("  %-10s  %-7s  %-10s  %-7s  %-5s  %s\n", "--", "----", "----------", "-------", "----", "-----")
	for _, l := range labCfg.Levels {
		marker := ""
		if l.ID == labCfg.DefaultLevel {
			marker = " (default)"
		}
		fmt.Printf("  %-10s  %-7s  %-10.2f  %-7.2f  %-5s  %d%s\n",
			l.ID, fmt.Sprintf("%dx%d", l.Rows, l.Cols), l.Complexity, l.Density,
			core.FormatClock(l.TimeLimit()), l.Bonus, marker)
	}

	fmt.Println()
	fmt.Println("Run 'maze play --difficulty <id>' to play.")
}
