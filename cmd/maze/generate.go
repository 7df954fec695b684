package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

var (
	flagGenRows       int
	flagGenCols       int
	flagGenComplexity float64
	flagGenDensity    float64
	flagGenDifficulty string
	flagGenCellSize   int
	flagGenFit        bool
	flagGenColor      bool
	flagGenWide       bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a generated maze and its statistics",
	Long: `Generate a single maze and print it as text, followed by the
generation statistics.

Size and shape come from --difficulty when given; explicit --rows,
--cols, --complexity and --density flags override the level values.
Rows and columns must be odd and at least 5.

Examples:
  maze generate
  maze generate --difficulty hard --seed 7
  maze generate --rows 21 --cols 41 --complexity 0.2 --density 0.9
  maze generate --difficulty extreme --fit --color`,
	Args: cobra.NoArgs,
	Run:  runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&flagGenRows, "rows", 15, "Grid rows (odd, >= 5)")
	generateCmd.Flags().IntVar(&flagGenCols, "cols", 15, "Grid columns (odd, >= 5)")
	generateCmd.Flags().Float64Var(&flagGenComplexity, "complexity", 0.5, "Extra branches, 0..1")
	generateCmd.Flags().Float64Var(&flagGenDensity, "density", 0.5, "Extra loops, 0..1")
	generateCmd.Flags().StringVar(&flagGenDifficulty, "difficulty", "", "Take size and shape from a level")
	generateCmd.Flags().IntVar(&flagGenCellSize, "cell-size", 0, "Pixels per cell (0 = default)")
	generateCmd.Flags().BoolVar(&flagGenFit, "fit", false, "Derive the cell size from the configured viewport")
	generateCmd.Flags().BoolVar(&flagGenColor, "color", false, "Colorize the output")
	generateCmd.Flags().BoolVar(&flagGenWide, "wide", true, "Draw every cell two characters wide")
	generateCmd.Flags().StringVar(&flagConfig, "config", env.ConfigPath, "Path to custom labyrinth config YAML")
	generateCmd.MarkFlagsMutuallyExclusive("cell-size", "fit")
}

func runGenerate(cmd *cobra.Command, _ []string) {
	params, err := generateParams(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m, err := maze.Generate(maze.NewSource(seed), params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.Debug("maze generated", "seed", seed, "attempts", m.Stats().Attempts)

	if flagGenColor {
		fmt.Println(renderColored(m, flagGenWide))
	} else {
		fmt.Println(maze.Render(m, maze.RenderOptions{Wide: flagGenWide}))
	}
	fmt.Println()
	printStats(m, params, seed)
}

// generateParams combines the level table with explicitly set flags.
func generateParams(cmd *cobra.Command) (maze.Params, error) {
	p := maze.Params{
		Rows:       flagGenRows,
		Cols:       flagGenCols,
		Complexity: flagGenComplexity,
		Density:    flagGenDensity,
		CellSize:   flagGenCellSize,
	}

	var labCfg config.LabyrinthConfig
	if flagGenDifficulty != "" || flagGenFit {
		loaded, err := config.LoadLabyrinth(flagConfig)
		if err != nil {
			return p, err
		}
		labCfg = loaded
	}

	if flagGenDifficulty != "" {
		level, ok := labCfg.Level(flagGenDifficulty)
		if !ok {
			return p, fmt.Errorf("unknown difficulty %q (available: %v)", flagGenDifficulty, labCfg.LevelIDs())
		}
		flags := cmd.Flags()
		if !flags.Changed("rows") {
			p.Rows = level.Rows
		}
		if !flags.Changed("cols") {
			p.Cols = level.Cols
		}
		if !flags.Changed("complexity") {
			p.Complexity = level.Complexity
		}
		if !flags.Changed("density") {
			p.Density = level.Density
		}
	}

	if flagGenFit {
		p.CellSize = labCfg.Viewport.FitCellSize(p.Rows, p.Cols)
	}
	return p, nil
}

func printStats(m *maze.Maze, p maze.Params, seed int64) {
	st := m.Stats()
	w, h := m.DimensionsInPixels()

	fmt.Printf("Size:          %dx%d (complexity %.2f, density %.2f)\n", m.Rows(), m.Cols(), p.Complexity, p.Density)
	fmt.Printf("Seed:          %d\n", seed)
	fmt.Printf("Start:         %s\n", m.Start())
	fmt.Printf("Goal:          %s (%d steps)\n", m.Goal(), st.GoalDistance)
	fmt.Printf("Path cells:    %d (carved %d, branches %d, loops %d)\n", st.PathCells, st.CarvedCells, st.Branches, st.Loops)
	fmt.Printf("Attempts:      %d\n", st.Attempts)
	fmt.Printf("Cell size:     %dpx (%dx%dpx)\n", m.CellSize(), w, h)
}

var (
	genWallStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	genStartStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	genGoalStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

// renderColored draws walls as blocks and marks start and goal in color.
func renderColored(m *maze.Maze, wide bool) string {
	width := 1
	if wide {
		width = 2
	}
	wall := genWallStyle.Render(strings.Repeat("█", width))
	path := strings.Repeat(" ", width)
	start := genStartStyle.Render(strings.Repeat("S", width))
	goal := genGoalStyle.Render(strings.Repeat("G", width))

	s := m.Start()
	var sb strings.Builder
	for r := range m.Rows() {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range m.Cols() {
			switch {
			case r == s.Row && c == s.Col:
				sb.WriteString(start)
			case m.IsGoal(r, c):
				sb.WriteString(goal)
			case m.IsWall(r, c):
				sb.WriteString(wall)
			default:
				sb.WriteString(path)
			}
		}
	}
	return sb.String()
}
