package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

var flagSolve bool

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the maze as text",
	Long: `Print the maze for the configured size and seed, one row per line:
'#' is a wall and '.' is open floor.

With --solve the shortest path from start to goal is marked with '*'
and the moves are listed below the maze, e.g. "moves: D4 R2 (6)".

Examples:
  maze print
  maze print --size 15 --seed 3 --solve`,
	Args: cobra.NoArgs,
	RunE: runPrint,
}

func init() {
	printCmd.Flags().BoolVar(&flagSolve, "solve", false, "Mark the path from start to goal")
}

func runPrint(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd.Flags())
	if err != nil {
		return err
	}

	g, err := maze.Generate(cfg.Maze.Size, cfg.Maze.Seed)
	if err != nil {
		return err
	}

	out := g.String()
	if flagSolve {
		path := maze.Solve(g, g.Start(), g.Goal())
		if path == nil {
			return fmt.Errorf("no path from %s to %s", g.Start(), g.Goal())
		}
		out = markPath(g, path) + "\n" + formatMoves(maze.PathDirections(path))
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// markPath renders g with every cell on path shown as '*'.
func markPath(g *maze.Grid, path []maze.Position) string {
	rows := strings.Split(g.String(), "\n")
	cells := make([][]byte, len(rows))
	for y, row := range rows {
		cells[y] = []byte(row)
	}
	for _, p := range path {
		cells[p.Y][p.X] = '*'
	}

	var sb strings.Builder
	for y, row := range cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(row)
	}
	return sb.String()
}

// formatMoves compresses runs of the same direction: D4 R2 (6).
func formatMoves(dirs []maze.Direction) string {
	if len(dirs) == 0 {
		return "moves: none (0)"
	}
	var runs []string
	for i := 0; i < len(dirs); {
		j := i
		for j < len(dirs) && dirs[j] == dirs[i] {
			j++
		}
		runs = append(runs, fmt.Sprintf("%s%d", strings.ToUpper(dirs[i].String()[:1]), j-i))
		i = j
	}
	return fmt.Sprintf("moves: %s (%d)", strings.Join(runs, " "), len(dirs))
}
