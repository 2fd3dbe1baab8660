// maze is a small maze game: guide the player from the top-left corner to
// the goal in the bottom-right corner of a randomly carved maze.
//
// Usage:
//
//	maze                     - Play in the terminal (default surface)
//	maze --surface window    - Play in a desktop window
//	maze print [--solve]     - Print the maze as text
//
// Global flags:
//
//	--config <path>  - Custom config YAML
//	--size <n>       - Maze size; the grid is (n+2) x (n+2)
//	--seed <value>   - RNG seed; the same seed always gives the same maze
//	--fps <rate>     - Frame rate (default: 60)
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSize     int
	flagSeed     int64
	flagFPS      int
	flagSurface  string
	flagSound    bool
	flagLogLevel string
	flagLogFile  string
	flagEnvFile  string
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "Maze - find the way out of a randomly carved maze",
	Long: `Maze generates a perfect maze from a seed and lets you walk it.
The player starts in the top-left corner; reach the goal in the
bottom-right corner to win.

Controls:
  Arrows / WASD / HJKL - Move
  Q / Esc / Ctrl+C     - Quit

Surfaces:
  tui      - Bubble Tea terminal UI (default)
  console  - Plain terminal drawing through tcell
  window   - Desktop window

Examples:
  maze
  maze --size 21 --seed 42
  maze --surface window --sound
  maze print --solve`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	flags.IntVar(&flagSize, "size", 7, "Maze size n (grid is (n+2) x (n+2))")
	flags.Int64Var(&flagSeed, "seed", 8, "RNG seed for maze generation")
	flags.IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	flags.StringVar(&flagSurface, "surface", "tui", "Display surface: tui, console, window")
	flags.BoolVar(&flagSound, "sound", false, "Play a chime on winning")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	flags.StringVar(&flagEnvFile, "env-file", ".env", "Load MAZE_* variables from this file if it exists")

	rootCmd.AddCommand(printCmd)
}
