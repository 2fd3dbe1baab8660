package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-maze/internal/core"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultConfig returns the default maze configuration.
func DefaultConfig() Config {
	return Config{
		Maze: MazeConfig{
			Size: 7,
			Seed: 8,
		},
		Loop: LoopConfig{
			FPS: 60,
		},
		Surface: SurfaceTUI,
		Terminal: TerminalConfig{
			CellWidth:  2,
			CellHeight: 1,
		},
		Window: WindowConfig{
			CellSize: 40,
			Title:    "Maze Game: Mouse and Cheese",
			FontSize: 48,
		},
		Theme: ThemeConfig{
			Wall:    core.ColorWhite,
			Open:    core.ColorBlack,
			Goal:    core.ColorGold,
			Player:  core.ColorRed,
			Text:    core.ColorGreen,
			WinText: "You Win!",
		},
		Sound: false,
		Log: LogConfig{
			Level: "info",
		},
	}
}
