// Package config provides YAML-based configuration loading for the maze game,
// with environment overrides and validation.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// Surface names accepted in configuration.
const (
	SurfaceTUI     = "tui"
	SurfaceConsole = "console"
	SurfaceWindow  = "window"
)

// MinGridSize is the smallest maze size where start and goal are distinct.
const MinGridSize = 2

// ErrInvalidConfiguration is wrapped by every validation failure.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Config contains all configuration for the maze game.
type Config struct {
	Maze     MazeConfig     `yaml:"maze"`
	Loop     LoopConfig     `yaml:"loop"`
	Surface  string         `yaml:"surface"`
	Terminal TerminalConfig `yaml:"terminal"`
	Window   WindowConfig   `yaml:"window"`
	Theme    ThemeConfig    `yaml:"theme"`
	Sound    bool           `yaml:"sound"`
	Log      LogConfig      `yaml:"log"`
}

// MazeConfig defines generation parameters.
type MazeConfig struct {
	Size int   `yaml:"size"` // Interior size n; the grid is (n+2) x (n+2)
	Seed int64 `yaml:"seed"`
}

// LoopConfig defines frame loop parameters.
type LoopConfig struct {
	FPS int `yaml:"fps"`
}

// TerminalConfig defines how many characters one grid cell covers on
// terminal surfaces.
type TerminalConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// WindowConfig defines the graphical window surface.
type WindowConfig struct {
	CellSize int    `yaml:"cell_size"` // Pixels per grid cell
	Title    string `yaml:"title"`
	FontSize int    `yaml:"font_size"`
}

// ThemeConfig defines colors and the win banner.
type ThemeConfig struct {
	Wall    core.Color `yaml:"wall"`
	Open    core.Color `yaml:"open"`
	Goal    core.Color `yaml:"goal"`
	Player  core.Color `yaml:"player"`
	Text    core.Color `yaml:"text"`
	WinText string     `yaml:"win_text"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ValidationError describes one invalid setting.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap lets callers match any validation failure with errors.Is.
func (e ValidationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// Validate checks the configuration before anything is generated or drawn.
// All problems are reported together.
func (c Config) Validate() error {
	var errs []error

	if c.Maze.Size < MinGridSize {
		errs = append(errs, ValidationError{
			Field:   "maze.size",
			Message: fmt.Sprintf("must be at least %d to keep start and goal apart, got %d", MinGridSize, c.Maze.Size),
		})
	}
	if c.Loop.FPS < 1 {
		errs = append(errs, ValidationError{Field: "loop.fps", Message: fmt.Sprintf("must be positive, got %d", c.Loop.FPS)})
	}

	switch c.Surface {
	case SurfaceTUI, SurfaceConsole, SurfaceWindow:
	default:
		errs = append(errs, ValidationError{
			Field:   "surface",
			Message: fmt.Sprintf("unknown surface %q (want %s, %s or %s)", c.Surface, SurfaceTUI, SurfaceConsole, SurfaceWindow),
		})
	}

	if c.Terminal.CellWidth < 1 || c.Terminal.CellHeight < 1 {
		errs = append(errs, ValidationError{
			Field:   "terminal",
			Message: fmt.Sprintf("cell size must be positive, got %dx%d", c.Terminal.CellWidth, c.Terminal.CellHeight),
		})
	}
	if c.Window.CellSize < 1 {
		errs = append(errs, ValidationError{Field: "window.cell_size", Message: fmt.Sprintf("must be positive, got %d", c.Window.CellSize)})
	}

	for _, tc := range []struct {
		field string
		color core.Color
	}{
		{"theme.wall", c.Theme.Wall},
		{"theme.open", c.Theme.Open},
		{"theme.goal", c.Theme.Goal},
		{"theme.player", c.Theme.Player},
		{"theme.text", c.Theme.Text},
	} {
		if !tc.color.Valid() {
			errs = append(errs, ValidationError{Field: tc.field, Message: fmt.Sprintf("unknown color %s", tc.color)})
		}
	}

	return errors.Join(errs...)
}

// Runtime resolves the settings the generator and loop need for the
// configured surface.
func (c Config) Runtime() core.RuntimeConfig {
	rc := core.RuntimeConfig{
		GridSize: c.Maze.Size,
		Seed:     c.Maze.Seed,
		TickRate: c.Loop.FPS,
		CellW:    c.Terminal.CellWidth,
		CellH:    c.Terminal.CellHeight,
	}
	if c.Surface == SurfaceWindow {
		rc.CellW = c.Window.CellSize
		rc.CellH = c.Window.CellSize
	}
	return rc
}
