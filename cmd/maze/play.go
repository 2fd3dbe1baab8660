package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-maze/internal/audio"
	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/game"
	"github.com/vovakirdan/tui-maze/internal/logging"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/platform/console"
	"github.com/vovakirdan/tui-maze/internal/platform/tui"
)

// session holds everything one game needs and the cleanups to run after it.
type session struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	logger  *log.Logger
	loop    *game.Loop
	closers []func()
}

func (s *session) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd.Flags())
	if err != nil {
		return err
	}

	s, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer s.close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Surface {
	case config.SurfaceTUI:
		warnIfTooSmall(s.runtime, 2)
		err = tui.Run(ctx, s.loop, s.runtime)
	case config.SurfaceConsole:
		warnIfTooSmall(s.runtime, 0)
		err = console.Run(ctx, s.loop)
	case config.SurfaceWindow:
		err = runWindow(ctx, s)
	default:
		err = fmt.Errorf("%w: unknown surface %q", config.ErrInvalidConfiguration, cfg.Surface)
	}

	state := s.loop.State()
	s.logger.Info("game over", "frames", s.loop.Frames(), "moves", state.Moves(), "won", state.Won())

	if errors.Is(err, context.Canceled) {
		s.logger.Info("interrupted")
		return nil
	}
	if err != nil {
		s.logger.Error("game ended with error", "error", err)
		return err
	}
	return nil
}

// newSession generates the maze and wires logging, audio and the loop.
func newSession(cfg config.Config) (*session, error) {
	s := &session{cfg: cfg, runtime: cfg.Runtime()}

	logger, err := openLogger(s)
	if err != nil {
		return nil, err
	}
	s.logger = logger

	grid, err := maze.Generate(cfg.Maze.Size, cfg.Maze.Seed)
	if err != nil {
		s.close()
		return nil, err
	}
	logger.Info("maze generated",
		"size", cfg.Maze.Size,
		"seed", cfg.Maze.Seed,
		"open", grid.OpenCount(),
		"surface", cfg.Surface,
	)

	opts := []game.Option{
		game.WithLogger(logger),
		game.WithTheme(game.Theme{
			Wall:    cfg.Theme.Wall,
			Open:    cfg.Theme.Open,
			Goal:    cfg.Theme.Goal,
			Player:  cfg.Theme.Player,
			Text:    cfg.Theme.Text,
			WinText: cfg.Theme.WinText,
		}),
	}

	if cfg.Sound {
		player := audio.NewPlayer()
		if err := player.Init(); err != nil {
			// The game is fully playable without sound
			logger.Warn("audio unavailable", "error", err)
		} else {
			s.closers = append(s.closers, player.Close)
			opts = append(opts, game.OnWin(player.PlayWin))
		}
	}

	s.loop = game.NewLoop(game.NewState(grid), s.runtime, opts...)
	return s, nil
}

// openLogger picks the log destination. Terminal surfaces own the screen,
// so without a log file their logs are dropped.
func openLogger(s *session) (*log.Logger, error) {
	var w io.Writer = io.Discard
	switch {
	case s.cfg.Log.File != "":
		f, err := logging.OpenFile(s.cfg.Log.File)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, func() { _ = f.Close() })
		w = f
	case s.cfg.Surface == config.SurfaceWindow:
		w = os.Stderr
	}
	return logging.New(w, s.cfg.Log.Level)
}

// warnIfTooSmall prints a note when the terminal cannot show the whole
// maze plus extra lines of chrome.
func warnIfTooSmall(rc core.RuntimeConfig, extra int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return
	}
	w, h := rc.SurfaceSize()
	if width < w || height < h+extra {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the maze needs %dx%d\n", width, height, w, h+extra)
	}
}
