package game

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

// Theme holds the colors used for each kind of cell and the win banner.
type Theme struct {
	Wall    core.Color
	Open    core.Color
	Goal    core.Color
	Player  core.Color
	Text    core.Color
	WinText string
}

// DefaultTheme mirrors the classic look: white walls on black, a gold goal
// and a red player.
func DefaultTheme() Theme {
	return Theme{
		Wall:    core.ColorWhite,
		Open:    core.ColorBlack,
		Goal:    core.ColorGold,
		Player:  core.ColorRed,
		Text:    core.ColorGreen,
		WinText: "You Win!",
	}
}

// Loop runs poll, update and draw against a Surface, one frame at a time.
// A Loop and its State belong to a single goroutine.
type Loop struct {
	state     *State
	cfg       core.RuntimeConfig
	theme     Theme
	logger    *log.Logger
	onWin     []func()
	announced bool
	frames    uint64
}

// Option configures a Loop.
type Option func(*Loop)

// WithTheme sets the drawing colors.
func WithTheme(t Theme) Option {
	return func(l *Loop) {
		l.theme = t
	}
}

// WithLogger sets the logger for loop events.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// OnWin registers a callback run once, on the frame the goal is reached.
func OnWin(fn func()) Option {
	return func(l *Loop) {
		l.onWin = append(l.onWin, fn)
	}
}

// NewLoop creates a loop over state. cfg supplies the frame rate and the
// cell size in surface units.
func NewLoop(state *State, cfg core.RuntimeConfig, opts ...Option) *Loop {
	l := &Loop{
		state:  state,
		cfg:    cfg,
		theme:  DefaultTheme(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// State returns the game state driven by the loop.
func (l *Loop) State() *State {
	return l.state
}

// Frames returns the number of frames presented so far.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Frame runs one iteration: apply pending events in order, draw, present,
// then wait out the rest of the frame. It returns true when a quit event
// was received; nothing is drawn on that frame.
func (l *Loop) Frame(s Surface) (quit bool, err error) {
	for _, ev := range s.PollEvents() {
		switch ev.Kind {
		case EventQuit:
			l.logger.Debug("quit requested", "frame", l.frames)
			return true, nil
		case EventMove:
			l.move(ev.Dir)
		}
	}

	if l.state.Won() && !l.announced {
		l.announced = true
		l.logger.Info("goal reached", "moves", l.state.Moves(), "frame", l.frames)
		for _, fn := range l.onWin {
			fn()
		}
	}

	l.Draw(s)
	if err := s.Present(); err != nil {
		return false, fmt.Errorf("present frame %d: %w", l.frames, err)
	}
	l.frames++

	s.Throttle(l.cfg.TickRate)
	return false, nil
}

// Run repeats Frame until a quit event, a surface error or ctx is done.
func (l *Loop) Run(ctx context.Context, s Surface) error {
	gw, gh := l.cfg.GridDims()
	l.logger.Info("loop started", "grid", fmt.Sprintf("%dx%d", gw, gh), "seed", l.cfg.Seed, "fps", l.cfg.TickRate)

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("loop interrupted", "frames", l.frames)
			return ctx.Err()
		default:
		}

		quit, err := l.Frame(s)
		if err != nil {
			return err
		}
		if quit {
			l.logger.Info("loop finished", "frames", l.frames, "won", l.state.Won())
			return nil
		}
	}
}

func (l *Loop) move(d maze.Direction) {
	if l.state.AttemptMove(d) {
		l.logger.Debug("moved", "dir", d, "to", l.state.Player())
		return
	}
	l.logger.Debug("move ignored", "dir", d, "at", l.state.Player(), "won", l.state.Won())
}

// Draw paints the grid, then the goal, then the player, then the win banner
// when the game is over.
func (l *Loop) Draw(s Surface) {
	grid := l.state.Grid()
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			c := l.theme.Open
			if grid.At(maze.Position{X: x, Y: y}) == maze.Wall {
				c = l.theme.Wall
			}
			s.DrawRect(l.cellRect(maze.Position{X: x, Y: y}), c)
		}
	}

	s.DrawRect(l.cellRect(l.state.Goal()), l.theme.Goal)
	s.DrawRect(l.cellRect(l.state.Player()), l.theme.Player)

	if l.state.Won() {
		w, h := l.cfg.SurfaceSize()
		s.DrawText(l.theme.WinText, w/2, h/2, l.theme.Text)
	}
}

func (l *Loop) cellRect(p maze.Position) core.Rect {
	return core.CellRect(p.X, p.Y, l.cfg.CellW, l.cfg.CellH)
}
