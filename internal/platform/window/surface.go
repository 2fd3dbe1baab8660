//go:build !nowindow

// Package window shows the maze in a native desktop window using Gio.
//
// Gio requires its event loop to own a goroutine and app.Main to own the
// main goroutine, so the game loop runs on a third goroutine. The two sides
// meet in Surface: the game loop appends draw operations and publishes them
// on Present; the window goroutine paints the last published list and
// queues key presses for the next PollEvents.
package window

import (
	"image/color"
	"sync"
	"time"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/unit"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/game"
)

// Options sizes and labels the window.
type Options struct {
	Title    string
	Width    int // Surface units (dp)
	Height   int
	FontSize int // Win text size (sp)
}

type opKind int

const (
	opRect opKind = iota
	opText
)

// drawOp is one recorded draw call.
type drawOp struct {
	kind  opKind
	rect  core.Rect
	text  string
	x, y  int
	color color.NRGBA
}

// Surface is a game.Surface backed by a Gio window.
type Surface struct {
	win  *app.Window
	opts Options

	mu      sync.Mutex
	pending []game.Event
	shown   []drawOp
	closed  bool

	// Owned by the game loop goroutine
	building  []drawOp
	lastFrame time.Time
	now       func() time.Time
	sleep     func(time.Duration)
}

// New creates the window surface. The window appears once Serve runs.
func New(opts Options) *Surface {
	return &Surface{
		win:   new(app.Window),
		opts:  opts,
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// PollEvents returns the key presses received since the previous call.
// After the window is closed it keeps returning a quit event.
func (s *Surface) PollEvents() []game.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed && len(s.pending) == 0 {
		return []game.Event{game.QuitEvent()}
	}
	events := s.pending
	s.pending = nil
	return events
}

func (s *Surface) queue(ev game.Event) {
	s.mu.Lock()
	s.pending = append(s.pending, ev)
	s.mu.Unlock()
}

// DrawRect records a filled rectangle.
func (s *Surface) DrawRect(r core.Rect, c core.Color) {
	s.building = append(s.building, drawOp{kind: opRect, rect: r, color: nrgba(c)})
}

// DrawText records text centered on (x, y).
func (s *Surface) DrawText(text string, x, y int, c core.Color) {
	s.building = append(s.building, drawOp{kind: opText, text: text, x: x, y: y, color: nrgba(c)})
}

// Present publishes the recorded frame and asks the window to repaint.
func (s *Surface) Present() error {
	s.mu.Lock()
	s.shown, s.building = s.building, s.shown[:0]
	closed := s.closed
	s.mu.Unlock()

	if !closed && s.win != nil {
		s.win.Invalidate()
	}
	return nil
}

// Throttle sleeps until a full frame period has passed since the previous
// call.
func (s *Surface) Throttle(fps int) {
	if fps < 1 {
		fps = 1
	}
	period := time.Second / time.Duration(fps)
	now := s.now()
	if !s.lastFrame.IsZero() {
		if wait := period - now.Sub(s.lastFrame); wait > 0 {
			s.sleep(wait)
			now = now.Add(wait)
		}
	}
	s.lastFrame = now
}

// Close asks the window to shut down. Serve returns once it has.
func (s *Surface) Close() {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if !closed {
		s.win.Perform(system.ActionClose)
	}
}

func (s *Surface) markClosed() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// frame returns the most recently presented draw list.
func (s *Surface) frame() []drawOp {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]drawOp, len(s.shown))
	copy(out, s.shown)
	return out
}

func (s *Surface) windowOptions() []app.Option {
	return []app.Option{
		app.Title(s.opts.Title),
		app.Size(unit.Dp(s.opts.Width), unit.Dp(s.opts.Height)),
		app.MinSize(unit.Dp(s.opts.Width), unit.Dp(s.opts.Height)),
	}
}

func nrgba(c core.Color) color.NRGBA {
	rgb, ok := c.RGB()
	if !ok {
		return color.NRGBA{A: 255}
	}
	return color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}
