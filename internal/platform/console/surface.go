// Package console draws the maze straight onto the terminal through tcell
// and runs the frame loop synchronously, without an event framework.
package console

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/game"
)

// eventBuffer bounds the events held between two frames.
const eventBuffer = 64

// Surface is a game.Surface backed by a tcell screen. A goroutine pumps
// terminal events into a channel; PollEvents drains it without blocking.
type Surface struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
	once   sync.Once

	lastFrame time.Time
	now       func() time.Time
	sleep     func(time.Duration)
}

// Open initializes the controlling terminal.
func Open() (*Surface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", game.ErrSurfaceInit, err)
	}
	return New(screen)
}

// New initializes screen and starts reading its events. Tests pass a
// simulation screen.
func New(screen tcell.Screen) (*Surface, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", game.ErrSurfaceInit, err)
	}
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	s := &Surface{
		screen: screen,
		events: make(chan tcell.Event, eventBuffer),
		done:   make(chan struct{}),
		now:    time.Now,
		sleep:  time.Sleep,
	}
	go s.pump()
	return s, nil
}

func (s *Surface) pump() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

// Close restores the terminal. It is safe to call more than once.
func (s *Surface) Close() {
	s.once.Do(func() {
		close(s.done)
		s.screen.Fini()
	})
}

// PollEvents returns the events received since the last call.
func (s *Surface) PollEvents() []game.Event {
	var out []game.Event
	for {
		select {
		case ev := <-s.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if e, ok := game.EventFromAction(MapKey(ev)); ok {
					out = append(out, e)
				}
			case *tcell.EventResize:
				s.screen.Sync()
			}
		default:
			return out
		}
	}
}

// MapKey translates a terminal key event to a game action.
func MapKey(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.ActionUp
	case tcell.KeyDown:
		return core.ActionDown
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W', 'k':
			return core.ActionUp
		case 's', 'S', 'j':
			return core.ActionDown
		case 'a', 'A', 'h':
			return core.ActionLeft
		case 'd', 'D', 'l':
			return core.ActionRight
		case 'q', 'Q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}

// DrawRect fills r with the background color c.
func (s *Surface) DrawRect(r core.Rect, c core.Color) {
	style := tcell.StyleDefault.Background(tcellColor(c))
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// DrawText writes text centered on (x, y), keeping the background of the
// cells underneath.
func (s *Surface) DrawText(text string, x, y int, c core.Color) {
	runes := []rune(text)
	start := x - len(runes)/2
	fg := tcellColor(c)
	for i, r := range runes {
		_, _, under, _ := s.screen.GetContent(start+i, y)
		s.screen.SetContent(start+i, y, r, nil, under.Foreground(fg).Bold(true))
	}
}

// Present flushes the frame to the terminal.
func (s *Surface) Present() error {
	s.screen.Show()
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

func tcellColor(c core.Color) tcell.Color {
	rgb, ok := c.RGB()
	if !ok {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// Run opens the terminal, runs loop until it ends and restores the terminal.
func Run(ctx context.Context, loop *game.Loop) error {
	s, err := Open()
	if err != nil {
		return err
	}
	defer s.Close()
	return loop.Run(ctx, s)
}
