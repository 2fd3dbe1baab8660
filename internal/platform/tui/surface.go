package tui

import (
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/game"
)

// Surface adapts a character screen buffer to game.Surface. Key messages
// queue actions; the loop collects them with PollEvents on the next tick.
type Surface struct {
	screen *core.Screen
	input  core.InputFrame
	frame  string
	fps    int
}

// NewSurface creates a surface of width x height characters.
func NewSurface(width, height int) *Surface {
	return &Surface{
		screen: core.NewScreen(width, height),
		input:  core.NewInputFrame(),
	}
}

// Queue records an action for the next frame.
func (s *Surface) Queue(a core.Action) {
	s.input.Push(a)
}

// PollEvents returns queued actions as events in arrival order.
func (s *Surface) PollEvents() []game.Event {
	actions := s.input.Drain()
	if len(actions) == 0 {
		return nil
	}
	events := make([]game.Event, 0, len(actions))
	for _, a := range actions {
		if ev, ok := game.EventFromAction(a); ok {
			events = append(events, ev)
		}
	}
	return events
}

// DrawRect fills r with solid blocks.
func (s *Surface) DrawRect(r core.Rect, c core.Color) {
	s.screen.DrawRect(r, core.BlockRune, c)
}

// DrawText writes text centered on (x, y).
func (s *Surface) DrawText(text string, x, y int, c core.Color) {
	s.screen.DrawTextCentered(x, y, text, c)
}

// Present renders the buffer to the string shown by View.
func (s *Surface) Present() error {
	s.frame = RenderScreen(s.screen)
	return nil
}

// Throttle records the frame rate. Bubble Tea owns the clock, so the model
// schedules the next tick at this rate instead of sleeping.
func (s *Surface) Throttle(fps int) {
	s.fps = fps
}

// Frame returns the last presented frame.
func (s *Surface) Frame() string {
	return s.frame
}

// Screen returns the underlying buffer.
func (s *Surface) Screen() *core.Screen {
	return s.screen
}
