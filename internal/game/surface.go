package game

import (
	"errors"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

// ErrSurfaceInit is wrapped by surfaces that fail to start. It is fatal.
var ErrSurfaceInit = errors.New("surface initialization failed")

// EventKind distinguishes input events.
type EventKind int

const (
	EventQuit EventKind = iota
	EventMove
)

// Event is one discrete input delivered by a surface.
type Event struct {
	Kind EventKind
	Dir  maze.Direction // Set for EventMove
}

// QuitEvent returns a quit request.
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

// MoveEvent returns a directional key press.
func MoveEvent(d maze.Direction) Event {
	return Event{Kind: EventMove, Dir: d}
}

// EventFromAction converts a platform action into an event.
// ok is false for actions that carry no game meaning.
func EventFromAction(a core.Action) (Event, bool) {
	switch a {
	case core.ActionUp:
		return MoveEvent(maze.Up), true
	case core.ActionDown:
		return MoveEvent(maze.Down), true
	case core.ActionLeft:
		return MoveEvent(maze.Left), true
	case core.ActionRight:
		return MoveEvent(maze.Right), true
	case core.ActionQuit:
		return QuitEvent(), true
	default:
		return Event{}, false
	}
}

// Surface is the display and input device the loop draws on.
//
// Coordinates are in surface units: characters for terminals, pixels for
// windows. PollEvents returns everything received since the previous call
// and never blocks for long. DrawText centers text on (x, y).
type Surface interface {
	PollEvents() []Event
	DrawRect(r core.Rect, c core.Color)
	DrawText(text string, x, y int, c core.Color)
	Present() error
	Throttle(fps int)
}
