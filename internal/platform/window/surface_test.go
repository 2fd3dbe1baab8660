//go:build !nowindow

package window

import (
	"image"
	"image/color"
	"testing"
	"time"

	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/game"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

// newTestSurface builds a surface without a native window.
func newTestSurface() *Surface {
	return &Surface{now: time.Now, sleep: func(time.Duration) {}}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name string
		ev   key.Event
		want core.Action
	}{
		{"up arrow", key.Event{Name: key.NameUpArrow, State: key.Press}, core.ActionUp},
		{"down arrow", key.Event{Name: key.NameDownArrow, State: key.Press}, core.ActionDown},
		{"left arrow", key.Event{Name: key.NameLeftArrow, State: key.Press}, core.ActionLeft},
		{"right arrow", key.Event{Name: key.NameRightArrow, State: key.Press}, core.ActionRight},
		{"w", key.Event{Name: "W", State: key.Press}, core.ActionUp},
		{"h", key.Event{Name: "H", State: key.Press}, core.ActionLeft},
		{"escape", key.Event{Name: key.NameEscape, State: key.Press}, core.ActionQuit},
		{"q", key.Event{Name: "Q", State: key.Press}, core.ActionQuit},
		{"ctrl+c", key.Event{Name: "C", Modifiers: key.ModCtrl, State: key.Press}, core.ActionQuit},
		{"plain c", key.Event{Name: "C", State: key.Press}, core.ActionNone},
		{"release", key.Event{Name: key.NameUpArrow, State: key.Release}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, mapKey(tc.ev))
		})
	}
}

func TestKeyFiltersCoverEveryBinding(t *testing.T) {
	assert.Len(t, keyFilters(), len(keyActions)+1)
}

func TestPresentPublishesFrame(t *testing.T) {
	s := newTestSurface()

	s.DrawRect(core.NewRect(0, 0, 40, 40), core.ColorWhite)
	s.DrawText("You Win!", 180, 180, core.ColorGreen)
	assert.Empty(t, s.frame(), "frame visible before Present")

	require.NoError(t, s.Present())
	shown := s.frame()
	require.Len(t, shown, 2)
	assert.Equal(t, opRect, shown[0].kind)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, shown[0].color)
	assert.Equal(t, opText, shown[1].kind)
	assert.Equal(t, "You Win!", shown[1].text)

	// The next frame starts empty
	s.DrawRect(core.NewRect(40, 0, 40, 40), core.ColorGold)
	require.NoError(t, s.Present())
	shown = s.frame()
	require.Len(t, shown, 1)
	assert.Equal(t, color.NRGBA{R: 255, G: 215, B: 0, A: 255}, shown[0].color)
}

func TestPollEventsAfterClose(t *testing.T) {
	s := newTestSurface()
	s.queue(game.MoveEvent(maze.Down))
	s.markClosed()

	assert.Equal(t, []game.Event{game.MoveEvent(maze.Down)}, s.PollEvents())
	assert.Equal(t, []game.Event{game.QuitEvent()}, s.PollEvents())
	assert.Equal(t, []game.Event{game.QuitEvent()}, s.PollEvents())
}

func TestLoopStopsWhenWindowCloses(t *testing.T) {
	s := newTestSurface()
	cfg := core.DefaultConfig()
	cfg.CellW, cfg.CellH = 40, 40
	g, err := maze.Generate(cfg.GridSize, cfg.Seed)
	require.NoError(t, err)
	loop := game.NewLoop(game.NewState(g), cfg)

	s.queue(game.MoveEvent(maze.Down))
	_, err = loop.Frame(s)
	require.NoError(t, err)
	assert.Equal(t, 1, loop.State().Moves())

	s.markClosed()
	quit, err := loop.Frame(s)
	require.NoError(t, err)
	assert.True(t, quit)
}

func TestThrottle(t *testing.T) {
	s := newTestSurface()
	clock := time.Unix(0, 0)
	var slept []time.Duration
	s.now = func() time.Time { return clock }
	s.sleep = func(d time.Duration) { slept = append(slept, d) }

	s.Throttle(60)
	clock = clock.Add(10 * time.Millisecond)
	s.Throttle(60)

	require.Len(t, slept, 1)
	assert.InDelta(t, float64(time.Second/60-10*time.Millisecond), float64(slept[0]), float64(time.Microsecond))
}

func TestPaintFrameHeadless(t *testing.T) {
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Exact(image.Pt(360, 360)),
		Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
	}
	ops := []drawOp{
		{kind: opRect, rect: core.NewRect(0, 0, 40, 40), color: nrgba(core.ColorWhite)},
		{kind: opText, text: "You Win!", x: 180, y: 180, color: nrgba(core.ColorGreen)},
	}

	assert.NotPanics(t, func() {
		paintFrame(gtx, material.NewTheme(), ops, unit.Sp(48))
	})
}

func TestNRGBADefaultsToOpaqueBlack(t *testing.T) {
	assert.Equal(t, color.NRGBA{A: 255}, nrgba(core.ColorDefault))
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, nrgba(core.ColorRed))
}
