//go:build !nowindow

package window

import (
	"image"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/game"
)

// keyActions maps key names to actions. Letters arrive upper case.
var keyActions = map[key.Name]core.Action{
	key.NameUpArrow:    core.ActionUp,
	key.NameDownArrow:  core.ActionDown,
	key.NameLeftArrow:  core.ActionLeft,
	key.NameRightArrow: core.ActionRight,
	"W":                core.ActionUp,
	"S":                core.ActionDown,
	"A":                core.ActionLeft,
	"D":                core.ActionRight,
	"K":                core.ActionUp,
	"J":                core.ActionDown,
	"H":                core.ActionLeft,
	"L":                core.ActionRight,
	"Q":                core.ActionQuit,
	key.NameEscape:     core.ActionQuit,
}

// keyFilters lists every key the window listens to.
func keyFilters() []event.Filter {
	filters := make([]event.Filter, 0, len(keyActions)+1)
	for name := range keyActions {
		filters = append(filters, key.Filter{Name: name})
	}
	filters = append(filters, key.Filter{Name: "C", Required: key.ModCtrl})
	return filters
}

// mapKey translates a key press to an action.
func mapKey(e key.Event) core.Action {
	if e.State != key.Press {
		return core.ActionNone
	}
	if e.Name == "C" && e.Modifiers.Contain(key.ModCtrl) {
		return core.ActionQuit
	}
	return keyActions[e.Name]
}

// Serve runs the window event loop until the window is destroyed. It must
// run on its own goroutine while app.Main holds the main goroutine.
func (s *Surface) Serve() error {
	s.win.Option(s.windowOptions()...)

	theme := material.NewTheme()
	filters := keyFilters()
	var ops op.Ops
	for {
		switch e := s.win.Event().(type) {
		case app.DestroyEvent:
			s.markClosed()
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			for {
				ev, ok := gtx.Event(filters...)
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok {
					if gev, ok := game.EventFromAction(mapKey(ke)); ok {
						s.queue(gev)
					}
				}
			}
			paintFrame(gtx, theme, s.frame(), unit.Sp(s.opts.FontSize))
			e.Frame(gtx.Ops)
		}
	}
}

// paintFrame replays a draw list. Surface units are dp, so the maze keeps
// its size on high density displays.
func paintFrame(gtx layout.Context, theme *material.Theme, ops []drawOp, fontSize unit.Sp) {
	for _, d := range ops {
		switch d.kind {
		case opRect:
			r := clip.Rect{
				Min: image.Pt(gtx.Dp(unit.Dp(d.rect.X)), gtx.Dp(unit.Dp(d.rect.Y))),
				Max: image.Pt(gtx.Dp(unit.Dp(d.rect.Right())), gtx.Dp(unit.Dp(d.rect.Bottom()))),
			}
			paint.FillShape(gtx.Ops, d.color, r.Op())
		case opText:
			drawCentered(gtx, theme, d, fontSize)
		}
	}
}

func drawCentered(gtx layout.Context, theme *material.Theme, d drawOp, fontSize unit.Sp) {
	label := material.Label(theme, fontSize, d.text)
	label.Color = d.color

	gtx.Constraints.Min = image.Point{}
	macro := op.Record(gtx.Ops)
	dims := label.Layout(gtx)
	call := macro.Stop()

	cx, cy := gtx.Dp(unit.Dp(d.x)), gtx.Dp(unit.Dp(d.y))
	stack := op.Offset(image.Pt(cx-dims.Size.X/2, cy-dims.Size.Y/2)).Push(gtx.Ops)
	call.Add(gtx.Ops)
	stack.Pop()
}
