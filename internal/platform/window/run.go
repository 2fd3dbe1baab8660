//go:build !nowindow

package window

import (
	"context"

	"gioui.org/app"

	"github.com/vovakirdan/tui-maze/internal/game"
)

// Run opens the window and plays loop in it. It takes over the calling
// goroutine, which must be the main one, and never returns: done receives
// the loop's result and is expected to exit the process.
func Run(ctx context.Context, loop *game.Loop, opts Options, done func(error)) {
	s := New(opts)

	go func() {
		// A window error ends the loop through the quit event it leaves
		// behind; the loop result is what gets reported.
		_ = s.Serve()
	}()

	go func() {
		err := loop.Run(ctx, s)
		s.Close()
		done(err)
	}()

	app.Main()
}
