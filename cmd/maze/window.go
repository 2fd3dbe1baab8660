//go:build !nowindow

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/vovakirdan/tui-maze/internal/platform/window"
)

// runWindow hands the process to the window toolkit. It does not return:
// the process exits when the game loop ends.
func runWindow(ctx context.Context, s *session) error {
	w, h := s.runtime.SurfaceSize()
	opts := window.Options{
		Title:    s.cfg.Window.Title,
		Width:    w,
		Height:   h,
		FontSize: s.cfg.Window.FontSize,
	}

	window.Run(ctx, s.loop, opts, func(err error) {
		code := 0
		if err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Error("game ended with error", "error", err)
			fmt.Fprintln(os.Stderr, "Error:", err)
			code = 1
		}
		s.close()
		os.Exit(code)
	})
	return nil
}
