//go:build nowindow

package main

import (
	"context"
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/game"
)

func runWindow(_ context.Context, _ *session) error {
	return fmt.Errorf("%w: built without window support (nowindow tag)", game.ErrSurfaceInit)
}
