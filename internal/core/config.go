package core

// RuntimeConfig contains the resolved settings for one run.
// It is built once at startup and passed to the generator and the loop.
type RuntimeConfig struct {
	GridSize int   // Maze size n; the grid is (n+2) x (n+2)
	Seed     int64 // RNG seed for maze generation
	TickRate int   // Loop iterations per second (default 60)
	CellW    int   // Surface units per grid cell, horizontally
	CellH    int   // Surface units per grid cell, vertically
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		GridSize: 7,
		Seed:     8,
		TickRate: 60,
		CellW:    2,
		CellH:    1,
	}
}

// GridDims returns the grid width and height in cells.
func (c RuntimeConfig) GridDims() (int, int) {
	return c.GridSize + 2, c.GridSize + 2
}

// SurfaceSize returns the drawable area in surface units needed to show the
// whole grid.
func (c RuntimeConfig) SurfaceSize() (int, int) {
	w, h := c.GridDims()
	return w * c.CellW, h * c.CellH
}
