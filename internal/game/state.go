// Package game holds the maze game state and the frame loop that drives it
// against a display surface. Nothing here imports a terminal or window
// library, so the update rules are testable on their own.
package game

import (
	"github.com/vovakirdan/tui-maze/internal/maze"
)

// Phase is the game's position in its two-state lifecycle.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseWon
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// State is the mutable part of a game: where the player stands and whether
// the goal was reached. The grid it points to is never modified.
type State struct {
	grid   *maze.Grid
	player maze.Position
	goal   maze.Position
	won    bool
	moves  int
}

// NewState places the player on the start cell and the goal in the
// bottom-right interior corner. When the two coincide the game starts won.
func NewState(g *maze.Grid) *State {
	s := &State{
		grid:   g,
		player: g.Start(),
		goal:   g.Goal(),
	}
	s.checkWin()
	return s
}

// AttemptMove moves the player one cell in dir if that cell is inside the
// grid and open. Blocked moves and moves after a win change nothing.
// It reports whether the player moved.
func (s *State) AttemptMove(dir maze.Direction) bool {
	if s.won {
		return false
	}

	next := s.player.Step(dir)
	if !s.grid.InBounds(next) || !s.grid.IsOpen(next) {
		return false
	}

	s.player = next
	s.moves++
	s.checkWin()
	return true
}

func (s *State) checkWin() {
	if s.player == s.goal {
		s.won = true
	}
}

// Grid returns the maze being played.
func (s *State) Grid() *maze.Grid {
	return s.grid
}

// Player returns the player's position.
func (s *State) Player() maze.Position {
	return s.player
}

// Goal returns the goal position.
func (s *State) Goal() maze.Position {
	return s.goal
}

// Won reports whether the player has reached the goal.
func (s *State) Won() bool {
	return s.won
}

// Phase returns PhaseWon once the goal is reached, PhasePlaying before.
func (s *State) Phase() Phase {
	if s.won {
		return PhaseWon
	}
	return PhasePlaying
}

// Moves returns the number of accepted moves.
func (s *State) Moves() int {
	return s.moves
}
