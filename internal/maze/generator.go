package maze

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/rng"
)

// ErrInvalidSize is returned when the requested maze size is below 1.
var ErrInvalidSize = errors.New("maze: invalid size")

// Shuffler permutes n elements through swap. The shuffle is the only source
// of randomness during generation.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// carveOffsets is the unshuffled neighbor order as (dx, dy). Keeping this
// order fixed is what makes layouts reproducible for a given seed.
var carveOffsets = [4]Position{{X: 0, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: -2}, {X: -2, Y: 0}}

// Generate builds an (n+2) x (n+2) perfect maze from seed. The same n and
// seed always give the same grid.
func Generate(n int, seed int64) (*Grid, error) {
	return GenerateWith(n, rng.New(seed))
}

// GenerateWith builds a maze drawing every neighbor ordering from s.
func GenerateWith(n int, s Shuffler) (*Grid, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}

	g := newGrid(n+2, n+2)
	carve(g, g.Start(), s)

	// With an even n the goal sits on a lattice post that carving never
	// touches; link it to the lattice cell above-left through one spur.
	goal := g.Goal()
	if n%2 == 0 {
		g.set(Position{X: goal.X - 1, Y: goal.Y}, Open)
	}
	g.set(goal, Open)

	return g, nil
}

// carveFrame is one level of the depth-first walk: the cell, its shuffled
// offsets and how many of them were already tried.
type carveFrame struct {
	at   Position
	dirs [4]Position
	next int
}

func newCarveFrame(at Position, s Shuffler) carveFrame {
	f := carveFrame{at: at, dirs: carveOffsets}
	s.Shuffle(len(f.dirs), func(i, j int) {
		f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i]
	})
	return f
}

// carve runs the randomized backtracker from start with an explicit stack.
// Each cell is shuffled right after it is opened, so the shuffle calls happen
// in the same order as in the recursive formulation.
func carve(g *Grid, start Position, s Shuffler) {
	g.set(start, Open)
	stack := []carveFrame{newCarveFrame(start, s)}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}

		d := top.dirs[top.next]
		top.next++

		from := top.at
		to := Position{X: from.X + d.X, Y: from.Y + d.Y}
		if !g.carvable(to) || g.At(to) != Wall {
			continue
		}

		g.set(Position{X: from.X + d.X/2, Y: from.Y + d.Y/2}, Open)
		g.set(to, Open)
		stack = append(stack, newCarveFrame(to, s))
	}
}

// carvable reports whether p is inside the outer wall ring.
func (g *Grid) carvable(p Position) bool {
	return p.X >= 1 && p.X <= g.width-2 && p.Y >= 1 && p.Y <= g.height-2
}
