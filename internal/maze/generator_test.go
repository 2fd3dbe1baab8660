package maze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-maze/internal/rng"
)

// Odd-size layouts, identical to a carve driven by CPython's random.shuffle.
var referenceLayouts = []struct {
	n      int
	seed   int64
	layout string
}{
	{7, 8, `
#########
#.#.....#
#.#.###.#
#.#.#.#.#
#.#.#.#.#
#...#...#
#####.###
#.......#
#########`},
	{9, 1, `
###########
#.#.......#
#.###.#.###
#...#.#...#
###.#####.#
#...#.....#
#.###.###.#
#.....#.#.#
#######.#.#
#.........#
###########`},
	{5, 42, `
#######
#...#.#
###.#.#
#.#...#
#.###.#
#.....#
#######`},
	{11, 2024, `
#############
#...#.......#
###.###.#####
#.#...#.....#
#.###.#.###.#
#...#.#.#...#
###.#.###.#.#
#...#.....#.#
#.#.#######.#
#.#.....#...#
#.#######.###
#...........#
#############`},
	{3, 0, `
#####
#.#.#
#.#.#
#...#
#####`},
}

func TestGenerateMatchesReferenceLayouts(t *testing.T) {
	for _, tc := range referenceLayouts {
		g, err := Generate(tc.n, tc.seed)
		require.NoError(t, err)
		assert.Equal(t, strings.TrimSpace(tc.layout), g.String(), "n=%d seed=%d", tc.n, tc.seed)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for n := 1; n <= 15; n++ {
		for _, seed := range []int64{0, 1, 8, 99, -5, 1 << 40} {
			a, err := Generate(n, seed)
			require.NoError(t, err)
			b, err := Generate(n, seed)
			require.NoError(t, err)
			require.Equal(t, a.String(), b.String(), "n=%d seed=%d", n, seed)
		}
	}
}

func TestGenerateDimensions(t *testing.T) {
	g, err := Generate(7, 8)
	require.NoError(t, err)
	assert.Equal(t, 9, g.Width())
	assert.Equal(t, 9, g.Height())
	assert.Equal(t, Position{X: 1, Y: 1}, g.Start())
	assert.Equal(t, Position{X: 7, Y: 7}, g.Goal())
}

func TestGenerateRejectsInvalidSize(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		g, err := Generate(n, 8)
		assert.ErrorIs(t, err, ErrInvalidSize)
		assert.Nil(t, g)
	}
}

// openEdges counts pairs of 4-adjacent open cells.
func openEdges(g *Grid) int {
	edges := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := Position{X: x, Y: y}
			if !g.IsOpen(p) {
				continue
			}
			if g.IsOpen(p.Step(Right)) {
				edges++
			}
			if g.IsOpen(p.Step(Down)) {
				edges++
			}
		}
	}
	return edges
}

func TestGenerateSpanningTree(t *testing.T) {
	for n := 1; n <= 21; n++ {
		for seed := int64(0); seed < 10; seed++ {
			g, err := Generate(n, seed)
			require.NoError(t, err)
			require.Equal(t, g.OpenCount()-1, openEdges(g), "n=%d seed=%d\n%s", n, seed, g)
		}
	}
}

func TestGenerateConnected(t *testing.T) {
	for n := 1; n <= 21; n++ {
		for seed := int64(0); seed < 10; seed++ {
			g, err := Generate(n, seed)
			require.NoError(t, err)

			reached := map[Position]bool{g.Start(): true}
			queue := []Position{g.Start()}
			for len(queue) > 0 {
				p := queue[0]
				queue = queue[1:]
				for _, d := range Directions {
					next := p.Step(d)
					if g.IsOpen(next) && !reached[next] {
						reached[next] = true
						queue = append(queue, next)
					}
				}
			}
			require.Equal(t, g.OpenCount(), len(reached), "n=%d seed=%d\n%s", n, seed, g)
		}
	}
}

func TestGoalReachable(t *testing.T) {
	for n := 1; n <= 30; n++ {
		g, err := Generate(n, int64(n)*31)
		require.NoError(t, err)
		require.True(t, g.IsOpen(g.Goal()), "n=%d", n)
		require.NotNil(t, Solve(g, g.Start(), g.Goal()), "n=%d\n%s", n, g)
	}
}

func TestOuterWallIntact(t *testing.T) {
	for n := 1; n <= 12; n++ {
		g, err := Generate(n, 3)
		require.NoError(t, err)
		for x := 0; x < g.Width(); x++ {
			require.Equal(t, Wall, g.At(Position{X: x, Y: 0}))
			require.Equal(t, Wall, g.At(Position{X: x, Y: g.Height() - 1}))
		}
		for y := 0; y < g.Height(); y++ {
			require.Equal(t, Wall, g.At(Position{X: 0, Y: y}))
			require.Equal(t, Wall, g.At(Position{X: g.Width() - 1, Y: y}))
		}
	}
}

func TestDegenerateSizes(t *testing.T) {
	g, err := Generate(1, 8)
	require.NoError(t, err)
	assert.Equal(t, "###\n#.#\n###", g.String())
	assert.Equal(t, g.Start(), g.Goal())

	g, err = Generate(2, 8)
	require.NoError(t, err)
	assert.Equal(t, "####\n#.##\n#..#\n####", g.String())
}

// carveRecursive is the textbook recursive backtracker. It must consume the
// shuffle source in the same order as the stack-based carve.
func carveRecursive(g *Grid, at Position, s Shuffler) {
	g.set(at, Open)
	dirs := carveOffsets
	s.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
	for _, d := range dirs {
		to := Position{X: at.X + d.X, Y: at.Y + d.Y}
		if g.carvable(to) && g.At(to) == Wall {
			g.set(Position{X: at.X + d.X/2, Y: at.Y + d.Y/2}, Open)
			carveRecursive(g, to, s)
		}
	}
}

func TestStackCarveMatchesRecursion(t *testing.T) {
	for _, n := range []int{1, 3, 5, 7, 9, 15, 25} {
		for seed := int64(0); seed < 5; seed++ {
			want := newGrid(n+2, n+2)
			carveRecursive(want, want.Start(), rng.New(seed))

			got := newGrid(n+2, n+2)
			carve(got, got.Start(), rng.New(seed))

			require.Equal(t, want.String(), got.String(), "n=%d seed=%d", n, seed)
		}
	}
}

func TestGenerateLargeMaze(t *testing.T) {
	g, err := Generate(401, 8)
	require.NoError(t, err)
	assert.Equal(t, g.OpenCount()-1, openEdges(g))
}
