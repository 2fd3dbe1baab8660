package maze

// Solve returns the shortest open path from one cell to another, both ends
// included. It returns nil when either end is closed or no path exists.
func Solve(g *Grid, from, to Position) []Position {
	if !g.IsOpen(from) || !g.IsOpen(to) {
		return nil
	}

	queue := []Position{from}
	cameFrom := map[Position]Position{}
	visited := map[Position]bool{from: true}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == to {
			path := []Position{curr}
			for curr != from {
				curr = cameFrom[curr]
				path = append(path, curr)
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, d := range Directions {
			next := curr.Step(d)
			if g.IsOpen(next) && !visited[next] {
				visited[next] = true
				cameFrom[next] = curr
				queue = append(queue, next)
			}
		}
	}
	return nil
}

// PathDirections converts consecutive path cells into the moves between them.
func PathDirections(path []Position) []Direction {
	if len(path) < 2 {
		return nil
	}

	moves := make([]Direction, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		prev, curr := path[i-1], path[i]
		for _, d := range Directions {
			if prev.Step(d) == curr {
				moves = append(moves, d)
				break
			}
		}
	}
	return moves
}
