package runner

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Steer picks a heading for the next move: among moves that do not crash
// right away it prefers those leaving at least a body's length of open
// space, then the one closest to the food. With no safe move it keeps the
// current heading.
func Steer(snap snake.Snapshot) snake.Direction {
	if len(snap.Body) == 0 {
		return snap.Heading
	}
	head := snap.Head()
	blocked := bodyCells(snap)

	best := snap.Heading
	bestRoomy := false
	bestDist := -1

	for _, d := range []snake.Direction{snake.DirUp, snake.DirRight, snake.DirDown, snake.DirLeft} {
		if len(snap.Body) > 1 && d == snap.Heading.Opposite() {
			continue
		}
		next := head.Move(d)
		if !snake.InBounds(next, snap.GridSize) || blocked[next] {
			continue
		}

		roomy := openArea(next, blocked, snap.GridSize, len(snap.Body)) >= len(snap.Body)
		dist := manhattan(next, snap.Food.Pos)
		if bestDist < 0 || (roomy && !bestRoomy) || (roomy == bestRoomy && dist < bestDist) {
			best, bestRoomy, bestDist = d, roomy, dist
		}
	}
	return best
}

// bodyCells returns the cells the snake occupies. The tail counts: a head
// moving onto it crashes.
func bodyCells(snap snake.Snapshot) map[snake.Point]bool {
	blocked := make(map[snake.Point]bool, len(snap.Body))
	for _, p := range snap.Body {
		blocked[p] = true
	}
	return blocked
}

// openArea counts free cells reachable from start, stopping once limit is
// reached.
func openArea(start snake.Point, blocked map[snake.Point]bool, size, limit int) int {
	seen := map[snake.Point]bool{start: true}
	queue := []snake.Point{start}
	for len(queue) > 0 && len(seen) < limit {
		p := queue[0]
		queue = queue[1:]
		for _, d := range []snake.Direction{snake.DirUp, snake.DirRight, snake.DirDown, snake.DirLeft} {
			n := p.Move(d)
			if !snake.InBounds(n, size) || blocked[n] || seen[n] {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return len(seen)
}

func manhattan(a, b snake.Point) int {
	return core.Abs(a.X-b.X) + core.Abs(a.Y-b.Y)
}
