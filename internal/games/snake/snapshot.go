package snake

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Snapshot captures the complete game state for presentation, watchers and
// determinism testing. It shares no memory with the Game.
type Snapshot struct {
	State      State
	Stats      Stats
	NewHigh    bool // Finished (or current) run beat the previous best
	Body       []Point
	Heading    Direction
	Food       Food
	Interval   time.Duration
	Difficulty config.Difficulty
	GridSize   int
	RunID      string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	body := make([]Point, len(g.snake.Body))
	copy(body, g.snake.Body)

	return Snapshot{
		State:      g.state,
		Stats:      g.stats,
		NewHigh:    g.newHigh,
		Body:       body,
		Heading:    g.snake.Heading,
		Food:       g.food,
		Interval:   g.interval,
		Difficulty: g.settings.Difficulty,
		GridSize:   g.settings.GridSize,
		RunID:      g.runID,
	}
}

// Head returns the head of the captured body.
func (s Snapshot) Head() Point {
	if len(s.Body) == 0 {
		return Point{}
	}
	return s.Body[0]
}

// DebugState returns a string representation of the snapshot.
func (s Snapshot) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "State: %s, Score: %d, Level: %d, Food eaten: %d\n", s.State, s.Stats.Score, s.Stats.Level, s.Stats.FoodEaten)
	fmt.Fprintf(&b, "Snake len: %d, Heading: %s, Interval: %v\n", len(s.Body), s.Heading, s.Interval)
	head := s.Head()
	fmt.Fprintf(&b, "Head: (%d, %d), Food: %s at (%d, %d)\n", head.X, head.Y, s.Food.Kind, s.Food.Pos.X, s.Food.Pos.Y)
	return b.String()
}
