package runner

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func TestSteer(t *testing.T) {
	tests := []struct {
		name     string
		body     []snake.Point
		heading  snake.Direction
		food     snake.Point
		expected snake.Direction
	}{
		{
			name:     "toward food",
			body:     []snake.Point{{X: 5, Y: 5}},
			heading:  snake.DirRight,
			food:     snake.Point{X: 5, Y: 0},
			expected: snake.DirUp,
		},
		{
			name:     "away from wall",
			body:     []snake.Point{{X: 19, Y: 10}, {X: 18, Y: 10}},
			heading:  snake.DirRight,
			food:     snake.Point{X: 19, Y: 15},
			expected: snake.DirDown,
		},
		{
			name:     "never reverses",
			body:     []snake.Point{{X: 5, Y: 5}, {X: 4, Y: 5}},
			heading:  snake.DirRight,
			food:     snake.Point{X: 0, Y: 5},
			expected: snake.DirUp,
		},
		{
			name:     "around own body",
			body:     []snake.Point{{X: 5, Y: 5}, {X: 5, Y: 4}, {X: 6, Y: 4}, {X: 6, Y: 5}, {X: 6, Y: 6}},
			heading:  snake.DirDown,
			food:     snake.Point{X: 9, Y: 5},
			expected: snake.DirDown,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snap := snake.Snapshot{
				Body:     tc.body,
				Heading:  tc.heading,
				Food:     snake.Food{Pos: tc.food},
				GridSize: 20,
			}
			if got := Steer(snap); got != tc.expected {
				t.Errorf("Steer() = %s, expected %s", got, tc.expected)
			}
		})
	}
}

func TestAutopilotEats(t *testing.T) {
	g, err := snake.New(snake.DefaultSettings(), snake.WithSeed(1))
	if err != nil {
		t.Fatalf("snake.New() failed: %v", err)
	}
	g.StartGame()

	for i := 0; i < 1000 && g.State() == snake.StatePlaying; i++ {
		g.ChangeDirection(Steer(g.Snapshot()))
		g.Tick()
	}

	if g.Stats().FoodEaten < 5 {
		t.Errorf("Autopilot ate %d foods in 1000 ticks, expected at least 5", g.Stats().FoodEaten)
	}
}
