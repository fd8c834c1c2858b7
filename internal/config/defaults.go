package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			GridSize: 20,
			Start:    CellPoint{X: 10, Y: 10},
		},
		Speed: SpeedConfig{
			Difficulty: DifficultyMedium,
			IntervalsMS: map[Difficulty]int{
				DifficultyEasy:   200,
				DifficultyMedium: 150,
				DifficultyHard:   100,
				DifficultyExpert: 75,
			},
			FloorMS:         50,
			SpeedFoodStepMS: 10,
			LevelStepMS:     5,
		},
		Progression: ProgressionConfig{
			FoodPerLevel: 5,
		},
		Food: FoodConfig{
			Normal: FoodKindConfig{Weight: 0.7, Points: 10},
			Bonus:  FoodKindConfig{Weight: 0.2, Points: 50},
			Speed:  FoodKindConfig{Weight: 0.1, Points: 25},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
