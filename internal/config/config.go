// Package config provides YAML-based game configuration loading and
// difficulty tiers for the snake game.
package config

import "errors"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board       BoardConfig       `yaml:"board"`
	Speed       SpeedConfig       `yaml:"speed"`
	Progression ProgressionConfig `yaml:"progression"`
	Food        FoodConfig        `yaml:"food"`
}

// BoardConfig defines the square grid and the spawn cell.
type BoardConfig struct {
	GridSize int       `yaml:"grid_size"`
	Start    CellPoint `yaml:"start"`
}

// CellPoint is a grid coordinate in the config file.
type CellPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SpeedConfig defines tick intervals in milliseconds.
type SpeedConfig struct {
	Difficulty      Difficulty         `yaml:"difficulty"`
	IntervalsMS     map[Difficulty]int `yaml:"intervals_ms"`
	FloorMS         int                `yaml:"floor_ms"`           // Fastest allowed tick
	SpeedFoodStepMS int                `yaml:"speed_food_step_ms"` // Reduction per Speed food
	LevelStepMS     int                `yaml:"level_step_ms"`      // Reduction per level up
}

// ProgressionConfig defines how levels advance.
type ProgressionConfig struct {
	FoodPerLevel int `yaml:"food_per_level"`
}

// FoodConfig defines spawn weights and point values per food kind.
type FoodConfig struct {
	Normal FoodKindConfig `yaml:"normal"`
	Bonus  FoodKindConfig `yaml:"bonus"`
	Speed  FoodKindConfig `yaml:"speed"`
}

// FoodKindConfig is the weight and score of one food kind.
type FoodKindConfig struct {
	Weight float64 `yaml:"weight"`
	Points int     `yaml:"points"`
}
