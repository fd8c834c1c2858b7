package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Settings is the per-run game configuration. It can only change between
// runs.
type Settings struct {
	GridSize     int
	Start        Point
	Difficulty   config.Difficulty
	Speed        config.SpeedConfig
	FoodPerLevel int
	Food         FoodTable
}

// SettingsFrom converts a loaded configuration.
func SettingsFrom(cfg config.SnakeConfig) Settings {
	return Settings{
		GridSize:     cfg.Board.GridSize,
		Start:        Point{X: cfg.Board.Start.X, Y: cfg.Board.Start.Y},
		Difficulty:   cfg.Speed.Difficulty,
		Speed:        cfg.Speed,
		FoodPerLevel: cfg.Progression.FoodPerLevel,
		Food:         FoodTableFrom(cfg.Food),
	}
}

// DefaultSettings returns the settings of the built-in configuration.
func DefaultSettings() Settings {
	return SettingsFrom(config.DefaultSnakeConfig())
}

// InitialInterval returns the starting tick interval for the difficulty.
func (s Settings) InitialInterval() time.Duration {
	return s.Speed.Interval(s.Difficulty)
}

// faster shortens an interval by step, never going below the floor.
func (s Settings) faster(interval, step time.Duration) time.Duration {
	return max(s.Speed.Floor(), interval-step)
}

// Config converts the settings back into a configuration.
func (s Settings) Config() config.SnakeConfig {
	return config.SnakeConfig{
		Board: config.BoardConfig{
			GridSize: s.GridSize,
			Start:    config.CellPoint{X: s.Start.X, Y: s.Start.Y},
		},
		Speed:       speedFor(s.Speed, s.Difficulty),
		Progression: config.ProgressionConfig{FoodPerLevel: s.FoodPerLevel},
		Food: config.FoodConfig{
			Normal: config.FoodKindConfig{Weight: s.Food[FoodNormal].Weight, Points: s.Food[FoodNormal].Points},
			Bonus:  config.FoodKindConfig{Weight: s.Food[FoodBonus].Weight, Points: s.Food[FoodBonus].Points},
			Speed:  config.FoodKindConfig{Weight: s.Food[FoodSpeed].Weight, Points: s.Food[FoodSpeed].Points},
		},
	}
}

func speedFor(c config.SpeedConfig, d config.Difficulty) config.SpeedConfig {
	c.Difficulty = d
	return c
}

// validate applies the configuration rules, so hand-built settings are held
// to the same limits as loaded files.
func (s Settings) validate() error {
	return s.Config().Validate()
}
