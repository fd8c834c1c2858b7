package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// MinGridSize is the smallest playable board.
const MinGridSize = 5

// LoadSnake loads Snake configuration.
// Search order: customPath -> ~/.snake/snake.yaml -> ./configs/snake.yaml -> embedded default.
// Files are layered over the built-in defaults, so they may set only the keys they change.
func LoadSnake(customPath string) (SnakeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/snake.yaml"); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the defaults and validates the result.
func parse(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration back to YAML.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}

// Validate checks the configuration for values the engine cannot run with.
func (c SnakeConfig) Validate() error {
	size := c.Board.GridSize
	if size < MinGridSize {
		return fmt.Errorf("%w: grid_size %d is below %d", ErrInvalid, size, MinGridSize)
	}
	if s := c.Board.Start; s.X < 0 || s.X >= size || s.Y < 0 || s.Y >= size {
		return fmt.Errorf("%w: start (%d,%d) is outside a %dx%d grid", ErrInvalid, s.X, s.Y, size, size)
	}

	if !c.Speed.Difficulty.Valid() {
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalid, c.Speed.Difficulty)
	}
	if c.Speed.FloorMS <= 0 {
		return fmt.Errorf("%w: floor_ms must be positive", ErrInvalid)
	}
	for _, d := range Difficulties() {
		ms, ok := c.Speed.IntervalsMS[d]
		if !ok {
			return fmt.Errorf("%w: missing interval for %s", ErrInvalid, d)
		}
		if ms < c.Speed.FloorMS {
			return fmt.Errorf("%w: %s interval %dms is below floor %dms", ErrInvalid, d, ms, c.Speed.FloorMS)
		}
	}
	if c.Speed.SpeedFoodStepMS < 0 || c.Speed.LevelStepMS < 0 {
		return fmt.Errorf("%w: speed steps must not be negative", ErrInvalid)
	}
	if c.Progression.FoodPerLevel <= 0 {
		return fmt.Errorf("%w: food_per_level must be positive", ErrInvalid)
	}

	kinds := []FoodKindConfig{c.Food.Normal, c.Food.Bonus, c.Food.Speed}
	var total float64
	for _, k := range kinds {
		if k.Weight < 0 || k.Points < 0 {
			return fmt.Errorf("%w: food weights and points must not be negative", ErrInvalid)
		}
		total += k.Weight
	}
	if math.Abs(total-1.0) > 1e-6 {
		return fmt.Errorf("%w: food weights sum to %.3f, want 1.0", ErrInvalid, total)
	}
	return nil
}

// ApplyOverrides applies command-line overrides. Empty or zero values keep
// the configured setting. The start cell is re-centered when the grid size
// changes and the old one no longer fits.
func ApplyOverrides(cfg *SnakeConfig, difficulty string, gridSize int) error {
	if difficulty != "" {
		d, err := ParseDifficulty(difficulty)
		if err != nil {
			return err
		}
		cfg.Speed.Difficulty = d
	}
	if gridSize != 0 {
		cfg.Board.GridSize = gridSize
		if s := cfg.Board.Start; s.X >= gridSize || s.Y >= gridSize {
			cfg.Board.Start = CellPoint{X: gridSize / 2, Y: gridSize / 2}
		}
	}
	return cfg.Validate()
}
