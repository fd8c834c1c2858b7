package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse(embedded) failed: %v", err)
	}
	want := DefaultSnakeConfig()

	if cfg.Board != want.Board {
		t.Errorf("Board = %+v, expected %+v", cfg.Board, want.Board)
	}
	if cfg.Food != want.Food {
		t.Errorf("Food = %+v, expected %+v", cfg.Food, want.Food)
	}
	for _, d := range Difficulties() {
		if cfg.Speed.IntervalsMS[d] != want.Speed.IntervalsMS[d] {
			t.Errorf("interval[%s] = %d, expected %d", d, cfg.Speed.IntervalsMS[d], want.Speed.IntervalsMS[d])
		}
	}
}

func TestDifficultyIntervals(t *testing.T) {
	speed := DefaultSnakeConfig().Speed

	tests := []struct {
		d        Difficulty
		expected time.Duration
	}{
		{DifficultyEasy, 200 * time.Millisecond},
		{DifficultyMedium, 150 * time.Millisecond},
		{DifficultyHard, 100 * time.Millisecond},
		{DifficultyExpert, 75 * time.Millisecond},
	}

	for _, tc := range tests {
		if got := speed.Interval(tc.d); got != tc.expected {
			t.Errorf("Interval(%s) = %v, expected %v", tc.d, got, tc.expected)
		}
	}
	if speed.Floor() != 50*time.Millisecond {
		t.Errorf("Floor() = %v, expected 50ms", speed.Floor())
	}
}

func TestLoadSnakeCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("board:\n  grid_size: 12\n  start: {x: 3, y: 3}\nspeed:\n  difficulty: expert\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Board.GridSize != 12 {
		t.Errorf("GridSize = %d, expected 12", cfg.Board.GridSize)
	}
	if cfg.Speed.Difficulty != DifficultyExpert {
		t.Errorf("Difficulty = %s, expected expert", cfg.Speed.Difficulty)
	}
	// Unset keys keep their defaults
	if cfg.Speed.IntervalsMS[DifficultyEasy] != 200 {
		t.Errorf("Easy interval = %d, expected default 200", cfg.Speed.IntervalsMS[DifficultyEasy])
	}
	if cfg.Food.Bonus.Points != 50 {
		t.Errorf("Bonus points = %d, expected default 50", cfg.Food.Bonus.Points)
	}
}

func TestLoadSnakeCustomInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("food:\n  normal: {weight: 0.9, points: 10}\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadSnake(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("LoadSnake() error = %v, expected ErrInvalid", err)
	}
}

func TestLoadSnakeMissingCustom(t *testing.T) {
	if _, err := LoadSnake(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadSnake() with missing custom path should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
	}{
		{"tiny grid", func(c *SnakeConfig) { c.Board.GridSize = 3 }},
		{"start outside", func(c *SnakeConfig) { c.Board.Start = CellPoint{X: 20, Y: 0} }},
		{"unknown difficulty", func(c *SnakeConfig) { c.Speed.Difficulty = "insane" }},
		{"interval below floor", func(c *SnakeConfig) { c.Speed.IntervalsMS[DifficultyExpert] = 10 }},
		{"zero food per level", func(c *SnakeConfig) { c.Progression.FoodPerLevel = 0 }},
		{"negative points", func(c *SnakeConfig) { c.Food.Speed.Points = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}

	if err := DefaultSnakeConfig().Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultSnakeConfig()
	if err := ApplyOverrides(&cfg, "Hard", 8); err != nil {
		t.Fatalf("ApplyOverrides() failed: %v", err)
	}
	if cfg.Speed.Difficulty != DifficultyHard {
		t.Errorf("Difficulty = %s, expected hard", cfg.Speed.Difficulty)
	}
	if cfg.Board.Start != (CellPoint{X: 4, Y: 4}) {
		t.Errorf("Start = %+v, expected re-centered (4,4)", cfg.Board.Start)
	}

	if err := ApplyOverrides(&cfg, "nightmare", 0); !errors.Is(err, ErrInvalid) {
		t.Errorf("ApplyOverrides(bad difficulty) = %v, expected ErrInvalid", err)
	}
}

func TestDifficultyCycle(t *testing.T) {
	if DifficultyExpert.Next() != DifficultyEasy {
		t.Error("Next() should wrap from expert to easy")
	}
	if DifficultyEasy.Prev() != DifficultyExpert {
		t.Error("Prev() should wrap from easy to expert")
	}
	if DifficultyMedium.Next() != DifficultyHard {
		t.Error("Next() of medium should be hard")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultSnakeConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if _, err := parse(data); err != nil {
		t.Errorf("parse(Marshal(defaults)) failed: %v", err)
	}
}
