package config

import (
	"fmt"
	"strings"
	"time"
)

// Difficulty represents a named speed tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
)

// Difficulties lists all tiers from slowest to fastest.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExpert}
}

// ParseDifficulty converts a user-supplied name into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, medium, hard or expert)", ErrInvalid, s)
	}
	return d, nil
}

// Valid reports whether d is one of the known tiers.
func (d Difficulty) Valid() bool {
	for _, known := range Difficulties() {
		if d == known {
			return true
		}
	}
	return false
}

// Index returns the position of d in Difficulties, or -1.
func (d Difficulty) Index() int {
	for i, known := range Difficulties() {
		if d == known {
			return i
		}
	}
	return -1
}

// Next returns the next faster tier, wrapping around.
func (d Difficulty) Next() Difficulty {
	all := Difficulties()
	return all[(d.Index()+1)%len(all)]
}

// Prev returns the next slower tier, wrapping around.
func (d Difficulty) Prev() Difficulty {
	all := Difficulties()
	i := d.Index() - 1
	if i < 0 {
		i = len(all) - 1
	}
	return all[i]
}

// Interval returns the initial tick interval for a tier.
func (c SpeedConfig) Interval(d Difficulty) time.Duration {
	return time.Duration(c.IntervalsMS[d]) * time.Millisecond
}

// Floor returns the fastest allowed tick interval.
func (c SpeedConfig) Floor() time.Duration {
	return time.Duration(c.FloorMS) * time.Millisecond
}

// SpeedFoodStep returns the interval reduction applied by Speed food.
func (c SpeedConfig) SpeedFoodStep() time.Duration {
	return time.Duration(c.SpeedFoodStepMS) * time.Millisecond
}

// LevelStep returns the interval reduction applied on level up.
func (c SpeedConfig) LevelStep() time.Duration {
	return time.Duration(c.LevelStepMS) * time.Millisecond
}
