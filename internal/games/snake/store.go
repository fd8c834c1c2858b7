package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// RunRecord summarizes a finished run for history.
type RunRecord struct {
	ID         string
	Difficulty config.Difficulty
	GridSize   int
	Score      int
	Level      int
	FoodEaten  int
	Seconds    int
	Outcome    State // StateGameOver or StateVictory
	EndedAt    time.Time
}

// ScoreStore persists the best score and run history. All calls are
// best-effort: the game logs failures and keeps going.
type ScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
	RecordRun(rec RunRecord) error
}

type nopStore struct{}

func (nopStore) LoadHighScore() (int, error) { return 0, nil }
func (nopStore) SaveHighScore(int) error     { return nil }
func (nopStore) RecordRun(RunRecord) error   { return nil }
