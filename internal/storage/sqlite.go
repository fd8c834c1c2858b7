// Package storage provides SQLite-based persistence for the best score, user
// settings and run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// DefaultPath is where the database lives unless overridden.
const DefaultPath = "~/.snake/snake.db"

// Setting keys.
const (
	KeyBestScore = "best_score"
	KeyLanguage  = "language"
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection. It is safe for concurrent
// use by several game sessions.
type Store struct {
	db *sql.DB
}

var _ snake.ScoreStore = (*Store)(nil)

// RunEntry is a stored run.
type RunEntry struct {
	ID         int64
	RunID      string
	Difficulty config.Difficulty
	GridSize   int
	Score      int
	Level      int
	FoodEaten  int
	Seconds    int
	Outcome    string
	EndedAt    time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SSH sessions write concurrently; one connection serializes them.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			difficulty TEXT NOT NULL,
			grid_size INTEGER NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			food_eaten INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			ended_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(difficulty, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Setting returns a stored value and whether it exists.
func (s *Store) Setting(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read setting %s: %w", key, err)
	}
	return value, true, nil
}

// PutSetting stores a value, replacing any previous one.
func (s *Store) PutSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write setting %s: %w", key, err)
	}
	return nil
}

// LoadHighScore returns the best score, or 0 if none is stored.
// A stored value that is not a number reads as 0.
func (s *Store) LoadHighScore() (int, error) {
	value, ok, err := s.Setting(KeyBestScore)
	if err != nil || !ok {
		return 0, err
	}
	score, err := strconv.Atoi(value)
	if err != nil || score < 0 {
		return 0, nil
	}
	return score, nil
}

// SaveHighScore stores score as the best score unless a higher one is
// already stored.
func (s *Store) SaveHighScore(score int) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value
		 WHERE CAST(settings.value AS INTEGER) < CAST(excluded.value AS INTEGER)`,
		KeyBestScore, strconv.Itoa(score),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// RecordRun appends a finished run to the history.
func (s *Store) RecordRun(rec snake.RunRecord) error {
	ended := rec.EndedAt
	if ended.IsZero() {
		ended = time.Now()
	}
	_, err := s.db.Exec(
		`INSERT INTO runs
		 (run_id, difficulty, grid_size, score, level, food_eaten, duration_secs, outcome, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		string(rec.Difficulty),
		rec.GridSize,
		rec.Score,
		rec.Level,
		rec.FoodEaten,
		rec.Seconds,
		string(rec.Outcome),
		ended.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record run: %w", err)
	}
	return nil
}

const runColumns = `id, run_id, difficulty, grid_size, score, level, food_eaten, duration_secs, outcome, ended_at`

// TopRuns retrieves the best N runs for a difficulty, or across all
// difficulties when difficulty is empty. Ties go to the earlier run.
func (s *Store) TopRuns(difficulty config.Difficulty, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	var (
		rows *sql.Rows
		err  error
	)
	if difficulty == "" {
		rows, err = s.db.Query(
			`SELECT `+runColumns+` FROM runs
			 ORDER BY score DESC, id ASC
			 LIMIT ?`,
			limit,
		)
	} else {
		rows, err = s.db.Query(
			`SELECT `+runColumns+` FROM runs
			 WHERE difficulty = ?
			 ORDER BY score DESC, id ASC
			 LIMIT ?`,
			string(difficulty), limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RecentRuns retrieves the latest N runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+` FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]RunEntry, error) {
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var difficulty string
		var endedAt any
		if err := rows.Scan(
			&e.ID,
			&e.RunID,
			&difficulty,
			&e.GridSize,
			&e.Score,
			&e.Level,
			&e.FoodEaten,
			&e.Seconds,
			&e.Outcome,
			&endedAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Difficulty = config.Difficulty(difficulty)
		e.EndedAt = parseTime(endedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// parseTime converts a DATETIME column, which the driver may hand back as
// either time.Time or text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// ClearRuns deletes the run history. The best score is kept.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// DifficultyStats contains aggregated statistics for one difficulty.
type DifficultyStats struct {
	Difficulty   config.Difficulty
	Runs         int
	Victories    int
	BestScore    int
	AvgScore     float64
	TotalSeconds int
	LastPlayed   time.Time
}

// Stats retrieves aggregated statistics per difficulty that has runs.
func (s *Store) Stats() (map[config.Difficulty]*DifficultyStats, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, COUNT(*), SUM(outcome = ?), MAX(score), AVG(score),
		        SUM(duration_secs), MAX(ended_at)
		 FROM runs
		 GROUP BY difficulty`,
		string(snake.StateVictory),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[config.Difficulty]*DifficultyStats)
	for rows.Next() {
		var st DifficultyStats
		var difficulty string
		var lastPlayed any
		if err := rows.Scan(&difficulty, &st.Runs, &st.Victories, &st.BestScore, &st.AvgScore, &st.TotalSeconds, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.Difficulty = config.Difficulty(difficulty)
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Difficulty] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}
