package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func run(id string, d config.Difficulty, score int, outcome snake.State) snake.RunRecord {
	return snake.RunRecord{
		ID:         id,
		Difficulty: d,
		GridSize:   20,
		Score:      score,
		Level:      1 + score/50,
		FoodEaten:  score / 10,
		Seconds:    30,
		Outcome:    outcome,
		EndedAt:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestHighScoreOnlyIncreases(t *testing.T) {
	store := openTemp(t)

	high, err := store.LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for an empty store, got %d", high)
	}

	steps := []struct {
		save     int
		expected int
	}{
		{120, 120},
		{80, 120},
		{300, 300},
		{300, 300},
		{0, 300},
	}
	for _, step := range steps {
		if err := store.SaveHighScore(step.save); err != nil {
			t.Fatalf("SaveHighScore(%d) failed: %v", step.save, err)
		}
		high, err := store.LoadHighScore()
		if err != nil {
			t.Fatalf("LoadHighScore() failed: %v", err)
		}
		if high != step.expected {
			t.Errorf("After saving %d: high = %d, expected %d", step.save, high, step.expected)
		}
	}
}

func TestHighScoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveHighScore(450)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer store.Close()

	if high, _ := store.LoadHighScore(); high != 450 {
		t.Errorf("High score after reopen = %d, expected 450", high)
	}
}

func TestCorruptHighScoreReadsZero(t *testing.T) {
	store := openTemp(t)
	store.PutSetting(KeyBestScore, "lots")

	high, err := store.LoadHighScore()
	if err != nil || high != 0 {
		t.Errorf("LoadHighScore() = %d, %v; expected 0, nil", high, err)
	}
}

func TestSettings(t *testing.T) {
	store := openTemp(t)

	if _, ok, err := store.Setting(KeyLanguage); ok || err != nil {
		t.Errorf("Setting() on empty store = ok %v, err %v", ok, err)
	}

	store.PutSetting(KeyLanguage, "en")
	store.PutSetting(KeyLanguage, "zh")

	value, ok, err := store.Setting(KeyLanguage)
	if err != nil || !ok || value != "zh" {
		t.Errorf("Setting() = %q, %v, %v; expected zh", value, ok, err)
	}
}

func TestTopRuns(t *testing.T) {
	store := openTemp(t)

	records := []snake.RunRecord{
		run("a", config.DifficultyMedium, 100, snake.StateGameOver),
		run("b", config.DifficultyMedium, 300, snake.StateGameOver),
		run("c", config.DifficultyMedium, 200, snake.StateGameOver),
		run("d", config.DifficultyHard, 500, snake.StateVictory),
	}
	for _, rec := range records {
		if err := store.RecordRun(rec); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	medium, err := store.TopRuns(config.DifficultyMedium, 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(medium) != 3 {
		t.Fatalf("Expected 3 medium runs, got %d", len(medium))
	}
	if medium[0].Score != 300 || medium[1].Score != 200 || medium[2].Score != 100 {
		t.Errorf("Runs not in expected order: %v", medium)
	}
	if medium[0].RunID != "b" || medium[0].Outcome != "game_over" || medium[0].Seconds != 30 {
		t.Errorf("First run = %+v", medium[0])
	}
	if !medium[0].EndedAt.Equal(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("EndedAt = %v", medium[0].EndedAt)
	}

	top, _ := store.TopRuns("", 2)
	if len(top) != 2 || top[0].Score != 500 || top[0].Difficulty != config.DifficultyHard {
		t.Errorf("TopRuns(all, 2) = %v", top)
	}

	recent, _ := store.RecentRuns(1)
	if len(recent) != 1 || recent[0].RunID != "d" {
		t.Errorf("RecentRuns(1) = %v, expected run d", recent)
	}
}

func TestDuplicateRunRejected(t *testing.T) {
	store := openTemp(t)

	if err := store.RecordRun(run("same", config.DifficultyEasy, 10, snake.StateGameOver)); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	if err := store.RecordRun(run("same", config.DifficultyEasy, 20, snake.StateGameOver)); err == nil {
		t.Error("Recording the same run id twice should fail")
	}
}

func TestStatsAndClear(t *testing.T) {
	store := openTemp(t)
	store.RecordRun(run("a", config.DifficultyEasy, 100, snake.StateGameOver))
	store.RecordRun(run("b", config.DifficultyEasy, 300, snake.StateVictory))
	store.RecordRun(run("c", config.DifficultyExpert, 50, snake.StateGameOver))
	store.SaveHighScore(300)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	easy := stats[config.DifficultyEasy]
	if easy == nil {
		t.Fatal("Missing easy stats")
	}
	if easy.Runs != 2 || easy.Victories != 1 || easy.BestScore != 300 || easy.AvgScore != 200 || easy.TotalSeconds != 60 {
		t.Errorf("Easy stats = %+v", easy)
	}
	if stats[config.DifficultyExpert].Runs != 1 {
		t.Errorf("Expert stats = %+v", stats[config.DifficultyExpert])
	}

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	runs, _ := store.RecentRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}
	if high, _ := store.LoadHighScore(); high != 300 {
		t.Errorf("ClearRuns() should keep the best score, got %d", high)
	}
}

func TestStoreDrivesGame(t *testing.T) {
	store := openTemp(t)
	store.SaveHighScore(40)

	g, err := snake.New(snake.DefaultSettings(), snake.WithSeed(1), snake.WithScoreStore(store))
	if err != nil {
		t.Fatalf("snake.New() failed: %v", err)
	}
	if g.Stats().HighScore != 40 {
		t.Errorf("Game loaded high score %d, expected 40", g.Stats().HighScore)
	}
}
