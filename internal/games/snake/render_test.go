package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// keyTexts renders message keys verbatim.
type keyTexts struct{}

func (keyTexts) T(key string) string { return key }

func screenText(scr *core.Screen) string {
	return scr.String()
}

func TestRenderBoard(t *testing.T) {
	r := startedRig(t)
	r.game.food = Food{Pos: Point{12, 10}, Kind: FoodBonus, Points: 50}
	scr := core.NewScreen(160, 24)

	board := Render(scr, r.game.Snapshot(), keyTexts{}, true)

	if board.W != 40 || board.H != 20 {
		t.Fatalf("Board = %+v, expected 40x20 cells", board)
	}
	headX := board.X + 10*CellWidth
	if scr.Get(headX, board.Y+10) != '@' || scr.Get(headX+1, board.Y+10) != '@' {
		t.Errorf("Head not drawn at (%d, %d):\n%s", headX, board.Y+10, screenText(scr))
	}
	foodX := board.X + 12*CellWidth
	if cell := scr.GetCell(foodX, board.Y+10); cell.Rune != '$' || cell.Color != core.ColorGold {
		t.Errorf("Bonus food cell = %+v, expected gold '$'", cell)
	}
	if scr.Get(board.X-1, board.Y-1) != '┌' {
		t.Error("Board frame missing")
	}
	for _, field := range []string{"stats.score 0", "stats.length 1", "sound.on"} {
		if !strings.Contains(scr.Row(0), field) {
			t.Errorf("HUD = %q, missing %q", scr.Row(0), field)
		}
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(r *testRig)
		expected string
	}{
		{"menu", func(r *testRig) {}, "game.welcome"},
		{"paused", func(r *testRig) { r.game.StartGame(); r.game.PauseGame() }, "game.paused"},
		{"game over", func(r *testRig) {
			r.game.StartGame()
			parkFood(r)
			for r.game.State() == StatePlaying {
				r.game.Tick()
			}
		}, "game.over"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newRig(t, DefaultSettings(), nil)
			tc.setup(r)
			scr := core.NewScreen(80, 24)
			Render(scr, r.game.Snapshot(), keyTexts{}, false)

			if !strings.Contains(screenText(scr), tc.expected) {
				t.Errorf("Screen lacks %q:\n%s", tc.expected, screenText(scr))
			}
		})
	}

	r := startedRig(t)
	scr := core.NewScreen(80, 24)
	Render(scr, r.game.Snapshot(), keyTexts{}, false)
	if strings.Contains(screenText(scr), "game.") {
		t.Error("No overlay expected while playing")
	}
}

func TestRenderTooSmall(t *testing.T) {
	r := newRig(t, DefaultSettings(), nil)
	scr := core.NewScreen(30, 10)

	board := Render(scr, r.game.Snapshot(), keyTexts{}, false)

	if board != (core.Rect{}) {
		t.Errorf("Board = %+v, expected empty", board)
	}
	if !strings.Contains(screenText(scr), "screen.tooSmall") {
		t.Error("Expected the too-small notice")
	}
}

func TestFormatClock(t *testing.T) {
	tests := map[int]string{0: "00:00", 59: "00:59", 61: "01:01", 3600: "60:00"}
	for in, expected := range tests {
		if got := FormatClock(in); got != expected {
			t.Errorf("FormatClock(%d) = %q, expected %q", in, got, expected)
		}
	}
}
