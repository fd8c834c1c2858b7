package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// echoTexts returns message keys untranslated.
type echoTexts struct{}

func (echoTexts) T(key string) string { return key }

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := NewKeyMap(echoTexts{})

	tests := []struct {
		name  string
		msg   tea.KeyMsg
		state snake.State
		want  core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, snake.StatePlaying, core.ActionUp},
		{"w", runeKey('w'), snake.StatePlaying, core.ActionUp},
		{"s", runeKey('s'), snake.StatePlaying, core.ActionDown},
		{"left while playing", tea.KeyMsg{Type: tea.KeyLeft}, snake.StatePlaying, core.ActionLeft},
		{"d while paused", runeKey('d'), snake.StatePaused, core.ActionRight},
		{"left in menu", tea.KeyMsg{Type: tea.KeyLeft}, snake.StateMenu, core.ActionPrevDifficulty},
		{"right in menu", tea.KeyMsg{Type: tea.KeyRight}, snake.StateMenu, core.ActionNextDifficulty},
		{"right after game over", tea.KeyMsg{Type: tea.KeyRight}, snake.StateGameOver, core.ActionNextDifficulty},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, snake.StatePlaying, core.ActionPause},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, snake.StateMenu, core.ActionStart},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, snake.StatePaused, core.ActionMenu},
		{"b", runeKey('b'), snake.StateGameOver, core.ActionMenu},
		{"l", runeKey('l'), snake.StateMenu, core.ActionLanguage},
		{"m", runeKey('m'), snake.StatePlaying, core.ActionSound},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, snake.StateMenu, core.ActionScoreboard},
		{"q", runeKey('q'), snake.StatePlaying, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, snake.StateMenu, core.ActionQuit},
		{"unbound", runeKey('x'), snake.StatePlaying, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg, tt.state); got != tt.want {
				t.Errorf("Action(%q, %s) = %v, want %v", tt.msg.String(), tt.state, got, tt.want)
			}
		})
	}
}

func TestKeyMapTier(t *testing.T) {
	keys := NewKeyMap(echoTexts{})

	tests := []struct {
		msg  tea.KeyMsg
		want config.Difficulty
		ok   bool
	}{
		{runeKey('1'), config.DifficultyEasy, true},
		{runeKey('2'), config.DifficultyMedium, true},
		{runeKey('3'), config.DifficultyHard, true},
		{runeKey('4'), config.DifficultyExpert, true},
		{runeKey('5'), "", false},
		{runeKey('w'), "", false},
	}

	for _, tt := range tests {
		got, ok := keys.Tier(tt.msg)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Tier(%q) = %q, %v; want %q, %v", tt.msg.String(), got, ok, tt.want, tt.ok)
		}
	}
}

func TestKeyMapHelpIsTranslated(t *testing.T) {
	keys := NewKeyMap(echoTexts{})
	if got := keys.Pause.Help().Desc; got != "controls.pause" {
		t.Errorf("Pause help = %q, want catalog key", got)
	}
	if len(keys.ShortHelp()) == 0 || len(keys.FullHelp()) == 0 {
		t.Error("Help views should list bindings")
	}
}
