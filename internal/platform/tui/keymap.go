package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// KeyMap holds the game's key bindings. Help labels come from the message
// catalog, so the map is rebuilt when the language changes.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Pause      key.Binding
	Start      key.Binding
	Menu       key.Binding
	TierKey    key.Binding
	Language   key.Binding
	Sound      key.Binding
	Scoreboard key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// NewKeyMap creates the default bindings with help text in tx's language.
func NewKeyMap(tx snake.Texts) KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑↓←→/wasd", tx.T("controls.move")),
		),
		Down:  key.NewBinding(key.WithKeys("down", "s")),
		Left:  key.NewBinding(key.WithKeys("left", "a")),
		Right: key.NewBinding(key.WithKeys("right", "d")),
		Pause: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", tx.T("controls.pause")),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", tx.T("button.startGame")),
		),
		Menu: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", tx.T("button.mainMenu")),
		),
		TierKey: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("←→/1-4", tx.T("controls.difficulty")),
		),
		Language: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", tx.T("controls.language")),
		),
		Sound: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", tx.T("controls.sound")),
		),
		Scoreboard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", tx.T("controls.scoreboard")),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", tx.T("controls.screenshot")),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", tx.T("controls.quit")),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Pause, k.Start, k.Menu, k.TierKey, k.Language, k.Sound, k.Scoreboard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Pause, k.Start, k.Menu},
		{k.TierKey, k.Language, k.Sound},
		{k.Scoreboard, k.Screenshot, k.Quit},
	}
}

// Action translates a key to a semantic action. Left and right pick the
// difficulty while no run is active and steer otherwise.
func (k KeyMap) Action(msg tea.KeyMsg, state snake.State) core.Action {
	inRun := state == snake.StatePlaying || state == snake.StatePaused

	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		if !inRun {
			return core.ActionPrevDifficulty
		}
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		if !inRun {
			return core.ActionNextDifficulty
		}
		return core.ActionRight
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Menu):
		return core.ActionMenu
	case key.Matches(msg, k.Language):
		return core.ActionLanguage
	case key.Matches(msg, k.Sound):
		return core.ActionSound
	case key.Matches(msg, k.Scoreboard):
		return core.ActionScoreboard
	}
	return core.ActionNone
}

// Tier returns the difficulty selected by a digit key.
func (k KeyMap) Tier(msg tea.KeyMsg) (config.Difficulty, bool) {
	if !key.Matches(msg, k.TierKey) {
		return "", false
	}
	all := config.Difficulties()
	idx := int(msg.String()[0] - '1')
	if idx < 0 || idx >= len(all) {
		return "", false
	}
	return all[idx], true
}
