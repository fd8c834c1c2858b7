package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// actionDirections maps movement actions to headings.
var actionDirections = map[core.Action]Direction{
	core.ActionUp:    DirUp,
	core.ActionDown:  DirDown,
	core.ActionLeft:  DirLeft,
	core.ActionRight: DirRight,
}

// Apply turns a game action into a state machine call and reports whether
// anything changed. Presentation actions (language, sound, scoreboard, quit)
// are not the game's business and return false.
func (g *Game) Apply(a core.Action) bool {
	if d, ok := actionDirections[a]; ok {
		return g.ChangeDirection(d)
	}

	switch a {
	case core.ActionPause:
		return g.TogglePause()
	case core.ActionStart:
		return g.StartGame()
	case core.ActionMenu:
		if g.state == StateMenu {
			return false
		}
		g.ResetGame()
		return true
	case core.ActionPrevDifficulty:
		return g.SetDifficulty(g.settings.Difficulty.Prev()) == nil
	case core.ActionNextDifficulty:
		return g.SetDifficulty(g.settings.Difficulty.Next()) == nil
	default:
		return false
	}
}
