package core

// Action represents a semantic player command, abstracted from physical key
// presses. Front ends map keys (or a bot) to actions and the platform layer
// turns actions into state machine calls.
type Action int

const (
	ActionNone           Action = iota
	ActionUp                    // W, Up arrow
	ActionDown                  // S, Down arrow
	ActionLeft                  // A, Left arrow
	ActionRight                 // D, Right arrow
	ActionPause                 // Space - pause/resume toggle
	ActionStart                 // Enter - start a run from menu or end screen
	ActionMenu                  // Esc, B - back to menu
	ActionPrevDifficulty        // Left in menu
	ActionNextDifficulty        // Right in menu
	ActionLanguage              // L - switch zh/en
	ActionSound                 // M - mute/unmute cues
	ActionScoreboard            // Tab - open run history
	ActionQuit                  // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionStart:
		return "Start"
	case ActionMenu:
		return "Menu"
	case ActionPrevDifficulty:
		return "PrevDifficulty"
	case ActionNextDifficulty:
		return "NextDifficulty"
	case ActionLanguage:
		return "Language"
	case ActionSound:
		return "Sound"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the action is one of the four directions.
func (a Action) IsMovement() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}
