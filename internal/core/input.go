package core

// Action is a semantic UI action, abstracted from physical key presses.
// Tile clicks are not actions: they carry a board position and go straight
// to the round driver.
type Action int

const (
	ActionNone    Action = iota
	ActionStart          // Enter, Space - start from the title screen
	ActionRestart        // R - play again after game over
	ActionMenu           // M - back to the title screen after game over
	ActionHistory        // Tab - toggle the session history
	ActionBack           // Esc, B - leave the history view
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionMenu:
		return "Menu"
	case ActionHistory:
		return "History"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
