package core

// Action represents a semantic player action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow
	ActionDown              // S, Down arrow
	ActionLeft              // A, Left arrow
	ActionRight             // D, Right arrow
	ActionStart             // Space, Enter - begin a round while paused
	ActionDismiss           // Esc, X - close the game-over overlay
	ActionScoreboard        // Tab - open the scoreboard while paused
	ActionHelp              // ? - toggle the full help view
	ActionScreenshot        // Ctrl+S
	ActionQuit              // Q, Ctrl+C
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
	case ActionStart:
		return "Start"
	case ActionDismiss:
		return "Dismiss"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionHelp:
		return "Help"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action steers the snake.
func (a Action) IsDirection() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}
