package core

// Action represents a semantic player action, abstracted from physical key presses,
// mouse clicks on the on-screen pad, or any other input source.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // Up arrow, W, K, or the ▲ button
	ActionDown              // Down arrow, S, J, or the ▼ button
	ActionLeft              // Left arrow, A, H, or the ◀ button
	ActionRight             // Right arrow, D, L, or the ▶ button
	ActionConfirm           // Enter - start a game / play again
	ActionBack              // Esc - leave the current screen
	ActionPause             // P - suspend the tick timer
	ActionScoreboard        // Tab - show the leaderboard
	ActionQuit              // Q, Ctrl+C - exit
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
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the steering direction for a movement action.
// ok is false for actions that do not steer.
func (a Action) Direction() (d Direction, ok bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	}
	return DirRight, false
}
