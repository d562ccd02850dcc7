package core

// Action represents a semantic player action, abstracted from physical key
// presses. The platform's key mapper translates raw input into actions; the
// game model translates actions into engine calls.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow - move the cursor up
	ActionDown              // S, Down arrow - move the cursor down
	ActionLeft              // A, Left arrow - move the cursor left
	ActionRight             // D, Right arrow - move the cursor right
	ActionFire              // Space, Enter - tap the cell under the cursor
	ActionPause             // P, Esc - pause/unpause game
	ActionRestart           // R - restart game
	ActionScoreboard        // Tab - open the scoreboard view
	ActionQuit              // Q, Ctrl+C - exit game/session
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
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
