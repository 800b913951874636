package core

// Action is what the player asked for, independent of which key, mouse
// button or touch produced it.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionRestart // only honored once the game is over
	ActionHelp
	ActionQuit
)

var actionNames = [...]string{"None", "Up", "Down", "Left", "Right", "Restart", "Help", "Quit"}

func (a Action) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}

// IsMove reports whether the action steers the snake.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}
