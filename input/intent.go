package input

import "github.com/lixenwraith/rockfall/core"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit    // q, Esc, Ctrl+C
	IntentMove    // arrows, hjkl
	IntentConfirm // Enter, '.': acknowledge a message, otherwise a stationary move
	IntentReload  // space: restart the level
	IntentMute    // m: toggle sound effects
)

var intentNames = [...]string{
	IntentNone:    "none",
	IntentQuit:    "quit",
	IntentMove:    "move",
	IntentConfirm: "confirm",
	IntentReload:  "reload",
	IntentMute:    "mute",
}

func (t IntentType) String() string {
	if int(t) >= len(intentNames) {
		return "invalid"
	}
	return intentNames[t]
}

// Intent represents a parsed semantic action
// Pure data struct with no engine dependencies
type Intent struct {
	Type IntentType
	Dir  core.Direction // IntentMove only, DirNone is a stationary move
}
