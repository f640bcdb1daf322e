// Package rule holds the authored interaction data of the game: which mover may
// enter which occupant's cell, which neighbours a move wakes up, and the small
// geometry tables the monsters navigate by. Everything here is immutable after
// package initialisation.
package rule

import (
	"fmt"

	"github.com/lixenwraith/rockfall/core"
)

// Outcome is the tag a rule entry resolves to
type Outcome uint8

const (
	Blocked Outcome = iota
	Allowed
	Consume
	Teleport
	Killed
	Exit
	Push
	Deflect
)

var outcomeNames = [...]string{
	Blocked:  "blocked",
	Allowed:  "allowed",
	Consume:  "consume",
	Teleport: "teleport",
	Killed:   "killed",
	Exit:     "exit",
	Push:     "push",
	Deflect:  "deflect",
}

func (o Outcome) String() string {
	if int(o) >= len(outcomeNames) {
		return "invalid"
	}
	return outcomeNames[o]
}

// GapError reports an occupant/approach/mover combination with no rule entry
type GapError struct {
	Occupant core.Kind
	Approach core.Approach
	Mover    core.Kind
}

func (e *GapError) Error() string {
	return fmt.Sprintf("rule: no entry for %s entering %s from %s", e.Mover, e.Occupant, e.Approach)
}
