package rule

import "github.com/lixenwraith/rockfall/core"

// Death messages shown to the player
const (
	MsgBoulder     = "Killed by a falling boulder!"
	MsgArrow       = "Killed by a speeding arrow!"
	MsgLandmine    = "You were killed by an exploding landmine!"
	MsgHungry      = "You were killed by a hungry monster!"
	MsgLittle      = "You were killed by the little monsters!"
	MsgUnknownMove = "Unknown cause of death please investigate 1"
	MsgUnknown     = "Unknown cause of death please investigate 2"
	MsgOutOfTime   = "You ran out of time!"
)

// Cause is the message and sound attached to a death
// Silent causes carry HasSound false
type Cause struct {
	Text     string
	Sound    core.SoundType
	HasSound bool
}

// DeathCause picks the message for a lethal mover entering an occupant's cell
func DeathCause(mover, occupant core.Kind) Cause {
	switch mover {
	case core.KindBoulder:
		return Cause{MsgBoulder, core.SoundKilled, true}
	case core.KindLeftArrow, core.KindRightArrow:
		return Cause{MsgArrow, core.SoundKilled, true}
	case core.KindPlayer:
		switch occupant {
		case core.KindFire:
			return Cause{MsgLandmine, core.SoundLandmine, true}
		case core.KindBigMonster:
			return Cause{MsgHungry, core.SoundKilled, true}
		case core.KindBabyMonster:
			return Cause{MsgLittle, core.SoundKilled, true}
		}
		return Cause{Text: MsgUnknownMove}
	case core.KindBigMonster:
		return Cause{MsgHungry, core.SoundMonsters, true}
	case core.KindBabyMonster:
		return Cause{MsgLittle, core.SoundMonsters, true}
	}
	return Cause{Text: MsgUnknown}
}
