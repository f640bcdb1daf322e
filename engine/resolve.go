package engine

import (
	"log"

	"github.com/lixenwraith/rockfall/board"
	"github.com/lixenwraith/rockfall/constant"
	"github.com/lixenwraith/rockfall/core"
	"github.com/lixenwraith/rockfall/rule"
)

// Result is the answer to a movement attempt
// Outcome is the rule that fired (Allowed for an empty cell, Blocked off the board).
// When Moved is set the mover belongs at To; deflections put To off the requested cell
type Result struct {
	Outcome rule.Outcome
	Moved   bool
	To      core.Point
}

func blocked(o rule.Outcome) Result {
	return Result{Outcome: o}
}

func moved(o rule.Outcome, to core.Point) Result {
	return Result{Outcome: o, Moved: true, To: to}
}

// Resolve decides what happens when mover tries to enter to from from, applying the
// side effects of the rule that fires. The caller relocates the mover when Moved is set.
// Killing rules only kill when lethal is set
func (w *World) Resolve(from, to core.Point, mover core.Kind, lethal bool, moverID int) Result {
	if !board.InBounds(to) {
		return blocked(rule.Blocked)
	}

	occID, ok := w.board.OccupantAt(to, mover)
	if !ok {
		return moved(rule.Allowed, to)
	}
	occ := w.board.Entity(occID)

	approach := core.ApproachOf(from, to)
	outcome, ok := rule.Lookup(occ.Kind, approach, mover)
	if !ok {
		return w.gap(occ.Kind, approach, mover)
	}

	switch outcome {
	case rule.Allowed:
		return moved(outcome, to)

	case rule.Consume:
		w.consume(occ, moverID)
		return moved(outcome, to)

	case rule.Teleport:
		w.teleport(to, occID)
		return blocked(outcome)

	case rule.Killed:
		if lethal {
			w.kill(rule.DeathCause(mover, occ.Kind))
		}
		return blocked(outcome)

	case rule.Exit:
		if w.collected == w.target {
			w.complete = true
			w.statDone.Store(true)
			w.message(msgComplete, FollowUpNextLevel)
			w.sound(core.SoundExit1)
			w.sound(core.SoundExit2)
			log.Printf("Level complete with %d/%d diamonds", w.collected, w.target)
			return moved(outcome, to)
		}
		w.message(msgExitBlocked, FollowUpDismiss)
		return blocked(outcome)

	case rule.Push:
		return w.push(from, to, occID)

	case rule.Deflect:
		if p, ok := w.deflect(from, to, mover, occ.Kind); ok {
			return moved(outcome, p)
		}
		return blocked(outcome)
	}
	return blocked(outcome)
}

const (
	msgComplete    = "Level complete!"
	msgExitBlocked = "Collect all the treasure 💎 first!"
)

func (w *World) gap(occupant core.Kind, approach core.Approach, mover core.Kind) Result {
	err := &rule.GapError{Occupant: occupant, Approach: approach, Mover: mover}
	if w.opts.Strict {
		panic(err)
	}
	log.Printf("Rule gap treated as blocked: %v", err)
	return blocked(rule.Blocked)
}

// consume applies the eaten occupant's effect and removes it
func (w *World) consume(occ *board.Entity, moverID int) {
	switch occ.Kind {
	case core.KindDiamond:
		w.collected++
		w.sound(core.SoundDiamond)
	case core.KindAddMoves:
		if w.moves != constant.UnlimitedMoves {
			w.moves += constant.BonusMoves
		}
	case core.KindDirt:
		w.sound(core.SoundDirt)
	case core.KindBigMonster:
		log.Printf("Big monster %d was killed", occ.ID)
	case core.KindCage:
		// the caged monster becomes a diamond the player can collect
		w.board.SetKind(moverID, core.KindDiamond)
		w.sinks.Render.OnAppearance(moverID, AppearanceDiamond)
	}
	w.remove(occ.ID)
}

// teleport moves the player from a portal to the level's portal out
func (w *World) teleport(portal core.Point, portalID int) {
	out, ok := w.board.PortalOut()
	if !ok {
		log.Printf("Portal at %v has no destination", portal)
		return
	}
	player := w.board.Player()
	if player == nil {
		return
	}

	if id, ok := w.board.OccupantAt(out, core.KindNone); ok {
		w.remove(id)
	}
	w.relocate(player.ID, out)
	w.remove(portalID)
	w.Cascade(portal, out, core.KindPlayer)
	w.sound(core.SoundTeleport)
}

// push shoves the occupant one cell further along the move and sets it moving
func (w *World) push(from, to core.Point, occID int) Result {
	far := to.Add(to.Sub(from))
	if !board.InBounds(far) || !w.board.Empty(far) {
		return blocked(rule.Push)
	}
	w.relocate(occID, far)
	w.enqueue(occID)
	return moved(rule.Push, to)
}
