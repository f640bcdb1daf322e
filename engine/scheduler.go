package engine

import (
	"github.com/lixenwraith/rockfall/core"
)

// Phase reports what a tick did
type Phase uint8

const (
	PhaseIdle     Phase = iota // nothing to do, input accepted
	PhaseDead                  // player dead, waiting for reload
	PhaseComplete              // level complete, waiting for next level
	PhaseHeld                  // message waiting for acknowledgement
	PhasePropel                // a self-propelled entity stepped or is waiting to
	PhaseQueue                 // queued entities were tried
	PhaseMonsters              // monsters took their turn
)

var phaseNames = [...]string{
	PhaseIdle:     "idle",
	PhaseDead:     "dead",
	PhaseComplete: "complete",
	PhaseHeld:     "held",
	PhasePropel:   "propel",
	PhaseQueue:    "queue",
	PhaseMonsters: "monsters",
}

func (p Phase) String() string {
	if int(p) >= len(phaseNames) {
		return "invalid"
	}
	return phaseNames[p]
}

// PropelEvent is a scheduled step of a moving boulder, arrow or balloon
type PropelEvent struct {
	EntityID int
	FireAt   uint64
	Lethal   bool
	Kind     core.Kind
}

// Tick advances the simulation by one scheduling step.
// At most one entity moves per tick: either the one in flight, or the first queued
// entity able to move. Monsters move once the board has settled after an input
func (w *World) Tick() Phase {
	w.tick++

	switch {
	case w.dead:
		return PhaseDead
	case w.complete:
		return PhaseComplete
	}

	if w.propel != nil {
		if w.tick < w.propel.FireAt {
			return PhasePropel
		}
		ev := *w.propel
		w.propel = nil
		w.step(ev)
		return PhasePropel
	}

	if w.queue.Len() > 0 {
		w.drainQueue()
		return PhaseQueue
	}

	if w.monstersDue {
		w.monstersDue = false
		w.runMonsters()
		return PhaseMonsters
	}

	if w.held {
		return PhaseHeld
	}
	return PhaseIdle
}

// Settle ticks until the board is quiet, or until limit ticks have passed
// It returns the last phase seen
func (w *World) Settle(limit int) Phase {
	phase := PhaseIdle
	for i := 0; i < limit; i++ {
		phase = w.Tick()
		if !w.Busy() {
			return phase
		}
	}
	return phase
}

// drainQueue pops queued entities until one of them moves
// Entities that cannot move are dropped; they get queued again by a later cascade
func (w *World) drainQueue() {
	for !w.dead {
		id, ok := w.queue.Pop()
		if !ok {
			return
		}
		e := w.board.Entity(id)
		if e == nil || !e.Active || !e.Kind.Propelled() {
			continue
		}
		kind := e.Kind
		if w.step(PropelEvent{EntityID: id, Kind: kind}) {
			if kind == core.KindLeftArrow || kind == core.KindRightArrow {
				w.sound(core.SoundArrow)
			}
			return
		}
	}
}

// step moves a propelled entity one cell along its heading and schedules its next step
// Only steps after the first can kill
func (w *World) step(ev PropelEvent) bool {
	e := w.board.Entity(ev.EntityID)
	if w.dead || e == nil || !e.Active {
		return false
	}

	from := e.Pos
	to := from.Add(ev.Kind.Heading().Delta())
	res := w.Resolve(from, to, ev.Kind, ev.Lethal, e.ID)
	if !res.Moved {
		if ev.Kind == core.KindBoulder && ev.Lethal {
			w.sound(core.SoundBoulder)
		}
		return false
	}

	w.relocate(e.ID, res.To)
	w.statSteps.Add(1)
	w.Cascade(from, res.To, ev.Kind)

	if !w.dead {
		w.propel = &PropelEvent{
			EntityID: e.ID,
			FireAt:   w.tick + uint64(w.opts.PropelDelay),
			Lethal:   true,
			Kind:     ev.Kind,
		}
	}
	return true
}
