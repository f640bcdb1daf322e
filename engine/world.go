package engine

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/rockfall/board"
	"github.com/lixenwraith/rockfall/constant"
	"github.com/lixenwraith/rockfall/core"
	"github.com/lixenwraith/rockfall/level"
	"github.com/lixenwraith/rockfall/rule"
	"github.com/lixenwraith/rockfall/status"
)

// Options tune a world
type Options struct {
	// Strict panics with a *rule.GapError on a missing rule instead of blocking
	Strict bool

	// PropelDelay is the number of ticks between steps of a moving entity
	PropelDelay int

	// Moves is the move budget, constant.UnlimitedMoves for none
	Moves int

	// DiamondTarget overrides the computed target when positive
	DiamondTarget int

	// Status receives counters, a private registry is used when nil
	Status *status.Registry
}

// World is the state of one level in play. It is not safe for concurrent use;
// Session serializes access
type World struct {
	board *board.Board
	opts  Options
	sinks Sinks

	queue  *MoveQueue
	propel *PropelEvent
	tick   uint64

	collected int
	target    int
	moves     int

	dead        bool
	complete    bool
	held        bool
	followUp    FollowUp
	monstersDue bool

	statPushed *atomic.Int64
	statWoken  *atomic.Int64
	statSteps  *atomic.Int64
	statMoves  *atomic.Int64
	statDeaths *atomic.Int64
	statDead   *atomic.Bool
	statDone   *atomic.Bool
}

// NewWorld wraps a freshly built board. The diamond target is taken from the board
// as it is now, so call it before anything has moved
func NewWorld(b *board.Board, opts Options, sinks Sinks) *World {
	if opts.PropelDelay < 1 {
		opts.PropelDelay = constant.PropelDelayTicks
	}
	if opts.Moves <= 0 {
		opts.Moves = constant.UnlimitedMoves
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}

	target := level.DiamondTarget(b)
	if opts.DiamondTarget > 0 {
		target = opts.DiamondTarget
	}

	reg := opts.Status
	w := &World{
		board:      b,
		opts:       opts,
		sinks:      sinks.withDefaults(),
		queue:      NewMoveQueue(),
		target:     target,
		moves:      opts.Moves,
		statPushed: reg.Ints.Get(status.KeyQueuePushed),
		statWoken:  reg.Ints.Get(status.KeyCascadeWoken),
		statSteps:  reg.Ints.Get(status.KeyPropelSteps),
		statMoves:  reg.Ints.Get(status.KeyPlayerMoves),
		statDeaths: reg.Ints.Get(status.KeyPlayerDeaths),
		statDead:   reg.Bools.Get(status.KeyPlayerDead),
		statDone:   reg.Bools.Get(status.KeyLevelDone),
	}
	w.statDead.Store(false)
	w.statDone.Store(false)

	if kinds := uncoveredKinds(b); len(kinds) > 0 {
		log.Printf("Level holds %v with no rule entries, moves into them are rule gaps", kinds)
	}
	return w
}

// uncoveredKinds lists the kinds on the board the rule table has no entry for, in kind order
func uncoveredKinds(b *board.Board) []core.Kind {
	var seen [core.KindCount]bool
	for _, e := range b.Entities() {
		if e.Active && !rule.Covered(e.Kind) {
			seen[e.Kind] = true
		}
	}
	var out []core.Kind
	for k, ok := range seen {
		if ok {
			out = append(out, core.Kind(k))
		}
	}
	return out
}

// ===== QUERIES =====

// Board exposes the entity store, callers must not mutate it
func (w *World) Board() *board.Board { return w.board }

// Queue exposes the pending movement queue
func (w *World) Queue() *MoveQueue { return w.queue }

// Propelling returns the in-flight self-propelled move, if any
func (w *World) Propelling() (PropelEvent, bool) {
	if w.propel == nil {
		return PropelEvent{}, false
	}
	return *w.propel, true
}

// Ticks returns the number of Tick calls so far
func (w *World) Ticks() uint64 { return w.tick }

// LevelComplete reports whether the player reached an open exit
func (w *World) LevelComplete() bool { return w.complete }

// PlayerDead reports whether the player has been killed
func (w *World) PlayerDead() bool { return w.dead }

// DiamondsCollected returns the number of diamonds eaten so far
func (w *World) DiamondsCollected() int { return w.collected }

// DiamondsTarget returns the number of diamonds that opens the exit
func (w *World) DiamondsTarget() int { return w.target }

// DiamondsRemaining returns how many diamonds are still needed
func (w *World) DiamondsRemaining() int { return w.target - w.collected }

// MovesRemaining returns the budget left, -1 when unlimited
func (w *World) MovesRemaining() int {
	if w.moves == constant.UnlimitedMoves {
		return -1
	}
	return w.moves
}

// Busy reports whether entities are still settling, player input is refused meanwhile
func (w *World) Busy() bool {
	return w.propel != nil || w.queue.Len() > 0 || w.monstersDue
}

// Held reports whether a message waits for acknowledgement
func (w *World) Held() bool { return w.held }

// Pending returns the follow-up of the message being held
func (w *World) Pending() FollowUp {
	if !w.held {
		return FollowUpNone
	}
	return w.followUp
}

// Acknowledge closes the current message and returns its follow-up
// Only a dismissable message releases the hold; reload and next level are left to the session
func (w *World) Acknowledge() FollowUp {
	if !w.held {
		return FollowUpNone
	}
	f := w.followUp
	if f == FollowUpDismiss {
		w.held = false
		w.followUp = FollowUpNone
	}
	return f
}

// ===== HELPERS =====

func (w *World) message(text string, f FollowUp) {
	w.held = true
	w.followUp = f
	w.sinks.Message.OnMessage(text, f)
}

func (w *World) sound(s core.SoundType) {
	w.sinks.Audio.OnSound(s)
}

func (w *World) kill(cause rule.Cause) {
	if w.dead {
		return
	}
	w.dead = true
	w.propel = nil
	w.message(cause.Text, FollowUpReload)
	if cause.HasSound {
		w.sound(cause.Sound)
	}
	if p := w.board.Player(); p != nil {
		w.sinks.Render.OnAppearance(p.ID, AppearancePlayerDead)
	}
	w.statDeaths.Add(1)
	w.statDead.Store(true)
	log.Printf("Player died: %s", cause.Text)
}

func (w *World) relocate(id int, p core.Point) {
	w.board.Relocate(id, p)
	if e := w.board.Entity(id); e != nil && e.Pos == p {
		w.sinks.Render.OnEntityMoved(id, p.X, p.Y)
	}
}

func (w *World) remove(id int) {
	if e := w.board.Entity(id); e == nil || !e.Active {
		return
	}
	w.board.Deactivate(id)
	w.sinks.Render.OnEntityRemoved(id)
}

func (w *World) enqueue(id int) {
	if w.queue.Push(id) {
		w.statPushed.Add(1)
	}
}
