package engine

import (
	"github.com/lixenwraith/rockfall/constant"
	"github.com/lixenwraith/rockfall/core"
	"github.com/lixenwraith/rockfall/rule"
)

var facingAppearance = map[core.Direction]Appearance{
	core.DirLeft:  AppearancePlayerLeft,
	core.DirRight: AppearancePlayerRight,
	core.DirUp:    AppearancePlayerUp,
	core.DirDown:  AppearancePlayerDown,
}

// SubmitIntent applies one player input. DirNone is a stationary move: nothing moves
// but monsters still take their turn and a move is spent
func (w *World) SubmitIntent(dir core.Direction) error {
	switch {
	case w.dead:
		return ErrDead
	case w.complete:
		return ErrComplete
	case w.held:
		return ErrHeld
	case w.Busy():
		return ErrBusy
	}

	w.sound(core.SoundTick)

	if p := w.board.Player(); p != nil && p.Active && dir != core.DirNone {
		from := p.Pos
		res := w.Resolve(from, from.Add(dir.Delta()), core.KindPlayer, true, p.ID)
		if res.Moved {
			w.sinks.Render.OnAppearance(p.ID, facingAppearance[dir])
			w.relocate(p.ID, res.To)
			w.Cascade(from, res.To, core.KindPlayer)
		}
	}

	w.monstersDue = true
	w.countMove()
	return nil
}

// countMove spends one move of a limited budget; running out kills unless the player
// is standing on the exit
func (w *World) countMove() {
	w.statMoves.Add(1)
	if w.moves == constant.UnlimitedMoves {
		return
	}
	w.moves--
	if w.moves > 0 || w.complete {
		return
	}
	p, exit := w.board.Player(), w.board.Exit()
	if p != nil && exit != nil && p.Pos == exit.Pos {
		return
	}
	w.kill(rule.Cause{Text: rule.MsgOutOfTime})
}
