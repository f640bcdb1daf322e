package engine

import (
	"github.com/lixenwraith/rockfall/board"
	"github.com/lixenwraith/rockfall/core"
	"github.com/lixenwraith/rockfall/rule"
)

// runMonsters gives every monster its turn after a player input
func (w *World) runMonsters() {
	w.pursue()
	if !w.dead {
		w.followWalls()
	}
}

// pursue steps the big monster one cell toward the player along the axis with the
// larger gap, falling back to the other axis when that one is refused.
// Both axes are resolved, so either can catch the player
func (w *World) pursue() {
	m, p := w.board.BigMonster(), w.board.Player()
	if m == nil || !m.Active || p == nil || !p.Active {
		return
	}

	d := p.Pos.Sub(m.Pos)
	var xRes, yRes Result
	if d.X != 0 {
		xRes = w.Resolve(m.Pos, m.Pos.Add(core.Point{X: core.Sign(d.X)}), core.KindBigMonster, true, m.ID)
	}
	if d.Y != 0 {
		yRes = w.Resolve(m.Pos, m.Pos.Add(core.Point{Y: core.Sign(d.Y)}), core.KindBigMonster, true, m.ID)
	}

	first, second := yRes, xRes
	if core.Abs(d.X) > core.Abs(d.Y) {
		first, second = xRes, yRes
	}
	switch {
	case first.Moved:
		w.relocate(m.ID, first.To)
	case second.Moved:
		w.relocate(m.ID, second.To)
	}
}

// followWalls moves every baby monster one cell, keeping a wall on its left hand
func (w *World) followWalls() {
	for _, id := range w.board.BabyMonsters() {
		if w.dead {
			return
		}
		e := w.board.Entity(id)
		if e == nil || !e.Active || e.Kind != core.KindBabyMonster {
			continue
		}
		if e.Facing == core.DirNone {
			e.Facing = w.initialFacing(e.Pos)
		}
		w.crawl(e)
	}
}

// initialFacing anchors a baby monster to the first solid neighbour it sees
func (w *World) initialFacing(p core.Point) core.Direction {
	for _, s := range rule.InitialScan {
		id, ok := w.board.OccupantAt(p.Add(s.Offset), core.KindNone)
		if ok && !rule.Walkable(w.board.Entity(id).Kind) {
			return s.Facing
		}
	}
	return rule.DefaultFacing
}

// crawl tries the rotation of the current facing and takes the first open cell.
// The resolver runs for its side effects only; the monster moves whatever it answers
func (w *World) crawl(e *board.Entity) {
	order, ok := rule.Rotation(e.Facing)
	if !ok {
		return
	}
	for _, dir := range order {
		to := e.Pos.Add(dir.Delta())
		if !w.open(to) {
			continue
		}
		from := e.Pos
		w.Resolve(from, to, core.KindBabyMonster, true, e.ID)
		w.relocate(e.ID, to)
		e.Facing = dir
		w.Cascade(from, to, core.KindBabyMonster)
		return
	}
}

// open reports whether a baby monster may step onto p
func (w *World) open(p core.Point) bool {
	if !board.InBounds(p) {
		return false
	}
	id, ok := w.board.OccupantAt(p, core.KindBabyMonster)
	return !ok || rule.Walkable(w.board.Entity(id).Kind)
}
