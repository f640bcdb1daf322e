package engine

import (
	"sort"

	"github.com/lixenwraith/rockfall/board"
	"github.com/lixenwraith/rockfall/constant"
	"github.com/lixenwraith/rockfall/core"
	"github.com/lixenwraith/rockfall/rule"
)

type candidate struct {
	e        *board.Entity
	offset   core.Point
	priority int
	dist     float64
}

// Cascade wakes the dormant entities a completed move disturbs and queues them.
// Neighbours are scanned around the mover's old cell; the order they are queued in
// is kind priority, then distance, then higher rows first, then rightmost first
func (w *World) Cascade(from, to core.Point, mover core.Kind) {
	if w.dead || from == to {
		return
	}
	dir, ok := rule.CascadeDirection(mover, to.Sub(from))
	if !ok {
		return
	}

	var cands []candidate
	for _, e := range w.board.Within(from, constant.TriggerRadius) {
		if !e.Kind.Propelled() {
			continue
		}
		off := from.Sub(e.Pos)
		d, _ := rule.Distance(off)
		cands = append(cands, candidate{e: e, offset: off, priority: rule.Priority(e.Kind), dist: d})
	}

	sort.SliceStable(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.priority != b.priority {
			return a.priority < b.priority
		}
		if a.dist != b.dist {
			return a.dist < b.dist
		}
		if a.e.Pos.Y != b.e.Pos.Y {
			return a.e.Pos.Y > b.e.Pos.Y
		}
		return a.e.Pos.X > b.e.Pos.X
	})

	for _, c := range cands {
		if rule.Wakes(dir, mover, c.e.Kind, c.offset) {
			if w.queue.Push(c.e.ID) {
				w.statPushed.Add(1)
				w.statWoken.Add(1)
			}
		}
	}
}
