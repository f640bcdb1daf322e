package engine

import (
	"github.com/lixenwraith/rockfall/constant"
	"github.com/lixenwraith/rockfall/core"
)

// deflect finds the cell a mover slides to when its path is blocked by a slope or a
// rounded object. Both cells the mover sweeps through must be empty.
// A right slope ('\') sends boulders right and right arrows down; a left slope ('/') mirrors it
func (w *World) deflect(from, to core.Point, mover, occupant core.Kind) (core.Point, bool) {
	empty := func(x, y int) bool {
		return w.board.Empty(core.Point{X: x, Y: y})
	}
	x1, y1, x2, y2 := from.X, from.Y, to.X, to.Y

	switch mover {
	case core.KindBoulder:
		if empty(x2-1, y2+1) && empty(x2-1, y2) && x2-1 >= 1 && occupant != core.KindRightSlope {
			return core.Point{X: x2 - 1, Y: y2}, true
		}
		if empty(x2+1, y2+1) && empty(x2+1, y2) && x2+1 <= constant.BoardWidth && occupant != core.KindLeftSlope {
			return core.Point{X: x2 + 1, Y: y2}, true
		}

	case core.KindRightArrow:
		if empty(x1, y1+1) && empty(x2, y1+1) && y2 < constant.BoardHeight && occupant != core.KindRightSlope {
			return core.Point{X: x2, Y: y2 + 1}, true
		}
		if empty(x1, y2-1) && empty(x2, y2-1) && y2 > 1 && occupant == core.KindRightSlope {
			return core.Point{X: x2, Y: y2 - 1}, true
		}

	case core.KindLeftArrow:
		if empty(x1, y1+1) && empty(x2, y1+1) && y2 < constant.BoardHeight && occupant != core.KindLeftSlope {
			return core.Point{X: x2, Y: y2 + 1}, true
		}
		if empty(x1, y1-1) && empty(x2, y1-1) && y2 > 1 && occupant == core.KindLeftSlope {
			return core.Point{X: x2, Y: y2 - 1}, true
		}

	case core.KindBalloon:
		if empty(x2-1, y2) && empty(x2-1, y1) && x2-1 >= 1 && occupant == core.KindRightSlope {
			return core.Point{X: x2 - 1, Y: y2}, true
		}
		if empty(x2+1, y2) && empty(x2+1, y1) && x2+1 <= constant.BoardWidth && occupant == core.KindLeftSlope {
			return core.Point{X: x2 + 1, Y: y2}, true
		}
	}
	return core.Point{}, false
}
