package level

import (
	"fmt"

	"github.com/lixenwraith/rockfall/board"
	"github.com/lixenwraith/rockfall/constant"
	"github.com/lixenwraith/rockfall/core"
)

// Build populates a board from the level grid
// Cells are scanned from the top row down and left to right, so ids follow that order.
// Characters outside the level alphabet are ignored
func Build(l *Level) (*board.Board, error) {
	b := board.New()
	players := 0
	babies := false

	for i, row := range l.Rows {
		y := constant.BoardHeight - i
		runes := []rune(row)
		for x := 1; x <= constant.BoardWidth && x <= len(runes); x++ {
			kind, ok := core.KindFromSymbol(runes[x-1])
			if !ok || kind == core.KindNone {
				continue
			}
			p := core.Point{X: x, Y: y}
			if kind == core.KindPortalOut {
				b.SetPortalOut(p)
				continue
			}
			if _, err := b.Add(kind, p); err != nil {
				return nil, fmt.Errorf("level %d: %w", l.Number, err)
			}
			switch kind {
			case core.KindPlayer:
				players++
			case core.KindBabyMonster:
				babies = true
			}
		}
	}

	switch {
	case players == 0:
		return nil, fmt.Errorf("level %d: %w", l.Number, ErrNoPlayer)
	case players > 1:
		return nil, fmt.Errorf("level %d: %w: %d", l.Number, ErrManyPlayers, players)
	}

	if babies {
		b.AddRing()
	}
	return b, nil
}

// DiamondTarget is the number of diamonds needed to open the exit:
// every diamond plus one per baby monster that can be caged
func DiamondTarget(b *board.Board) int {
	return b.Count(core.KindDiamond) + min(b.Count(core.KindBabyMonster), b.Count(core.KindCage))
}
