package render

import (
	"github.com/lixenwraith/rockfall/core"
	"github.com/lixenwraith/rockfall/engine"
)

var kindGlyphs = [core.KindCount]rune{
	core.KindNone:        ' ',
	core.KindPlayer:      '@',
	core.KindDarkWall:    '▓',
	core.KindLightWall:   '░',
	core.KindLeftSlope:   '◢',
	core.KindRightSlope:  '◣',
	core.KindBoulder:     'O',
	core.KindDiamond:     '◆',
	core.KindDirt:        '·',
	core.KindLeftArrow:   '←',
	core.KindRightArrow:  '→',
	core.KindFire:        '¤',
	core.KindBalloon:     '♠',
	core.KindPortalIn:    '◎',
	core.KindPortalOut:   '○',
	core.KindExit:        '⌂',
	core.KindAddMoves:    '+',
	core.KindBabyMonster: 's',
	core.KindBigMonster:  'M',
	core.KindCage:        '#',
	core.KindBomb:        '●',
}

var playerGlyphs = map[engine.Appearance]rune{
	engine.AppearancePlayerLeft:  '◄',
	engine.AppearancePlayerRight: '►',
	engine.AppearancePlayerUp:    '▲',
	engine.AppearancePlayerDown:  '▼',
	engine.AppearancePlayerDead:  'X',
}

// Glyph returns the rune drawn for an entity of kind k showing appearance a
func Glyph(k core.Kind, a engine.Appearance) rune {
	if a == engine.AppearanceDiamond {
		return kindGlyphs[core.KindDiamond]
	}
	if r, ok := playerGlyphs[a]; ok && k == core.KindPlayer {
		return r
	}
	if k >= core.KindCount {
		return '?'
	}
	return kindGlyphs[k]
}
