package rule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/rockfall/core"
)

// TriggerDir is the motion class a cascade is evaluated for
type TriggerDir uint8

const (
	TriggerUp TriggerDir = iota
	TriggerDown
	TriggerLeft
	TriggerRight
	TriggerTeleport
)

func (d TriggerDir) String() string {
	switch d {
	case TriggerUp:
		return "up"
	case TriggerDown:
		return "down"
	case TriggerLeft:
		return "left"
	case TriggerRight:
		return "right"
	case TriggerTeleport:
		return "teleport"
	}
	return "invalid"
}

// triggerTable: motion class -> mover kind -> neighbour kind -> offsets that wake the neighbour
// Offsets are "dx,dy" of mover (before its move) minus neighbour, e.g. a boulder at (5,11)
// over a player at (5,10) is "0,-1". The teleport section is largely guesswork
var triggerTable = map[TriggerDir]map[core.Kind]map[core.Kind][]string{
	TriggerUp: {
		core.KindPlayer: {
			core.KindBoulder:    {"-1,-1", "-1,0", "1,-1", "1,0"},
			core.KindBalloon:    {"-1,1", "-1,2", "0,1", "0,2", "1,1", "1,2"},
			core.KindRightArrow: {"1,0", "1,1", "2,0", "2,1", "0,1"},
			core.KindLeftArrow:  {"-1,0", "-1,1", "-2,0", "-2,1", "0,1"},
		},
		core.KindBalloon: {
			core.KindBoulder:    {"-1,-1", "-1,0", "1,-1", "1,0"},
			core.KindBalloon:    {"-1,1", "-1,2", "0,1", "0,2", "1,1", "1,2"},
			core.KindRightArrow: {"1,0", "1,1", "2,0", "2,1"},
			core.KindLeftArrow:  {"-1,0", "-1,1", "-2,0", "-2,1"},
		},
		core.KindBabyMonster: {
			core.KindBoulder:    {"-1,-1", "-1,0", "1,-1", "1,0"},
			core.KindBalloon:    {"-1,1", "-1,2", "0,1", "0,2", "1,1", "1,2"},
			core.KindRightArrow: {"1,0", "1,1", "2,0", "2,1", "0,1"},
			core.KindLeftArrow:  {"-1,0", "-1,1", "-2,0", "-2,1", "0,1"},
		},
		core.KindBigMonster: {
			core.KindBoulder:    {"-1,-1", "-1,0", "1,-1", "1,0"},
			core.KindBalloon:    {"-1,1", "-1,2", "0,1", "0,2", "1,1", "1,2"},
			core.KindRightArrow: {"1,0", "1,1", "2,0", "2,1", "0,1"},
			core.KindLeftArrow:  {"-1,0", "-1,1", "-2,0", "-2,1", "0,1"},
		},
	},
	TriggerDown: {
		core.KindPlayer: {
			core.KindBoulder:    {"-1,-1", "-1,-2", "0,-1", "0,-2", "1,-1", "1,-2"},
			core.KindBalloon:    {"1,1", "1,-1"},
			core.KindRightArrow: {"1,0", "1,-1", "2,0", "2,-1", "0,-1"},
			core.KindLeftArrow:  {"-1,0", "-1,-1", "-2,0", "-2,-1", "0,-1"},
		},
		core.KindBoulder: {
			core.KindBoulder:    {"-1,-1", "-1,-2", "0,-1", "0,-2", "1,-1", "1,-2"},
			core.KindBalloon:    {"1,1", "1,-1"},
			core.KindRightArrow: {"1,0", "1,-1", "2,0", "2,-1"},
			core.KindLeftArrow:  {"-1,0", "-1,-1", "-2,0", "-2,-1"},
		},
		core.KindBabyMonster: {
			core.KindBoulder:    {"-1,-1", "-1,-2", "0,-1", "0,-2", "1,-1", "1,-2"},
			core.KindBalloon:    {"1,1", "1,-1"},
			core.KindRightArrow: {"1,0", "1,-1", "2,0", "2,-1", "0,-1"},
			core.KindLeftArrow:  {"-1,0", "-1,-1", "-2,0", "-2,-1", "0,-1"},
		},
		core.KindBigMonster: {
			core.KindBoulder:    {"-1,-1", "-1,-2", "0,-1", "0,-2", "1,-1", "1,-2"},
			core.KindBalloon:    {"1,1", "1,-1"},
			core.KindRightArrow: {"1,0", "1,-1", "2,0", "2,-1", "0,-1"},
			core.KindLeftArrow:  {"-1,0", "-1,-1", "-2,0", "-2,-1", "0,-1"},
		},
	},
	TriggerLeft: {
		core.KindPlayer: {
			core.KindBoulder:    {"-1,0", "0,-1", "0,-2", "-1,-1", "-1,-2"},
			core.KindBalloon:    {"0,1", "0,2", "-1,1", "-1,2"},
			core.KindLeftArrow:  {"-1,-1", "-1,0", "-1,1", "-2,-1", "-2,0", "-2,1"},
			core.KindRightArrow: {"0,-1", "1,-1", "0,1", "1,1"},
		},
		core.KindLeftArrow: {
			core.KindBoulder:    {"-1,0", "0,-1", "0,-2", "-1,-1", "-1,-2", "2,-1"},
			core.KindBalloon:    {"0,1", "0,2", "-1,1", "-1,2"},
			core.KindLeftArrow:  {"-1,-1", "-1,0", "-1,1", "-2,-1", "-2,0", "-2,1"},
			core.KindRightArrow: {"0,-1", "1,-1", "0,1", "1,1"},
		},
		core.KindBabyMonster: {
			core.KindBoulder:    {"-1,0", "0,-1", "0,-2", "-1,-1", "-1,-2"},
			core.KindBalloon:    {"0,1", "0,2", "-1,1", "-1,2"},
			core.KindLeftArrow:  {"-1,-1", "-1,0", "-1,1", "-2,-1", "-2,0", "-2,1"},
			core.KindRightArrow: {"0,-1", "1,-1", "0,1", "1,1"},
		},
		core.KindBigMonster: {
			core.KindBoulder:    {"-1,0", "0,-1", "0,-2", "-1,-1", "-1,-2"},
			core.KindBalloon:    {"0,1", "0,2", "-1,1", "-1,2"},
			core.KindLeftArrow:  {"-1,-1", "-1,0", "-1,1", "-2,-1", "-2,0", "-2,1"},
			core.KindRightArrow: {"0,-1", "1,-1", "0,1", "1,1"},
		},
	},
	TriggerRight: {
		core.KindPlayer: {
			core.KindBoulder:    {"1,0", "0,-1", "0,-2", "1,-1", "1,-2"},
			core.KindBalloon:    {"0,1", "0,2", "1,1", "1,2"},
			core.KindRightArrow: {"0,-1", "1,-1", "1,0", "1,1", "2,-1", "2,0", "2,1"},
			core.KindLeftArrow:  {"0,-1", "-1,-1", "0,1", "-1,1"},
		},
		core.KindRightArrow: {
			core.KindBoulder:    {"1,0", "0,-1", "0,-2", "1,-1", "1,-2", "-2,-1"},
			core.KindBalloon:    {"0,1", "0,2", "1,1", "1,2"},
			core.KindRightArrow: {"0,-1", "1,-1", "1,0", "1,1", "2,-1", "2,0", "2,1"},
			core.KindLeftArrow:  {"0,-1", "-1,-1", "0,1", "-1,1"},
		},
		core.KindBabyMonster: {
			core.KindBoulder:    {"1,0", "0,-1", "0,-2", "1,-1", "1,-2"},
			core.KindBalloon:    {"0,1", "0,2", "1,1", "1,2"},
			core.KindRightArrow: {"0,-1", "1,-1", "1,0", "1,1", "2,-1", "2,0", "2,1"},
			core.KindLeftArrow:  {"0,-1", "-1,-1", "0,1", "-1,1"},
		},
		core.KindBigMonster: {
			core.KindBoulder:    {"1,0", "0,-1", "0,-2", "1,-1", "1,-2"},
			core.KindBalloon:    {"0,1", "0,2", "1,1", "1,2"},
			core.KindRightArrow: {"0,-1", "1,-1", "1,0", "1,1", "2,-1", "2,0", "2,1"},
			core.KindLeftArrow:  {"0,-1", "-1,-1", "0,1", "-1,1"},
		},
	},
	TriggerTeleport: {
		core.KindPlayer: {
			core.KindRightArrow: {"2,0", "1,0", "2,1", "1,1", "2,-1", "1,-1"},
			core.KindLeftArrow:  {"-2,0", "-1,0", "-2,1", "-1,1", "-2,-1", "-1,-1"},
			core.KindBoulder:    {"-1,-1", "-1,-2", "0,-1", "0,-2", "1,-1", "1,-2"},
			core.KindBalloon:    {"-1,1", "-1,2", "0,1", "0,2", "1,1", "1,2"},
		},
	},
}

type triggerKey struct {
	dir       TriggerDir
	mover     core.Kind
	neighbour core.Kind
}

// compiled offset sets, built once from triggerTable
var triggerSets = compileTriggers()

func compileTriggers() map[triggerKey]map[core.Point]struct{} {
	out := make(map[triggerKey]map[core.Point]struct{})
	for dir, movers := range triggerTable {
		for mover, neighbours := range movers {
			for neighbour, offsets := range neighbours {
				set := make(map[core.Point]struct{}, len(offsets))
				for _, s := range offsets {
					p, err := ParseOffset(s)
					if err != nil {
						panic(fmt.Sprintf("rule: trigger table %s/%s/%s: %v", dir, mover, neighbour, err))
					}
					set[p] = struct{}{}
				}
				out[triggerKey{dir, mover, neighbour}] = set
			}
		}
	}
	return out
}

// ParseOffset parses an authored "dx,dy" offset
func ParseOffset(s string) (core.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return core.Point{}, fmt.Errorf("offset %q has no comma", s)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return core.Point{}, fmt.Errorf("offset %q: %w", s, err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return core.Point{}, fmt.Errorf("offset %q: %w", s, err)
	}
	return core.Point{X: x, Y: y}, nil
}

// Wakes reports whether a neighbour at the given offset is woken by the move
// Missing table sections wake nothing
func Wakes(dir TriggerDir, mover, neighbour core.Kind, offset core.Point) bool {
	set, ok := triggerSets[triggerKey{dir, mover, neighbour}]
	if !ok {
		return false
	}
	_, hit := set[offset]
	return hit
}

// Triggers returns the authored offsets for a table cell, in authored order
func Triggers(dir TriggerDir, mover, neighbour core.Kind) []core.Point {
	raw := triggerTable[dir][mover][neighbour]
	out := make([]core.Point, 0, len(raw))
	for _, s := range raw {
		p, _ := ParseOffset(s)
		out = append(out, p)
	}
	return out
}
