package rule

import "github.com/lixenwraith/rockfall/core"

// ===== CASCADE =====

// distances is the straight-line tie-break distance for every offset in the 5x5 scan box
var distances = map[core.Point]float64{
	{-2, -2}: 2.8, {-1, -2}: 2.2, {0, -2}: 2, {1, -2}: 2.2, {2, -2}: 2.8,
	{-2, -1}: 2.2, {-1, -1}: 1.4, {0, -1}: 1, {1, -1}: 1.4, {2, -1}: 2.2,
	{-2, 0}: 2, {-1, 0}: 1, {0, 0}: 0, {1, 0}: 1, {2, 0}: 2,
	{-2, 1}: 2.2, {-1, 1}: 1.4, {0, 1}: 1, {1, 1}: 1.4, {2, 1}: 2.2,
	{-2, 2}: 2.8, {-1, 2}: 2.2, {0, 2}: 2, {1, 2}: 2.2, {2, 2}: 2.8,
}

// Distance returns the tie-break distance of an offset, ok is false outside the scan box
func Distance(offset core.Point) (float64, bool) {
	d, ok := distances[offset]
	return d, ok
}

// Priority orders woken neighbours by kind, lower first. Non-triggerable kinds sort last
func Priority(k core.Kind) int {
	switch k {
	case core.KindBoulder:
		return 1
	case core.KindLeftArrow:
		return 2
	case core.KindRightArrow:
		return 3
	case core.KindBalloon:
		return 4
	}
	return 5
}

// stepDir maps a displacement to a motion class, horizontal first
func stepDir(d core.Point) TriggerDir {
	switch {
	case d.X > 0:
		return TriggerRight
	case d.X < 0:
		return TriggerLeft
	case d.Y > 0:
		return TriggerUp
	default:
		return TriggerDown
	}
}

// CascadeDirection returns the motion class a completed move is evaluated in
// ok is false when the mover kind does not wake neighbours moving that way
func CascadeDirection(mover core.Kind, delta core.Point) (TriggerDir, bool) {
	switch mover {
	case core.KindPlayer:
		if core.Abs(delta.X)+core.Abs(delta.Y) > 1 {
			return TriggerTeleport, true
		}
		return stepDir(delta), true
	case core.KindBoulder:
		return TriggerDown, delta.Y < 0
	case core.KindLeftArrow:
		return TriggerLeft, delta.X < 0
	case core.KindRightArrow:
		return TriggerRight, delta.X > 0
	case core.KindBalloon:
		return TriggerUp, delta.Y > 0
	case core.KindBabyMonster:
		return stepDir(delta), true
	}
	return 0, false
}

// ===== WALL FOLLOWER =====

// DefaultFacing is adopted when the initial scan finds nothing to anchor to
const DefaultFacing = core.DirDown

// rotations lists the candidate directions tried for each facing, in order
var rotations = map[core.Direction][4]core.Direction{
	core.DirUp:    {core.DirLeft, core.DirUp, core.DirRight, core.DirDown},
	core.DirRight: {core.DirUp, core.DirRight, core.DirDown, core.DirLeft},
	core.DirDown:  {core.DirRight, core.DirDown, core.DirLeft, core.DirUp},
	core.DirLeft:  {core.DirDown, core.DirLeft, core.DirUp, core.DirRight},
}

// Rotation returns the candidate order for a facing, ok is false for DirNone
func Rotation(facing core.Direction) ([4]core.Direction, bool) {
	r, ok := rotations[facing]
	return r, ok
}

// ScanStep pairs a neighbour offset with the facing it implies
type ScanStep struct {
	Offset core.Point
	Facing core.Direction
}

// InitialScan is checked in order, cardinals anti-clockwise from up, then diagonals
var InitialScan = [8]ScanStep{
	{core.Point{X: 0, Y: 1}, core.DirRight},
	{core.Point{X: -1, Y: 0}, core.DirUp},
	{core.Point{X: 0, Y: -1}, core.DirLeft},
	{core.Point{X: 1, Y: 0}, core.DirDown},
	{core.Point{X: -1, Y: 1}, core.DirUp},
	{core.Point{X: -1, Y: -1}, core.DirLeft},
	{core.Point{X: 1, Y: -1}, core.DirDown},
	{core.Point{X: 1, Y: 1}, core.DirRight},
}

// Walkable reports whether a baby monster treats an occupant of this kind as open ground
func Walkable(k core.Kind) bool {
	switch k {
	case core.KindPlayer, core.KindCage, core.KindDirt, core.KindBabyMonster:
		return true
	}
	return false
}
