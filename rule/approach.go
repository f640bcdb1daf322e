package rule

import "github.com/lixenwraith/rockfall/core"

// Mover wildcards. They sit past the last real kind so they never collide with one
const (
	MoverOther core.Kind = core.KindCount + iota
	MoverAny
)

type moverRules map[core.Kind]Outcome

type occupantRules map[core.Approach]moverRules

// approachRules: occupant kind -> approach class (or any) -> mover kind (or other/any) -> outcome
// Entries marked guess were never confirmed in play and are kept as authored
var approachRules = map[core.Kind]occupantRules{
	core.KindPlayer: {
		core.ApproachTop: {
			core.KindBoulder:     Killed,
			core.KindBigMonster:  Killed,
			core.KindBabyMonster: Killed,
		},
		core.ApproachSide: {
			core.KindBoulder:     Blocked,
			core.KindRightArrow:  Killed,
			core.KindLeftArrow:   Killed,
			core.KindBigMonster:  Killed,
			core.KindBabyMonster: Killed,
		},
		core.ApproachBottom: {
			core.KindBalloon:     Blocked,
			core.KindBigMonster:  Killed,
			core.KindBabyMonster: Killed,
		},
	},

	// edible
	core.KindDiamond:  {core.ApproachAny: {core.KindPlayer: Consume, MoverOther: Blocked}},
	core.KindDirt:     {core.ApproachAny: {core.KindPlayer: Consume, MoverOther: Blocked}},
	core.KindAddMoves: {core.ApproachAny: {core.KindPlayer: Consume, MoverOther: Blocked}},

	// static
	core.KindDarkWall:   {core.ApproachAny: {MoverAny: Blocked}},
	core.KindLightWall:  {core.ApproachAny: {MoverAny: Blocked}},
	core.KindLeftSlope:  {core.ApproachAny: {core.KindPlayer: Blocked, MoverOther: Deflect}},
	core.KindRightSlope: {core.ApproachAny: {core.KindPlayer: Blocked, MoverOther: Deflect}},
	core.KindFire:       {core.ApproachAny: {core.KindPlayer: Killed, MoverOther: Blocked}},
	core.KindPortalIn:   {core.ApproachAny: {core.KindPlayer: Teleport, MoverOther: Blocked}},
	core.KindExit:       {core.ApproachAny: {core.KindPlayer: Exit, MoverOther: Blocked}},
	core.KindCage:       {core.ApproachAny: {core.KindBabyMonster: Consume, MoverOther: Blocked}},

	// dynamic
	core.KindLeftArrow: {
		core.ApproachSide:   {MoverAny: Blocked},
		core.ApproachTop:    {core.KindPlayer: Push, MoverOther: Blocked},
		core.ApproachBottom: {core.KindPlayer: Push, MoverOther: Blocked},
	},
	core.KindRightArrow: {
		core.ApproachSide:   {MoverAny: Blocked},
		core.ApproachTop:    {core.KindPlayer: Push, MoverOther: Blocked},
		core.ApproachBottom: {core.KindPlayer: Push, MoverOther: Blocked},
	},
	core.KindBoulder: {
		core.ApproachSide:   {core.KindPlayer: Push, MoverOther: Deflect},
		core.ApproachTop:    {core.KindBoulder: Deflect, MoverOther: Blocked},
		core.ApproachBottom: {MoverAny: Blocked},
	},
	core.KindBalloon: {
		core.ApproachSide: {
			core.KindPlayer:     Push,
			core.KindRightArrow: Consume,
			core.KindLeftArrow:  Consume,
			MoverOther:          Blocked,
		},
		core.ApproachTop:    {MoverAny: Blocked},
		core.ApproachBottom: {MoverAny: Blocked},
	},
	core.KindBigMonster: {
		core.ApproachAny: {
			core.KindPlayer:      Killed,
			core.KindLeftArrow:   Consume,
			core.KindRightArrow:  Consume,
			core.KindBoulder:     Consume,
			core.KindBalloon:     Blocked, // guess
			core.KindBabyMonster: Allowed, // guess
		},
	},
	core.KindBabyMonster: {
		core.ApproachAny: {
			core.KindPlayer:      Killed,
			core.KindLeftArrow:   Allowed, // guess
			core.KindRightArrow:  Allowed, // guess
			core.KindBoulder:     Allowed,
			core.KindBalloon:     Allowed, // guess
			core.KindBabyMonster: Allowed,
			core.KindBigMonster:  Allowed, // guess
		},
	},
}

// Lookup resolves the rule for a mover entering an occupant's cell
// Occupants with an any-direction entry ignore the approach class
// ok is false when the table has no entry, which is a table gap rather than a game state
func Lookup(occupant core.Kind, approach core.Approach, mover core.Kind) (Outcome, bool) {
	occ, ok := approachRules[occupant]
	if !ok {
		return Blocked, false
	}

	movers, ok := occ[core.ApproachAny]
	if !ok {
		if movers, ok = occ[approach]; !ok {
			return Blocked, false
		}
	}

	if o, ok := movers[mover]; ok {
		return o, true
	}
	if o, ok := movers[MoverOther]; ok {
		return o, true
	}
	if o, ok := movers[MoverAny]; ok {
		return o, true
	}
	return Blocked, false
}

// Covered reports whether the occupant has any rule entry at all
func Covered(occupant core.Kind) bool {
	_, ok := approachRules[occupant]
	return ok
}
