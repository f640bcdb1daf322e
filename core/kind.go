package core

// Kind is the closed set of entity types a level can contain
type Kind uint8

const (
	KindNone Kind = iota
	KindPlayer
	KindDarkWall
	KindLightWall
	KindLeftSlope
	KindRightSlope
	KindBoulder
	KindDiamond
	KindDirt
	KindLeftArrow
	KindRightArrow
	KindFire
	KindBalloon
	KindPortalIn
	KindPortalOut
	KindExit
	KindAddMoves
	KindBabyMonster
	KindBigMonster
	KindCage
	KindBomb
	KindCount
)

var kindNames = [KindCount]string{
	KindNone:        "space",
	KindPlayer:      "player",
	KindDarkWall:    "dark wall",
	KindLightWall:   "light wall",
	KindLeftSlope:   "left slope",
	KindRightSlope:  "right slope",
	KindBoulder:     "boulder",
	KindDiamond:     "diamond",
	KindDirt:        "dirt",
	KindLeftArrow:   "left arrow",
	KindRightArrow:  "right arrow",
	KindFire:        "fire",
	KindBalloon:     "balloon",
	KindPortalIn:    "portal in",
	KindPortalOut:   "portal out",
	KindExit:        "exit",
	KindAddMoves:    "add moves",
	KindBabyMonster: "baby monster",
	KindBigMonster:  "big monster",
	KindCage:        "cage",
	KindBomb:        "bomb",
}

// String returns the level designer name of the kind
func (k Kind) String() string {
	if k >= KindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Level text symbols. Space and '-' both denote an empty cell
var symbolKinds = map[rune]Kind{
	'@':  KindPlayer,
	' ':  KindNone,
	'-':  KindNone,
	'=':  KindDarkWall,
	'#':  KindLightWall,
	'/':  KindLeftSlope,
	'\\': KindRightSlope,
	'O':  KindBoulder,
	'*':  KindDiamond,
	':':  KindDirt,
	'<':  KindLeftArrow,
	'>':  KindRightArrow,
	'!':  KindFire,
	'^':  KindBalloon,
	'T':  KindPortalIn,
	'A':  KindPortalOut,
	'X':  KindExit,
	'C':  KindAddMoves,
	'S':  KindBabyMonster,
	'M':  KindBigMonster,
	'+':  KindCage,
	'B':  KindBomb,
}

var kindSymbols = func() [KindCount]rune {
	var out [KindCount]rune
	for r, k := range symbolKinds {
		if k != KindNone {
			out[k] = r
		}
	}
	out[KindNone] = ' '
	return out
}()

// KindFromSymbol maps a level text symbol to its kind
// ok is false for characters that are not part of the level alphabet
func KindFromSymbol(r rune) (Kind, bool) {
	k, ok := symbolKinds[r]
	return k, ok
}

// Symbol returns the canonical level text symbol for the kind
func (k Kind) Symbol() rune {
	if k >= KindCount {
		return '?'
	}
	return kindSymbols[k]
}

// Propelled reports whether the kind keeps moving on its own once woken
func (k Kind) Propelled() bool {
	switch k {
	case KindBoulder, KindLeftArrow, KindRightArrow, KindBalloon:
		return true
	}
	return false
}

// Heading is the fixed direction a propelled kind travels in
func (k Kind) Heading() Direction {
	switch k {
	case KindBoulder:
		return DirDown
	case KindLeftArrow:
		return DirLeft
	case KindRightArrow:
		return DirRight
	case KindBalloon:
		return DirUp
	}
	return DirNone
}
