package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rockfall/core"
)

// RGB color definitions for board cells
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background

	RgbDarkWall  = tcell.NewRGBColor(90, 90, 110)
	RgbLightWall = tcell.NewRGBColor(180, 180, 200)
	RgbSlope     = tcell.NewRGBColor(150, 150, 170)
	RgbBoulder   = tcell.NewRGBColor(170, 120, 70)  // Sandstone
	RgbDiamond   = tcell.NewRGBColor(80, 220, 255)  // Ice blue
	RgbDirt      = tcell.NewRGBColor(101, 67, 33)   // Dark brown
	RgbArrow     = tcell.NewRGBColor(255, 255, 255) // White
	RgbFire      = tcell.NewRGBColor(255, 80, 0)    // Hot orange
	RgbBalloon   = tcell.NewRGBColor(255, 120, 200) // Pink
	RgbPortal    = tcell.NewRGBColor(180, 100, 255) // Violet
	RgbExit      = tcell.NewRGBColor(0, 200, 0)     // Green
	RgbAddMoves  = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbBaby      = tcell.NewRGBColor(255, 80, 80)   // Light red
	RgbBig       = tcell.NewRGBColor(220, 20, 60)   // Crimson
	RgbCage      = tcell.NewRGBColor(200, 200, 0)   // Olive yellow
	RgbBomb      = tcell.NewRGBColor(255, 0, 0)     // Red

	RgbPlayer     = tcell.NewRGBColor(255, 165, 0) // Orange, same as the cursor it replaced
	RgbPlayerDead = tcell.NewRGBColor(255, 0, 0)   // Error red

	// HUD and overlay
	RgbStatusText   = tcell.NewRGBColor(0, 0, 0)
	RgbHudBg        = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbMovesBg      = tcell.NewRGBColor(255, 255, 255)
	RgbMovesLowBg   = tcell.NewRGBColor(200, 50, 50)
	RgbDiamondsBg   = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbOverlayBg    = tcell.NewRGBColor(128, 0, 128)   // Dark purple
	RgbOverlayText  = tcell.NewRGBColor(255, 255, 255)
	RgbOverlayHint  = tcell.NewRGBColor(180, 180, 180)
)

var kindColors = [core.KindCount]tcell.Color{
	core.KindPlayer:      RgbPlayer,
	core.KindDarkWall:    RgbDarkWall,
	core.KindLightWall:   RgbLightWall,
	core.KindLeftSlope:   RgbSlope,
	core.KindRightSlope:  RgbSlope,
	core.KindBoulder:     RgbBoulder,
	core.KindDiamond:     RgbDiamond,
	core.KindDirt:        RgbDirt,
	core.KindLeftArrow:   RgbArrow,
	core.KindRightArrow:  RgbArrow,
	core.KindFire:        RgbFire,
	core.KindBalloon:     RgbBalloon,
	core.KindPortalIn:    RgbPortal,
	core.KindPortalOut:   RgbPortal,
	core.KindExit:        RgbExit,
	core.KindAddMoves:    RgbAddMoves,
	core.KindBabyMonster: RgbBaby,
	core.KindBigMonster:  RgbBig,
	core.KindCage:        RgbCage,
	core.KindBomb:        RgbBomb,
}

// GetKindColor returns the foreground color for an entity kind
func GetKindColor(k core.Kind) tcell.Color {
	if k >= core.KindCount || k == core.KindNone {
		return tcell.ColorDefault
	}
	return kindColors[k]
}
