package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(16, 16, 22)  // Near black
	RgbFloorA     = tcell.NewRGBColor(70, 70, 80)  // Checker light
	RgbFloorB     = tcell.NewRGBColor(45, 45, 55)  // Checker dark
	RgbWall       = tcell.NewRGBColor(130, 90, 60) // Brown boundary
	RgbObstacle   = tcell.NewRGBColor(120, 120, 130)

	RgbTreasure     = tcell.NewRGBColor(255, 215, 0)  // Gold
	RgbTreasureDim  = tcell.NewRGBColor(160, 130, 20) // Shimmer low phase
	RgbTreasureOpen = tcell.NewRGBColor(110, 90, 40)  // Emptied chest

	RgbPlayer        = tcell.NewRGBColor(80, 200, 255)
	RgbPlayerStealth = tcell.NewRGBColor(60, 90, 120) // Dimmed while hidden
	RgbPlayerFacing  = tcell.NewRGBColor(180, 230, 255)

	RgbMonsterPatrol = tcell.NewRGBColor(200, 80, 200) // Magenta
	RgbMonsterChase  = tcell.NewRGBColor(255, 60, 60)  // Red

	RgbHUD        = tcell.NewRGBColor(255, 255, 255)
	RgbHealthGood = tcell.NewRGBColor(0, 200, 0)
	RgbHealthWarn = tcell.NewRGBColor(230, 200, 0)
	RgbHealthBad  = tcell.NewRGBColor(230, 40, 40)
	RgbStealth    = tcell.NewRGBColor(140, 140, 255)
	RgbBoost      = tcell.NewRGBColor(255, 165, 0) // Orange

	RgbOverlayBg     = tcell.NewRGBColor(20, 20, 40)
	RgbOverlayBorder = tcell.NewRGBColor(100, 100, 160)
	RgbOverlayTitle  = tcell.NewRGBColor(255, 215, 0)

	RgbMinimapBorder = tcell.NewRGBColor(180, 180, 180)
	RgbStats         = tcell.NewRGBColor(150, 220, 150)
)

// Style helpers
func fg(c tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(c).Background(RgbBackground)
}

func fgBg(f, b tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(f).Background(b)
}
