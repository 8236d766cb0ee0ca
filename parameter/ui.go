package parameter

import "time"

// HUD
const (
	// HUDLeftMargin is the column where HUD lines start
	HUDLeftMargin = 1

	// HealthHighThreshold and HealthLowThreshold split the health colour bands (>60 green, >30 yellow)
	HealthHighThreshold = 60
	HealthLowThreshold  = 30

	// TreasureBlinkInterval is the half-period of the uncollected treasure shimmer (2Hz toggle)
	TreasureBlinkInterval = 500 * time.Millisecond
)

// Glyphs
const (
	FloorChar      = '·'
	FloorAltChar   = ' '
	WallChar       = '█'
	ObstacleChar   = '▓'
	TreasureChar   = '$'
	TreasureOpen   = '_'
	PlayerChar     = '@'
	StealthChar    = 'o'
	MonsterDefault = 'M'
)

// FloorCellSize is the checkerboard cell side in arena units
const FloorCellSize = 50.0
