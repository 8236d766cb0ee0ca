package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dungeon-crawler/component"
	"github.com/lixenwraith/dungeon-crawler/engine"
	"github.com/lixenwraith/dungeon-crawler/parameter"
	"github.com/lixenwraith/dungeon-crawler/vmath"
)

// ArenaRenderer draws the checkered floor, the boundary wall ring and obstacles
type ArenaRenderer struct{}

func (r *ArenaRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	if ctx.Snap.Status == engine.StatusNotStarted {
		return
	}
	for sy := range ctx.ScreenHeight {
		for sx := range ctx.ScreenWidth {
			x, y := ctx.ScreenToWorld(sx, sy)
			if ch, style, ok := arenaCell(&ctx, x, y); ok {
				buf.Set(sx, sy, ch, style)
			}
		}
	}
}

func arenaCell(ctx *RenderContext, x, y float64) (rune, tcell.Style, bool) {
	half := ctx.Snap.HalfExtent
	if math.Abs(x) > half || math.Abs(y) > half {
		// One cell thick ring just outside the bounds
		if math.Abs(x) <= half+ctx.Scale && math.Abs(y) <= half+2*ctx.Scale {
			return parameter.WallChar, fg(RgbWall), true
		}
		return 0, tcell.Style{}, false
	}

	for _, o := range ctx.Snap.Obstacles {
		if vmath.PointInRect(x, y, o.X, o.Y, o.Width, o.Height) {
			return parameter.ObstacleChar, fg(RgbObstacle), true
		}
	}

	cx := int(math.Floor(x / parameter.FloorCellSize))
	cy := int(math.Floor(y / parameter.FloorCellSize))
	if (cx+cy)%2 == 0 {
		return parameter.FloorChar, fg(RgbFloorA), true
	}
	return parameter.FloorChar, fg(RgbFloorB), true
}

// EntityRenderer draws treasures, monsters and the player on top of the arena
type EntityRenderer struct{}

func (r *EntityRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	snap := &ctx.Snap
	if snap.Status == engine.StatusNotStarted {
		return
	}

	shimmer := ctx.Now.UnixNano()/int64(parameter.TreasureBlinkInterval)%2 == 0
	for _, t := range snap.Treasures {
		sx, sy, ok := ctx.WorldToScreen(t.X, t.Y)
		if !ok {
			continue
		}
		switch {
		case t.Collected:
			buf.Set(sx, sy, parameter.TreasureOpen, fg(RgbTreasureOpen))
		case shimmer:
			buf.Set(sx, sy, parameter.TreasureChar, fg(RgbTreasure).Bold(true))
		default:
			buf.Set(sx, sy, parameter.TreasureChar, fg(RgbTreasureDim))
		}
	}

	for _, m := range snap.Monsters {
		sx, sy, ok := ctx.WorldToScreen(m.X, m.Y)
		if !ok {
			continue
		}
		style := fg(RgbMonsterPatrol)
		if m.Mode == component.MonsterChase {
			style = fg(RgbMonsterChase).Bold(true)
		}
		buf.Set(sx, sy, parameter.MonsterDefault, style)
	}

	p := snap.Player
	sx, sy, ok := ctx.WorldToScreen(p.X, p.Y)
	if !ok {
		return
	}

	// Facing marker in the neighbouring cell
	cos, sin := vmath.DirectionFromDeg(p.Angle)
	buf.Set(sx+int(math.Round(cos)), sy-int(math.Round(sin)), DirectionGlyph(p.Angle), fg(RgbPlayerFacing))

	if p.Stealth {
		buf.Set(sx, sy, parameter.StealthChar, fg(RgbPlayerStealth).Dim(true))
	} else {
		buf.Set(sx, sy, parameter.PlayerChar, fg(RgbPlayer).Bold(true))
	}
}

var directionGlyphs = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// DirectionGlyph returns the arrow closest to a facing angle in degrees
func DirectionGlyph(angle float64) rune {
	idx := int(math.Round(vmath.NormalizeDeg(angle)/45)) % 8
	return directionGlyphs[idx]
}
