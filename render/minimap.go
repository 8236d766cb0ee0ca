package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dungeon-crawler/component"
	"github.com/lixenwraith/dungeon-crawler/engine"
	"github.com/lixenwraith/dungeon-crawler/parameter"
	"github.com/lixenwraith/dungeon-crawler/vmath"
)

// MinimapRenderer draws the whole arena in the bottom-right corner of the follow view
type MinimapRenderer struct{}

func (r *MinimapRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	snap := &ctx.Snap
	if !ctx.ShowMinimap || ctx.Mode != ViewFollow || snap.Status == engine.StatusNotStarted {
		return
	}
	w, h := parameter.MinimapWidth, parameter.MinimapHeight
	if ctx.ScreenWidth < 2*w || ctx.ScreenHeight < 2*h {
		return
	}

	x0 := ctx.ScreenWidth - w
	y0 := ctx.ScreenHeight - h
	mm := minimapProjection{x: x0 + 1, y: y0 + 1, w: w - 2, h: h - 2, half: snap.HalfExtent}

	buf.Fill(x0, y0, w, h, ' ', fg(RgbFloorB))
	drawBox(buf, x0, y0, w, h, fg(RgbMinimapBorder))

	for row := range mm.h {
		for col := range mm.w {
			x, y := mm.toWorld(col, row)
			for _, o := range snap.Obstacles {
				if vmath.PointInRect(x, y, o.X, o.Y, o.Width, o.Height) {
					buf.Set(mm.x+col, mm.y+row, parameter.ObstacleChar, fg(RgbObstacle))
					break
				}
			}
		}
	}

	for _, t := range snap.Treasures {
		if !t.Collected {
			sx, sy := mm.toScreen(t.X, t.Y)
			buf.Set(sx, sy, parameter.TreasureChar, fg(RgbTreasure))
		}
	}
	for _, m := range snap.Monsters {
		style := fg(RgbMonsterPatrol)
		if m.Mode == component.MonsterChase {
			style = fg(RgbMonsterChase)
		}
		sx, sy := mm.toScreen(m.X, m.Y)
		buf.Set(sx, sy, parameter.MonsterDefault, style)
	}

	sx, sy := mm.toScreen(snap.Player.X, snap.Player.Y)
	buf.Set(sx, sy, parameter.PlayerChar, fg(RgbPlayer).Bold(true))
}

// minimapProjection maps the arena square onto the inner minimap rectangle
type minimapProjection struct {
	x, y, w, h int
	half       float64
}

func (m minimapProjection) toScreen(wx, wy float64) (int, int) {
	fx := (wx + m.half) / (2 * m.half)
	fy := (m.half - wy) / (2 * m.half)
	col := min(max(int(math.Round(fx*float64(m.w-1))), 0), m.w-1)
	row := min(max(int(math.Round(fy*float64(m.h-1))), 0), m.h-1)
	return m.x + col, m.y + row
}

func (m minimapProjection) toWorld(col, row int) (float64, float64) {
	wx := -m.half + (float64(col)+0.5)/float64(m.w)*2*m.half
	wy := m.half - (float64(row)+0.5)/float64(m.h)*2*m.half
	return wx, wy
}

// drawBox outlines a rectangle with single-line box glyphs
func drawBox(buf *RenderBuffer, x, y, w, h int, style tcell.Style) {
	for col := x + 1; col < x+w-1; col++ {
		buf.Set(col, y, '─', style)
		buf.Set(col, y+h-1, '─', style)
	}
	for row := y + 1; row < y+h-1; row++ {
		buf.Set(x, row, '│', style)
		buf.Set(x+w-1, row, '│', style)
	}
	buf.Set(x, y, '┌', style)
	buf.Set(x+w-1, y, '┐', style)
	buf.Set(x, y+h-1, '└', style)
	buf.Set(x+w-1, y+h-1, '┘', style)
}
