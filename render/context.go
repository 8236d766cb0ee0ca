package render

import (
	"math"
	"time"

	"github.com/lixenwraith/dungeon-crawler/engine"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Snap engine.Snapshot
	Now  time.Time

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Camera: world point drawn at the screen center and arena units per column
	// Rows cover twice the column scale since terminal cells are about 2:1
	Mode    ViewMode
	CenterX float64
	CenterY float64
	Scale   float64

	ShowMinimap bool
	ShowStats   bool
}

// NewRenderContext derives the camera for snap from the view state
func NewRenderContext(snap engine.Snapshot, view *ViewState, width, height int) RenderContext {
	mode, scale, minimap, stats := view.Values()
	rc := RenderContext{
		Snap:         snap,
		Now:          snap.Now,
		ScreenWidth:  width,
		ScreenHeight: height,
		Mode:         mode,
		Scale:        scale,
		ShowMinimap:  minimap,
		ShowStats:    stats,
	}

	switch mode {
	case ViewOverview:
		rc.Scale = FitScale(snap.HalfExtent, width, height)
	default:
		rc.CenterX, rc.CenterY = snap.Player.X, snap.Player.Y
	}
	return rc
}

// FitScale is the smallest scale showing the whole [-half, half] square plus the wall ring
func FitScale(half float64, width, height int) float64 {
	if width <= 2 || height <= 2 {
		return math.Max(half, 1)
	}
	side := 2 * half
	byCols := side / float64(width-2)
	byRows := side / float64(2*(height-2))
	return math.Max(byCols, byRows)
}

// WorldToScreen converts arena coordinates to a screen cell
// Returns (sx, sy, visible) where visible=false if outside the screen
func (rc *RenderContext) WorldToScreen(x, y float64) (int, int, bool) {
	sx := rc.ScreenWidth/2 + int(math.Round((x-rc.CenterX)/rc.Scale))
	sy := rc.ScreenHeight/2 - int(math.Round((y-rc.CenterY)/(2*rc.Scale)))
	visible := sx >= 0 && sx < rc.ScreenWidth && sy >= 0 && sy < rc.ScreenHeight
	return sx, sy, visible
}

// ScreenToWorld returns the arena point at the center of a screen cell
func (rc *RenderContext) ScreenToWorld(sx, sy int) (float64, float64) {
	x := rc.CenterX + float64(sx-rc.ScreenWidth/2)*rc.Scale
	y := rc.CenterY - float64(sy-rc.ScreenHeight/2)*2*rc.Scale
	return x, y
}
