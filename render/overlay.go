package render

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/dungeon-crawler/engine"
	"github.com/lixenwraith/dungeon-crawler/event"
)

// OverlayLines returns the centered message for non-running states, title empty while running
func OverlayLines(snap engine.Snapshot) (title string, lines []string) {
	switch snap.Status {
	case engine.StatusNotStarted:
		return "DUNGEON CRAWLER", []string{
			"Find all treasures before time runs out!",
			"Press SPACE to start the game",
			"Use W,A,S,D to move, Q,E to turn, C for stealth mode, B for speed boost",
			"Avoid monsters and collect treasures!",
		}
	case engine.StatusLost:
		reason := "Out of time"
		if snap.LossReason == event.LossHealth {
			reason = "Out of health"
		}
		return "GAME OVER", []string{reason, "Press R to restart"}
	case engine.StatusWon:
		return "YOU WIN!", []string{"All treasures collected!", "Press R to restart"}
	default:
		return "", nil
	}
}

// OverlayRenderer draws the start, game over and win boxes
type OverlayRenderer struct{}

func (r *OverlayRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	title, lines := OverlayLines(ctx.Snap)
	if title == "" {
		return
	}

	inner := runewidth.StringWidth(title)
	for _, l := range lines {
		inner = max(inner, runewidth.StringWidth(l))
	}
	w := inner + 4
	h := len(lines) + 4
	x0 := (ctx.ScreenWidth - w) / 2
	y0 := (ctx.ScreenHeight - h) / 2

	bg := fgBg(RgbHUD, RgbOverlayBg)
	buf.Fill(x0, y0, w, h, ' ', bg)
	drawBox(buf, x0, y0, w, h, fgBg(RgbOverlayBorder, RgbOverlayBg))

	center := func(s string) int { return x0 + (w-runewidth.StringWidth(s))/2 }
	buf.SetString(center(title), y0+1, title, fgBg(RgbOverlayTitle, RgbOverlayBg).Bold(true))
	for i, l := range lines {
		buf.SetString(center(l), y0+3+i, l, bg)
	}
}
