package render

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/dungeon-crawler/status"
)

// StatsRenderer lists the metric registry in the top-right corner
type StatsRenderer struct {
	reg *status.Registry
}

func NewStatsRenderer(reg *status.Registry) *StatsRenderer {
	return &StatsRenderer{reg: reg}
}

func (r *StatsRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	if !ctx.ShowStats || r.reg == nil {
		return
	}
	lines := r.reg.Lines()
	width := 0
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l))
	}
	x := max(ctx.ScreenWidth-width-1, 0)
	for i, l := range lines {
		buf.SetString(x, i, l, fg(RgbStats))
	}
}
