package render

import "github.com/lixenwraith/dungeon-crawler/status"

// NewGameRenderer wires the standard layers onto screen
func NewGameRenderer(screen Screen, reg *status.Registry) *RenderOrchestrator {
	o := NewRenderOrchestrator(screen)
	o.Register(&ArenaRenderer{}, PriorityBackground)
	o.Register(&EntityRenderer{}, PriorityEntities)
	o.Register(&MinimapRenderer{}, PriorityMinimap)
	o.Register(&HUDRenderer{}, PriorityUI)
	o.Register(&OverlayRenderer{}, PriorityOverlay)
	o.Register(NewStatsRenderer(reg), PriorityDebug)
	return o
}
