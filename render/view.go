package render

import (
	"sync"

	"github.com/lixenwraith/dungeon-crawler/parameter"
)

// ViewMode selects the camera
type ViewMode uint8

const (
	ViewFollow   ViewMode = iota // Centered on the player, zoomable
	ViewOverview                 // Whole arena fitted to the screen
)

func (m ViewMode) String() string {
	if m == ViewOverview {
		return "overview"
	}
	return "follow"
}

// ViewState is the presentation-only state toggled by view intents
// Written by the input goroutine, read by the render loop
type ViewState struct {
	mu      sync.RWMutex
	mode    ViewMode
	scale   float64
	minimap bool
	stats   bool
}

// NewViewState returns the default follow camera with the minimap shown
func NewViewState() *ViewState {
	return &ViewState{
		mode:    ViewFollow,
		scale:   parameter.CameraDefaultScale,
		minimap: true,
	}
}

// ToggleMode switches between follow and overview
func (v *ViewState) ToggleMode() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.mode == ViewFollow {
		v.mode = ViewOverview
	} else {
		v.mode = ViewFollow
	}
}

// Closer zooms the follow camera in
func (v *ViewState) Closer() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.scale = max(v.scale-parameter.CameraScaleStep, parameter.CameraMinScale)
}

// Farther zooms the follow camera out
func (v *ViewState) Farther() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.scale = min(v.scale+parameter.CameraScaleStep, parameter.CameraMaxScale)
}

func (v *ViewState) ToggleMinimap() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.minimap = !v.minimap
}

func (v *ViewState) ToggleStats() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.stats = !v.stats
}

// Values returns a consistent copy of all fields
func (v *ViewState) Values() (mode ViewMode, scale float64, minimap, stats bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.mode, v.scale, v.minimap, v.stats
}
