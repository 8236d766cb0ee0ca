package parameter

// Follow camera zoom in arena units per terminal column
// Terminal cells are roughly twice as tall as wide, rows use double the column scale
const (
	CameraDefaultScale = 10.0
	CameraMinScale     = 4.0
	CameraMaxScale     = 40.0
	CameraScaleStep    = 2.0
)

// Minimap size in terminal cells, bottom-right corner
const (
	MinimapWidth  = 30
	MinimapHeight = 15
)
