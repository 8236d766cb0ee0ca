package engine

import (
	"errors"

	"github.com/lixenwraith/dungeon-crawler/maze"
)

// ErrInvalidConfiguration is wrapped by every configuration rejection
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ErrGenerationFailed is returned by Start/Restart when the arena cannot be populated
var ErrGenerationFailed = maze.ErrGenerationFailed
