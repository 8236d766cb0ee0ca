// Package config loads the optional YAML settings file
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/dungeon-crawler/audio"
	"github.com/lixenwraith/dungeon-crawler/engine"
	"github.com/lixenwraith/dungeon-crawler/input"
	"github.com/lixenwraith/dungeon-crawler/parameter"
)

// File is the on-disk settings layout; every section is optional
type File struct {
	Simulation    engine.Config     `yaml:"simulation"`
	Keys          input.KeyBindings `yaml:"keys"`
	Audio         audio.AudioConfig `yaml:"audio"`
	TickInterval  time.Duration     `yaml:"tick_interval"`
	FrameInterval time.Duration     `yaml:"frame_interval"`
	Debug         bool              `yaml:"debug"`
}

// Default returns the settings used when no file is given
func Default() File {
	return File{
		Simulation:    engine.DefaultConfig(),
		Audio:         *audio.DefaultAudioConfig(),
		TickInterval:  parameter.GameUpdateInterval,
		FrameInterval: parameter.FrameUpdateInterval,
	}
}

// Load reads path over the defaults; an empty path or a missing file yields the defaults
func Load(path string) (File, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return File{}, fmt.Errorf("config %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("config %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes YAML over the defaults and validates the result
// Keys absent from data keep their default values
func Parse(data []byte) (File, error) {
	f := Default()
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse: %w", err)
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Validate checks the loop timings and the simulation rules
func (f *File) Validate() error {
	if f.TickInterval <= 0 {
		return fmt.Errorf("%w: tick_interval must be positive, got %v", engine.ErrInvalidConfiguration, f.TickInterval)
	}
	if f.FrameInterval <= 0 {
		return fmt.Errorf("%w: frame_interval must be positive, got %v", engine.ErrInvalidConfiguration, f.FrameInterval)
	}
	return f.Simulation.Validate()
}

// KeyTable returns the default bindings with the file's overrides applied
func (f *File) KeyTable() (*input.KeyTable, error) {
	override, err := f.Keys.Table()
	if err != nil {
		return nil, fmt.Errorf("keys: %w", err)
	}
	return input.MergeKeyTable(input.DefaultKeyTable(), override), nil
}
