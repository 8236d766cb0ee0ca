package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dungeon-crawler/engine"
	"github.com/lixenwraith/dungeon-crawler/input"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	f, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.Simulation != engine.DefaultConfig() {
		t.Errorf("simulation = %+v, want defaults", f.Simulation)
	}
	if f.TickInterval != 16*time.Millisecond {
		t.Errorf("tick interval = %v", f.TickInterval)
	}

	if f, err := Load(""); err != nil || f.Simulation != engine.DefaultConfig() {
		t.Errorf("empty path = %+v, %v", f.Simulation, err)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crawler.yaml")
	data := `
simulation:
  time_limit: 90s
  treasures: 7
  treasure_goal: 6
  monsters: 5
  seed: 42
audio:
  enabled: false
  master_volume: 0.2
keys:
  runes:
    j: move_back
tick_interval: 20ms
debug: true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	sim := f.Simulation
	if sim.TimeLimit != 90*time.Second || sim.Treasures != 7 || sim.TreasureGoal != 6 || sim.Monsters != 5 || sim.Seed != 42 {
		t.Errorf("simulation overrides not applied: %+v", sim)
	}
	if sim.PlayerRadius != engine.DefaultConfig().PlayerRadius {
		t.Errorf("untouched player_radius changed: %v", sim.PlayerRadius)
	}
	if f.Audio.Enabled || f.Audio.MasterVolume != 0.2 {
		t.Errorf("audio = %+v", f.Audio)
	}
	if f.TickInterval != 20*time.Millisecond || !f.Debug {
		t.Errorf("tick %v debug %v", f.TickInterval, f.Debug)
	}

	keys, err := f.KeyTable()
	if err != nil {
		t.Fatalf("KeyTable: %v", err)
	}
	if got := keys.Lookup(tcell.KeyRune, 'j'); got != input.IntentMoveBack {
		t.Errorf("j = %v, want move_back", got)
	}
	if got := keys.Lookup(tcell.KeyRune, 'w'); got != input.IntentMoveForward {
		t.Errorf("default w lost: %v", got)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"negative radius", "simulation:\n  player_radius: -3\n"},
		{"goal above count", "simulation:\n  treasures: 2\n  treasure_goal: 3\n"},
		{"zero tick", "tick_interval: 0s\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); !errors.Is(err, engine.ErrInvalidConfiguration) {
				t.Errorf("err = %v, want ErrInvalidConfiguration", err)
			}
		})
	}

	if _, err := Parse([]byte("simulation: [")); err == nil {
		t.Error("malformed yaml accepted")
	}
}

func TestKeyTableRejectsUnknownAction(t *testing.T) {
	f, err := Parse([]byte("keys:\n  runes:\n    w: teleport\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := f.KeyTable(); err == nil {
		t.Error("unknown action accepted")
	}
}
