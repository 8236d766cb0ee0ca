package engine

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
}

func TestConfigValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative radius", func(c *Config) { c.PlayerRadius = -1 }},
		{"zero half extent", func(c *Config) { c.HalfExtent = 0 }},
		{"no room outside spawn", func(c *Config) { c.HalfExtent = 140 }},
		{"goal above treasure count", func(c *Config) { c.TreasureGoal = c.Treasures + 1 }},
		{"zero goal", func(c *Config) { c.TreasureGoal = 0 }},
		{"inverted obstacle sizes", func(c *Config) { c.ObstacleMinSize, c.ObstacleMaxSize = 200, 50 }},
		{"zero speed", func(c *Config) { c.PlayerSpeed = 0 }},
		{"zero health", func(c *Config) { c.PlayerHealth = 0 }},
		{"zero time limit", func(c *Config) { c.TimeLimit = 0 }},
		{"negative cooldown", func(c *Config) { c.BoostCooldown = -time.Second }},
		{"negative monsters", func(c *Config) { c.Monsters = -1 }},
		{"zero placement attempts", func(c *Config) { c.MaxPlacementAttempts = 0 }},
		{"player wider than spawn zone", func(c *Config) { c.PlayerRadius = 150 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("Validate = %v, want ErrInvalidConfiguration", err)
			}
		})
	}
}
