package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dungeon-crawler/engine"
	"github.com/lixenwraith/dungeon-crawler/parameter"
)

// HUDLine is one line of the top-left status block
type HUDLine struct {
	Text  string
	Style tcell.Style
}

// BuildHUD returns the status lines for a snapshot
// Gameplay lines only show while running; the boost line also shows a pending cooldown after the end
func BuildHUD(snap engine.Snapshot) []HUDLine {
	var lines []HUDLine
	running := snap.Status == engine.StatusRunning

	if running {
		lines = append(lines,
			HUDLine{FormatRemaining(snap.TimeLimit, snap.Elapsed), fg(RgbHUD)},
			HUDLine{fmt.Sprintf("Health: %d%%", snap.Player.Health), fg(HealthColor(snap.Player.Health)).Bold(true)},
			HUDLine{fmt.Sprintf("Treasures: %d/%d  %s", snap.Player.Treasures, snap.Goal,
				TreasureTrack(snap.Player.Treasures, snap.Goal)), fg(RgbTreasure)},
		)
		if snap.Player.Stealth {
			lines = append(lines, HUDLine{"STEALTH MODE ACTIVE", fg(RgbStealth).Bold(true)})
		}
	}

	if boost := BoostStatus(snap.Boost, running); boost != "" {
		lines = append(lines, HUDLine{boost, fg(RgbBoost)})
	}
	return lines
}

// FormatRemaining renders whole seconds left as MM:SS; elapsed is truncated so the
// first second of play still reads the full limit
func FormatRemaining(limit, elapsed time.Duration) string {
	left := max(int(limit.Seconds())-int(elapsed.Seconds()), 0)
	return fmt.Sprintf("Time Remaining: %02d:%02d", left/60, left%60)
}

// HealthColor maps health to the green/yellow/red bands
func HealthColor(health int) tcell.Color {
	switch {
	case health > parameter.HealthHighThreshold:
		return RgbHealthGood
	case health > parameter.HealthLowThreshold:
		return RgbHealthWarn
	default:
		return RgbHealthBad
	}
}

// BoostStatus is the speed boost line, empty when there is nothing to report
func BoostStatus(b engine.BoostView, running bool) string {
	switch {
	case b.Active:
		return "Speed Boost: ACTIVE"
	case b.RemainingCooldown > 0:
		return fmt.Sprintf("Speed Boost: Cooldown (%ds)", int(b.RemainingCooldown.Seconds()))
	case running:
		return "Speed Boost: Ready"
	default:
		return ""
	}
}

// TreasureTrack is one slot per goal treasure, filled as they are collected
func TreasureTrack(collected, goal int) string {
	collected = min(max(collected, 0), goal)
	return "[" + strings.Repeat(string(parameter.TreasureChar), collected) +
		strings.Repeat(string(parameter.TreasureOpen), goal-collected) + "]"
}

// HUDRenderer draws BuildHUD in the top-left corner
type HUDRenderer struct{}

func (r *HUDRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	for i, line := range BuildHUD(ctx.Snap) {
		buf.SetString(parameter.HUDLeftMargin, i, line.Text, line.Style)
	}
}
