package system

import (
	"github.com/lixenwraith/dungeon-crawler/component"
	"github.com/lixenwraith/dungeon-crawler/parameter"
	"github.com/lixenwraith/dungeon-crawler/vmath"
)

// Direction is a discrete movement intent relative to the player facing
type Direction uint8

const (
	DirForward Direction = iota
	DirBack
	DirStrafeLeft
	DirStrafeRight
)

func (d Direction) String() string {
	switch d {
	case DirForward:
		return "forward"
	case DirBack:
		return "back"
	case DirStrafeLeft:
		return "strafe-left"
	case DirStrafeRight:
		return "strafe-right"
	default:
		return "unknown"
	}
}

// Collider answers whether a circle may occupy a position
type Collider interface {
	Blocked(x, y, r float64) bool
}

// EffectiveSpeed composes base speed with the stealth and boost factors multiplicatively
func EffectiveSpeed(base float64, stealth bool, boostFactor float64) float64 {
	speed := base
	if stealth {
		speed *= parameter.StealthSpeedFactor
	}
	return speed * boostFactor
}

// CandidatePosition is where the player would end up moving speed units in dir
func CandidatePosition(p *component.PlayerComponent, dir Direction, speed float64) (x, y float64) {
	cos, sin := vmath.DirectionFromDeg(p.Angle)
	x, y = p.X, p.Y
	switch dir {
	case DirForward:
		x += speed * cos
		y += speed * sin
	case DirBack:
		x -= speed * cos
		y -= speed * sin
	case DirStrafeLeft:
		x -= speed * sin
		y += speed * cos
	case DirStrafeRight:
		x += speed * sin
		y -= speed * cos
	}
	return x, y
}

// MovePlayer commits the candidate move unless it is blocked; blocked moves are dropped whole,
// there is no sliding along walls. Returns true when the player moved
func MovePlayer(p *component.PlayerComponent, dir Direction, speed float64, collider Collider) bool {
	x, y := CandidatePosition(p, dir, speed)
	if collider.Blocked(x, y, p.Radius) {
		return false
	}
	p.X, p.Y = x, y
	return true
}

// TurnPlayer rotates the facing by delta degrees, keeping it in [0, 360)
func TurnPlayer(p *component.PlayerComponent, delta float64) {
	p.Angle = vmath.NormalizeDeg(p.Angle + delta)
}
