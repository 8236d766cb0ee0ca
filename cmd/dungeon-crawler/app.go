package main

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dungeon-crawler/engine"
	"github.com/lixenwraith/dungeon-crawler/input"
	"github.com/lixenwraith/dungeon-crawler/render"
	"github.com/lixenwraith/dungeon-crawler/system"
)

// syncer is the slice of tcell.Screen needed after a resize
type syncer interface {
	Sync()
}

// muter is the audio control surface used by the mute key
type muter interface {
	ToggleMute() bool
}

// game routes terminal events to the session, the view and the audio layer
type game struct {
	scheduler *engine.ClockScheduler
	view      *render.ViewState
	keys      *input.KeyTable
	sound     muter
	screen    syncer
}

// handleEvent processes one terminal event, returns false when the program should exit
func (g *game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		intent, boosted := g.keys.TranslateBoost(ev)
		if boosted {
			g.applyBoosted(intent)
			return true
		}
		return g.apply(intent)
	case *tcell.EventResize:
		if g.screen != nil {
			g.screen.Sync()
		}
	}
	return true
}

// apply executes an intent, returns false on Quit
func (g *game) apply(intent input.Intent) bool {
	switch intent {
	case input.IntentNone:
	case input.IntentQuit:
		return false
	case input.IntentToggleView:
		g.view.ToggleMode()
	case input.IntentToggleMinimap:
		g.view.ToggleMinimap()
	case input.IntentCameraCloser:
		g.view.Closer()
	case input.IntentCameraFarther:
		g.view.Farther()
	case input.IntentToggleStats:
		g.view.ToggleStats()
	case input.IntentToggleMute:
		if g.sound != nil {
			log.Printf("[audio] muted=%t", g.sound.ToggleMute())
		}
	default:
		if intent.Gameplay() {
			g.scheduler.Do(func(s *engine.Session) { applyToSession(s, intent) })
		}
	}
	return true
}

// applyBoosted requests the boost and moves in one step so both land before the next tick
func (g *game) applyBoosted(intent input.Intent) {
	g.scheduler.Do(func(s *engine.Session) {
		s.ActivateBoost()
		applyToSession(s, intent)
	})
}

// applyToSession maps a gameplay intent onto the session; status gating lives in the session
func applyToSession(s *engine.Session, intent input.Intent) {
	switch intent {
	case input.IntentStart:
		if _, err := s.Start(); err != nil {
			log.Printf("[session] start failed: %v", err)
		}
	case input.IntentRestart:
		if _, err := s.Restart(); err != nil {
			log.Printf("[session] restart failed: %v", err)
		}
	case input.IntentMoveForward:
		s.Move(system.DirForward)
	case input.IntentMoveBack:
		s.Move(system.DirBack)
	case input.IntentStrafeLeft:
		s.Move(system.DirStrafeLeft)
	case input.IntentStrafeRight:
		s.Move(system.DirStrafeRight)
	case input.IntentTurnLeft:
		s.Turn(1)
	case input.IntentTurnRight:
		s.Turn(-1)
	case input.IntentToggleStealth:
		s.ToggleStealth()
	case input.IntentActivateBoost:
		s.ActivateBoost()
	}
}
