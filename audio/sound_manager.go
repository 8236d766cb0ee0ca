package audio

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/dungeon-crawler/event"
	"github.com/lixenwraith/dungeon-crawler/parameter"
)

// SoundManager plays procedural cues for gameplay events
// Every method is safe to call before Initialize or after a failed one; playback is then a no-op
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool

	lastHit time.Time
	now     func() time.Time
}

// NewSoundManager creates a new sound manager, cfg nil selects defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	cfg.Resolve()
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize sets up the speaker; failure leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and detaches from the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	sm.initialized = false
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (sm *SoundManager) SetMuted(m bool) { sm.muted.Store(m) }
func (sm *SoundManager) Muted() bool     { return sm.muted.Load() }

// Play starts a cue; returns false when it was dropped (uninitialized, muted or throttled)
func (sm *SoundManager) Play(st SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.admit(st) || !sm.initialized {
		return false
	}

	streamer := GetSoundEffect(st, sm.cfg)
	if streamer == nil {
		return false
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// admit applies mute and the hit throttle; caller holds mu
func (sm *SoundManager) admit(st SoundType) bool {
	if sm.muted.Load() || !sm.cfg.Enabled {
		return false
	}
	if st == SoundHit {
		now := sm.now()
		if now.Sub(sm.lastHit) < parameter.MinHitCueGap {
			return false
		}
		sm.lastHit = now
	}
	return true
}

// HandleEvent maps a gameplay event to its cue
func (sm *SoundManager) HandleEvent(ev event.GameEvent) {
	if st, ok := SoundForEvent(ev); ok {
		sm.Play(st)
	}
}

// SoundForEvent returns the cue for an event type, false for silent events
func SoundForEvent(ev event.GameEvent) (SoundType, bool) {
	switch ev.Type {
	case event.EventTreasureCollected:
		return SoundPickup, true
	case event.EventPlayerDamaged:
		return SoundHit, true
	case event.EventBoostActivated:
		return SoundBoost, true
	case event.EventMonsterSpotted:
		return SoundSpotted, true
	case event.EventSessionWon:
		return SoundWin, true
	case event.EventSessionLost:
		return SoundLose, true
	default:
		return 0, false
	}
}

// InitializeOrLog is Initialize for callers that run fine without sound
func (sm *SoundManager) InitializeOrLog() {
	if err := sm.Initialize(); err != nil {
		log.Printf("[audio] speaker unavailable, continuing silent: %v", err)
	}
}
