package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/dungeon-crawler/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain; math.Log2(0) is -Inf so 0 maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is one enveloped oscillator note
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	attack := d / 20
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, d/2, rate)
}

// Sound effect generators

// CreatePickupSound is a bright two-partial ding
func CreatePickupSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.PickupCueDuration

	mixed := beep.Mix(
		newVolume(tone(880.0, d, WaveSine, rate), 0.7),
		newVolume(tone(1760.0, d, WaveSine, rate), 0.3),
	)
	return newVolume(mixed, cfg.EffectVolumes[SoundPickup]*cfg.MasterVolume)
}

// CreateHitSound is a short low saw buzz
func CreateHitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	shaped := tone(110.0, parameter.HitCueDuration, WaveSaw, rate)
	return newVolume(shaped, cfg.EffectVolumes[SoundHit]*cfg.MasterVolume)
}

// CreateBoostSound is a noise whoosh layered over a rising square
func CreateBoostSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.BoostCueDuration
	step := d / 4

	rise := beep.Seq(
		tone(330, step, WaveSquare, rate),
		tone(440, step, WaveSquare, rate),
		tone(554, step, WaveSquare, rate),
		tone(659, step, WaveSquare, rate),
	)
	mixed := beep.Mix(
		newVolume(tone(0, d, WaveNoise, rate), 0.25),
		newVolume(rise, 0.3),
	)
	return newVolume(mixed, cfg.EffectVolumes[SoundBoost]*cfg.MasterVolume)
}

// CreateSpottedSound is a two-blip alert
func CreateSpottedSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	blip := parameter.HitCueDuration
	seq := beep.Seq(tone(660, blip, WaveSquare, rate), tone(440, blip, WaveSquare, rate))
	return newVolume(seq, 0.5*cfg.EffectVolumes[SoundSpotted]*cfg.MasterVolume)
}

// CreateWinSound is a rising major arpeggio
func CreateWinSound(cfg *AudioConfig) beep.Streamer {
	return arpeggio(cfg, SoundWin, []float64{523.25, 659.25, 783.99, 1046.50}, WaveSine)
}

// CreateLoseSound is a falling minor arpeggio
func CreateLoseSound(cfg *AudioConfig) beep.Streamer {
	return arpeggio(cfg, SoundLose, []float64{392.00, 311.13, 261.63, 196.00}, WaveSquare)
}

func arpeggio(cfg *AudioConfig, st SoundType, freqs []float64, wave WaveType) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	step := parameter.EndCueDuration / time.Duration(len(freqs))

	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = tone(f, step, wave, rate)
	}
	return newVolume(beep.Seq(notes...), cfg.EffectVolumes[st]*cfg.MasterVolume)
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundPickup:
		return CreatePickupSound(cfg)
	case SoundHit:
		return CreateHitSound(cfg)
	case SoundBoost:
		return CreateBoostSound(cfg)
	case SoundSpotted:
		return CreateSpottedSound(cfg)
	case SoundWin:
		return CreateWinSound(cfg)
	case SoundLose:
		return CreateLoseSound(cfg)
	default:
		return nil
	}
}
