package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/bobby-glide/internal/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// Cue timing
const (
	coinNoteDuration  = 60 * time.Millisecond
	coinAttack        = 4 * time.Millisecond
	coinRelease       = 40 * time.Millisecond
	zapDuration       = 350 * time.Millisecond
	zapAttack         = 5 * time.Millisecond
	zapRelease        = 250 * time.Millisecond
	levelNoteDuration = 90 * time.Millisecond
	levelAttack       = 6 * time.Millisecond
	levelRelease      = 60 * time.Millisecond
	winNoteDuration   = 140 * time.Millisecond
	winRelease        = 100 * time.Millisecond
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

// NewOscillator creates a fixed-length tone.
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
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
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

// envelope applies linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope shapes s with an attack ramp and a release tail.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
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
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; 0 or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func note(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

// CoinSound is a quick rising two-note blip.
func CoinSound(rate beep.SampleRate, vol float64) beep.Streamer {
	return newVolume(beep.Seq(
		note(987.77, WaveSquare, coinNoteDuration, coinAttack, coinRelease, rate),
		note(1318.51, WaveSquare, coinNoteDuration, coinAttack, coinRelease, rate),
	), vol*0.6)
}

// ZapSound is a low detuned saw buzz.
func ZapSound(rate beep.SampleRate, vol float64) beep.Streamer {
	return newVolume(beep.Mix(
		note(110, WaveSaw, zapDuration, zapAttack, zapRelease, rate),
		note(116.5, WaveSaw, zapDuration, zapAttack, zapRelease, rate),
	), vol*0.5)
}

// LevelSound is an ascending triad.
func LevelSound(rate beep.SampleRate, vol float64) beep.Streamer {
	return newVolume(beep.Seq(
		note(523.25, WaveTriangle, levelNoteDuration, levelAttack, levelRelease, rate),
		note(659.25, WaveTriangle, levelNoteDuration, levelAttack, levelRelease, rate),
		note(783.99, WaveTriangle, levelNoteDuration, levelAttack, levelRelease, rate),
	), vol)
}

// WinSound is a longer fanfare ending on the octave.
func WinSound(rate beep.SampleRate, vol float64) beep.Streamer {
	return newVolume(beep.Seq(
		note(523.25, WaveSine, winNoteDuration, levelAttack, winRelease, rate),
		note(659.25, WaveSine, winNoteDuration, levelAttack, winRelease, rate),
		note(783.99, WaveSine, winNoteDuration, levelAttack, winRelease, rate),
		note(1046.50, WaveSine, 2*winNoteDuration, levelAttack, 2*winRelease, rate),
	), vol)
}

// SoundFor returns the cue for a game event, or nil if it has none.
func SoundFor(kind core.EventKind, rate beep.SampleRate, vol float64) beep.Streamer {
	switch kind {
	case core.EventCoinCollected:
		return CoinSound(rate, vol)
	case core.EventZapped:
		return ZapSound(rate, vol)
	case core.EventLevelAdvanced:
		return LevelSound(rate, vol)
	case core.EventWon:
		return WinSound(rate, vol)
	default:
		return nil
	}
}
