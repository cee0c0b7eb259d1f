// internal/audio/tones.go
package audio

import (
	"math"
	"time"

	"go-siege/internal/utils"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const sampleRate = beep.SampleRate(44100)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator sweeps linearly from freq to endFreq over its duration.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	position int
	duration int
	wave     Wave
	rate     beep.SampleRate
	noise    *utils.PRNGService
}

// NewOscillator returns a finite tone. A zero endFreq holds the frequency.
func NewOscillator(freq, endFreq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	if endFreq == 0 {
		endFreq = freq
	}
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    utils.NewPRNGService(int64(freq*1000) + 1),
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
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Range(-1, 1)
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := utils.Lerp(o.freq, o.endFreq, progress)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay applies a linear attack followed by an exponential fall-off.
type decay struct {
	streamer beep.Streamer
	position int
	attack   int
	rate     float64
}

// NewDecay shapes s with an attack ramp and a decay of k per second.
func NewDecay(s beep.Streamer, attack time.Duration, k float64, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, attack: rate.N(attack), rate: k / float64(rate)}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := math.Exp(-d.rate * float64(d.position))
		if d.position < d.attack {
			vol *= float64(d.position) / float64(d.attack)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Cue is a named sound effect.
type Cue int

const (
	CueShot Cue = iota
	CueWeakShot
	CueImpact
	CueBreak
	CueObjective
	CueTick
	CuePurchase
	CueDenied
	CueHit
	CueFail
	CueLaunch
)

func tone(freq, endFreq float64, d time.Duration, wave Wave, k float64) beep.Streamer {
	return NewDecay(NewOscillator(freq, endFreq, d, wave, sampleRate), 4*time.Millisecond, k, sampleRate)
}

// CueStream builds a fresh streamer for c at the given master volume, or nil
// for an unknown cue.
func CueStream(c Cue, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueShot:
		s = beep.Mix(
			tone(180, 60, 180*time.Millisecond, WaveSaw, 18),
			newVolume(tone(0, 0, 120*time.Millisecond, WaveNoise, 30), 0.5),
		)
	case CueWeakShot:
		s = tone(320, 200, 90*time.Millisecond, WaveSquare, 30)
	case CueImpact:
		s = newVolume(tone(0, 0, 80*time.Millisecond, WaveNoise, 40), 0.6)
	case CueBreak:
		s = beep.Mix(
			tone(0, 0, 300*time.Millisecond, WaveNoise, 10),
			tone(90, 50, 300*time.Millisecond, WaveSine, 8),
		)
	case CueObjective:
		s = beep.Seq(
			tone(659.25, 0, 120*time.Millisecond, WaveSquare, 6),
			tone(783.99, 0, 120*time.Millisecond, WaveSquare, 6),
			tone(1046.5, 0, 300*time.Millisecond, WaveSquare, 4),
		)
	case CueTick:
		sine, err := generators.SineTone(sampleRate, 1000)
		if err != nil {
			return nil
		}
		s = NewDecay(beep.Take(sampleRate.N(60*time.Millisecond), sine), 4*time.Millisecond, 40, sampleRate)
	case CuePurchase:
		s = beep.Seq(
			tone(987.77, 0, 80*time.Millisecond, WaveSquare, 12),
			tone(1318.51, 0, 200*time.Millisecond, WaveSquare, 8),
		)
	case CueDenied:
		s = tone(110, 0, 150*time.Millisecond, WaveSaw, 10)
	case CueHit:
		s = tone(140, 70, 250*time.Millisecond, WaveSquare, 8)
	case CueFail:
		s = beep.Seq(
			tone(392, 0, 200*time.Millisecond, WaveSaw, 5),
			tone(261.63, 0, 400*time.Millisecond, WaveSaw, 3),
		)
	case CueLaunch:
		s = tone(220, 880, 250*time.Millisecond, WaveSine, 4)
	default:
		return nil
	}
	return newVolume(s, volume*0.4)
}
