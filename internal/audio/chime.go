// Package audio plays the short chime heard when the player reaches the
// goal. Sounds are synthesized, so no asset files ship with the binary.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is the output rate used for every sound.
const SampleRate = beep.SampleRate(44100)

const (
	chimeNoteDuration = 120 * time.Millisecond
	chimeLastDuration = 360 * time.Millisecond
	chimeAttack       = 5 * time.Millisecond
	chimeRelease      = 90 * time.Millisecond
	chimeVolume       = 0.4
)

// Rising C major arpeggio, the last note held.
var chimeNotes = []float64{523.25, 659.25, 783.99, 1046.50}

// tone is a sine oscillator that stops after a fixed number of samples.
type tone struct {
	freq     float64
	phase    float64
	position int
	length   int
	rate     beep.SampleRate
}

func newTone(freq float64, d time.Duration, rate beep.SampleRate) *tone {
	return &tone{freq: freq, length: rate.N(d), rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.length {
			return i, i > 0
		}
		v := math.Sin(2 * math.Pi * t.phase)
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope fades a stream in over attack samples and out over the final
// release samples of length.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	length   int
}

func newEnvelope(s beep.Streamer, length, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		length:   rate.N(length),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.length - e.position; e.release > 0 && remaining < e.release {
			vol = math.Max(0, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// WinChime returns a new chime stream at rate. Each call returns a fresh
// streamer; streamers cannot be replayed.
func WinChime(rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(chimeNotes))
	for i, freq := range chimeNotes {
		d := chimeNoteDuration
		if i == len(chimeNotes)-1 {
			d = chimeLastDuration
		}
		fund := newEnvelope(newTone(freq, d, rate), d, chimeAttack, chimeRelease, rate)
		over := newEnvelope(newTone(freq*2, d, rate), d, chimeAttack, chimeRelease/2, rate)
		notes = append(notes, beep.Mix(withVolume(fund, 0.75), withVolume(over, 0.25)))
	}
	return withVolume(beep.Seq(notes...), chimeVolume)
}

// ChimeLength is the duration of WinChime.
func ChimeLength() time.Duration {
	return time.Duration(len(chimeNotes)-1)*chimeNoteDuration + chimeLastDuration
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
