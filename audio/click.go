package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// sine generates a fixed-length sine wave.
type sine struct {
	freq     float64
	phase    float64
	position int
	length   int
	rate     beep.SampleRate
}

func newSine(freq float64, duration time.Duration, rate beep.SampleRate) *sine {
	return &sine{freq: freq, length: rate.N(duration), rate: rate}
}

func (s *sine) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.length {
			return i, i > 0
		}
		v := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = v
		samples[i][1] = v

		s.phase += s.freq / float64(s.rate)
		s.phase -= math.Floor(s.phase) // keep in [0, 1)
		s.position++
	}
	return len(samples), true
}

func (s *sine) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if start := e.total - e.release; e.position >= start && e.release > 0 {
			vol = float64(e.total-e.position) / float64(e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly by vol. math.Log2(0) is -Inf, so zero volume
// is handled by silencing the stream.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// NewClick returns a short sine click at freq Hz with a fast attack and a
// release over the second half of its duration.
func NewClick(rate beep.SampleRate, freq float64, duration time.Duration, volume float64) beep.Streamer {
	osc := newSine(freq, duration, rate)
	shaped := newEnvelope(osc, duration, duration/10, duration/2, rate)
	return newVolume(shaped, volume)
}
