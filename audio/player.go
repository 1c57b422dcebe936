// Package audio plays short clicks for bounce events. A Player is an
// bounce.EventSink: attach it with World.SetEventSink.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/phanxgames/bounce"
)

// Config controls the sounds a Player produces.
type Config struct {
	SampleRate    int
	Volume        float64 // master volume in [0, 1]
	WallFreq      float64 // Hz for wall bounces
	CollisionFreq float64 // Hz for body collisions
	Duration      time.Duration

	// ReferenceSpeed is the event speed that plays at full volume. Slower
	// events are quieter, down to a tenth of Volume.
	ReferenceSpeed float64

	// MaxVoices caps simultaneous clicks; extra events are dropped.
	MaxVoices int
}

// DefaultConfig returns 48 kHz, 40 ms clicks at A4 for walls and A5 for
// collisions.
func DefaultConfig() Config {
	return Config{
		SampleRate:     48000,
		Volume:         0.4,
		WallFreq:       440,
		CollisionFreq:  880,
		Duration:       40 * time.Millisecond,
		ReferenceSpeed: 800,
		MaxVoices:      8,
	}
}

// Player turns bounce events into clicks mixed on the speaker.
type Player struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player. Call Init before events can be heard.
func NewPlayer(cfg Config) *Player {
	return &Player{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops all sounds and closes the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// Sound returns the click for e, or nil if e is silent.
func (p *Player) Sound(e bounce.Event) beep.Streamer {
	var freq float64
	switch e.Type {
	case bounce.EventWallBounce:
		freq = p.cfg.WallFreq
	case bounce.EventCollision:
		freq = p.cfg.CollisionFreq
	default:
		return nil
	}
	return NewClick(p.rate, freq, p.cfg.Duration, p.volumeFor(e.Speed))
}

func (p *Player) volumeFor(speed float64) float64 {
	if p.cfg.ReferenceSpeed <= 0 {
		return p.cfg.Volume
	}
	scale := min(max(speed/p.cfg.ReferenceSpeed, 0.1), 1)
	return p.cfg.Volume * scale
}

// EmitEvent implements bounce.EventSink. Events arriving before Init, while
// MaxVoices clicks are already playing, or with no sound are dropped.
func (p *Player) EmitEvent(e bounce.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := p.Sound(e)
	if s == nil {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	if p.cfg.MaxVoices > 0 && p.mixer.Len() >= p.cfg.MaxVoices {
		return
	}
	p.mixer.Add(s)
}
