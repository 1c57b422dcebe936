package bounce

import (
	"math/rand/v2"
	"time"
)

// Palette is the color set the palette demo mixes from.
var Palette = []Color{
	ColorRed,
	ColorGreen,
	ColorBlue,
	ColorYellow,
	ColorMagenta,
	ColorCyan,
	ColorWhite,
	ColorBlack,
}

// Spawner generates initial body velocities and colors from a seeded PRNG.
// It is only used while building a Config; the frame loop never touches it.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner returns a spawner whose output is fully determined by seed.
func NewSpawner(seed uint64) *Spawner {
	return &Spawner{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Seed returns a seed derived from the wall clock, for interactive runs.
func Seed() uint64 {
	s := uint64(time.Now().UnixNano())
	if s == 0 {
		s = 1
	}
	return s
}

// SpeedComponent returns a magnitude drawn uniformly from [r.Min, r.Max) with
// a random sign.
func (s *Spawner) SpeedComponent(r Range) float64 {
	m := r.Min + s.rng.Float64()*(r.Max-r.Min)
	if s.rng.IntN(2) == 0 {
		return -m
	}
	return m
}

// Velocity returns a vector whose components are independent SpeedComponent
// draws.
func (s *Spawner) Velocity(r Range) Vec2 {
	x := s.SpeedComponent(r)
	y := s.SpeedComponent(r)
	return Vec2{x, y}
}

// Color mixes two uniformly drawn palette entries. An empty palette yields
// white.
func (s *Spawner) Color(palette []Color) Color {
	if len(palette) == 0 {
		return ColorWhite
	}
	a := palette[s.rng.IntN(len(palette))]
	b := palette[s.rng.IntN(len(palette))]
	return Mix(a, b)
}

// Populate appends one body per position to cfg.Bodies with a random velocity
// from cfg.Speed. When colors is non-empty each body takes colors[i%len]; when
// it is empty colors are mixed from Palette.
func (s *Spawner) Populate(cfg *Config, positions []Vec2, colors []Color) {
	for i, p := range positions {
		var c Color
		if len(colors) > 0 {
			c = colors[i%len(colors)]
		} else {
			c = s.Color(Palette)
		}
		cfg.Bodies = append(cfg.Bodies, BodySpec{
			Position: p,
			Velocity: s.Velocity(cfg.Speed),
			Color:    c,
		})
	}
}
