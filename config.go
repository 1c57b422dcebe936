package bounce

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// Defaults used by the demos.
const (
	DefaultWidth    = 800.0
	DefaultHeight   = 600.0
	DefaultRadius   = 40.0
	DefaultMinSpeed = 100.0
	DefaultMaxSpeed = 400.0
)

// Setup errors. Config.Validate wraps one of these.
var (
	ErrInvalidBounds     = errors.New("invalid world bounds")
	ErrInvalidRadius     = errors.New("invalid radius")
	ErrInvalidBody       = errors.New("invalid body")
	ErrInvalidSpeedRange = errors.New("invalid speed range")
	ErrOutOfBounds       = errors.New("body outside world bounds")
	ErrTooManyBodies     = errors.New("bodies do not fit the world")
	ErrNoBodies          = errors.New("no bodies")
)

// BodySpec describes one body at world construction.
type BodySpec struct {
	Position Vec2    `json:"position"`
	Velocity Vec2    `json:"velocity"`
	Color    Color   `json:"color"`
	Radius   float64 `json:"radius,omitempty"` // 0 uses Config.Radius
}

// Config describes a simulation world. The zero value is not valid; start
// from DefaultConfig.
type Config struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Radius is the default body radius.
	Radius float64 `json:"radius"`

	// Speed bounds the magnitude of randomly generated velocity components.
	// Only consulted by Spawner.
	Speed Range `json:"speed"`

	Bodies []BodySpec `json:"bodies"`

	// Collisions enables the pairwise resolution pass. When false bodies only
	// bounce off the walls and pass through each other.
	Collisions bool `json:"collisions"`

	// MaxStep, when positive, splits each Advance into substeps no longer
	// than MaxStep seconds. Zero passes Δt through uncapped.
	MaxStep float64 `json:"maxStep,omitempty"`
}

// DefaultConfig returns an 800×600 world with radius-40 bodies, a [100, 400]
// speed range, collisions enabled, and no bodies.
func DefaultConfig() Config {
	return Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Radius:     DefaultRadius,
		Speed:      Range{Min: DefaultMinSpeed, Max: DefaultMaxSpeed},
		Collisions: true,
	}
}

// CornerPositions returns the five starting positions used by the demos:
// top-left, top-right, bottom-left, bottom-right, and center. Positions are
// bounding-box corners for bodies of the given radius.
func CornerPositions(width, height, radius float64) []Vec2 {
	d := 2 * radius
	return []Vec2{
		{0, 0},
		{width - d, 0},
		{0, height - d},
		{width - d, height - d},
		{width/2 - radius, height/2 - radius},
	}
}

func (c *Config) bodyRadius(s BodySpec) float64 {
	if s.Radius != 0 {
		return s.Radius
	}
	return c.Radius
}

// Validate checks the config and returns a wrapped setup error for the first
// problem found.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 || !isFinite(c.Width) || !isFinite(c.Height) {
		return fmt.Errorf("world %vx%v: %w", c.Width, c.Height, ErrInvalidBounds)
	}
	if c.Speed.Min < 0 || c.Speed.Min > c.Speed.Max || !isFinite(c.Speed.Max) {
		return fmt.Errorf("speed [%v, %v]: %w", c.Speed.Min, c.Speed.Max, ErrInvalidSpeedRange)
	}
	if c.MaxStep < 0 || math.IsNaN(c.MaxStep) {
		return fmt.Errorf("max step %v: %w", c.MaxStep, ErrInvalidBounds)
	}
	if len(c.Bodies) == 0 {
		return fmt.Errorf("world %vx%v has 0 bodies: %w", c.Width, c.Height, ErrNoBodies)
	}

	world := Rect{0, 0, c.Width, c.Height}
	area := 0.0
	for i, s := range c.Bodies {
		r := c.bodyRadius(s)
		if r <= 0 || !isFinite(r) {
			return fmt.Errorf("body %d: radius %v: %w", i, r, ErrInvalidRadius)
		}
		d := 2 * r
		if d > c.Width || d > c.Height {
			return fmt.Errorf("body %d: diameter %v exceeds world %vx%v: %w", i, d, c.Width, c.Height, ErrInvalidRadius)
		}
		if !s.Position.finite() || !s.Velocity.finite() {
			return fmt.Errorf("body %d: non-finite position or velocity: %w", i, ErrInvalidBody)
		}
		if !world.ContainsRect(Rect{s.Position.X, s.Position.Y, d, d}) {
			return fmt.Errorf("body %d at (%v, %v): %w", i, s.Position.X, s.Position.Y, ErrOutOfBounds)
		}
		area += d * d
	}
	if area > c.Width*c.Height {
		return fmt.Errorf("%d bodies need %v square units, world has %v: %w",
			len(c.Bodies), area, c.Width*c.Height, ErrTooManyBodies)
	}
	return nil
}

// LoadConfig parses a JSON world description and validates it.
func LoadConfig(jsonData []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
