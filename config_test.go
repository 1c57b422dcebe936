package bounce

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestDefaultConfigCornersValid(t *testing.T) {
	cfg := DefaultConfig()
	for _, p := range CornerPositions(cfg.Width, cfg.Height, cfg.Radius) {
		cfg.Bodies = append(cfg.Bodies, BodySpec{Position: p})
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Bodies[3].Position != (Vec2{720, 520}) {
		t.Errorf("bottom-right = %v, want (720, 520)", cfg.Bodies[3].Position)
	}
	if cfg.Bodies[4].Position != (Vec2{360, 260}) {
		t.Errorf("center = %v, want (360, 260)", cfg.Bodies[4].Position)
	}
}

func TestConfigValidateErrors(t *testing.T) {
	one := []BodySpec{{Position: Vec2{10, 10}}}
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, ErrInvalidBounds},
		{"negative height", func(c *Config) { c.Height = -5 }, ErrInvalidBounds},
		{"infinite width", func(c *Config) { c.Width = math.Inf(1) }, ErrInvalidBounds},
		{"negative max step", func(c *Config) { c.MaxStep = -1 }, ErrInvalidBounds},
		{"zero radius", func(c *Config) { c.Radius = 0 }, ErrInvalidRadius},
		{"negative body radius", func(c *Config) { c.Bodies[0].Radius = -3 }, ErrInvalidRadius},
		{"radius wider than world", func(c *Config) { c.Radius = 500 }, ErrInvalidRadius},
		{"min above max", func(c *Config) { c.Speed = Range{Min: 5, Max: 1} }, ErrInvalidSpeedRange},
		{"negative min", func(c *Config) { c.Speed = Range{Min: -1, Max: 1} }, ErrInvalidSpeedRange},
		{"no bodies", func(c *Config) { c.Bodies = nil }, ErrNoBodies},
		{"left of world", func(c *Config) { c.Bodies[0].Position.X = -1 }, ErrOutOfBounds},
		{"past bottom", func(c *Config) { c.Bodies[0].Position.Y = 521 }, ErrOutOfBounds},
		{"nan velocity", func(c *Config) { c.Bodies[0].Velocity.X = math.NaN() }, ErrInvalidBody},
		{"too many", func(c *Config) { c.Bodies = make([]BodySpec, 76) }, ErrTooManyBodies},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Bodies = append([]BodySpec(nil), one...)
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestConfigValidateNoBodiesWrapped(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Validate()
	if !errors.Is(err, ErrNoBodies) {
		t.Fatalf("Validate() = %v, want ErrNoBodies", err)
	}
	if err == ErrNoBodies {
		t.Error("ErrNoBodies should be wrapped with context")
	}
	if !strings.Contains(err.Error(), "800x600") {
		t.Errorf("error %q should name the world size", err)
	}
}

func TestConfigValidateFullWorld(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bodies = make([]BodySpec, 75)
	if err := cfg.Validate(); err != nil {
		t.Errorf("75 bodies of 80x80 fill 800x600 exactly: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	data := []byte(`{
		"width": 400,
		"height": 300,
		"radius": 20,
		"collisions": true,
		"bodies": [
			{"position": {"x": 0, "y": 0}, "velocity": {"x": 120, "y": -80}, "color": {"r": 1, "a": 1}},
			{"position": {"x": 200, "y": 100}, "velocity": {"x": -60, "y": 90}, "radius": 10}
		]
	}`)

	cfg, err := LoadConfig(data)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Width != 400 || cfg.Height != 300 || cfg.Radius != 20 {
		t.Errorf("size = %vx%v r=%v", cfg.Width, cfg.Height, cfg.Radius)
	}
	if cfg.Speed != (Range{Min: DefaultMinSpeed, Max: DefaultMaxSpeed}) {
		t.Errorf("Speed = %v, want defaults", cfg.Speed)
	}
	if len(cfg.Bodies) != 2 {
		t.Fatalf("bodies = %d, want 2", len(cfg.Bodies))
	}
	if cfg.Bodies[0].Velocity != (Vec2{120, -80}) || cfg.Bodies[0].Color != ColorRed {
		t.Errorf("body 0 = %+v", cfg.Bodies[0])
	}
	if cfg.Bodies[1].Radius != 10 {
		t.Errorf("body 1 radius = %v", cfg.Bodies[1].Radius)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	if _, err := LoadConfig([]byte(`not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
	_, err := LoadConfig([]byte(`{"width": 100, "height": 100, "bodies": [{"position": {"x": 90, "y": 0}}]}`))
	if !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("err = %v, want ErrOutOfBounds", err)
	}
}
