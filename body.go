package bounce

import "fmt"

// Body is a simulated circular object. Position is the top-left corner of the
// bounding box; the radius is fixed at construction.
type Body struct {
	Position Vec2
	Velocity Vec2 // units per second
	Color    Color

	radius float64
}

// NewBody returns a body with the given state. The radius must be positive
// and finite.
func NewBody(pos, vel Vec2, radius float64, c Color) (Body, error) {
	if radius <= 0 || !isFinite(radius) {
		return Body{}, fmt.Errorf("new body: radius %v: %w", radius, ErrInvalidRadius)
	}
	if !pos.finite() || !vel.finite() {
		return Body{}, fmt.Errorf("new body: non-finite position or velocity: %w", ErrInvalidBody)
	}
	return Body{Position: pos, Velocity: vel, Color: c, radius: radius}, nil
}

// Radius returns the body's radius.
func (b *Body) Radius() float64 { return b.radius }

// Diameter returns twice the radius.
func (b *Body) Diameter() float64 { return 2 * b.radius }

// Center returns Position + (radius, radius).
func (b *Body) Center() Vec2 {
	return Vec2{b.Position.X + b.radius, b.Position.Y + b.radius}
}

// Bounds returns the body's bounding box.
func (b *Body) Bounds() Rect {
	d := b.Diameter()
	return Rect{b.Position.X, b.Position.Y, d, d}
}

func (b *Body) drawCommand() DrawCommand {
	return DrawCommand{Position: b.Position, Radius: b.radius, Color: b.Color}
}
