package bounce

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Common palette colors.
var (
	ColorRed     = Color{1, 0, 0, 1}
	ColorGreen   = Color{0, 1, 0, 1}
	ColorBlue    = Color{0, 0, 1, 1}
	ColorYellow  = Color{1, 1, 0, 1}
	ColorMagenta = Color{1, 0, 1, 1}
	ColorCyan    = Color{0, 1, 1, 1}
	ColorWhite   = Color{1, 1, 1, 1}
	ColorBlack   = Color{0, 0, 0, 1}
)

// RGB8 builds a Color from 8-bit channel values.
func RGB8(r, g, b, a uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, float64(a) / 255}
}

// RGBA converts c to an 8-bit color.RGBA. Channels are clamped to [0, 1] and
// rounded. The result is straight alpha, which is what the vector and tcell
// drawing calls expect for opaque bodies.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: channel8(c.R),
		G: channel8(c.G),
		B: channel8(c.B),
		A: channel8(c.A),
	}
}

func channel8(v float64) uint8 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}

// Mix averages two colors channel by channel on the 8-bit scale, truncating
// toward zero.
func Mix(a, b Color) Color {
	ca, cb := a.RGBA(), b.RGBA()
	avg := func(x, y uint8) uint8 { return uint8((uint16(x) + uint16(y)) / 2) }
	return RGB8(avg(ca.R, cb.R), avg(ca.G, cb.G), avg(ca.B, cb.B), avg(ca.A, cb.A))
}

// Vec2 is a 2D vector used for positions, velocities and offsets.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

// Len returns the length of v.
func (v Vec2) Len() float64 { return math.Sqrt(v.LenSq()) }

func (v Vec2) finite() bool { return isFinite(v.X) && isFinite(v.Y) }

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// ContainsRect reports whether other lies fully inside r. Shared edges count
// as inside.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.X+other.Width <= r.X+r.Width &&
		other.Y+other.Height <= r.Y+r.Height
}

// Range is a general-purpose min/max range.
type Range struct {
	Min, Max float64
}

// Axis identifies a world axis.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// DrawCommand is the per-body instruction handed to a renderer after a frame.
// Position is the top-left corner of the body's bounding box.
type DrawCommand struct {
	Position Vec2
	Radius   float64
	Color    Color
}

// Center returns the center of the circle described by the command.
func (c DrawCommand) Center() Vec2 {
	return Vec2{c.Position.X + c.Radius, c.Position.Y + c.Radius}
}
