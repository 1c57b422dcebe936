// Package steer moves an arrow toward a target with a limited turn rate and
// speed. The arrow heads straight for the target each frame while its
// rotation lags behind, turning at most TurnRate degrees per second.
package steer

import (
	"math"

	"github.com/phanxgames/bounce"
)

const (
	// DefaultMoveSpeed is the arrow speed in units per second.
	DefaultMoveSpeed = 20
	// DefaultTurnRate is the maximum rotation in degrees per second.
	DefaultTurnRate = 90

	// StopTurnDistance is the target distance at or below which the arrow
	// stops rotating.
	StopTurnDistance = 2
	// StopMoveDistance is the target distance at or below which the arrow
	// stops moving.
	StopMoveDistance = 1

	// ArrowSize is the nose-to-tail length of the arrow shape.
	ArrowSize = 100
)

// NormalizeAngle wraps degrees into (-180, 180]. Non-finite input yields 0.
func NormalizeAngle(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	}
	if deg <= -180 {
		deg += 360
	}
	return deg
}

// Arrow is a follower with a position (its nose) and a rotation in degrees.
type Arrow struct {
	Position bounce.Vec2
	Rotation float64 // degrees in (-180, 180], 0 points along +X

	MoveSpeed float64
	TurnRate  float64
}

// NewArrow returns an arrow at pos pointing along +X with default speeds.
func NewArrow(pos bounce.Vec2) *Arrow {
	return &Arrow{
		Position:  pos,
		MoveSpeed: DefaultMoveSpeed,
		TurnRate:  DefaultTurnRate,
	}
}

// Update turns the arrow toward target by at most TurnRate*dt degrees and
// moves it toward target by at most MoveSpeed*dt, never past it. Non-finite
// or non-positive dt is ignored.
func (a *Arrow) Update(target bounce.Vec2, dt float64) {
	if !(dt > 0) || math.IsInf(dt, 1) {
		return
	}
	to := target.Sub(a.Position)
	dist := to.Len()
	heading := math.Atan2(to.Y, to.X)

	if dist > StopTurnDistance {
		diff := NormalizeAngle(heading*180/math.Pi - a.Rotation)
		limit := a.TurnRate * dt
		a.Rotation = NormalizeAngle(a.Rotation + min(max(diff, -limit), limit))
	}
	if dist > StopMoveDistance {
		step := min(a.MoveSpeed*dt, dist)
		a.Position = a.Position.Add(bounce.Vec2{X: math.Cos(heading), Y: math.Sin(heading)}.Scale(step))
	}
}

// outline is the arrow shape in local space, nose at the origin pointing +X.
var outline = [7]bounce.Vec2{
	{X: 0, Y: 0},
	{X: -ArrowSize / 2, Y: ArrowSize / 2},
	{X: -ArrowSize / 2, Y: ArrowSize / 4},
	{X: -ArrowSize, Y: ArrowSize / 4},
	{X: -ArrowSize, Y: -ArrowSize / 4},
	{X: -ArrowSize / 2, Y: -ArrowSize / 4},
	{X: -ArrowSize / 2, Y: -ArrowSize / 2},
}

// Points returns the arrow outline in world space.
func (a *Arrow) Points() [7]bounce.Vec2 {
	rad := a.Rotation * math.Pi / 180
	sin, cos := math.Sincos(rad)
	var pts [7]bounce.Vec2
	for i, p := range outline {
		pts[i] = bounce.Vec2{
			X: a.Position.X + p.X*cos - p.Y*sin,
			Y: a.Position.Y + p.X*sin + p.Y*cos,
		}
	}
	return pts
}
