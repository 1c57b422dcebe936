package bounce

import "math"

const (
	// coincidentDistSq is the squared center distance below which two bodies
	// are treated as sharing a center and no normal is computed.
	coincidentDistSq = 1e-12

	// separationNudge is how far each coincident body is pushed along x.
	separationNudge = 1e-3
)

// Outcome describes what ResolvePair did to a pair of bodies.
type Outcome uint8

const (
	OutcomeNone      Outcome = iota // apart, touching, or already separating
	OutcomeResolved                 // elastic impulse applied to both velocities
	OutcomeSeparated                // coincident centers nudged apart on x
)

func (o Outcome) String() string {
	switch o {
	case OutcomeResolved:
		return "resolved"
	case OutcomeSeparated:
		return "separated"
	default:
		return "none"
	}
}

// Contact is the result of checking one pair.
type Contact struct {
	Outcome Outcome
	Normal  Vec2    // unit vector from a's center to b's center; zero unless resolved
	Speed   float64 // closing speed along Normal before the impulse
	Point   Vec2    // midpoint between the two centers
}

// ResolvePair checks a and b for overlap and applies an equal-mass elastic
// impulse when they are approaching along the contact normal.
//
// Bodies exactly touching (distance == ra+rb) do not collide. Only velocities
// change; overlapping positions are left as they are, so bodies can visibly
// interpenetrate for a few frames. The one exception is two coincident
// centers, which are nudged a fixed distance apart along x instead.
func ResolvePair(a, b *Body) Contact {
	ca, cb := a.Center(), b.Center()
	diff := cb.Sub(ca)
	distSq := diff.LenSq()
	minDist := a.radius + b.radius

	if distSq >= minDist*minDist {
		return Contact{}
	}

	point := ca.Add(diff.Scale(0.5))

	if distSq < coincidentDistSq {
		a.Position.X -= separationNudge
		b.Position.X += separationNudge
		return Contact{Outcome: OutcomeSeparated, Point: point}
	}

	normal := diff.Scale(1 / math.Sqrt(distSq))
	speed := a.Velocity.Sub(b.Velocity).Dot(normal)
	if speed <= 0 {
		return Contact{Point: point}
	}

	impulse := normal.Scale(speed)
	a.Velocity = a.Velocity.Sub(impulse)
	b.Velocity = b.Velocity.Add(impulse)

	return Contact{Outcome: OutcomeResolved, Normal: normal, Speed: speed, Point: point}
}
