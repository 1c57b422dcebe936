package bounce

// Bounce records which axes reflected during one integration step.
type Bounce struct {
	X, Y bool
}

// Any reports whether either axis bounced.
func (b Bounce) Any() bool { return b.X || b.Y }

// Integrate advances b by dt seconds inside a width×height world.
//
// The tentative position is pos + vel*dt. On each axis independently, a
// bounding box that would leave the world is clamped back to the wall and the
// velocity component on that axis is negated. Walls are perfectly elastic.
func Integrate(b *Body, dt, width, height float64) Bounce {
	var hit Bounce
	next := b.Position.Add(b.Velocity.Scale(dt))
	d := b.Diameter()

	if next.X < 0 {
		next.X = 0
		b.Velocity.X = -b.Velocity.X
		hit.X = true
	} else if next.X+d > width {
		next.X = width - d
		b.Velocity.X = -b.Velocity.X
		hit.X = true
	}

	if next.Y < 0 {
		next.Y = 0
		b.Velocity.Y = -b.Velocity.Y
		hit.Y = true
	} else if next.Y+d > height {
		next.Y = height - d
		b.Velocity.Y = -b.Velocity.Y
		hit.Y = true
	}

	b.Position = next
	return hit
}
