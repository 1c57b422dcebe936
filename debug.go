package bounce

import (
	"fmt"
	"os"
	"time"
)

// Stats holds per-frame counters from World.Step. Timings are only recorded
// in debug mode.
type Stats struct {
	PairChecks  int
	Collisions  int
	Separations int
	WallBounces int

	integrateTime time.Duration
	resolveTime   time.Duration
}

// debugLog prints timing and collision stats to stderr.
func (w *World) debugLog(stats Stats) {
	if !w.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[bounce] frame %d | integrate: %v | resolve: %v | total: %v\n",
		w.frame, stats.integrateTime, stats.resolveTime, stats.integrateTime+stats.resolveTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[bounce] pairs: %d | collisions: %d | separations: %d | wall bounces: %d\n",
		stats.PairChecks, stats.Collisions, stats.Separations, stats.WallBounces)
	w.debugCheckContainment()
}

// debugCheckContainment warns on stderr if any body has left the world. This
// can only happen through a degenerate separation nudge at a wall or a body
// edited from outside the step.
func (w *World) debugCheckContainment() {
	world := Rect{0, 0, w.width, w.height}
	for i := range w.bodies {
		if !world.ContainsRect(w.bodies[i].Bounds()) {
			_, _ = fmt.Fprintf(os.Stderr, "[bounce] warning: body %d at (%.3f, %.3f) is outside %vx%v\n",
				i, w.bodies[i].Position.X, w.bodies[i].Position.Y, w.width, w.height)
		}
	}
}
