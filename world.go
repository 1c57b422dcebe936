package bounce

import (
	"fmt"
	"math"
	"time"
)

// World owns a fixed set of bodies inside a rectangle and steps them one
// frame at a time. It is not safe for concurrent use; renderers read draw
// commands only after Step returns.
type World struct {
	width, height float64
	bodies        []Body
	collisions    bool

	// MaxStep, when positive, makes Advance split Δt into substeps no longer
	// than MaxStep. Zero leaves Δt uncapped.
	MaxStep float64

	sink  EventSink
	debug bool
	stats Stats
	frame uint64
}

// NewWorld validates cfg and builds the body list from it.
func NewWorld(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}
	w := &World{
		width:      cfg.Width,
		height:     cfg.Height,
		bodies:     make([]Body, 0, len(cfg.Bodies)),
		collisions: cfg.Collisions,
		MaxStep:    cfg.MaxStep,
	}
	for i, s := range cfg.Bodies {
		b, err := NewBody(s.Position, s.Velocity, cfg.bodyRadius(s), s.Color)
		if err != nil {
			return nil, fmt.Errorf("new world: body %d: %w", i, err)
		}
		w.bodies = append(w.bodies, b)
	}
	return w, nil
}

// Width returns the world width.
func (w *World) Width() float64 { return w.width }

// Height returns the world height.
func (w *World) Height() float64 { return w.height }

// Len returns the number of bodies.
func (w *World) Len() int { return len(w.bodies) }

// Body returns a pointer to body i for inspection or scripted impulses.
// Callers must not hold it across frames from another goroutine.
func (w *World) Body(i int) *Body { return &w.bodies[i] }

// Bodies returns the body list. The returned slice MUST NOT be appended to.
func (w *World) Bodies() []Body { return w.bodies }

// Frame returns the number of completed Steps.
func (w *World) Frame() uint64 { return w.frame }

// SetEventSink sets the optional event consumer. Pass nil to disable events.
func (w *World) SetEventSink(sink EventSink) { w.sink = sink }

// SetDebugMode enables or disables per-frame timing output on stderr.
func (w *World) SetDebugMode(enabled bool) { w.debug = enabled }

// Stats returns the counters from the most recent Step.
func (w *World) Stats() Stats { return w.stats }

// Step runs one frame: integrate every body by dt, then resolve every
// unordered pair once in ascending (i, j) order. Negative or non-finite dt
// is treated as zero; large finite dt is passed through unchanged.
func (w *World) Step(dt float64) {
	dt = sanitizeDT(dt)

	var stats Stats
	var t0 time.Time
	if w.debug {
		t0 = time.Now()
	}

	for i := range w.bodies {
		b := &w.bodies[i]
		hit := Integrate(b, dt, w.width, w.height)
		if !hit.Any() {
			continue
		}
		if hit.X {
			stats.WallBounces++
			w.emit(Event{Type: EventWallBounce, A: i, B: -1, Axis: AxisX, Position: b.Center(), Speed: math.Abs(b.Velocity.X)})
		}
		if hit.Y {
			stats.WallBounces++
			w.emit(Event{Type: EventWallBounce, A: i, B: -1, Axis: AxisY, Position: b.Center(), Speed: math.Abs(b.Velocity.Y)})
		}
	}

	if w.debug {
		stats.integrateTime = time.Since(t0)
		t0 = time.Now()
	}

	if w.collisions {
		w.resolveAll(&stats)
	}

	if w.debug {
		stats.resolveTime = time.Since(t0)
	}

	w.frame++
	w.stats = stats
	w.debugLog(stats)
}

func (w *World) resolveAll(stats *Stats) {
	for i := 0; i < len(w.bodies); i++ {
		a := &w.bodies[i]
		for j := i + 1; j < len(w.bodies); j++ {
			stats.PairChecks++
			c := ResolvePair(a, &w.bodies[j])
			switch c.Outcome {
			case OutcomeResolved:
				stats.Collisions++
				w.emit(Event{Type: EventCollision, A: i, B: j, Position: c.Point, Speed: c.Speed})
			case OutcomeSeparated:
				stats.Separations++
				w.emit(Event{Type: EventSeparation, A: i, B: j, Position: c.Point})
			}
		}
	}
}

// Advance steps the world by dt. With MaxStep unset it is a single Step.
// With MaxStep set, dt is divided into the fewest equal substeps that are
// each no longer than MaxStep, and every substep runs integrate and resolve.
// Returns the number of Steps taken.
func (w *World) Advance(dt float64) int {
	dt = sanitizeDT(dt)
	if w.MaxStep <= 0 || dt <= w.MaxStep {
		w.Step(dt)
		return 1
	}
	n := int(math.Ceil(dt / w.MaxStep))
	sub := dt / float64(n)
	for range n {
		w.Step(sub)
	}
	return n
}

// sanitizeDT maps negative, NaN and infinite frame times to zero.
func sanitizeDT(dt float64) float64 {
	if !(dt > 0) || math.IsInf(dt, 1) {
		return 0
	}
	return dt
}

func (w *World) emit(e Event) {
	if w.sink != nil {
		w.sink.EmitEvent(e)
	}
}

// DrawCommands appends one command per body to dst and returns the result.
// Pass dst[:0] from the previous frame to reuse its storage.
func (w *World) DrawCommands(dst []DrawCommand) []DrawCommand {
	for i := range w.bodies {
		dst = append(dst, w.bodies[i].drawCommand())
	}
	return dst
}

// Snapshot returns a copy of the body list.
func (w *World) Snapshot() []Body {
	out := make([]Body, len(w.bodies))
	copy(out, w.bodies)
	return out
}
