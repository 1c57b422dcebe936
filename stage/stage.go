// Package stage runs the multi-stage block animation: a column of squares
// that slides right, gathers at the window center, spreads into a row, lifts
// and flattens, restacks, and returns home, forever.
//
// Every stage lasts Layout.Duration seconds and is driven by gween tweens
// starting from wherever the previous stage left the block.
package stage

import (
	"github.com/phanxgames/bounce"
	"github.com/tanema/gween/ease"
)

// Stage identifies one segment of a block's animation.
type Stage uint8

const (
	MoveRight             Stage = iota // slide right by Layout.Shift
	MoveToWindowCenter                 // gather in a column at the center, dim to half alpha
	MoveToHorizontal                   // spread into a row through the center
	MoveTop                            // lift by Layout.Shift and halve the height
	MoveToVerticalStack                // restack in a column at the first row slot
	MoveToInitialPosition              // return home at full size and alpha
	Finished                           // reset on the next update
)

var stageNames = [...]string{
	"move-right", "move-to-window-center", "move-to-horizontal", "move-top",
	"move-to-vertical-stack", "move-to-initial-position", "finished",
}

func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "unknown"
}

// Layout holds the geometry and timing of the animation.
type Layout struct {
	Width, Height float64
	Side          float64 // block edge length at rest
	Spacing       float64 // distance between neighbouring block centers
	Shift         float64 // MoveRight and MoveTop travel
	Count         int
	Duration      float32 // seconds per stage
	Color         bounce.Color
	Ease          ease.TweenFunc // nil uses ease.Linear
}

// DefaultLayout returns six 50×50 purple blocks in a 1000×800 window with
// one-second linear stages.
func DefaultLayout() Layout {
	return Layout{
		Width:    1000,
		Height:   800,
		Side:     50,
		Spacing:  80,
		Shift:    200,
		Count:    6,
		Duration: 1,
		Color:    bounce.RGB8(102, 0, 102, 255),
		Ease:     ease.Linear,
	}
}

func (l *Layout) center() bounce.Vec2 {
	return bounce.Vec2{X: l.Width / 2, Y: l.Height / 2}
}

// home returns the resting center of block i.
func (l *Layout) home(i int) bounce.Vec2 {
	return bounce.Vec2{X: l.Side / 2, Y: l.Side/2 + float64(i)*l.Spacing}
}

// span is the distance between the first and last block centers in a line.
func (l *Layout) span() float64 {
	return float64(l.Count-1) * l.Spacing
}

// Block is one animated square. X and Y are its center.
type Block struct {
	Index int
	X, Y  float64
	W, H  float64
	Alpha float64

	stage   Stage
	elapsed float32
	start   bounce.Vec2 // center when the current stage began
	group   tweenGroup
	layout  *Layout
}

// Stage returns the block's current stage.
func (b *Block) Stage() Stage { return b.stage }

// Rect returns the block's bounding box.
func (b *Block) Rect() bounce.Rect {
	return bounce.Rect{X: b.X - b.W/2, Y: b.Y - b.H/2, Width: b.W, Height: b.H}
}

// Color returns the layout color with the block's current alpha.
func (b *Block) Color() bounce.Color {
	c := b.layout.Color
	c.A = b.Alpha
	return c
}

func (b *Block) reset() {
	l := b.layout
	p := l.home(b.Index)
	b.X, b.Y = p.X, p.Y
	b.W, b.H = l.Side, l.Side
	b.Alpha = l.Color.A
	b.begin(MoveRight)
}

// begin enters stage s from the block's current state.
func (b *Block) begin(s Stage) {
	l := b.layout
	b.stage = s
	b.elapsed = 0
	b.start = bounce.Vec2{X: b.X, Y: b.Y}
	b.group.reset()

	fn := l.Ease
	if fn == nil {
		fn = ease.Linear
	}
	d := l.Duration
	c := l.center()
	i := float64(b.Index)

	switch s {
	case MoveRight:
		home := l.home(b.Index)
		b.group.add(&b.X, home.X+l.Shift, d, fn)
		b.group.add(&b.Y, home.Y, d, fn)
	case MoveToWindowCenter:
		b.group.add(&b.X, c.X, d, fn)
		b.group.add(&b.Y, c.Y-l.span()/2+i*l.Spacing, d, fn)
		b.group.add(&b.Alpha, l.Color.A/2, d, fn)
	case MoveToHorizontal:
		b.group.add(&b.X, c.X-l.span()/2+i*l.Spacing, d, fn)
		b.group.add(&b.Y, c.Y, d, fn)
	case MoveTop:
		b.group.add(&b.Y, b.start.Y-l.Shift, d, fn)
		b.group.add(&b.H, l.Side/2, d, fn)
	case MoveToVerticalStack:
		b.group.add(&b.X, c.X-l.span()/2, d, fn)
		b.group.add(&b.Y, b.start.Y+i*(l.Side/2+l.Spacing), d, fn)
	case MoveToInitialPosition:
		home := l.home(b.Index)
		b.group.add(&b.X, home.X, d, fn)
		b.group.add(&b.Y, home.Y, d, fn)
		b.group.add(&b.W, l.Side, d, fn)
		b.group.add(&b.H, l.Side, d, fn)
		b.group.add(&b.Alpha, l.Color.A, d, fn)
	}
}

// Update advances the block by dt seconds. Time left over when a stage
// completes carries into the next stage. Reaching Finished drops the rest of
// dt; the following Update resets the block to its home position and starts
// over.
func (b *Block) Update(dt float32) {
	if dt < 0 {
		dt = 0
	}
	for {
		if b.stage == Finished {
			b.reset()
		}
		remaining := b.layout.Duration - b.elapsed
		if dt < remaining {
			b.group.update(dt)
			b.elapsed += dt
			return
		}
		b.group.finish()
		dt -= remaining
		b.begin(b.stage + 1)
		if b.stage == Finished {
			return
		}
	}
}

// Sequence owns a set of blocks sharing one Layout.
type Sequence struct {
	layout Layout
	blocks []Block
}

// NewSequence creates layout.Count blocks at their home positions.
func NewSequence(layout Layout) *Sequence {
	s := &Sequence{layout: layout, blocks: make([]Block, layout.Count)}
	for i := range s.blocks {
		b := &s.blocks[i]
		b.Index = i
		b.layout = &s.layout
		b.reset()
	}
	return s
}

// Layout returns the sequence layout.
func (s *Sequence) Layout() Layout { return s.layout }

// Update advances every block by dt seconds.
func (s *Sequence) Update(dt float32) {
	for i := range s.blocks {
		s.blocks[i].Update(dt)
	}
}

// Blocks returns the block list. The returned slice MUST NOT be mutated.
func (s *Sequence) Blocks() []Block { return s.blocks }

// Shape is a filled rectangle for a renderer.
type Shape struct {
	Rect  bounce.Rect
	Color bounce.Color
}

// Shapes appends one shape per block to dst and returns the result.
func (s *Sequence) Shapes(dst []Shape) []Shape {
	for i := range s.blocks {
		b := &s.blocks[i]
		dst = append(dst, Shape{Rect: b.Rect(), Color: b.Color()})
	}
	return dst
}
