// Package term draws a bounce world into a terminal with tcell. Each body is
// rasterized to the cells whose centers fall inside its circle.
package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/bounce"
)

// Fill is the rune used for body cells.
const Fill = '█'

// frameInterval is the tick period of Run (~60 FPS).
const frameInterval = 16 * time.Millisecond

// Screen is the subset of tcell.Screen the renderer draws to.
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Clear()
}

// Renderer maps world coordinates onto the screen's cell grid.
type Renderer struct {
	cmds []bounce.DrawCommand
}

// Draw clears screen and rasterizes every body of w. The whole world is
// scaled to the screen, so cells are usually not square in world units.
func (r *Renderer) Draw(screen Screen, w *bounce.World) {
	screen.Clear()
	cols, rows := screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	r.cmds = w.DrawCommands(r.cmds[:0])
	sx := float64(cols) / w.Width()
	sy := float64(rows) / w.Height()
	for _, c := range r.cmds {
		drawDisc(screen, c, sx, sy, cols, rows)
	}
}

func drawDisc(screen Screen, c bounce.DrawCommand, sx, sy float64, cols, rows int) {
	rgba := c.Color.RGBA()
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B)))

	center := c.Center()
	r2 := c.Radius * c.Radius
	x0 := max(int(c.Position.X*sx), 0)
	y0 := max(int(c.Position.Y*sy), 0)
	x1 := min(int((c.Position.X+2*c.Radius)*sx), cols-1)
	y1 := min(int((c.Position.Y+2*c.Radius)*sy), rows-1)

	for y := y0; y <= y1; y++ {
		wy := (float64(y) + 0.5) / sy
		for x := x0; x <= x1; x++ {
			wx := (float64(x) + 0.5) / sx
			d := bounce.Vec2{X: wx, Y: wy}.Sub(center)
			if d.LenSq() <= r2 {
				screen.SetContent(x, y, Fill, nil, style)
			}
		}
	}
}

// Run drives w in the terminal until Escape, Ctrl-C or 'q' is pressed, or
// ctx is done. Δt is measured on the wall clock between ticks. Input is read
// on a separate goroutine; only the calling goroutine touches w.
func Run(ctx context.Context, screen tcell.Screen, w *bounce.World) error {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	var r Renderer
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quitKey(ev.Key(), ev.Rune()) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			w.Advance(now.Sub(last).Seconds())
			last = now
			r.Draw(screen, w)
			screen.Show()
		}
	}
}

func quitKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return r == 'q'
	}
	return false
}
