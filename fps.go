package bounce

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often, in seconds, the overlay text is redrawn.
const fpsRefresh = 0.5

// fpsOverlay displays the current FPS and TPS in the top-left corner.
// The text image is regenerated every fpsRefresh seconds.
type fpsOverlay struct {
	img     *ebiten.Image
	elapsed float64
	stale   bool
}

func (o *fpsOverlay) tick(dt float64) {
	o.elapsed += dt
	if o.elapsed < fpsRefresh && o.img != nil {
		return
	}
	o.elapsed = 0
	o.stale = true
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	if o.img == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		o.img = ebiten.NewImage(100, 32)
		o.stale = true
	}
	if o.stale {
		o.stale = false
		o.img.Clear()
		// Semi-transparent background for readability
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	screen.DrawImage(o.img, nil)
}
