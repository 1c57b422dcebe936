package bounce

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string
	Width  int // window and logical screen width; 0 uses the world width
	Height int // window and logical screen height; 0 uses the world height

	// ClearColor fills the screen before bodies are drawn. The zero value
	// clears to opaque black.
	ClearColor Color

	ShowFPS bool
	Debug   bool // enables World debug output on stderr
	Paused  bool // start paused

	// ScreenshotDir receives PNGs queued with F12. Defaults to "screenshots".
	ScreenshotDir string
}

// Run opens a window and drives w from the ebiten game loop until the window
// is closed or Escape is pressed. Δt is measured on the wall clock between
// updates and passed to World.Advance unmodified.
//
// Space toggles pause; F12 saves a screenshot.
func Run(w *World, cfg RunConfig) error {
	g := newGame(w, cfg)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(cfg.Title)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// game adapts a World to ebiten.Game.
type game struct {
	world         *World
	width, height int
	clear         Color
	paused        bool

	last time.Time
	now  func() time.Time

	cmds  []DrawCommand
	fps   *fpsOverlay
	shots screenshotQueue
}

func newGame(w *World, cfg RunConfig) *game {
	g := &game{
		world:  w,
		width:  cfg.Width,
		height: cfg.Height,
		clear:  cfg.ClearColor,
		paused: cfg.Paused,
		now:    time.Now,
		cmds:   make([]DrawCommand, 0, w.Len()),
		shots:  screenshotQueue{dir: cfg.ScreenshotDir},
	}
	if g.width <= 0 {
		g.width = int(w.Width())
	}
	if g.height <= 0 {
		g.height = int(w.Height())
	}
	if g.clear == (Color{}) {
		g.clear = ColorBlack
	}
	if g.shots.dir == "" {
		g.shots.dir = "screenshots"
	}
	if cfg.ShowFPS {
		g.fps = &fpsOverlay{}
	}
	w.SetDebugMode(cfg.Debug)
	return g
}

// Update implements ebiten.Game.
func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.shots.add("frame")
	}
	g.tick()
	return nil
}

// tick measures Δt since the previous tick and advances the world.
// The first tick and every paused tick advance nothing.
func (g *game) tick() {
	now := g.now()
	var dt float64
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now

	if g.fps != nil {
		g.fps.tick(dt)
	}
	if g.paused {
		return
	}
	g.world.Advance(dt)
}

// Draw implements ebiten.Game.
func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.clear.RGBA())
	g.cmds = g.world.DrawCommands(g.cmds[:0])
	for _, c := range g.cmds {
		center := c.Center()
		vector.DrawFilledCircle(screen, float32(center.X), float32(center.Y), float32(c.Radius), c.Color.RGBA(), true)
	}
	if g.fps != nil {
		g.fps.draw(screen)
	}
	g.shots.flush(screen)
}

// Layout implements ebiten.Game. The logical screen always matches the
// configured size so world units map to pixels.
func (g *game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
