//go:build ebiten

package app

import (
	"time"

	"lgca/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// maxCatchUpSteps bounds how many simulation ticks one frame may run when
// the viewer falls behind the target rate.
const maxCatchUpSteps = 8

// Game adapts a Runner to the ebiten.Game interface. One screen pixel (pre
// scale) is one analysis block, so the viewer shows exactly what the frame
// encoder would write.
type Game struct {
	runner  *Runner
	painter *GridPainter
	timer   *FixedStep

	rgb   []byte
	scale int

	paused   bool
	tickOnce bool
	seed     int64
}

// NewGame constructs a viewer for the provided runner.
func NewGame(r *Runner, scale, tps int, seed int64) *Game {
	cfg := r.Config()
	w, h := render.FrameSize(r.Grid(), cfg.Downscale)
	return &Game{
		runner:  r,
		painter: NewGridPainter(w, h),
		timer:   NewFixedStep(tps),
		rgb:     make([]byte, w*h*3),
		scale:   scale,
		seed:    seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.runner.Reset(seed)
	g.tickOnce = false
}

// Update handles input and advances the simulation at the configured rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	switch {
	case g.tickOnce:
		g.runner.Advance()
		g.tickOnce = false
	case !g.paused:
		for i := g.timer.Steps(maxCatchUpSteps); i > 0; i-- {
			g.runner.Advance()
		}
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	cfg := g.runner.Config()
	render.FrameInto(g.rgb, g.runner.Grid(), cfg.Downscale, cfg.Coloring)
	g.painter.Blit(screen, g.rgb, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w * g.scale, h * g.scale
}
