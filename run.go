package orbit

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const fpsRefresh = 500 * time.Millisecond

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	Resizable  bool
	Background Color
	ShowFPS    bool

	// OnFrame, when set, runs at the start of every frame before input.
	OnFrame func() error
}

// game adapts a Control to ebiten.Game.
type game struct {
	ctrl *Control
	cfg  RunConfig
	w, h int
	fps  *fpsOverlay
}

// fpsOverlay shows the measured FPS and TPS in the top-left corner. The text
// is redrawn about twice a second.
type fpsOverlay struct {
	img     *ebiten.Image
	elapsed time.Duration
}

func (o *fpsOverlay) update(dt time.Duration) {
	o.elapsed += dt
	if o.img != nil && o.elapsed < fpsRefresh {
		return
	}
	o.elapsed = 0
	if o.img == nil {
		o.img = ebiten.NewImage(100, 32)
	}
	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	if o.img != nil {
		screen.DrawImage(o.img, nil)
	}
}

func (g *game) Update() error {
	if g.cfg.OnFrame != nil {
		if err := g.cfg.OnFrame(); err != nil {
			return err
		}
	}
	dt := time.Second / time.Duration(ebiten.TPS())
	g.ctrl.ProcessInput()
	g.ctrl.Update(dt)
	if g.fps != nil {
		g.fps.update(dt)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor(g.cfg.Background))
	g.ctrl.Draw(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// Layout forwards window size changes to Control.Resize.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.ctrl.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and drives ctrl until the window closes or OnFrame
// returns an error. The control is resized to the window on the first frame
// and whenever the window size changes.
func Run(ctrl *Control, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.Background == (Color{}) {
		cfg.Background = Color{R: 1, G: 1, B: 1, A: 1}
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	g := &game{ctrl: ctrl, cfg: cfg}
	if cfg.ShowFPS {
		g.fps = &fpsOverlay{}
	}
	return ebiten.RunGame(g)
}
