package orbit

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	textInset   = 4
	borderWidth = 1
)

var borderColor = Color{R: 0.2, G: 0.3, B: 0.4, A: 1}

// Draw paints the items in stacking order: a filled block per item with the
// item's display text on top. Fully transparent items are skipped.
func (c *Control) Draw(screen *ebiten.Image) {
	for _, e := range c.scene.PaintOrder() {
		if e.Alpha <= 0 {
			continue
		}
		b := e.Bounds()
		x, y := float32(b.X), float32(b.Y)
		w, h := float32(b.Width), float32(b.Height)
		vector.DrawFilledRect(screen, x, y, w, h, e.Fill.toRGBA(e.Alpha), false)
		vector.StrokeRect(screen, x, y, w, h, borderWidth, borderColor.toRGBA(e.Alpha), false)
		if e.Text != "" {
			ebitenutil.DebugPrintAt(screen, e.Text, int(b.X)+textInset, int(b.Y)+textInset)
		}
	}
}

// clearColor converts a background Color for screen.Fill.
func clearColor(c Color) color.Color {
	return c.toRGBA(1)
}
