package orbit

import (
	"fmt"
	"html"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
)

const snapshotLineHeight = 14

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

// WriteSVG writes the container and its items, at their current positions
// and opacities, as an SVG document. Items are emitted in stacking order.
func (c *Control) WriteSVG(w io.Writer) error {
	ew := &errWriter{w: w}
	root := c.scene.Root()
	canvas := svg.New(ew)
	canvas.Start(int(math.Ceil(root.Width)), int(math.Ceil(root.Height)))
	canvas.Title("orbit " + c.id)
	canvas.Rect(0, 0, int(root.Width), int(root.Height), "fill:none;stroke:#cccccc")

	for _, e := range c.scene.PaintOrder() {
		b := e.Bounds()
		x, y := int(math.Round(b.X)), int(math.Round(b.Y))
		canvas.Group(fmt.Sprintf(`id="item-%d" class="relationship-item" data-type="%s" data-id="%s" opacity="%.3f"`,
			e.ID, html.EscapeString(e.Item.Type), html.EscapeString(e.Item.ID), e.Alpha))
		canvas.Rect(x, y, int(b.Width), int(b.Height), svgFill(e.Fill)+";stroke:#334d66")
		for i, line := range strings.Split(e.Text, "\n") {
			if line == "" {
				continue
			}
			canvas.Text(x+int(b.Width)/2, y+snapshotLineHeight*(i+1), line,
				"text-anchor:middle;font-family:sans-serif;font-size:11px;fill:#000000")
		}
		canvas.Gend()
	}
	canvas.End()
	return ew.err
}

func svgFill(c Color) string {
	to255 := func(v float64) int { return int(clamp01(v)*255 + 0.5) }
	return fmt.Sprintf("fill:rgb(%d,%d,%d)", to255(c.R), to255(c.G), to255(c.B))
}
