package orbit

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

const eps = 1e-9

func TestComputeGeometryAuto(t *testing.T) {
	g := ComputeGeometry(400, 200, ShapeAuto)
	if g.ScaleX != 200 || g.ScaleY != 100 {
		t.Errorf("scale = (%v, %v), want (200, 100)", g.ScaleX, g.ScaleY)
	}
	if g.XOffset != 0 || g.YOffset != 0 {
		t.Errorf("offset = (%v, %v), want (0, 0)", g.XOffset, g.YOffset)
	}
}

func TestComputeGeometrySquare(t *testing.T) {
	tests := []struct {
		name             string
		w, h             float64
		scale            float64
		xOffset, yOffset float64
	}{
		{"wide", 400, 200, 100, 100, 0},
		{"tall", 200, 400, 100, 0, 100},
		{"already square", 300, 300, 150, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := ComputeGeometry(tt.w, tt.h, ShapeSquare)
			if g.ScaleX != tt.scale || g.ScaleY != tt.scale {
				t.Errorf("scale = (%v, %v), want %v", g.ScaleX, g.ScaleY, tt.scale)
			}
			if g.XOffset != tt.xOffset || g.YOffset != tt.yOffset {
				t.Errorf("offset = (%v, %v), want (%v, %v)", g.XOffset, g.YOffset, tt.xOffset, tt.yOffset)
			}
		})
	}
}

func TestComputeGeometryZeroSize(t *testing.T) {
	g := ComputeGeometry(0, 0, ShapeSquare)
	p := g.ToPixel(0.5, -0.5, 0, 0)
	if p != (Vec2{}) {
		t.Errorf("ToPixel on empty container = %+v, want origin", p)
	}
}

func TestToPixelCentersElement(t *testing.T) {
	g := ComputeGeometry(400, 400, ShapeAuto)

	// Center of the container for a 100x100 element.
	p := g.ToPixel(0, 0, 100, 100)
	if p.X != 150 || p.Y != 150 {
		t.Errorf("ToPixel(0, 0) = %+v, want (150, 150)", p)
	}

	// Right edge midpoint: the element's center sits on x = 400.
	p = g.ToPixel(1, 0, 100, 100)
	if p.X != 350 || p.Y != 150 {
		t.Errorf("ToPixel(1, 0) = %+v, want (350, 150)", p)
	}
}

func TestToPixelRounds(t *testing.T) {
	g := ComputeGeometry(101, 101, ShapeAuto)
	p := g.ToPixel(0, 0, 0, 0)
	if p.X != 51 || p.Y != 51 {
		t.Errorf("ToPixel = %+v, want (51, 51)", p)
	}
}

func TestToPixelSquareStaysInsideCircle(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := rapid.Float64Range(1, 2000).Draw(t, "w")
		h := rapid.Float64Range(1, 2000).Draw(t, "h")
		angle := rapid.Float64Range(0, Tau).Draw(t, "angle")

		g := ComputeGeometry(w, h, ShapeSquare)
		if math.Abs(g.ScaleX-g.ScaleY) > eps {
			t.Fatalf("square scales differ: %v vs %v", g.ScaleX, g.ScaleY)
		}
		// A weight-1 point lands on the inscribed circle, within rounding.
		p := g.ToPixel(math.Cos(angle), math.Sin(angle), 0, 0)
		dx, dy := p.X-w/2, p.Y-h/2
		r := math.Hypot(dx, dy)
		if math.Abs(r-g.ScaleX) > 1 {
			t.Fatalf("distance from center = %v, want %v", r, g.ScaleX)
		}
	})
}
