package orbit

import "math"

// Geometry maps the normalized layout space, where -1..1 spans the usable
// region on each axis, onto container pixels.
type Geometry struct {
	Width, Height    float64
	ScaleX, ScaleY   float64 // radius on each axis
	XOffset, YOffset float64
}

// ComputeGeometry derives the scale and offsets for a w×h container.
//
// ShapeAuto fills the container with an ellipse. ShapeSquare shrinks the
// larger axis to the smaller one and moves that axis's offset by the same
// amount, which centers a circle in the container.
func ComputeGeometry(w, h float64, shape Shape) Geometry {
	g := Geometry{
		Width:  w,
		Height: h,
		ScaleX: w / 2,
		ScaleY: h / 2,
	}
	if shape != ShapeSquare {
		return g
	}
	offset := math.Abs(g.ScaleX - g.ScaleY)
	if g.ScaleX > g.ScaleY {
		g.ScaleX -= offset
		g.XOffset = offset
	} else {
		g.ScaleY -= offset
		g.YOffset = offset
	}
	return g
}

// scaleX maps a normalized x to a container pixel column.
func (g Geometry) scaleX(x float64) float64 {
	return g.XOffset + (x+1)*g.ScaleX
}

func (g Geometry) scaleY(y float64) float64 {
	return g.YOffset + (y+1)*g.ScaleY
}

// ToPixel returns the top-left corner, rounded to whole pixels, that puts the
// center of an elemW×elemH element on the normalized point (x, y).
func (g Geometry) ToPixel(x, y, elemW, elemH float64) Vec2 {
	return Vec2{
		X: math.Round(g.scaleX(x) - elemW/2),
		Y: math.Round(g.scaleY(y) - elemH/2),
	}
}
