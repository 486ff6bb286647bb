package orbit

import (
	"errors"
	"image/color"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorLightBlue is the fill of the built-in default item template.
var ColorLightBlue = Color{R: 0.678, G: 0.847, B: 0.902, A: 1}

// toRGBA converts to a premultiplied color.RGBA scaled by alpha.
func (c Color) toRGBA(alpha float64) color.RGBA {
	a := clamp01(c.A * alpha)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, offsets, and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Shape is the container shape policy used by the geometry calculator.
type Shape string

const (
	ShapeAuto   Shape = "auto"   // ellipse filling the container
	ShapeSquare Shape = "square" // circle inscribed in the container, centered
)

// FlyIn selects the spawn point items animate from after a refresh.
type FlyIn string

const (
	FlyInCentre FlyIn = "centre"
	FlyInTop    FlyIn = "top"
	FlyInLeft   FlyIn = "left"
	FlyInBottom FlyIn = "bottom"
	FlyInRight  FlyIn = "right"
	FlyInRandom FlyIn = "random"
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary activation: drill-down
	MouseButtonRight                     // secondary activation
	MouseButtonMiddle                    // auxiliary activation
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// Sentinel errors returned by configuration and construction.
var (
	ErrUnknownShape  = errors.New("orbit: unknown shape")
	ErrUnknownFlyIn  = errors.New("orbit: unknown fly-in")
	ErrUnknownEasing = errors.New("orbit: unknown easing")
	ErrNilFetcher    = errors.New("orbit: nil fetcher")
)
