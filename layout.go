package orbit

import "math"

// Tau is a full turn in radians.
const Tau = 2 * math.Pi

// Placement is one item's slot in the radial layout. X and Y are normalized:
// -1..1 spans the container on each axis.
type Placement struct {
	Index int
	Angle float64
	X, Y  float64
}

// SolveLayout assigns each weight an equal angular slice in input order,
// starting at angle 0, and puts the item at distance weight from the center.
// Weights are used as given: a weight of 0 sits on the center and a weight of
// 1 sits on the container edge. Returns nil for no weights.
func SolveLayout(weights []float64) []Placement {
	n := len(weights)
	if n == 0 {
		return nil
	}
	delta := Tau / float64(n)
	out := make([]Placement, n)
	for i, w := range weights {
		angle := float64(i) * delta
		sin, cos := math.Sincos(angle)
		out[i] = Placement{
			Index: i,
			Angle: angle,
			X:     w * cos,
			Y:     w * sin,
		}
	}
	return out
}
