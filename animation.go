package orbit

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const maxTweenFields = 3

// TweenGroup animates up to three float64 fields on an Element together.
// Create one via TweenMove or TweenAlpha and call Update(dt)
// each frame. When the group finishes every field holds its exact end value.
// If the target element is disposed, the group stops immediately.
type TweenGroup struct {
	tweens [maxTweenFields]*gween.Tween
	fields [maxTweenFields]*float64
	ends   [maxTweenFields]float64
	count  int
	target *Element

	Done      bool
	cancelled bool
}

func (g *TweenGroup) add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[g.count] = field
	g.ends[g.count] = to
	g.count++
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. Does nothing once the group is done or cancelled.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		if finished {
			*g.fields[i] = g.ends[i]
			continue
		}
		*g.fields[i] = float64(val)
		allDone = false
	}
	g.Done = allDone
}

// Cancel stops the group where it is. Fields keep their current values and
// the group's end values are discarded.
func (g *TweenGroup) Cancel() {
	if g.Done {
		return
	}
	g.Done = true
	g.cancelled = true
}

// Cancelled reports whether the group was stopped by Cancel.
func (g *TweenGroup) Cancelled() bool {
	return g.cancelled
}

// Finish jumps every field to its end value and marks the group done.
func (g *TweenGroup) Finish() {
	if g.Done {
		return
	}
	if g.target == nil || !g.target.IsDisposed() {
		for i := 0; i < g.count; i++ {
			*g.fields[i] = g.ends[i]
		}
	}
	g.Done = true
}

// dropField stops the group from writing field. The remaining fields keep
// animating.
func (g *TweenGroup) dropField(field *float64) {
	for i := 0; i < g.count; i++ {
		if g.fields[i] != field {
			continue
		}
		last := g.count - 1
		g.tweens[i], g.fields[i], g.ends[i] = g.tweens[last], g.fields[last], g.ends[last]
		g.tweens[last], g.fields[last], g.ends[last] = nil, nil, 0
		g.count--
		return
	}
}

// TweenMove creates a TweenGroup that animates e.X, e.Y and e.Alpha together.
func TweenMove(e *Element, toX, toY, toAlpha float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: e}
	g.add(&e.X, toX, duration, fn)
	g.add(&e.Y, toY, duration, fn)
	g.add(&e.Alpha, toAlpha, duration, fn)
	return g
}

// TweenAlpha creates a TweenGroup that animates e.Alpha.
func TweenAlpha(e *Element, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: e}
	g.add(&e.Alpha, to, duration, fn)
	return g
}
