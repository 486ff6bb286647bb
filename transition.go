package orbit

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/tanema/gween/ease"
)

// Target is the resting state a layout transition moves an element to.
type Target struct {
	X, Y  float64
	Alpha float64
}

// TargetOpacity returns the resting opacity of an item. Without fall-off every
// item is opaque; with fall-off heavier (farther) items fade, down to minimum.
func TargetOpacity(weight float64, fallOff bool, minimum float64) float64 {
	if !fallOff {
		return 1
	}
	return math.Max(minimum, 1-weight)
}

var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"swing":        ease.InOutSine,
	"inquad":       ease.InQuad,
	"outquad":      ease.OutQuad,
	"inoutquad":    ease.InOutQuad,
	"incubic":      ease.InCubic,
	"outcubic":     ease.OutCubic,
	"inoutcubic":   ease.InOutCubic,
	"insine":       ease.InSine,
	"outsine":      ease.OutSine,
	"inoutsine":    ease.InOutSine,
	"inexpo":       ease.InExpo,
	"outexpo":      ease.OutExpo,
	"inoutexpo":    ease.InOutExpo,
	"inback":       ease.InBack,
	"outback":      ease.OutBack,
	"inoutback":    ease.InOutBack,
	"inbounce":     ease.InBounce,
	"outbounce":    ease.OutBounce,
	"inoutbounce":  ease.InOutBounce,
	"inelastic":    ease.InElastic,
	"outelastic":   ease.OutElastic,
	"inoutelastic": ease.InOutElastic,
}

// EasingByName resolves an easing name. Names are case-insensitive and may
// carry an "ease" prefix, so "inOutQuad" and "easeInOutQuad" are the same.
// "swing" is the sinusoidal in-out curve.
func EasingByName(name string) (ease.TweenFunc, error) {
	key := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "ease")
	fn, ok := easings[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEasing, name)
	}
	return fn, nil
}

// seconds converts a duration to the float32 seconds gween works in.
func seconds(d time.Duration) float32 {
	return float32(d.Seconds())
}

type elementTracks struct {
	move  *TweenGroup // position and opacity from a layout pass
	alpha *TweenGroup // opacity only, from hover
}

func (t *elementTracks) idle() bool {
	return (t.move == nil || t.move.Done) && (t.alpha == nil || t.alpha.Done)
}

// Scheduler runs element transitions. Requesting a transition on an element
// cancels the transition already running on it, so the last request wins and
// nothing queues. Transitions only advance inside Update.
type Scheduler struct {
	tracks map[*Element]*elementTracks
	order  []*Element
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{tracks: make(map[*Element]*elementTracks)}
}

func (s *Scheduler) tracksFor(e *Element) *elementTracks {
	t, ok := s.tracks[e]
	if !ok {
		t = &elementTracks{}
		s.tracks[e] = t
		s.order = append(s.order, e)
	}
	return t
}

// Animate cancels everything running on e and starts moving it to target.
func (s *Scheduler) Animate(e *Element, target Target, d time.Duration, fn ease.TweenFunc) *TweenGroup {
	t := s.tracksFor(e)
	if t.move != nil {
		t.move.Cancel()
	}
	if t.alpha != nil {
		t.alpha.Cancel()
		t.alpha = nil
	}
	t.move = TweenMove(e, target.X, target.Y, target.Alpha, seconds(d), fn)
	return t.move
}

// FadeTo cancels the opacity transition running on e and starts a new one.
// A running layout move keeps animating position but stops driving opacity.
func (s *Scheduler) FadeTo(e *Element, alpha float64, d time.Duration, fn ease.TweenFunc) *TweenGroup {
	t := s.tracksFor(e)
	if t.alpha != nil {
		t.alpha.Cancel()
	}
	if t.move != nil && !t.move.Done {
		t.move.dropField(&e.Alpha)
	}
	t.alpha = TweenAlpha(e, alpha, seconds(d), fn)
	return t.alpha
}

// Cancel stops every transition on e where it is.
func (s *Scheduler) Cancel(e *Element) {
	t, ok := s.tracks[e]
	if !ok {
		return
	}
	if t.move != nil {
		t.move.Cancel()
	}
	if t.alpha != nil {
		t.alpha.Cancel()
	}
}

// Active reports whether any transition is running on e.
func (s *Scheduler) Active(e *Element) bool {
	t, ok := s.tracks[e]
	return ok && !t.idle()
}

// Running returns the number of elements with a running transition.
func (s *Scheduler) Running() int {
	n := 0
	for _, t := range s.tracks {
		if !t.idle() {
			n++
		}
	}
	return n
}

// Update advances every transition by dt and forgets finished ones.
func (s *Scheduler) Update(dt time.Duration) {
	step := seconds(dt)
	for _, e := range s.order {
		t := s.tracks[e]
		if t.move != nil {
			t.move.Update(step)
		}
		if t.alpha != nil {
			t.alpha.Update(step)
		}
	}
	s.prune()
}

// Settle jumps every running transition to its end state.
func (s *Scheduler) Settle() {
	for _, e := range s.order {
		t := s.tracks[e]
		if t.move != nil {
			t.move.Finish()
		}
		if t.alpha != nil {
			t.alpha.Finish()
		}
	}
	s.prune()
}

func (s *Scheduler) prune() {
	kept := s.order[:0]
	for _, e := range s.order {
		if t := s.tracks[e]; t.idle() || e.IsDisposed() {
			delete(s.tracks, e)
			continue
		}
		kept = append(kept, e)
	}
	clear(s.order[len(kept):])
	s.order = kept
}
