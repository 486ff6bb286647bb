package orbit

import (
	"cmp"
	"slices"
)

// Scene owns the root container element, allocates element IDs, and holds the
// pointer state used for hit testing. Each Control owns exactly one Scene; no
// state is shared between scenes.
type Scene struct {
	root   *Element
	lastID uint32
	debug  bool

	// Input state
	handlers    handlerRegistry
	pointer     pointerState
	injectQueue []syntheticPointerEvent
}

// NewScene creates a scene whose root container is w×h pixels.
func NewScene(w, h float64) *Scene {
	root := NewContainer("root", w, h)
	root.Interactable = true
	s := &Scene{root: root}
	s.handlers.init()
	return s
}

// PaintOrder returns the root's visible children sorted by ascending ZIndex,
// keeping insertion order among equal values. The last element is on top.
func (s *Scene) PaintOrder() []*Element {
	out := make([]*Element, 0, len(s.root.children))
	for _, e := range s.root.children {
		if e.Visible {
			out = append(out, e)
		}
	}
	slices.SortStableFunc(out, func(a, b *Element) int {
		return cmp.Compare(a.ZIndex, b.ZIndex)
	})
	return out
}

// Root returns the scene's root container.
func (s *Scene) Root() *Element {
	return s.root
}

// SetSize resizes the root container.
func (s *Scene) SetSize(w, h float64) {
	s.root.Width = w
	s.root.Height = h
}

// SetDebugMode enables checks that panic on use of disposed elements.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// nextID is a plain counter (no atomic: a scene is used from one goroutine).
func (s *Scene) nextID() uint32 {
	s.lastID++
	return s.lastID
}

// ReplaceItems disposes every current child of the root and appends items in
// order. Hover state pointing at a disposed element is dropped.
func (s *Scene) ReplaceItems(items []*Element) {
	s.root.DisposeChildren()
	for _, e := range items {
		if s.debug {
			debugCheckDisposed(e, "ReplaceItems")
		}
		s.root.AddChild(e)
	}
	if s.pointer.hover != nil && s.pointer.hover.IsDisposed() {
		s.pointer.hover = nil
	}
	if s.pointer.hit != nil && s.pointer.hit.IsDisposed() {
		s.pointer.hit = nil
	}
}
