package orbit

import (
	"github.com/hajimehoshi/ebiten/v2"
)

type pointerState struct {
	down   bool
	button MouseButton // captured at press time
	hit    *Element    // item under the pointer at press time
	hover  *Element
}

// handlerList holds the scene-level callbacks for one kind of event, in
// registration order.
type handlerList[C any] struct {
	ids    []uint32
	fns    []func(C)
	nextID *uint32
}

func (l *handlerList[C]) add(fn func(C)) CallbackHandle {
	*l.nextID++
	id := *l.nextID
	l.ids = append(l.ids, id)
	l.fns = append(l.fns, fn)
	return CallbackHandle{remove: func() { l.remove(id) }}
}

func (l *handlerList[C]) remove(id uint32) {
	for i, got := range l.ids {
		if got == id {
			l.ids = append(l.ids[:i], l.ids[i+1:]...)
			l.fns = append(l.fns[:i], l.fns[i+1:]...)
			return
		}
	}
}

func (l *handlerList[C]) fire(ctx C) {
	for _, fn := range l.fns {
		fn(ctx)
	}
}

type handlerRegistry struct {
	enter  handlerList[PointerContext]
	leave  handlerList[PointerContext]
	click  handlerList[ClickContext]
	nextID uint32
}

func (r *handlerRegistry) init() {
	r.enter.nextID = &r.nextID
	r.leave.nextID = &r.nextID
	r.click.nextID = &r.nextID
}

// CallbackHandle unregisters a scene-level callback. The zero value is a
// no-op handle.
type CallbackHandle struct {
	remove func()
}

// Remove unregisters the callback. Calling it again does nothing.
func (h CallbackHandle) Remove() {
	if h.remove != nil {
		h.remove()
	}
}

// OnPointerEnter registers fn to run when the pointer moves onto an item.
func (s *Scene) OnPointerEnter(fn func(PointerContext)) CallbackHandle {
	return s.handlers.enter.add(fn)
}

// OnPointerLeave registers fn to run when the pointer leaves an item.
func (s *Scene) OnPointerLeave(fn func(PointerContext)) CallbackHandle {
	return s.handlers.leave.add(fn)
}

// OnClick registers fn to run when a button is pressed and released over the
// same item.
func (s *Scene) OnClick(fn func(ClickContext)) CallbackHandle {
	return s.handlers.click.add(fn)
}

// HitTest returns the topmost visible, interactable item at (x, y), or nil.
// Higher ZIndex wins; among equal ZIndex the later child is on top.
func (s *Scene) HitTest(x, y float64) *Element {
	if !s.root.Visible || !s.root.Interactable {
		return nil
	}
	var top *Element
	for _, e := range s.root.children {
		if !e.Visible || !e.Interactable || !e.IsItem() {
			continue
		}
		if !e.Bounds().Contains(x, y) {
			continue
		}
		if top == nil || e.ZIndex >= top.ZIndex {
			top = e
		}
	}
	return top
}

// ProcessInput consumes one injected pointer event if any are queued and
// otherwise reads the ebiten mouse. Call once per frame from the UI goroutine.
func (s *Scene) ProcessInput() {
	if s.processInjectedInput() {
		return
	}
	mx, my := ebiten.CursorPosition()

	pressed := true
	var button MouseButton
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		button = MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		button = MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		button = MouseButtonMiddle
	default:
		pressed = false
	}
	s.ProcessPointer(float64(mx), float64(my), pressed, button)
}

// ProcessPointer runs the pointer state machine for one observation of the
// pointer at (x, y) in container pixels. The button of a click is the one
// held when the press began.
func (s *Scene) ProcessPointer(x, y float64, pressed bool, button MouseButton) {
	ps := &s.pointer
	target := s.HitTest(x, y)

	if target != ps.hover {
		if ps.hover != nil && !ps.hover.IsDisposed() {
			s.handlers.leave.fire(pointerContext(ps.hover, x, y, button))
		}
		if target != nil {
			s.handlers.enter.fire(pointerContext(target, x, y, button))
		}
		ps.hover = target
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.hit = target
	case !pressed && ps.down:
		hit, btn := ps.hit, ps.button
		ps.down = false
		ps.hit = nil
		if hit != nil && hit == target && !hit.IsDisposed() {
			lx, ly := hit.WorldToLocal(x, y)
			s.handlers.click.fire(ClickContext{Element: hit, GlobalX: x, GlobalY: y, LocalX: lx, LocalY: ly, Button: btn})
		}
	}
}

// Hovered returns the item the pointer is over, or nil.
func (s *Scene) Hovered() *Element {
	return s.pointer.hover
}

func pointerContext(e *Element, x, y float64, button MouseButton) PointerContext {
	lx, ly := e.WorldToLocal(x, y)
	return PointerContext{Element: e, GlobalX: x, GlobalY: y, LocalX: lx, LocalY: ly, Button: button}
}
