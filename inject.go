package orbit

// syntheticPointerEvent represents a single injected pointer event in
// container pixel coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	button  MouseButton
}

// InjectPress queues a pointer press with the given button. The event is
// consumed by the next ProcessInput call.
func (s *Scene) InjectPress(x, y float64, button MouseButton) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: true,
		button:  button,
	})
}

// InjectRelease queues a pointer release at the given coordinates.
func (s *Scene) InjectRelease(x, y float64, button MouseButton) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: false,
		button:  button,
	})
}

// InjectMove queues a hover move with no button held.
func (s *Scene) InjectMove(x, y float64) {
	s.InjectRelease(x, y, MouseButtonLeft)
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two frames.
func (s *Scene) InjectClick(x, y float64, button MouseButton) {
	s.InjectPress(x, y, button)
	s.InjectRelease(x, y, button)
}

// PendingInput returns the number of queued synthetic events.
func (s *Scene) PendingInput() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through ProcessPointer. Returns true if an event was consumed (real mouse
// input should be skipped).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.ProcessPointer(evt.x, evt.y, evt.pressed, evt.button)
	return true
}
