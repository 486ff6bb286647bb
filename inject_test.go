package orbit

import "testing"

func TestInjectClick(t *testing.T) {
	s, a, _ := newInputScene()

	var clicked bool
	s.OnClick(func(ctx ClickContext) {
		clicked = true
		if ctx.Element != a {
			t.Error("expected item a")
		}
		if ctx.Button != MouseButtonMiddle {
			t.Errorf("Button = %v, want middle", ctx.Button)
		}
	})

	s.InjectClick(20, 20, MouseButtonMiddle)
	if s.PendingInput() != 2 {
		t.Fatalf("expected 2 queued events, got %d", s.PendingInput())
	}

	// Frame 1: press
	s.ProcessInput()
	if s.PendingInput() != 1 {
		t.Fatalf("expected 1 remaining event after frame 1, got %d", s.PendingInput())
	}
	if clicked {
		t.Error("click should not fire on press frame")
	}

	// Frame 2: release
	s.ProcessInput()
	if s.PendingInput() != 0 {
		t.Fatalf("expected 0 remaining events after frame 2, got %d", s.PendingInput())
	}
	if !clicked {
		t.Error("click should fire on release frame")
	}
}

func TestInjectMoveHovers(t *testing.T) {
	s, _, b := newInputScene()
	s.InjectMove(140, 140)
	s.ProcessInput()
	if s.Hovered() != b {
		t.Errorf("Hovered = %v, want b", s.Hovered())
	}
}

func TestInjectPressRelease(t *testing.T) {
	s, a, _ := newInputScene()
	var got []ClickContext
	s.OnClick(func(ctx ClickContext) { got = append(got, ctx) })

	s.InjectPress(10, 10, MouseButtonRight)
	s.InjectRelease(30, 40, MouseButtonLeft)
	s.ProcessInput()
	s.ProcessInput()

	if len(got) != 1 {
		t.Fatalf("clicks = %d, want 1", len(got))
	}
	if got[0].Element != a || got[0].Button != MouseButtonRight {
		t.Errorf("click = %+v, want right click on a", got[0])
	}
	if got[0].LocalX != 30 || got[0].LocalY != 40 {
		t.Errorf("local = (%v, %v), want release point (30, 40)", got[0].LocalX, got[0].LocalY)
	}
}
