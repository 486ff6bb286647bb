package orbit

import "testing"

// newInputScene builds a 400x400 scene with two overlapping 100x100 items:
// a at (0, 0) and b at (50, 50), b stacked above a.
func newInputScene() (s *Scene, a, b *Element) {
	s = NewScene(400, 400)
	a, b = newTestItem("a"), newTestItem("b")
	a.Width, a.Height = 100, 100
	b.X, b.Y = 50, 50
	b.Width, b.Height = 100, 100
	a.ZIndex, b.ZIndex = 1, 2
	s.ReplaceItems([]*Element{a, b})
	return s, a, b
}

func TestHitTest(t *testing.T) {
	s, a, b := newInputScene()

	tests := []struct {
		name string
		x, y float64
		want *Element
	}{
		{"only a", 10, 10, a},
		{"overlap picks higher z", 75, 75, b},
		{"only b", 140, 140, b},
		{"empty", 300, 300, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.HitTest(tt.x, tt.y); got != tt.want {
				t.Errorf("HitTest(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitTestZIndexOverridesOrder(t *testing.T) {
	s, a, _ := newInputScene()
	a.ZIndex = HoverZIndex
	if got := s.HitTest(75, 75); got != a {
		t.Errorf("HitTest = %v, want promoted a", got)
	}
}

func TestHitTestTieGoesToLaterChild(t *testing.T) {
	s, a, b := newInputScene()
	a.ZIndex, b.ZIndex = 5, 5
	if got := s.HitTest(75, 75); got != b {
		t.Errorf("HitTest = %v, want b", got)
	}
}

func TestHitTestSkipsHiddenAndInert(t *testing.T) {
	s, a, b := newInputScene()
	b.Visible = false
	if got := s.HitTest(75, 75); got != a {
		t.Errorf("hidden b: HitTest = %v, want a", got)
	}
	a.Interactable = false
	if got := s.HitTest(75, 75); got != nil {
		t.Errorf("inert a: HitTest = %v, want nil", got)
	}
}

func TestPointerEnterLeave(t *testing.T) {
	s, _, _ := newInputScene()
	var log []string
	s.OnPointerEnter(func(ctx PointerContext) { log = append(log, "enter "+ctx.Element.Name) })
	s.OnPointerLeave(func(ctx PointerContext) { log = append(log, "leave "+ctx.Element.Name) })

	s.ProcessPointer(10, 10, false, MouseButtonLeft)
	s.ProcessPointer(20, 20, false, MouseButtonLeft)
	s.ProcessPointer(140, 140, false, MouseButtonLeft)
	s.ProcessPointer(300, 300, false, MouseButtonLeft)

	want := []string{"enter a", "leave a", "enter b", "leave b"}
	if len(log) != len(want) {
		t.Fatalf("events = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("event %d = %q, want %q", i, log[i], want[i])
		}
	}
}

func TestClickRequiresSameElement(t *testing.T) {
	s, _, _ := newInputScene()
	var clicks int
	s.OnClick(func(ClickContext) { clicks++ })

	s.ProcessPointer(10, 10, true, MouseButtonLeft)
	s.ProcessPointer(140, 140, false, MouseButtonLeft)
	if clicks != 0 {
		t.Errorf("press on a, release on b fired %d clicks", clicks)
	}

	s.ProcessPointer(10, 10, true, MouseButtonLeft)
	s.ProcessPointer(12, 12, false, MouseButtonLeft)
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestClickCarriesPressButtonAndLocalCoords(t *testing.T) {
	s, _, b := newInputScene()
	var got ClickContext
	s.OnClick(func(ctx ClickContext) { got = ctx })

	s.ProcessPointer(130, 120, true, MouseButtonRight)
	s.ProcessPointer(130, 120, false, MouseButtonLeft)

	if got.Element != b {
		t.Fatal("click did not reach b")
	}
	if got.Button != MouseButtonRight {
		t.Errorf("Button = %v, want right", got.Button)
	}
	if got.LocalX != 80 || got.LocalY != 70 {
		t.Errorf("local = (%v, %v), want (80, 70)", got.LocalX, got.LocalY)
	}
	if got.GlobalX != 130 || got.GlobalY != 120 {
		t.Errorf("global = (%v, %v), want (130, 120)", got.GlobalX, got.GlobalY)
	}
}

func TestSceneHandlersAndRemove(t *testing.T) {
	s, a, _ := newInputScene()
	var enters, clicks int
	h := s.OnPointerEnter(func(PointerContext) { enters++ })
	s.OnClick(func(ctx ClickContext) {
		if ctx.Element == a {
			clicks++
		}
	})

	s.ProcessPointer(10, 10, true, MouseButtonLeft)
	s.ProcessPointer(10, 10, false, MouseButtonLeft)
	if enters != 1 || clicks != 1 {
		t.Errorf("enters/clicks = %d/%d, want 1/1", enters, clicks)
	}

	h.Remove()
	h.Remove()
	s.ProcessPointer(300, 300, false, MouseButtonLeft)
	s.ProcessPointer(10, 10, false, MouseButtonLeft)
	if enters != 1 {
		t.Errorf("removed handler fired: enters = %d", enters)
	}
	CallbackHandle{}.Remove()
}

func TestRemoveKeepsOtherHandlers(t *testing.T) {
	s, _, _ := newInputScene()
	var order []string
	first := s.OnClick(func(ClickContext) { order = append(order, "first") })
	s.OnClick(func(ClickContext) { order = append(order, "second") })
	s.OnClick(func(ClickContext) { order = append(order, "third") })
	first.Remove()

	s.ProcessPointer(10, 10, true, MouseButtonLeft)
	s.ProcessPointer(10, 10, false, MouseButtonLeft)
	if len(order) != 2 || order[0] != "second" || order[1] != "third" {
		t.Errorf("handlers fired %v, want [second third]", order)
	}
}

func TestClickOnDisposedElementDoesNotFire(t *testing.T) {
	s, a, _ := newInputScene()
	var clicks int
	s.OnClick(func(ClickContext) { clicks++ })

	s.ProcessPointer(10, 10, true, MouseButtonLeft)
	a.Dispose()
	s.ProcessPointer(10, 10, false, MouseButtonLeft)
	if clicks != 0 {
		t.Errorf("clicks = %d, want 0", clicks)
	}
}

func TestMouseButtonString(t *testing.T) {
	if MouseButtonMiddle.String() != "middle" || MouseButton(9).String() != "unknown" {
		t.Error("unexpected MouseButton names")
	}
}
