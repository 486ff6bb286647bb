package orbit

import "testing"

func TestSceneNextID(t *testing.T) {
	s := NewScene(0, 0)
	a, b := s.nextID(), s.nextID()
	if a == 0 || b != a+1 {
		t.Errorf("ids = %d, %d", a, b)
	}

	// Scenes do not share a counter.
	if other := NewScene(0, 0).nextID(); other != a {
		t.Errorf("second scene id = %d, want %d", other, a)
	}
}

func TestScenePaintOrder(t *testing.T) {
	s := NewScene(100, 100)
	a, b, c, hidden := newTestItem("a"), newTestItem("b"), newTestItem("c"), newTestItem("hidden")
	a.ZIndex, b.ZIndex, c.ZIndex, hidden.ZIndex = 3, 1, 3, 9
	hidden.Visible = false
	s.ReplaceItems([]*Element{a, b, c, hidden})

	got := s.PaintOrder()
	want := []*Element{b, a, c}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PaintOrder[%d] = %s, want %s", i, got[i].Name, want[i].Name)
		}
	}
}

func TestSceneReplaceItems(t *testing.T) {
	s := NewScene(100, 100)
	old := newTestItem("old")
	old.Width, old.Height = 10, 10
	s.ReplaceItems([]*Element{old})
	s.ProcessPointer(5, 5, false, MouseButtonLeft)
	if s.Hovered() != old {
		t.Fatal("expected hover on old item")
	}

	fresh := newTestItem("new")
	s.ReplaceItems([]*Element{fresh})

	if !old.IsDisposed() {
		t.Error("old item not disposed")
	}
	if s.Root().NumChildren() != 1 || s.Root().ChildAt(0) != fresh {
		t.Error("root children not replaced")
	}
	if s.Hovered() != nil {
		t.Error("hover on a disposed item should be dropped")
	}
}

func TestSceneSetSize(t *testing.T) {
	s := NewScene(0, 0)
	s.SetSize(640, 480)
	if s.Root().Width != 640 || s.Root().Height != 480 {
		t.Errorf("root = %vx%v", s.Root().Width, s.Root().Height)
	}
}
