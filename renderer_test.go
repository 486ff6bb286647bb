package orbit

import (
	"math/rand/v2"
	"testing"
)

func newTestRenderer(t *testing.T, flyIn FlyIn) (*ItemRenderer, *Scene) {
	t.Helper()
	templates, err := NewTemplateSet(nil)
	if err != nil {
		t.Fatalf("NewTemplateSet: %v", err)
	}
	scene := NewScene(400, 200)
	return NewItemRenderer(scene, templates, flyIn, rand.New(rand.NewPCG(1, 2))), scene
}

func TestSpawnPoint(t *testing.T) {
	tests := []struct {
		flyIn FlyIn
		want  Vec2
	}{
		{FlyInCentre, Vec2{200, 100}},
		{FlyInTop, Vec2{200, 0}},
		{FlyInLeft, Vec2{0, 100}},
		{FlyInBottom, Vec2{200, 200}},
		{FlyInRight, Vec2{400, 100}},
	}
	for _, tt := range tests {
		t.Run(string(tt.flyIn), func(t *testing.T) {
			if got := SpawnPoint(tt.flyIn, 400, 200, nil); got != tt.want {
				t.Errorf("SpawnPoint = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSpawnPointRandomInsideContainer(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	for i := 0; i < 100; i++ {
		p := SpawnPoint(FlyInRandom, 400, 200, rng)
		if p.X < 0 || p.X > 400 || p.Y < 0 || p.Y > 200 {
			t.Fatalf("random spawn %+v outside container", p)
		}
	}
}

func TestRenderPriorityAndPlacement(t *testing.T) {
	r, _ := newTestRenderer(t, FlyInCentre)

	e := r.Render(ItemRecord{ID: "5", Type: "A", Weight: 0.3}, 1, 4)
	if !e.IsItem() {
		t.Fatal("rendered element is not an item")
	}
	if e.Item.Priority != 3 || e.ZIndex != 3 || e.RestZ != 3 {
		t.Errorf("priority/z = %d/%d/%d, want 3", e.Item.Priority, e.ZIndex, e.RestZ)
	}
	if e.Item.ID != "5" || e.Item.Type != "A" || e.Item.Weight != 0.3 {
		t.Errorf("meta = %+v", *e.Item)
	}
	// 100x100 default block centered on the spawn point.
	if e.X != 150 || e.Y != 50 {
		t.Errorf("position = (%v, %v), want (150, 50)", e.X, e.Y)
	}
	if e.Name != "A:5" {
		t.Errorf("Name = %q, want A:5", e.Name)
	}
	if e.Text == "" || e.Markup == "" {
		t.Error("expected markup and display text")
	}
}

func TestRenderAllocatesDistinctIDs(t *testing.T) {
	r, _ := newTestRenderer(t, FlyInTop)
	a := r.Render(ItemRecord{ID: "1", Type: "A"}, 0, 2)
	b := r.Render(ItemRecord{ID: "1", Type: "A"}, 1, 2)
	if a.ID == b.ID {
		t.Errorf("IDs collide: %d", a.ID)
	}
}
