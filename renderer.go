package orbit

import (
	"math/rand/v2"
)

// ItemRenderer turns records into item elements placed at their fly-in spawn
// point. It does not lay elements out.
type ItemRenderer struct {
	templates *TemplateSet
	flyIn     FlyIn
	rng       *rand.Rand
	scene     *Scene
}

// NewItemRenderer creates a renderer that allocates element IDs from scene.
func NewItemRenderer(scene *Scene, templates *TemplateSet, flyIn FlyIn, rng *rand.Rand) *ItemRenderer {
	return &ItemRenderer{templates: templates, flyIn: flyIn, rng: rng, scene: scene}
}

// Render builds the element for the record at index in a set of count items.
// The element's Priority is count-index, so earlier items stack higher.
func (r *ItemRenderer) Render(rec ItemRecord, index, count int) *Element {
	out := r.templates.Render(rec)
	e := newItemElement(r.scene.nextID(), rec.Type+":"+rec.ID, ItemMeta{
		ID:       rec.ID,
		Type:     rec.Type,
		Weight:   rec.Weight,
		Priority: count - index,
	})
	e.Markup = out.Markup
	e.Text = DisplayText(out.Markup)
	e.Width = out.Width
	e.Height = out.Height
	e.Fill = out.Fill
	e.ZIndex = e.Item.Priority
	e.RestZ = e.Item.Priority

	root := r.scene.Root()
	spawn := SpawnPoint(r.flyIn, root.Width, root.Height, r.rng)
	e.X = spawn.X - e.Width/2
	e.Y = spawn.Y - e.Height/2
	return e
}

// SpawnPoint returns the point, in container pixels, that new items start
// from: the center, the midpoint of one edge, or a uniformly random point.
// Unknown policies behave like FlyInRandom.
func SpawnPoint(flyIn FlyIn, w, h float64, rng *rand.Rand) Vec2 {
	switch flyIn {
	case FlyInCentre:
		return Vec2{X: w / 2, Y: h / 2}
	case FlyInTop:
		return Vec2{X: w / 2, Y: 0}
	case FlyInLeft:
		return Vec2{X: 0, Y: h / 2}
	case FlyInBottom:
		return Vec2{X: w / 2, Y: h}
	case FlyInRight:
		return Vec2{X: w, Y: h / 2}
	default:
		return Vec2{X: rng.Float64() * w, Y: rng.Float64() * h}
	}
}
