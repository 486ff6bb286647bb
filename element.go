package orbit

// PointerContext carries pointer event data.
type PointerContext struct {
	Element *Element
	GlobalX float64
	GlobalY float64
	LocalX  float64
	LocalY  float64
	Button  MouseButton
}

// ClickContext carries click event data.
type ClickContext struct {
	Element *Element
	GlobalX float64
	GlobalY float64
	LocalX  float64
	LocalY  float64
	Button  MouseButton
}

// ItemMeta is the typed record attached to every relationship item element.
// Priority is count-index at render time.
type ItemMeta struct {
	ID       string
	Type     string
	Weight   float64
	Priority int
}

// Element is the retained visual element. A single flat struct is used for the
// container and for items; items are the elements with a non-nil Item.
type Element struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Element
	children []*Element

	// Visual properties, in pixels relative to the parent's top-left corner.
	X, Y          float64
	Width, Height float64
	Alpha         float64
	Fill          Color

	// Visibility & interaction
	Visible      bool
	Interactable bool

	// Ordering. RestZ is the stacking value restored after a hover.
	ZIndex int
	RestZ  int

	// Content
	Markup string
	Text   string

	// Item is nil for containers.
	Item *ItemMeta

	// Target is the normalized layout point assigned by the last layout pass.
	Target Vec2

	disposed bool
}

func elementDefaults(e *Element) {
	e.Alpha = 1
	e.Fill = Color{1, 1, 1, 1}
	e.Visible = true
}

// NewContainer creates a container element with the given size.
func NewContainer(name string, width, height float64) *Element {
	e := &Element{Name: name, Width: width, Height: height}
	elementDefaults(e)
	return e
}

// newItemElement creates an interactable element tagged as a relationship item.
func newItemElement(id uint32, name string, meta ItemMeta) *Element {
	e := &Element{ID: id, Name: name, Interactable: true, Item: &meta}
	elementDefaults(e)
	return e
}

// IsItem reports whether the element is a relationship item.
func (e *Element) IsItem() bool {
	return e.Item != nil
}

// --- Tree manipulation ---

// AddChild appends child to this element's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this element.
func (e *Element) AddChild(child *Element) {
	if child == nil {
		panic("orbit: cannot add nil child")
	}
	if isAncestor(child, e) {
		panic("orbit: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = e
	e.children = append(e.children, child)
}

// RemoveChild detaches child from this element.
// Panics if child.Parent != e.
func (e *Element) RemoveChild(child *Element) {
	if child.Parent != e {
		panic("orbit: child's parent is not this element")
	}
	e.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this element from its parent.
// No-op if this element has no parent.
func (e *Element) RemoveFromParent() {
	if e.Parent == nil {
		return
	}
	e.Parent.RemoveChild(e)
}

// DisposeChildren disposes every child and empties the child list.
func (e *Element) DisposeChildren() {
	for _, child := range e.children {
		child.Parent = nil
		child.dispose()
	}
	clear(e.children)
	e.children = e.children[:0]
}

// Children returns the child list in insertion order. The returned slice MUST
// NOT be mutated by the caller.
func (e *Element) Children() []*Element {
	return e.children
}

// NumChildren returns the number of children.
func (e *Element) NumChildren() int {
	return len(e.children)
}

// ChildAt returns the child at the given index.
func (e *Element) ChildAt(index int) *Element {
	return e.children[index]
}

// --- Disposal ---

// Dispose removes this element from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (e *Element) Dispose() {
	if e.disposed {
		return
	}
	e.RemoveFromParent()
	e.dispose()
}

func (e *Element) dispose() {
	e.disposed = true
	for _, child := range e.children {
		child.Parent = nil
		child.dispose()
	}
	e.children = nil
	e.Parent = nil
}

// IsDisposed returns true if this element has been disposed.
func (e *Element) IsDisposed() bool {
	return e.disposed
}

// --- Coordinates ---

// Origin returns the element's top-left corner in world coordinates.
func (e *Element) Origin() Vec2 {
	var o Vec2
	for p := e; p != nil; p = p.Parent {
		o.X += p.X
		o.Y += p.Y
	}
	return o
}

// Bounds returns the element's rectangle in world coordinates.
func (e *Element) Bounds() Rect {
	o := e.Origin()
	return Rect{X: o.X, Y: o.Y, Width: e.Width, Height: e.Height}
}

// WorldToLocal converts a world-space point to this element's local space.
func (e *Element) WorldToLocal(wx, wy float64) (lx, ly float64) {
	o := e.Origin()
	return wx - o.X, wy - o.Y
}

// --- Helpers ---

func isAncestor(candidate, e *Element) bool {
	for p := e; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from e.children without clearing child.Parent.
func (e *Element) removeChildByPtr(child *Element) {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			return
		}
	}
}
