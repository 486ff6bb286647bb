package orbit

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/tanema/gween/ease"
)

// State is the refresh cycle state of a Control.
type State uint8

const (
	StateIdle State = iota
	StateFetching
	StateRendering
	StateLayingOut
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	case StateRendering:
		return "rendering"
	case StateLayingOut:
		return "laying out"
	default:
		return "unknown"
	}
}

// Selection identifies the entity whose related items are shown. The zero
// value is the root view.
type Selection struct {
	Type string
	ID   string
}

// IsRoot reports whether s is the root view.
func (s Selection) IsRoot() bool {
	return s.Type == "" && s.ID == ""
}

func (s Selection) request(controlID string) FetchRequest {
	id := s.ID
	if id == "" {
		id = "0"
	}
	return FetchRequest{ControlID: controlID, SelectedType: s.Type, SelectedID: id}
}

type fetchResult struct {
	seq   uint64
	sel   Selection
	items []ItemRecord
	err   error
}

const inboxSize = 16

// Control is one radial relationship control bound to one container. All
// methods except those documented otherwise must be called from the host's
// UI goroutine.
type Control struct {
	cfg      Config
	id       string
	fetcher  Fetcher
	logger   *log.Logger
	easing   ease.TweenFunc
	duration time.Duration

	scene     *Scene
	templates *TemplateSet
	renderer  *ItemRenderer
	scheduler *Scheduler
	geometry  Geometry

	items     []ItemRecord
	selection Selection
	state     State
	err       error

	ctx      context.Context
	cancel   context.CancelFunc
	inbox    chan fetchResult
	posted   chan func()
	seq      uint64 // last issued request
	applied  uint64 // request whose response is on screen
	inflight int

	handles []CallbackHandle
}

// Option configures a Control.
type Option func(*Control)

// WithLogger sets the control's logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Control) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSize sets the initial container size.
func WithSize(w, h float64) Option {
	return func(c *Control) {
		c.scene.SetSize(w, h)
	}
}

// New creates a control. The control starts idle with no items; call Resize
// with the container size and Refresh to load the root view.
func New(cfg Config, fetcher Fetcher, opts ...Option) (*Control, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if fetcher == nil {
		return nil, ErrNilFetcher
	}
	easing, err := EasingByName(cfg.Easing)
	if err != nil {
		return nil, err
	}
	templates, err := NewTemplateSet(cfg.Templates)
	if err != nil {
		return nil, err
	}
	for typ, fn := range cfg.TemplateFuncs {
		templates.RegisterFunc(typ, fn)
	}
	if cfg.ControlID == "" {
		cfg.ControlID = uuid.NewString()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &Control{
		cfg:       cfg,
		id:        cfg.ControlID,
		fetcher:   fetcher,
		logger:    discardLogger(),
		easing:    easing,
		duration:  cfg.TransitionDuration(),
		scene:     NewScene(0, 0),
		templates: templates,
		scheduler: NewScheduler(),
		ctx:       ctx,
		cancel:    cancel,
		inbox:     make(chan fetchResult, inboxSize),
		posted:    make(chan func(), inboxSize),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.templates.SetLogger(c.logger)
	c.renderer = NewItemRenderer(c.scene, templates, cfg.FlyIn, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
	c.geometry = ComputeGeometry(c.scene.root.Width, c.scene.root.Height, cfg.Shape)
	c.bindInput()
	return c, nil
}

// ID returns the control id sent with every fetch.
func (c *Control) ID() string { return c.id }

// Config returns the configuration the control was built with.
func (c *Control) Config() Config { return c.cfg }

// Scene returns the control's scene.
func (c *Control) Scene() *Scene { return c.scene }

// Scheduler returns the control's transition scheduler.
func (c *Control) Scheduler() *Scheduler { return c.scheduler }

// Geometry returns the cached container geometry.
func (c *Control) Geometry() Geometry { return c.geometry }

// State returns the current refresh state.
func (c *Control) State() State { return c.state }

// Err returns the error of the last failed fetch, or nil once a refresh
// completes.
func (c *Control) Err() error { return c.err }

// Selection returns the selection whose items are on screen.
func (c *Control) Selection() Selection { return c.selection }

// Pending returns the number of fetches issued but not yet received.
func (c *Control) Pending() int { return c.inflight }

// Items returns the current item records in display order. The returned
// slice MUST NOT be mutated.
func (c *Control) Items() []ItemRecord { return c.items }

// Elements returns the current item elements, in the same order as Items.
// The returned slice MUST NOT be mutated.
func (c *Control) Elements() []*Element { return c.scene.root.Children() }

// InsideItem reports whether (x, y) lies on a relationship item. Hosts use it
// to decide whether to suppress their own context menu.
func (c *Control) InsideItem(x, y float64) bool {
	return c.scene.HitTest(x, y) != nil
}

// Refresh starts a refresh cycle for sel and returns immediately. The fetch
// runs on its own goroutine; its response is applied by a later Update.
// Earlier fetches still in flight are not cancelled.
func (c *Control) Refresh(sel Selection) {
	c.seq++
	seq := c.seq
	req := sel.request(c.id)
	c.state = StateFetching
	c.inflight++
	c.logger.Debug("fetch", "control", c.id, "type", req.SelectedType, "id", req.SelectedID, "seq", seq)

	go func() {
		items, err := c.fetcher.Fetch(c.ctx, req)
		select {
		case c.inbox <- fetchResult{seq: seq, sel: sel, items: items, err: err}:
		case <-c.ctx.Done():
		}
	}()
}

// RefreshSync runs a whole refresh cycle for sel on the calling goroutine and
// returns the fetch error, if any.
func (c *Control) RefreshSync(ctx context.Context, sel Selection) error {
	c.seq++
	req := sel.request(c.id)
	c.state = StateFetching
	c.inflight++
	c.logger.Debug("fetch", "control", c.id, "type", req.SelectedType, "id", req.SelectedID, "seq", c.seq)

	items, err := c.fetcher.Fetch(ctx, req)
	c.receive(fetchResult{seq: c.seq, sel: sel, items: items, err: err})
	return err
}

// Update is the per-frame hook. It applies fetch responses that arrived since
// the last frame, in arrival order, then advances transitions by dt.
func (c *Control) Update(dt time.Duration) {
drain:
	for {
		select {
		case r := <-c.inbox:
			c.receive(r)
		case fn := <-c.posted:
			fn()
		default:
			break drain
		}
	}
	c.scheduler.Update(dt)
}

// Post queues fn to run on the UI goroutine during the next Update. It is
// safe to call from any goroutine and blocks while the queue is full. After
// Close, fn is dropped.
func (c *Control) Post(fn func()) {
	select {
	case c.posted <- fn:
	case <-c.ctx.Done():
	}
}

// ProcessInput feeds one frame of pointer input to the scene.
func (c *Control) ProcessInput() {
	c.scene.ProcessInput()
}

// Resize recomputes the geometry for a w×h container and moves the existing
// elements to their new places. It never fetches or re-renders.
func (c *Control) Resize(w, h float64) {
	c.scene.SetSize(w, h)
	c.geometry = ComputeGeometry(w, h, c.cfg.Shape)
	c.layout()
}

// Close cancels outstanding fetches, stops transitions and removes the input
// handlers. The control must not be used afterwards.
func (c *Control) Close() {
	c.cancel()
	c.unbindInput()
	for _, e := range c.scene.root.Children() {
		c.scheduler.Cancel(e)
	}
}

func (c *Control) receive(r fetchResult) {
	c.inflight--
	if c.cfg.DiscardStaleResponses && r.seq < c.applied {
		c.logger.Debug("stale response dropped", "control", c.id, "seq", r.seq, "applied", c.applied, "err", r.err)
		c.settleState()
		return
	}
	if r.err != nil {
		c.err = r.err
		c.state = StateFetching
		c.logger.Error("fetch failed", "control", c.id, "type", r.sel.Type, "id", r.sel.ID, "seq", r.seq, "err", r.err)
		if c.cfg.OnRefreshError != nil {
			c.cfg.OnRefreshError(r.sel, r.err)
		}
		return
	}
	c.apply(r)
}

// apply renders the response, swaps it in as the current item set, binds
// input, and lays the new elements out.
func (c *Control) apply(r fetchResult) {
	c.state = StateRendering
	n := len(r.items)
	elems := make([]*Element, n)
	for i, rec := range r.items {
		elems[i] = c.renderer.Render(rec, i, n)
	}
	c.scene.ReplaceItems(elems)
	c.items = append([]ItemRecord(nil), r.items...)

	c.state = StateLayingOut
	c.layout()

	c.selection = r.sel
	c.applied = r.seq
	c.err = nil
	c.settleState()
	c.logger.Debug("refresh applied", "control", c.id, "type", r.sel.Type, "id", r.sel.ID, "items", n, "seq", r.seq)

	if c.cfg.OnRefreshComplete != nil {
		c.cfg.OnRefreshComplete(r.sel)
	}
}

func (c *Control) settleState() {
	if c.inflight > 0 {
		c.state = StateFetching
		return
	}
	c.state = StateIdle
}

// layout solves the radial layout for the current elements and starts a
// transition on each one toward its slot. The hovered item keeps its hover
// stacking and opacity until the pointer leaves it.
func (c *Control) layout() {
	elems := c.scene.root.Children()
	n := len(elems)
	if n == 0 {
		return
	}
	root := c.scene.root
	if c.geometry.Width != root.Width || c.geometry.Height != root.Height {
		c.geometry = ComputeGeometry(root.Width, root.Height, c.cfg.Shape)
	}

	weights := make([]float64, n)
	for i, e := range elems {
		weights[i] = e.Item.Weight
	}
	hovered := c.scene.Hovered()
	for i, p := range SolveLayout(weights) {
		e := elems[i]
		e.Target = Vec2{X: p.X, Y: p.Y}
		e.ZIndex = n - i
		e.RestZ = n - i

		pos := c.geometry.ToPixel(p.X, p.Y, e.Width, e.Height)
		alpha := TargetOpacity(e.Item.Weight, c.cfg.OpacityFallOff, c.cfg.MinimumOpacity)
		if e == hovered {
			e.ZIndex = HoverZIndex
			alpha = 1
		}
		c.scheduler.Animate(e, Target{X: pos.X, Y: pos.Y, Alpha: alpha}, c.duration, c.easing)
	}
	debugLogLayout(c.logger, elems)
}
