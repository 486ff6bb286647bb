package orbit

import "github.com/tanema/gween/ease"

// hoverEasing matches the default easing of the original hover fade.
var hoverEasing ease.TweenFunc = ease.InOutSine

// bindInput registers the control's activation and hover handlers on its
// scene. The handles are released by Close.
func (c *Control) bindInput() {
	c.handles = append(c.handles,
		c.scene.OnClick(c.activate),
		c.scene.OnPointerEnter(func(ctx PointerContext) { c.hoverEnter(ctx.Element) }),
		c.scene.OnPointerLeave(func(ctx PointerContext) { c.hoverExit(ctx.Element) }),
	)
}

func (c *Control) unbindInput() {
	for _, h := range c.handles {
		h.Remove()
	}
	c.handles = nil
}

// activate handles a click on an item. The primary button drills down into
// the item; the other buttons report to the host and do not navigate.
func (c *Control) activate(ctx ClickContext) {
	meta := ctx.Element.Item
	switch ctx.Button {
	case MouseButtonLeft:
		c.Refresh(Selection{Type: meta.Type, ID: meta.ID})
	case MouseButtonRight:
		if fn := c.cfg.OnItemRightClick; fn != nil {
			fn(meta.Type, meta.ID, ctx.LocalX, ctx.LocalY)
		}
	case MouseButtonMiddle:
		if fn := c.cfg.OnItemMiddleClick; fn != nil {
			fn(meta.Type, meta.ID, ctx.LocalX, ctx.LocalY)
		}
	}
}

func (c *Control) hoverEnter(e *Element) {
	e.ZIndex = HoverZIndex
	if c.cfg.OpacityFallOff {
		c.scheduler.FadeTo(e, 1, HoverDuration, hoverEasing)
	}
}

func (c *Control) hoverExit(e *Element) {
	e.ZIndex = e.RestZ
	if c.cfg.OpacityFallOff {
		alpha := TargetOpacity(e.Item.Weight, true, c.cfg.MinimumOpacity)
		c.scheduler.FadeTo(e, alpha, HoverDuration, hoverEasing)
	}
}
