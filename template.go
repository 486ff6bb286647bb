package orbit

import (
	"fmt"
	"html"
	"strings"

	"github.com/aymerick/raymond"
	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/microcosm-cc/bluemonday"
)

// DefaultTemplatePattern renders Id, Type and Weight in a fixed-size block.
// It is used for every item whose type has no registered template.
const DefaultTemplatePattern = "<div style='background-color: lightblue; width: 100px; height: 100px; text-align: center;'><br />{{Id}}<br />{{Type}}<br />{{Weight}}</div>"

const (
	defaultItemWidth  = 100
	defaultItemHeight = 100
)

// TemplateSpec registers a Handlebars pattern for one item type.
type TemplateSpec struct {
	Type    string  `toml:"type"`
	Pattern string  `toml:"pattern"`
	Width   float64 `toml:"width"`
	Height  float64 `toml:"height"`
	Color   string  `toml:"color"` // hex fill, e.g. "#add8e6"
}

// TemplateFunc renders an item's markup in code. A func registered for a type
// takes precedence over a pattern for the same type; the pattern's size and
// color still apply.
type TemplateFunc func(ItemRecord) string

// Rendered is the output of a template for one item.
type Rendered struct {
	Markup        string
	Width, Height float64
	Fill          Color
}

type compiledTemplate struct {
	tpl           *raymond.Template
	width, height float64
	fill          Color
}

// TemplateSet resolves the template for an item by its type.
type TemplateSet struct {
	byType   map[string]*compiledTemplate
	funcs    map[string]TemplateFunc
	fallback *compiledTemplate
	logger   *log.Logger
}

// NewTemplateSet compiles the given specs. A later spec for the same type
// replaces an earlier one.
func NewTemplateSet(specs []TemplateSpec) (*TemplateSet, error) {
	s := &TemplateSet{
		byType: make(map[string]*compiledTemplate, len(specs)),
		funcs:  make(map[string]TemplateFunc),
		fallback: &compiledTemplate{
			tpl:    raymond.MustParse(DefaultTemplatePattern),
			width:  defaultItemWidth,
			height: defaultItemHeight,
			fill:   ColorLightBlue,
		},
		logger: discardLogger(),
	}
	for _, spec := range specs {
		ct, err := compileSpec(spec)
		if err != nil {
			return nil, err
		}
		s.byType[spec.Type] = ct
	}
	return s, nil
}

func compileSpec(spec TemplateSpec) (*compiledTemplate, error) {
	tpl, err := raymond.Parse(strings.TrimSpace(spec.Pattern))
	if err != nil {
		return nil, fmt.Errorf("compile template %q: %w", spec.Type, err)
	}
	ct := &compiledTemplate{
		tpl:    tpl,
		width:  spec.Width,
		height: spec.Height,
		fill:   ColorLightBlue,
	}
	if ct.width <= 0 {
		ct.width = defaultItemWidth
	}
	if ct.height <= 0 {
		ct.height = defaultItemHeight
	}
	if spec.Color != "" {
		c, err := colorful.Hex(spec.Color)
		if err != nil {
			return nil, fmt.Errorf("template %q color: %w", spec.Type, err)
		}
		ct.fill = Color{R: c.R, G: c.G, B: c.B, A: 1}
	}
	return ct, nil
}

// SetLogger sets the logger used to report template fallbacks.
func (s *TemplateSet) SetLogger(l *log.Logger) {
	if l != nil {
		s.logger = l
	}
}

// RegisterFunc sets the render func for typ. A nil fn removes it.
func (s *TemplateSet) RegisterFunc(typ string, fn TemplateFunc) {
	if fn == nil {
		delete(s.funcs, typ)
		return
	}
	s.funcs[typ] = fn
}

// Has reports whether a template is registered for typ.
func (s *TemplateSet) Has(typ string) bool {
	if _, ok := s.funcs[typ]; ok {
		return true
	}
	_, ok := s.byType[typ]
	return ok
}

// Render produces the markup for rec. Types without a template, and
// templates that fail to execute, use the default template.
func (s *TemplateSet) Render(rec ItemRecord) Rendered {
	ct, ok := s.byType[rec.Type]
	if fn, found := s.funcs[rec.Type]; found {
		size := s.fallback
		if ok {
			size = ct
		}
		return Rendered{Markup: fn(rec), Width: size.width, Height: size.height, Fill: size.fill}
	}
	data := rec.templateData()
	if ok {
		markup, err := ct.tpl.Exec(data)
		if err == nil {
			return Rendered{Markup: markup, Width: ct.width, Height: ct.height, Fill: ct.fill}
		}
		s.logger.Warn("template failed, using default", "type", rec.Type, "id", rec.ID, "err", err)
	}
	fb := s.fallback
	markup, err := fb.tpl.Exec(data)
	if err != nil {
		// The default pattern only references Id, Type and Weight, which are always present.
		markup = fmt.Sprintf("%s %s %v", rec.ID, rec.Type, rec.Weight)
	}
	return Rendered{Markup: markup, Width: fb.width, Height: fb.height, Fill: fb.fill}
}

var (
	textPolicy   = bluemonday.StrictPolicy()
	lineBreakTag = strings.NewReplacer("<br />", "\n", "<br/>", "\n", "<br>", "\n")
)

// DisplayText strips markup to the plain lines a text-only host can draw.
func DisplayText(markup string) string {
	plain := html.UnescapeString(textPolicy.Sanitize(lineBreakTag.Replace(markup)))
	lines := strings.Split(plain, "\n")
	out := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
