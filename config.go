package orbit

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Defaults for a new control.
const (
	DefaultFetchURL       = "/Home/GetItems"
	DefaultMinimumOpacity = 0.1
	DefaultDurationMillis = 2000
	DefaultEasing         = "linear"
)

// Hover emphasis constants.
const (
	HoverZIndex   = 10000
	HoverDuration = 250 * time.Millisecond
)

// ItemClickFunc receives the item type and id and the pointer position
// relative to the item's top-left corner.
type ItemClickFunc func(itemType, id string, x, y float64)

// Config is the construction-time configuration of a Control. It is read
// once by New; changing it afterwards has no effect.
type Config struct {
	// ControlID identifies the control in fetch requests. New fills in a
	// random UUID when empty.
	ControlID string `toml:"control_id"`
	FetchURL  string `toml:"fetch_url"`

	Shape          Shape          `toml:"shape"`
	OpacityFallOff bool           `toml:"opacity_fall_off"`
	MinimumOpacity float64        `toml:"minimum_opacity"`
	Templates      []TemplateSpec `toml:"templates"`
	FlyIn          FlyIn          `toml:"fly_in"`
	Duration       int            `toml:"duration"` // milliseconds
	Easing         string         `toml:"easing"`

	// Seed drives the random fly-in. Zero picks a random seed.
	Seed uint64 `toml:"seed"`

	// DiscardStaleResponses drops a fetch response when a newer request's
	// response has already been applied. Off by default: responses are
	// applied in arrival order and the last to arrive wins.
	DiscardStaleResponses bool `toml:"discard_stale_responses"`

	// TemplateFuncs renders types in code, overriding Templates patterns.
	TemplateFuncs map[string]TemplateFunc `toml:"-"`

	OnItemRightClick  ItemClickFunc          `toml:"-"`
	OnItemMiddleClick ItemClickFunc          `toml:"-"`
	OnRefreshComplete func(Selection)        `toml:"-"`
	OnRefreshError    func(Selection, error) `toml:"-"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		FetchURL:       DefaultFetchURL,
		Shape:          ShapeAuto,
		OpacityFallOff: true,
		MinimumOpacity: DefaultMinimumOpacity,
		FlyIn:          FlyInRandom,
		Duration:       DefaultDurationMillis,
		Easing:         DefaultEasing,
	}
}

// LoadConfig reads a TOML file over DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid option.
func (c Config) Validate() error {
	switch c.Shape {
	case ShapeAuto, ShapeSquare:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownShape, c.Shape)
	}
	switch c.FlyIn {
	case FlyInCentre, FlyInTop, FlyInLeft, FlyInBottom, FlyInRight, FlyInRandom:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFlyIn, c.FlyIn)
	}
	if _, err := EasingByName(c.Easing); err != nil {
		return err
	}
	if c.Duration < 0 {
		return fmt.Errorf("orbit: negative duration %d", c.Duration)
	}
	if c.MinimumOpacity < 0 || c.MinimumOpacity > 1 {
		return fmt.Errorf("orbit: minimum opacity %v outside [0, 1]", c.MinimumOpacity)
	}
	return nil
}

// TransitionDuration returns Duration as a time.Duration.
func (c Config) TransitionDuration() time.Duration {
	return time.Duration(c.Duration) * time.Millisecond
}
