package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phanxgames/orbit"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
)

// sourceOpts holds the flags shared by every command that builds a control.
type sourceOpts struct {
	configPath string // TOML config file
	fixture    string // YAML fixture graph
	url        string // items endpoint, overrides fetch_url
	selection  string // "Type:Id" to start from; empty is the root view
	width      int
	height     int
	seed       uint64
}

func (o *sourceOpts) addFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.configPath, "config", "c", "", "TOML config file")
	f.StringVar(&o.fixture, "fixture", "", "serve items from a YAML fixture graph")
	f.StringVar(&o.url, "url", "", "items endpoint (overrides fetch_url)")
	f.StringVarP(&o.selection, "select", "s", "", "initial selection as Type:Id")
	f.IntVar(&o.width, "width", defaultWidth, "container width in pixels")
	f.IntVar(&o.height, "height", defaultHeight, "container height in pixels")
	f.Uint64Var(&o.seed, "seed", 0, "fly-in random seed (0 keeps the config value)")
	cmd.MarkFlagsMutuallyExclusive("fixture", "url")
}

// config loads the config file, if any, and applies flag overrides.
func (o *sourceOpts) config() (orbit.Config, error) {
	cfg := orbit.DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = orbit.LoadConfig(o.configPath); err != nil {
			return orbit.Config{}, err
		}
	}
	if o.url != "" {
		cfg.FetchURL = o.url
	}
	if o.seed != 0 {
		cfg.Seed = o.seed
	}
	if o.width <= 0 || o.height <= 0 {
		return orbit.Config{}, fmt.Errorf("invalid size %dx%d", o.width, o.height)
	}
	return cfg, nil
}

// fetcher returns the fetcher the flags select. The fixture fetcher is also
// returned on its own so callers can reload it.
func (o *sourceOpts) fetcher(cfg orbit.Config) (orbit.Fetcher, *orbit.FixtureFetcher, error) {
	if o.fixture != "" {
		fx, err := orbit.NewFixtureFetcher(o.fixture)
		if err != nil {
			return nil, nil, err
		}
		return fx, fx, nil
	}
	if cfg.FetchURL == "" {
		return nil, nil, errors.New("no item source: set --fixture, --url or fetch_url")
	}
	return orbit.NewHTTPFetcher(cfg.FetchURL, nil), nil, nil
}

// parseSelection parses "Type:Id". The empty string is the root view.
func parseSelection(s string) (orbit.Selection, error) {
	if s == "" {
		return orbit.Selection{}, nil
	}
	typ, id, ok := strings.Cut(s, ":")
	if !ok || typ == "" || id == "" {
		return orbit.Selection{}, fmt.Errorf("invalid selection %q: want Type:Id", s)
	}
	return orbit.Selection{Type: typ, ID: id}, nil
}
