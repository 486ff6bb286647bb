package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/phanxgames/orbit"
)

type viewOpts struct {
	sourceOpts
	watch   bool
	showFPS bool
}

// newViewCmd creates the view command, which opens a window on the control.
// Left-clicking an item re-centers the view on it.
func newViewCmd() *cobra.Command {
	var opts viewOpts

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open an interactive relationship view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, opts)
		},
	}
	opts.addFlags(cmd)
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "reload the fixture and refresh when it changes")
	cmd.Flags().BoolVar(&opts.showFPS, "fps", false, "show an FPS counter")
	return cmd
}

func runView(cmd *cobra.Command, opts viewOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := opts.config()
	if err != nil {
		return err
	}
	sel, err := parseSelection(opts.selection)
	if err != nil {
		return err
	}
	fetcher, fixture, err := opts.fetcher(cfg)
	if err != nil {
		return err
	}
	if opts.watch && fixture == nil {
		return errors.New("--watch requires --fixture")
	}

	cfg.OnItemRightClick = func(typ, id string, x, y float64) {
		logger.Info("right click", "type", typ, "id", id, "x", x, "y", y)
	}
	cfg.OnItemMiddleClick = func(typ, id string, x, y float64) {
		logger.Info("middle click", "type", typ, "id", id, "x", x, "y", y)
	}
	cfg.OnRefreshComplete = func(sel orbit.Selection) {
		logger.Debug("selection", "type", sel.Type, "id", sel.ID)
	}

	ctrl, err := orbit.New(cfg, fetcher,
		orbit.WithLogger(logger),
		orbit.WithSize(float64(opts.width), float64(opts.height)))
	if err != nil {
		return err
	}
	defer ctrl.Close()

	if opts.watch {
		stop, err := watchFixture(ctx, fixture, logger, func() {
			ctrl.Post(func() { ctrl.Refresh(ctrl.Selection()) })
		})
		if err != nil {
			return err
		}
		defer stop()
	}

	ctrl.Refresh(sel)
	return orbit.Run(ctrl, orbit.RunConfig{
		Title:     "orbit",
		Width:     opts.width,
		Height:    opts.height,
		Resizable: true,
		ShowFPS:   opts.showFPS,
		OnFrame:   ctx.Err,
	})
}
