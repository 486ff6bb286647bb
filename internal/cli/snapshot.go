package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/orbit"
)

type snapshotOpts struct {
	sourceOpts
	output string
}

// newSnapshotCmd creates the snapshot command. It runs one refresh without a
// window, jumps every transition to its end and writes the result as SVG.
func newSnapshotCmd() *cobra.Command {
	var opts snapshotOpts

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Write the settled layout of a selection as SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(cmd, opts)
		},
	}
	opts.addFlags(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func runSnapshot(cmd *cobra.Command, opts snapshotOpts) error {
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
	fetcher, _, err := opts.fetcher(cfg)
	if err != nil {
		return err
	}

	ctrl, err := orbit.New(cfg, fetcher,
		orbit.WithLogger(logger),
		orbit.WithSize(float64(opts.width), float64(opts.height)))
	if err != nil {
		return err
	}
	defer ctrl.Close()

	if err := ctrl.RefreshSync(ctx, sel); err != nil {
		return err
	}
	ctrl.Scheduler().Settle()

	var w io.Writer = cmd.OutOrStdout()
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := ctrl.WriteSVG(w); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	if opts.output != "" {
		logger.Info("snapshot written", "path", opts.output, "items", len(ctrl.Items()))
	}
	return nil
}
