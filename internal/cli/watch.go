package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/phanxgames/orbit"
)

// reloadDebounce coalesces the bursts of events editors emit on save.
const reloadDebounce = 100 * time.Millisecond

// watchFixture reloads fx whenever its file changes and then calls onChange.
// It watches the parent directory so that editors replacing the file are
// seen too. The returned function stops the watcher.
func watchFixture(ctx context.Context, fx *orbit.FixtureFetcher, logger *log.Logger, onChange func()) (func() error, error) {
	path, err := filepath.Abs(fx.Path())
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch fixture: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch fixture: %w", err)
	}

	target := filepath.Base(path)
	events, errs := w.Events, w.Errors
	go func() {
		var timer *time.Timer
		var fire <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return

			case ev, ok := <-events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(reloadDebounce)
				} else {
					timer.Reset(reloadDebounce)
				}
				fire = timer.C

			case <-fire:
				fire = nil
				if err := fx.Reload(); err != nil {
					logger.Warn("fixture reload failed", "path", path, "err", err)
					continue
				}
				logger.Info("fixture reloaded", "path", path)
				onChange()

			case err, ok := <-errs:
				if !ok {
					return
				}
				logger.Warn("watch error", "err", err)
			}
		}
	}()
	return w.Close, nil
}
