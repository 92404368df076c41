package commands

import (
	"log/slog"
	"time"

	"github.com/radovskyb/watcher"
)

// WatchCmd builds once, then keeps rebuilding while files in the
// repository change.
type WatchCmd struct {
	Output string `short:"o" help:"Override the configured output directory."`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	if w.Output != "" {
		cfg.Output = w.Output
	}
	if err := runBuild(cfg); err != nil {
		return err
	}

	wt := watcher.New()
	// One rebuild per change burst.
	wt.SetMaxEvents(1)

	go func() {
		for {
			select {
			case <-wt.Event:
				if err := runBuild(cfg); err != nil {
					slog.Error("rebuild failed", "error", err)
				}
			case err := <-wt.Error:
				slog.Error("watcher", "error", err)
			case <-wt.Closed:
				return
			}
		}
	}()

	// The site lands inside the repository; watching it too would
	// rebuild forever.
	if err := wt.Ignore(cfg.Output); err != nil {
		return err
	}
	if err := wt.AddRecursive(root.Repo); err != nil {
		return err
	}

	slog.Info("watching for changes", "repo", root.Repo)
	return wt.Start(200 * time.Millisecond)
}
