package workflows

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultWatchDebounce coalesces the burst of events an editor produces on save.
const DefaultWatchDebounce = 200 * time.Millisecond

// WatchOptions configures the watch workflow.
type WatchOptions struct {
	// Run configures each materialization.
	Run RunOptions

	// Debounce is the quiet period after the last change before re-running.
	// Zero means DefaultWatchDebounce.
	Debounce time.Duration

	// OnRun is called after every run, including the initial one.
	OnRun func(*RunResult, error)

	// OnError is called for watcher errors that do not stop the loop.
	OnError func(error)
}

// Watch runs once and then again after every change to the shared
// configuration file, until ctx is cancelled.
//
// The parent directory is watched rather than the file itself so that editors
// that save by renaming a temporary file over the original keep triggering
// runs. A failed run does not stop the loop; the next change is retried.
func Watch(ctx context.Context, opts WatchOptions) error {
	located, err := Locate(ctx, LocateOptions{OutDir: opts.Run.Env.OutDir, Settings: opts.Run.Settings})
	if err != nil {
		return err
	}
	configPath := filepath.Clean(located.ConfigPath)

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(located.ProjectRoot); err != nil {
		return fmt.Errorf("watch %s: %w", located.ProjectRoot, err)
	}

	runOnce := func() {
		result, err := Run(ctx, opts.Run)
		if opts.OnRun != nil {
			opts.OnRun(result, err)
		}
	}

	runOnce()

	var debounceTimer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != configPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}

			// Debounce: reset timer on each event
			if debounceTimer == nil {
				debounceTimer = time.NewTimer(debounce)
			} else {
				debounceTimer.Reset(debounce)
			}
			fire = debounceTimer.C

		case <-fire:
			fire = nil
			runOnce()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if opts.OnError != nil {
				opts.OnError(err)
			}
		}
	}
}
