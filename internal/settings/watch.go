package settings

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch observes <switchboard_home>/config.toml and logs a warning whenever
// the file is written or created. It does not re-read the file or compare it
// with the settings the process booted with, and it never reloads or
// mutates the live Settings or registry; the process must
// be restarted to pick up config changes; the live registry is immutable
// for the life of the process.
func Watch(ctx context.Context, s Settings) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Debug("settings: could not start config watcher", "err", err)
		return
	}

	path := filepath.Join(s.SwitchboardHome, "config.toml")
	if err := watcher.Add(s.SwitchboardHome); err != nil {
		slog.Debug("settings: could not watch switchboard home", "dir", s.SwitchboardHome, "err", err)
		watcher.Close()
		return
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name == path && (event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
					slog.Warn("settings: config.toml changed on disk; restart to apply", "path", path)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Debug("settings: config watcher error", "err", err)
			}
		}
	}()
}
