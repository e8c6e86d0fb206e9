package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the config at path whenever it changes on disk and sends
// each valid result on the returned channel. Invalid edits are logged and
// skipped. The channel is closed once ctx is done.
//
// The parent directory is watched rather than the file, so editors that
// save by rename are still seen.
func Watch(ctx context.Context, path string) (<-chan *Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	out := make(chan *Config, 1)
	go func() {
		defer close(out)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				cfg, err := reload(abs)
				if err != nil {
					slog.Warn("Ignoring invalid configuration change", "path", abs, "error", err)
					continue
				}
				// keep only the newest config if the reader is behind
				select {
				case <-out:
				default:
				}
				out <- cfg
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Warn("Configuration watcher error", "error", err)
			}
		}
	}()
	return out, nil
}

func reload(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		// truncated mid-save; the follow-up write carries the content
		return nil, fmt.Errorf("empty file")
	}
	cfg := Default()
	if err := Parse(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
