package source

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Event reports a change to an authored hints document.
type Event struct {
	// Model is the model name derived from the file name.
	Model string
	// Path is the full path of the changed file.
	Path string
}

// Watch observes a hints directory and emits an Event whenever a document is
// written, created, renamed, or removed. The channel closes when the context
// is cancelled. Watching only serves development-time reloads of call-scope
// caches; the shared cache tier is never touched by watch events.
func Watch(ctx context.Context, dir string) (<-chan Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("source: watch: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("source: watch %s: %w", dir, err)
	}

	events := make(chan Event)
	go func() {
		defer close(events)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				name, ok := modelFromPath(ev.Name)
				if !ok {
					continue
				}
				select {
				case events <- Event{Model: name, Path: ev.Name}:
				case <-ctx.Done():
					return
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Watch errors are not actionable for the consumer; the
				// next lookup re-reads from disk regardless.
			}
		}
	}()

	return events, nil
}

func modelFromPath(name string) (string, bool) {
	base := filepath.Base(name)
	ext := strings.ToLower(filepath.Ext(base))
	for _, known := range Extensions {
		if ext == known {
			return strings.TrimSuffix(base, filepath.Ext(base)), true
		}
	}
	return "", false
}
