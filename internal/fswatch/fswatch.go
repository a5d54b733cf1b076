// Package fswatch turns filesystem notifications into a channel suitable as
// the upstream of a debouncer.
package fswatch

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watch watches paths and returns their events. The channel is closed when ctx
// ends or the watcher shuts down. Watcher errors are logged and skipped.
func Watch(ctx context.Context, paths ...string) (<-chan fsnotify.Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	for _, path := range paths {
		if err := watcher.Add(path); err != nil {
			_ = watcher.Close()
			return nil, fmt.Errorf("watch %s: %w", path, err)
		}
	}

	out := make(chan fsnotify.Event)
	log := zerolog.Ctx(ctx)

	go func() {
		defer close(out)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				select {
				case out <- event:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Err(err).Msg("watcher error")
			}
		}
	}()

	return out, nil
}
