package config

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/lixenwraith/snake/core"
)

// Watch reloads path whenever it changes and streams the result.
// The parent directory is watched so editors that replace the file are seen.
// Invalid reloads are sent on the error channel; the caller keeps its previous config.
// Both channels close when ctx is done.
func Watch(ctx context.Context, path string) (<-chan *Config, <-chan error, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, nil, fmt.Errorf("config watch: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("config watch: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, nil, fmt.Errorf("config watch %s: %w", filepath.Dir(abs), err)
	}

	configs := make(chan *Config, 1)
	errs := make(chan error, 1)

	core.Go(func() {
		defer close(errs)
		defer close(configs)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}

				cfg, err := Load(abs)
				if err != nil {
					send(ctx, errs, err)
					continue
				}
				log.Printf("config: reloaded %s", abs)
				send(ctx, configs, cfg)

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				send(ctx, errs, fmt.Errorf("config watch: %w", err))
			}
		}
	})

	return configs, errs, nil
}

// send delivers v unless ctx ends first
func send[T any](ctx context.Context, ch chan<- T, v T) {
	select {
	case ch <- v:
	case <-ctx.Done():
	}
}
