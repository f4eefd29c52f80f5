// Package watcher implements configuration file watching so stale tenant
// sessions can be rebuilt on change.
package watcher

import (
	"context"
	"fmt"
	"iter"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/idgov/internal/core/ports"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 16

// Watcher implements single-file watching using fsnotify. The parent
// directory is watched so editor save strategies (write-rename, remove and
// recreate) are still observed.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	target    string
	events    chan ports.WatchEvent
}

// NewWatcher creates a new configuration file watcher.
func NewWatcher() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsWatcher: fsWatcher,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
	}, nil
}

// Start begins watching the given file.
func (w *Watcher) Start(ctx context.Context, path string) error {
	w.target = filepath.Clean(path)

	if err := w.fsWatcher.Add(filepath.Dir(w.target)); err != nil {
		return err
	}

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of debounced events for the watched file.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// processEvents filters raw fsnotify events down to the watched file and
// coalesces rapid successions through the debouncer.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	var latest ports.WatchEvent
	w.debouncer = NewDebouncer(DefaultDebounceWindow, func() {
		select {
		case w.events <- latest:
		case <-ctx.Done():
		}
	})

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != w.target {
				continue
			}

			watchEvent := w.convertEvent(event)
			if watchEvent == nil {
				continue
			}

			latest = *watchEvent
			w.debouncer.Add()

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "watcher: file system error: %v\n", err)
		}
	}
}

// convertEvent converts an fsnotify event to a ports.WatchEvent.
func (w *Watcher) convertEvent(event fsnotify.Event) *ports.WatchEvent {
	path := event.Name

	switch {
	case event.Op.Has(fsnotify.Write):
		return &ports.WatchEvent{Path: path, Operation: ports.OpWrite}
	case event.Op.Has(fsnotify.Create):
		return &ports.WatchEvent{Path: path, Operation: ports.OpCreate}
	case event.Op.Has(fsnotify.Remove):
		return &ports.WatchEvent{Path: path, Operation: ports.OpRemove}
	case event.Op.Has(fsnotify.Rename):
		return &ports.WatchEvent{Path: path, Operation: ports.OpRename}
	default:
		return nil
	}
}
