package watcher

import (
	"context"
	"errors"
	"io/fs"
	"iter"
	"path/filepath"
	"time"
	"unique"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/codereq/internal/core/domain"
	"go.trai.ch/codereq/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 16

// DefaultDebounceWindow is the default time window for debouncing file events.
const DefaultDebounceWindow = 100 * time.Millisecond

// Watcher watches a single request file. Editors often replace a file instead of
// writing it in place, so the parent directory is watched and other names are dropped.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	window    time.Duration
	digests   *DigestCache
	target    unique.Handle[string]
	events    chan ports.WatchEvent
	batches   chan []string
	done      chan struct{}
}

// NewWatcher creates a watcher that coalesces events within window.
func NewWatcher(logger ports.Logger, window time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	return &Watcher{
		fsWatcher: fsw,
		logger:    logger,
		window:    window,
		digests:   NewDigestCache(),
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
		batches:   make(chan []string),
		done:      make(chan struct{}),
	}, nil
}

// Start begins watching path.
func (w *Watcher) Start(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", path)
	}
	w.target = unique.Make(abs)

	if _, err := w.digests.Update(abs); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", abs)
	}
	if err := w.fsWatcher.Add(filepath.Dir(abs)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", abs)
	}

	debouncer := NewDebouncer(w.window, w.enqueue)
	go w.processEvents(ctx, debouncer)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of debounced events. It ends once the watcher stops.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) enqueue(paths []string) {
	select {
	case w.batches <- paths:
	case <-w.done:
	}
}

func (w *Watcher) processEvents(ctx context.Context, debouncer *Debouncer) {
	defer close(w.events)
	defer close(w.done)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if unique.Make(filepath.Clean(event.Name)) != w.target {
				continue
			}
			if !event.Op.Has(fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename) {
				continue
			}
			debouncer.Add(event.Name)

		case paths := <-w.batches:
			for _, path := range paths {
				event, ok := w.check(path)
				if !ok {
					continue
				}
				select {
				case w.events <- event:
				case <-ctx.Done():
					return
				}
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher: file system error: " + err.Error())
		}
	}
}

// check turns a settled path into an event, dropping writes that left the content unchanged.
func (w *Watcher) check(path string) (ports.WatchEvent, bool) {
	changed, err := w.digests.Update(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ports.WatchEvent{Path: path, Operation: ports.OpRemove}, true
	case err != nil:
		w.logger.Warn("watcher: cannot read " + path + ": " + err.Error())
		return ports.WatchEvent{}, false
	case !changed:
		return ports.WatchEvent{}, false
	default:
		return ports.WatchEvent{Path: path, Operation: ports.OpWrite}, true
	}
}
