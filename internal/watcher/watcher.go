// Package watcher reloads a document file whenever it changes on disk.
package watcher

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"abstracta/internal/model"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long writes must settle before a reload
const DefaultDebounce = 500 * time.Millisecond

// Loader builds a model from the document at path
type Loader func(path string) (*model.Model, error)

// ReloadFunc receives the rebuilt model, or the error that prevented it
type ReloadFunc func(m *model.Model, err error)

// Watcher watches a document file and reloads it on change
type Watcher struct {
	path     string
	load     Loader
	onReload ReloadFunc
	debounce time.Duration
	ready    chan struct{}
}

// New creates a new file watcher
func New(path string, load Loader, onReload ReloadFunc) *Watcher {
	return &Watcher{
		path:     path,
		load:     load,
		onReload: onReload,
		debounce: DefaultDebounce,
		ready:    make(chan struct{}),
	}
}

// WithDebounce sets the debounce duration
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d
	return w
}

// Ready is closed once the watch is established
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Watch starts watching the file for changes
// It blocks until the context is cancelled or an error occurs. Reloads run
// on the calling goroutine.
func (w *Watcher) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory containing the file
	// This handles cases where the file is replaced (e.g., by editors)
	dir := filepath.Dir(w.path)
	filename := filepath.Base(w.path)

	if err := watcher.Add(dir); err != nil {
		return err
	}

	log.Printf("Watching %s for changes", w.path)
	close(w.ready)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Base(event.Name) != filename {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			// Debounce rapid changes
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.reload()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *Watcher) reload() {
	log.Printf("File changed: %s", w.path)
	m, err := w.load(w.path)
	if err != nil {
		log.Printf("Failed to reload %s: %v", w.path, err)
	}
	w.onReload(m, err)
}
