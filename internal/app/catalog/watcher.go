package catalog

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"materi/internal/app/bus"
	"materi/internal/config"
	"materi/internal/config/logger"
)

// Watcher reloads the catalog when week files change on disk
type Watcher interface {
	Start(ctx context.Context) error
	Close()
}

type watcher struct {
	provider  Provider
	bus       bus.Bus
	delay     time.Duration
	fsWatcher *fsnotify.Watcher
	batch     *fileBatch
	log       logger.Logger
	mu        sync.Mutex
	started   bool
	closed    bool
}

// NewWatcher creates a Watcher for the provider's directory
func NewWatcher(cfg *config.Config, provider Provider, b bus.Bus, log logger.Logger) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &watcher{
		provider:  provider,
		bus:       b,
		delay:     cfg.Catalog.Debounce,
		fsWatcher: fsw,
		log:       log,
	}, nil
}

// Start begins watching and blocks until ctx is done or the watcher is closed
func (w *watcher) Start(ctx context.Context) error {
	w.mu.Lock()

	if w.closed || w.started {
		w.mu.Unlock()
		return nil
	}

	dir, err := filepath.Abs(w.provider.Dir())
	if err != nil {
		w.mu.Unlock()
		return err
	}

	if err := w.fsWatcher.Add(dir); err != nil {
		w.mu.Unlock()
		return err
	}

	w.started = true
	w.batch = newFileBatch(w.delay, w.reload)
	w.mu.Unlock()

	w.log.Info().Msgf("Watching catalog in %s", dir)

	defer w.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}

			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}

			w.log.Error().Err(err).Msg("Watcher error")
		}
	}
}

// Close stops watching and drops pending reloads
func (w *watcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	w.closed = true

	if w.batch != nil {
		w.batch.Stop()
	}

	w.fsWatcher.Close()
}

func (w *watcher) handleEvent(event fsnotify.Event) {
	if !isRelevantEvent(event) {
		return
	}

	name := filepath.Base(event.Name)
	if !w.provider.Matcher().Match(name) {
		return
	}

	w.log.Debug().Msgf("Catalog file changed: %s (%s)", name, event.Op)

	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		w.batch.Remove(name)
		return
	}

	w.batch.Write(name)
}

// reload runs once per burst of changes
func (w *watcher) reload(changes Changes) {
	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()

	if closed {
		return
	}

	c, err := w.provider.Reload()
	if err != nil {
		w.log.Debug().Err(err).Msgf("Keeping previous catalog after changes to %s", strings.Join(changes.Files(), ", "))
		return
	}

	w.log.Debug().Msgf("Catalog reloaded with %d week(s), %d file(s) written, %d removed", len(c), len(changes.Written), len(changes.Removed))

	w.bus.Publish(bus.Message{
		Type:     bus.EventCatalogReloaded,
		Data:     bus.CatalogReloaded{Weeks: len(c), ChangedFiles: changes.Written, RemovedFiles: changes.Removed},
		Critical: true,
	})
}

func isRelevantEvent(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) ||
		event.Has(fsnotify.Rename)
}
