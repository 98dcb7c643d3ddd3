package knowledge

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounceInterval coalesces rapid editor write bursts into a single
// reload.
const defaultDebounceInterval = 100 * time.Millisecond

// Watcher hot-reloads the knowledge base when its override file changes.
type Watcher struct {
	base     *Base
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	running bool
	stopCh  chan struct{}
}

// NewWatcher creates a watcher for the base's override file.
// The base must have a file path; watching the embedded default is an error.
func NewWatcher(base *Base, logger *slog.Logger) (*Watcher, error) {
	if base.Path() == "" {
		return nil, fmt.Errorf("knowledge base has no file to watch")
	}
	if logger == nil {
		logger = slog.Default().With("component", "knowledge_watcher")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		base:     base,
		watcher:  fsw,
		logger:   logger,
		debounce: defaultDebounceInterval,
		stopCh:   make(chan struct{}),
	}, nil
}

// Watch blocks processing file events until the context is cancelled or
// Stop is called. Editors replace files on save, so the parent directory is
// watched and events are filtered to the target file.
func (w *Watcher) Watch(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	}()

	target := filepath.Clean(w.base.Path())
	if err := w.watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch directory: %w", err)
	}

	w.logger.Info("knowledge watcher started", "path", target)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("knowledge watcher stopped (context cancelled)")
			return nil

		case <-w.stopCh:
			w.logger.Info("knowledge watcher stopped")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			w.logger.Debug("knowledge file event", "path", event.Name, "op", event.Op.String())
			w.scheduleReload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error("knowledge watcher error", "error", err)
		}
	}
}

// scheduleReload debounces reloads across event bursts.
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		if err := w.base.Reload(); err != nil {
			w.logger.Error("knowledge reload failed", "error", err)
		}
	})
}

// Stop stops the watcher and releases the fsnotify handle.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	select {
	case <-w.stopCh:
	default:
		close(w.stopCh)
	}
	return w.watcher.Close()
}
