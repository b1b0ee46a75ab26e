// Package watch re-runs the validation pass whenever either catalog root
// changes on disk. It exists for local authoring loops; CI keeps using the
// single-shot validate command.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/obslab/pipecheck/config"
	"github.com/obslab/pipecheck/errors"
	"github.com/obslab/pipecheck/logger"
	"github.com/obslab/pipecheck/reconcile"
)

// PassFunc is called after every validation pass with the pass result, or
// with a non-nil error when the pass failed (e.g. a manifest went malformed
// mid-edit). Watching continues either way.
type PassFunc func(result *reconcile.Result, err error)

// Watcher triggers revalidation on filesystem changes under both roots.
type Watcher struct {
	cfg     *config.Config
	watcher *fsnotify.Watcher
	onPass  PassFunc

	mu             sync.Mutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration

	// limiter caps full revalidations during filesystem event storms
	// (e.g. a git checkout touching hundreds of files).
	limiter *rate.Limiter

	done chan struct{}
}

// New creates a watcher over the configured roots. The integrations root is
// one level deep, so its immediate subdirectories are watched as well
// (fsnotify is not recursive).
func New(cfg *config.Config, onPass PassFunc) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create fsnotify watcher")
	}

	w := &Watcher{
		cfg:            cfg,
		watcher:        fsw,
		onPass:         onPass,
		debouncePeriod: 500 * time.Millisecond,
		limiter:        rate.NewLimiter(rate.Every(time.Second), 1),
		done:           make(chan struct{}),
	}

	for _, root := range []string{cfg.PipelinesRoot, cfg.IntegrationsRoot} {
		if err := fsw.Add(root); err != nil {
			fsw.Close()
			return nil, errors.Wrapf(err, "watch %s", root)
		}
	}
	if err := w.addIntegrationDirs(); err != nil {
		fsw.Close()
		return nil, err
	}

	return w, nil
}

// addIntegrationDirs registers every current integration subdirectory.
func (w *Watcher) addIntegrationDirs() error {
	entries, err := os.ReadDir(w.cfg.IntegrationsRoot)
	if err != nil {
		return errors.Wrapf(err, "read integrations root %s", w.cfg.IntegrationsRoot)
	}
	for _, entry := range entries {
		if !entry.IsDir() || isReservedDir(entry.Name()) {
			continue
		}
		path := filepath.Join(w.cfg.IntegrationsRoot, entry.Name())
		if err := w.watcher.Add(path); err != nil {
			return errors.Wrapf(err, "watch %s", path)
		}
	}
	return nil
}

// Start begins watching for catalog changes.
func (w *Watcher) Start() {
	go w.watchLoop()
}

// Close stops the watcher and releases its filesystem handles.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

// watchLoop monitors file system events.
func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if isScratchFile(event.Name) {
				continue
			}

			// A new integration directory must itself be watched
			// before edits inside it are visible.
			if event.Op&fsnotify.Create != 0 && !isReservedDir(filepath.Base(event.Name)) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.watcher.Add(event.Name)
				}
			}

			logger.Debugw("catalog change detected",
				logger.FieldFile, event.Name,
				"op", event.Op.String())
			w.scheduleRevalidate()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnw("watcher error", logger.FieldError, err)

		case <-w.done:
			return
		}
	}
}

// scheduleRevalidate debounces rapid file changes before triggering a pass.
func (w *Watcher) scheduleRevalidate() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debouncePeriod, w.revalidate)
}

// Revalidate runs one pass immediately (used for the initial pass before any
// event arrives).
func (w *Watcher) Revalidate() {
	w.revalidate()
}

func (w *Watcher) revalidate() {
	// The debounce timer absorbs bursts; the limiter bounds sustained
	// event storms.
	if err := w.limiter.Wait(context.Background()); err != nil {
		return
	}

	runID := uuid.New().String()
	logger.Infow("revalidating",
		logger.FieldRunID, runID,
		logger.FieldComponent, "watch")

	result, err := reconcile.Run(w.cfg)
	if err != nil {
		logger.Errorw("validation pass failed",
			logger.FieldRunID, runID,
			logger.FieldError, err)
	}
	w.onPass(result, err)
}

// isReservedDir reports whether a directory name uses a reserved prefix.
// The set matches the catalog loader: reserved directories never hold
// integrations, so changes inside them never affect a pass.
func isReservedDir(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

// isScratchFile filters editor backup and swap artifacts.
func isScratchFile(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".") ||
		strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".tmp")
}
