// Package dirwatcher re-runs a normalization whenever the input tree changes.
// It watches the input root and every subdirectory with fsnotify, debounces
// bursts of file events, and invokes the supplied run function. Each run is a
// full batch: discovery and the global maximum start from scratch.
package dirwatcher

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/seiskit/sgynorm/internal/domain"
	"github.com/seiskit/sgynorm/pkg/log"
)

// RunFunc executes one normalization run over the watched tree.
type RunFunc func(ctx context.Context) error

// Config holds configuration options for the watcher.
type Config struct {
	// DebounceDelay is the quiet period after a file event before re-running.
	// Default: 500 milliseconds.
	DebounceDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DebounceDelay: 500 * time.Millisecond,
	}
}

// Watcher monitors an input tree and triggers re-runs.
type Watcher struct {
	dir           string
	ext           string
	debounceDelay time.Duration
	run           RunFunc
	logger        log.Logger

	mu       sync.Mutex
	started  bool
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	debounce *time.Timer
}

// New creates a watcher over dir that invokes run when files matching ext
// (case-insensitive) are created, written, renamed, or removed.
func New(dir, ext string, run RunFunc, logger log.Logger, cfg Config) *Watcher {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = 500 * time.Millisecond
	}
	return &Watcher{
		dir:           dir,
		ext:           ext,
		debounceDelay: cfg.DebounceDelay,
		run:           run,
		logger:        logger,
	}
}

// Start begins watching in the background. Returns ErrAlreadyRunning if the
// watcher is already started.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return domain.ErrAlreadyRunning
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.addTree(watcher); err != nil {
		watcher.Close()
		return err
	}

	watchCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.started = true

	w.logger.Info("watching input tree", log.String("dir", w.dir))

	w.wg.Add(1)
	go w.watchLoop(watchCtx, watcher)
	return nil
}

// Stop stops the watcher and waits for the loop to exit.
// Returns ErrNotRunning if the watcher is not started.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.started {
		w.mu.Unlock()
		return domain.ErrNotRunning
	}
	w.started = false
	w.cancel()
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.mu.Unlock()

	w.wg.Wait()
	return nil
}

// addTree registers the root and every existing subdirectory.
// fsnotify watches are not recursive.
func (w *Watcher) addTree(watcher *fsnotify.Watcher) error {
	return filepath.WalkDir(w.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}

// watchLoop reacts to file events until the context is canceled.
func (w *Watcher) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer w.wg.Done()
	defer watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			// New subdirectories must be added to the watch set.
			if event.Op&fsnotify.Create != 0 && isDir(event.Name) {
				if err := watcher.Add(event.Name); err != nil {
					w.logger.Warn("failed to watch new directory",
						log.String("dir", event.Name), log.Err(err))
				}
				continue
			}
			if !strings.EqualFold(filepath.Ext(event.Name), w.ext) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			w.logger.Debug("input changed", log.String("file", event.Name))
			w.debounceRun(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher error", log.Err(err))
		}
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// debounceRun schedules a run after the quiet period, resetting any pending one.
// If the run func reports a run still in progress, the trigger is re-armed
// rather than dropped, so the change is picked up once that run finishes.
func (w *Watcher) debounceRun(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.debounceDelay, func() {
		if ctx.Err() != nil {
			return
		}
		err := w.run(ctx)
		if errors.Is(err, domain.ErrAlreadyRunning) {
			w.logger.Debug("run in progress, keeping trigger armed")
			w.debounceRun(ctx)
			return
		}
		if err != nil {
			w.logger.Error("re-run failed", log.Err(err))
		}
	})
}
