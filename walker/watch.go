package walker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/OpenAEC-Foundation/convtools/policy"
)

const defaultDebounce = 500 * time.Millisecond

// Watcher re-scans a tree whenever files under it change, debouncing
// bursts of filesystem events into a single fresh Report.
type Watcher struct {
	walker   *Walker
	root     string
	debounce time.Duration
	fsw      *fsnotify.Watcher
	logger   policy.Logger

	pendingMu sync.Mutex
	pending   bool

	reports chan *Report
}

// NewWatcher creates a Watcher over root. A zero debounce selects the
// default of 500ms.
func NewWatcher(w *Walker, root string, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("walker: creating watcher: %w", err)
	}
	if debounce == 0 {
		debounce = defaultDebounce
	}
	return &Watcher{
		walker:   w,
		root:     root,
		debounce: debounce,
		fsw:      fsw,
		logger:   w.logger(),
		reports:  make(chan *Report, 1),
	}, nil
}

// Reports returns the channel fresh scan reports are delivered on.
func (ww *Watcher) Reports() <-chan *Report {
	return ww.reports
}

// Start performs an initial scan, then watches for changes until ctx is
// cancelled. Every settled burst of changes produces one new Report on
// the Reports channel.
func (ww *Watcher) Start(ctx context.Context) error {
	if err := ww.addWatchesRecursive(ww.root); err != nil {
		return err
	}

	ww.markPending()
	go ww.loop(ctx)

	ww.logger.Info("watching for changes", "root", ww.root, "debounce", ww.debounce)
	return nil
}

// Stop closes the underlying filesystem watcher. The report channel is
// closed by the watch loop once it drains its final events, so only the
// loop ever sends on or closes it.
func (ww *Watcher) Stop() error {
	return ww.fsw.Close()
}

func (ww *Watcher) addWatchesRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr == nil && rel != "." && ww.walker.ignored(rel) {
			return filepath.SkipDir
		}
		if addErr := ww.fsw.Add(path); addErr != nil {
			ww.logger.Warn("failed to watch directory", "path", path, "error", addErr)
		}
		return nil
	})
}

func (ww *Watcher) loop(ctx context.Context) {
	defer close(ww.reports)

	ticker := time.NewTicker(ww.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-ww.fsw.Events:
			if !ok {
				return
			}
			ww.handleEvent(event)

		case err, ok := <-ww.fsw.Errors:
			if !ok {
				return
			}
			ww.logger.Error("watch error", "error", err)

		case <-ticker.C:
			ww.flush(ctx)
		}
	}
}

func (ww *Watcher) handleEvent(event fsnotify.Event) {
	rel, err := filepath.Rel(ww.root, event.Name)
	if err != nil || ww.walker.ignored(rel) {
		return
	}

	// New directories need their own watch for events to keep flowing.
	if event.Has(fsnotify.Create) {
		if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
			if addErr := ww.fsw.Add(event.Name); addErr != nil {
				ww.logger.Warn("failed to watch new directory", "path", event.Name, "error", addErr)
			}
		}
	}

	ww.logger.Debug("change detected", "path", rel, "op", event.Op.String())
	ww.markPending()
}

func (ww *Watcher) markPending() {
	ww.pendingMu.Lock()
	ww.pending = true
	ww.pendingMu.Unlock()
}

func (ww *Watcher) flush(ctx context.Context) {
	ww.pendingMu.Lock()
	dirty := ww.pending
	ww.pending = false
	ww.pendingMu.Unlock()
	if !dirty {
		return
	}

	report, err := ww.walker.Walk(ctx, ww.root)
	if err != nil {
		ww.logger.Error("rescan failed", "root", ww.root, "error", err)
		return
	}

	select {
	case ww.reports <- report:
	default:
		// The consumer has not drained the previous report; drop the
		// stale one and deliver the newest.
		select {
		case <-ww.reports:
		default:
		}
		ww.reports <- report
	}
}
