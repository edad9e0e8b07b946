package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Iron-Ham/timeline/internal/logging"
)

// DefaultDebounce coalesces editor save bursts into one notification.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports changes to a Loader's source. The callback runs on the
// watcher goroutine once per burst of file events.
type Watcher struct {
	watcher  *fsnotify.Watcher
	loader   *Loader
	onChange func()
	debounce time.Duration
	logger   *logging.Logger

	// target is the watched file's base name; empty for directory sources
	target string

	stopCh   chan struct{}
	doneCh   chan struct{}
	started  atomic.Bool
	stopOnce sync.Once
}

// NewWatcher creates a Watcher for l. The built-in dataset cannot change, so
// l must have a path. A debounce of zero uses DefaultDebounce.
func NewWatcher(l *Loader, debounce time.Duration, onChange func()) (*Watcher, error) {
	if l.path == "" {
		return nil, fmt.Errorf("cannot watch the built-in dataset")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	info, err := os.Stat(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat data path: %w", err)
	}

	// Watch the file's directory; editors often replace files by rename,
	// which drops a watch placed on the file itself
	dir, target := l.path, ""
	if !info.IsDir() {
		dir, target = filepath.Dir(l.path), filepath.Base(l.path)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch directory: %w", err)
	}

	return &Watcher{
		watcher:  fw,
		loader:   l,
		onChange: onChange,
		debounce: debounce,
		logger:   l.logger.With("watch", l.path),
		target:   target,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching in a new goroutine. Calls after the first are
// ignored.
func (w *Watcher) Start() {
	if w.started.CompareAndSwap(false, true) {
		go w.watchLoop()
	}
}

// Stop ends the watch and waits for the goroutine to exit. It is safe to
// call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.watcher.Close()
	})
	if w.started.Load() {
		<-w.doneCh
	}
}

// relevant reports whether a file event can change the loaded data.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Base(event.Name)
	if w.target != "" {
		return name == w.target
	}
	return w.loader.matches(name)
}

func (w *Watcher) watchLoop() {
	defer close(w.doneCh)

	debounceTimer := time.NewTimer(0)
	<-debounceTimer.C // drain initial timer
	defer debounceTimer.Stop()

	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("data changed", "file", event.Name, "op", event.Op.String())
			debounceTimer.Reset(w.debounce)

		case <-debounceTimer.C:
			if w.onChange != nil {
				w.onChange()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error", "error", err)
		}
	}
}
