package levels

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// Watcher reloads a catalog file whenever it changes on disk.
// Each successful reload is delivered on Catalogs; parse and validation
// failures go to Errors and the previous catalog stays in effect.
type Watcher struct {
	path        string
	screenWidth float64
	watcher     *fsnotify.Watcher

	Catalogs chan Catalog
	Errors   chan error

	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher starts watching the catalog file at path.
// The parent directory is watched so editors that replace the file on
// save are still seen.
func NewWatcher(path string, screenWidth float64) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("levels: resolving %s: %w", path, err)
	}
	if dir, err := filepath.EvalSymlinks(filepath.Dir(abs)); err == nil {
		abs = filepath.Join(dir, filepath.Base(abs))
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("levels: creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("levels: watching %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:        abs,
		screenWidth: screenWidth,
		watcher:     fw,
		Catalogs:    make(chan Catalog, 1),
		Errors:      make(chan error, 1),
		closeCh:     make(chan struct{}),
		done:        make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.Catalogs)
	defer close(w.Errors)

	// Editors often write a file in several steps; reload once the
	// burst has gone quiet.
	timer := time.NewTimer(reloadDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			timer.Reset(reloadDebounce)
		case <-timer.C:
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendErr(err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) reload() {
	cat, err := LoadFile(w.path)
	if err == nil {
		err = cat.Validate(w.screenWidth)
	}
	if err != nil {
		w.sendErr(err)
		return
	}

	// Keep only the newest catalog if the consumer is behind.
	select {
	case <-w.Catalogs:
	default:
	}
	select {
	case w.Catalogs <- cat:
	case <-w.closeCh:
	}
}

func (w *Watcher) sendErr(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}
