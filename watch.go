package swoop

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce is how long the file must stay unchanged before a reload.
const reloadDebounce = 100 * time.Millisecond

// PresetWatcher reloads a preset file whenever it changes on disk. Reloaded
// books arrive on Reloaded and parse or watch failures on Errors; drain both
// from the game loop so ticking stays on one goroutine.
type PresetWatcher struct {
	Reloaded chan *PresetBook
	Errors   chan error

	path    string
	watcher *fsnotify.Watcher
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// WatchPresets starts watching the preset file at path. The directory is
// watched rather than the file so editors that replace the file on save are
// handled.
func WatchPresets(path string) (*PresetWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	pw := &PresetWatcher{
		Reloaded: make(chan *PresetBook, 4),
		Errors:   make(chan error, 4),
		path:     abs,
		watcher:  w,
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	go pw.run()
	return pw, nil
}

// Close stops the watcher and closes both channels.
func (w *PresetWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Reloaded)
		close(w.Errors)
	})
	return err
}

// Poll returns the most recent reloaded book, or nil when nothing changed.
// Errors received meanwhile are logged. Poll never blocks.
func (w *PresetWatcher) Poll() *PresetBook {
	var latest *PresetBook
	for {
		select {
		case book, ok := <-w.Reloaded:
			if !ok {
				return latest
			}
			latest = book
		case err, ok := <-w.Errors:
			if !ok {
				return latest
			}
			log.Printf("swoop: preset reload: %v", err)
		default:
			return latest
		}
	}
}

func (w *PresetWatcher) run() {
	defer close(w.done)
	// Editors often emit several events per save (truncate, write, rename),
	// so reload only once the file has been quiet for reloadDebounce.
	timer := time.NewTimer(reloadDebounce)
	timer.Stop()
	defer timer.Stop()
	var fire <-chan time.Time

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
			fire = timer.C
		case <-fire:
			fire = nil
			book, err := LoadPresets(w.path)
			if err != nil {
				w.send(nil, err)
				continue
			}
			w.send(book, nil)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(nil, err)
		case <-w.closeCh:
			return
		}
	}
}

// send delivers a result without blocking past Close.
func (w *PresetWatcher) send(book *PresetBook, err error) {
	if err != nil {
		select {
		case w.Errors <- err:
		case <-w.closeCh:
		}
		return
	}
	select {
	case w.Reloaded <- book:
	case <-w.closeCh:
	}
}
