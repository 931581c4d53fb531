package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events editors emit on save.
const DefaultDebounce = 100 * time.Millisecond

// Change reports a tuning file that was written, created, renamed or removed.
type Change struct {
	// Name is the file name relative to the watched directory, e.g.
	// "monsters.yaml" or "scripts/upgrade.tengo".
	Name string
	Path string
}

// Script reports whether the change is to a tengo script.
func (c Change) Script() bool {
	return strings.EqualFold(filepath.Ext(c.Path), ".tengo")
}

// Watcher streams debounced tuning file changes on Changes.
type Watcher struct {
	Changes chan Change
	Errors  chan error

	watcher  *fsnotify.Watcher
	root     string
	debounce time.Duration
	closeCh  chan struct{}
	done     chan struct{}
	once     sync.Once
}

// NewWatcher watches root and its scripts subdirectory if present.
func NewWatcher(root string, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(root); err != nil {
		_ = fw.Close()
		return nil, err
	}
	_ = fw.Add(filepath.Join(root, "scripts"))

	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w := &Watcher{
		Changes:  make(chan Change, 16),
		Errors:   make(chan error, 1),
		watcher:  fw,
		root:     root,
		debounce: debounce,
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Changes)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isTuningFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < w.debounce {
				continue
			}
			last[event.Name] = now
			change := Change{Name: w.relative(event.Name), Path: event.Name}
			select {
			case w.Changes <- change:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) relative(path string) string {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return filepath.Base(path)
	}
	return filepath.ToSlash(rel)
}

func isTuningFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".tengo":
		return true
	}
	return false
}
