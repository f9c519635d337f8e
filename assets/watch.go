package assets

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceWindow = 100 * time.Millisecond

// Watcher reports image files that changed on disk. Events carries the
// changed path once writes to it have settled.
type Watcher struct {
	watcher *fsnotify.Watcher
	files   map[string]string
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches the directories containing files and reports changes
// to those files only. Each reported path is the one passed in, so it can be
// matched against the path a sprite was loaded from.
func NewWatcher(files ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("assets: create watcher: %w", err)
	}

	watched := make(map[string]string, len(files))
	dirs := make(map[string]bool)
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("assets: watch %s: %w", file, err)
		}
		watched[abs] = file
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("assets: watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	watcher := &Watcher{
		watcher: w,
		files:   watched,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	if w == nil {
		return nil
	}
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	d := newDebouncer(debounceWindow)
	defer d.stop()
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if name, ok := w.match(event); ok {
				d.touch(name)
			}
		case name := <-d.ready:
			select {
			case w.Events <- name:
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

// match maps an fsnotify event to the watched path it concerns. Editors
// often save by renaming a temp file over the original, so Create and Rename
// count as changes too.
func (w *Watcher) match(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return "", false
	}
	if !IsImageFile(event.Name) {
		return "", false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return "", false
	}
	name, ok := w.files[abs]
	return name, ok
}

// debouncer reports a name once its events have been quiet for window, so
// a file written in several chunks is reloaded after the last chunk.
type debouncer struct {
	window time.Duration
	ready  chan string
	done   chan struct{}

	mu      sync.Mutex
	gen     uint64
	pending map[string]pendingFire
	stopped bool
}

type pendingFire struct {
	timer *time.Timer
	gen   uint64
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{
		window:  window,
		ready:   make(chan string, 16),
		done:    make(chan struct{}),
		pending: make(map[string]pendingFire),
	}
}

// touch (re)starts the quiet period for name.
func (d *debouncer) touch(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if p, ok := d.pending[name]; ok {
		p.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.pending[name] = pendingFire{
		timer: time.AfterFunc(d.window, func() { d.fire(name, gen) }),
		gen:   gen,
	}
}

func (d *debouncer) fire(name string, gen uint64) {
	d.mu.Lock()
	p, ok := d.pending[name]
	if !ok || p.gen != gen {
		d.mu.Unlock()
		return
	}
	delete(d.pending, name)
	d.mu.Unlock()

	select {
	case d.ready <- name:
	case <-d.done:
	}
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.stopped = true
	for name, p := range d.pending {
		p.timer.Stop()
		delete(d.pending, name)
	}
	close(d.done)
}
