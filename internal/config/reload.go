package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Reloader watches one settings file and re-applies it on change.
// Applied settings are also delivered on Updates for observers.
type Reloader struct {
	mu sync.Mutex

	watcher *fsnotify.Watcher
	path    string

	updates chan Settings
	errs    chan error

	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup

	// Writes often arrive as bursts of events; changes inside the
	// debounce window collapse into one reload.
	debounce time.Duration
}

// NewReloader starts watching the settings file at path.
// The file's directory is watched so atomic replace (write to temp,
// rename over) is seen as well.
func NewReloader(path string) (*Reloader, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, err
	}

	r := &Reloader{
		watcher:  fsw,
		path:     absPath,
		updates:  make(chan Settings, 8),
		errs:     make(chan error, 8),
		closeCh:  make(chan struct{}),
		debounce: 100 * time.Millisecond,
	}

	r.wg.Add(1)
	go r.processLoop()

	return r, nil
}

// Updates returns the channel of successfully applied settings.
func (r *Reloader) Updates() <-chan Settings {
	return r.updates
}

// Errors returns the channel of load or apply failures.
// A failure leaves the previously applied settings in force.
func (r *Reloader) Errors() <-chan error {
	return r.errs
}

// Close stops watching. Safe to call more than once.
func (r *Reloader) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	close(r.closeCh)
	r.mu.Unlock()

	r.wg.Wait()
	close(r.updates)
	close(r.errs)
	return r.watcher.Close()
}

func (r *Reloader) processLoop() {
	defer r.wg.Done()

	var pending *time.Timer
	var pendingCh <-chan time.Time

	for {
		select {
		case <-r.closeCh:
			if pending != nil {
				pending.Stop()
			}
			return

		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != r.path {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			if pending == nil {
				pending = time.NewTimer(r.debounce)
				pendingCh = pending.C
			} else {
				pending.Reset(r.debounce)
			}

		case <-pendingCh:
			pending = nil
			pendingCh = nil
			r.reload()

		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			r.sendError(err)
		}
	}
}

func (r *Reloader) reload() {
	s, err := Load(r.path)
	if err != nil {
		r.sendError(err)
		return
	}
	if err := s.Apply(); err != nil {
		r.sendError(err)
		return
	}

	select {
	case r.updates <- s:
	default:
		// Observer lagging; the settings are applied regardless.
	}
}

func (r *Reloader) sendError(err error) {
	select {
	case r.errs <- err:
	default:
	}
}
