package config

import (
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

const reloadDelay = 100 * time.Millisecond

// Watcher reloads a config file whenever it changes on disk.
// Successfully parsed configs are delivered on Updates, failures on Errors.
// Only the latest pending config is kept if the consumer falls behind.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	logger  *log.Logger
	preset  Preset

	Updates chan Config
	Errors  chan error

	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

type WatcherOption func(*Watcher)

// WithPreset applies the named preset to every reloaded config, so command
// line overrides survive edits to the file.
func WithPreset(name Preset) WatcherOption {
	return func(w *Watcher) { w.preset = name }
}

// NewWatcher starts watching path. The containing directory is watched so
// editors that replace the file atomically are picked up too.
func NewWatcher(path string, logger *log.Logger, opts ...WatcherOption) (*Watcher, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:    abs,
		logger:  logger.With("path", abs),
		Updates: make(chan Config, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	if _, ok := presets[w.preset]; w.preset != "" && !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, w.preset)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w.watcher = fw
	go w.run()
	return w, nil
}

// Close stops the watcher and closes both channels.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Updates)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	var pending <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.After(reloadDelay)
		case <-pending:
			pending = nil
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := LoadFile(w.path)
	if err != nil {
		w.logger.Warn("config reload failed", "error", err)
		w.sendError(err)
		return
	}
	if err := ApplyPreset(&cfg, w.preset); err != nil {
		w.sendError(err)
		return
	}

	w.logger.Info("config reloaded", "preset", w.preset)
	// drop a stale, unconsumed config in favour of the new one
	select {
	case <-w.Updates:
	default:
	}
	select {
	case w.Updates <- cfg:
	case <-w.closeCh:
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}
