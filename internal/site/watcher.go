package site

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads a manifest file when it changes on disk. Reloaded
// manifests are delivered on Updates; only the newest pending one is kept.
type Watcher struct {
	path     string
	debounce time.Duration
	log      *zap.Logger

	watcher *fsnotify.Watcher
	updates chan *Manifest
	stopCh  chan struct{}
	doneCh  chan struct{}
	once    sync.Once
}

// Watch starts watching path. The parent directory is watched so editors
// that replace the file on save are still seen.
func Watch(path string, debounce time.Duration, log *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		debounce: debounce,
		log:      log,
		watcher:  fw,
		updates:  make(chan *Manifest, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Updates() <-chan *Manifest { return w.updates }

func (w *Watcher) run() {
	defer close(w.doneCh)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.stopCh:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Debug("site watcher error", zap.Error(err))

		case <-fire:
			fire = nil
			m, err := Load(w.path)
			if err != nil {
				w.log.Warn("site manifest reload failed", zap.String("path", w.path), zap.Error(err))
				continue
			}
			w.publish(m)
		}
	}
}

func (w *Watcher) publish(m *Manifest) {
	select {
	case <-w.updates:
	default:
	}
	w.updates <- m
	w.log.Info("site manifest reloaded", zap.String("path", w.path))
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.stopCh)
		err = w.watcher.Close()
		<-w.doneCh
	})
	return err
}
