package config

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the configuration when its file changes on disk.
type Watcher struct {
	fw   *fsnotify.Watcher
	done chan struct{}
}

// Watch starts watching path and invokes onChange with the freshly
// loaded configuration after every write. The callback runs on the
// watcher's goroutine; a host with a single event thread must forward it
// there itself.
func Watch(path string, onChange func(Config)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watcher: %w", err)
	}
	// Watch the directory: editors commonly replace the file by rename,
	// which drops a watch on the file itself.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	w := &Watcher{fw: fw, done: make(chan struct{})}
	go w.run(path, onChange)
	return w, nil
}

func (w *Watcher) run(path string, onChange func(Config)) {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if cfg, err := Load(path); err == nil {
				onChange(cfg)
			}
		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
		}
	}
}

// Close stops the watcher and waits for its goroutine to finish.
func (w *Watcher) Close() error {
	err := w.fw.Close()
	<-w.done
	return err
}
