package config

import (
	"fmt"
	"log"
	"path/filepath"
	"runtime/debug"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/lixenwraith/neon-rails/event"
)

// Watcher pushes a Reload event into the input queue whenever the config file changes
// The parent directory is watched since editors often replace files by rename
type Watcher struct {
	path  string
	fw    *fsnotify.Watcher
	queue *event.Queue

	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewWatcher starts watching path
func NewWatcher(path string, queue *event.Queue) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	w := &Watcher{path: abs, fw: fw, queue: queue}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[config] watcher panic: %v\n%s", r, debug.Stack())
		}
	}()

	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.queue.Push(event.GameEvent{Kind: event.Reload})

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			log.Printf("[config] watcher: %v", err)
		}
	}
}

// Path returns the absolute path being watched
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher and waits for its goroutine; safe to call twice
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.fw.Close()
		w.wg.Wait()
	})
	return err
}
