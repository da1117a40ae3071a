package config

import (
	"os"
	"sync"
	"time"
)

// FileWatcher polls file modification times and calls onChange when a file
// changes, appears or disappears.
type FileWatcher struct {
	Interval time.Duration

	paths    func() []string
	onChange func(string)
	stopCh   chan struct{}
	stopOnce sync.Once
	seen     map[string]time.Time
}

// NewFileWatcher watches whatever paths returns on each scan, so files
// added between scans are picked up.
func NewFileWatcher(paths func() []string, interval time.Duration, onChange func(string)) *FileWatcher {
	return &FileWatcher{
		Interval: interval,
		paths:    paths,
		onChange: onChange,
		stopCh:   make(chan struct{}),
		seen:     make(map[string]time.Time),
	}
}

// Start primes the modification times and begins polling in a goroutine.
func (w *FileWatcher) Start() {
	w.scan(true)
	ticker := time.NewTicker(w.Interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.scan(false)
			case <-w.stopCh:
				return
			}
		}
	}()
}

// Stop terminates the watcher. It is safe to call more than once.
func (w *FileWatcher) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
}

func (w *FileWatcher) scan(prime bool) {
	current := make(map[string]bool)
	for _, p := range w.paths() {
		current[p] = true
		fi, err := os.Stat(p)
		if err != nil {
			continue
		}
		mt := fi.ModTime()
		last, ok := w.seen[p]
		w.seen[p] = mt
		if !prime && (!ok || mt.After(last)) {
			w.notify(p)
		}
	}
	for p := range w.seen {
		if !current[p] {
			delete(w.seen, p)
			if !prime {
				w.notify(p)
			}
		}
	}
}

func (w *FileWatcher) notify(p string) {
	if w.onChange != nil {
		w.onChange(p)
	}
}
