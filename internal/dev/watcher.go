// Package dev holds development-mode plumbing for the serve command,
// currently the polling file watcher that drives the live preview.
package dev

import (
	"context"
	"os"
	"time"
)

// DefaultInterval is the polling interval used when none is configured.
const DefaultInterval = 500 * time.Millisecond

// Watcher polls a single file for modification-time changes. Polling keeps
// the dependency surface flat and is plenty for one preview file.
type Watcher struct {
	path     string
	interval time.Duration
	onChange func(path string)
}

// NewWatcher creates a watcher for path, invoking onChange after each
// detected modification.
func NewWatcher(path string, interval time.Duration, onChange func(path string)) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Watcher{path: path, interval: interval, onChange: onChange}
}

// Run polls until the context is cancelled. A file that does not exist yet
// triggers onChange once it appears.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	last, exists := w.stat()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			mtime, ok := w.stat()
			if ok && (!exists || mtime.After(last)) {
				last, exists = mtime, true
				w.onChange(w.path)
			} else if !ok {
				exists = false
			}
		}
	}
}

func (w *Watcher) stat() (time.Time, bool) {
	info, err := os.Stat(w.path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}
