package dev

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherDetectsChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(path, []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}

	changed := make(chan string, 1)
	w := NewWatcher(path, 10*time.Millisecond, func(p string) {
		select {
		case changed <- p:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	// Ensure the mtime moves forward even on coarse filesystems.
	time.Sleep(20 * time.Millisecond)
	future := time.Now().Add(time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-changed:
		if got != path {
			t.Errorf("onChange path = %q, want %q", got, path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not report the change")
	}
}

func TestWatcherReportsAppearance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "late.html")

	changed := make(chan struct{}, 1)
	w := NewWatcher(path, 10*time.Millisecond, func(string) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	time.Sleep(20 * time.Millisecond)
	if err := os.WriteFile(path, []byte("now"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not report file appearance")
	}
}

func TestWatcherStopsOnCancel(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), "x"), 10*time.Millisecond, func(string) {})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop on cancel")
	}
}
