package backend

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/atomicstack/menubar/internal/logging/events"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindFiles Kind = iota
)

// maxScanEntries bounds a single snapshot so a huge directory cannot flood
// the event channel.
const maxScanEntries = 32

// FileInfo describes one regular file found in the watched directory.
type FileInfo struct {
	Name    string
	Path    string
	ModTime time.Time
}

// Event conveys an updated snapshot or an error from a directory scan.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// Watcher observes a directory and publishes file snapshots. Change
// notifications come from fsnotify when available; a slow ticker rescans
// regardless, which doubles as the fallback when fsnotify cannot attach.
type Watcher struct {
	dir      string
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher for dir that rescans at least every interval.
func NewWatcher(dir string, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		dir:      dir,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	w.startFilePoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Dir reports the watched directory.
func (w *Watcher) Dir() string {
	return w.dir
}

// Stop cancels the watcher. Goroutines exit after their current scan
// completes; use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all watcher goroutines have exited and the events
// channel is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startFilePoller() {
	throttle := newThrottle(250 * time.Millisecond)
	notify := w.watchDir()
	w.wg.Add(1)
	go w.poll(KindFiles, notify, func(ctx context.Context) (interface{}, error) {
		throttle.wait()
		return ScanDir(w.dir)
	})
}

// watchDir attaches fsnotify to the directory and coalesces its events into
// a single-slot notify channel. Returns nil when fsnotify is unavailable, in
// which case the ticker alone drives rescans.
func (w *Watcher) watchDir() <-chan struct{} {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		events.Watch.Fallback(err.Error())
		return nil
	}
	if err := fsw.Add(w.dir); err != nil {
		fsw.Close()
		events.Watch.Fallback(err.Error())
		return nil
	}

	notify := make(chan struct{}, 1)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer fsw.Close()
		for {
			select {
			case <-w.ctx.Done():
				return
			case evt, ok := <-fsw.Events:
				if !ok {
					return
				}
				events.Watch.Change(evt.Name)
				select {
				case notify <- struct{}{}:
				default:
				}
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				events.Watch.Error(err)
			}
		}
	}()
	return notify
}

func (w *Watcher) poll(kind Kind, notify <-chan struct{}, fetch func(context.Context) (interface{}, error)) {
	defer w.wg.Done()

	emit := func() bool {
		data, err := fetch(w.ctx)
		evt := Event{Kind: kind, Data: data, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	interval := w.interval
	if notify != nil {
		// fsnotify carries the fast path; the ticker only papers over
		// missed notifications.
		interval *= 8
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		case <-notify:
			if !emit() {
				return
			}
		}
	}
}

// ScanDir snapshots the regular files in dir, newest first. Dotfiles are
// skipped. The result is capped at maxScanEntries.
func ScanDir(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	files := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		files = append(files, FileInfo{
			Name:    entry.Name(),
			Path:    filepath.Join(dir, entry.Name()),
			ModTime: info.ModTime(),
		})
	}
	sort.Slice(files, func(i, j int) bool {
		if !files[i].ModTime.Equal(files[j].ModTime) {
			return files[i].ModTime.After(files[j].ModTime)
		}
		return files[i].Name < files[j].Name
	})
	if len(files) > maxScanEntries {
		files = files[:maxScanEntries]
	}
	return files, nil
}
