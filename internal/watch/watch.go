// Package watch re-runs a function when declaration files change.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last event before the
// function runs.
const DefaultDebounce = 200 * time.Millisecond

// Watcher watches files and directories. A watched file triggers on any
// change to it; a watched directory triggers on changes to its .go files.
type Watcher struct {
	paths    []string
	debounce time.Duration
	ignore   map[string]struct{}

	// OnError receives errors of the watched function. When nil, the
	// first error stops Run and is returned.
	OnError func(error)
}

// New creates a Watcher. A debounce of zero runs the function on every event.
func New(paths []string, debounce time.Duration) *Watcher {
	return &Watcher{
		paths:    paths,
		debounce: debounce,
		ignore:   make(map[string]struct{}),
	}
}

// Ignore excludes paths from triggering, typically the generated files.
func (w *Watcher) Ignore(paths ...string) *Watcher {
	for _, p := range paths {
		if abs, err := filepath.Abs(p); err == nil {
			w.ignore[abs] = struct{}{}
		}
	}

	return w
}

// Run is shorthand for New(paths, debounce).Run(ctx, fn).
func Run(ctx context.Context, paths []string, debounce time.Duration, fn func(context.Context) error) error {
	return New(paths, debounce).Run(ctx, fn)
}

// Run blocks until ctx is done, calling fn after each debounced batch of
// changes. fn runs on the calling goroutine, never concurrently with itself.
func (w *Watcher) Run(ctx context.Context, fn func(context.Context) error) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	defer func() {
		_ = fw.Close()
	}()

	t, err := w.add(fw)
	if err != nil {
		return err
	}

	var d debouncer
	defer d.stop()

	run := func() error {
		if err := fn(ctx); err != nil {
			if w.OnError == nil {
				return err
			}

			w.OnError(err)
		}

		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}

			if !t.matches(ev, w.ignore) {
				continue
			}

			if w.debounce <= 0 {
				if err := run(); err != nil {
					return err
				}

				continue
			}

			d.trigger(w.debounce)
		case <-d.fired():
			d.reset()

			if err := run(); err != nil {
				return err
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}

			if w.OnError == nil {
				return fmt.Errorf("watching: %w", err)
			}

			w.OnError(fmt.Errorf("watching: %w", err))
		}
	}
}

// targets are the absolute paths being watched.
type targets struct {
	files map[string]struct{}
	dirs  map[string]struct{}
}

// add registers the parent directory of every file and every directory.
// Watching directories keeps working when editors replace a file by rename.
func (w *Watcher) add(fw *fsnotify.Watcher) (*targets, error) {
	t := &targets{files: map[string]struct{}{}, dirs: map[string]struct{}{}}
	added := map[string]struct{}{}

	for _, p := range w.paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", p, err)
		}

		fi, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("watching %s: %w", p, err)
		}

		dir := abs
		if fi.IsDir() {
			t.dirs[abs] = struct{}{}
		} else {
			t.files[abs] = struct{}{}
			dir = filepath.Dir(abs)
		}

		if _, ok := added[dir]; ok {
			continue
		}

		if err := fw.Add(dir); err != nil {
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}

		added[dir] = struct{}{}
	}

	return t, nil
}

// matches reports whether an event concerns a watched path.
func (t *targets) matches(ev fsnotify.Event, ignore map[string]struct{}) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}

	name, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}

	if _, ok := ignore[name]; ok {
		return false
	}

	if _, ok := t.files[name]; ok {
		return true
	}

	if _, ok := t.dirs[filepath.Dir(name)]; ok {
		return filepath.Ext(name) == ".go"
	}

	return false
}

// debouncer delays a trigger until no new trigger arrived for the interval.
type debouncer struct {
	timer   *time.Timer
	pending bool
}

func (d *debouncer) trigger(interval time.Duration) {
	if d.timer == nil {
		d.timer = time.NewTimer(interval)
		d.pending = true

		return
	}

	// Reset never leaves a stale tick behind since Go 1.23.
	d.timer.Reset(interval)
	d.pending = true
}

// fired returns the timer channel, or nil when nothing is pending.
func (d *debouncer) fired() <-chan time.Time {
	if !d.pending {
		return nil
	}

	return d.timer.C
}

func (d *debouncer) reset() {
	d.pending = false
}

func (d *debouncer) stop() {
	if d.timer != nil {
		d.timer.Stop()
	}
}
