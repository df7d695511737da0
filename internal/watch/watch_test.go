package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const waitFor = 5 * time.Second

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// startWatcher runs w until the test ends and returns the channel of calls.
func startWatcher(t *testing.T, w *Watcher) (<-chan struct{}, <-chan error) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	calls := make(chan struct{}, 16)
	done := make(chan error, 1)

	go func() {
		done <- w.Run(ctx, func(context.Context) error {
			calls <- struct{}{}
			return nil
		})
	}()

	t.Cleanup(func() {
		cancel()
		select {
		case <-done:
		case <-time.After(waitFor):
			t.Error("watcher did not stop")
		}
	})

	// Give the watcher time to register before files change.
	time.Sleep(100 * time.Millisecond)

	return calls, done
}

func TestWatcher_FileChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fields.yaml")
	writeFile(t, path, "version: \"1\"\n")

	calls, _ := startWatcher(t, New([]string{path}, 20*time.Millisecond))

	writeFile(t, path, "version: \"1\"\nschemas: []\n")

	select {
	case <-calls:
	case <-time.After(waitFor):
		t.Fatal("no call after change")
	}
}

func TestWatcher_Debounces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fields.yaml")
	writeFile(t, path, "a")

	calls, _ := startWatcher(t, New([]string{path}, 300*time.Millisecond))

	for i := range 5 {
		writeFile(t, path, string(rune('a'+i)))
	}

	select {
	case <-calls:
	case <-time.After(waitFor):
		t.Fatal("no call after changes")
	}

	select {
	case <-calls:
		t.Fatal("burst of writes triggered more than once")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fields.yaml")
	gen := filepath.Join(dir, "types_gen.go")
	writeFile(t, path, "a")

	w := New([]string{path, dir}, 10*time.Millisecond).Ignore(gen)
	calls, _ := startWatcher(t, w)

	writeFile(t, filepath.Join(dir, "notes.txt"), "x")
	writeFile(t, gen, "package x")

	select {
	case <-calls:
		t.Fatal("unrelated files triggered a call")
	case <-time.After(300 * time.Millisecond):
	}

	writeFile(t, filepath.Join(dir, "decl.go"), "package x")

	select {
	case <-calls:
	case <-time.After(waitFor):
		t.Fatal("no call after a .go change in a watched directory")
	}
}

func TestWatcher_ErrorStopsWithoutHandler(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fields.yaml")
	writeFile(t, path, "a")

	boom := errors.New("boom")
	done := make(chan error, 1)

	go func() {
		done <- New([]string{path}, 0).Run(context.Background(), func(context.Context) error {
			return boom
		})
	}()

	time.Sleep(100 * time.Millisecond)
	writeFile(t, path, "b")

	select {
	case err := <-done:
		require.ErrorIs(t, err, boom)
	case <-time.After(waitFor):
		t.Fatal("watcher did not stop on error")
	}
}

func TestWatcher_OnErrorKeepsRunning(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fields.yaml")
	writeFile(t, path, "a")

	errs := make(chan error, 16)
	w := New([]string{path}, 10*time.Millisecond)
	w.OnError = func(err error) { errs <- err }

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- w.Run(ctx, func(context.Context) error { return errors.New("bad yaml") })
	}()

	time.Sleep(100 * time.Millisecond)
	writeFile(t, path, "b")

	select {
	case err := <-errs:
		assert.EqualError(t, err, "bad yaml")
	case <-time.After(waitFor):
		t.Fatal("error not reported")
	}

	cancel()
	require.NoError(t, <-done)
}

func TestRun_MissingPath(t *testing.T) {
	err := Run(context.Background(), []string{filepath.Join(t.TempDir(), "missing.yaml")}, 0,
		func(context.Context) error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watching")
}

func TestTargets_Matches(t *testing.T) {
	tg := &targets{
		files: map[string]struct{}{"/d/fields.yaml": {}},
		dirs:  map[string]struct{}{"/pkg": {}},
	}
	ignore := map[string]struct{}{"/pkg/fields_gen.go": {}}

	tests := []struct {
		name string
		ev   fsnotify.Event
		want bool
	}{
		{"write to file", fsnotify.Event{Name: "/d/fields.yaml", Op: fsnotify.Write}, true},
		{"rename of file", fsnotify.Event{Name: "/d/fields.yaml", Op: fsnotify.Rename}, true},
		{"chmod only", fsnotify.Event{Name: "/d/fields.yaml", Op: fsnotify.Chmod}, false},
		{"sibling file", fsnotify.Event{Name: "/d/other.yaml", Op: fsnotify.Write}, false},
		{"go file in dir", fsnotify.Event{Name: "/pkg/decl.go", Op: fsnotify.Create}, true},
		{"non-go file in dir", fsnotify.Event{Name: "/pkg/README.md", Op: fsnotify.Write}, false},
		{"ignored file", fsnotify.Event{Name: "/pkg/fields_gen.go", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tg.matches(tt.ev, ignore))
		})
	}
}
