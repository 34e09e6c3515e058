package colorscheme

import (
	"os"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a colour-scheme file on disk change (§6
// was-modified-since for colour-scheme hot-reload), via fsnotify rather
// than the teacher's polling-free, single-shot theme.go load — the
// editor's colour scheme is the one piece of configuration meant to be
// edited live while the program runs.
type Watcher struct {
	path    string
	fsw     *fsnotify.Watcher
	Current *Scheme
}

// Watch starts watching path, loading it immediately. If path does not
// exist or fails to parse, Current is set to Default and the watcher
// still starts (so later creating the file is picked up).
func Watch(path string) (*Watcher, error) {
	w := &Watcher{path: path, Current: Default()}
	if content, err := os.ReadFile(path); err == nil {
		if s, err := Parse(content); err == nil {
			w.Current = s
		}
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(path); err != nil {
		// The file may not exist yet; watch its directory instead so a
		// later create/rename is still observed.
		_ = fsw.Add(dirOf(path))
	}
	w.fsw = fsw
	return w, nil
}

// Poll drains any pending fsnotify events for this watcher's path,
// reloading Current on a Write or Create event. It is non-blocking and
// meant to be called once per frame from the same cooperative loop that
// polls subprocess output (§5).
func (w *Watcher) Poll() (reloaded bool) {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return reloaded
			}
			if ev.Name != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			content, err := os.ReadFile(w.path)
			if err != nil {
				continue
			}
			s, err := Parse(content)
			if err != nil {
				continue
			}
			w.Current = s
			reloaded = true
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return reloaded
			}
		default:
			return reloaded
		}
	}
}

// Close stops the underlying fsnotify watcher.
func (w *Watcher) Close() error { return w.fsw.Close() }

func dirOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[:i]
		}
	}
	return "."
}
