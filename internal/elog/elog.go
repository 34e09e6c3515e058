// Package elog is the editor's structured logger: a zerolog writer to
// an optional log file, plus an in-memory ring buffer (§4.K's debug
// window) so the last N entries can be rendered as an overlay pane. It
// replaces the teacher's hand-rolled Editor.addLog (editor.go), which
// both appended to a capped string slice and wrote a hand-formatted
// line to a log file under a feature flag, with the same two
// destinations driven through zerolog instead of fmt.Sprintf.
package elog

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Entry is one ring-buffer record, rendered by the debug window.
type Entry struct {
	Group string
	Text  string
}

// Logger pairs a zerolog.Logger (for the optional log file) with the
// capped ring buffer the debug window reads.
type Logger struct {
	zl zerolog.Logger

	mu      sync.Mutex
	ring    []Entry
	maxSize int

	file io.Closer
}

// New returns a Logger whose ring buffer holds at most maxSize entries
// and which additionally writes to logFilePath if non-empty, matching
// the teacher's Config.UseLogFile/Config.LogFilePath toggle.
func New(maxSize int, logFilePath string) (*Logger, error) {
	l := &Logger{maxSize: maxSize}
	var w io.Writer = io.Discard
	if logFilePath != "" {
		f, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		w = f
		l.file = f
	}
	l.zl = zerolog.New(w).With().Timestamp().Logger()
	return l, nil
}

// Log appends an entry tagged group to the ring buffer and zerolog
// output (the teacher's addLog(group, msg) signature, kept verbatim).
func (l *Logger) Log(group, msg string) {
	l.zl.Info().Str("group", group).Msg(msg)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.ring = append(l.ring, Entry{Group: group, Text: msg})
	if len(l.ring) > l.maxSize {
		l.ring = l.ring[len(l.ring)-l.maxSize:]
	}
}

// Errorf is Log's counterpart for error-level entries, returning the
// formatted message so callers can also surface it in the status line.
func (l *Logger) Errorf(group, format string, args ...any) string {
	l.zl.Error().Str("group", group).Msgf(format, args...)
	msg := fmt.Sprintf(format, args...)
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ring = append(l.ring, Entry{Group: group, Text: msg})
	if len(l.ring) > l.maxSize {
		l.ring = l.ring[len(l.ring)-l.maxSize:]
	}
	return msg
}

// Recent returns a copy of the ring buffer's current contents, oldest
// first, for the debug window to render.
func (l *Logger) Recent() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.ring))
	copy(out, l.ring)
	return out
}

// Close flushes and closes the underlying log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
