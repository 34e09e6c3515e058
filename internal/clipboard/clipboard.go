// Package clipboard adapts the OS clipboard (§6) onto mode.Clipboard,
// grounded on the teacher's direct atotto/clipboard.WriteAll/ReadAll
// calls (seen pulling double duty as both copy and yank destinations in
// the wider corpus's terminal editors).
package clipboard

import "github.com/atotto/clipboard"

// OS is the live OS-clipboard-backed implementation of mode.Clipboard.
type OS struct{}

// Set writes text to the OS clipboard.
func (OS) Set(text string) error { return clipboard.WriteAll(text) }

// Get reads the OS clipboard's current text.
func (OS) Get() (string, error) { return clipboard.ReadAll() }

// Fallback is an in-process clipboard used when the OS clipboard is
// unavailable (e.g. headless CI, no X11/Wayland clipboard provider) —
// clipboard.WriteAll/ReadAll return an error in that case rather than
// panicking, so callers can swap to this instead of losing yank/paste.
type Fallback struct{ text string }

func (f *Fallback) Set(text string) error { f.text = text; return nil }
func (f *Fallback) Get() (string, error)  { return f.text, nil }
