// Package term adapts termbox-go onto the editor core: translating
// termbox.Event into mode.Key (§6 Input events) and rendering a View
// plus its pane chrome to the terminal. Grounded on the teacher's
// kevent.go event loop and editor.go's direct termbox.SetCell drawing,
// generalized from one hardwired Editor to the pane-tree/mode-package
// boundary.
package term

import (
	"github.com/nsf/termbox-go"

	"github.com/cmantic/cmantic/internal/mode"
)

// Init starts termbox in the teacher's convention: 256-color output,
// ESC with no input-mouse by default (callers enable mouse explicitly).
func Init() error {
	if err := termbox.Init(); err != nil {
		return err
	}
	termbox.SetOutputMode(termbox.Output256)
	return nil
}

// Close shuts termbox down; safe to defer right after a successful Init.
func Close() { termbox.Close() }

// PollKey blocks for the next key event and translates it to a
// mode.Key, or ok=false for any event this layer doesn't turn into a
// key (mouse, resize, interrupt) — callers should loop until ok.
func PollKey() (mode.Key, bool) {
	ev := termbox.PollEvent()
	if ev.Type != termbox.EventKey {
		return mode.Key{}, false
	}
	return translateKey(ev), true
}

// Event is termbox's own event, re-exported so callers can distinguish
// resize/interrupt from key events without importing termbox directly.
type Event = termbox.Event

// PollEvent blocks for the next raw termbox event.
func PollEvent() Event { return termbox.PollEvent() }

func translateKey(ev termbox.Event) mode.Key {
	if ev.Ch != 0 {
		return mode.Key{Rune: ev.Ch}
	}
	k := mode.Key{}
	switch ev.Key {
	case termbox.KeyEsc:
		k.Name = mode.KeyEsc
	case termbox.KeyEnter:
		k.Name = mode.KeyEnter
	case termbox.KeyTab:
		k.Name = mode.KeyTab
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		k.Name = mode.KeyBackspace
	case termbox.KeyArrowLeft:
		k.Name = mode.KeyArrowLeft
	case termbox.KeyArrowRight:
		k.Name = mode.KeyArrowRight
	case termbox.KeyArrowUp:
		k.Name = mode.KeyArrowUp
	case termbox.KeyArrowDown:
		k.Name = mode.KeyArrowDown
	case termbox.KeyHome:
		k.Name = mode.KeyHome
	case termbox.KeyEnd:
		k.Name = mode.KeyEnd
	case termbox.KeySpace:
		k.Rune = ' '
	default:
		if ev.Key >= termbox.KeyCtrlA && ev.Key <= termbox.KeyCtrlZ {
			k.Control = true
			k.Rune = rune('a' + (ev.Key - termbox.KeyCtrlA))
		}
	}
	return k
}
