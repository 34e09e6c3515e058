package main

// File fuzzy finder (§4.J FileSearch mode, SUPPLEMENTED FEATURES #3),
// grounded on the teacher's startFileFuzzyFinder/fuzzyMatch/updateFuzzyResults
// (editor.go), adapted from a single global Editor field set onto a
// dedicated finder struct this build owns per Editor.

import (
	"github.com/cmantic/cmantic/internal/fileio"
	"github.com/cmantic/cmantic/internal/fuzzy"
	"github.com/cmantic/cmantic/internal/mode"
	"github.com/cmantic/cmantic/internal/pane"
)

// finder holds FileSearch mode's candidate list, typed query, and
// filtered/sorted results — the host-driven state internal/mode leaves
// to its caller (internal/mode/dispatch.go's comment on Menu/FileSearch).
type finder struct {
	candidates []string
	query      []rune
	results    []fuzzy.Result
	idx        int
	paneID     int // the floating Menu pane's index
	origPaneID int // the edit pane's index before Split, restored on close
}

// startFileFinder walks the working directory for candidate paths and
// enters FileSearch mode with an empty query (every file shown,
// best-first is a no-op until a query narrows it).
func (ed *Editor) startFileFinder() {
	candidates, err := fileio.WalkFiles(".")
	if err != nil {
		ed.message = ed.log.Errorf("finder", "walk: %v", err)
		return
	}
	origPaneID := ed.editPaneID
	sibling := ed.arena.Split(ed.editPaneID, pane.Menu, true)
	ed.editPaneID = sibling - 1 // Split relocates the edit content to the new firstChild
	ed.finder = &finder{candidates: candidates, paneID: sibling, origPaneID: origPaneID}
	ed.refreshFinder()
	ed.current().state.EnterMode(mode.FileSearch)
}

func (ed *Editor) refreshFinder() {
	f := ed.finder
	f.results = fuzzy.Filter(string(f.query), f.candidates)
	if f.idx >= len(f.results) {
		f.idx = len(f.results) - 1
	}
	if f.idx < 0 {
		f.idx = 0
	}
}

// handleFinderKey drives FileSearch mode: typed runes narrow the fuzzy
// filter, Up/Down move the highlighted result, Enter opens it, Esc
// cancels without opening anything.
func (ed *Editor) handleFinderKey(k mode.Key) {
	f := ed.finder
	switch {
	case k.Name == mode.KeyEsc:
		ed.closeFinder()
	case k.Name == mode.KeyEnter:
		var picked string
		if f.idx < len(f.results) {
			picked = f.results[f.idx].Text
		}
		ed.closeFinder()
		if picked != "" {
			if err := ed.OpenFile(picked); err != nil {
				ed.message = ed.log.Errorf("finder", "open %s: %v", picked, err)
			}
		}
	case k.Name == mode.KeyArrowDown:
		if f.idx < len(f.results)-1 {
			f.idx++
		}
	case k.Name == mode.KeyArrowUp:
		if f.idx > 0 {
			f.idx--
		}
	case k.Name == mode.KeyBackspace:
		if len(f.query) > 0 {
			f.query = f.query[:len(f.query)-1]
			ed.refreshFinder()
		}
	case k.Printable():
		f.query = append(f.query, k.Rune)
		ed.refreshFinder()
	}
}

func (ed *Editor) closeFinder() {
	if ed.finder == nil {
		return
	}
	ed.arena.Close(ed.finder.paneID)
	ed.editPaneID = ed.finder.origPaneID
	ed.finder = nil
	ed.current().state.EnterMode(mode.Normal)
}

// drawFinder renders the floating suggestion menu (query line plus up
// to the dropdown's height worth of matches) while FileSearch is active.
func (ed *Editor) drawFinder() {
	f := ed.finder
	if f == nil {
		return
	}
	n := ed.arena.Node(f.paneID)
	n.MenuText = append([]rune(">> "), f.query...)
	n.MenuCursor = len(n.MenuText)
	n.Suggestions = n.Suggestions[:0]
	for i := 0; i < len(f.results) && i < n.Rect.H-1; i++ {
		n.Suggestions = append(n.Suggestions, f.results[i].Text)
	}
	n.SuggestionIdx = f.idx
}
