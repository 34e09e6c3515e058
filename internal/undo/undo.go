// Package undo implements the grouped undo/redo journal (§4.G): a flat
// array of tagged actions, nested begin/end group markers, inverse replay,
// and the clipboard-emission hook that makes "delete" and "yank" share one
// mechanism.
package undo

import (
	"sort"
	"strings"

	"github.com/cmantic/cmantic/internal/position"
)

// CursorState is the snapshot unit for CursorSnapshot entries: enough to
// restore a cursor's position and ghost column (§3) without the undo
// package depending on the view package's Cursor type.
type CursorState struct {
	X, Y, Ghost int
}

// Insert records that text was inserted producing Range (A before, B
// after); Delete records that Text was removed from Range. CursorHint
// identifies which cursor in the entering snapshot caused the record (-1
// if none), used to split multi-cursor deletes across the clipboard.
type Insert struct {
	Range      position.Range
	Text       []rune
	CursorHint int
}

type Delete struct {
	Range      position.Range
	Text       []rune
	CursorHint int
}

// CursorSnapshot records the full cursor array at a group boundary.
type CursorSnapshot struct {
	Cursors []CursorState
}

// GroupBegin and GroupEnd bracket one undo unit (an "action group").
type GroupBegin struct{}
type GroupEnd struct{}

// Applier is the callback surface Undo/Redo drive to replay inverse (or
// forward) mutations and restore cursor arrays. Implementations must not
// re-journal while Journal.Replaying() is true; the buffer package's
// mutation primitives check this.
type Applier interface {
	Insert(at position.Pos, text []rune)
	Remove(a, b position.Pos)
	SetCursors(cursors []CursorState)
}

// Journal is the per-buffer undo/redo log.
type Journal struct {
	entries   []any
	next      int // index into entries of the next action to redo
	clean     int // next-index value at last save; -1 means "never clean"
	depth     int // action_begin/action_end nesting depth
	beginIdx  int // entries index of the current group's GroupBegin
	replaying bool
}

// NewJournal returns an empty, clean journal.
func NewJournal() *Journal {
	return &Journal{clean: 0}
}

// Replaying reports whether Undo/Redo is currently driving mutations, so
// mutation primitives can suppress re-journaling their own side effects.
func (j *Journal) Replaying() bool { return j.replaying }

// Begin opens an action group (§4.G); only the outermost Begin/End pair
// emits journal entries. cursors is the cursor array as of entry.
func (j *Journal) Begin(cursors []CursorState) {
	if j.depth == 0 {
		j.truncateTail()
		j.beginIdx = len(j.entries)
		j.entries = append(j.entries, GroupBegin{})
		j.entries = append(j.entries, CursorSnapshot{Cursors: cloneCursors(cursors)})
		j.next = len(j.entries)
	}
	j.depth++
}

// RecordInsert appends an Insert record. No-op outside a group or while
// replaying.
func (j *Journal) RecordInsert(r position.Range, text []rune, cursorHint int) {
	if j.depth == 0 || j.replaying {
		return
	}
	j.truncateTail()
	j.entries = append(j.entries, Insert{Range: r, Text: append([]rune(nil), text...), CursorHint: cursorHint})
	j.next = len(j.entries)
}

// RecordDelete appends a Delete record. No-op outside a group or while
// replaying.
func (j *Journal) RecordDelete(r position.Range, text []rune, cursorHint int) {
	if j.depth == 0 || j.replaying {
		return
	}
	j.truncateTail()
	j.entries = append(j.entries, Delete{Range: r, Text: append([]rune(nil), text...), CursorHint: cursorHint})
	j.next = len(j.entries)
}

// End closes an action group. cursors is the cursor array as of exit. It
// returns the clipboard text to push (per the yank-via-delete rule) and
// whether the group produced any net change at all.
func (j *Journal) End(cursors []CursorState) (clipboard string, changed bool) {
	if j.depth == 0 {
		return "", false
	}
	j.depth--
	if j.depth > 0 {
		return "", false
	}

	j.entries = append(j.entries, CursorSnapshot{Cursors: cloneCursors(cursors)})
	j.entries = append(j.entries, GroupEnd{})
	endIdx := len(j.entries) - 1
	j.next = len(j.entries)

	if endIdx-j.beginIdx == 3 {
		// Only GroupBegin, CursorSnapshot(enter), CursorSnapshot(leave),
		// GroupEnd: no net change, pop the no-op group.
		j.entries = j.entries[:j.beginIdx]
		j.next = len(j.entries)
		return "", false
	}

	hasInsert := false
	order := []int{}
	deletesByCursor := map[int][]string{}
	for _, e := range j.entries[j.beginIdx+2 : endIdx-1] {
		switch a := e.(type) {
		case Insert:
			hasInsert = true
		case Delete:
			if a.CursorHint >= 0 {
				if _, ok := deletesByCursor[a.CursorHint]; !ok {
					order = append(order, a.CursorHint)
				}
				deletesByCursor[a.CursorHint] = append(deletesByCursor[a.CursorHint], string(a.Text))
			}
		}
	}
	if hasInsert || len(order) == 0 {
		return "", true
	}
	sort.Ints(order)
	parts := make([]string, 0, len(order))
	for _, idx := range order {
		parts = append(parts, strings.Join(deletesByCursor[idx], ""))
	}
	return strings.Join(parts, "\n"), true
}

// truncateTail drops any redo-able tail when a fresh mutation arrives
// while next < len(entries), and invalidates the clean index if the
// truncated region included it.
func (j *Journal) truncateTail() {
	if j.next < len(j.entries) {
		j.entries = j.entries[:j.next]
		if j.clean > j.next {
			j.clean = -1
		}
	}
}

// CanUndo reports whether there is a group to undo.
func (j *Journal) CanUndo() bool { return j.next > 0 }

// CanRedo reports whether there is a group to redo.
func (j *Journal) CanRedo() bool { return j.next < len(j.entries) }

// Undo replays the most recently closed group in reverse via applier:
// Insert becomes Remove, Delete becomes Insert, CursorSnapshot restores
// the cursor array. Reports whether a group was undone.
func (j *Journal) Undo(applier Applier) bool {
	if !j.CanUndo() {
		return false
	}
	j.replaying = true
	defer func() { j.replaying = false }()

	idx := j.next - 1
	if _, ok := j.entries[idx].(GroupEnd); ok {
		idx--
	}
	for idx >= 0 {
		switch v := j.entries[idx].(type) {
		case GroupBegin:
			j.next = idx
			return true
		case CursorSnapshot:
			applier.SetCursors(v.Cursors)
		case Insert:
			applier.Remove(v.Range.A, v.Range.B)
		case Delete:
			applier.Insert(v.Range.A, v.Text)
		}
		idx--
	}
	j.next = 0
	return true
}

// Redo replays the next group forward via applier: Insert is re-inserted,
// Delete is re-removed, CursorSnapshot restores the cursor array.
func (j *Journal) Redo(applier Applier) bool {
	if !j.CanRedo() {
		return false
	}
	j.replaying = true
	defer func() { j.replaying = false }()

	idx := j.next
	if _, ok := j.entries[idx].(GroupBegin); ok {
		idx++
	}
	for idx < len(j.entries) {
		switch v := j.entries[idx].(type) {
		case GroupEnd:
			j.next = idx + 1
			return true
		case CursorSnapshot:
			applier.SetCursors(v.Cursors)
		case Insert:
			applier.Insert(v.Range.A, v.Text)
		case Delete:
			applier.Remove(v.Range.A, v.Range.B)
		}
		idx++
	}
	j.next = len(j.entries)
	return true
}

// MarkClean records the current journal position as the on-disk save
// point (§4.G "writing to the file records the current journal index").
func (j *Journal) MarkClean() { j.clean = j.next }

// Modified reports whether the journal has diverged from the last clean
// (saved) index.
func (j *Journal) Modified() bool { return j.next != j.clean }

func cloneCursors(cs []CursorState) []CursorState {
	out := make([]CursorState, len(cs))
	copy(out, cs)
	return out
}
