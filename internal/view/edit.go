package view

import (
	"github.com/cmantic/cmantic/internal/buffer"
	"github.com/cmantic/cmantic/internal/position"
	"github.com/cmantic/cmantic/internal/undo"
)

// BeginGroup opens an undo action group (§4.G), snapshotting the
// entering cursor set.
func (v *View) BeginGroup() { v.Buf.Journal.Begin(v.snapshot()) }

// EndGroup closes the currently open action group, snapshotting the
// leaving cursor set. Returns clipboard text if the closed group was a
// pure-delete (yank) group, and whether the group produced any change.
func (v *View) EndGroup() (clipboard string, changed bool) {
	return v.Buf.Journal.End(v.snapshot())
}

func (v *View) snapshot() []undo.CursorState {
	out := make([]undo.CursorState, len(v.Cursors))
	for i, c := range v.Cursors {
		out[i] = undo.CursorState{X: c.Pos.X, Y: c.Pos.Y, Ghost: c.Ghost}
	}
	return out
}

func (v *View) restore(states []undo.CursorState) {
	for _, c := range v.Cursors {
		v.Buf.Untrack(&c.Pos)
	}
	v.Cursors = make([]*Cursor, len(states))
	v.visualStart = make([]*position.Pos, len(states))
	for i, s := range states {
		c := &Cursor{Pos: position.Pos{X: s.X, Y: s.Y}, Ghost: s.Ghost}
		v.Buf.Track(&c.Pos)
		v.Cursors[i] = c
	}
}

// applier adapts a View onto undo.Applier so Journal.Undo/Redo can drive
// replay without the undo package depending on buffer or view.
type applier struct{ v *View }

func (a *applier) Insert(at position.Pos, text []rune) {
	a.v.Buf.Insert(at, text, buffer.NoCursorHint)
}

func (a *applier) Remove(lo, hi position.Pos) {
	a.v.Buf.Remove(lo, hi, buffer.NoCursorHint)
}

func (a *applier) SetCursors(cs []undo.CursorState) { a.v.restore(cs) }

// Undo replays the most recently closed group in reverse (§4.G). It
// reparses once at the end, matching the spec's "re-parse runs once at
// group boundary" rule for replay.
func (v *View) Undo() bool {
	ok := v.Buf.Journal.Undo(&applier{v: v})
	if ok {
		v.Buf.Reparse()
	}
	return ok
}

// Redo replays the next group forward (§4.G).
func (v *View) Redo() bool {
	ok := v.Buf.Journal.Redo(&applier{v: v})
	if ok {
		v.Buf.Reparse()
	}
	return ok
}

// InsertRune types r at every cursor (Insert-mode printable key, §4.J),
// applied in cursor order (descending, so an earlier cursor's edit never
// invalidates a later one on the same line before it runs).
func (v *View) InsertRune(r rune) {
	v.BeginGroup()
	for _, i := range v.DescendingOrder() {
		c := v.Cursors[i]
		v.Buf.Insert(c.Pos, []rune{r}, i)
	}
	v.RefreshGhosts()
	v.EndGroup()
	v.DeduplicateCursors()
}

// InsertNewline applies §4.E insert_newline (with auto-indent) at every
// cursor.
func (v *View) InsertNewline() {
	v.BeginGroup()
	for _, i := range v.DescendingOrder() {
		c := v.Cursors[i]
		c.Pos = v.Buf.InsertNewline(c.Pos, i)
	}
	v.RefreshGhosts()
	v.EndGroup()
	v.DeduplicateCursors()
}

// InsertTab applies §4.E insert_tab at every cursor.
func (v *View) InsertTab() {
	v.BeginGroup()
	for _, i := range v.DescendingOrder() {
		c := v.Cursors[i]
		c.Pos = v.Buf.InsertTab(c.Pos, i)
	}
	v.RefreshGhosts()
	v.EndGroup()
	v.DeduplicateCursors()
}

// Backspace implements Insert-mode Backspace: removes a full indent unit
// when the prefix is all whitespace, else one logical column, joining
// with the line above at column 0.
func (v *View) Backspace() {
	v.BeginGroup()
	for _, i := range v.DescendingOrder() {
		c := v.Cursors[i]
		if n := indentUnitWidth(v.Buf.Line(c.Pos.Y)[:c.Pos.X], v.Buf.TabWidth); n > 0 {
			at := c.Pos
			v.Buf.Remove(position.Pos{X: at.X - n, Y: at.Y}, at, i)
			c.Pos.X -= n
		} else {
			c.Pos = v.Buf.DeleteCharBackward(c.Pos, i)
		}
	}
	v.RefreshGhosts()
	v.EndGroup()
	v.DeduplicateCursors()
}

// indentUnitWidth returns how many trailing columns of prefix form one
// full indent unit of all-whitespace content, or 0 if prefix is empty or
// contains a non-whitespace rune.
func indentUnitWidth(prefix []rune, tabWidth int) int {
	if len(prefix) == 0 {
		return 0
	}
	for _, r := range prefix {
		if r != ' ' && r != '\t' {
			return 0
		}
	}
	if tabWidth <= 0 {
		return 1
	}
	n := len(prefix) % tabWidth
	if n == 0 {
		n = tabWidth
	}
	return n
}

// DeleteCharAt removes one logical code point forward at every cursor
// (the `x`-style delete-under-cursor primitive).
func (v *View) DeleteCharAt() {
	v.BeginGroup()
	for _, i := range v.DescendingOrder() {
		c := v.Cursors[i]
		v.Buf.DeleteCharForward(c.Pos, i)
	}
	v.RefreshGhosts()
	v.EndGroup()
	v.DeduplicateCursors()
}

// DeleteRange removes r at every cursor's shared operation (used by
// Delete/Yank mode selection specifiers and motions, §4.J), returning
// clipboard text if the group was a pure delete.
func (v *View) DeleteRange(r position.Range, cursorHint int) (clipboard string, changed bool) {
	v.BeginGroup()
	v.Buf.Remove(r.A, r.B, cursorHint)
	v.RefreshGhosts()
	return v.EndGroup()
}

// ReplaceRange removes r and inserts text in its place, as one group.
func (v *View) ReplaceRange(r position.Range, text []rune, cursorHint int) {
	v.BeginGroup()
	v.Buf.Replace(r, text, cursorHint)
	v.RefreshGhosts()
	v.EndGroup()
}

// AddIndent changes line y's leading indentation by delta units (§4.H
// add_indent): positive inserts indent units at column 0, negative
// removes them.
func (v *View) AddIndent(y, delta int) {
	unit := v.Buf.TabWidth
	if unit <= 0 {
		unit = 1
	}
	v.BeginGroup()
	if delta > 0 {
		for i := 0; i < delta; i++ {
			v.Buf.InsertTab(position.Pos{X: 0, Y: y}, buffer.NoCursorHint)
		}
	} else if delta < 0 {
		line := v.Buf.Line(y)
		removeWidth := indentUnitWidth(line, v.Buf.TabWidth)
		for i := 0; i < -delta && removeWidth > 0; i++ {
			v.Buf.Remove(position.Pos{X: 0, Y: y}, position.Pos{X: removeWidth, Y: y}, buffer.NoCursorHint)
			line = v.Buf.Line(y)
			removeWidth = indentUnitWidth(line, v.Buf.TabWidth)
		}
	}
	v.RefreshGhosts()
	v.EndGroup()
}

// SetIndent replaces line y's leading indentation with target indent
// units (§4.H set_indent).
func (v *View) SetIndent(y, target int) {
	line := v.Buf.Line(y)
	cur := 0
	for cur < len(line) && (line[cur] == ' ' || line[cur] == '\t') {
		cur++
	}
	v.BeginGroup()
	if cur > 0 {
		v.Buf.Remove(position.Pos{X: 0, Y: y}, position.Pos{X: cur, Y: y}, buffer.NoCursorHint)
	}
	if target > 0 {
		unit := v.Buf.TabWidth
		var lit []rune
		if unit <= 0 {
			for i := 0; i < target; i++ {
				lit = append(lit, '\t')
			}
		} else {
			for i := 0; i < target*unit; i++ {
				lit = append(lit, ' ')
			}
		}
		v.Buf.Insert(position.Pos{X: 0, Y: y}, lit, buffer.NoCursorHint)
	}
	v.RefreshGhosts()
	v.EndGroup()
}
