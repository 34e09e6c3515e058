// Package buffer implements the Buffer type (§3), its mutation primitives
// (§4.E), and the cursor-repair rules (§4.F) that every mutation runs
// before returning.
package buffer

import (
	"strings"

	"github.com/cmantic/cmantic/internal/linestore"
	"github.com/cmantic/cmantic/internal/parse"
	"github.com/cmantic/cmantic/internal/position"
	"github.com/cmantic/cmantic/internal/token"
	"github.com/cmantic/cmantic/internal/undo"
)

// Endline is the line-ending convention a buffer was loaded with.
type Endline int

const (
	LF Endline = iota
	CRLF
)

// Highlight is a transient visual range with a fade value (§3); Fade rises
// from 0 toward 1 per tick and the entry is dropped at Fade >= 1.
type Highlight struct {
	Range position.Range
	Fade  float64
}

// Buffer is an ordered sequence of lines plus the per-buffer state the
// spec's data model describes: language, endline convention, tab policy,
// parse result, highlights, and the undo journal. Buffer does not itself
// hold cursors; BufferView (internal/view) does, and registers its cursor
// positions as anchors via Track/Untrack so the repair pass of Insert and
// Remove (repairInsert/repairDelete) reaches them.
type Buffer struct {
	Filename  string
	Anonymous bool
	Lang      token.Language
	Endline   Endline
	TabWidth  int // 0 = hard tab, N>0 = N spaces

	store  *linestore.Store
	Parsed parse.Result

	Highlights []*Highlight
	Journal    *undo.Journal

	anchors []*position.Pos // every live cursor/jumplist/highlight endpoint
}

// New returns an anonymous, empty, scratch buffer.
func New(name string, lang token.Language) *Buffer {
	b := &Buffer{
		Filename:  name,
		Anonymous: true,
		Lang:      lang,
		Endline:   LF,
		store:     linestore.New(),
		Journal:   undo.NewJournal(),
	}
	b.reparse()
	return b
}

// FromBytes builds a bound buffer from loaded file content (§6 Load).
func FromBytes(filename string, content []byte, endline Endline, lang token.Language) *Buffer {
	text := string(content)
	if endline == CRLF {
		text = strings.ReplaceAll(text, "\r\n", "\n")
	}
	rawLines := strings.Split(text, "\n")
	lines := make([][]rune, len(rawLines))
	for i, l := range rawLines {
		lines[i] = []rune(l)
	}
	b := &Buffer{
		Filename: filename,
		Lang:     lang,
		Endline:  endline,
		store:    linestore.FromLines(lines),
		Journal:  undo.NewJournal(),
	}
	b.reparse()
	return b
}

// Lines returns every line; callers must not mutate the result.
func (b *Buffer) Lines() [][]rune { return b.store.Lines() }

// Line returns line y; callers must not mutate the result.
func (b *Buffer) Line(y int) []rune { return b.store.Line(y) }

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int { return b.store.Len() }

// LineLen returns the rune length of line y.
func (b *Buffer) LineLen(y int) int { return b.store.LineLen(y) }

// Track registers p as an anchor that every future mutation's repair pass
// (§4.F) must keep legal. Callers (BufferView, jumplists, highlights) call
// this once per anchor they own and keep the returned pointer live.
func (b *Buffer) Track(p *position.Pos) { b.anchors = append(b.anchors, p) }

// Untrack removes p from the anchor set, e.g. when a cursor is removed.
func (b *Buffer) Untrack(p *position.Pos) {
	for i, a := range b.anchors {
		if a == p {
			b.anchors = append(b.anchors[:i], b.anchors[i+1:]...)
			return
		}
	}
}

// ToString renders the whole buffer as newline-joined text, with no
// trailing newline on the last line (§6 Save contract, minus the
// endline-byte re-emission which is a fileio concern).
func (b *Buffer) ToString() string {
	var sb strings.Builder
	lines := b.store.Lines()
	for i, l := range lines {
		sb.WriteString(string(l))
		if i < len(lines)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Clamp clamps p to the position invariant of §3: a legal (x,y) for this
// buffer's current line store.
func (b *Buffer) Clamp(p position.Pos) position.Pos { return b.clampPos(p) }

// clampPos clamps p to the position invariant of §3. A position below
// the last line clamps to the end of the buffer.
func (b *Buffer) clampPos(p position.Pos) position.Pos {
	if p.Y < 0 {
		p.Y = 0
	}
	if p.Y >= b.store.Len() {
		p.Y = b.store.Len() - 1
		p.X = b.store.LineLen(p.Y)
	}
	if p.X < 0 {
		p.X = 0
	}
	if p.X > b.store.LineLen(p.Y) {
		p.X = b.store.LineLen(p.Y)
	}
	return p
}

// reparse replaces the parse result. Called after every mutation unless
// the journal is replaying (undo/redo replay reparses once at the group
// boundary instead).
func (b *Buffer) reparse() {
	b.Parsed = parse.Parse(b.store.Lines(), b.Lang)
}

// Reparse is the public entry point for callers (e.g. undo/redo group
// close) that suppressed per-mutation reparsing and must run it once now.
func (b *Buffer) Reparse() { b.reparse() }
