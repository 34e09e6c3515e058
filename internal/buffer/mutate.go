package buffer

import (
	"strings"

	"github.com/cmantic/cmantic/internal/indent"
	"github.com/cmantic/cmantic/internal/position"
)

// NoCursorHint marks an undo record as not attributable to any one
// cursor (e.g. programmatic edits outside a multi-cursor operation).
const NoCursorHint = -1

// Insert places text at at (§4.E insert). Newlines in text split the
// line store across multiple lines. Returns the end position. No-op on
// empty text. Journals an Insert record (unless replaying), repairs
// every tracked anchor, pushes a paste-flash highlight, and reparses
// unless the journal is mid-replay (replay reparses once at the group
// boundary).
func (b *Buffer) Insert(at position.Pos, text []rune, cursorHint int) position.Pos {
	at = b.clampPos(at)
	if len(text) == 0 {
		return at
	}
	end := b.insertText(at, text)
	b.Journal.RecordInsert(position.Range{A: at, B: end}, text, cursorHint)
	b.repairInsert(at, end)
	if !b.Journal.Replaying() {
		h := &Highlight{Range: position.Range{A: at, B: end}}
		b.Track(&h.Range.A)
		b.Track(&h.Range.B)
		b.Highlights = append(b.Highlights, h)
		b.reparse()
	}
	return end
}

// Remove deletes the half-open range [a,b) (§4.E remove), normalizing
// the endpoints first. Returns the removed text. No-op on an empty
// range. Journals a Delete record (unless replaying), repairs every
// tracked anchor, and reparses unless mid-replay.
func (b *Buffer) Remove(a, bPos position.Pos, cursorHint int) []rune {
	lo, hi := position.Normalize(a, bPos)
	lo = b.clampPos(lo)
	hi = b.clampPos(hi)
	if lo.Equal(hi) {
		return nil
	}
	removed := b.extractText(lo, hi)
	b.removeText(lo, hi)
	b.Journal.RecordDelete(position.Range{A: lo, B: hi}, removed, cursorHint)
	b.repairDelete(lo, hi)
	if !b.Journal.Replaying() {
		b.reparse()
	}
	return removed
}

// Replace implements §4.E replace: remove(r.a, r.b) then insert(r.a, text).
func (b *Buffer) Replace(r position.Range, text []rune, cursorHint int) position.Pos {
	b.Remove(r.A, r.B, cursorHint)
	return b.Insert(r.A, text, cursorHint)
}

// InsertTab inserts either one '\t' or TabWidth spaces depending on the
// buffer's tab policy (§4.E insert_tab).
func (b *Buffer) InsertTab(at position.Pos, cursorHint int) position.Pos {
	if b.TabWidth <= 0 {
		return b.Insert(at, []rune{'\t'}, cursorHint)
	}
	return b.Insert(at, []rune(strings.Repeat(" ", b.TabWidth)), cursorHint)
}

// InsertNewline implements §4.E insert_newline: trims trailing whitespace
// off the current line, inserts '\n', then auto-indents the new line per
// §4.I.
func (b *Buffer) InsertNewline(at position.Pos, cursorHint int) position.Pos {
	line := b.store.Line(at.Y)
	trimmedLen := len(line)
	for trimmedLen > at.X && isSpaceRune(line[trimmedLen-1]) {
		trimmedLen--
	}
	if trimmedLen < len(line) {
		b.Remove(position.Pos{X: trimmedLen, Y: at.Y}, position.Pos{X: len(line), Y: at.Y}, cursorHint)
		if at.X > trimmedLen {
			at.X = trimmedLen
		}
	}

	end := b.Insert(at, []rune{'\n'}, cursorHint)

	level := indent.TargetLevel(b.store.Lines(), b.Parsed.Tokens, end.Y, nil, b.TabWidth)
	ind := indent.Render(level, b.TabWidth)
	if len(ind) > 0 {
		end = b.Insert(end, ind, cursorHint)
	}
	return end
}

func isSpaceRune(r rune) bool { return r == ' ' || r == '\t' }

// DeleteLine implements §4.E delete_line: removes [(0,y),(0,y+1)), unless
// that would leave zero lines, in which case it truncates line 0 instead.
func (b *Buffer) DeleteLine(y int, cursorHint int) {
	if b.store.Len() <= 1 {
		b.Remove(position.Pos{X: 0, Y: 0}, position.Pos{X: b.store.LineLen(0), Y: 0}, cursorHint)
		return
	}
	if y >= b.store.Len()-1 {
		b.Remove(position.Pos{X: b.store.LineLen(y - 1), Y: y - 1}, position.Pos{X: b.store.LineLen(y), Y: y}, cursorHint)
		return
	}
	b.Remove(position.Pos{X: 0, Y: y}, position.Pos{X: 0, Y: y + 1}, cursorHint)
}

// DeleteCharBackward implements §4.E delete_char at cursor: joins with
// the line above when at column 0 of a non-first line, else removes one
// logical code point to the left. Returns the new cursor position.
func (b *Buffer) DeleteCharBackward(at position.Pos, cursorHint int) position.Pos {
	if at.X == 0 && at.Y > 0 {
		prevLen := b.store.LineLen(at.Y - 1)
		b.Remove(position.Pos{X: prevLen, Y: at.Y - 1}, at, cursorHint)
		return position.Pos{X: prevLen, Y: at.Y - 1}
	}
	if at.X == 0 {
		return at
	}
	b.Remove(position.Pos{X: at.X - 1, Y: at.Y}, at, cursorHint)
	return position.Pos{X: at.X - 1, Y: at.Y}
}

// DeleteCharForward removes one logical code point at at, joining with
// the next line if at is the virtual end-of-line position.
func (b *Buffer) DeleteCharForward(at position.Pos, cursorHint int) {
	if at.X >= b.store.LineLen(at.Y) {
		if at.Y < b.store.Len()-1 {
			b.Remove(at, position.Pos{X: 0, Y: at.Y + 1}, cursorHint)
		}
		return
	}
	b.Remove(at, position.Pos{X: at.X + 1, Y: at.Y}, cursorHint)
}

// Tick advances every highlight's fade and drops entries at fade >= 1,
// untracking their anchors.
func (b *Buffer) Tick(dt float64) {
	kept := b.Highlights[:0]
	for _, h := range b.Highlights {
		h.Fade += dt
		if h.Fade < 1 {
			kept = append(kept, h)
		} else {
			b.Untrack(&h.Range.A)
			b.Untrack(&h.Range.B)
		}
	}
	b.Highlights = kept
}

// --- line-store level helpers (not journaled; called only by Insert/Remove) ---

func splitLines(text []rune) [][]rune {
	var segs [][]rune
	start := 0
	for i, r := range text {
		if r == '\n' {
			segs = append(segs, text[start:i])
			start = i + 1
		}
	}
	segs = append(segs, text[start:])
	return segs
}

func (b *Buffer) insertText(at position.Pos, text []rune) position.Pos {
	segs := splitLines(text)
	if len(segs) == 1 {
		b.store.InsertBytes(at.Y, at.X, segs[0])
		return position.Pos{X: at.X + len(segs[0]), Y: at.Y}
	}

	line := b.store.Line(at.Y)
	after := append([]rune(nil), line[at.X:]...)
	b.store.Truncate(at.Y, at.X)
	b.store.Append(at.Y, segs[0])

	y := at.Y
	for i := 1; i < len(segs); i++ {
		y++
		content := append([]rune(nil), segs[i]...)
		if i == len(segs)-1 {
			content = append(content, after...)
		}
		b.store.InsertLine(y, content)
	}
	return position.Pos{X: len(segs[len(segs)-1]), Y: y}
}

func (b *Buffer) extractText(lo, hi position.Pos) []rune {
	if lo.Y == hi.Y {
		line := b.store.Line(lo.Y)
		return append([]rune(nil), line[lo.X:hi.X]...)
	}
	var out []rune
	out = append(out, b.store.Line(lo.Y)[lo.X:]...)
	out = append(out, '\n')
	for y := lo.Y + 1; y < hi.Y; y++ {
		out = append(out, b.store.Line(y)...)
		out = append(out, '\n')
	}
	out = append(out, b.store.Line(hi.Y)[:hi.X]...)
	return out
}

func (b *Buffer) removeText(lo, hi position.Pos) {
	if lo.Y == hi.Y {
		b.store.RemoveBytes(lo.Y, lo.X, hi.X)
		return
	}
	tailAfter := append([]rune(nil), b.store.Line(hi.Y)[hi.X:]...)
	b.store.Truncate(lo.Y, lo.X)
	b.store.Append(lo.Y, tailAfter)
	for i := 0; i < hi.Y-lo.Y; i++ {
		b.store.Delete(lo.Y + 1)
	}
}

// --- §4.F cursor-repair rules ---

func (b *Buffer) repairInsert(a, bPos position.Pos) {
	dy := bPos.Y - a.Y
	for _, p := range b.anchors {
		if p.Y == a.Y && p.X >= a.X {
			if dy > 0 {
				p.X = bPos.X + (p.X - a.X)
				p.Y += dy
			} else {
				p.X += bPos.X - a.X
			}
		} else if p.Y > a.Y {
			p.Y += dy
		}
	}
}

func (b *Buffer) repairDelete(a, bPos position.Pos) {
	dy := bPos.Y - a.Y
	for _, p := range b.anchors {
		switch {
		case posGE(*p, a) && posLE(*p, bPos):
			*p = a
		case p.Y > bPos.Y:
			p.Y -= dy
		case p.Y == bPos.Y && p.X >= bPos.X-1:
			p.X = a.X + (p.X - bPos.X)
			p.Y = a.Y
		}
	}
}

func posGE(p, q position.Pos) bool { return !p.Less(q) }
func posLE(p, q position.Pos) bool { return !q.Less(p) }
