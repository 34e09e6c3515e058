package buffer

import (
	"testing"

	"github.com/cmantic/cmantic/internal/position"
	"github.com/cmantic/cmantic/internal/token"
)

func newTestBuffer(lines ...string) *Buffer {
	return FromBytes("test", []byte(joinLF(lines)), LF, token.Text)
}

func joinLF(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}

// TestInsertRemoveInverse is §8 property 2: insert(at, s); remove(at,
// end) restores the buffer to its original text.
func TestInsertRemoveInverse(t *testing.T) {
	b := newTestBuffer("abc", "def")
	before := b.ToString()

	end := b.Insert(position.Pos{X: 1, Y: 0}, []rune("XY\nZ"), NoCursorHint)
	b.Remove(position.Pos{X: 1, Y: 0}, end, NoCursorHint)

	if got := b.ToString(); got != before {
		t.Fatalf("insert/remove did not invert: got %q, want %q", got, before)
	}
}

func TestInsertSplitsAcrossLines(t *testing.T) {
	b := newTestBuffer("abcd")
	end := b.Insert(position.Pos{X: 2, Y: 0}, []rune("X\nY"), NoCursorHint)
	if b.LineCount() != 2 {
		t.Fatalf("expected insert of a newline to grow line count, got %d", b.LineCount())
	}
	if string(b.Line(0)) != "abX" || string(b.Line(1)) != "Ycd" {
		t.Fatalf("unexpected split: %q / %q", b.Line(0), b.Line(1))
	}
	if end != (position.Pos{X: 1, Y: 1}) {
		t.Fatalf("unexpected end position: %+v", end)
	}
}

// TestCursorRepairOnInsertSameLine is §4.F: an anchor on the same line at or
// after the insertion point shifts with the inserted text.
func TestCursorRepairOnInsertSameLine(t *testing.T) {
	b := newTestBuffer("abcdef")
	anchor := &position.Pos{X: 4, Y: 0}
	b.Track(anchor)

	b.Insert(position.Pos{X: 2, Y: 0}, []rune("XY"), NoCursorHint)

	if *anchor != (position.Pos{X: 6, Y: 0}) {
		t.Fatalf("expected anchor to shift by inserted width, got %+v", *anchor)
	}
}

// TestCursorRepairOnInsertMultiline checks an anchor after the insert
// point moves down and its column is rebased onto the new line (§4.F).
func TestCursorRepairOnInsertMultiline(t *testing.T) {
	b := newTestBuffer("abcdef")
	anchor := &position.Pos{X: 4, Y: 0}
	b.Track(anchor)

	b.Insert(position.Pos{X: 2, Y: 0}, []rune("X\nY"), NoCursorHint)

	if *anchor != (position.Pos{X: 3, Y: 1}) {
		t.Fatalf("expected anchor rebased onto new line, got %+v", *anchor)
	}
}

// TestCursorRepairOnDeleteCollapsesInsideRange is §4.F: an anchor inside
// the deleted range collapses to the delete's start.
func TestCursorRepairOnDeleteCollapsesInsideRange(t *testing.T) {
	b := newTestBuffer("abcdef")
	anchor := &position.Pos{X: 3, Y: 0}
	b.Track(anchor)

	b.Remove(position.Pos{X: 1, Y: 0}, position.Pos{X: 5, Y: 0}, NoCursorHint)

	if *anchor != (position.Pos{X: 1, Y: 0}) {
		t.Fatalf("expected anchor collapsed to delete start, got %+v", *anchor)
	}
}

func TestDeleteLineOnSingleLineBufferTruncates(t *testing.T) {
	b := newTestBuffer("only")
	b.DeleteLine(0, NoCursorHint)
	if b.LineCount() != 1 || b.LineLen(0) != 0 {
		t.Fatalf("expected truncation to empty line, got count=%d len=%d", b.LineCount(), b.LineLen(0))
	}
}

func TestDeleteLineRemovesWholeLine(t *testing.T) {
	b := newTestBuffer("a", "b", "c")
	b.DeleteLine(1, NoCursorHint)
	if b.LineCount() != 2 || string(b.Line(0)) != "a" || string(b.Line(1)) != "c" {
		t.Fatalf("unexpected result after deleting middle line: %d lines (%q, %q)", b.LineCount(), b.Line(0), b.Line(1))
	}
}

func TestDeleteCharBackwardJoinsLines(t *testing.T) {
	b := newTestBuffer("abc", "def")
	got := b.DeleteCharBackward(position.Pos{X: 0, Y: 1}, NoCursorHint)
	if b.LineCount() != 1 || string(b.Line(0)) != "abcdef" {
		t.Fatalf("expected join into single line, got %d lines: %q", b.LineCount(), b.Line(0))
	}
	if got != (position.Pos{X: 3, Y: 0}) {
		t.Fatalf("expected cursor to land at the join point, got %+v", got)
	}
}

func TestInsertTabUsesSpacesWhenConfigured(t *testing.T) {
	b := newTestBuffer("")
	b.TabWidth = 4
	b.InsertTab(position.Pos{X: 0, Y: 0}, NoCursorHint)
	if string(b.Line(0)) != "    " {
		t.Fatalf("expected 4 spaces, got %q", b.Line(0))
	}
}

func TestInsertTabUsesHardTabWhenZero(t *testing.T) {
	b := newTestBuffer("")
	b.TabWidth = 0
	b.InsertTab(position.Pos{X: 0, Y: 0}, NoCursorHint)
	if string(b.Line(0)) != "\t" {
		t.Fatalf("expected a literal tab, got %q", b.Line(0))
	}
}

func TestInsertNewlineTrimsTrailingWhitespace(t *testing.T) {
	b := newTestBuffer("foo   ")
	b.InsertNewline(position.Pos{X: 3, Y: 0}, NoCursorHint)
	if string(b.Line(0)) != "foo" {
		t.Fatalf("expected trailing whitespace trimmed before newline, got %q", b.Line(0))
	}
	if b.LineCount() != 2 {
		t.Fatalf("expected a new line, got %d", b.LineCount())
	}
}
