package mode

import (
	"testing"

	"github.com/cmantic/cmantic/internal/buffer"
	"github.com/cmantic/cmantic/internal/position"
	"github.com/cmantic/cmantic/internal/token"
	"github.com/cmantic/cmantic/internal/view"
)

// fakeClip is an in-memory Clipboard stub for tests that never talk to
// the real OS clipboard.
type fakeClip struct{ text string }

func (c *fakeClip) Set(s string) error { c.text = s; return nil }
func (c *fakeClip) Get() (string, error) { return c.text, nil }

func newTestState(lines ...string) (*State, *fakeClip) {
	return newTestStateLang(token.Text, lines...)
}

func newTestStateLang(lang token.Language, lines ...string) (*State, *fakeClip) {
	text := ""
	for i, l := range lines {
		if i > 0 {
			text += "\n"
		}
		text += l
	}
	b := buffer.FromBytes("test", []byte(text), buffer.LF, lang)
	v := view.New(b)
	clip := &fakeClip{}
	return New(v, clip, b), clip
}

func typeString(s *State, str string) {
	for _, r := range str {
		s.Handle(Key{Rune: r})
	}
}

// TestScratchTypeThenEsc is spec scenario A: typing into a fresh scratch
// buffer and pressing Esc leaves the primary cursor at the end of the
// typed text and marks the buffer modified.
func TestScratchTypeThenEsc(t *testing.T) {
	s, _ := newTestState("")
	s.Handle(Key{Rune: 'i'})
	typeString(s, "hello")
	s.Handle(Key{Name: KeyEsc})

	if s.Mode != Normal {
		t.Fatalf("expected Normal mode after Esc, got %v", s.Mode)
	}
	if string(s.View.Buf.Line(0)) != "hello" {
		t.Fatalf("unexpected buffer content: %q", s.View.Buf.Line(0))
	}
	if s.View.Primary().Pos != (position.Pos{X: 5, Y: 0}) {
		t.Fatalf("unexpected cursor position: %+v", s.View.Primary().Pos)
	}
	if !s.View.Buf.Journal.Modified() {
		t.Fatalf("expected buffer to be marked modified")
	}
}

// TestMultiCursorType is spec scenario C: typing one rune with two
// cursors active inserts it at both and advances both.
func TestMultiCursorType(t *testing.T) {
	s, _ := newTestState("abc", "def")
	s.View.Primary().Pos = position.Pos{X: 3, Y: 0}
	s.View.AddCursor(position.Pos{X: 3, Y: 1})

	s.Handle(Key{Rune: 'i'})
	s.Handle(Key{Rune: 'X'})

	if string(s.View.Buf.Line(0)) != "abcX" || string(s.View.Buf.Line(1)) != "defX" {
		t.Fatalf("unexpected buffer state: %q / %q", s.View.Buf.Line(0), s.View.Buf.Line(1))
	}
	if s.View.Cursors[0].Pos != (position.Pos{X: 4, Y: 0}) || s.View.Cursors[1].Pos != (position.Pos{X: 4, Y: 1}) {
		t.Fatalf("unexpected cursor positions: %+v, %+v", s.View.Cursors[0].Pos, s.View.Cursors[1].Pos)
	}
}

// TestVisualSelectDeleteAndUndo is spec scenario D, driven through the
// key sequence rather than calling View.DeleteRange directly: `s`, move
// down twice, `d` must delete every visually-spanned line and yank it,
// and `u` must restore the original buffer and cursor.
func TestVisualSelectDeleteAndUndo(t *testing.T) {
	s, clip := newTestState("a", "b", "c")
	origCursor := s.View.Primary().Pos

	s.Handle(Key{Rune: 's'})
	s.Handle(Key{Name: KeyArrowDown})
	s.Handle(Key{Name: KeyArrowDown})
	s.Handle(Key{Rune: 'd'})

	if s.View.Buf.LineCount() != 1 || s.View.Buf.LineLen(0) != 0 {
		t.Fatalf("expected a single empty line after the visual delete, got %d lines: %q", s.View.Buf.LineCount(), s.View.Buf.Line(0))
	}
	if clip.text != "a\nb\nc" {
		t.Fatalf("expected clipboard to hold a\\nb\\nc, got %q", clip.text)
	}
	if s.Mode != Normal {
		t.Fatalf("expected Normal mode after the operator applied, got %v", s.Mode)
	}

	if !s.View.Undo() {
		t.Fatalf("expected undo to succeed")
	}
	if s.View.Buf.LineCount() != 3 || string(s.View.Buf.Line(0)) != "a" || string(s.View.Buf.Line(1)) != "b" || string(s.View.Buf.Line(2)) != "c" {
		t.Fatalf("undo did not restore the original buffer: %d lines", s.View.Buf.LineCount())
	}
	if s.View.Primary().Pos != origCursor {
		t.Fatalf("undo did not restore the original cursor, got %+v want %+v", s.View.Primary().Pos, origCursor)
	}
}

// TestGotoDefinitionJumpsToSpan is spec scenario E: `g` then `d` on an
// identifier jumps the primary cursor to the start of its definition.
func TestGotoDefinitionJumpsToSpan(t *testing.T) {
	s, _ := newTestStateLang(token.CFamily, "int main() { return 0; }")
	s.View.MoveTo(position.Pos{X: 4, Y: 0}) // inside "main"

	s.Handle(Key{Rune: 'g'})
	s.Handle(Key{Rune: 'd'})

	want, ok := s.View.Buf.FindDefinition("main")
	if !ok {
		t.Fatalf("expected a definition for main to be found")
	}
	if s.View.Primary().Pos != want.A {
		t.Fatalf("goto-definition landed at %+v, want %+v", s.View.Primary().Pos, want.A)
	}
}

// TestAutoIndentOnNewline is spec scenario B: pressing Enter at the end
// of an opening brace line indents the new line one level deeper.
func TestAutoIndentOnNewline(t *testing.T) {
	s, _ := newTestState("if (x) {", "    ")
	s.View.Buf.TabWidth = 4
	s.View.MoveTo(position.Pos{X: s.View.Buf.LineLen(0), Y: 0})
	s.Handle(Key{Rune: 'i'})

	s.Handle(Key{Name: KeyEnter})

	if got := string(s.View.Buf.Line(1)); len(got) < 4 || got[:4] != "    " {
		t.Fatalf("expected new line to carry deeper indent, got %q", got)
	}
}

// TestDeleteWholeLineSelector exercises the ` ` (space) selector in
// Delete mode: `d `, ` ` deletes the whole current line.
func TestDeleteWholeLineSelector(t *testing.T) {
	s, _ := newTestState("abc", "def")
	s.Handle(Key{Rune: 'd'})
	s.Handle(Key{Rune: ' '})

	if s.View.Buf.LineCount() != 1 || string(s.View.Buf.Line(0)) != "def" {
		t.Fatalf("expected only the first line removed, got %d lines, first=%q", s.View.Buf.LineCount(), s.View.Buf.Line(0))
	}
}

// TestDeleteAWordObject exercises the `aw` object selector, distinct
// from the motion-based `dw`: it takes the whole word under the cursor
// regardless of direction, plus trailing separator whitespace.
func TestDeleteAWordObject(t *testing.T) {
	s, _ := newTestState("foo bar baz")
	s.View.MoveTo(position.Pos{X: 5, Y: 0}) // inside "bar"

	s.Handle(Key{Rune: 'd'})
	s.Handle(Key{Rune: 'a'})
	s.Handle(Key{Rune: 'w'})

	if string(s.View.Buf.Line(0)) != "foo baz" {
		t.Fatalf("expected aw to remove the whole word plus trailing space, got %q", s.View.Buf.Line(0))
	}
}

// TestTabCompletesPendingIdentifier exercises §4.J's Tab contract:
// Tab autocompletes when a matching identifier exists.
func TestTabCompletesPendingIdentifier(t *testing.T) {
	s, _ := newTestState("quantity", "")
	s.View.MoveTo(position.Pos{X: 0, Y: 1})
	s.Handle(Key{Rune: 'i'})

	typeString(s, "qua")
	s.Handle(Key{Name: KeyTab})

	if string(s.View.Buf.Line(1)) != "quantity" {
		t.Fatalf("expected Tab to complete to quantity, got %q", s.View.Buf.Line(1))
	}
}
