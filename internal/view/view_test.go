package view

import (
	"testing"

	"github.com/cmantic/cmantic/internal/buffer"
	"github.com/cmantic/cmantic/internal/position"
	"github.com/cmantic/cmantic/internal/token"
)

func newTestView(lines ...string) *View {
	text := ""
	for i, l := range lines {
		if i > 0 {
			text += "\n"
		}
		text += l
	}
	b := buffer.FromBytes("test", []byte(text), buffer.LF, token.Text)
	return New(b)
}

// TestMultiCursorTypeScenario is spec scenario C: two cursors at (3,0)
// and (3,1), typing 'X' produces ["abcX","defX"] with both cursors
// advanced.
func TestMultiCursorTypeScenario(t *testing.T) {
	v := newTestView("abc", "def")
	v.Primary().Pos = position.Pos{X: 3, Y: 0}
	v.AddCursor(position.Pos{X: 3, Y: 1})

	v.InsertRune('X')

	if string(v.Buf.Line(0)) != "abcX" || string(v.Buf.Line(1)) != "defX" {
		t.Fatalf("unexpected buffer state: %q / %q", v.Buf.Line(0), v.Buf.Line(1))
	}
	if v.Cursors[0].Pos != (position.Pos{X: 4, Y: 0}) || v.Cursors[1].Pos != (position.Pos{X: 4, Y: 1}) {
		t.Fatalf("unexpected cursor positions: %+v, %+v", v.Cursors[0].Pos, v.Cursors[1].Pos)
	}
}

func TestDeduplicateCursorsCollapsesSamePosition(t *testing.T) {
	v := newTestView("abcdef")
	v.AddCursor(position.Pos{X: 0, Y: 0})
	v.DeduplicateCursors()
	if len(v.Cursors) != 1 {
		t.Fatalf("expected cursors on the same position to collapse, got %d", len(v.Cursors))
	}
}

// TestUndoRoundTripRestoresBufferAndCursor mirrors spec scenario D: a visual-line
// delete, then undo restores the original buffer and primary cursor.
func TestUndoRoundTripRestoresBufferAndCursor(t *testing.T) {
	v := newTestView("a", "b", "c")
	origCursor := v.Primary().Pos

	r := position.Range{A: position.Pos{X: 0, Y: 0}, B: position.Pos{X: 0, Y: 3}}
	clip, changed := v.DeleteRange(r, 0)
	if !changed || clip != "a\nb\nc" {
		t.Fatalf("expected delete to populate clipboard with a\\nb\\nc, got %q", clip)
	}
	if v.Buf.LineCount() != 1 || v.Buf.LineLen(0) != 0 {
		t.Fatalf("expected single empty line after deleting everything, got %d lines", v.Buf.LineCount())
	}

	if !v.Undo() {
		t.Fatalf("expected undo to succeed")
	}
	if v.Buf.LineCount() != 3 || string(v.Buf.Line(0)) != "a" || string(v.Buf.Line(1)) != "b" || string(v.Buf.Line(2)) != "c" {
		t.Fatalf("undo did not restore original buffer: %d lines", v.Buf.LineCount())
	}
	if v.Primary().Pos != origCursor {
		t.Fatalf("undo did not restore original cursor, got %+v want %+v", v.Primary().Pos, origCursor)
	}
}

func TestJumplistSkipsEntryEqualToCurrentCursor(t *testing.T) {
	v := newTestView("a", "b", "c")
	v.PushJump(position.Pos{X: 0, Y: 0})
	v.MoveTo(position.Pos{X: 0, Y: 2})
	v.PushJump(position.Pos{X: 0, Y: 1})
	v.MoveTo(position.Pos{X: 0, Y: 1})

	p, ok := v.JumpBack()
	if !ok {
		t.Fatalf("expected a jump back to succeed")
	}
	if p.Y == 1 {
		t.Fatalf("jump back landed on the current cursor's own position instead of skipping it")
	}
}

func TestGhostColumnSurvivesShorterIntermediateLine(t *testing.T) {
	v := newTestView("abcdef", "xy", "ghijkl")
	v.MoveTo(position.Pos{X: 5, Y: 0})
	v.MoveY(1) // line 1 is shorter; x clamps but ghost is remembered
	v.MoveY(1) // line 2 is long enough again; x should return to 5
	if v.Primary().Pos.X != 5 {
		t.Fatalf("expected ghost column to restore x=5 on a long enough line, got %d", v.Primary().Pos.X)
	}
}
