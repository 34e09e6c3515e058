package undo

import (
	"reflect"
	"testing"

	"github.com/cmantic/cmantic/internal/position"
)

// fakeApplier is a minimal line-of-text buffer driven only by the
// Insert/Remove/SetCursors calls Undo/Redo issue, so these tests can
// assert the journal's replay logic in isolation from internal/buffer.
type fakeApplier struct {
	text    []rune
	cursors []CursorState
}

func (f *fakeApplier) Insert(at position.Pos, text []rune) {
	f.text = append(append(append([]rune{}, f.text[:at.X]...), text...), f.text[at.X:]...)
}

func (f *fakeApplier) Remove(a, b position.Pos) {
	f.text = append(append([]rune{}, f.text[:a.X]...), f.text[b.X:]...)
}

func (f *fakeApplier) SetCursors(cs []CursorState) { f.cursors = cs }

func TestGroupRoundTripsViaUndoRedo(t *testing.T) {
	j := NewJournal()
	f := &fakeApplier{text: []rune("abc")}

	j.Begin([]CursorState{{X: 3, Y: 0}})
	j.RecordInsert(position.Range{A: position.Pos{X: 3}, B: position.Pos{X: 6}}, []rune("XYZ"), 0)
	f.text = []rune("abcXYZ")
	j.End([]CursorState{{X: 6, Y: 0}})

	if string(f.text) != "abcXYZ" {
		t.Fatalf("setup failed: %q", f.text)
	}

	if !j.Undo(f) {
		t.Fatalf("expected a group to undo")
	}
	if string(f.text) != "abc" {
		t.Fatalf("undo did not remove inserted text, got %q", f.text)
	}
	if !reflect.DeepEqual(f.cursors, []CursorState{{X: 3, Y: 0}}) {
		t.Fatalf("undo did not restore entering cursor snapshot, got %+v", f.cursors)
	}

	if !j.Redo(f) {
		t.Fatalf("expected a group to redo")
	}
	if string(f.text) != "abcXYZ" {
		t.Fatalf("redo did not reapply inserted text, got %q", f.text)
	}
}

func TestEmptyGroupIsPopped(t *testing.T) {
	j := NewJournal()
	j.Begin([]CursorState{{X: 0, Y: 0}})
	j.End([]CursorState{{X: 0, Y: 0}})

	if j.CanUndo() {
		t.Fatalf("expected a no-op group to leave nothing to undo")
	}
}

func TestFreshMutationTruncatesRedoTailAndInvalidatesClean(t *testing.T) {
	j := NewJournal()
	f := &fakeApplier{}

	j.Begin(nil)
	j.RecordInsert(position.Range{}, []rune("a"), -1)
	j.End(nil)
	j.MarkClean()

	j.Undo(f)
	if !j.CanRedo() {
		t.Fatalf("expected a redo-able group after undo")
	}

	j.Begin(nil)
	j.RecordInsert(position.Range{}, []rune("b"), -1)
	j.End(nil)

	if j.CanRedo() {
		t.Fatalf("expected the redo tail to be truncated by a fresh mutation")
	}
	if !j.Modified() {
		t.Fatalf("expected the clean index to be invalidated by the truncation")
	}
}

func TestClipboardEmittedOnlyForPureDeleteGroup(t *testing.T) {
	j := NewJournal()

	j.Begin(nil)
	j.RecordDelete(position.Range{}, []rune("yanked"), 0)
	clip, changed := j.End(nil)
	if !changed || clip != "yanked" {
		t.Fatalf("expected pure-delete group to emit clipboard text, got clip=%q changed=%v", clip, changed)
	}

	j2 := NewJournal()
	j2.Begin(nil)
	j2.RecordDelete(position.Range{}, []rune("old"), 0)
	j2.RecordInsert(position.Range{}, []rune("new"), 0)
	clip2, changed2 := j2.End(nil)
	if !changed2 || clip2 != "" {
		t.Fatalf("expected a group containing an insert to not emit clipboard text, got clip=%q", clip2)
	}
}

func TestClipboardSplitsByCursorHintAndJoinsWithNewline(t *testing.T) {
	j := NewJournal()
	j.Begin(nil)
	j.RecordDelete(position.Range{}, []rune("a"), 0)
	j.RecordDelete(position.Range{}, []rune("b"), 1)
	clip, changed := j.End(nil)
	if !changed || clip != "a\nb" {
		t.Fatalf("expected per-cursor deletes joined by newline, got %q", clip)
	}
}
