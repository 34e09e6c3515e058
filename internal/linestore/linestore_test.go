package linestore

import "testing"

func TestNewHasSingleEmptyLine(t *testing.T) {
	s := New()
	if s.Len() != 1 || s.LineLen(0) != 0 {
		t.Fatalf("expected single empty line, got len=%d line0len=%d", s.Len(), s.LineLen(0))
	}
}

func TestSplitAndJoinRoundTrip(t *testing.T) {
	s := FromLines([][]rune{[]rune("abcdef")})
	s.Split(0, 3)
	if s.Len() != 2 || string(s.Line(0)) != "abc" || string(s.Line(1)) != "def" {
		t.Fatalf("unexpected split result: %q %q", s.Line(0), s.Line(1))
	}
	s.Join(0)
	if s.Len() != 1 || string(s.Line(0)) != "abcdef" {
		t.Fatalf("join did not reconstruct original line, got %q (len %d)", s.Line(0), s.Len())
	}
}

func TestDeleteLastLineTruncatesInstead(t *testing.T) {
	s := FromLines([][]rune{[]rune("only")})
	s.Delete(0)
	if s.Len() != 1 || s.LineLen(0) != 0 {
		t.Fatalf("expected single-line buffer to truncate rather than vanish, got len=%d linelen=%d", s.Len(), s.LineLen(0))
	}
}

func TestInsertBytesClampsColumn(t *testing.T) {
	s := FromLines([][]rune{[]rune("ab")})
	s.InsertBytes(0, 99, []rune("X"))
	if string(s.Line(0)) != "abX" {
		t.Fatalf("expected out-of-range insert clamped to line end, got %q", s.Line(0))
	}
}

func TestRemoveBytesNoopOnEmptyRange(t *testing.T) {
	s := FromLines([][]rune{[]rune("abc")})
	s.RemoveBytes(0, 2, 2)
	if string(s.Line(0)) != "abc" {
		t.Fatalf("expected no-op on empty range, got %q", s.Line(0))
	}
}
