package elog

import "testing"

func TestRingBufferCaps(t *testing.T) {
	l, err := New(2, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Log("A", "one")
	l.Log("A", "two")
	l.Log("A", "three")

	recent := l.Recent()
	if len(recent) != 2 {
		t.Fatalf("expected ring buffer capped at 2, got %d", len(recent))
	}
	if recent[0].Text != "two" || recent[1].Text != "three" {
		t.Fatalf("unexpected ring contents: %+v", recent)
	}
}
