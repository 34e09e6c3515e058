package position

import "testing"

func TestAdvanceCrossesLineBoundary(t *testing.T) {
	lines := [][]int{{3}, {0}}
	lineLen := func(y int) int { return lines[y][0] }
	lineCount := func() int { return len(lines) }

	p, sat := Advance(Pos{X: 3, Y: 0}, lineLen, lineCount)
	if sat || p != (Pos{X: 0, Y: 1}) {
		t.Fatalf("expected wrap to (0,1), got %+v sat=%v", p, sat)
	}

	p, sat = Advance(Pos{X: 0, Y: 1}, lineLen, lineCount)
	if !sat || p != (Pos{X: 0, Y: 1}) {
		t.Fatalf("expected saturation at last position, got %+v sat=%v", p, sat)
	}
}

func TestAdvanceRCrossesLineBoundary(t *testing.T) {
	lineLen := func(y int) int {
		if y == 0 {
			return 5
		}
		return 0
	}
	p, sat := AdvanceR(Pos{X: 0, Y: 1}, lineLen)
	if sat || p != (Pos{X: 5, Y: 0}) {
		t.Fatalf("expected wrap to (5,0), got %+v sat=%v", p, sat)
	}
	p, sat = AdvanceR(Pos{X: 0, Y: 0}, lineLen)
	if !sat || p != (Pos{}) {
		t.Fatalf("expected saturation at origin, got %+v sat=%v", p, sat)
	}
}

func TestNormalizeOrdersPositions(t *testing.T) {
	lo, hi := Normalize(Pos{X: 5, Y: 2}, Pos{X: 0, Y: 0})
	if lo != (Pos{X: 0, Y: 0}) || hi != (Pos{X: 5, Y: 2}) {
		t.Fatalf("expected swap, got lo=%+v hi=%+v", lo, hi)
	}
	lo, hi = Normalize(Pos{X: 0, Y: 0}, Pos{X: 5, Y: 2})
	if lo != (Pos{X: 0, Y: 0}) || hi != (Pos{X: 5, Y: 2}) {
		t.Fatalf("expected unchanged order, got lo=%+v hi=%+v", lo, hi)
	}
}

func TestToVisualExpandsTabs(t *testing.T) {
	line := []rune("\tx")
	if v := ToVisual(line, 2, 4); v != 5 {
		t.Fatalf("expected tab to expand to column 4 then x at 5, got %d", v)
	}
}

func TestFromVisualInvertsToVisual(t *testing.T) {
	line := []rune("\tabc")
	for x := 0; x <= len(line); x++ {
		vx := ToVisual(line, x, 4)
		got := FromVisual(line, vx, 4)
		if got != x {
			t.Fatalf("FromVisual(ToVisual(%d)) = %d, want %d", x, got, x)
		}
	}
}
