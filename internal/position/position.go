// Package position implements the logical/visual cursor-position algebra
// described in the buffer spec: advancing/retreating one legal position,
// tab-aware visual-column conversion, and half-open range normalization.
//
// Visual-column math is delegated to go-runewidth so that wide runes and
// combining marks are handled the way a real terminal renders them, rather
// than assuming one cell per code point.
package position

import "github.com/mattn/go-runewidth"

// Ghost-column sentinels: a cursor's preferred column when moving
// vertically can be a concrete visual column, or one of these two markers
// meaning "always snap to this line's extremity".
const (
	GhostNone = -1
	GhostEOL  = -2
	GhostBOL  = -3
)

// Pos is a logical buffer position: X is a rune (code-point) column, Y a
// line index.
type Pos struct {
	X, Y int
}

// Range is a half-open span [A, B).
type Range struct {
	A, B Pos
}

// Less reports whether p sorts before q (by line, then column).
func (p Pos) Less(q Pos) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// Equal reports positional equality.
func (p Pos) Equal(q Pos) bool { return p.X == q.X && p.Y == q.Y }

// Normalize returns (lo, hi) such that lo is not after hi.
func Normalize(a, b Pos) (Pos, Pos) {
	if b.Less(a) {
		return b, a
	}
	return a, b
}

// LineLen abstracts over the buffer's line-length lookup so this package
// does not need to import the line store directly.
type LineLen func(y int) int

// LineCount abstracts over the buffer's line-count lookup.
type LineCount func() int

// Advance moves to the next legal position, crossing a line boundary at
// end-of-line. The second return value is true if p was already the last
// legal position (end of the last line) and advancing saturated.
func Advance(p Pos, lineLen LineLen, lineCount LineCount) (Pos, bool) {
	n := lineCount()
	if p.Y >= n-1 && p.X >= lineLen(p.Y) {
		return p, true
	}
	if p.X >= lineLen(p.Y) {
		return Pos{X: 0, Y: p.Y + 1}, false
	}
	return Pos{X: p.X + 1, Y: p.Y}, false
}

// AdvanceR moves to the previous legal position, crossing a line boundary
// at beginning-of-line. Saturates at (0,0).
func AdvanceR(p Pos, lineLen LineLen) (Pos, bool) {
	if p.X == 0 && p.Y == 0 {
		return p, true
	}
	if p.X == 0 {
		py := p.Y - 1
		return Pos{X: lineLen(py), Y: py}, false
	}
	return Pos{X: p.X - 1, Y: p.Y}, false
}

// ToVisual maps a logical rune column on a given line to its visual
// (screen) column: tabs expand to the next multiple of tabWidth, and
// multi-cell runes (as judged by go-runewidth) advance by their display
// width. tabWidth <= 0 falls back to tab stops every 8 columns.
func ToVisual(line []rune, x, tabWidth int) int {
	if x > len(line) {
		x = len(line)
	}
	visual := 0
	for i := 0; i < x; i++ {
		visual += cellWidth(line[i], visual, tabWidth)
	}
	return visual
}

// FromVisual inverts ToVisual: given a target visual column on a line,
// returns the logical rune column whose visual position is closest without
// exceeding vx.
func FromVisual(line []rune, vx, tabWidth int) int {
	visual := 0
	for i, r := range line {
		w := cellWidth(r, visual, tabWidth)
		if visual+w > vx {
			return i
		}
		visual += w
	}
	return len(line)
}

func cellWidth(r rune, currentVisualCol, tabWidth int) int {
	if r == '\t' {
		if tabWidth <= 0 {
			tabWidth = 8
		}
		return tabWidth - (currentVisualCol % tabWidth)
	}
	w := runewidth.RuneWidth(r)
	if w <= 0 {
		return 1
	}
	return w
}
