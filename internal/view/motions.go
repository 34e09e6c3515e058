package view

import "github.com/cmantic/cmantic/internal/position"

// MoveX moves every cursor dx logical columns within its current line,
// clamped to [0, line length]. Ghost is refreshed to the resulting
// visual column (a horizontal motion always sets a concrete ghost,
// never a sentinel).
func (v *View) MoveX(dx int) {
	for _, c := range v.Cursors {
		n := v.Buf.LineLen(c.Pos.Y)
		x := c.Pos.X + dx
		if x < 0 {
			x = 0
		}
		if x > n {
			x = n
		}
		c.Pos.X = x
		c.refreshGhost(v)
	}
}

// MoveY moves every cursor dy lines, restoring each cursor's ghost
// column (or snapping to BOL/EOL for the sentinel ghosts) rather than
// its raw x, per §3's ghost-column contract.
func (v *View) MoveY(dy int) {
	for _, c := range v.Cursors {
		y := c.Pos.Y + dy
		n := v.Buf.LineCount()
		if y < 0 {
			y = 0
		}
		if y >= n {
			y = n - 1
		}
		c.Pos.Y = y
		v.snapToGhost(c)
	}
}

// snapToGhost sets c.Pos.X from c.Ghost on the cursor's current line,
// without touching Ghost itself (vertical motion preserves it).
func (v *View) snapToGhost(c *Cursor) {
	line := v.Buf.Line(c.Pos.Y)
	switch c.Ghost {
	case position.GhostEOL:
		c.Pos.X = len(line)
	case position.GhostBOL:
		c.Pos.X = 0
	default:
		c.Pos.X = position.FromVisual(line, c.Ghost, v.Buf.TabWidth)
	}
}

// MoveTo moves the primary cursor to an absolute position and refreshes
// its ghost.
func (v *View) MoveTo(p position.Pos) {
	c := v.Primary()
	c.Pos = v.Buf.Clamp(p)
	c.refreshGhost(v)
}

// Advance moves every cursor to the next legal position, crossing line
// boundaries (§4.B advance).
func (v *View) Advance() {
	for _, c := range v.Cursors {
		p, _ := position.Advance(c.Pos, v.Buf.LineLen, v.Buf.LineCount)
		c.Pos = p
		c.refreshGhost(v)
	}
}

// AdvanceR moves every cursor to the previous legal position (§4.B
// advance_r).
func (v *View) AdvanceR() {
	for _, c := range v.Cursors {
		p, _ := position.AdvanceR(c.Pos, v.Buf.LineLen)
		c.Pos = p
		c.refreshGhost(v)
	}
}

// GotoBeginLine moves every cursor to column 0 and sets its ghost to the
// BOL sentinel, so subsequent vertical motion keeps snapping there.
func (v *View) GotoBeginLine() {
	for _, c := range v.Cursors {
		c.Pos.X = 0
		c.Ghost = position.GhostBOL
	}
}

// GotoEndLine moves every cursor to its line's virtual end-of-line
// column and sets its ghost to the EOL sentinel.
func (v *View) GotoEndLine() {
	for _, c := range v.Cursors {
		c.Pos.X = v.Buf.LineLen(c.Pos.Y)
		c.Ghost = position.GhostEOL
	}
}

// GotoFirstNonBlank moves every cursor to the first non-whitespace
// column of its line (0 if the line is blank).
func (v *View) GotoFirstNonBlank() {
	for _, c := range v.Cursors {
		line := v.Buf.Line(c.Pos.Y)
		x := 0
		for x < len(line) && (line[x] == ' ' || line[x] == '\t') {
			x++
		}
		c.Pos.X = x
		c.refreshGhost(v)
	}
}
