// Package view implements BufferView (§4.H): a buffer pointer plus a
// deduplicated, non-empty set of cursors, a jumplist, and the bulk
// motions/edits that operate across every cursor in order.
package view

import (
	"github.com/cmantic/cmantic/internal/buffer"
	"github.com/cmantic/cmantic/internal/position"
)

// Cursor is (x, y, ghost_x) per §3. Ghost is either a concrete visual
// column (the column a horizontal motion last set) or one of the
// position package's GhostEOL/GhostBOL sentinels, meaning "snap to
// end/beginning of line on every vertical move".
type Cursor struct {
	Pos   position.Pos
	Ghost int
}

// newCursor allocates a heap-resident Cursor (never copied into a value
// slice) so the buffer can safely hold &c.Pos as a long-lived anchor.
func newCursor(p position.Pos) *Cursor {
	return &Cursor{Pos: p, Ghost: p.X}
}

// refreshGhost sets Ghost to the cursor's current visual column,
// matching §4.F's "ghost_x is refreshed to equal x after any repair".
func (c *Cursor) refreshGhost(v *View) {
	line := v.Buf.Line(c.Pos.Y)
	c.Ghost = position.ToVisual(line, c.Pos.X, v.Buf.TabWidth)
}

// RefreshGhosts refreshes every cursor's ghost column, not just the one
// that performed an edit: a mutation's repair pass can shift other
// cursors sharing its line (§4.F), and their ghost must track that too.
func (v *View) RefreshGhosts() {
	for _, c := range v.Cursors {
		c.refreshGhost(v)
	}
}
