package view

import (
	"github.com/cmantic/cmantic/internal/buffer"
	"github.com/cmantic/cmantic/internal/position"
)

// View is a BufferView (§4.H): a buffer pointer, a non-empty ordered
// cursor set, and a jumplist. Two cursors on the same position collapse
// (Deduplicate).
type View struct {
	Buf     *buffer.Buffer
	Cursors []*Cursor

	jumplist []*position.Pos
	jumpIdx  int

	// visualStart holds, per cursor (same index), the anchor position
	// captured on entering visual-selection mode; nil when that cursor
	// has no active visual selection.
	visualStart []*position.Pos
}

// New returns a view over b with a single primary cursor at (0,0).
func New(b *buffer.Buffer) *View {
	v := &View{Buf: b}
	c := newCursor(position.Pos{})
	b.Track(&c.Pos)
	v.Cursors = []*Cursor{c}
	v.visualStart = []*position.Pos{nil}
	return v
}

// Primary returns the first (primary) cursor.
func (v *View) Primary() *Cursor { return v.Cursors[0] }

// AddCursor adds a new cursor at p, tracked against the buffer so §4.F
// repair reaches it.
func (v *View) AddCursor(p position.Pos) *Cursor {
	p = v.Buf.Clamp(p)
	c := newCursor(p)
	v.Buf.Track(&c.Pos)
	v.Cursors = append(v.Cursors, c)
	v.visualStart = append(v.visualStart, nil)
	return c
}

// CollapseCursors drops every cursor but the primary one.
func (v *View) CollapseCursors() {
	if len(v.Cursors) <= 1 {
		return
	}
	primary := v.Cursors[0]
	for _, c := range v.Cursors[1:] {
		v.Buf.Untrack(&c.Pos)
	}
	v.Cursors = []*Cursor{primary}
	v.visualStart = []*position.Pos{v.visualStart[0]}
}

// DeduplicateCursors collapses cursors sharing a position, keeping the
// first occurrence (§3 BufferView invariant).
func (v *View) DeduplicateCursors() {
	seen := make(map[position.Pos]bool, len(v.Cursors))
	out := v.Cursors[:0]
	outVS := v.visualStart[:0]
	for i, c := range v.Cursors {
		if seen[c.Pos] {
			v.Buf.Untrack(&c.Pos)
			continue
		}
		seen[c.Pos] = true
		out = append(out, c)
		outVS = append(outVS, v.visualStart[i])
	}
	v.Cursors = out
	v.visualStart = outVS
}

// StartVisual captures the current position of every cursor as its
// visual-selection anchor (the `s` key, §4.J).
func (v *View) StartVisual() {
	for i, c := range v.Cursors {
		if v.visualStart[i] != nil {
			v.Buf.Untrack(v.visualStart[i])
		}
		p := c.Pos
		v.Buf.Track(&p)
		v.visualStart[i] = &p
	}
}

// ClearVisual drops every cursor's visual-selection anchor.
func (v *View) ClearVisual() {
	for i, p := range v.visualStart {
		if p != nil {
			v.Buf.Untrack(p)
			v.visualStart[i] = nil
		}
	}
}

// VisualRange returns the normalized [lo,hi) span between cursor i's
// visual-start anchor and its current position, and whether that cursor
// has an active anchor.
func (v *View) VisualRange(i int) (position.Range, bool) {
	if v.visualStart[i] == nil {
		return position.Range{}, false
	}
	lo, hi := position.Normalize(*v.visualStart[i], v.Cursors[i].Pos)
	return position.Range{A: lo, B: hi}, true
}

// DescendingOrder returns cursor indices ordered by descending position,
// so multi-cursor edits can be applied without earlier edits invalidating
// later cursors' positions on the same or later lines.
func (v *View) DescendingOrder() []int {
	idx := make([]int, len(v.Cursors))
	for i := range idx {
		idx[i] = i
	}
	for i := 1; i < len(idx); i++ {
		for j := i; j > 0 && v.Cursors[idx[j-1]].Pos.Less(v.Cursors[idx[j]].Pos); j-- {
			idx[j], idx[j-1] = idx[j-1], idx[j]
		}
	}
	return idx
}
