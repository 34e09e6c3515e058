package pane

// statusStripHeight is the fixed single-line strip every frame reserves
// at the bottom of the window for the status pane (§4.K: "the root
// fills the window minus the status-pane strip").
const statusStripHeight = 1

// Reflow recomputes every pane's Rect for a window of size w x h. The
// root fills the window minus the status strip; each container node
// splits its remaining space among its children proportionally to their
// weights, stacking vertically or horizontally per its Vertical flag.
// Dropdown panes are skipped here (PositionDropdown positions them
// relative to an anchor instead) since they float rather than occupy a
// share of their parent.
func (a *Arena) Reflow(w, h int) {
	usable := h - statusStripHeight
	if usable < 0 {
		usable = 0
	}
	a.layout(a.root, Rect{X: 0, Y: 0, W: w, H: usable})
}

func (a *Arena) layout(idx int, r Rect) {
	n := &a.nodes[idx]
	n.Rect = r
	if len(n.Children) == 0 {
		return
	}

	total := 0.0
	for _, c := range n.Children {
		if a.nodes[c].Kind == Dropdown {
			continue
		}
		total += a.nodes[c].Weight
	}
	if total <= 0 {
		total = 1
	}

	offset := 0
	for i, c := range n.Children {
		if a.nodes[c].Kind == Dropdown {
			a.layout(c, r)
			continue
		}
		share := a.nodes[c].Weight / total
		var childRect Rect
		if n.Vertical {
			ch := int(float64(r.H) * share)
			if i == len(n.Children)-1 {
				ch = r.H - offset
			}
			childRect = Rect{X: r.X, Y: r.Y + offset, W: r.W, H: ch}
			offset += ch
		} else {
			cw := int(float64(r.W) * share)
			if i == len(n.Children)-1 {
				cw = r.W - offset
			}
			childRect = Rect{X: r.X + offset, Y: r.Y, W: cw, H: r.H}
			offset += cw
		}
		a.layout(c, childRect)
	}
}

// PositionDropdown anchors a dropdown pane just below anchor, clamped to
// stay within the window (w x h).
func (a *Arena) PositionDropdown(idx int, anchor Rect, w, h int) {
	n := &a.nodes[idx]
	n.DropdownAnchor = anchor
	rect := Rect{X: anchor.X, Y: anchor.Y + 1, W: anchor.W, H: n.Rect.H}
	if rect.H == 0 {
		rect.H = 6
	}
	if rect.Y+rect.H > h {
		rect.H = h - rect.Y
	}
	if rect.X+rect.W > w {
		rect.X = w - rect.W
	}
	if rect.X < 0 {
		rect.X = 0
	}
	n.Rect = rect
}
