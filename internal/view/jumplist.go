package view

import "github.com/cmantic/cmantic/internal/position"

// PushJump pushes p onto the jumplist, de-duplicating consecutive equal
// entries (§4.H). The new entry is tracked against the buffer so §4.F
// repairs it like any other anchor.
func (v *View) PushJump(p position.Pos) {
	if n := len(v.jumplist); n > 0 && *v.jumplist[n-1] == p {
		return
	}
	cp := p
	v.Buf.Track(&cp)
	v.jumplist = append(v.jumplist, &cp)
	v.jumpIdx = len(v.jumplist)
}

// JumpBack moves the jumplist index backward and re-seats the primary
// cursor there, skipping entries equal to the cursor's current position.
func (v *View) JumpBack() (position.Pos, bool) {
	for v.jumpIdx > 0 {
		v.jumpIdx--
		p := *v.jumplist[v.jumpIdx]
		if p != v.Primary().Pos {
			v.MoveTo(p)
			return p, true
		}
	}
	return position.Pos{}, false
}

// JumpForward moves the jumplist index forward and re-seats the primary
// cursor there, skipping entries equal to the cursor's current position.
func (v *View) JumpForward() (position.Pos, bool) {
	for v.jumpIdx < len(v.jumplist)-1 {
		v.jumpIdx++
		p := *v.jumplist[v.jumpIdx]
		if p != v.Primary().Pos {
			v.MoveTo(p)
			return p, true
		}
	}
	return position.Pos{}, false
}

// Find runs a linear forward or backward search for needle from the
// primary cursor, moving it to the match on success. Find operates on
// the primary cursor only (§4.H). Both the pre-jump and post-jump
// positions are pushed to the jumplist on success.
func (v *View) Find(needle string, forward bool) bool {
	if needle == "" {
		return false
	}
	from := v.Primary().Pos
	match, ok := v.search(needle, from, forward)
	if !ok {
		return false
	}
	v.PushJump(from)
	v.MoveTo(match)
	v.PushJump(match)
	return true
}

// FindFrom moves the primary cursor to the nearest match of needle
// starting the search at from, without touching the jumplist, for Search
// mode's live-preview-as-you-type behavior (§4.J).
func (v *View) FindFrom(from position.Pos, needle string, forward bool) bool {
	if needle == "" {
		return false
	}
	match, ok := v.search(needle, from, forward)
	if !ok {
		return false
	}
	v.MoveTo(match)
	return true
}

func (v *View) search(needle string, from position.Pos, forward bool) (position.Pos, bool) {
	n := v.Buf.LineCount()
	needleRunes := []rune(needle)
	if forward {
		y, x := from.Y, from.X+1
		for i := 0; i < n; i++ {
			line := v.Buf.Line(y)
			if m, ok := indexRunes(line, needleRunes, x); ok {
				return position.Pos{X: m, Y: y}, true
			}
			y = (y + 1) % n
			x = 0
		}
		return position.Pos{}, false
	}
	y, x := from.Y, from.X-1
	for i := 0; i < n; i++ {
		line := v.Buf.Line(y)
		if x < 0 {
			x = len(line)
		}
		if m, ok := lastIndexRunes(line, needleRunes, x); ok {
			return position.Pos{X: m, Y: y}, true
		}
		y--
		if y < 0 {
			y = n - 1
		}
		x = -1
	}
	return position.Pos{}, false
}

func indexRunes(line, needle []rune, from int) (int, bool) {
	if from < 0 {
		from = 0
	}
	for i := from; i+len(needle) <= len(line); i++ {
		if runesEqual(line[i:i+len(needle)], needle) {
			return i, true
		}
	}
	return 0, false
}

func lastIndexRunes(line, needle []rune, before int) (int, bool) {
	if before > len(line) {
		before = len(line)
	}
	for i := before - len(needle); i >= 0; i-- {
		if runesEqual(line[i:i+len(needle)], needle) {
			return i, true
		}
	}
	return 0, false
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
