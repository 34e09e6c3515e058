package mode

import (
	"github.com/cmantic/cmantic/internal/buffer"
	"github.com/cmantic/cmantic/internal/position"
	"github.com/cmantic/cmantic/internal/token"
)

// handleOperator implements Delete/Yank/Replace mode (§4.J): the next
// key is either a selection specifier (whole line, paren/brace/bracket
// block, string literal, `a`-word object) or a motion. For motions, the
// preceding cursor positions are snapshotted, the motion runs, and the
// span between old and new positions becomes the selection.
func (s *State) handleOperator(k Key) {
	op := s.pendingOperator

	if k.Printable() && k.Rune == 'a' && !s.awaitingObject {
		s.awaitingObject = true
		return
	}

	defer func() {
		s.Mode = Normal
		s.View.ClearVisual()
		s.awaitingObject = false
	}()

	if s.awaitingObject {
		if k.Printable() && k.Rune == 'w' {
			s.applyRanges(op, wordObjectRanges(s.View.Buf, s.operatorStart))
		}
		return
	}

	if k.Printable() {
		switch k.Rune {
		case ' ':
			s.applyRanges(op, wholeLineRanges(s.View.Buf, s.operatorStart))
			return
		case 'p', ')':
			s.applyRanges(op, insideRanges(s.View.Buf, s.operatorStart, '(', ')'))
			return
		case '}':
			s.applyRanges(op, insideRanges(s.View.Buf, s.operatorStart, '{', '}'))
			return
		case ']':
			s.applyRanges(op, insideRanges(s.View.Buf, s.operatorStart, '[', ']'))
			return
		case '"':
			s.applyRanges(op, stringLiteralRanges(s.View.Buf, s.operatorStart))
			return
		case 'w':
			s.applyMotionSelection(op, func() { s.moveWord(1) })
			return
		case 'b':
			s.applyMotionSelection(op, func() { s.moveWord(-1) })
			return
		}
		return
	}
	switch k.Name {
	case KeyArrowRight:
		s.applyMotionSelection(op, func() { s.View.MoveX(1) })
	case KeyArrowLeft:
		s.applyMotionSelection(op, func() { s.View.MoveX(-1) })
	case KeyArrowDown:
		s.applyMotionSelection(op, func() { s.View.MoveY(1) })
	case KeyArrowUp:
		s.applyMotionSelection(op, func() { s.View.MoveY(-1) })
	}
}

// applyMotionSelection runs motion, then treats the span between each
// cursor's pre-motion position and its post-motion position as that
// cursor's operand.
func (s *State) applyMotionSelection(op Mode, motion func()) {
	before := s.operatorStart
	motion()
	ranges := make([]position.Range, len(s.View.Cursors))
	for i, c := range s.View.Cursors {
		lo, hi := position.Normalize(before[i], c.Pos)
		ranges[i] = position.Range{A: lo, B: hi}
	}
	s.applyRanges(op, ranges)
}

// applyRanges removes (Delete), copies (Yank), or replaces with
// clipboard contents (Replace) the given per-cursor ranges, applied in
// descending cursor order so earlier removals in the loop never need to
// re-derive later ones' positions (§4.F repair keeps every other range's
// endpoints correct automatically).
func (s *State) applyRanges(op Mode, ranges []position.Range) {
	order := s.View.DescendingOrder()
	switch op {
	case Yank:
		s.View.BeginGroup()
		for _, i := range order {
			if i >= len(ranges) || ranges[i].A.Equal(ranges[i].B) {
				continue
			}
			s.View.Buf.Remove(ranges[i].A, ranges[i].B, i)
		}
		s.View.RefreshGhosts()
		clip, changed := s.View.EndGroup()
		if changed && s.Clip != nil {
			s.Clip.Set(clip)
		}
		// Yank never leaves the buffer changed: the delete-then-emit
		// above is how the clipboard is populated (§4.G), then it is
		// immediately reverted.
		if changed {
			s.View.Undo()
		}
	case Delete:
		s.View.BeginGroup()
		for _, i := range order {
			if i >= len(ranges) || ranges[i].A.Equal(ranges[i].B) {
				continue
			}
			s.View.Buf.Remove(ranges[i].A, ranges[i].B, i)
		}
		s.View.RefreshGhosts()
		clip, changed := s.View.EndGroup()
		if changed && s.Clip != nil {
			s.Clip.Set(clip)
		}
	case Replace:
		var clip string
		if s.Clip != nil {
			clip, _ = s.Clip.Get()
		}
		s.View.BeginGroup()
		for _, i := range order {
			if i >= len(ranges) {
				continue
			}
			s.View.Buf.Replace(ranges[i], []rune(clip), i)
		}
		s.View.RefreshGhosts()
		s.View.EndGroup()
	}
	s.View.DeduplicateCursors()
}

// visualRanges builds per-cursor operator ranges from an active visual
// selection (§4.J "visual selection"), honoring `S`'s whole-line forcing,
// and reports whether any cursor has an active anchor. A span crossing
// lines is always treated as whole lines, matching spec scenario D's `s`,
// move down twice, `d` deleting every spanned line in full; a span within
// a single line is treated as an inclusive character range.
func (s *State) visualRanges() ([]position.Range, bool) {
	ranges := make([]position.Range, len(s.View.Cursors))
	any := false
	for i := range s.View.Cursors {
		r, ok := s.View.VisualRange(i)
		if !ok {
			continue
		}
		any = true
		switch {
		case s.visualLine || r.A.Y != r.B.Y:
			r = position.Range{A: position.Pos{X: 0, Y: r.A.Y}, B: position.Pos{X: 0, Y: r.B.Y + 1}}
		default:
			r.B.X++
		}
		ranges[i] = r
	}
	if !any {
		return nil, false
	}
	return ranges, true
}

// wordObjectRanges selects the word under each starting position
// regardless of direction, implementing `aw` (distinct from the
// motion-based `w`/`b` selectors, which only reach forward/backward to
// the next word boundary).
func wordObjectRanges(buf *buffer.Buffer, starts []position.Pos) []position.Range {
	out := make([]position.Range, len(starts))
	for i, p := range starts {
		out[i] = wordObjectAt(buf, p)
	}
	return out
}

func wordObjectAt(buf *buffer.Buffer, p position.Pos) position.Range {
	line := buf.Line(p.Y)
	if len(line) == 0 {
		return position.Range{A: p, B: p}
	}
	x := p.X
	if x >= len(line) {
		x = len(line) - 1
	}
	class := classOf(line[x])
	start, end := x, x
	for start > 0 && classOf(line[start-1]) == class {
		start--
	}
	for end < len(line)-1 && classOf(line[end+1]) == class {
		end++
	}
	// "a word" also takes the run of trailing whitespace that separates
	// it from the next word, if any.
	for end < len(line)-1 && classOf(line[end+1]) == 0 {
		end++
	}
	return position.Range{A: position.Pos{X: start, Y: p.Y}, B: position.Pos{X: end + 1, Y: p.Y}}
}

func wholeLineRanges(buf *buffer.Buffer, starts []position.Pos) []position.Range {
	out := make([]position.Range, len(starts))
	for i, p := range starts {
		out[i] = position.Range{A: position.Pos{X: 0, Y: p.Y}, B: position.Pos{X: 0, Y: p.Y + 1}}
		if p.Y > 0 && p.Y == buf.LineCount()-1 {
			// The last line has no newline after it: take the one before.
			out[i].A = position.Pos{X: buf.LineLen(p.Y - 1), Y: p.Y - 1}
		}
	}
	return out
}

func insideRanges(buf *buffer.Buffer, starts []position.Pos, open, close rune) []position.Range {
	out := make([]position.Range, len(starts))
	toks := buf.Parsed.Tokens
	for i, p := range starts {
		if r, ok := insideBracket(toks, p, open, close); ok {
			out[i] = r
		} else {
			out[i] = position.Range{A: p, B: p}
		}
	}
	return out
}

// insideBracket walks outward from p to find the innermost enclosing
// open/close pair and returns the half-open span of its contents.
func insideBracket(toks []token.Token, p position.Pos, open, close rune) (position.Range, bool) {
	depth := 0
	var openPos position.Pos
	found := false
	for i := len(toks) - 1; i >= 0; i-- {
		t := toks[i]
		if !t.Start.Less(p) {
			continue
		}
		if t.Kind != token.SingleChar {
			continue
		}
		switch rune(t.Lit[0]) {
		case close:
			depth++
		case open:
			if depth == 0 {
				openPos = t.End
				found = true
			} else {
				depth--
			}
		}
		if found {
			break
		}
	}
	if !found {
		return position.Range{}, false
	}
	depth = 0
	for _, t := range toks {
		if t.Start.Less(openPos) {
			continue
		}
		if t.Kind != token.SingleChar {
			continue
		}
		switch rune(t.Lit[0]) {
		case open:
			depth++
		case close:
			if depth == 0 {
				return position.Range{A: openPos, B: t.Start}, true
			}
			depth--
		}
	}
	return position.Range{}, false
}

// stringLiteralRanges selects the contents of the string token each
// starting position sits inside, if any.
func stringLiteralRanges(buf *buffer.Buffer, starts []position.Pos) []position.Range {
	toks := buf.Parsed.Tokens
	out := make([]position.Range, len(starts))
	for i, p := range starts {
		out[i] = position.Range{A: p, B: p}
		for _, t := range toks {
			if t.Kind != token.String && t.Kind != token.StringUnterminated {
				continue
			}
			if !p.Less(t.Start) && p.Less(t.End) {
				a, b := t.Start, t.End
				a.X++
				if b.X > a.X {
					b.X--
				}
				out[i] = position.Range{A: a, B: b}
				break
			}
		}
	}
	return out
}
