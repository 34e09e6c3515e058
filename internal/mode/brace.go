package mode

import (
	"github.com/cmantic/cmantic/internal/position"
	"github.com/cmantic/cmantic/internal/token"
)

var braceMatch = map[rune]rune{
	'{': '}', '}': '{',
	'(': ')', ')': '(',
	'[': ']', ']': '[',
}

func isOpen(r rune) bool { return r == '{' || r == '(' || r == '[' }

// moveToMatch implements §4.J brace-matching for the `{ } ( ) [ ]`
// motion keys: gettoken at the cursor, walk forward (from an opener) or
// backward (from a closer) counting nesting, and land on the matching
// partner. If the cursor is already on the target character, the walk
// starts one token past it.
func (s *State) moveToMatch(target rune) {
	toks := s.View.Buf.Parsed.Tokens
	open := target
	if !isOpen(open) {
		open = braceMatch[target]
	}
	close := braceMatch[open]

cursorLoop:
	for _, c := range s.View.Cursors {
		idx := tokenIndexAt(toks, c.Pos)
		if idx < 0 {
			continue
		}
		forward := true
		start := idx
		cur := toks[idx]
		if cur.Kind == token.SingleChar {
			switch rune(cur.Lit[0]) {
			case open:
				start = idx + 1
			case close:
				forward = false
				start = idx - 1
			}
		}

		if forward {
			depth := 1
			for i := start; i < len(toks); i++ {
				t := toks[i]
				if t.Kind != token.SingleChar {
					continue
				}
				switch rune(t.Lit[0]) {
				case open:
					depth++
				case close:
					depth--
					if depth == 0 {
						c.Pos = t.Start
						continue cursorLoop
					}
				}
			}
		} else {
			depth := 1
			for i := start; i >= 0; i-- {
				t := toks[i]
				if t.Kind != token.SingleChar {
					continue
				}
				switch rune(t.Lit[0]) {
				case close:
					depth++
				case open:
					depth--
					if depth == 0 {
						c.Pos = t.Start
						continue cursorLoop
					}
				}
			}
		}
	}
}

// tokenIndexAt returns the index of the token whose span contains p
// (start <= p < end), or the first token starting at or after p if none
// contains it exactly (e.g. p sits at a line's virtual end-of-line).
func tokenIndexAt(toks []token.Token, p position.Pos) int {
	for i, t := range toks {
		if !t.Start.Less(p) && p.Less(t.End) {
			return i
		}
		if t.Start.Equal(p) {
			return i
		}
	}
	for i, t := range toks {
		if p.Less(t.Start) || p.Equal(t.Start) {
			return i
		}
	}
	return -1
}
