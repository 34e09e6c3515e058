package mode

import (
	"strconv"

	"github.com/cmantic/cmantic/internal/position"
)

// handleGoto implements Goto mode (§4.J `g`): digits accumulate a 1-based
// target line number and jump immediately as each digit lands; `t`/`b`
// jump to the buffer's top/bottom line; `d` jumps to the definition of
// the identifier under the primary cursor.
func (s *State) handleGoto(k Key) {
	if k.Printable() {
		switch {
		case k.Rune >= '0' && k.Rune <= '9':
			s.gotoDigits += string(k.Rune)
			if n, err := strconv.Atoi(s.gotoDigits); err == nil {
				s.gotoLine(n)
			}
			return
		case k.Rune == 't':
			s.View.PushJump(s.View.Primary().Pos)
			s.View.MoveTo(position.Pos{X: 0, Y: 0})
		case k.Rune == 'b':
			s.View.PushJump(s.View.Primary().Pos)
			s.View.MoveTo(position.Pos{X: 0, Y: s.View.Buf.LineCount() - 1})
		case k.Rune == 'd':
			s.gotoDefinition()
		}
	}
	s.Mode = Normal
}

// gotoLine jumps the primary cursor to the first column of line n
// (1-based), clamped to the buffer's line range.
func (s *State) gotoLine(n int) {
	y := n - 1
	if y < 0 {
		y = 0
	}
	if y >= s.View.Buf.LineCount() {
		y = s.View.Buf.LineCount() - 1
	}
	s.View.MoveTo(position.Pos{X: 0, Y: y})
}

// gotoDefinition jumps to the definition of the identifier under the
// primary cursor, pushing the origin onto the jumplist first so the
// jump can be reversed (§4.H).
func (s *State) gotoDefinition() {
	if s.Defs == nil {
		return
	}
	name, ok := s.Defs.IdentifierAt(s.View.Primary().Pos)
	if !ok {
		return
	}
	r, ok := s.Defs.FindDefinition(name)
	if !ok {
		return
	}
	s.View.PushJump(s.View.Primary().Pos)
	s.View.MoveTo(r.A)
	s.View.PushJump(r.A)
}
