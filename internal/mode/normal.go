package mode

import "github.com/cmantic/cmantic/internal/position"

// handleNormal implements the Normal-mode key table (§4.J): motions,
// action entry into the other modes, and the handful of operational
// keys (undo/redo) that apply directly without a mode switch.
func (s *State) handleNormal(k Key) {
	if !k.Printable() {
		s.handleNormalNamed(k)
		return
	}
	switch k.Rune {
	case 'h':
		s.View.MoveX(-1)
	case 'l':
		s.View.MoveX(1)
	case 'j':
		s.View.MoveY(1)
	case 'k':
		s.View.MoveY(-1)
	case 'w':
		s.moveWord(1)
	case 'b':
		s.moveWord(-1)
	case '{', '}', '(', ')', '[', ']':
		s.moveToMatch(k.Rune)
	case 'n':
		s.View.Find(s.searchTerm, true)
	case 'N':
		s.View.Find(s.searchTerm, false)
	case 'H':
		s.View.MoveTo(position.Pos{X: 0, Y: 0})
	case 'L':
		s.View.MoveTo(position.Pos{X: 0, Y: s.View.Buf.LineCount() - 1})
	case 'i':
		s.enter(Insert)
	case 'o':
		s.openLineBelow()
	case 'O':
		s.openLineAbove()
	case 'd':
		s.enter(Delete)
	case 'y':
		s.enter(Yank)
	case 'r':
		s.enter(Replace)
	case 'g':
		s.enter(Goto)
	case 's':
		s.StartVisual(false)
	case 'S':
		s.StartVisual(true)
	case '/':
		s.searchForward = true
		s.enter(Search)
	case '?':
		s.searchForward = false
		s.enter(Search)
	case ':':
		s.enter(Prompt)
	case 'u':
		s.View.Undo()
	case 'U':
		s.View.Redo()
	case '0':
		s.View.GotoBeginLine()
	case '$':
		s.View.GotoEndLine()
	case '^':
		s.View.GotoFirstNonBlank()
	}
}

func (s *State) handleNormalNamed(k Key) {
	switch k.Name {
	case KeyArrowLeft:
		s.View.MoveX(-1)
	case KeyArrowRight:
		s.View.MoveX(1)
	case KeyArrowUp:
		s.View.MoveY(-1)
	case KeyArrowDown:
		s.View.MoveY(1)
	case KeyHome:
		s.View.GotoBeginLine()
	case KeyEnd:
		s.View.GotoEndLine()
	case KeyBackspace:
		s.View.Backspace()
	}
}

// openLineBelow inserts a newline at the end of the cursor's line and
// enters Insert mode there (the `o` action).
func (s *State) openLineBelow() {
	for _, c := range s.View.Cursors {
		c.Pos = position.Pos{X: s.View.Buf.LineLen(c.Pos.Y), Y: c.Pos.Y}
	}
	s.enter(Insert)
	s.View.InsertNewline()
}

// openLineAbove inserts a line above the cursor and enters Insert mode
// there (the `O` action).
func (s *State) openLineAbove() {
	for _, c := range s.View.Cursors {
		c.Pos = position.Pos{X: 0, Y: c.Pos.Y}
	}
	s.enter(Insert)
	for _, i := range reverseIdx(len(s.View.Cursors)) {
		c := s.View.Cursors[i]
		c.Pos = s.View.Buf.InsertNewline(c.Pos, i)
		c.Pos.Y--
		c.Pos.X = s.View.Buf.LineLen(c.Pos.Y)
	}
}

func reverseIdx(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = n - 1 - i
	}
	return out
}
