package mode

import (
	"github.com/cmantic/cmantic/internal/buffer"
	"github.com/cmantic/cmantic/internal/position"
)

// handleInsert implements the Insert-mode key table (§4.J): printable
// keys insert at every cursor, Enter inserts a newline with auto-indent,
// Tab autocompletes a pending identifier via Complete and falls back to
// indent when none applies, Backspace deletes one column or a full
// indent unit.
func (s *State) handleInsert(k Key) {
	if k.Printable() {
		s.View.InsertRune(k.Rune)
		return
	}
	switch k.Name {
	case KeyEnter:
		s.View.InsertNewline()
	case KeyTab:
		if !s.tryComplete() {
			s.View.InsertTab()
		}
	case KeyBackspace:
		s.View.Backspace()
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
	}
}

// Complete implements Insert-mode Tab-autocompletion from §4.D's
// identifier set: given the partial identifier ending at the primary
// cursor, returns a completion candidate, or ok=false if none matches.
func (s *State) Complete(prefix string) (string, bool) {
	for _, id := range s.View.Buf.Parsed.Identifiers {
		if len(id) > len(prefix) && id[:len(prefix)] == prefix {
			return id, true
		}
	}
	return "", false
}

// tryComplete drives Complete off the partial identifier ending at the
// primary cursor, inserting the remaining suffix at every cursor on
// success. Reports false (no candidate, or no identifier in progress) so
// Tab can fall back to plain indent.
func (s *State) tryComplete() bool {
	prefix := identifierPrefixAt(s.View.Buf, s.View.Primary().Pos)
	if prefix == "" {
		return false
	}
	completion, ok := s.Complete(prefix)
	if !ok {
		return false
	}
	for _, r := range completion[len(prefix):] {
		s.View.InsertRune(r)
	}
	return true
}

// identifierPrefixAt returns the run of word characters ending at p on
// its line, the partial identifier Tab completes.
func identifierPrefixAt(buf *buffer.Buffer, p position.Pos) string {
	line := buf.Line(p.Y)
	x := p.X
	if x > len(line) {
		x = len(line)
	}
	start := x
	for start > 0 && isWordChar(line[start-1]) {
		start--
	}
	return string(line[start:x])
}
