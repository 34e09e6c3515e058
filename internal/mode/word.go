package mode

import (
	"unicode"

	"github.com/cmantic/cmantic/internal/buffer"
	"github.com/cmantic/cmantic/internal/position"
)

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// moveWord moves every cursor one word forward (dir=1) or backward
// (dir=-1), classifying runs of word characters, runs of punctuation,
// and whitespace as the three word classes a motion crosses.
func (s *State) moveWord(dir int) {
	for _, c := range s.View.Cursors {
		c.Pos = wordMotion(s.View.Buf, c.Pos, dir)
	}
}

func classOf(r rune) int {
	switch {
	case r == ' ' || r == '\t':
		return 0
	case isWordChar(r):
		return 1
	default:
		return 2
	}
}

func wordMotion(buf *buffer.Buffer, p position.Pos, dir int) position.Pos {
	adv := func(p position.Pos) (position.Pos, bool) {
		if dir > 0 {
			return position.Advance(p, buf.LineLen, buf.LineCount)
		}
		return position.AdvanceR(p, buf.LineLen)
	}

	cur := p
	next, sat := adv(cur)
	if sat {
		return cur
	}
	startClass := runeClassAt(buf, cur)
	if startClass != 0 {
		// Skip the rest of the current word/punctuation run.
		for {
			if runeClassAt(buf, next) != startClass {
				break
			}
			n, sat := adv(next)
			if sat {
				return next
			}
			next = n
		}
	}
	// Skip whitespace to the start of the next token.
	for runeClassAt(buf, next) == 0 {
		n, sat := adv(next)
		if sat {
			return next
		}
		next = n
	}
	return next
}

func runeClassAt(buf *buffer.Buffer, p position.Pos) int {
	line := buf.Line(p.Y)
	if p.X >= len(line) {
		return 0
	}
	return classOf(line[p.X])
}
