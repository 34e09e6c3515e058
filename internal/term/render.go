package term

import (
	runewidth "github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/cmantic/cmantic/internal/colorscheme"
	"github.com/cmantic/cmantic/internal/highlight"
	"github.com/cmantic/cmantic/internal/pane"
)

// Size returns the current terminal dimensions.
func Size() (int, int) { return termbox.Size() }

// Flush pushes the back buffer to the terminal.
func Flush() { termbox.Flush() }

// Clear wipes the back buffer before a frame's panes are drawn.
func Clear() { termbox.Clear(termbox.ColorDefault, termbox.ColorDefault) }

// SetCursor positions the terminal's hardware cursor, or hides it when
// x or y is negative.
func SetCursor(x, y int) { termbox.SetCursor(x, y) }

// attrOf converts a colour-scheme RGB triple to a termbox attribute
// using 256-color output mode's 6x6x6 cube (the same palette the
// teacher's Theme indexes into directly as literal attribute numbers).
func attrOf(c colorscheme.Color) termbox.Attribute {
	cube := func(v uint8) int {
		return int(v) * 5 / 255
	}
	idx := 16 + 36*cube(c.R) + 6*cube(c.G) + cube(c.B)
	return termbox.Attribute(idx + 1) // termbox reserves 0 for ColorDefault
}

func classColor(scheme *colorscheme.Scheme, class highlight.Class) colorscheme.Color {
	switch class {
	case highlight.ClassKeyword:
		return scheme.Get(colorscheme.Keyword)
	case highlight.ClassIdentifier:
		return scheme.Get(colorscheme.Identifier)
	case highlight.ClassFunction:
		return scheme.Get(colorscheme.Function)
	case highlight.ClassType:
		return scheme.Get(colorscheme.Type)
	case highlight.ClassString:
		return scheme.Get(colorscheme.String)
	case highlight.ClassNumber:
		return scheme.Get(colorscheme.Number)
	case highlight.ClassComment:
		return scheme.Get(colorscheme.Comment)
	case highlight.ClassOperator:
		return scheme.Get(colorscheme.Operator)
	default:
		return scheme.Get(colorscheme.Default)
	}
}

// DrawEdit renders an edit pane's visible lines, starting at bufferTopY,
// into p.Rect, tinting each rune by its token-classified color and the
// cursor's line by colorscheme.CursorLine. Matches the teacher's direct
// per-cell termbox.SetCell loop (editor.go's draw), generalized off a
// single global Editor onto one pane's Rect and its own View.
func DrawEdit(p *pane.Pane, scheme *colorscheme.Scheme, bufferTopY int) {
	if p.View == nil {
		return
	}
	buf := p.View.Buf
	classes := highlight.ClassifyTokens(buf.Parsed.Tokens, buf.LineCount(), lineLens(buf))

	cursorLines := make(map[int]bool, len(p.View.Cursors))
	for _, c := range p.View.Cursors {
		cursorLines[c.Pos.Y] = true
	}

	for row := 0; row < p.Rect.H; row++ {
		y := bufferTopY + row
		bg := termbox.ColorDefault
		if y < buf.LineCount() && cursorLines[y] {
			bg = attrOf(scheme.Get(colorscheme.CursorLine))
		}
		screenY := p.Rect.Y + row
		if y >= buf.LineCount() {
			fg := attrOf(scheme.Get(colorscheme.GutterLineNumber))
			termbox.SetCell(p.Rect.X, screenY, '~', fg, bg)
			continue
		}
		line := buf.Line(y)
		col := 0
		for x, r := range line {
			if col >= p.Rect.W {
				break
			}
			fg := attrOf(classColor(scheme, classAt(classes, y, x)))
			termbox.SetCell(p.Rect.X+col, screenY, r, fg, bg)
			col += runewidth.RuneWidth(r)
		}
		for ; col < p.Rect.W; col++ {
			termbox.SetCell(p.Rect.X+col, screenY, ' ', termbox.ColorDefault, bg)
		}
	}
}

func classAt(classes [][]highlight.Class, y, x int) highlight.Class {
	if y < 0 || y >= len(classes) || x < 0 || x >= len(classes[y]) {
		return highlight.ClassNone
	}
	return classes[y][x]
}

func lineLens(buf interface{ LineCount() int; Line(int) []rune }) []int {
	n := buf.LineCount()
	out := make([]int, n)
	for i := range out {
		out[i] = len(buf.Line(i))
	}
	return out
}

// DrawStatus renders a status pane's single line of text.
func DrawStatus(p *pane.Pane, scheme *colorscheme.Scheme) {
	fg := attrOf(scheme.Get(colorscheme.StatusBar))
	bg := fg
	text := []rune(p.StatusText)
	for x := 0; x < p.Rect.W; x++ {
		r := rune(' ')
		if x < len(text) {
			r = text[x]
		}
		termbox.SetCell(p.Rect.X+x, p.Rect.Y, r, fg, bg)
	}
}

// DrawMenu renders a menu pane's editable line, its cursor, and (when
// the pane's Rect leaves room) its suggestion list below it with the
// SuggestionIdx entry inverted, matching the teacher's fuzzy-finder
// result list (editor.go's drawFuzzyFinder).
func DrawMenu(p *pane.Pane) {
	for x := 0; x < p.Rect.W; x++ {
		r := rune(' ')
		if x < len(p.MenuText) {
			r = p.MenuText[x]
		}
		termbox.SetCell(p.Rect.X+x, p.Rect.Y, r, termbox.ColorDefault, termbox.ColorDefault)
	}
	if p.MenuCursor < p.Rect.W {
		termbox.SetCursor(p.Rect.X+p.MenuCursor, p.Rect.Y)
	}

	for row := 1; row < p.Rect.H; row++ {
		i := row - 1
		fg, bg := termbox.ColorDefault, termbox.ColorDefault
		if i == p.SuggestionIdx {
			fg, bg = bg, termbox.ColorWhite
		}
		var text []rune
		if i < len(p.Suggestions) {
			text = []rune(p.Suggestions[i])
		}
		for x := 0; x < p.Rect.W; x++ {
			r := rune(' ')
			if x < len(text) {
				r = text[x]
			}
			termbox.SetCell(p.Rect.X+x, p.Rect.Y+row, r, fg, bg)
		}
	}
}
