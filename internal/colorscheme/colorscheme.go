// Package colorscheme loads and hot-reloads `.cmantic-colorscheme` files
// (§6 External interfaces, §4.C's token.ColorScheme DSL), mapping the
// teacher's hardcoded theme.go ColorName/Theme pair onto a file format a
// user can edit live. Each non-blank line is `name r g b` or
// `name #RRGGBB`, tokenized with internal/token's ColorScheme lexer.
package colorscheme

import (
	"fmt"
	"strconv"

	"github.com/cmantic/cmantic/internal/token"
)

// Color is a 24-bit RGB triple.
type Color struct{ R, G, B uint8 }

// Name is a semantic slot the renderer paints, mirroring the teacher's
// ColorName enum but trimmed to what §3's data model actually needs
// painted: text by token class, the cursor line, search/visual
// highlighting, and the status/menu chrome.
type Name string

const (
	Default          Name = "default"
	Keyword          Name = "keyword"
	Identifier       Name = "identifier"
	Function         Name = "function"
	Type             Name = "type"
	String           Name = "string"
	Number           Name = "number"
	Comment          Name = "comment"
	Operator         Name = "operator"
	CursorLine       Name = "cursor_line"
	VisualSelection  Name = "visual_selection"
	SearchMatch      Name = "search_match"
	StatusBar        Name = "status_bar"
	GutterLineNumber Name = "gutter_line_number"
)

// Scheme is a fully-resolved set of name -> color bindings. Unset names
// read as Default's color via Get.
type Scheme struct {
	colors map[Name]Color
}

// Default returns the built-in scheme, transcribed from the teacher's
// Theme map (theme.go) with its 256-index termbox attributes converted
// to the nearest RGB triple of the xterm 256-color palette's 16 base
// entries it was drawn from.
func Default() *Scheme {
	return &Scheme{colors: map[Name]Color{
		Default:          {220, 220, 220},
		Keyword:          {215, 175, 95},
		Identifier:       {230, 230, 230},
		Function:         {135, 175, 255},
		Type:             {135, 215, 135},
		String:           {95, 175, 215},
		Number:           {175, 135, 215},
		Comment:          {128, 128, 128},
		Operator:         {220, 220, 220},
		CursorLine:       {40, 40, 40},
		VisualSelection:  {45, 90, 45},
		SearchMatch:      {175, 95, 0},
		StatusBar:        {235, 30, 30},
		GutterLineNumber: {135, 135, 135},
	}}
}

// Get returns name's color, or Default's if name is unbound.
func (s *Scheme) Get(name Name) Color {
	if c, ok := s.colors[name]; ok {
		return c
	}
	return s.colors[Default]
}

// Parse decodes a colour-scheme file's contents into a Scheme seeded
// from Default (so a partial file only overrides the names it mentions).
func Parse(content []byte) (*Scheme, error) {
	lines := splitLines(content)
	toks := token.Tokenize(lines, token.ColorScheme)

	scheme := Default()
	i := 0
	for i < len(toks) {
		t := toks[i]
		if t.Kind == token.EOF {
			break
		}
		if t.Kind != token.Identifier {
			i++
			continue
		}
		name := Name(t.Lit)
		rest, consumed, err := parseColor(toks, i+1)
		if err != nil {
			return nil, fmt.Errorf("colorscheme: line %d: %w", t.Start.Y+1, err)
		}
		scheme.colors[name] = rest
		i += 1 + consumed
	}
	return scheme, nil
}

// parseColor reads either a single `#RRGGBB` token or three decimal
// component tokens starting at toks[i], returning how many tokens it
// consumed.
func parseColor(toks []token.Token, i int) (Color, int, error) {
	if i < len(toks) && toks[i].Kind == token.Number && len(toks[i].Lit) > 0 && toks[i].Lit[0] == '#' {
		c, err := parseHex(toks[i].Lit)
		return c, 1, err
	}
	if i+2 < len(toks) {
		r, err1 := strconv.Atoi(toks[i].Lit)
		g, err2 := strconv.Atoi(toks[i+1].Lit)
		b, err3 := strconv.Atoi(toks[i+2].Lit)
		if err1 == nil && err2 == nil && err3 == nil {
			return Color{R: clamp8(r), G: clamp8(g), B: clamp8(b)}, 3, nil
		}
	}
	return Color{}, 0, fmt.Errorf("expected #RRGGBB or \"r g b\"")
}

func parseHex(lit string) (Color, error) {
	if len(lit) != 7 {
		return Color{}, fmt.Errorf("malformed hex color %q", lit)
	}
	v, err := strconv.ParseUint(lit[1:], 16, 32)
	if err != nil {
		return Color{}, err
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

func clamp8(n int) uint8 {
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

func splitLines(content []byte) [][]rune {
	var lines [][]rune
	var cur []rune
	for _, r := range string(content) {
		if r == '\n' {
			lines = append(lines, cur)
			cur = nil
			continue
		}
		cur = append(cur, r)
	}
	lines = append(lines, cur)
	return lines
}
