package token

var juliaOperators = sortLongestFirst([]string{
	"<<=", ">>=", "...", "->", "==", "!=", "<=", ">=", "&&", "||", "+=",
	"-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<", ">>", "::",
})

// lexJulia tokenizes Julia source: `#` line comments, `#=`/`=#` nestable
// block comments (treated here as non-nesting, matching the first `=#`),
// triple- and single-quoted strings, and a Julia-flavoured operator set.
func lexJulia(lines [][]rune) []Token {
	s := newScanner(lines)
	var toks []Token

	for !s.eof() {
		s.skipSpace()
		if s.atEOL() {
			s.advance()
			continue
		}
		c := s.cur()

		if c == '#' && s.peek(1) == '=' {
			toks = append(toks, s.scanBlockComment(2, "=#"))
			continue
		}
		if c == '#' {
			toks = append(toks, s.scanLineComment())
			continue
		}
		if c == '"' && s.peek(1) == '"' && s.peek(2) == '"' {
			toks = append(toks, scanTripleQuoted(s, '"'))
			continue
		}
		if c == '"' {
			toks = append(toks, s.scanString('"', true, false))
			continue
		}
		if isIdentStart(c, nil) {
			toks = append(toks, s.scanIdentifier())
			continue
		}
		if isDigit(c) {
			toks = append(toks, s.scanNumber())
			continue
		}
		if tok, ok := s.longestOperator(juliaOperators); ok {
			toks = append(toks, tok)
			continue
		}
		toks = append(toks, s.scanSingleChar())
	}

	toks = append(toks, eofToken(lines))
	return toks
}

var JuliaKeywords = map[string]bool{
	"if": true, "elseif": true, "else": true, "for": true, "while": true,
	"function": true, "end": true, "return": true, "struct": true,
	"mutable": true, "module": true, "using": true, "import": true,
	"export": true, "const": true, "let": true, "try": true, "catch": true,
	"finally": true, "do": true,
}

var terraformOperators = sortLongestFirst([]string{
	"==", "!=", "<=", ">=", "&&", "||", "=>", "...",
})

// lexTerraform tokenizes HCL-flavoured Terraform source: `#`/`//` line
// comments, `/* */` block comments, double-quoted strings with `${...}`
// interpolation left untokenized specially (treated as ordinary string
// contents — nested expressions are out of scope for this scanner).
func lexTerraform(lines [][]rune) []Token {
	s := newScanner(lines)
	var toks []Token

	for !s.eof() {
		s.skipSpace()
		if s.atEOL() {
			s.advance()
			continue
		}
		c := s.cur()

		if c == '#' || (c == '/' && s.peek(1) == '/') {
			toks = append(toks, s.scanLineComment())
			continue
		}
		if c == '/' && s.peek(1) == '*' {
			toks = append(toks, s.scanBlockComment(2, "*/"))
			continue
		}
		if c == '"' {
			toks = append(toks, s.scanString('"', true, false))
			continue
		}
		if isIdentStart(c, nil) {
			toks = append(toks, s.scanIdentifier())
			continue
		}
		if isDigit(c) {
			toks = append(toks, s.scanNumber())
			continue
		}
		if tok, ok := s.longestOperator(terraformOperators); ok {
			toks = append(toks, tok)
			continue
		}
		toks = append(toks, s.scanSingleChar())
	}

	toks = append(toks, eofToken(lines))
	return toks
}

var TerraformKeywords = map[string]bool{
	"resource": true, "variable": true, "output": true, "module": true,
	"provider": true, "data": true, "locals": true, "for_each": true,
	"count": true, "true": true, "false": true, "null": true,
}

// lexColorScheme tokenizes the small colour-scheme DSL (§6): each non-empty
// line is `name r g b [a]` or `name #RRGGBB`. Lexically this is just
// identifiers, numbers, `#RRGGBB` treated as one token, and `#` comments are
// not part of the format, so a bare `#` followed by hex digits is a colour
// literal, not a comment.
func lexColorScheme(lines [][]rune) []Token {
	s := newScanner(lines)
	var toks []Token

	for !s.eof() {
		s.skipSpace()
		if s.atEOL() {
			s.advance()
			continue
		}
		c := s.cur()

		if c == '#' {
			toks = append(toks, scanHexColor(s))
			continue
		}
		if isIdentStart(c, nil) {
			toks = append(toks, s.scanIdentifier())
			continue
		}
		if isDigit(c) {
			toks = append(toks, s.scanNumber())
			continue
		}
		toks = append(toks, s.scanSingleChar())
	}

	toks = append(toks, eofToken(lines))
	return toks
}

func scanHexColor(s *scanner) Token {
	start := s.pos()
	s.advance() // '#'
	var lit []rune
	lit = append(lit, '#')
	for !s.atEOL() && isHex(s.cur()) {
		lit = append(lit, s.cur())
		s.advance()
	}
	return Token{Kind: Number, Start: start, End: s.pos(), Lit: string(lit)}
}

// lexText tokenizes plain text: words become identifiers, runs of digits
// become numbers, everything else is single-char. No comments, no strings.
func lexText(lines [][]rune) []Token {
	s := newScanner(lines)
	var toks []Token

	for !s.eof() {
		s.skipSpace()
		if s.atEOL() {
			s.advance()
			continue
		}
		c := s.cur()
		if isIdentStart(c, nil) {
			toks = append(toks, s.scanIdentifier())
			continue
		}
		if isDigit(c) {
			toks = append(toks, s.scanNumber())
			continue
		}
		toks = append(toks, s.scanSingleChar())
	}

	toks = append(toks, eofToken(lines))
	return toks
}
