package token

var pyOperators = sortLongestFirst([]string{
	"**=", "//=", "<<=", ">>=",
	"==", "!=", "<=", ">=", "**", "//", "->", "+=", "-=", "*=", "/=", "%=",
	"&=", "|=", "^=", "<<", ">>", ":=",
})

// lexPython tokenizes Python source. Leading `@` on an identifier (a
// decorator) is treated as part of the identifier predicate, per §4.C.
func lexPython(lines [][]rune) []Token {
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
			toks = append(toks, s.scanLineComment())
			continue
		}
		if (c == '"' || c == '\'') && s.peek(1) == c && s.peek(2) == c {
			toks = append(toks, scanTripleQuoted(s, c))
			continue
		}
		if c == '"' || c == '\'' {
			toks = append(toks, s.scanString(c, true, false))
			continue
		}
		if c == '@' && isIdentStart(s.peek(1), nil) {
			start := s.pos()
			s.advance()
			id := s.scanIdentifier()
			toks = append(toks, Token{Kind: Identifier, Start: start, End: id.End, Lit: "@" + id.Lit})
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
		if tok, ok := s.longestOperator(pyOperators); ok {
			toks = append(toks, tok)
			continue
		}
		toks = append(toks, s.scanSingleChar())
	}

	toks = append(toks, eofToken(lines))
	return toks
}

// scanTripleQuoted consumes a Python triple-quoted string, which may span
// many lines.
func scanTripleQuoted(s *scanner, quote rune) Token {
	start := s.pos()
	s.advanceN(3)
	closeSeq := []rune{quote, quote, quote}
	for {
		if s.eof() {
			return Token{Kind: StringUnterminated, Start: start, End: s.pos()}
		}
		if s.atEOL() {
			s.advance()
			continue
		}
		if s.cur() == '\\' {
			s.advance()
			if !s.atEOL() {
				s.advance()
			}
			continue
		}
		if s.matchesHere(closeSeq) {
			s.advanceN(3)
			return Token{Kind: String, Start: start, End: s.pos()}
		}
		s.advance()
	}
}

var PyKeywords = map[string]bool{
	"if": true, "elif": true, "else": true, "for": true, "while": true,
	"try": true, "except": true, "finally": true, "with": true,
	"return": true, "yield": true, "break": true, "continue": true,
	"pass": true, "raise": true, "import": true, "from": true, "as": true,
	"lambda": true, "global": true, "nonlocal": true, "assert": true,
	"del": true, "in": true, "is": true, "not": true, "and": true, "or": true,
}
