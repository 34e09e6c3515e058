package token

var goOperators = sortLongestFirst([]string{
	"<<=", ">>=", "&^=", "...", "&&", "||", "<-", "++", "--",
	"==", "!=", "<=", ">=", ":=", "+=", "-=", "*=", "/=", "%=",
	"&=", "|=", "^=", "<<", ">>", "&^",
})

// lexGo tokenizes Go source: line/block comments, raw `` ` ``-strings
// (which span lines verbatim, no escapes), interpreted strings, runes,
// identifiers, numbers, and operators.
func lexGo(lines [][]rune) []Token {
	s := newScanner(lines)
	var toks []Token

	for !s.eof() {
		s.skipSpace()
		if s.atEOL() {
			s.advance()
			continue
		}
		c := s.cur()

		if c == '/' && s.peek(1) == '/' {
			toks = append(toks, s.scanLineComment())
			continue
		}
		if c == '/' && s.peek(1) == '*' {
			toks = append(toks, s.scanBlockComment(2, "*/"))
			continue
		}
		if c == '`' {
			toks = append(toks, scanRawBacktickString(s))
			continue
		}
		if c == '"' {
			toks = append(toks, s.scanString('"', true, false))
			continue
		}
		if c == '\'' {
			toks = append(toks, s.scanString('\'', true, false))
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
		if tok, ok := s.longestOperator(goOperators); ok {
			toks = append(toks, tok)
			continue
		}
		toks = append(toks, s.scanSingleChar())
	}

	toks = append(toks, eofToken(lines))
	return toks
}

func scanRawBacktickString(s *scanner) Token {
	start := s.pos()
	s.advance()
	for {
		if s.eof() {
			return Token{Kind: StringUnterminated, Start: start, End: s.pos()}
		}
		if s.atEOL() {
			s.advance()
			continue
		}
		if s.cur() == '`' {
			s.advance()
			return Token{Kind: String, Start: start, End: s.pos()}
		}
		s.advance()
	}
}

var GoKeywords = map[string]bool{
	"if": true, "else": true, "for": true, "switch": true, "select": true,
	"case": true, "default": true, "break": true, "continue": true,
	"return": true, "go": true, "defer": true, "range": true, "fallthrough": true,
	"goto": true, "import": true, "package": true, "interface": true,
	"map": true, "chan": true, "struct": true,
}
