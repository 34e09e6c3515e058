package token

// cOperators holds only multi-character operators; lone punctuation
// (including `<`/`>`/`+` etc. used standalone) falls through to
// scanSingleChar so brace/generic matching can treat it generically.
var cOperators = sortLongestFirst([]string{
	"<<=", ">>=", "...", "->*",
	"==", "!=", "<=", ">=", "&&", "||", "++", "--", "+=", "-=", "*=", "/=",
	"%=", "&=", "|=", "^=", "<<", ">>", "::", "->",
})

// lexCFamily tokenizes C, C++, and (when csharp) C# source. It implements
// the §4.C rules specific to this family: `#ident` preprocessor lines fuse
// into one identifier token, `#if 0`/`#if false` through the matching
// `#endif` collapses to a single block-comment span, and (C++ only)
// `R"DELIM(...)DELIM"` raw strings terminate on the matching delimiter.
func lexCFamily(lines [][]rune, csharp bool) []Token {
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
			if tok, ok := tryCollapseIfZero(s); ok {
				toks = append(toks, tok)
				continue
			}
			toks = append(toks, scanPreprocessorLine(s))
			continue
		}

		if c == '/' && s.peek(1) == '/' {
			toks = append(toks, s.scanLineComment())
			continue
		}
		if c == '/' && s.peek(1) == '*' {
			toks = append(toks, s.scanBlockComment(2, "*/"))
			continue
		}
		if !csharp && (c == 'R' || c == 'u' || c == 'U' || c == 'L') && s.peek(1) == '"' {
			if tok, ok := tryRawString(s); ok {
				toks = append(toks, tok)
				continue
			}
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
		if tok, ok := s.longestOperator(cOperators); ok {
			toks = append(toks, tok)
			continue
		}
		toks = append(toks, s.scanSingleChar())
	}

	toks = append(toks, eofToken(lines))
	return toks
}

// scanPreprocessorLine fuses `#` plus the identifier tail into one token,
// per spec: "#define" is one identifier token.
func scanPreprocessorLine(s *scanner) Token {
	start := s.pos()
	s.advance() // '#'
	s.skipSpace()
	var lit []rune
	lit = append(lit, '#')
	for !s.atEOL() && isIdentCont(s.cur()) {
		lit = append(lit, s.cur())
		s.advance()
	}
	return Token{Kind: Identifier, Start: start, End: s.pos(), Lit: string(lit)}
}

// tryCollapseIfZero detects `#if 0` / `#if false` and, if found, consumes
// through the matching `#endif`, respecting nested `#if`/`#endif` pairs,
// collapsing the whole span into one block-comment token.
func tryCollapseIfZero(s *scanner) (Token, bool) {
	save := *s
	start := s.pos()
	s.advance() // '#'
	s.skipSpace()
	word := scanBareWord(s)
	if word != "if" {
		*s = save
		return Token{}, false
	}
	s.skipSpace()
	cond := scanBareWord(s)
	if cond != "0" && cond != "false" {
		*s = save
		return Token{}, false
	}
	// Consume to end of this line, then scan forward for matching #endif.
	for !s.atEOL() {
		s.advance()
	}
	depth := 1
	for !s.eof() && depth > 0 {
		s.advance() // cross newline or continue within line
		if s.atEOL() {
			continue
		}
		lineStart := *s
		s.skipSpace()
		if s.cur() == '#' {
			s.advance()
			s.skipSpace()
			w := scanBareWord(s)
			switch w {
			case "if", "ifdef", "ifndef":
				depth++
			case "endif":
				depth--
			}
		}
		*s = lineStart
		for !s.atEOL() {
			s.advance()
		}
	}
	return Token{Kind: BlockComment, Start: start, End: s.pos()}, true
}

func scanBareWord(s *scanner) string {
	var lit []rune
	for !s.atEOL() && isIdentCont(s.cur()) {
		lit = append(lit, s.cur())
		s.advance()
	}
	return string(lit)
}

// tryRawString handles C++ `R"DELIM(...)DELIM"` (and passes through
// u/U/L-prefixed plain strings to the normal string scanner).
func tryRawString(s *scanner) (Token, bool) {
	if s.cur() != 'R' {
		return Token{}, false
	}
	save := *s
	start := s.pos()
	s.advance() // R
	s.advance() // "
	var delim []rune
	for !s.atEOL() && s.cur() != '(' {
		delim = append(delim, s.cur())
		s.advance()
	}
	if s.atEOL() {
		*s = save
		return Token{}, false
	}
	s.advance() // (
	closeSeq := append([]rune(")"), delim...)
	closeSeq = append(closeSeq, '"')
	for {
		if s.eof() {
			return Token{Kind: StringUnterminated, Start: start, End: s.pos()}, true
		}
		if s.atEOL() {
			s.advance()
			continue
		}
		if s.matchesHere(closeSeq) {
			s.advanceN(len(closeSeq))
			return Token{Kind: String, Start: start, End: s.pos()}, true
		}
		s.advance()
	}
}

// CKeywords are keywords excluded from type-token-sequence matching in the
// definition extractor (see parse package).
var CKeywords = map[string]bool{
	"if": true, "else": true, "for": true, "while": true, "do": true,
	"switch": true, "case": true, "default": true, "break": true,
	"continue": true, "return": true, "goto": true, "sizeof": true,
	"new": true, "delete": true, "throw": true, "try": true, "catch": true,
}

// CTypeKeywords may appear in a function/struct header's type-token
// sequence without aborting the match.
var CTypeKeywords = map[string]bool{
	"void": true, "int": true, "char": true, "float": true, "double": true,
	"long": true, "short": true, "unsigned": true, "signed": true,
	"bool": true, "const": true, "static": true, "inline": true,
	"virtual": true, "struct": true, "class": true, "auto": true,
	"constexpr": true, "override": true, "final": true, "volatile": true,
	"public": true, "private": true, "protected": true, "namespace": true,
	"template": true, "typename": true,
}
