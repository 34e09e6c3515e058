package token

var shellOperators = sortLongestFirst([]string{
	"&&", "||", ">>", "<<", "==", "!=", "2>", "|&",
})

// lexShell tokenizes Bash and Makefile sources. Makefiles use `#` for
// comments like shell, and treat leading `$(` / `${` variable expansions
// structurally the same as shell's.
func lexShell(lines [][]rune, makefile bool) []Token {
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
		if c == '"' {
			toks = append(toks, s.scanString('"', true, false))
			continue
		}
		if c == '\'' {
			toks = append(toks, s.scanString('\'', false, false))
			continue
		}
		if c == '$' && (s.peek(1) == '(' || s.peek(1) == '{') {
			toks = append(toks, s.scanSingleChar()) // '$'
			continue
		}
		if isIdentStart(c, func(r rune) bool { return r == '$' && makefile }) {
			toks = append(toks, s.scanIdentifier())
			continue
		}
		if isDigit(c) {
			toks = append(toks, s.scanNumber())
			continue
		}
		if tok, ok := s.longestOperator(shellOperators); ok {
			toks = append(toks, tok)
			continue
		}
		toks = append(toks, s.scanSingleChar())
	}

	toks = append(toks, eofToken(lines))
	return toks
}

var ShellKeywords = map[string]bool{
	"if": true, "then": true, "else": true, "elif": true, "fi": true,
	"for": true, "while": true, "until": true, "do": true, "done": true,
	"case": true, "esac": true, "function": true, "in": true, "return": true,
}
