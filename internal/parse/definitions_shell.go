package parse

import "github.com/cmantic/cmantic/internal/token"

// extractShellDefinitions implements the §4.D Bash/Makefile rule: a
// `function IDENT` or `IDENT()` shell function header names a definition,
// and a line-leading `IDENT :` names a Makefile target.
func extractShellDefinitions(all []token.Token) []Definition {
	toks := significant(all)
	var defs []Definition
	lastLine := -1
	atLineStart := true

	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if t.Start.Y != lastLine {
			lastLine = t.Start.Y
			atLineStart = true
		}

		if t.Kind == token.Identifier && t.Lit == "function" && i+1 < len(toks) && toks[i+1].Kind == token.Identifier {
			name := toks[i+1]
			defs = append(defs, Definition{Name: name.Lit, Range: position2range(name)})
			atLineStart = false
			continue
		}

		if t.Kind == token.Identifier && isSingleChar(toks, i+1, "(") && isSingleChar(toks, i+2, ")") {
			defs = append(defs, Definition{Name: t.Lit, Range: position2range(t)})
			atLineStart = false
			continue
		}

		if atLineStart && t.Kind == token.Identifier && isSingleChar(toks, i+1, ":") && !isSingleChar(toks, i+2, "=") {
			defs = append(defs, Definition{Name: t.Lit, Range: position2range(t)})
		}

		atLineStart = false
	}
	return defs
}
