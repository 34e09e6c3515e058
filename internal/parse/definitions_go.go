package parse

import "github.com/cmantic/cmantic/internal/token"

// extractGoDefinitions implements the §4.D Go rules: `func IDENT`,
// `func (recv) IDENT`, `type IDENT`, a bare `const IDENT`, and each `IDENT`
// introduced inside a `const ( ... )` block.
func extractGoDefinitions(all []token.Token) []Definition {
	toks := significant(all)
	var defs []Definition

	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if t.Kind != token.Identifier {
			continue
		}

		switch t.Lit {
		case "func":
			j := i + 1
			if isSingleChar(toks, j, "(") {
				if close, ok := findBalanced(toks, j, "(", ")"); ok {
					j = close + 1
				} else {
					continue
				}
			}
			if j < len(toks) && toks[j].Kind == token.Identifier {
				name := toks[j]
				defs = append(defs, Definition{Name: name.Lit, Range: position2range(name)})
			}

		case "type":
			if i+1 < len(toks) && toks[i+1].Kind == token.Identifier {
				name := toks[i+1]
				defs = append(defs, Definition{Name: name.Lit, Range: position2range(name)})
			}

		case "const":
			if i+1 < len(toks) && isSingleChar(toks, i+1, "(") {
				defs = append(defs, extractGoConstBlock(toks, i+1)...)
			} else if i+1 < len(toks) && toks[i+1].Kind == token.Identifier {
				name := toks[i+1]
				defs = append(defs, Definition{Name: name.Lit, Range: position2range(name)})
			}
		}
	}
	return defs
}

// extractGoConstBlock names every identifier that opens a line inside a
// `const ( ... )` block, per §4.D.
func extractGoConstBlock(toks []token.Token, openIdx int) []Definition {
	close, ok := findBalanced(toks, openIdx, "(", ")")
	if !ok {
		return nil
	}
	var defs []Definition
	atLineStart := true
	lastLine := -1
	for i := openIdx + 1; i < close; i++ {
		t := toks[i]
		if t.Start.Y != lastLine {
			lastLine = t.Start.Y
			atLineStart = true
		}
		if atLineStart && t.Kind == token.Identifier {
			defs = append(defs, Definition{Name: t.Lit, Range: position2range(t)})
			atLineStart = false
		} else {
			atLineStart = false
		}
	}
	return defs
}
