package parse

import "github.com/cmantic/cmantic/internal/token"

// extractPythonDefinitions implements the §4.D Python rule: `def IDENT` and
// `class IDENT` each name a definition, regardless of indentation (nested
// defs are named too — the spec does not require top-level-only).
func extractPythonDefinitions(all []token.Token) []Definition {
	toks := significant(all)
	var defs []Definition
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if t.Kind != token.Identifier {
			continue
		}
		if (t.Lit == "def" || t.Lit == "class") && i+1 < len(toks) && toks[i+1].Kind == token.Identifier {
			name := toks[i+1]
			defs = append(defs, Definition{Name: name.Lit, Range: position2range(name)})
		}
	}
	return defs
}
