package parse

import (
	"github.com/cmantic/cmantic/internal/position"
	"github.com/cmantic/cmantic/internal/token"
)

var aggregateKeywords = map[string]bool{
	"struct": true, "class": true, "enum": true, "union": true, "namespace": true,
}

var csharpAggregateKeywords = map[string]bool{
	"struct": true, "class": true, "enum": true, "interface": true, "namespace": true,
}

// extractCFamilyDefinitions implements the §4.D C/C++/C# rules:
//
//   - `struct|class|enum|union|namespace IDENT {` or `... IDENT :` names an
//     aggregate.
//   - A function header is `[type-token-sequence] IDENT '('` or
//     `IDENT :: IDENT '('`, followed by a balanced `(...)`, optionally
//     trailing keywords (`override`, `const`), then `{`.
func extractCFamilyDefinitions(all []token.Token, csharp bool) []Definition {
	toks := significant(all)
	var defs []Definition
	aggKeywords := aggregateKeywords
	if csharp {
		aggKeywords = csharpAggregateKeywords
	}

	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if t.Kind != token.Identifier {
			continue
		}

		if aggKeywords[t.Lit] && i+1 < len(toks) && toks[i+1].Kind == token.Identifier {
			name := toks[i+1]
			if followedByBraceOrColon(toks, i+2) {
				defs = append(defs, Definition{Name: name.Lit, Range: position2range(name)})
			}
			continue
		}

		if t.Kind == token.Identifier && isSingleChar(toks, i+1, "(") {
			if name, ok := matchFunctionHeader(toks, i); ok {
				defs = append(defs, Definition{Name: name.Lit, Range: position2range(name)})
			}
		}
	}
	return defs
}

// followedByBraceOrColon scans forward (bounded) looking for a `{` before a
// `;`, or a `:` base-clause introducer before a `;`.
func followedByBraceOrColon(toks []token.Token, from int) bool {
	for i := from; i < len(toks) && i < from+200; i++ {
		if isSingleChar(toks, i, "{") {
			return true
		}
		if isSingleChar(toks, i, ":") {
			continue // base-class list; keep scanning for the eventual '{'
		}
		if isSingleChar(toks, i, ";") {
			return false
		}
	}
	return false
}

// matchFunctionHeader checks whether toks[at] is an identifier beginning a
// function name (toks[at+1] is '('), validates the preceding type-token
// sequence or `IDENT :: IDENT` qualifier, validates the following balanced
// parens are eventually followed by `{` (skipping trailing keywords), and
// returns the name token.
func matchFunctionHeader(toks []token.Token, at int) (token.Token, bool) {
	name := toks[at]

	// Walk backward over the preceding type-token-sequence: identifiers
	// (type keywords only — a non-type keyword identifier aborts), '*', '&',
	// and a balanced '<...>' generic arglist of identifiers/commas.
	j := at - 1
	sawQualifier := false
	for j >= 0 {
		tk := toks[j]
		switch {
		case tk.Kind == token.SingleChar && (tk.Lit == "*" || tk.Lit == "&"):
			j--
		case tk.Kind == token.SingleChar && tk.Lit == ">":
			k, ok := skipGenericArgsBackward(toks, j)
			if !ok {
				return token.Token{}, false
			}
			j = k
		case tk.Kind == token.Operator && tk.Lit == "::":
			sawQualifier = true
			j--
		case tk.Kind == token.Identifier:
			if token.CKeywords[tk.Lit] {
				return token.Token{}, false
			}
			j--
		default:
			j = -1 // stop; whatever came before is irrelevant (start of statement)
		}
		if j < 0 {
			break
		}
	}
	_ = sawQualifier

	// Following: balanced (...) then optional trailing keywords then '{'.
	close, ok := findBalanced(toks, at+1, "(", ")")
	if !ok {
		return token.Token{}, false
	}
	for i := close + 1; i < len(toks) && i < close+20; i++ {
		if isSingleChar(toks, i, "{") {
			return name, true
		}
		if toks[i].Kind == token.Identifier && (toks[i].Lit == "override" || toks[i].Lit == "const" || toks[i].Lit == "final" || toks[i].Lit == "noexcept") {
			continue
		}
		if isSingleChar(toks, i, ";") {
			return token.Token{}, false
		}
		return token.Token{}, false
	}
	return token.Token{}, false
}

// skipGenericArgsBackward, given the index of the closing '>' of a generic
// arglist, walks backward to the matching '<' provided the interior is only
// identifiers and commas. Returns the index just before the opening '<'.
func skipGenericArgsBackward(toks []token.Token, closeIdx int) (int, bool) {
	depth := 1
	i := closeIdx - 1
	for i >= 0 {
		tk := toks[i]
		if tk.Kind == token.SingleChar && tk.Lit == ">" {
			depth++
		} else if tk.Kind == token.SingleChar && tk.Lit == "<" {
			depth--
			if depth == 0 {
				return i - 1, true
			}
		} else if tk.Kind == token.Identifier || (tk.Kind == token.SingleChar && tk.Lit == ",") {
			// ok
		} else {
			return 0, false
		}
		i--
	}
	return 0, false
}

// findBalanced, given the index of an opening delimiter token, returns the
// index of its matching close.
func findBalanced(toks []token.Token, openIdx int, open, close string) (int, bool) {
	if !isSingleChar(toks, openIdx, open) {
		return 0, false
	}
	depth := 0
	for i := openIdx; i < len(toks); i++ {
		if isSingleChar(toks, i, open) {
			depth++
		} else if isSingleChar(toks, i, close) {
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

func isSingleChar(toks []token.Token, i int, lit string) bool {
	if i < 0 || i >= len(toks) {
		return false
	}
	return toks[i].Kind == token.SingleChar && toks[i].Lit == lit
}

func position2range(t token.Token) position.Range {
	return position.Range{A: t.Start, B: t.End}
}
