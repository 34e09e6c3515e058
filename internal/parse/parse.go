// Package parse implements the definition/identifier extractor (§4.D): a
// single pass over a token stream that produces named top-level declaration
// ranges and the buffer's deduplicated identifier set.
package parse

import (
	"github.com/cmantic/cmantic/internal/position"
	"github.com/cmantic/cmantic/internal/token"
)

// Definition names a top-level declaration found in the buffer.
type Definition struct {
	Name  string
	Range position.Range
}

// Result is the full output of one parse: the token stream, the
// definitions found in it, and the distinct identifier spellings seen, in
// first-seen order.
type Result struct {
	Tokens      []token.Token
	Definitions []Definition
	Identifiers []string
}

// Parse tokenizes lines for lang and extracts definitions/identifiers.
func Parse(lines [][]rune, lang token.Language) Result {
	toks := token.Tokenize(lines, lang)
	return Result{
		Tokens:      toks,
		Definitions: extractDefinitions(toks, lang),
		Identifiers: extractIdentifiers(toks),
	}
}

// extractIdentifiers appends each new identifier spelling not already
// present, using linear scan dedup — bounded in practice by real source
// file sizes, per spec.
func extractIdentifiers(toks []token.Token) []string {
	var ids []string
	seen := func(lit string) bool {
		for _, id := range ids {
			if id == lit {
				return true
			}
		}
		return false
	}
	for _, t := range toks {
		if t.Kind != token.Identifier {
			continue
		}
		if !seen(t.Lit) {
			ids = append(ids, t.Lit)
		}
	}
	return ids
}

func extractDefinitions(toks []token.Token, lang token.Language) []Definition {
	switch lang {
	case token.CFamily:
		return extractCFamilyDefinitions(toks, false)
	case token.CSharp:
		return extractCFamilyDefinitions(toks, true)
	case token.Python:
		return extractPythonDefinitions(toks)
	case token.Go:
		return extractGoDefinitions(toks)
	case token.Bash, token.Makefile:
		return extractShellDefinitions(toks)
	case token.Julia:
		return extractJuliaDefinitions(toks)
	case token.Terraform:
		return extractTerraformDefinitions(toks)
	case token.ColorScheme:
		return extractColorSchemeDefinitions(toks)
	default:
		return nil
	}
}

// significant filters out comment tokens, which never participate in
// structural matching.
func significant(toks []token.Token) []token.Token {
	out := make([]token.Token, 0, len(toks))
	for _, t := range toks {
		switch t.Kind {
		case token.LineComment, token.BlockComment:
			continue
		}
		out = append(out, t)
	}
	return out
}
