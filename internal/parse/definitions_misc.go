package parse

import "github.com/cmantic/cmantic/internal/token"

// extractJuliaDefinitions implements the §4.D Julia rule: `function IDENT`
// and `struct IDENT` name a definition.
func extractJuliaDefinitions(all []token.Token) []Definition {
	toks := significant(all)
	var defs []Definition
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if t.Kind != token.Identifier {
			continue
		}
		if (t.Lit == "function" || t.Lit == "struct" || t.Lit == "module") && i+1 < len(toks) && toks[i+1].Kind == token.Identifier {
			name := toks[i+1]
			defs = append(defs, Definition{Name: name.Lit, Range: position2range(name)})
			i++
		}
	}
	return defs
}

// extractTerraformDefinitions implements the §4.D Terraform rule:
// `resource "TYPE" "NAME" {` / `variable "NAME" {` / `output "NAME" {` /
// `module "NAME" {` name a definition after the block's string labels.
func extractTerraformDefinitions(all []token.Token) []Definition {
	toks := significant(all)
	var defs []Definition
	blockKeywords := map[string]bool{
		"resource": true, "variable": true, "output": true, "module": true,
		"data": true, "provider": true,
	}
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if t.Kind != token.Identifier || !blockKeywords[t.Lit] {
			continue
		}
		j := i + 1
		var last token.Token
		found := false
		for j < len(toks) && (toks[j].Kind == token.String || toks[j].Kind == token.StringUnterminated) {
			last = toks[j]
			found = true
			j++
		}
		if !found || !isSingleChar(toks, j, "{") {
			continue
		}
		defs = append(defs, Definition{Name: last.Lit, Range: position2range(last)})
	}
	return defs
}

// extractColorSchemeDefinitions implements the §6 colour-scheme DSL rule:
// each non-empty line is `name ...`, so the leading identifier on every
// line is itself a definition (the names the §6 boundary documents).
func extractColorSchemeDefinitions(all []token.Token) []Definition {
	toks := significant(all)
	var defs []Definition
	lastLine := -1
	for _, t := range toks {
		if t.Start.Y == lastLine {
			continue
		}
		lastLine = t.Start.Y
		if t.Kind == token.Identifier {
			defs = append(defs, Definition{Name: t.Lit, Range: position2range(t)})
		}
	}
	return defs
}
