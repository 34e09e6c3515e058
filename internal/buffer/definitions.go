package buffer

import (
	"github.com/cmantic/cmantic/internal/position"
	"github.com/cmantic/cmantic/internal/token"
)

// FindDefinition implements mode.Definitions: the first definition in
// this buffer's current parse result named name.
func (b *Buffer) FindDefinition(name string) (position.Range, bool) {
	for _, d := range b.Parsed.Definitions {
		if d.Name == name {
			return d.Range, true
		}
	}
	return position.Range{}, false
}

// IdentifierAt implements mode.Definitions: the literal text of the
// identifier token, if any, whose span contains p.
func (b *Buffer) IdentifierAt(p position.Pos) (string, bool) {
	for _, t := range b.Parsed.Tokens {
		if t.Kind != token.Identifier {
			continue
		}
		if !t.Start.Less(p) && p.Less(t.End) {
			return t.Lit, true
		}
	}
	return "", false
}
