// Package highlight is the optional tree-sitter-enhanced highlight layer
// (§3's Buffer.Highlights are plain fade-out markers; this package
// produces the per-token color classification the renderer paints them
// with). It mirrors the teacher's SyntaxHighlighter (syntax.go): one
// parser+query pair per language, a per-line capture cache rebuilt on
// reparse. Where the teacher parses the full tree-sitter grammar set,
// this package only wires the subset the editor's own §4.C language set
// overlaps with go-tree-sitter's bundled grammars (C-family, Go,
// Python, Bash); Julia, Terraform, C#, and the colour-scheme DSL have no
// tree-sitter grammar in the pack and fall back to the token-package
// classification below.
package highlight

import (
	"context"

	sitter "github.com/mitjafelicijan/go-tree-sitter"
	"github.com/mitjafelicijan/go-tree-sitter/bash"
	"github.com/mitjafelicijan/go-tree-sitter/c"
	"github.com/mitjafelicijan/go-tree-sitter/golang"
	"github.com/mitjafelicijan/go-tree-sitter/python"

	"github.com/cmantic/cmantic/internal/token"
)

// Class is a semantic highlight class, independent of any particular
// color scheme's names for them (internal/colorscheme maps Class to a
// concrete color).
type Class int

const (
	ClassNone Class = iota
	ClassKeyword
	ClassIdentifier
	ClassFunction
	ClassType
	ClassString
	ClassNumber
	ClassComment
	ClassOperator
)

// queryByCapture is intentionally tiny: it classifies tree-sitter capture
// names the same way the teacher's getTermboxAttr does, collapsing a
// grammar's many capture names onto this package's small Class set.
var queryByCapture = map[string]Class{
	"keyword":  ClassKeyword,
	"function": ClassFunction,
	"type":     ClassType,
	"string":   ClassString,
	"number":   ClassNumber,
	"comment":  ClassComment,
	"variable": ClassIdentifier,
	"property": ClassIdentifier,
	"constant": ClassNumber,
}

// queries holds one inline tree-sitter query per supported grammar,
// covering the handful of node kinds every one of these grammars names
// consistently. Unlike the teacher, which loads queries from an
// embedded queries/*.scm filesystem, these are inline since this
// package ships no query file assets of its own.
var queries = map[token.Language]string{
	token.CFamily: `
		(string_literal) @string
		(comment) @comment
		(number_literal) @number
		(primitive_type) @type
		(identifier) @variable
	`,
	token.Go: `
		(interpreted_string_literal) @string
		(raw_string_literal) @string
		(comment) @comment
		(int_literal) @number
		(func_literal) @function
		(type_identifier) @type
		(identifier) @variable
	`,
	token.Python: `
		(string) @string
		(comment) @comment
		(integer) @number
		(identifier) @variable
	`,
	token.Bash: `
		(string) @string
		(comment) @comment
		(number) @number
		(variable_name) @variable
	`,
}

func grammarFor(lang token.Language) *sitter.Language {
	switch lang {
	case token.CFamily:
		return c.GetLanguage()
	case token.Go:
		return golang.GetLanguage()
	case token.Python:
		return python.GetLanguage()
	case token.Bash:
		return bash.GetLanguage()
	default:
		return nil
	}
}

// Classifier holds the parser/query pair for one language and the
// per-line capture cache from the last Parse.
type Classifier struct {
	lang   token.Language
	parser *sitter.Parser
	query  *sitter.Query
	tree   *sitter.Tree

	byLine map[int]map[int]Class
}

// New returns a Classifier for lang, or nil if lang has no tree-sitter
// grammar wired in this build (the caller should fall back to
// ClassifyTokens).
func New(lang token.Language) *Classifier {
	grammar := grammarFor(lang)
	if grammar == nil {
		return nil
	}
	parser := sitter.NewParser()
	parser.SetLanguage(grammar)
	q, err := sitter.NewQuery([]byte(queries[lang]), grammar)
	if err != nil {
		return nil
	}
	return &Classifier{lang: lang, parser: parser, query: q}
}

// Parse runs a full reparse of source and rebuilds the capture cache.
func (c *Classifier) Parse(source []byte) {
	tree, _ := c.parser.ParseCtx(context.Background(), nil, source)
	c.tree = tree
	c.byLine = make(map[int]map[int]Class)
	if c.tree == nil {
		return
	}
	qc := sitter.NewQueryCursor()
	qc.Exec(c.query, c.tree.RootNode())
	for {
		m, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, cap := range m.Captures {
			class := queryByCapture[c.query.CaptureNameForId(cap.Index)]
			if class == ClassNone {
				continue
			}
			c.markSpan(
				int(cap.Node.StartPoint().Row), int(cap.Node.StartPoint().Column),
				int(cap.Node.EndPoint().Row), int(cap.Node.EndPoint().Column),
				class,
			)
		}
	}
}

func (c *Classifier) markSpan(startRow, startCol, endRow, endCol int, class Class) {
	for r := startRow; r <= endRow; r++ {
		if c.byLine[r] == nil {
			c.byLine[r] = make(map[int]Class)
		}
		from := 0
		if r == startRow {
			from = startCol
		}
		to := 1 << 20
		if r == endRow {
			to = endCol
		}
		for col := from; col < to; col++ {
			c.byLine[r][col] = class
		}
	}
}

// Line returns one Class per rune of lineContent.
func (c *Classifier) Line(y int, lineContent []rune) []Class {
	out := make([]Class, len(lineContent))
	line := c.byLine[y]
	for i := range out {
		out[i] = line[i]
	}
	return out
}

// ClassifyTokens is the token-package-driven fallback (§4.C): every
// token's Kind maps directly onto a Class, for languages with no
// tree-sitter grammar wired above.
func ClassifyTokens(toks []token.Token, lineCount int, lineLens []int) [][]Class {
	out := make([][]Class, lineCount)
	for y := range out {
		out[y] = make([]Class, lineLens[y])
	}
	for _, t := range toks {
		class := classOfKind(t.Kind)
		if class == ClassNone {
			continue
		}
		for y := t.Start.Y; y <= t.End.Y; y++ {
			if y >= len(out) {
				break
			}
			from := 0
			if y == t.Start.Y {
				from = t.Start.X
			}
			to := len(out[y])
			if y == t.End.Y && t.End.X < to {
				to = t.End.X
			}
			for x := from; x < to; x++ {
				out[y][x] = class
			}
		}
	}
	return out
}

func classOfKind(k token.Kind) Class {
	switch k {
	case token.Identifier:
		return ClassIdentifier
	case token.Number:
		return ClassNumber
	case token.String, token.StringUnterminated:
		return ClassString
	case token.BlockComment, token.LineComment:
		return ClassComment
	case token.Operator, token.SingleChar:
		return ClassOperator
	default:
		return ClassNone
	}
}
