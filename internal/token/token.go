// Package token implements the per-language tokenizer dispatcher: a linear
// scan from (0,0) that produces a flat token stream with source spans,
// classifying each span into one of a small set of kinds shared by every
// supported language.
package token

import "github.com/cmantic/cmantic/internal/position"

// Kind classifies a token. SingleChar carries the literal byte in Lit so
// callers (brace matching, the definition extractor) can match punctuation
// generically without re-deriving it from the source.
type Kind int

const (
	EOF Kind = iota
	Nil
	Identifier
	Number
	String
	StringUnterminated
	BlockComment
	LineComment
	Operator
	SingleChar
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "eof"
	case Identifier:
		return "identifier"
	case Number:
		return "number"
	case String:
		return "string"
	case StringUnterminated:
		return "string-unterminated"
	case BlockComment:
		return "block-comment"
	case LineComment:
		return "line-comment"
	case Operator:
		return "operator"
	case SingleChar:
		return "single-char"
	default:
		return "nil"
	}
}

// Token is one lexeme: its kind, its half-open source span, and in Lit
// the literal source text for Identifier, Number and Operator tokens and
// for quote-delimited strings (quotes included). Triple-quoted, raw and
// backtick strings and comments leave Lit empty. SingleChar stores its
// one byte in Lit too, so `tok.Lit[0]` is always the punctuation character.
type Token struct {
	Kind  Kind
	Start position.Pos
	End   position.Pos
	Lit   string
}

// Language identifies a dispatcher target. Text is the fallback for
// anything unrecognized.
type Language int

const (
	Text Language = iota
	CFamily // C, C++, Objective-C-ish headers
	CSharp
	Python
	Julia
	Bash
	Makefile
	Go
	Terraform
	ColorScheme
)

// LanguageByExtension infers a Language tag the way §6 of the spec
// prescribes: by file extension, or by bare filename for Makefiles.
func LanguageByExtension(filename string) Language {
	ext, base := splitExt(filename)
	switch base {
	case "Makefile", "makefile", "GNUmakefile":
		return Makefile
	}
	switch ext {
	case ".c", ".h", ".cpp", ".hpp", ".cc", ".hh", ".cxx", ".hxx":
		return CFamily
	case ".cs":
		return CSharp
	case ".py":
		return Python
	case ".jl":
		return Julia
	case ".sh", ".bash":
		return Bash
	case ".go":
		return Go
	case ".tf", ".tfvars":
		return Terraform
	case ".cmantic-colorscheme":
		return ColorScheme
	default:
		return Text
	}
}

func splitExt(filename string) (ext, base string) {
	slash := -1
	dot := -1
	for i := len(filename) - 1; i >= 0; i-- {
		switch filename[i] {
		case '/':
			if slash == -1 {
				slash = i
			}
		case '.':
			if dot == -1 && slash == -1 {
				dot = i
			}
		}
		if slash != -1 && dot != -1 {
			break
		}
	}
	if slash == -1 {
		base = filename
	} else {
		base = filename[slash+1:]
	}
	if dot == -1 {
		return "", base
	}
	// Recompute dot relative to base in case slash search ran past it.
	for i := len(base) - 1; i >= 0; i-- {
		if base[i] == '.' {
			return base[i:], base
		}
	}
	return "", base
}

// Tokenize runs the dispatcher for lang over lines and returns the full
// token stream, terminated by a sentinel EOF token at (0, len(lines)).
func Tokenize(lines [][]rune, lang Language) []Token {
	switch lang {
	case CFamily:
		return lexCFamily(lines, false)
	case CSharp:
		return lexCFamily(lines, true)
	case Python:
		return lexPython(lines)
	case Julia:
		return lexJulia(lines)
	case Bash, Makefile:
		return lexShell(lines, lang == Makefile)
	case Go:
		return lexGo(lines)
	case Terraform:
		return lexTerraform(lines)
	case ColorScheme:
		return lexColorScheme(lines)
	default:
		return lexText(lines)
	}
}

func eofToken(lines [][]rune) Token {
	p := position.Pos{X: 0, Y: len(lines)}
	return Token{Kind: EOF, Start: p, End: p}
}
