package main

// PrintInfo and PrintColors implement the `-info`/`-colors` flags, kept
// from the teacher's info.go/colors.go: a language-association table and
// a 256-color swatch grid, respectively — generalized from the
// teacher's fixed fileTypes/LSP table to this core's token.Language set
// and its active colour scheme.

import (
	"fmt"
	"os"
	"strings"

	"github.com/nsf/termbox-go"

	"github.com/cmantic/cmantic/internal/colorscheme"
	"github.com/cmantic/cmantic/internal/token"
)

var languageNames = map[token.Language]string{
	token.Text:        "Text",
	token.CFamily:     "C/C++/Obj-C",
	token.CSharp:      "C#",
	token.Python:      "Python",
	token.Julia:       "Julia",
	token.Bash:        "Bash",
	token.Makefile:    "Makefile",
	token.Go:          "Go",
	token.Terraform:   "Terraform",
	token.ColorScheme: "Colour scheme",
}

// PrintInfo prints a summary of every language tag this build tokenizes
// and parses definitions for.
func PrintInfo() {
	fmt.Printf("%-6s %-15s\n", "Tag", "Language")
	fmt.Println(strings.Repeat("-", 30))
	for tag, name := range languageNames {
		fmt.Printf("%-6d %-15s\n", tag, name)
	}
}

// PrintColors draws a grid of the active colour scheme's semantic slots
// using termbox, the same swatch-grid technique as the teacher's
// PrintColors (colors.go), generalized from the full 256-index palette
// to this scheme's named Colors.
func PrintColors(scheme *colorscheme.Scheme) {
	if err := termbox.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init termbox: %v\n", err)
		return
	}
	defer termbox.Close()
	termbox.SetOutputMode(termbox.Output256)
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)

	names := []colorscheme.Name{
		colorscheme.Default, colorscheme.Keyword, colorscheme.Identifier,
		colorscheme.Function, colorscheme.Type, colorscheme.String,
		colorscheme.Number, colorscheme.Comment, colorscheme.Operator,
		colorscheme.CursorLine, colorscheme.VisualSelection,
		colorscheme.SearchMatch, colorscheme.StatusBar, colorscheme.GutterLineNumber,
	}
	for i, name := range names {
		c := scheme.Get(name)
		label := fmt.Sprintf("%-20s #%02x%02x%02x", name, c.R, c.G, c.B)
		for j, r := range label {
			termbox.SetCell(j, i, r, termbox.ColorWhite, termbox.ColorDefault)
		}
	}
	msg := "Press any key to exit..."
	for i, r := range msg {
		termbox.SetCell(i, len(names)+1, r, termbox.ColorWhite, termbox.ColorDefault)
	}
	termbox.Flush()
	termbox.PollEvent()
}
