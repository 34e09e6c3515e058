// Command cmantic is the editor's entry point: flag parsing, loading the
// files named on the command line (or a scratch buffer if none), then
// handing off to the per-frame event loop. Mirrors the teacher's
// main.go/editor.go split (InitConfig -> termbox.Init -> NewEditor ->
// HandleEvents), generalized off the teacher's single monolithic Editor
// onto the pane/mode/buffer packages this build assembles.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cmantic/cmantic/internal/colorscheme"
	"github.com/cmantic/cmantic/internal/term"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

func main() {
	cfg := ParseConfig()

	if cfg.ShowVersion {
		fmt.Println(Version)
		return
	}
	if cfg.ShowInfo {
		PrintInfo()
		return
	}
	if cfg.ShowColors {
		scheme := colorscheme.Default()
		if cfg.ColorSchemePath != "" {
			if w, err := colorscheme.Watch(cfg.ColorSchemePath); err == nil {
				scheme = w.Current
			}
		}
		PrintColors(scheme)
		return
	}

	ed, err := NewEditor(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cmantic: %v\n", err)
		os.Exit(1)
	}
	defer ed.Close()

	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "cmantic: failed to init terminal: %v\n", err)
		os.Exit(1)
	}
	defer term.Close()

	if flag.NArg() > 0 {
		for _, filename := range flag.Args() {
			if err := ed.OpenFile(filename); err != nil {
				term.Close()
				fmt.Fprintf(os.Stderr, "cmantic: failed to open %s: %v\n", filename, err)
				os.Exit(1)
			}
		}
	} else {
		ed.OpenScratch()
	}

	ed.Run()
}
