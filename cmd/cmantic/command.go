package main

// Colon command line (`:w`, `:q`, `:e <path>`, a bare line number, `!<shell>`),
// SUPPLEMENTED FEATURES #1/#2. Grounded on the teacher's Command type and
// IsValidCommand/HandleAndSaveToHistory (command.go), adapted from a
// switch over known verb strings against a single global Editor onto
// this build's Editor/openBuffer/view.View split.

import (
	"strconv"
	"strings"

	"github.com/cmantic/cmantic/internal/fileio"
	"github.com/cmantic/cmantic/internal/mode"
	"github.com/cmantic/cmantic/internal/position"
	"github.com/cmantic/cmantic/internal/subprocess"
)

// startCommandPrompt enters Prompt mode bound to the colon-command
// grammar: Enter runs runCommand on the typed text, Esc does nothing
// further (the typed text is simply discarded).
func (ed *Editor) startCommandPrompt() {
	st := ed.current().state
	st.StartPrompt(
		func(text string) (mode.PromptResult, bool) {
			return mode.PromptResult{Kind: mode.PromptString, Str: text}, true
		},
		func(result mode.PromptResult, ok bool) {
			if !ok {
				return
			}
			cmd := strings.TrimSpace(result.Str)
			if isValidCommand(cmd) {
				st.PushHistory(cmd)
			}
			ed.runCommand(cmd)
		},
	)
}

// isValidCommand reports whether cmd is worth keeping in history: a
// bare line number is not (the teacher's IsValidCommand excludes pure
// integers from history since every goto-line retyping would otherwise
// flood it).
func isValidCommand(cmd string) bool {
	if cmd == "" {
		return false
	}
	if _, err := strconv.Atoi(cmd); err == nil {
		return false
	}
	return true
}

// runCommand executes one colon command against the active buffer/editor.
func (ed *Editor) runCommand(cmd string) {
	if cmd == "" {
		return
	}
	if n, err := strconv.Atoi(cmd); err == nil {
		ed.gotoLine(n)
		return
	}
	if rest, ok := strings.CutPrefix(cmd, "!"); ok {
		ed.runShell(rest)
		return
	}

	fields := strings.Fields(cmd)
	verb := fields[0]
	switch verb {
	case "w", "W":
		if len(fields) > 1 {
			ed.saveAs(fields[1])
		} else {
			ed.save()
		}
	case "q", "Q":
		ed.closeCurrentOrQuit()
	case "q!", "Q!":
		ed.quit = true
	case "wq", "WQ", "x", "X":
		ed.save()
		ed.closeCurrentOrQuit()
	case "e", "edit":
		if len(fields) > 1 {
			if err := ed.OpenFile(fields[1]); err != nil {
				ed.message = ed.log.Errorf("command", "open %s: %v", fields[1], err)
			}
		}
	case "reload":
		ed.reloadCurrent()
	case "n", "bn":
		if len(ed.open) > 1 {
			ed.nextBuffer()
		}
	default:
		ed.message = "unknown command: " + verb
	}
}

// gotoLine implements the bare `:N` line-jump command.
func (ed *Editor) gotoLine(n int) {
	v := ed.current().view
	y := n - 1
	if y < 0 {
		y = 0
	}
	if last := v.Buf.LineCount() - 1; y > last {
		y = last
	}
	v.PushJump(v.Primary().Pos)
	v.MoveTo(position.Pos{X: 0, Y: y})
}

// saveAs writes the active buffer to a different path without rebinding
// its Filename (matching the teacher's `:w <path>` "save a copy" sense).
func (ed *Editor) saveAs(path string) {
	ob := ed.current()
	if _, err := fileio.Save(path, ob.buf); err != nil {
		ed.message = ed.log.Errorf("command", "write %s: %v", path, err)
		return
	}
	ed.message = "wrote " + path
}

// reloadCurrent re-reads the active buffer's file from disk, discarding
// in-memory edits (§9 supplemented "dirty-file-on-disk" companion).
func (ed *Editor) reloadCurrent() {
	ob := ed.current()
	if ob.buf.Anonymous {
		ed.message = "no file to reload"
		return
	}
	oldIdx := ed.active
	path := ob.buf.Filename
	if err := ed.OpenFile(path); err != nil {
		ed.message = ed.log.Errorf("command", "reload: %v", err)
		return
	}
	ed.open = append(ed.open[:oldIdx], ed.open[oldIdx+1:]...)
	ed.active = len(ed.open) - 1
	ed.arena.Node(ed.editPaneID).View = ed.current().view
}

// closeCurrentOrQuit implements `:q`: closes the active buffer if more
// than one is open, otherwise quits the editor (a single-buffer editor
// has nothing left to show once its only buffer is closed).
func (ed *Editor) closeCurrentOrQuit() {
	if len(ed.open) <= 1 {
		ed.quit = true
		return
	}
	ed.open = append(ed.open[:ed.active], ed.open[ed.active+1:]...)
	if ed.active >= len(ed.open) {
		ed.active = len(ed.open) - 1
	}
	ed.arena.Node(ed.editPaneID).View = ed.current().view
}

// runShell launches cmd as a detached build-style job, reusing the
// build subprocess slot so its output streams into the status line
// exactly like a `:!` the teacher's command.go runs through os/exec.
func (ed *Editor) runShell(cmd string) {
	if cmd == "" {
		return
	}
	if ed.build != nil {
		if _, exited, _ := ed.build.Poll(); !exited {
			ed.message = "a command is already running"
			return
		}
	}
	job, err := subprocess.Start(cmd)
	if err != nil {
		ed.message = ed.log.Errorf("shell", "start: %v", err)
		return
	}
	ed.build = job
	ed.message = "running: " + cmd
}
