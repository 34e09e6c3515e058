package main

// Editor is the top-level controller this build assembles from the
// internal packages, playing the role of the teacher's monolithic
// Editor struct (editor.go) but holding only references to the
// collaborators §2's component table describes instead of every field
// a specific feature (LSP, Ollama) needed. It owns the buffer list, one
// pane arena, one modal mode.State per buffer, the file fuzzy finder,
// and the handful of cross-cutting services (clipboard, colour scheme,
// logging, build subprocess) the core treats as external collaborators.

import (
	"fmt"
	"path/filepath"

	"github.com/cmantic/cmantic/internal/buffer"
	"github.com/cmantic/cmantic/internal/clipboard"
	"github.com/cmantic/cmantic/internal/colorscheme"
	"github.com/cmantic/cmantic/internal/elog"
	"github.com/cmantic/cmantic/internal/fileio"
	"github.com/cmantic/cmantic/internal/mode"
	"github.com/cmantic/cmantic/internal/pane"
	"github.com/cmantic/cmantic/internal/subprocess"
	"github.com/cmantic/cmantic/internal/term"
	"github.com/cmantic/cmantic/internal/token"
	"github.com/cmantic/cmantic/internal/view"
)

// openBuffer pairs one buffer with the view and modal state that operate
// on it, so switching the active buffer is just swapping which triple
// the editor and the edit pane point at.
type openBuffer struct {
	buf   *buffer.Buffer
	view  *view.View
	state *mode.State
	top   int // first visible line (vertical scroll), per pane
}

// Editor is the per-process controller the main loop drives.
type Editor struct {
	cfg Config

	open   []*openBuffer
	active int

	arena      *pane.Arena
	editPaneID int

	clip   mode.Clipboard
	scheme *colorscheme.Watcher
	log    *elog.Logger
	build  *subprocess.Job
	finder *finder

	message string
	quit    bool
}

// NewEditor wires the cross-cutting services (§6 collaborators): the OS
// clipboard with an in-process fallback, the optional log file, and the
// colour scheme (hot-reloading if -colorscheme names a file, the
// built-in default otherwise).
func NewEditor(cfg Config) (*Editor, error) {
	ed := &Editor{cfg: cfg}

	if _, err := (clipboard.OS{}).Get(); err != nil {
		ed.clip = &clipboard.Fallback{}
	} else {
		ed.clip = clipboard.OS{}
	}

	logPath := ""
	if cfg.UseLogFile {
		logPath = cfg.LogFilePath
	}
	log, err := elog.New(cfg.NumLogsInWindow, logPath)
	if err != nil {
		return nil, fmt.Errorf("init log: %w", err)
	}
	ed.log = log

	if cfg.ColorSchemePath != "" {
		w, err := colorscheme.Watch(cfg.ColorSchemePath)
		if err != nil {
			return nil, fmt.Errorf("load colorscheme: %w", err)
		}
		ed.scheme = w
	}

	return ed, nil
}

// Close releases every resource NewEditor acquired; safe to defer
// immediately after construction.
func (ed *Editor) Close() {
	if ed.build != nil {
		ed.build.Kill()
	}
	if ed.scheme != nil {
		ed.scheme.Close()
	}
	ed.log.Close()
}

func (ed *Editor) activeScheme() *colorscheme.Scheme {
	if ed.scheme != nil {
		return ed.scheme.Current
	}
	return colorscheme.Default()
}

// OpenScratch opens an anonymous, never-saved buffer (§6 "no file opens
// the scratch buffer").
func (ed *Editor) OpenScratch() {
	ed.addBuffer(buffer.New("*scratch*", token.Text))
}

// OpenFile loads path from disk (creating it if absent, matching the
// teacher's LoadFile convention) and opens it as a new buffer.
func (ed *Editor) OpenFile(path string) error {
	loaded, err := fileio.Load(path)
	if err != nil {
		loaded, err = fileio.Create(path)
		if err != nil {
			return err
		}
	}
	b := buffer.FromBytes(path, loaded.Content, loaded.Endline, loaded.Lang)
	b.TabWidth = ed.cfg.DefaultTabWidth
	b.Journal.MarkClean()
	ed.addBuffer(b)
	return nil
}

func (ed *Editor) addBuffer(b *buffer.Buffer) {
	if b.TabWidth == 0 && ed.cfg.DefaultTabWidth > 0 {
		b.TabWidth = ed.cfg.DefaultTabWidth
	}
	v := view.New(b)
	st := mode.New(v, ed.clip, b)
	ob := &openBuffer{buf: b, view: v, state: st}
	ed.open = append(ed.open, ob)
	ed.active = len(ed.open) - 1

	if ed.arena == nil {
		ed.arena = pane.NewArena(v)
		ed.editPaneID = ed.arena.Root()
	} else {
		ed.arena.Node(ed.editPaneID).View = v
	}
}

func (ed *Editor) current() *openBuffer { return ed.open[ed.active] }

// switchTo makes buffer index i the active one, rebinding the edit pane.
func (ed *Editor) switchTo(i int) {
	if i < 0 || i >= len(ed.open) || i == ed.active {
		return
	}
	ed.active = i
	ed.arena.Node(ed.editPaneID).View = ed.open[i].view
}

func (ed *Editor) nextBuffer() { ed.switchTo((ed.active + 1) % len(ed.open)) }
func (ed *Editor) prevBuffer() { ed.switchTo((ed.active - 1 + len(ed.open)) % len(ed.open)) }

// save writes the active buffer to disk (§6 Save, §4.G clean-index
// rule): IOError leaves the clean index untouched so modified stays
// true, matching §7's "save leaves the clean-undo index untouched" on
// failure.
func (ed *Editor) save() {
	ob := ed.current()
	if ob.buf.Anonymous {
		ed.message = "cannot save an anonymous buffer"
		return
	}
	if _, err := fileio.Save(ob.buf.Filename, ob.buf); err != nil {
		ed.message = ed.log.Errorf("save", "write %s: %v", ob.buf.Filename, err)
		return
	}
	ob.buf.Journal.MarkClean()
	ed.message = fmt.Sprintf("wrote %s", ob.buf.Filename)
}

// runBuild launches the configured build command, refusing to start a
// second one while the first is still running (§5: "a new build while
// one is running prompts for confirmation" — simplified here to a
// one-line refusal since this core has no confirmation-prompt flow).
func (ed *Editor) runBuild() {
	if ed.cfg.BuildCommand == "" {
		ed.message = "no build command configured (-build-cmd)"
		return
	}
	if ed.build != nil {
		if _, exited, _ := ed.build.Poll(); !exited {
			ed.message = "build already running"
			return
		}
	}
	job, err := subprocess.Start(ed.cfg.BuildCommand)
	if err != nil {
		ed.message = ed.log.Errorf("build", "start: %v", err)
		return
	}
	ed.build = job
	ed.message = "build started: " + ed.cfg.BuildCommand
}

// pollBackground drains the build subprocess and colour-scheme watcher
// once per frame (§5: "the only place... a new goroutine's shared state"
// never reaches the main loop directly; everything funnels through a
// non-blocking Poll).
func (ed *Editor) pollBackground() {
	if ed.build != nil {
		lines, exited, err := ed.build.Poll()
		if len(lines) > 0 {
			ed.message = subprocess.JoinOutput(lines)
		}
		if exited {
			if err != nil {
				ed.message = ed.log.Errorf("build", "exited: %v", err)
			} else {
				ed.message = "build finished"
			}
		}
	}
	if ed.scheme != nil {
		ed.scheme.Poll()
	}
}

// scrollTop computes the pane's first visible line so the primary
// cursor stays within [top, top+h).
func scrollTop(prevTop, cursorY, h int) int {
	if h <= 0 {
		return prevTop
	}
	if cursorY < prevTop {
		return cursorY
	}
	if cursorY >= prevTop+h {
		return cursorY - h + 1
	}
	return prevTop
}

// Run drives the per-frame loop (§5): poll one key, dispatch it,
// drain background subprocess/watcher state, reflow and redraw every
// pane, repeat until quit.
func (ed *Editor) Run() {
	for !ed.quit {
		w, h := term.Size()
		ed.arena.Reflow(w, h)

		ed.render(w, h)

		k, ok := term.PollKey()
		if !ok {
			continue
		}
		ed.handleKey(k)
		ed.pollBackground()
		ed.arena.Compact()
	}
}

func (ed *Editor) render(w, h int) {
	term.Clear()
	scheme := ed.activeScheme()
	if ed.finder != nil {
		ed.drawFinder()
	}
	ed.drawPane(ed.arena.Root(), scheme)
	ed.drawStatusLine(w, h, scheme)
	ed.positionCursor()
	term.Flush()
}

func (ed *Editor) drawPane(idx int, scheme *colorscheme.Scheme) {
	n := ed.arena.Node(idx)
	if len(n.Children) > 0 {
		for _, c := range n.Children {
			ed.drawPane(c, scheme)
		}
		return
	}
	switch n.Kind {
	case pane.Edit:
		if n.View == ed.current().view {
			ed.current().top = scrollTop(ed.current().top, n.View.Primary().Pos.Y, n.Rect.H)
		}
		top := 0
		for _, ob := range ed.open {
			if ob.view == n.View {
				top = ob.top
			}
		}
		term.DrawEdit(n, scheme, top)
	case pane.Menu:
		term.DrawMenu(n)
	case pane.Status:
		term.DrawStatus(n, scheme)
	}
}

func (ed *Editor) drawStatusLine(w, h int, scheme *colorscheme.Scheme) {
	ob := ed.current()
	name := ob.buf.Filename
	if ob.buf.Anonymous {
		name = filepath.Base(ob.buf.Filename)
	}
	mark := ""
	if ob.buf.Journal.Modified() {
		mark = " [+]"
	}
	c := ob.view.Primary().Pos
	status := fmt.Sprintf(" %s%s  %s  %d,%d  %s", name, mark, modeName(ob.state.Mode), c.Y+1, c.X+1, ed.message)
	if ob.state.Mode == mode.Prompt {
		status = ":" + ob.state.PromptText()
	}
	p := &pane.Pane{Kind: pane.Status, Rect: pane.Rect{X: 0, Y: h - 1, W: w, H: 1}, StatusText: status}
	term.DrawStatus(p, scheme)
}

func (ed *Editor) positionCursor() {
	ob := ed.current()
	if ob.state.Mode == mode.Prompt {
		_, h := term.Size()
		term.SetCursor(1+len(ob.state.PromptText()), h-1)
		return
	}
	n := ed.arena.Node(ed.editPaneID)
	c := ob.view.Primary().Pos
	screenY := n.Rect.Y + (c.Y - ob.top)
	screenX := n.Rect.X + c.X
	if screenY < n.Rect.Y || screenY >= n.Rect.Y+n.Rect.H {
		term.SetCursor(-1, -1)
		return
	}
	term.SetCursor(screenX, screenY)
}

func modeName(m mode.Mode) string {
	switch m {
	case mode.Normal:
		return "NORMAL"
	case mode.Insert:
		return "INSERT"
	case mode.Menu:
		return "MENU"
	case mode.Delete:
		return "DELETE"
	case mode.Goto:
		return "GOTO"
	case mode.Search:
		return "SEARCH"
	case mode.Yank:
		return "YANK"
	case mode.FileSearch:
		return "FIND-FILE"
	case mode.GotoDefinition:
		return "GOTO-DEF"
	case mode.Cwd:
		return "CWD"
	case mode.Prompt:
		return "PROMPT"
	case mode.Replace:
		return "REPLACE"
	default:
		return "?"
	}
}

// handleKey implements the operational keys §4.J lists alongside the
// per-mode tables (save/undo/redo/build/quit/pane-nav), intercepted at
// the editor level since they reach outside a single buffer's modal
// state, then falls through to the active buffer's mode.State for
// everything else.
func (ed *Editor) handleKey(k mode.Key) {
	st := ed.current().state
	if ed.finder != nil {
		ed.handleFinderKey(k)
		return
	}
	if st.Mode == mode.Normal && k.Control {
		switch k.Rune {
		case 's':
			ed.save()
			return
		case 'q':
			ed.quit = true
			return
		case 'b':
			ed.runBuild()
			return
		case 'n':
			if len(ed.open) > 1 {
				ed.nextBuffer()
			}
			return
		case 'p':
			if len(ed.open) > 1 {
				ed.prevBuffer()
			}
			return
		case 'o':
			ed.current().view.JumpBack()
			return
		case 'u':
			ed.current().view.JumpForward()
			return
		case 'f':
			ed.startFileFinder()
			return
		}
	}
	if st.Mode == mode.Normal && !k.Control && k.Rune == ed.cfg.LeaderKey {
		ed.handleLeader()
		return
	}
	if st.Mode == mode.Normal && !k.Control && k.Rune == ':' {
		ed.startCommandPrompt()
		return
	}
	st.Handle(k)
}

// handleLeader reads one more key for the pane-nav leader sequences
// (§4.K): \v splits the active pane vertically, \x closes it.
func (ed *Editor) handleLeader() {
	k, ok := term.PollKey()
	if !ok {
		return
	}
	switch k.Rune {
	case 'v':
		sibling := ed.arena.Split(ed.editPaneID, pane.Edit, false)
		ed.arena.Node(sibling).View = ed.current().view
		ed.editPaneID = sibling - 1 // the old pane's content moved to firstChild
	case 's':
		sibling := ed.arena.Split(ed.editPaneID, pane.Edit, true)
		ed.arena.Node(sibling).View = ed.current().view
		ed.editPaneID = sibling - 1
	case 'x':
		if ed.editPaneID != ed.arena.Root() {
			ed.arena.Close(ed.editPaneID)
			ed.editPaneID = ed.arena.Root()
		}
	}
}
