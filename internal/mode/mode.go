package mode

import (
	"github.com/cmantic/cmantic/internal/position"
	"github.com/cmantic/cmantic/internal/view"
)

// Mode is one of the modal editor's states (§4.J).
type Mode int

const (
	Normal Mode = iota
	Insert
	Menu
	Delete
	Goto
	Search
	Yank
	FileSearch
	GotoDefinition
	Cwd
	Prompt
	Replace
)

// PromptResultKind tags which arm of the Prompt result union is set.
type PromptResultKind int

const (
	PromptString PromptResultKind = iota
	PromptInt
	PromptFloat
	PromptBool
	PromptKeyResult
)

// PromptResult is the typed `(string|int|float|bool|key)` union Prompt
// mode resolves to.
type PromptResult struct {
	Kind PromptResultKind
	Str  string
	Int  int
	Flt  float64
	Bool bool
	Key  Key
}

// PromptContinuation is invoked when Prompt mode resolves, with ok=false
// on cancellation (Esc), matching §5's cancellation contract.
type PromptContinuation func(result PromptResult, ok bool)

// Clipboard is the §6 OS clipboard boundary the mode package pushes
// yanked/deleted text through.
type Clipboard interface {
	Set(string) error
	Get() (string, error)
}

// Definitions is the subset of §4.D's parse result the Goto/GotoDefinition
// flow consults: definitions by name in the active buffer.
type Definitions interface {
	FindDefinition(name string) (position.Range, bool)
	IdentifierAt(p position.Pos) (string, bool)
}

// State is the modal state machine's live state: the active mode, the
// view it operates on, and the per-mode side-buffers (search text, goto
// digits, prompt continuation) §4.J describes.
type State struct {
	Mode Mode
	View *view.View
	Clip Clipboard
	Defs Definitions

	visualLine bool // `S` forces x=0 anchors and whole-line operands

	searchBuf       []rune
	searchTerm      string
	searchForward   bool
	preSearchCursor position.Pos

	gotoDigits string

	promptBuf     []rune
	promptCont    PromptContinuation
	promptOK      func(string) (PromptResult, bool)
	promptHist    []string // command history, shared across StartPrompt calls (SUPPLEMENTED FEATURES #2)
	promptHistIdx int      // -1 when not navigating

	pendingOperator Mode // Delete/Yank/Replace: which operator is pending a selector/motion
	operatorStart   []position.Pos
	awaitingObject  bool // `a` pressed in operator mode, awaiting the object key (`aw`)
}

// New returns a state machine in Normal mode over v.
func New(v *view.View, clip Clipboard, defs Definitions) *State {
	return &State{Mode: Normal, View: v, Clip: clip, Defs: defs}
}

// enter runs the cleanup/setup for transitioning into m (§4.J "transitions
// on entry run a cleanup").
func (s *State) enter(m Mode) {
	switch m {
	case Insert:
		s.View.BeginGroup()
	case Search:
		s.searchBuf = s.searchBuf[:0]
		s.preSearchCursor = s.View.Primary().Pos
	case Goto:
		s.gotoDigits = ""
	case Delete, Yank, Replace:
		if ranges, ok := s.visualRanges(); ok {
			// Each cursor starts the operation at its selection's start,
			// so undoing the group puts it back there.
			for i, c := range s.View.Cursors {
				if !ranges[i].A.Equal(ranges[i].B) {
					c.Pos = ranges[i].A
				}
			}
			s.applyRanges(m, ranges)
			s.View.ClearVisual()
			s.visualLine = false
			s.Mode = Normal
			return
		}
		s.pendingOperator = m
		s.operatorStart = cursorPositions(s.View)
		s.awaitingObject = false
	}
	s.Mode = m
}

// leave runs the cleanup for transitioning out of m.
func (s *State) leave(m Mode) {
	switch m {
	case Insert:
		s.View.EndGroup()
		trimTrailingWhitespaceAtCursors(s.View)
	case Search:
		s.View.ClearVisual()
	}
}

// Esc implements §5 cancellation: pressing Esc in any non-Normal mode
// exits that mode, invoking a pending prompt continuation with ok=false.
func (s *State) Esc() {
	if s.Mode == Prompt && s.promptCont != nil {
		cont := s.promptCont
		s.promptCont = nil
		s.leave(s.Mode)
		s.Mode = Normal
		cont(PromptResult{}, false)
		return
	}
	if s.Mode == Search {
		s.View.MoveTo(s.preSearchCursor)
	}
	prev := s.Mode
	s.leave(prev)
	s.Mode = Normal
	s.awaitingObject = false
	s.View.CollapseCursors()
	s.View.ClearVisual()
}

func cursorPositions(v *view.View) []position.Pos {
	out := make([]position.Pos, len(v.Cursors))
	for i, c := range v.Cursors {
		out[i] = c.Pos
	}
	return out
}

func trimTrailingWhitespaceAtCursors(v *view.View) {
	for _, c := range v.Cursors {
		line := v.Buf.Line(c.Pos.Y)
		end := len(line)
		for end > 0 && (line[end-1] == ' ' || line[end-1] == '\t') {
			end--
		}
		if end < len(line) {
			v.Buf.Remove(position.Pos{X: end, Y: c.Pos.Y}, position.Pos{X: len(line), Y: c.Pos.Y}, 0)
			if c.Pos.X > end {
				c.Pos.X = end
			}
		}
	}
}
