package mode

// Handle dispatches one input event through the current mode's handler.
// Every mode's handler is a total function: unrecognized keys are a
// silent no-op rather than an error (§7 propagation policy).
func (s *State) Handle(k Key) {
	if k.Name == KeyEsc {
		s.Esc()
		return
	}
	switch s.Mode {
	case Normal:
		s.handleNormal(k)
	case Insert:
		s.handleInsert(k)
	case Delete, Yank, Replace:
		s.handleOperator(k)
	case Search:
		s.handleSearch(k)
	case Goto:
		s.handleGoto(k)
	case Prompt:
		s.handlePrompt(k)
	case Menu, FileSearch, GotoDefinition, Cwd:
		// These modes are driven by the host application's menu/finder
		// UI (internal/pane), which feeds selections back through
		// EnterMode/Esc; Handle only needs to own Normal/Insert/operator/
		// search/goto/prompt, the buffer-and-edit-engine's own modes.
	}
}

// EnterMode transitions into m, running its entry cleanup.
func (s *State) EnterMode(m Mode) { s.enter(m) }

// StartVisual enters a visual selection: `s` snapshots cursors as
// visual-start anchors, `S` additionally forces whole-line operands.
func (s *State) StartVisual(wholeLine bool) {
	if wholeLine {
		for _, c := range s.View.Cursors {
			c.Pos.X = 0
		}
	}
	s.View.StartVisual()
	s.visualLine = wholeLine
}
