package mode

// StartPrompt enters Prompt mode (the `:` command line, §4.J/§5):
// validate is consulted on Enter to parse the accumulated text into a
// typed PromptResult, and cont receives the outcome (ok=false on Esc).
func (s *State) StartPrompt(validate func(string) (PromptResult, bool), cont PromptContinuation) {
	s.promptOK = validate
	s.promptCont = cont
	s.promptBuf = s.promptBuf[:0]
	s.promptHistIdx = -1
	s.enter(Prompt)
}

// PromptText returns the prompt buffer's current contents, for a host
// application drawing the command line (§4.K menu pane).
func (s *State) PromptText() string { return string(s.promptBuf) }

// PushHistory records cmd in the command-line history if it differs
// from the most recent entry, matching the teacher's
// HandleAndSaveToHistory dedup rule (command.go).
func (s *State) PushHistory(cmd string) {
	if cmd == "" {
		return
	}
	if n := len(s.promptHist); n > 0 && s.promptHist[n-1] == cmd {
		return
	}
	s.promptHist = append(s.promptHist, cmd)
}

// handlePrompt implements Prompt mode: keystrokes accumulate into the
// prompt buffer; Enter runs validate and resolves the continuation.
func (s *State) handlePrompt(k Key) {
	switch {
	case k.Printable():
		s.promptBuf = append(s.promptBuf, k.Rune)
	case k.Name == KeyBackspace:
		if len(s.promptBuf) > 0 {
			s.promptBuf = s.promptBuf[:len(s.promptBuf)-1]
		}
	case k.Name == KeyArrowUp:
		s.historyUp()
	case k.Name == KeyArrowDown:
		s.historyDown()
	case k.Name == KeyEnter:
		text := string(s.promptBuf)
		var result PromptResult
		ok := true
		if s.promptOK != nil {
			result, ok = s.promptOK(text)
		} else {
			result = PromptResult{Kind: PromptString, Str: text}
		}
		cont := s.promptCont
		s.promptCont = nil
		s.leave(Prompt)
		s.Mode = Normal
		if cont != nil {
			cont(result, ok)
		}
	}
}

// historyUp recalls the previous command-line entry (NavigateHistoryUp
// in the teacher's command.go), starting from the most recent the first
// time it's pressed.
func (s *State) historyUp() {
	if len(s.promptHist) == 0 {
		return
	}
	if s.promptHistIdx == -1 {
		s.promptHistIdx = len(s.promptHist) - 1
	} else if s.promptHistIdx > 0 {
		s.promptHistIdx--
	}
	s.promptBuf = []rune(s.promptHist[s.promptHistIdx])
}

// historyDown recalls the next command-line entry, clearing the buffer
// once navigation runs past the most recent entry.
func (s *State) historyDown() {
	if s.promptHistIdx == -1 {
		return
	}
	if s.promptHistIdx < len(s.promptHist)-1 {
		s.promptHistIdx++
		s.promptBuf = []rune(s.promptHist[s.promptHistIdx])
		return
	}
	s.promptHistIdx = -1
	s.promptBuf = s.promptBuf[:0]
}
