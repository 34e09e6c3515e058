package mode

// handleSearch implements Search mode (§4.J `/` and `?`): keystrokes
// accumulate into the search buffer, with a live preview jump on every
// keystroke; Enter commits the term and returns to Normal at the match;
// Backspace shrinks the buffer and re-previews from the pre-search cursor.
func (s *State) handleSearch(k Key) {
	switch {
	case k.Printable():
		s.searchBuf = append(s.searchBuf, k.Rune)
	case k.Name == KeyBackspace:
		if len(s.searchBuf) > 0 {
			s.searchBuf = s.searchBuf[:len(s.searchBuf)-1]
		}
	case k.Name == KeyEnter:
		s.searchTerm = string(s.searchBuf)
		s.leave(Search)
		s.Mode = Normal
		return
	default:
		return
	}
	term := string(s.searchBuf)
	if term == "" {
		s.View.MoveTo(s.preSearchCursor)
		return
	}
	s.View.FindFrom(s.preSearchCursor, term, s.searchForward)
}
