// Package fuzzy implements the subsequence-matching scorer behind the
// FileSearch/GotoDefinition finder menus (§4.J, SUPPLEMENTED FEATURES #3),
// adapted from the teacher's fuzzyMatch.
package fuzzy

import "strings"

// Match reports whether query is a (case-insensitive) subsequence of
// target and, if so, a score rewarding consecutive runs and matches
// that start right after a path separator, so "buf" ranks
// "internal/buffer/buffer.go" above "banana_ukulele_flute.go".
func Match(query, target string) (score int, ok bool) {
	if query == "" {
		return 0, true
	}

	q := strings.ToLower(query)
	t := strings.ToLower(target)

	targetIdx := 0
	lastMatchIdx := -1
	for _, qr := range q {
		found := false
		for i := targetIdx; i < len(t); i++ {
			if rune(t[i]) != qr {
				continue
			}
			if lastMatchIdx != -1 && i == lastMatchIdx+1 {
				score += 20
			}
			if i == 0 || isSeparator(t[i-1]) {
				score += 20
			}
			if lastMatchIdx != -1 {
				score -= i - lastMatchIdx - 1
			}
			lastMatchIdx = i
			targetIdx = i + 1
			found = true
			break
		}
		if !found {
			return 0, false
		}
	}
	return score, true
}

func isSeparator(b byte) bool {
	return b == '/' || b == '_' || b == '.' || b == '-'
}

// Result pairs a candidate with its score and original index, so callers
// can map a filtered/sorted list back to the unfiltered source slice.
type Result struct {
	Text  string
	Index int
	Score int
}

// Filter scores every candidate against query, drops non-matches, and
// returns the survivors ordered best-first (stable on ties, so
// candidates keep their relative input order when scores are equal).
func Filter(query string, candidates []string) []Result {
	out := make([]Result, 0, len(candidates))
	for i, c := range candidates {
		if score, ok := Match(query, c); ok {
			out = append(out, Result{Text: c, Index: i, Score: score})
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Score > out[j-1].Score; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
