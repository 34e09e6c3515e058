package fuzzy

import "testing"

func TestMatchSubsequence(t *testing.T) {
	if _, ok := Match("mbuf", "internal/mode/buffer.go"); !ok {
		t.Fatal("expected mbuf to match as a subsequence")
	}
	if _, ok := Match("xyz", "buffer.go"); ok {
		t.Fatal("did not expect xyz to match buffer.go")
	}
}

func TestMatchEmptyQueryMatchesEverything(t *testing.T) {
	score, ok := Match("", "anything.go")
	if !ok || score != 0 {
		t.Fatalf("empty query should match with score 0, got %d, %v", score, ok)
	}
}

func TestMatchRewardsPostSeparatorAndConsecutive(t *testing.T) {
	sameDir, ok := Match("buf", "internal/buffer/buffer.go")
	if !ok {
		t.Fatal("expected match")
	}
	scattered, ok := Match("buf", "banana_ukulele_flute.go")
	if !ok {
		t.Fatal("expected match")
	}
	if sameDir <= scattered {
		t.Fatalf("expected a consecutive, separator-anchored match to score higher: %d vs %d", sameDir, scattered)
	}
}

func TestFilterOrdersBestFirstAndIsStableOnTies(t *testing.T) {
	candidates := []string{"internal/view/view.go", "internal/mode/view_helpers.go", "README.md"}
	results := Filter("view", candidates)
	if len(results) != 2 {
		t.Fatalf("expected 2 matches, got %d: %+v", len(results), results)
	}
	for _, r := range results {
		if r.Text == "README.md" {
			t.Fatalf("README.md should not match query %q", "view")
		}
	}
	if results[0].Index != 0 {
		t.Fatalf("expected the tied candidates to keep their input order, got %+v", results)
	}
}

func TestFilterPreservesOriginalIndex(t *testing.T) {
	candidates := []string{"a.go", "ab.go", "abc.go"}
	results := Filter("abc", candidates)
	if len(results) != 1 || results[0].Index != 2 {
		t.Fatalf("expected a single match at index 2, got %+v", results)
	}
}
