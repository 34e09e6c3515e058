package colorscheme

import "testing"

func TestParseHexAndTriple(t *testing.T) {
	src := []byte("keyword #ff8800\nstring 10 20 30\n")
	s, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := s.Get(Keyword); got != (Color{0xff, 0x88, 0x00}) {
		t.Fatalf("keyword = %+v", got)
	}
	if got := s.Get(String); got != (Color{10, 20, 30}) {
		t.Fatalf("string = %+v", got)
	}
	if got := s.Get(Comment); got != Default().Get(Comment) {
		t.Fatalf("comment should fall back to default, got %+v", got)
	}
}

func TestParseRejectsMalformedColor(t *testing.T) {
	if _, err := Parse([]byte("keyword notacolor\n")); err == nil {
		t.Fatalf("expected an error for a malformed color spec")
	}
}
