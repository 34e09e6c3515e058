package fileio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cmantic/cmantic/internal/buffer"
	"github.com/cmantic/cmantic/internal/token"
)

func TestLoadDetectsCRLFAndLanguage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.py")
	if err := os.WriteFile(path, []byte("a = 1\r\nb = 2\r\n"), 0644); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Endline != buffer.CRLF {
		t.Fatalf("expected CRLF detected")
	}
	if loaded.Lang != token.Python {
		t.Fatalf("expected Python language, got %v", loaded.Lang)
	}
}

func TestSaveRoundTripsLastLineWithoutTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	b := buffer.FromBytes(path, []byte("one\ntwo\nthree"), buffer.LF, token.Text)
	if _, err := Save(path, b); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "one\ntwo\nthree" {
		t.Fatalf("round trip mismatch: %q", got)
	}
}

func TestListDirSortsDirsFirst(t *testing.T) {
	dir := t.TempDir()
	os.Mkdir(filepath.Join(dir, "zzz_dir"), 0755)
	os.WriteFile(filepath.Join(dir, "aaa_file"), nil, 0644)

	entries, err := ListDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 || !entries[0].IsDir {
		t.Fatalf("expected directory first, got %+v", entries)
	}
}
