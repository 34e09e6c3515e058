// Package fileio implements the §6 file I/O boundary: load (with endline
// and language detection), save, directory listing, and the
// was-modified-since check colour-scheme hot-reload uses. Grounded on
// the teacher's Editor.LoadFile/LoadFromReader (editor.go), generalized
// from "always reuse or append a *Buffer" to a plain bytes-in/bytes-out
// boundary the internal/buffer package's FromBytes/ToString sit behind.
package fileio

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cmantic/cmantic/internal/buffer"
	"github.com/cmantic/cmantic/internal/token"
)

// Loaded is the result of reading a file from disk (§6 Load).
type Loaded struct {
	Content []byte
	Endline buffer.Endline
	Lang    token.Language
	ModTime time.Time
}

// Load reads path, detecting its endline convention (CRLF if any line
// contains "\r\n") and its language tag from the extension (§4.C).
func Load(path string) (Loaded, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Loaded{}, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return Loaded{}, err
	}
	endline := buffer.LF
	if strings.Contains(string(content), "\r\n") {
		endline = buffer.CRLF
	}
	return Loaded{
		Content: content,
		Endline: endline,
		Lang:    token.LanguageByExtension(path),
		ModTime: info.ModTime(),
	}, nil
}

// Create makes an empty file (and any missing parent directories) at
// path, matching the teacher's "open a nonexistent path creates it"
// LoadFile behavior, and returns it as an empty Loaded ready to edit.
func Create(path string) (Loaded, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return Loaded{}, err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return Loaded{}, err
	}
	f.Close()
	info, err := os.Stat(path)
	if err != nil {
		return Loaded{}, err
	}
	return Loaded{Endline: buffer.LF, Lang: token.LanguageByExtension(path), ModTime: info.ModTime()}, nil
}

// Save writes b's lines joined by its endline convention (§6 Save): the
// last line has no trailing newline.
func Save(path string, b *buffer.Buffer) (time.Time, error) {
	text := b.ToString()
	if b.Endline == buffer.CRLF {
		text = strings.ReplaceAll(text, "\n", "\r\n")
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return time.Time{}, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// Entry is one directory listing entry (§6 Directory list).
type Entry struct {
	Name  string
	IsDir bool
}

// ListDir returns dir's immediate children, directories first, each
// alphabetically.
func ListDir(dir string) ([]Entry, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	out := make([]Entry, len(ents))
	for i, e := range ents {
		out[i] = Entry{Name: e.Name(), IsDir: e.IsDir()}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsDir != out[j].IsDir {
			return out[i].IsDir
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// WalkFiles recursively lists every regular file under root, skipping
// .git and node_modules directory trees, matching the teacher's
// startFileFuzzyFinder candidate gathering (editor.go).
func WalkFiles(root string) ([]string, error) {
	var out []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if info.Name() == ".git" || info.Name() == "node_modules" {
				return filepath.SkipDir
			}
			return nil
		}
		out = append(out, path)
		return nil
	})
	return out, err
}

// WasModifiedSince reports whether path's modification time is after
// stored.
func WasModifiedSince(path string, stored time.Time) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.ModTime().After(stored), nil
}
