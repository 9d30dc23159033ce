package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"abook/internal/domain"
)

// FileLineStore persists the contact book as one flat text file, one record
// per line.
type FileLineStore struct {
	path string
	mu   sync.Mutex
}

// NewFileLineStore returns a FileLineStore backed by the file at path.
func NewFileLineStore(path string) *FileLineStore {
	return &FileLineStore{path: path}
}

// ReadAll returns every line in on-disk order. A missing file reads as empty.
func (s *FileLineStore) ReadAll() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return readLines(s.path)
}

// WriteAll replaces the whole file with lines.
func (s *FileLineStore) WriteAll(lines []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeLines(s.path, lines)
}

// Append adds lines to the end of the file without rewriting it. This is the
// bulk-ingest path; single-record mutations always go through WriteAll.
func (s *FileLineStore) Append(lines []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(lines) == 0 {
		return nil
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(strings.Join(lines, "\n") + "\n"); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// readLines reads path into lines; a missing file is not an error.
// Empty lines are writer artifacts (the trailing newline) and are dropped.
func readLines(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, line := range strings.Split(string(b), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// writeLines writes lines via a temp file, then atomically replaces path, so
// a crash mid-write leaves either the old or the new content.
func writeLines(path string, lines []string) error {
	var buf strings.Builder
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.WriteString(buf.String()); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(0o600); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}

// Compile-time assertion that FileLineStore implements domain.LineStore.
var _ domain.LineStore = (*FileLineStore)(nil)
