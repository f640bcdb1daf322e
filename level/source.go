package level

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Source supplies levels by number
type Source interface {
	Load(n int) (*Level, error)
	Count() int
}

// FSSource reads screen.N.txt files from a file system
type FSSource struct {
	fsys fs.FS
	name string
}

// NewFSSource wraps any fs.FS holding screen files at its root
func NewFSSource(fsys fs.FS, name string) *FSSource {
	return &FSSource{fsys: fsys, name: name}
}

// NewDirSource reads levels from a directory on disk
func NewDirSource(dir string) *FSSource {
	return NewFSSource(os.DirFS(dir), dir)
}

// FileName returns the file name of level n
func FileName(n int) string {
	return fmt.Sprintf("screen.%d.txt", n)
}

// NumberFromPath extracts the level number from a screen file path
func NumberFromPath(path string) (int, bool) {
	base := filepath.Base(path)
	if !strings.HasPrefix(base, "screen.") || !strings.HasSuffix(base, ".txt") {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(base, "screen."), ".txt"))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Load reads and parses level n
func (s *FSSource) Load(n int) (*Level, error) {
	f, err := s.fsys.Open(FileName(n))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %d in %s", ErrNotFound, n, s.name)
		}
		return nil, fmt.Errorf("level: open %d: %w", n, err)
	}
	defer f.Close()

	l, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("level %d: %w", n, err)
	}
	l.Number = n
	return l, nil
}

// Count returns the highest level number n such that every level from 1 to n exists
func (s *FSSource) Count() int {
	n := 0
	for {
		if _, err := fs.Stat(s.fsys, FileName(n+1)); err != nil {
			return n
		}
		n++
	}
}

// Name describes where the levels come from
func (s *FSSource) Name() string {
	return s.name
}
