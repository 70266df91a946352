package highscore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// Store persists the table. Implementations must treat "nothing saved yet"
// as an empty table, not an error.
type Store interface {
	Load() ([]Entry, error)
	Save(entries []Entry) error
}

// Submitter is implemented by stores shared between concurrent sessions.
// Submit inserts one result against the canonical table and returns it.
type Submitter interface {
	Submit(e Entry) ([]Entry, error)
}

// Recorder is implemented by stores that also keep every finished game.
type Recorder interface {
	RecordGame(name string, score int) error
}

// FileStore keeps the table in a plain text file: alternating name and score lines.
type FileStore struct {
	path string
}

// NewFileStore creates a store for path. A leading ~ expands to the home directory.
func NewFileStore(path string) (*FileStore, error) {
	expanded, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: expanded}, nil
}

// Path returns the resolved file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the table. A missing file yields no entries and no error.
func (s *FileStore) Load() ([]Entry, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("highscore: cannot open %s: %w", s.path, err)
	}
	defer f.Close()

	entries, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("highscore: cannot read %s: %w", s.path, err)
	}
	return entries, nil
}

// Save rewrites the whole file through a temporary file and rename.
func (s *FileStore) Save(entries []Entry) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".highscores-*")
	if err != nil {
		return fmt.Errorf("highscore: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // gone after a successful rename

	if err := Encode(tmp, entries); err != nil {
		tmp.Close()
		return fmt.Errorf("highscore: cannot write scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("highscore: cannot write scores: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("highscore: cannot replace %s: %w", s.path, err)
	}
	return nil
}

// Encode writes entries in the text format.
func Encode(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%s\n%d\n", e.Name, e.Score); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Decode reads alternating name and score lines. Names are taken as
// written, so an empty line is an empty name. A trailing name without a
// score is ignored; a score that is not an integer is an error.
func Decode(r io.Reader) ([]Entry, error) {
	sc := bufio.NewScanner(r)

	var entries []Entry
	for sc.Scan() {
		name := strings.TrimSuffix(sc.Text(), "\r")
		if !sc.Scan() {
			break
		}
		score, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
		if err != nil {
			return nil, fmt.Errorf("bad score for %q: %w", name, err)
		}
		entries = append(entries, Entry{Name: name, Score: score})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("highscore: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], string(filepath.Separator))), nil
}

// SharedStore serializes access to a backing store for concurrent sessions
// and keeps the canonical table in memory.
type SharedStore struct {
	mu      sync.Mutex
	backing Store
	table   *Table
}

// NewSharedStore loads the backing store once. A load error leaves the table
// empty and is returned so the caller can log it.
func NewSharedStore(backing Store) (*SharedStore, error) {
	entries, err := backing.Load()
	return &SharedStore{backing: backing, table: NewTable(entries)}, err
}

// Load returns the canonical table.
func (s *SharedStore) Load() ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Entries(), nil
}

// Save replaces the canonical table and persists it.
func (s *SharedStore) Save(entries []Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = NewTable(entries)
	return s.backing.Save(s.table.Entries())
}

// Submit inserts one result and persists the merged table.
func (s *SharedStore) Submit(e Entry) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table.Insert(e.Name, e.Score)
	entries := s.table.Entries()
	return entries, s.backing.Save(entries)
}

// RecordGame forwards to the backing store when it keeps history.
func (s *SharedStore) RecordGame(name string, score int) error {
	if r, ok := s.backing.(Recorder); ok {
		return r.RecordGame(name, score)
	}
	return nil
}

var (
	_ Store     = (*FileStore)(nil)
	_ Store     = (*SharedStore)(nil)
	_ Submitter = (*SharedStore)(nil)
	_ Recorder  = (*SharedStore)(nil)
)
