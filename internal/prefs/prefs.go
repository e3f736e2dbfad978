package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/RoxanaAnamariaTurc/runner-app/internal/i18n"
)

// Store persists the visitor-facing language preference under the data
// directory. A missing file simply means no preference has been saved.
type Store struct {
	mu   sync.Mutex
	path string
}

const prefsFile = "language"

// NewStore returns a Store rooted at dataDir.
func NewStore(dataDir string) *Store {
	return &Store{path: filepath.Join(dataDir, prefsFile)}
}

// Load reads the saved language. The second return is false when no
// preference exists or the stored value is not a supported language.
func (s *Store) Load() (i18n.Language, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read language preference: %w", err)
	}
	lang, ok := i18n.Parse(strings.TrimSpace(string(raw)))
	if !ok {
		return "", false, nil
	}
	return lang, true, nil
}

// Save writes the language atomically, temp file then rename.
func (s *Store) Save(lang i18n.Language) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".language-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(string(lang) + "\n"); err != nil {
		tmp.Close()
		return fmt.Errorf("write language preference: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync language preference: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod language preference: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close language preference: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("rename language preference: %w", err)
	}
	return nil
}

// Clear removes the saved preference. Clearing an absent preference is
// not an error.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Has reports whether a valid preference is on disk.
func (s *Store) Has() bool {
	_, ok, err := s.Load()
	return err == nil && ok
}
