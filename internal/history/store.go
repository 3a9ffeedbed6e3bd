package history

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Package history persists the list of recently used URLs as a flat text
// file, one URL per line, most recent first.

const (
	// MaxEntries caps the history length; the least recently used URL is
	// dropped first.
	MaxEntries = 10

	filePermissions = 0o644

	historyFileName = ".video-downloader-history.txt"
)

// Store reads and writes the recent-URL file. History I/O is never fatal:
// a missing file is an empty history and other failures are logged while the
// in-memory result stays usable.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the per-user history file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("Failed to resolve home directory for history: %v", err)
		return historyFileName
	}
	return filepath.Join(home, historyFileName)
}

// Load returns the persisted history, most recent first. A missing file
// yields an empty list; blank lines are discarded.
func (s *Store) Load() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Record inserts url at the front of the history, drops any duplicate,
// truncates to MaxEntries, rewrites the file, and returns the new list.
// Recording the URL already at the front is a no-op on both the list and the
// file.
func (s *Store) Record(url string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	urls := s.load()
	if len(urls) > 0 && urls[0] == url {
		return urls
	}

	updated := make([]string, 0, MaxEntries)
	updated = append(updated, url)
	for _, u := range urls {
		if u == url {
			continue
		}
		updated = append(updated, u)
		if len(updated) == MaxEntries {
			break
		}
	}

	data := strings.Join(updated, "\n")
	if err := os.WriteFile(s.path, []byte(data), filePermissions); err != nil {
		log.Printf("Failed to write history file %s: %v", s.path, err)
	}

	return updated
}

func (s *Store) load() []string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("Failed to read history file %s: %v", s.path, err)
		}
		return nil
	}

	var urls []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		urls = append(urls, line)
		if len(urls) == MaxEntries {
			break
		}
	}
	return urls
}
