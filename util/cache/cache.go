package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Store is a string-per-key file store used to cache contract ABIs.
// Each key becomes one file under the root directory (lowercased key plus
// ".json") so entries can be inspected and deleted by hand.
type Store struct {
	root string
	mu   sync.Mutex
}

func NewStore(root string) *Store {
	return &Store{root: root}
}

func (s *Store) path(key string) string {
	return filepath.Join(s.root, strings.ToLower(key)+".json")
}

// Get returns the cached value for key. Keys are case-insensitive.
// Missing or unreadable entries are reported as a miss.
func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := os.ReadFile(s.path(key))
	if err != nil {
		// WARNING: swallow error here
		return "", false
	}
	return string(content), true
}

// Set writes value for key, replacing any previous value wholesale.
// The value goes to a uniquely named temp file first and is moved into place
// with os.Rename so concurrent readers never observe a partial entry.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.root, 0755); err != nil {
		return fmt.Errorf("couldn't create cache dir %s: %w", s.root, err)
	}
	tmp := filepath.Join(s.root, fmt.Sprintf(".%s.tmp", uuid.NewString()))
	if err := os.WriteFile(tmp, []byte(value), 0644); err != nil {
		return fmt.Errorf("couldn't write cache temp file: %w", err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("couldn't move cache entry into place: %w", err)
	}
	return nil
}
