// Package dedup remembers which message content hashes have already been
// turned into records.
package dedup

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Store is a set of content hashes. It is safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	hashes map[string]struct{}
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{hashes: make(map[string]struct{})}
}

// Load reads a state file with one hash per line. A missing file yields an
// empty Store.
func Load(path string) (*Store, error) {
	s := NewStore()

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening dedup state: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if h := strings.TrimSpace(sc.Text()); h != "" {
			s.hashes[h] = struct{}{}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading dedup state: %w", err)
	}
	return s, nil
}

// Seen reports whether hash is already recorded.
func (s *Store) Seen(hash string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.hashes[hash]
	return ok
}

// Add records hash and reports whether it was new.
func (s *Store) Add(hash string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.hashes[hash]; ok {
		return false
	}
	s.hashes[hash] = struct{}{}
	return true
}

// Len returns the number of recorded hashes.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.hashes)
}

// Save writes the store to path, sorted, one hash per line.
func (s *Store) Save(path string) error {
	s.mu.Lock()
	hashes := make([]string, 0, len(s.hashes))
	for h := range s.hashes {
		hashes = append(hashes, h)
	}
	s.mu.Unlock()
	sort.Strings(hashes)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating dedup state dir: %w", err)
	}

	var b strings.Builder
	for _, h := range hashes {
		b.WriteString(h)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing dedup state: %w", err)
	}
	return nil
}
